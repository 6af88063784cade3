package model

import (
	"errors"
	"image/color"
	"testing"
)

func TestSettings_Clamp(t *testing.T) {
	tests := []struct {
		name     string
		in       Settings
		expected Settings
	}{
		{
			name:     "valid settings unchanged",
			in:       Settings{Position: EdgeRight, Opacity: 0.9, Color: "#112233", CornerRadius: 4, IconSize: 32, Spacing: 6, EdgeOffset: 2},
			expected: Settings{Position: EdgeRight, Opacity: 0.9, Color: "#112233", CornerRadius: 4, IconSize: 32, Spacing: 6, EdgeOffset: 2},
		},
		{
			name:     "opacity above range clamps to 1.0",
			in:       Settings{Position: EdgeLeft, Opacity: 1.5, Color: "#000000", CornerRadius: 16, IconSize: 48, Spacing: 8, EdgeOffset: 10},
			expected: Settings{Position: EdgeLeft, Opacity: 1.0, Color: "#000000", CornerRadius: 16, IconSize: 48, Spacing: 8, EdgeOffset: 10},
		},
		{
			name:     "opacity below range clamps to 0.0",
			in:       Settings{Position: EdgeLeft, Opacity: -0.3, Color: "#000000", CornerRadius: 16, IconSize: 48, Spacing: 8, EdgeOffset: 10},
			expected: Settings{Position: EdgeLeft, Opacity: 0.0, Color: "#000000", CornerRadius: 16, IconSize: 48, Spacing: 8, EdgeOffset: 10},
		},
		{
			name:     "zero value repairs to defaults",
			in:       Settings{},
			expected: Settings{Position: DefaultPosition, Opacity: 0, Color: DefaultColor, CornerRadius: 0, IconSize: DefaultIconSize, Spacing: 0, EdgeOffset: 0},
		},
		{
			name:     "bad position and color replaced",
			in:       Settings{Position: "center", Opacity: 0.5, Color: "red", CornerRadius: 16, IconSize: 48, Spacing: 8, EdgeOffset: 10},
			expected: Settings{Position: DefaultPosition, Opacity: 0.5, Color: DefaultColor, CornerRadius: 16, IconSize: 48, Spacing: 8, EdgeOffset: 10},
		},
		{
			name:     "negative sizes floor at zero",
			in:       Settings{Position: EdgeTop, Opacity: 0.5, Color: "#ffffff", CornerRadius: -1, IconSize: -5, Spacing: -2, EdgeOffset: -10},
			expected: Settings{Position: EdgeTop, Opacity: 0.5, Color: "#ffffff", CornerRadius: 0, IconSize: DefaultIconSize, Spacing: 0, EdgeOffset: 0},
		},
	}

	for _, test := range tests {
		got := test.in
		got.Clamp()
		if got != test.expected {
			t.Errorf("%s: Clamp() = %+v, expected %+v", test.name, got, test.expected)
		}
	}
}

func TestSettings_ClampAlwaysValidates(t *testing.T) {
	inputs := []Settings{
		{},
		{Position: "diagonal", Opacity: 99, Color: "nope", CornerRadius: -3, IconSize: 0, Spacing: -1, EdgeOffset: -7},
		{Position: EdgeBottom, Opacity: 1.5, Color: "#12345", CornerRadius: 1e9, IconSize: 1e9, Spacing: 1e9, EdgeOffset: 1 << 20},
	}

	for _, in := range inputs {
		in.Clamp()
		if err := in.Validate(); err != nil {
			t.Errorf("Validate() after Clamp() on %+v returned %v, expected nil", in, err)
		}
	}
}

func TestSettings_Validate(t *testing.T) {
	valid := DefaultSettings()
	if err := valid.Validate(); err != nil {
		t.Fatalf("Validate() on defaults returned %v, expected nil", err)
	}

	tests := []struct {
		name   string
		mutate func(*Settings)
		field  string
	}{
		{"bad position", func(s *Settings) { s.Position = "middle" }, "position"},
		{"opacity too high", func(s *Settings) { s.Opacity = 1.5 }, "opacity"},
		{"opacity negative", func(s *Settings) { s.Opacity = -0.1 }, "opacity"},
		{"bad color", func(s *Settings) { s.Color = "blue" }, "color"},
		{"negative corner radius", func(s *Settings) { s.CornerRadius = -1 }, "cornerRadius"},
		{"zero icon size", func(s *Settings) { s.IconSize = 0 }, "iconSize"},
		{"negative spacing", func(s *Settings) { s.Spacing = -1 }, "spacing"},
		{"negative edge offset", func(s *Settings) { s.EdgeOffset = -1 }, "edgeOffset"},
	}

	for _, test := range tests {
		s := DefaultSettings()
		test.mutate(&s)
		err := s.Validate()
		if err == nil {
			t.Errorf("%s: Validate() = nil, expected error", test.name)
			continue
		}
		var ve *ValidationError
		if !errors.As(err, &ve) {
			t.Errorf("%s: Validate() returned %T, expected *ValidationError", test.name, err)
			continue
		}
		if ve.Field != test.field {
			t.Errorf("%s: Validate() flagged field %q, expected %q", test.name, ve.Field, test.field)
		}
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in       string
		expected color.NRGBA
		wantErr  bool
	}{
		{"#000000", color.NRGBA{0, 0, 0, 0xff}, false},
		{"#ffffff", color.NRGBA{0xff, 0xff, 0xff, 0xff}, false},
		{"#FF8000", color.NRGBA{0xff, 0x80, 0x00, 0xff}, false},
		{"#11223344", color.NRGBA{0x11, 0x22, 0x33, 0x44}, false},
		{"000000", color.NRGBA{}, true},
		{"#00", color.NRGBA{}, true},
		{"#xyzxyz", color.NRGBA{}, true},
		{"", color.NRGBA{}, true},
	}

	for _, test := range tests {
		got, err := ParseHexColor(test.in)
		if test.wantErr {
			if err == nil {
				t.Errorf("ParseHexColor(%q) = %v, expected error", test.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseHexColor(%q) returned error %v", test.in, err)
			continue
		}
		if got != test.expected {
			t.Errorf("ParseHexColor(%q) = %v, expected %v", test.in, got, test.expected)
		}
	}
}

func TestFormatHexColor_RoundTrip(t *testing.T) {
	inputs := []string{"#000000", "#ffffff", "#a1b2c3", "#11223344"}

	for _, in := range inputs {
		c, err := ParseHexColor(in)
		if err != nil {
			t.Fatalf("ParseHexColor(%q) returned error %v", in, err)
		}
		out := FormatHexColor(c)
		if out != in {
			t.Errorf("FormatHexColor(ParseHexColor(%q)) = %q", in, out)
		}
	}
}

func TestSettings_BackgroundColor(t *testing.T) {
	tests := []struct {
		color    string
		opacity  float64
		expected color.NRGBA
	}{
		{"#000000", 1.0, color.NRGBA{0, 0, 0, 0xff}},
		{"#000000", 0.0, color.NRGBA{0, 0, 0, 0}},
		{"#ffffff", 0.5, color.NRGBA{0xff, 0xff, 0xff, 0x7f}},
		{"#11223380", 0.5, color.NRGBA{0x11, 0x22, 0x33, 0x40}},
	}

	for _, test := range tests {
		s := DefaultSettings()
		s.Color = test.color
		s.Opacity = test.opacity
		got := s.BackgroundColor()
		if got != test.expected {
			t.Errorf("BackgroundColor() with color=%s opacity=%.2f = %v, expected %v",
				test.color, test.opacity, got, test.expected)
		}
	}
}
