package platform

import (
	"fmt"
	"os/exec"
	"runtime"
	"strconv"
	"strings"

	"github.com/shydock/shydock/internal/model"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
)

// Cursor query commands
const (
	XDotoolCommand       = "xdotool"
	XDotoolMouseLocation = "getmouselocation"
	XDotoolShellFlag     = "--shell"

	CliclickCommand       = "cliclick"
	CliclickPrintPosition = "p:."

	PowershellCommand     = "powershell"
	PowershellNoProfile   = "-NoProfile"
	PowershellCommandFlag = "-Command"

	powershellCursorScript = `Add-Type -AssemblyName System.Windows.Forms; ` +
		`$p = [System.Windows.Forms.Cursor]::Position; ` +
		`Write-Output "$($p.X) $($p.Y)"`
)

// CursorQuery reads the global cursor position through per-OS command-line
// utilities. It satisfies the auto-hide controller's cursor source.
type CursorQuery struct{}

// NewCursorQuery creates a new cursor query
func NewCursorQuery() *CursorQuery {
	return &CursorQuery{}
}

// Position returns the cursor position in screen coordinates. Failures are
// wrapped in *QueryError and never guessed around.
func (q *CursorQuery) Position() (model.Point, error) {
	switch runtime.GOOS {
	case OSLinux:
		return cursorPositionLinux()
	case OSDarwin:
		return cursorPositionMacOS()
	case OSWindows:
		return cursorPositionWindows()
	default:
		return model.Point{}, &QueryError{Op: "cursor position", Err: fmt.Errorf("unsupported operating system: %s", runtime.GOOS)}
	}
}

func cursorPositionLinux() (model.Point, error) {
	out, err := exec.Command(XDotoolCommand, XDotoolMouseLocation, XDotoolShellFlag).Output()
	if err != nil {
		return model.Point{}, &QueryError{Op: "xdotool getmouselocation", Err: err}
	}
	return parseXDotoolLocation(string(out))
}

func cursorPositionMacOS() (model.Point, error) {
	out, err := exec.Command(CliclickCommand, CliclickPrintPosition).Output()
	if err != nil {
		return model.Point{}, &QueryError{Op: "cliclick p", Err: err}
	}
	return parseCommaPoint(string(out))
}

func cursorPositionWindows() (model.Point, error) {
	out, err := exec.Command(PowershellCommand, PowershellNoProfile, PowershellCommandFlag, powershellCursorScript).Output()
	if err != nil {
		return model.Point{}, &QueryError{Op: "powershell cursor position", Err: err}
	}
	return parseSpacePoint(string(out))
}

// parseXDotoolLocation parses `xdotool getmouselocation --shell` output,
// a KEY=VALUE line per field:
//
//	X=1423
//	Y=12
//	SCREEN=0
//	WINDOW=58720262
func parseXDotoolLocation(output string) (model.Point, error) {
	var p model.Point
	haveX, haveY := false, false

	for _, line := range strings.Split(strings.TrimSpace(output), "\n") {
		key, value, ok := strings.Cut(strings.TrimSpace(line), "=")
		if !ok {
			continue
		}
		switch key {
		case "X":
			n, err := strconv.Atoi(value)
			if err != nil {
				return model.Point{}, &QueryError{Op: "parse xdotool output", Err: fmt.Errorf("bad X value %q", value)}
			}
			p.X = n
			haveX = true
		case "Y":
			n, err := strconv.Atoi(value)
			if err != nil {
				return model.Point{}, &QueryError{Op: "parse xdotool output", Err: fmt.Errorf("bad Y value %q", value)}
			}
			p.Y = n
			haveY = true
		}
	}

	if !haveX || !haveY {
		return model.Point{}, &QueryError{Op: "parse xdotool output", Err: fmt.Errorf("missing X or Y in %q", output)}
	}
	return p, nil
}

// parseCommaPoint parses "x,y" as printed by cliclick
func parseCommaPoint(output string) (model.Point, error) {
	return parsePoint(output, ",")
}

// parseSpacePoint parses "x y" as printed by the powershell one-liner
func parseSpacePoint(output string) (model.Point, error) {
	return parsePoint(output, " ")
}

func parsePoint(output, sep string) (model.Point, error) {
	xs, ys, ok := strings.Cut(strings.TrimSpace(output), sep)
	if !ok {
		return model.Point{}, &QueryError{Op: "parse cursor output", Err: fmt.Errorf("expected two fields in %q", output)}
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return model.Point{}, &QueryError{Op: "parse cursor output", Err: fmt.Errorf("bad X value %q", xs)}
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return model.Point{}, &QueryError{Op: "parse cursor output", Err: fmt.Errorf("bad Y value %q", ys)}
	}
	return model.Point{X: x, Y: y}, nil
}
