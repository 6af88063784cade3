package platform

import (
	"fmt"
	"os/exec"
	"runtime"
	"strconv"
	"strings"

	"github.com/shydock/shydock/internal/model"
)

// Screen query commands
const (
	XDotoolDisplayGeometry = "getdisplaygeometry"

	OsascriptCommand  = "osascript"
	OsascriptExprFlag = "-e"

	osascriptDesktopBounds = `tell application "Finder" to get bounds of window of desktop`

	powershellScreenScript = `Add-Type -AssemblyName System.Windows.Forms; ` +
		`$s = [System.Windows.Forms.SystemInformation]::PrimaryMonitorSize; ` +
		`Write-Output "$($s.Width) $($s.Height)"`
)

// DefaultScreenSize stands in when the screen cannot be queried at startup,
// so the dock still comes up on a degraded system
var DefaultScreenSize = model.Size{W: 1920, H: 1080}

// DisplayBounds returns the primary screen size in pixels. Failures are
// wrapped in *QueryError; the caller picks the fallback.
func DisplayBounds() (model.Size, error) {
	switch runtime.GOOS {
	case OSLinux:
		return displayBoundsLinux()
	case OSDarwin:
		return displayBoundsMacOS()
	case OSWindows:
		return displayBoundsWindows()
	default:
		return model.Size{}, &QueryError{Op: "display bounds", Err: fmt.Errorf("unsupported operating system: %s", runtime.GOOS)}
	}
}

func displayBoundsLinux() (model.Size, error) {
	out, err := exec.Command(XDotoolCommand, XDotoolDisplayGeometry).Output()
	if err != nil {
		return model.Size{}, &QueryError{Op: "xdotool getdisplaygeometry", Err: err}
	}
	return parseDisplayGeometry(string(out))
}

func displayBoundsMacOS() (model.Size, error) {
	out, err := exec.Command(OsascriptCommand, OsascriptExprFlag, osascriptDesktopBounds).Output()
	if err != nil {
		return model.Size{}, &QueryError{Op: "osascript desktop bounds", Err: err}
	}
	return parseDesktopBounds(string(out))
}

func displayBoundsWindows() (model.Size, error) {
	out, err := exec.Command(PowershellCommand, PowershellNoProfile, PowershellCommandFlag, powershellScreenScript).Output()
	if err != nil {
		return model.Size{}, &QueryError{Op: "powershell screen size", Err: err}
	}
	return parseDisplayGeometry(string(out))
}

// parseDisplayGeometry parses "width height" as printed by
// `xdotool getdisplaygeometry` and the powershell one-liner
func parseDisplayGeometry(output string) (model.Size, error) {
	fields := strings.Fields(strings.TrimSpace(output))
	if len(fields) != 2 {
		return model.Size{}, &QueryError{Op: "parse display geometry", Err: fmt.Errorf("expected two fields in %q", output)}
	}
	w, err := strconv.Atoi(fields[0])
	if err != nil {
		return model.Size{}, &QueryError{Op: "parse display geometry", Err: fmt.Errorf("bad width %q", fields[0])}
	}
	h, err := strconv.Atoi(fields[1])
	if err != nil {
		return model.Size{}, &QueryError{Op: "parse display geometry", Err: fmt.Errorf("bad height %q", fields[1])}
	}
	if w <= 0 || h <= 0 {
		return model.Size{}, &QueryError{Op: "parse display geometry", Err: fmt.Errorf("non-positive size %dx%d", w, h)}
	}
	return model.Size{W: w, H: h}, nil
}

// parseDesktopBounds parses the AppleScript desktop bounds list
// "0, 0, 1920, 1080": left, top, right, bottom
func parseDesktopBounds(output string) (model.Size, error) {
	parts := strings.Split(strings.TrimSpace(output), ",")
	if len(parts) != 4 {
		return model.Size{}, &QueryError{Op: "parse desktop bounds", Err: fmt.Errorf("expected four fields in %q", output)}
	}

	nums := make([]int, 4)
	for i, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return model.Size{}, &QueryError{Op: "parse desktop bounds", Err: fmt.Errorf("bad field %q", part)}
		}
		nums[i] = n
	}

	size := model.Size{W: nums[2] - nums[0], H: nums[3] - nums[1]}
	if size.W <= 0 || size.H <= 0 {
		return model.Size{}, &QueryError{Op: "parse desktop bounds", Err: fmt.Errorf("non-positive size %dx%d", size.W, size.H)}
	}
	return size, nil
}
