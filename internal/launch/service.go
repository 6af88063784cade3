package launch

import (
	"errors"
	"fmt"
	"os/exec"
	"runtime"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mordilloSan/go-logger/logger"
)

// Shell invocation constants
const (
	UnixShell      = "sh"
	UnixShellFlag  = "-c"
	WindowsShell   = "cmd"
	WindowsRunFlag = "/C"

	RequestIDPrefix = "launch-"
)

// Service starts button actions through the platform shell. The action
// string is handed over verbatim; the dock does not parse or sandbox it.
type Service struct{}

// NewService creates a new launch service
func NewService() *Service {
	return &Service{}
}

// Launch starts the action and returns without waiting for it to finish.
// The returned request id correlates log lines with the click that caused
// them. An empty action or a failed process start returns a *LaunchError.
func (s *Service) Launch(action string) (string, error) {
	if strings.TrimSpace(action) == "" {
		return "", &LaunchError{Action: action, Err: errors.New("empty action")}
	}

	id := generateRequestID()
	cmd := shellCommand(action)
	if err := cmd.Start(); err != nil {
		return "", &LaunchError{Action: action, Err: err}
	}
	logger.Infof("[%s] started %q (pid %d)", id, action, cmd.Process.Pid)

	// Reap the child so finished actions do not linger as zombies. The exit
	// status is informational only; the dock made no promise about it.
	go func() {
		if err := cmd.Wait(); err != nil {
			logger.Debugf("[%s] %q exited: %v", id, action, err)
		}
	}()

	return id, nil
}

// shellCommand wraps the action in the platform shell
func shellCommand(action string) *exec.Cmd {
	if runtime.GOOS == "windows" {
		return exec.Command(WindowsShell, WindowsRunFlag, action)
	}
	return exec.Command(UnixShell, UnixShellFlag, action)
}

// generateRequestID generates a unique request id using UUID v7 so ids sort
// chronologically in the log
func generateRequestID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to timestamp if UUID generation fails
		return fmt.Sprintf(RequestIDPrefix+"%d", time.Now().UnixNano())
	}
	return RequestIDPrefix + id.String()
}
