package launch

// Launcher defines the interface for starting button actions, so the UI can
// be tested against a recorder instead of a real shell.
type Launcher interface {
	Launch(action string) (requestID string, err error)
}
