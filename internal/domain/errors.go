package domain

// ErrType classifies errors for the TUI to display appropriate messages.
type ErrType int

const (
	ErrUnknown      ErrType = iota
	ErrToolNotFound         // kubectl missing or not executable
	ErrToolFailed           // kubectl ran and exited non-zero
	ErrDecode               // output was not the expected JSON/YAML
	ErrUnauthorized         // credentials rejected
	ErrForbidden            // RBAC denied
	ErrNotFound             // resource or namespace does not exist
	ErrUnreachable          // API server not reachable
	ErrTLS                  // certificate problem
)

// ToolError wraps a failed kubectl interaction with classification.
// Message is ready for display; Stderr keeps the raw tool output.
type ToolError struct {
	Type     ErrType
	Message  string
	Stderr   string
	ExitCode int
	Err      error
}

func (e *ToolError) Error() string {
	return e.Message
}

func (e *ToolError) Unwrap() error {
	return e.Err
}
