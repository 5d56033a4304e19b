package kubectl

import (
	"strings"

	"github.com/Taishi66/kubedash/internal/domain"
)

// failure converts a non-zero kubectl exit into a domain.ToolError.
func failure(res Result) error {
	stderr := strings.TrimSpace(string(res.Stderr))
	if stderr == "" {
		stderr = strings.TrimSpace(string(res.Stdout))
	}
	return &domain.ToolError{
		Type:     classify(stderr),
		Message:  "Error: " + stderr,
		Stderr:   stderr,
		ExitCode: res.ExitCode,
	}
}

// classify maps kubectl's stderr text to an error class.
// Order matters: "Unable to connect to the server: x509: ..." is a TLS problem.
func classify(stderr string) domain.ErrType {
	s := strings.ToLower(stderr)
	switch {
	case strings.Contains(s, "unauthorized") || strings.Contains(s, "must be logged in"):
		return domain.ErrUnauthorized
	case strings.Contains(s, "forbidden"):
		return domain.ErrForbidden
	case strings.Contains(s, "x509") || strings.Contains(s, "certificate"):
		return domain.ErrTLS
	case strings.Contains(s, "dial tcp") || strings.Contains(s, "no such host") ||
		strings.Contains(s, "connection refused") || strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "unable to connect to the server"):
		return domain.ErrUnreachable
	case strings.Contains(s, "notfound") || strings.Contains(s, "not found"):
		return domain.ErrNotFound
	default:
		return domain.ErrToolFailed
	}
}
