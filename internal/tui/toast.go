package tui

import (
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Taishi66/kubedash/internal/domain"
)

const toastDuration = 5 * time.Second

type toastLevel int

const (
	toastInfo toastLevel = iota
	toastSuccess
	toastError
)

type toast struct {
	id      int
	message string
	level   toastLevel
	expires time.Time
}

// toastExpiredMsg ends the toast with the given id. Expiries for a toast that
// has since been replaced are ignored.
type toastExpiredMsg struct{ id int }

func (t toast) isActive() bool {
	return t.message != "" && time.Now().Before(t.expires)
}

func (t toast) render() string {
	if !t.isActive() {
		return ""
	}
	switch t.level {
	case toastSuccess:
		return toastSuccessStyle.Render(t.message)
	case toastError:
		return toastErrorStyle.Render(t.message)
	default:
		return t.message
	}
}

func newToast(id int, msg string, level toastLevel) toast {
	return toast{
		id:      id,
		message: msg,
		level:   level,
		expires: time.Now().Add(toastDuration),
	}
}

func scheduleToastClear(id int) tea.Cmd {
	return tea.Tick(toastDuration, func(time.Time) tea.Msg {
		return toastExpiredMsg{id: id}
	})
}

// errorHint turns a classified kubectl failure into a one-line hint.
func errorHint(err error) string {
	var toolErr *domain.ToolError
	if !errors.As(err, &toolErr) {
		return err.Error()
	}
	switch toolErr.Type {
	case domain.ErrToolNotFound:
		return "kubectl not found: install it or pass --kubectl"
	case domain.ErrUnauthorized:
		return "Unauthorized: check your credentials for this context"
	case domain.ErrForbidden:
		return "Forbidden: your RBAC role does not allow this"
	case domain.ErrUnreachable:
		return "Cluster unreachable: check the network or VPN"
	case domain.ErrTLS:
		return "TLS error: check the cluster certificate in your kubeconfig"
	case domain.ErrNotFound:
		return "Not found"
	case domain.ErrDecode:
		return "kubectl printed output that could not be decoded"
	default:
		return toolErr.Message
	}
}

// errorText is the text shown in place of data after a failure.
func errorText(err error) string {
	var toolErr *domain.ToolError
	if errors.As(err, &toolErr) {
		return toolErr.Message
	}
	return "Error: " + err.Error()
}
