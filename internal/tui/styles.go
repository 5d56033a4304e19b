package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorPrimary   = lipgloss.Color("#326CE5") // Kubernetes blue
	colorSuccess   = lipgloss.Color("#04B575")
	colorWarning   = lipgloss.Color("#FFBD2E")
	colorError     = lipgloss.Color("#FF6B6B")
	colorMuted     = lipgloss.Color("#626262")
	colorHighlight = lipgloss.Color("#7D56F4")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	breadcrumbStyle = lipgloss.NewStyle().
			Foreground(colorHighlight).
			Bold(true)

	statusBarStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#333333")).
			Foreground(lipgloss.Color("#FFFFFF")).
			PaddingLeft(1).
			PaddingRight(1)

	selectedStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#333333")).
			Bold(true)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorMuted).
			Underline(true)

	tabActiveStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	tabInactiveStyle = lipgloss.NewStyle().
				Foreground(colorMuted)

	currentStyle = lipgloss.NewStyle().
			Foreground(colorSuccess).
			Bold(true)

	mutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	errorTextStyle = lipgloss.NewStyle().
			Foreground(colorError)

	resultTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorPrimary)

	resultErrorTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorError)

	spinnerStyle = lipgloss.NewStyle().
			Foreground(colorHighlight)

	toastSuccessStyle = lipgloss.NewStyle().
				Foreground(colorSuccess).
				Bold(true)

	toastErrorStyle = lipgloss.NewStyle().
			Foreground(colorError).
			Bold(true)
)

// statusStyle picks the colour for a pod phase or namespace status.
func statusStyle(status string) lipgloss.Style {
	switch status {
	case "Running", "Active", "Succeeded", "Completed":
		return lipgloss.NewStyle().Foreground(colorSuccess)
	case "Pending", "ContainerCreating", "Terminating":
		return lipgloss.NewStyle().Foreground(colorWarning)
	case "Failed", "Error", "CrashLoopBackOff", "ImagePullBackOff", "ErrImagePull", "OOMKilled":
		return lipgloss.NewStyle().Foreground(colorError)
	default:
		return lipgloss.NewStyle().Foreground(colorMuted)
	}
}

// colorizeStatus renders text (usually the padded status) in the colour of status.
func colorizeStatus(status, text string) string {
	return statusStyle(status).Render(text)
}
