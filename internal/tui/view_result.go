package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"

	"github.com/Taishi66/kubedash/internal/domain"
)

func renderResult(res domain.DisplayResult, vp *viewport.Model) string {
	var b strings.Builder
	title := resultTitleStyle.Render("  " + res.Title)
	if res.Failed {
		title = resultErrorTitleStyle.Render("  " + res.Title)
	}
	b.WriteString(title)
	b.WriteString("\n")
	b.WriteString(vp.View())
	b.WriteString("\n")
	return b.String()
}
