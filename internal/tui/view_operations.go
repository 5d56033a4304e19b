package tui

import (
	"fmt"
	"strings"

	"github.com/Taishi66/kubedash/internal/domain"
	"github.com/Taishi66/kubedash/internal/nav"
)

func renderOperationMenu(s nav.OperationMenu, ops []domain.Operation, cursor int, loading bool, spin string, width int) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("  %s  %s\n",
		breadcrumbStyle.Render(s.Label()),
		mutedStyle.Render(fmt.Sprintf("in %s/%s", s.Context, s.Namespace))))
	b.WriteString("\n")

	for i, op := range ops {
		line := fmt.Sprintf("    %s", op.Label)
		if i == cursor {
			if loading {
				line = fmt.Sprintf("  %s %s", spin, op.Label)
			}
			b.WriteString(selectedStyle.Width(width).Render(line))
		} else {
			b.WriteString(line)
		}
		b.WriteString("\n")
	}
	return b.String()
}
