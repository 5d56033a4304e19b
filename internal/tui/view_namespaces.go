package tui

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/Taishi66/kubedash/internal/domain"
)

func renderNamespaceList(namespaces []domain.NamespaceInfo, cursor, width, maxVisible int) string {
	if len(namespaces) == 0 {
		return "  No namespaces\n"
	}

	var b strings.Builder
	header := fmt.Sprintf("  %-42s %-12s %s", "NAME", "STATUS", "AGE")
	b.WriteString(headerStyle.Render(header))
	b.WriteString("\n")

	start := scrollStart(cursor, maxVisible)
	for i := start; i < len(namespaces) && i < start+maxVisible; i++ {
		ns := namespaces[i]
		status := runewidth.FillRight(ns.Status, 12)
		line := fmt.Sprintf("  %s %s %s",
			runewidth.FillRight(truncate(ns.Name, 41), 42),
			colorizeStatus(ns.Status, status),
			ns.Age)

		if i == cursor {
			b.WriteString(selectedStyle.Width(width).Render(line))
		} else {
			b.WriteString(line)
		}
		b.WriteString("\n")
	}
	return b.String()
}
