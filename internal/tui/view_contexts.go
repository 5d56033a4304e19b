package tui

import (
	"fmt"
	"strings"

	"github.com/Taishi66/kubedash/internal/domain"
)

func renderContextList(contexts []domain.ContextInfo, cursor, width, maxVisible int) string {
	if len(contexts) == 0 {
		return "  No contexts match the filter\n"
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("  %-8s %s", "CURRENT", "NAME")))
	b.WriteString("\n")

	start := scrollStart(cursor, maxVisible)
	for i := start; i < len(contexts) && i < start+maxVisible; i++ {
		c := contexts[i]
		marker := ""
		name := truncate(c.Name, max(width-14, 8))
		if c.Current {
			marker = "*"
			name = currentStyle.Render(name)
		}
		line := fmt.Sprintf("  %-8s %s", marker, name)

		if i == cursor {
			b.WriteString(selectedStyle.Width(width).Render(line))
		} else {
			b.WriteString(line)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// scrollStart keeps the cursor inside a window of maxVisible rows.
func scrollStart(cursor, maxVisible int) int {
	if cursor >= maxVisible {
		return cursor - maxVisible + 1
	}
	return 0
}
