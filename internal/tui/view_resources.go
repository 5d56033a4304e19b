package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/samber/lo"

	"github.com/Taishi66/kubedash/internal/domain"
)

const maxColumnWidth = 48

func renderKindTabs(active domain.Kind) string {
	parts := make([]string, 0, len(domain.Kinds))
	for i, k := range domain.Kinds {
		label := fmt.Sprintf("[%d] %s", i+1, k.String()+"s")
		if k == active {
			parts = append(parts, tabActiveStyle.Render(label))
		} else {
			parts = append(parts, tabInactiveStyle.Render(label))
		}
	}
	return "  " + strings.Join(parts, "  ")
}

// renderResourceTable draws a projected table. visible holds the indexes of
// items that pass the filter; informational and error tables have no items and
// are drawn by renderNoticeTable.
func renderResourceTable(view domain.TableView, visible []int, order sortState, filtered bool, cursor, width, maxVisible int) string {
	rows := view.Rows
	if len(view.Items) > 0 {
		rows = lo.Map(visible, func(idx int, _ int) []string { return view.Items[idx].Cells })
	}
	if len(rows) == 0 {
		if filtered {
			return "  No resources match the filter\n"
		}
		return "\n"
	}
	if len(view.Items) == 0 {
		return renderNoticeTable(view, width)
	}

	headers := lo.Map(view.Columns, func(c string, i int) string { return sortIndicator(c, i, order) })
	widths := columnWidths(headers, rows)
	statusCol := lo.IndexOf(view.Columns, "Status")

	var b strings.Builder
	b.WriteString(headerStyle.Render(formatRow(headers, widths, nil)))
	b.WriteString("\n")

	start := scrollStart(cursor, maxVisible)
	for i := start; i < len(rows) && i < start+maxVisible; i++ {
		cells := rows[i]
		line := formatRow(cells, widths, func(col int, cell, padded string) string {
			if col == statusCol {
				return colorizeStatus(cell, padded)
			}
			return padded
		})

		if i == cursor {
			b.WriteString(selectedStyle.Width(width).Render(line))
		} else {
			b.WriteString(line)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// renderNoticeTable draws a message or error table. The text is wrapped to
// the screen width, never clipped to a column, so kubectl's stderr stays
// readable in full.
func renderNoticeTable(view domain.TableView, width int) string {
	header := "Message"
	if len(view.Columns) > 0 {
		header = view.Columns[0]
	}
	lines := make([]string, 0, len(view.Rows))
	for _, row := range view.Rows {
		if len(row) > 0 {
			lines = append(lines, strings.TrimRight(row[0], "\n"))
		}
	}

	style := lipgloss.NewStyle()
	if header == "Error" {
		style = errorTextStyle
	}
	body := style.Width(max(width-4, 20)).Render(strings.Join(lines, "\n"))

	var b strings.Builder
	b.WriteString(headerStyle.Render("  " + header))
	b.WriteString("\n")
	for _, line := range strings.Split(body, "\n") {
		b.WriteString("  ")
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func columnWidths(columns []string, rows [][]string) []int {
	widths := lo.Map(columns, func(c string, _ int) int { return runewidth.StringWidth(c) })
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) {
				widths[i] = max(widths[i], runewidth.StringWidth(cell))
			}
		}
	}
	for i := range widths {
		widths[i] = min(widths[i], maxColumnWidth)
	}
	return widths
}

// formatRow pads every cell to its column width. style, if set, decorates the
// padded cell so colour codes never disturb alignment.
func formatRow(cells []string, widths []int, style func(col int, cell, padded string) string) string {
	parts := make([]string, len(widths))
	for i, w := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		padded := runewidth.FillRight(truncate(cell, w), w)
		if style != nil {
			padded = style(i, cell, padded)
		}
		parts[i] = padded
	}
	return "  " + strings.Join(parts, "  ")
}

// truncate shortens s to maxLen display cells, ending in an ellipsis.
func truncate(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	return runewidth.Truncate(s, maxLen, "…")
}
