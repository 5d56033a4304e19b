package tui

import (
	"slices"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/Taishi66/kubedash/internal/domain"
)

// sortState is the user-selected ordering of a resource table. column is
// 1-based; the zero value keeps the order kubectl returned.
type sortState struct {
	column    int
	ascending bool
}

func (s sortState) active() bool { return s.column > 0 }

// next cycles through the columns, then back to kubectl order.
func (s sortState) next(columns int) sortState {
	if s.column >= columns {
		return sortState{}
	}
	return sortState{column: s.column + 1, ascending: true}
}

func (s sortState) reversed() sortState {
	if s.active() {
		s.ascending = !s.ascending
	}
	return s
}

// sortIndicator appends ▲ or ▼ to the header of the sorted column.
func sortIndicator(header string, col int, s sortState) string {
	if !s.active() || s.column-1 != col {
		return header
	}
	if s.ascending {
		return header + " ▲"
	}
	return header + " ▼"
}

// sortItems orders idx, a list of indexes into items, by the sorted column.
func sortItems(items []domain.ResourceSummary, idx []int, s sortState) []int {
	if !s.active() || len(idx) < 2 {
		return idx
	}
	col := s.column - 1
	sorted := slices.Clone(idx)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := cellAt(items[sorted[i]], col), cellAt(items[sorted[j]], col)
		if s.ascending {
			return lessCell(a, b)
		}
		return lessCell(b, a)
	})
	return sorted
}

func cellAt(item domain.ResourceSummary, col int) string {
	if col < len(item.Cells) {
		return item.Cells[col]
	}
	return ""
}

// lessCell compares counts numerically and ages by duration, so "10" sorts
// after "9" and "3d" after "5h". Everything else compares case-insensitively.
func lessCell(a, b string) bool {
	if x, errA := strconv.Atoi(a); errA == nil {
		if y, errB := strconv.Atoi(b); errB == nil {
			return x < y
		}
	}
	if x, okA := parseAge(a); okA {
		if y, okB := parseAge(b); okB {
			return x < y
		}
	}
	return strings.ToLower(a) < strings.ToLower(b)
}

var ageUnits = map[byte]time.Duration{
	's': time.Second,
	'm': time.Minute,
	'h': time.Hour,
	'd': 24 * time.Hour,
	'y': 365 * 24 * time.Hour,
}

// parseAge reads the compact ages kubectl prints, such as "90s", "3d4h" or "2y".
func parseAge(s string) (time.Duration, bool) {
	if s == "" {
		return 0, false
	}
	var total time.Duration
	n, digits := 0, 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= '0' && c <= '9' {
			n = n*10 + int(c-'0')
			digits++
			continue
		}
		unit, ok := ageUnits[c]
		if !ok || digits == 0 {
			return 0, false
		}
		total += time.Duration(n) * unit
		n, digits = 0, 0
	}
	if digits != 0 {
		return 0, false
	}
	return total, true
}
