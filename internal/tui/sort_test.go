package tui

import (
	"testing"
	"time"

	"github.com/Taishi66/kubedash/internal/domain"
)

func sortFixture() []domain.ResourceSummary {
	return []domain.ResourceSummary{
		{Name: "charlie", Cells: []string{"charlie", "Running", "10", "3d"}},
		{Name: "alpha", Cells: []string{"alpha", "Pending", "9", "5h"}},
		{Name: "bravo", Cells: []string{"bravo", "CrashLoopBackOff", "0", "90s"}},
	}
}

func sortedNames(items []domain.ResourceSummary, idx []int) []string {
	names := make([]string, len(idx))
	for i, n := range idx {
		names[i] = items[n].Name
	}
	return names
}

func TestSortItems(t *testing.T) {
	items := sortFixture()
	all := []int{0, 1, 2}

	tests := []struct {
		name  string
		state sortState
		want  []string
	}{
		{"kubectl order", sortState{}, []string{"charlie", "alpha", "bravo"}},
		{"name ascending", sortState{column: 1, ascending: true}, []string{"alpha", "bravo", "charlie"}},
		{"name descending", sortState{column: 1}, []string{"charlie", "bravo", "alpha"}},
		{"status", sortState{column: 2, ascending: true}, []string{"bravo", "alpha", "charlie"}},
		{"restarts numeric", sortState{column: 3, ascending: true}, []string{"bravo", "alpha", "charlie"}},
		{"age by duration", sortState{column: 4, ascending: true}, []string{"bravo", "alpha", "charlie"}},
		{"missing column", sortState{column: 9, ascending: true}, []string{"charlie", "alpha", "bravo"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sortedNames(items, sortItems(items, all, tt.state))
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Fatalf("order = %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestSortItemsDoesNotMutate(t *testing.T) {
	items := sortFixture()
	idx := []int{0, 1, 2}
	sortItems(items, idx, sortState{column: 1, ascending: true})
	if idx[0] != 0 || idx[1] != 1 || idx[2] != 2 {
		t.Errorf("input reordered: %v", idx)
	}
}

func TestSortStateCycle(t *testing.T) {
	var s sortState
	for want := 1; want <= 3; want++ {
		s = s.next(3)
		if s.column != want || !s.ascending {
			t.Fatalf("next() = %+v, want column %d ascending", s, want)
		}
	}
	if s = s.next(3); s.active() {
		t.Errorf("after the last column next() = %+v, want kubectl order", s)
	}
	if r := s.reversed(); r.active() {
		t.Error("reversing kubectl order should do nothing")
	}
	s = sortState{column: 2, ascending: true}.reversed()
	if s.ascending {
		t.Error("reversed() should flip the direction")
	}
}

func TestSortIndicator(t *testing.T) {
	s := sortState{column: 2, ascending: true}
	if got := sortIndicator("Status", 1, s); got != "Status ▲" {
		t.Errorf("got %q", got)
	}
	if got := sortIndicator("Status", 1, s.reversed()); got != "Status ▼" {
		t.Errorf("got %q", got)
	}
	if got := sortIndicator("Name", 0, s); got != "Name" {
		t.Errorf("got %q", got)
	}
	if got := sortIndicator("Name", 0, sortState{}); got != "Name" {
		t.Errorf("got %q", got)
	}
}

func TestParseAge(t *testing.T) {
	tests := []struct {
		in   string
		want time.Duration
		ok   bool
	}{
		{"90s", 90 * time.Second, true},
		{"5m", 5 * time.Minute, true},
		{"3d4h", 76 * time.Hour, true},
		{"2y", 2 * 365 * 24 * time.Hour, true},
		{"Unknown", 0, false},
		{"10", 0, false},
		{"h", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, ok := parseAge(tt.in)
		if ok != tt.ok || got != tt.want {
			t.Errorf("parseAge(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}
