package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up          key.Binding
	Down        key.Binding
	Top         key.Binding
	Bottom      key.Binding
	PageUp      key.Binding
	PageDown    key.Binding
	Enter       key.Binding
	Back        key.Binding
	Filter      key.Binding
	Refresh     key.Binding
	Copy        key.Binding
	Sort        key.Binding
	SortReverse key.Binding
	Tab1        key.Binding
	Tab2        key.Binding
	Tab3        key.Binding
	Tab4        key.Binding
	Tab5        key.Binding
	TabNext     key.Binding
	TabPrev     key.Binding
	Quit        key.Binding
}

var keys = keyMap{
	Up:          key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "up")),
	Down:        key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "down")),
	Top:         key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "top")),
	Bottom:      key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "bottom")),
	PageUp:      key.NewBinding(key.WithKeys("ctrl+u", "pgup"), key.WithHelp("C-u", "page up")),
	PageDown:    key.NewBinding(key.WithKeys("ctrl+d", "pgdown"), key.WithHelp("C-d", "page down")),
	Enter:       key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
	Back:        key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	Filter:      key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
	Refresh:     key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	Copy:        key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy")),
	Sort:        key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sort")),
	SortReverse: key.NewBinding(key.WithKeys("S"), key.WithHelp("S", "reverse")),
	Tab1:        key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "pods")),
	Tab2:        key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "services")),
	Tab3:        key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "deployments")),
	Tab4:        key.NewBinding(key.WithKeys("4"), key.WithHelp("4", "configmaps")),
	Tab5:        key.NewBinding(key.WithKeys("5"), key.WithHelp("5", "secrets")),
	TabNext:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next kind")),
	TabPrev:     key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("S-tab", "prev kind")),
	Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// kindKeys maps the number keys to kinds in tab order.
var kindKeys = []key.Binding{keys.Tab1, keys.Tab2, keys.Tab3, keys.Tab4, keys.Tab5}

func listHelp() []key.Binding {
	return []key.Binding{keys.Down, keys.Enter, keys.Filter, keys.Refresh, keys.Back, keys.Quit}
}

func resourceHelp() []key.Binding {
	return []key.Binding{keys.Down, keys.Enter, keys.TabNext, keys.Tab1, keys.Sort, keys.Filter, keys.Refresh, keys.Back, keys.Quit}
}

func menuHelp() []key.Binding {
	return []key.Binding{keys.Down, keys.Enter, keys.Back, keys.Quit}
}

func resultHelp() []key.Binding {
	return []key.Binding{keys.Down, keys.PageDown, keys.Copy, keys.Back, keys.Quit}
}
