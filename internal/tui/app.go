package tui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Taishi66/kubedash/internal/config"
	"github.com/Taishi66/kubedash/internal/domain"
	"github.com/Taishi66/kubedash/internal/logging"
	"github.com/Taishi66/kubedash/internal/nav"
	"github.com/Taishi66/kubedash/internal/resource"
)

// clipboardWrite allows overriding the system clipboard for testing.
var clipboardWrite = clipboard.WriteAll

// --- Messages ---

// Every response carries the page it was issued for and that page's request
// sequence number; anything else is stale and dropped.

type contextsLoadedMsg struct {
	pageID, seq int
	items       []domain.ContextInfo
	err         error
}

type namespacesLoadedMsg struct {
	pageID, seq int
	items       []domain.NamespaceInfo
	err         error
}

type resourcesLoadedMsg struct {
	pageID, seq int
	kind        domain.Kind
	table       domain.TableView
	err         error
}

type operationDoneMsg struct {
	pageID, seq int
	verb        domain.Verb
	result      domain.DisplayResult
	err         error
}

type clipboardMsg struct{ err error }

// --- Pages ---

// page is the mutable state behind one navigation frame.
type page struct {
	id      int
	seq     int
	cursor  int
	loading bool
	err     string // shown in place of data
	sort    sortState

	namespaces []domain.NamespaceInfo
	table      domain.TableView
	ops        []domain.Operation
	result     domain.DisplayResult
	viewport   viewport.Model
}

// --- Model ---

type Model struct {
	client domain.KubeGateway
	cfg    *config.AppConfig
	logger *slog.Logger

	contexts []domain.ContextInfo
	nav      *nav.Controller[*page]
	nextID   int

	// UI state
	width   int
	height  int
	spinner spinner.Model
	help    help.Model
	toast   toast
	toastID int

	// Filter
	filter    textinput.Model
	filtering bool
}

// NewModel builds the UI rooted at the context list. contexts is the list
// enumerated at startup; the cursor starts on the current one.
func NewModel(client domain.KubeGateway, contexts []domain.ContextInfo, cfg *config.AppConfig, logger *slog.Logger) Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if logger == nil {
		logger = logging.Discard()
	}

	fi := textinput.New()
	fi.Placeholder = "filter..."
	fi.CharLimit = 64
	fi.Width = 30

	m := Model{
		client:   client,
		cfg:      cfg,
		logger:   logger,
		contexts: contexts,
		spinner:  spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(spinnerStyle)),
		help:     help.New(),
		filter:   fi,
	}
	root := m.newPage()
	root.cursor = currentContextIndex(contexts)
	m.nav = nav.New(root)
	return m
}

func currentContextIndex(contexts []domain.ContextInfo) int {
	for i, c := range contexts {
		if c.Current {
			return i
		}
	}
	return 0
}

func (m *Model) newPage() *page {
	m.nextID++
	return &page{id: m.nextID}
}

func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// --- Update ---

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		if p := m.currentPage(); p != nil {
			if _, ok := m.nav.Current().Screen.(nav.ResultView); ok {
				p.viewport.Width = m.width
				p.viewport.Height = m.resultHeight()
			}
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case contextsLoadedMsg:
		p := m.livePage(msg.pageID, msg.seq)
		if p == nil {
			return m, nil
		}
		p.loading = false
		if msg.err != nil {
			p.err = errorText(msg.err)
			return m.showError(msg.err)
		}
		p.err = ""
		m.contexts = msg.items
		p.cursor = clampCursor(p.cursor, len(m.contexts))
		return m, nil

	case namespacesLoadedMsg:
		p := m.livePage(msg.pageID, msg.seq)
		if p == nil {
			return m, nil
		}
		p.loading = false
		if msg.err != nil {
			p.err = errorText(msg.err)
			p.namespaces = nil
			return m.showError(msg.err)
		}
		p.err = ""
		p.namespaces = msg.items
		p.cursor = clampCursor(p.cursor, len(p.namespaces))
		return m, nil

	case resourcesLoadedMsg:
		p := m.livePage(msg.pageID, msg.seq)
		if p == nil {
			return m, nil
		}
		p.loading = false
		if msg.err != nil {
			p.table = resource.ErrorTable(msg.kind, errorText(msg.err))
			p.cursor = 0
			return m.showError(msg.err)
		}
		p.table = msg.table
		p.cursor = clampCursor(p.cursor, len(p.table.Rows))
		return m, nil

	case operationDoneMsg:
		return m.handleOperationDone(msg)

	case clipboardMsg:
		if msg.err != nil {
			cmd := m.notify(fmt.Sprintf("Copy failed: %v", msg.err), toastError)
			return m, cmd
		}
		cmd := m.notify("Copied to clipboard", toastSuccess)
		return m, cmd

	case toastExpiredMsg:
		if msg.id == m.toast.id {
			m.toast = toast{}
		}
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Filter mode
	if m.filtering {
		return m.handleFilterInput(msg)
	}

	// Global keys
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, keys.Back):
		if m.filter.Value() != "" {
			m.filter.SetValue("")
			m.currentPage().cursor = 0
			return m, nil
		}
		return m.back()
	}

	top := m.nav.Current()
	if _, ok := top.Screen.(nav.ResultView); ok {
		return m.handleResultKey(msg, top.State)
	}
	p := top.State

	switch {
	case key.Matches(msg, keys.Filter):
		if m.isListScreen() {
			m.filtering = true
			m.filter.SetValue("")
			m.filter.Focus()
			return m, textinput.Blink
		}

	case key.Matches(msg, keys.Refresh):
		return m.refresh()

	case key.Matches(msg, keys.Sort):
		if _, ok := top.Screen.(nav.ResourceList); ok && len(p.table.Items) > 0 {
			p.sort = p.sort.next(len(p.table.Columns))
			p.cursor = 0
		}
	case key.Matches(msg, keys.SortReverse):
		p.sort = p.sort.reversed()

	// Navigation
	case key.Matches(msg, keys.Down):
		p.cursor = min(p.cursor+1, max(m.listLen()-1, 0))
	case key.Matches(msg, keys.Up):
		p.cursor = max(p.cursor-1, 0)
	case key.Matches(msg, keys.Top):
		p.cursor = 0
	case key.Matches(msg, keys.Bottom):
		p.cursor = max(m.listLen()-1, 0)
	case key.Matches(msg, keys.PageDown):
		p.cursor = min(p.cursor+m.contentHeight(), max(m.listLen()-1, 0))
	case key.Matches(msg, keys.PageUp):
		p.cursor = max(p.cursor-m.contentHeight(), 0)

	case key.Matches(msg, keys.Enter):
		return m.handleEnter()

	// Kind switching
	case key.Matches(msg, keys.TabNext):
		return m.cycleKind(1)
	case key.Matches(msg, keys.TabPrev):
		return m.cycleKind(-1)
	default:
		for i, b := range kindKeys {
			if key.Matches(msg, b) {
				return m.switchKind(domain.Kinds[i])
			}
		}
	}

	return m, nil
}

// --- Key Handlers ---

func (m Model) handleFilterInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc":
		m.filtering = false
		m.filter.Blur()
		if msg.String() == "esc" {
			m.filter.SetValue("")
		}
		m.currentPage().cursor = 0
		return m, nil
	default:
		var cmd tea.Cmd
		m.filter, cmd = m.filter.Update(msg)
		m.currentPage().cursor = 0
		return m, cmd
	}
}

func (m Model) handleResultKey(msg tea.KeyMsg, p *page) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Enter):
		return m.back()
	case key.Matches(msg, keys.Copy):
		text := p.result.Command
		if text == "" {
			text = p.result.Body
		}
		return m, func() tea.Msg {
			return clipboardMsg{err: clipboardWrite(text)}
		}
	case key.Matches(msg, keys.Top):
		p.viewport.GotoTop()
		return m, nil
	case key.Matches(msg, keys.Bottom):
		p.viewport.GotoBottom()
		return m, nil
	}
	var cmd tea.Cmd
	p.viewport, cmd = p.viewport.Update(msg)
	return m, cmd
}

func (m Model) handleEnter() (tea.Model, tea.Cmd) {
	top := m.nav.Current()
	p := top.State

	switch s := top.Screen.(type) {
	case nav.ContextSelect:
		items := m.visibleContexts()
		// The list is hidden behind the error or spinner.
		if p.loading || p.err != "" || p.cursor >= len(items) {
			return m, nil
		}
		next := m.newPage()
		if err := m.push(nav.NamespaceSelect{Context: items[p.cursor].Name}, next); err != nil {
			return m.showError(err)
		}
		return m, m.loadNamespaces(next, items[p.cursor].Name)

	case nav.NamespaceSelect:
		items := m.visibleNamespaces(p)
		if p.cursor >= len(items) {
			return m, nil
		}
		screen := nav.ResourceList{Context: s.Context, Namespace: items[p.cursor].Name, Kind: domain.KindPod}
		next := m.newPage()
		if err := m.push(screen, next); err != nil {
			return m.showError(err)
		}
		return m, m.loadResources(next, screen)

	case nav.ResourceList:
		idx := m.visibleItems(p)
		if p.loading || p.cursor >= len(idx) {
			return m, nil
		}
		item := p.table.Items[idx[p.cursor]]
		next := m.newPage()
		next.ops = resource.OperationsFor(item.Kind)
		if err := m.push(nav.OperationMenu{Context: s.Context, Namespace: s.Namespace, Resource: item}, next); err != nil {
			return m.showError(err)
		}
		return m, nil

	case nav.OperationMenu:
		if p.loading || p.cursor >= len(p.ops) {
			return m, nil
		}
		return m, m.runOperation(p, s.Target(), p.ops[p.cursor].Verb)
	}
	return m, nil
}

func (m *Model) push(s nav.Screen, p *page) error {
	if err := m.nav.Push(s, p); err != nil {
		m.logger.Error("navigation rejected", logging.Err(err))
		return err
	}
	m.logger.Debug("navigate", slog.String("screen", s.Label()), slog.Int("depth", m.nav.Depth()))
	m.resetFilter()
	return nil
}

func (m Model) back() (tea.Model, tea.Cmd) {
	if m.nav.Pop() {
		return m, tea.Quit
	}
	m.resetFilter()
	return m, nil
}

func (m Model) refresh() (tea.Model, tea.Cmd) {
	top := m.nav.Current()
	switch s := top.Screen.(type) {
	case nav.ContextSelect:
		return m, m.loadContexts(top.State)
	case nav.NamespaceSelect:
		return m, m.loadNamespaces(top.State, s.Context)
	case nav.ResourceList:
		return m, m.loadResources(top.State, s)
	}
	return m, nil
}

func (m Model) cycleKind(delta int) (tea.Model, tea.Cmd) {
	s, ok := m.nav.Current().Screen.(nav.ResourceList)
	if !ok {
		return m, nil
	}
	n := len(domain.Kinds)
	for i, k := range domain.Kinds {
		if k == s.Kind {
			return m.switchKind(domain.Kinds[((i+delta)%n+n)%n])
		}
	}
	return m.switchKind(domain.KindPod)
}

// switchKind replaces the resource list with a fresh one for kind. The old
// page is discarded, so its in-flight response can no longer land.
func (m Model) switchKind(kind domain.Kind) (tea.Model, tea.Cmd) {
	s, ok := m.nav.Current().Screen.(nav.ResourceList)
	if !ok || s.Kind == kind {
		return m, nil
	}
	s.Kind = kind
	next := m.newPage()
	if err := m.nav.Replace(s, next); err != nil {
		return m.showError(err)
	}
	m.resetFilter()
	return m, m.loadResources(next, s)
}

func (m Model) handleOperationDone(msg operationDoneMsg) (tea.Model, tea.Cmd) {
	p := m.livePage(msg.pageID, msg.seq)
	if p == nil {
		return m, nil
	}
	p.loading = false
	if m.nav.Current().State != p {
		m.logger.Debug("operation finished after leaving its menu", logging.Operation(msg.verb.String()))
		return m, nil
	}

	res := msg.result
	var cmd tea.Cmd
	if msg.err != nil {
		m.logger.Warn("operation failed", logging.Operation(msg.verb.String()), logging.Err(msg.err))
		res = domain.DisplayResult{Title: "Error", Body: msg.err.Error(), Failed: true}
		cmd = m.notify(errorHint(msg.err), toastError)
	}

	next := m.newPage()
	next.result = res
	next.viewport = viewport.New(m.width, m.resultHeight())
	next.viewport.SetContent(res.Body)
	if err := m.push(nav.ResultView{Title: res.Title, Body: res.Body}, next); err != nil {
		return m.showError(err)
	}
	return m, cmd
}

func (m Model) showError(err error) (tea.Model, tea.Cmd) {
	cmd := m.notify(errorHint(err), toastError)
	return m, cmd
}

// notify shows a toast and schedules its expiry.
func (m *Model) notify(msg string, level toastLevel) tea.Cmd {
	m.toastID++
	m.toast = newToast(m.toastID, msg, level)
	return scheduleToastClear(m.toastID)
}

// --- Data loading ---

func (m Model) loadContexts(p *page) tea.Cmd {
	p.seq++
	p.loading = true
	id, seq, client := p.id, p.seq, m.client
	return func() tea.Msg {
		items, err := client.ListContexts(context.Background())
		return contextsLoadedMsg{pageID: id, seq: seq, items: items, err: err}
	}
}

func (m Model) loadNamespaces(p *page, kubeContext string) tea.Cmd {
	p.seq++
	p.loading = true
	id, seq, client := p.id, p.seq, m.client
	return func() tea.Msg {
		items, err := client.ListNamespaces(context.Background(), kubeContext)
		return namespacesLoadedMsg{pageID: id, seq: seq, items: items, err: err}
	}
}

func (m Model) loadResources(p *page, s nav.ResourceList) tea.Cmd {
	p.seq++
	p.loading = true
	id, seq, client := p.id, p.seq, m.client
	return func() tea.Msg {
		table, err := client.ListResources(context.Background(), s.Context, s.Namespace, s.Kind)
		return resourcesLoadedMsg{pageID: id, seq: seq, kind: s.Kind, table: table, err: err}
	}
}

func (m Model) runOperation(p *page, target domain.Target, verb domain.Verb) tea.Cmd {
	p.seq++
	p.loading = true
	id, seq, client := p.id, p.seq, m.client
	m.logger.Info("operation",
		logging.Context(target.Context),
		logging.Namespace(target.Namespace),
		logging.Kind(target.Resource.Kind),
		logging.Operation(verb.String()),
	)
	return func() tea.Msg {
		res, err := client.Execute(context.Background(), target, verb)
		return operationDoneMsg{pageID: id, seq: seq, verb: verb, result: res, err: err}
	}
}

// livePage returns the page a response belongs to, or nil when the page has
// left the stack or a newer request was issued for it.
func (m Model) livePage(id, seq int) *page {
	for _, f := range m.nav.Frames() {
		if f.State.id == id {
			if f.State.seq != seq {
				m.logger.Debug("dropping stale response", slog.Int("page", id), slog.Int("seq", seq))
				return nil
			}
			return f.State
		}
	}
	m.logger.Debug("dropping response for closed page", slog.Int("page", id))
	return nil
}

func (m Model) currentPage() *page {
	return m.nav.Current().State
}

// --- Filtering ---

func (m *Model) resetFilter() {
	m.filtering = false
	m.filter.Blur()
	m.filter.SetValue("")
}

func (m Model) filterText() string {
	return strings.ToLower(strings.TrimSpace(m.filter.Value()))
}

func (m Model) visibleContexts() []domain.ContextInfo {
	f := m.filterText()
	if f == "" {
		return m.contexts
	}
	var result []domain.ContextInfo
	for _, c := range m.contexts {
		if strings.Contains(strings.ToLower(c.Name), f) {
			result = append(result, c)
		}
	}
	return result
}

func (m Model) visibleNamespaces(p *page) []domain.NamespaceInfo {
	f := m.filterText()
	if f == "" {
		return p.namespaces
	}
	var result []domain.NamespaceInfo
	for _, ns := range p.namespaces {
		if strings.Contains(strings.ToLower(ns.Name), f) {
			result = append(result, ns)
		}
	}
	return result
}

// visibleItems returns indexes into p.table.Items that pass the filter, in
// display order.
func (m Model) visibleItems(p *page) []int {
	f := m.filterText()
	result := make([]int, 0, len(p.table.Items))
	for i, item := range p.table.Items {
		if f == "" || strings.Contains(strings.ToLower(item.Name), f) {
			result = append(result, i)
		}
	}
	return sortItems(p.table.Items, result, p.sort)
}

func (m Model) isListScreen() bool {
	switch m.nav.Current().Screen.(type) {
	case nav.ContextSelect, nav.NamespaceSelect, nav.ResourceList:
		return true
	}
	return false
}

func (m Model) listLen() int {
	top := m.nav.Current()
	switch top.Screen.(type) {
	case nav.ContextSelect:
		return len(m.visibleContexts())
	case nav.NamespaceSelect:
		return len(m.visibleNamespaces(top.State))
	case nav.ResourceList:
		return len(m.visibleItems(top.State))
	case nav.OperationMenu:
		return len(top.State.ops)
	default:
		return 0
	}
}

func clampCursor(cursor, n int) int {
	if n == 0 {
		return 0
	}
	return min(max(cursor, 0), n-1)
}

func (m Model) contentHeight() int {
	// header(1) + sub header(1) + blank(1) + col_header(1) + toast(1) + status_bar(1)
	ch := m.height - 6
	if ch < 1 {
		return 1
	}
	return ch
}

func (m Model) resultHeight() int {
	// header(1) + title(1) + blank(1) + toast(1) + status_bar(1)
	return max(m.height-5, 1)
}

// --- View ---

func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderContent())

	// Filter bar
	if m.filtering {
		b.WriteString(fmt.Sprintf("  /%s", m.filter.View()))
		b.WriteString("\n")
	} else if f := m.filter.Value(); f != "" {
		b.WriteString(mutedStyle.Render(fmt.Sprintf("  filter: %s", f)))
		b.WriteString("\n")
	}

	// Fill remaining space
	lines := strings.Count(b.String(), "\n")
	for i := lines; i < m.height-2; i++ {
		b.WriteString("\n")
	}

	// Toast
	if m.toast.isActive() {
		b.WriteString(m.toast.render())
	}
	b.WriteString("\n")

	b.WriteString(m.renderStatusBar())
	return b.String()
}

func (m Model) renderHeader() string {
	title := titleStyle.Render("kubedash")
	frames := m.nav.Frames()
	if len(frames) == 1 {
		return " " + title
	}
	crumbs := make([]string, 0, len(frames)-1)
	for _, f := range frames[1:] {
		crumbs = append(crumbs, f.Screen.Label())
	}
	return fmt.Sprintf(" %s  %s", title, breadcrumbStyle.Render(strings.Join(crumbs, " › ")))
}

func (m Model) renderContent() string {
	top := m.nav.Current()
	p := top.State
	ch := m.contentHeight()

	switch s := top.Screen.(type) {
	case nav.ContextSelect:
		if p.loading {
			return m.renderLoading("Loading contexts")
		}
		if p.err != "" {
			return renderError(p.err)
		}
		return renderContextList(m.visibleContexts(), p.cursor, m.width, ch)

	case nav.NamespaceSelect:
		if p.loading && p.namespaces == nil {
			return m.renderLoading(fmt.Sprintf("Loading namespaces of %s", s.Context))
		}
		if p.err != "" {
			return renderError(p.err)
		}
		return renderNamespaceList(m.visibleNamespaces(p), p.cursor, m.width, ch)

	case nav.ResourceList:
		var b strings.Builder
		b.WriteString(renderKindTabs(s.Kind))
		b.WriteString("\n")
		if p.loading {
			b.WriteString(m.renderLoading(fmt.Sprintf("Loading %s in %s", s.Kind.Plural(), s.Namespace)))
			return b.String()
		}
		b.WriteString(renderResourceTable(p.table, m.visibleItems(p), p.sort, m.filterText() != "", p.cursor, m.width, ch))
		return b.String()

	case nav.OperationMenu:
		return renderOperationMenu(s, p.ops, p.cursor, p.loading, m.spinner.View(), m.width)

	case nav.ResultView:
		return renderResult(p.result, &p.viewport)
	}
	return ""
}

func (m Model) renderLoading(what string) string {
	return fmt.Sprintf("\n  %s %s...\n", m.spinner.View(), what)
}

func renderError(text string) string {
	return "\n" + errorTextStyle.Render("  "+text) + "\n\n" + mutedStyle.Render("  r: retry  esc: back") + "\n"
}

func (m Model) renderStatusBar() string {
	top := m.nav.Current()
	var bindings []key.Binding
	var left string
	switch s := top.Screen.(type) {
	case nav.ContextSelect:
		bindings = listHelp()
		left = fmt.Sprintf("CONTEXTS | %d items", m.listLen())
	case nav.NamespaceSelect:
		bindings = listHelp()
		left = fmt.Sprintf("NAMESPACES | %s | %d items", s.Context, m.listLen())
	case nav.ResourceList:
		bindings = resourceHelp()
		left = fmt.Sprintf("%s | %s/%s | %d items", strings.ToUpper(s.Kind.Plural()), s.Context, s.Namespace, m.listLen())
	case nav.OperationMenu:
		bindings = menuHelp()
		left = fmt.Sprintf("OPERATIONS | %s", s.Label())
	case nav.ResultView:
		bindings = resultHelp()
		left = fmt.Sprintf("RESULT | %3.0f%%", top.State.viewport.ScrollPercent()*100)
	}
	return statusBarStyle.Width(m.width).Render(left + "  " + m.help.ShortHelpView(bindings))
}
