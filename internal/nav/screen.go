// Package nav holds the drill-down navigation stack:
// contexts, namespaces, resources, operations, results.
package nav

import "github.com/Taishi66/kubedash/internal/domain"

// Screen is one navigation state. The set of implementations is closed.
type Screen interface {
	screen()
	// Label is a short breadcrumb label.
	Label() string
}

// ContextSelect is the root screen.
type ContextSelect struct{}

// NamespaceSelect lists the namespaces of Context.
type NamespaceSelect struct {
	Context string
}

// ResourceList shows resources of Kind in Context/Namespace.
type ResourceList struct {
	Context   string
	Namespace string
	Kind      domain.Kind
}

// OperationMenu offers the operations for one resource.
type OperationMenu struct {
	Context   string
	Namespace string
	Resource  domain.ResourceSummary
}

// ResultView shows the outcome of an operation.
type ResultView struct {
	Title string
	Body  string
}

func (ContextSelect) screen()   {}
func (NamespaceSelect) screen() {}
func (ResourceList) screen()    {}
func (OperationMenu) screen()   {}
func (ResultView) screen()      {}

func (ContextSelect) Label() string     { return "contexts" }
func (s NamespaceSelect) Label() string { return s.Context }
func (s ResourceList) Label() string    { return s.Namespace + "/" + s.Kind.Plural() }
func (s OperationMenu) Label() string   { return s.Target().Ref() }
func (s ResultView) Label() string      { return s.Title }

// Target is the resource the menu operates on.
func (s OperationMenu) Target() domain.Target {
	return domain.Target{Context: s.Context, Namespace: s.Namespace, Resource: s.Resource}
}
