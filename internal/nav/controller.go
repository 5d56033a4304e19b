package nav

import (
	"errors"
	"fmt"
)

// ErrInvalidTransition is returned when a screen cannot follow the current one.
var ErrInvalidTransition = errors.New("invalid navigation transition")

// Frame is one stack entry: a screen plus per-screen state owned by the caller.
type Frame[T any] struct {
	Screen Screen
	State  T
}

// Controller is a stack of frames rooted at ContextSelect. It is never empty.
type Controller[T any] struct {
	stack []Frame[T]
}

// New returns a controller holding only the root screen.
func New[T any](rootState T) *Controller[T] {
	return &Controller[T]{stack: []Frame[T]{{Screen: ContextSelect{}, State: rootState}}}
}

// Current returns the top frame.
func (c *Controller[T]) Current() Frame[T] {
	return c.stack[len(c.stack)-1]
}

// Depth is the number of frames, at least 1.
func (c *Controller[T]) Depth() int {
	return len(c.stack)
}

// Frames returns the stack bottom to top. Callers must not modify it.
func (c *Controller[T]) Frames() []Frame[T] {
	return c.stack
}

// Push drills down into s. The stack is untouched on error.
func (c *Controller[T]) Push(s Screen, state T) error {
	if !canPush(c.Current().Screen, s) {
		return fmt.Errorf("%w: %T -> %T", ErrInvalidTransition, c.Current().Screen, s)
	}
	c.stack = append(c.stack, Frame[T]{Screen: s, State: state})
	return nil
}

// Replace swaps the top frame. Only a resource list may be replaced, and only
// by another resource list of the same context and namespace.
func (c *Controller[T]) Replace(s Screen, state T) error {
	cur, ok := c.Current().Screen.(ResourceList)
	next, ok2 := s.(ResourceList)
	if !ok || !ok2 || cur.Context != next.Context || cur.Namespace != next.Namespace {
		return fmt.Errorf("%w: replace %T with %T", ErrInvalidTransition, c.Current().Screen, s)
	}
	c.stack[len(c.stack)-1] = Frame[T]{Screen: s, State: state}
	return nil
}

// SetState updates the state of the top frame.
func (c *Controller[T]) SetState(state T) {
	c.stack[len(c.stack)-1].State = state
}

// Pop removes the top frame. Popping the root leaves the stack as is and
// reports quit.
func (c *Controller[T]) Pop() (quit bool) {
	if len(c.stack) == 1 {
		return true
	}
	var zero Frame[T]
	c.stack[len(c.stack)-1] = zero
	c.stack = c.stack[:len(c.stack)-1]
	return false
}

func canPush(from, to Screen) bool {
	switch f := from.(type) {
	case ContextSelect:
		_, ok := to.(NamespaceSelect)
		return ok
	case NamespaceSelect:
		t, ok := to.(ResourceList)
		return ok && t.Context == f.Context
	case ResourceList:
		t, ok := to.(OperationMenu)
		return ok && t.Context == f.Context && t.Namespace == f.Namespace && t.Resource.Kind == f.Kind
	case OperationMenu:
		_, ok := to.(ResultView)
		return ok
	default:
		return false
	}
}
