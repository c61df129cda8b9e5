package valdrop

// releaser is the Close surface shared by guards; Scope accepts anything
// that exposes it so nested scopes compose.
type releaser interface {
	Close()
}

// Scope collects guards and releases them together, in reverse
// registration order, when the scope itself is closed. It is the grouped
// form of deferring each guard's Close individually:
//
//	s := valdrop.NewScope()
//	defer s.Close()
//
//	a := valdrop.Wrap(s, openThing())
//	b := valdrop.Wrap(s, openOther())
//
// Closing the scope finalizes b, then a. Guards released earlier by hand
// (closed or taken) are skipped by their own exactly-once transition, so
// every live guard is finalized exactly once no matter how release duties
// are split between the scope and the caller.
//
// Scope performs no synchronization of its own; like a single guard it is
// a sequential construct.
type Scope struct {
	stack []releaser
}

// NewScope returns an empty scope.
func NewScope() *Scope {
	return &Scope{}
}

// Defer registers r to be closed when the scope closes. Registration
// order is release order reversed.
func (s *Scope) Defer(r releaser) {
	s.stack = append(s.stack, r)
}

// Len returns the number of registered guards not yet released by the
// scope.
func (s *Scope) Len() int {
	return len(s.stack)
}

// Close releases every registered guard in reverse registration order and
// empties the scope. Closing an already-closed scope does nothing.
func (s *Scope) Close() {
	for i := len(s.stack) - 1; i >= 0; i-- {
		s.stack[i].Close()
	}
	s.stack = nil
}

// Wrap constructs a guard for val and registers it with s in one step.
func Wrap[T Finalizer](s *Scope, val T) Auto[T] {
	a := New(val)
	s.Defer(a)
	return a
}
