package valdrop

import (
	"reflect"
	"runtime"
	"sync/atomic"
)

// Finalizer is implemented by value types whose cleanup consumes the value.
//
// Finalize is declared on a value receiver: it operates on its own copy of
// the value, so the cleanup logic is free to hand owned sub-fields to
// teardown routines that demand full ownership. After Finalize returns the
// value is spent and must not be used again.
//
// Types held in an Auto should not additionally free the same underlying
// state through another cleanup path such as io.Closer; Auto calls Finalize
// and nothing else, and a second path would free the state twice.
type Finalizer interface {
	Finalize()
}

// Auto holds exactly one value of a Finalizer type and guarantees its
// Finalize method runs at most once, at the point the guard is released.
//
// The usual pattern mirrors any other scope-bound resource:
//
//	g := valdrop.New(openThing())
//	defer g.Close()
//
// Close runs Finalize on the held value. Take extracts the value instead,
// suppressing the Finalize call and transferring the obligation to the
// caller. Whichever happens first wins; the guard then holds nothing, and
// a later deferred Close finds it empty and does nothing.
//
// Auto is a handle: copying it copies the handle, not the value, so every
// copy shares the single value and the single finalize obligation. Use
// Clone to obtain an independent duplicate. The zero Auto holds no cell
// and is not usable; construct with New, Zero, or Clone.
type Auto[T Finalizer] struct {
	c *cell[T]
}

// cell is the tagged storage behind a guard. The value lives here, exempt
// from any implicit cleanup; released flips exactly once, and whoever flips
// it moves the value out and leaves the zero placeholder behind.
type cell[T Finalizer] struct {
	val T
	st  *guardState
}

// guardState is allocated separately from the cell so the GC-time leak
// check can observe it after the cell itself has been collected.
type guardState struct {
	released atomic.Bool
	typ      string
}

// New takes ownership of val and returns an armed guard for it.
func New[T Finalizer](val T) Auto[T] {
	c := &cell[T]{
		val: val,
		st:  &guardState{typ: reflect.TypeFor[T]().String()},
	}
	runtime.AddCleanup(c, reportLeak, c.st)
	return Auto[T]{c: c}
}

// Value returns a copy of the held value.
// It panics if the guard has already been released.
func (a Auto[T]) Value() T {
	a.mustBeLive()
	return a.c.val
}

// Ptr returns a pointer to the held value for in-place mutation. The
// pointer is valid until the guard is released; the usual exclusive-access
// discipline for *T applies, nothing more.
// It panics if the guard has already been released.
func (a Auto[T]) Ptr() *T {
	a.mustBeLive()
	return &a.c.val
}

// Live reports whether the guard still holds its value, i.e. it has been
// neither closed nor taken.
func (a Auto[T]) Live() bool {
	return a.c != nil && !a.c.st.released.Load()
}

// Close finalizes the held value. The first call moves the value out,
// leaves the zero placeholder in the cell, and runs Finalize on the moved
// value; every later call, including a deferred Close after Take, is a
// no-op. Close is the scope-end hook and is normally deferred right after
// New.
func (a Auto[T]) Close() {
	if a.c == nil {
		return
	}
	v, ok := a.c.take()
	if !ok {
		return
	}
	v.Finalize()
}

// Take extracts the held value without finalizing it. The guard is left
// empty, so its deferred Close does nothing, and the caller now owns the
// finalize obligation: either re-wrap the value with New or call Finalize
// on it directly.
// It panics if the guard has already been released.
func (a Auto[T]) Take() T {
	if a.c == nil {
		panic(errNoValue)
	}
	v, ok := a.c.take()
	if !ok {
		panic(errNoValue)
	}
	return v
}

// take performs the one-way release transition: swap the value for the
// zero placeholder and report whether this call won the transition.
func (c *cell[T]) take() (T, bool) {
	if !c.st.released.CompareAndSwap(false, true) {
		var zero T
		return zero, false
	}
	v := c.val
	var zero T
	c.val = zero
	return v, true
}

// errNoValue is the panic raised when a released or zero guard is asked
// for its value.
const errNoValue = "valdrop: guard holds no value"

func (a Auto[T]) mustBeLive() {
	if a.c == nil || a.c.st.released.Load() {
		panic(errNoValue)
	}
}
