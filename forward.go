package valdrop

import (
	"cmp"
	"fmt"
	"hash/maphash"
)

// Cloner is implemented by value types that can produce an independent
// duplicate of themselves.
type Cloner[T any] interface {
	Clone() T
}

// Equal reports whether two live guards hold equal values.
// Available exactly when T is comparable.
func Equal[T interface {
	Finalizer
	comparable
}](x, y Auto[T]) bool {
	return x.Value() == y.Value()
}

// Compare orders two live guards by their held values, returning
// -1, 0, or +1 in the manner of cmp.Compare.
// Available exactly when T is an ordered type.
func Compare[T interface {
	Finalizer
	cmp.Ordered
}](x, y Auto[T]) int {
	return cmp.Compare(x.Value(), y.Value())
}

// Less reports whether x's held value orders before y's.
// Available exactly when T is an ordered type.
func Less[T interface {
	Finalizer
	cmp.Ordered
}](x, y Auto[T]) bool {
	return x.Value() < y.Value()
}

// Hash returns the hash of the guard's held value under the given seed,
// using the runtime's hash for comparable values. Equal values hash
// equally under the same seed.
// Available exactly when T is comparable.
func Hash[T interface {
	Finalizer
	comparable
}](seed maphash.Seed, x Auto[T]) uint64 {
	return maphash.Comparable(seed, x.Value())
}

// Clone returns a new armed guard over an independent duplicate of x's
// held value. Releasing either guard never affects the other.
// Available exactly when T can duplicate itself.
func Clone[T interface {
	Finalizer
	Cloner[T]
}](x Auto[T]) Auto[T] {
	return New(x.Value().Clone())
}

// Zero returns an armed guard over the zero value of T.
func Zero[T Finalizer]() Auto[T] {
	var zero T
	return New(zero)
}

// taken is what a released or zero guard prints as.
const taken = "<taken>"

// Format forwards the verb and flags to the held value, so a guard prints
// exactly as its value would under %v, %+v, %#v and friends. A released
// guard prints as "<taken>".
func (a Auto[T]) Format(f fmt.State, verb rune) {
	if !a.Live() {
		fmt.Fprint(f, taken)
		return
	}
	fmt.Fprintf(f, fmt.FormatString(f, verb), a.c.val)
}

// String returns the held value's default formatting, or "<taken>" for a
// released guard.
func (a Auto[T]) String() string {
	if !a.Live() {
		return taken
	}
	return fmt.Sprint(a.c.val)
}
