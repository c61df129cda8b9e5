// Package valdrop guards values whose cleanup must consume the value
// rather than merely mutate it.
//
// Ordinary cleanup hooks hand the cleanup logic a reference to the value,
// which is not enough when teardown needs to move owned sub-resources out
// of it, for example passing a handle to a release routine that demands
// full ownership. A type declares "my cleanup consumes me" by implementing
// Finalizer with a value receiver, and Auto makes that cleanup run exactly
// once when the guard is released.
//
// # Lifecycle
//
// A guard has one live state and two terminal ones:
//
//	New(v)  ──► armed ──┬── Close() ──► finalized   (Finalize ran, once)
//	                    └── Take()  ──► extracted   (Finalize suppressed)
//
// The transition is one-way and exactly-once. Close after Take is a no-op,
// which is what makes the canonical pairing safe:
//
//	g := valdrop.New(acquire())
//	defer g.Close()
//
//	// ... use g.Value() and g.Ptr() ...
//
//	if handOff {
//	    raw := g.Take() // finalize never runs for g; caller owns raw
//	    return raw
//	}
//
// Whichever path wins swaps the value out of the guard and leaves an inert
// zero placeholder behind, so no release path can ever observe, duplicate,
// or re-finalize a value that has already moved out.
//
// # Transparent Access
//
// Value returns a copy for reading; Ptr returns *T for in-place mutation.
// The guard interposes on nothing but release: mutations through Ptr are
// exactly what Finalize later receives. Both panic once the guard has been
// released, since the value is no longer there to access.
//
// # Capability Forwarding
//
// Derived capabilities are available precisely when the inner type has
// them, expressed as constrained functions:
//
//	valdrop.Equal(x, y)        // T comparable
//	valdrop.Compare(x, y)      // T ordered
//	valdrop.Less(x, y)         // T ordered
//	valdrop.Hash(seed, x)      // T comparable
//	valdrop.Clone(x)           // T has Clone() T
//	valdrop.Zero[T]()          // always: zero value of T
//
// Printing forwards too: a guard formats as its held value under any fmt
// verb, and as "<taken>" once released. Clone yields a fully independent
// guard; finalizing one side never touches the other.
//
// # Grouped Release
//
// Scope collects guards and closes them in reverse registration order,
// for the cases where one enclosing lifetime owns several values:
//
//	s := valdrop.NewScope()
//	defer s.Close()
//
//	db := valdrop.Wrap(s, openDB())
//	tx := valdrop.Wrap(s, beginTx(db.Ptr()))
//
// # Concurrency
//
// The guard adds no shared mutable state beyond a single release flag, so
// its thread-safety is exactly the inner type's: an Auto[T] may be moved
// to or shared between goroutines precisely when a T may. This is an
// asserted contract, not an inferred one: the package itself never
// synchronizes access to the held value.
//
// # Leak Reporting
//
// A guard that becomes unreachable while still armed is a leaked finalize
// obligation. The package reports it through its logger (a no-op logger
// unless replaced via SetLogger) when the garbage collector notices; the
// value is reported, never finalized late. Discarding a guard on purpose
// is therefore visible but terminal, exactly like losing any other
// must-close resource.
//
// # One Cleanup Path
//
// Auto calls Finalize and nothing else. A type that also frees the same
// underlying state through another path, such as an io.Closer Close or
// its own GC cleanup, will free that state twice when both paths run.
// Give a type one cleanup path; the language offers no way to forbid the
// second one statically.
package valdrop
