package valdrop

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// recorder observes the finalize calls made by tracked values.
type recorder struct {
	calls int
	last  int
	order []int
}

// tracked is a counter-bearing value whose consuming finalize reports its
// final contents to the shared recorder.
type tracked struct {
	count int
	rec   *recorder
}

func (v tracked) Finalize() {
	v.rec.calls++
	v.rec.last = v.count
	v.rec.order = append(v.rec.order, v.count)
}

func (v tracked) Clone() tracked { return v }

func TestCloseRunsFinalizeOnce(t *testing.T) {
	rec := &recorder{}

	func() {
		g := New(tracked{count: 5, rec: rec})
		defer g.Close()
	}()

	require.Equal(t, 1, rec.calls)
	require.Equal(t, 5, rec.last)
}

func TestCloseIsIdempotent(t *testing.T) {
	rec := &recorder{}
	g := New(tracked{count: 5, rec: rec})

	g.Close()
	g.Close()

	require.Equal(t, 1, rec.calls)
	require.False(t, g.Live())
}

func TestTakeSuppressesFinalize(t *testing.T) {
	rec := &recorder{}

	v := func() tracked {
		g := New(tracked{count: 7, rec: rec})
		defer g.Close()
		return g.Take()
	}()

	require.Equal(t, 0, rec.calls)
	require.Equal(t, 7, v.count)
}

func TestConstructTakeRoundTrip(t *testing.T) {
	rec := &recorder{}
	for _, n := range []int{0, 1, 42, -3} {
		v := tracked{count: n, rec: rec}
		require.Equal(t, v, New(v).Take())
	}
	require.Equal(t, 0, rec.calls)
}

func TestMutationThroughPtrReachesFinalize(t *testing.T) {
	rec := &recorder{}
	g := New(tracked{count: 5, rec: rec})

	g.Ptr().count = 9
	require.Equal(t, 9, g.Value().count)

	g.Close()
	require.Equal(t, 1, rec.calls)
	require.Equal(t, 9, rec.last)
}

func TestValueReturnsACopy(t *testing.T) {
	rec := &recorder{}
	g := New(tracked{count: 5, rec: rec})
	defer g.Close()

	v := g.Value()
	v.count = 100
	require.Equal(t, 5, g.Value().count)
}

func TestThreeGuardsThreeFinalizes(t *testing.T) {
	rec := &recorder{}

	func() {
		a := New(tracked{count: 1, rec: rec})
		defer a.Close()
		b := New(tracked{count: 2, rec: rec})
		defer b.Close()
		c := New(tracked{count: 3, rec: rec})
		defer c.Close()
	}()

	require.Equal(t, 3, rec.calls)
	// Deferred closes run in reverse construction order.
	require.Equal(t, []int{3, 2, 1}, rec.order)
}

func TestAccessAfterReleasePanics(t *testing.T) {
	rec := &recorder{}
	g := New(tracked{count: 1, rec: rec})
	_ = g.Take()

	require.PanicsWithValue(t, errNoValue, func() { g.Take() })
	require.PanicsWithValue(t, errNoValue, func() { g.Value() })
	require.PanicsWithValue(t, errNoValue, func() { _ = g.Ptr() })
	require.NotPanics(t, g.Close)
	require.Equal(t, 0, rec.calls)
}

func TestHandleCopiesShareOneObligation(t *testing.T) {
	rec := &recorder{}
	g := New(tracked{count: 5, rec: rec})
	h := g

	h.Close()
	g.Close()

	require.Equal(t, 1, rec.calls)
	require.False(t, g.Live())
}

func TestLive(t *testing.T) {
	rec := &recorder{}

	g := New(tracked{count: 1, rec: rec})
	require.True(t, g.Live())
	g.Close()
	require.False(t, g.Live())

	h := New(tracked{count: 2, rec: rec})
	_ = h.Take()
	require.False(t, h.Live())

	var zero Auto[tracked]
	require.False(t, zero.Live())
	require.NotPanics(t, zero.Close)
}
