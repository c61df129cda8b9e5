package valdrop

import "go.uber.org/zap"

// leakMessage is the warning emitted when a guard is collected while
// still armed.
const leakMessage = "finalize obligation leaked: guard discarded while still holding its value"

// reportLeak is the GC-time check registered by New. It runs when a
// guard's cell becomes unreachable. A cell collected after Close or Take
// is the normal end of life and reports nothing; a cell collected while
// still armed means the caller dropped the guard without releasing it,
// so the finalize obligation is gone for good.
//
// The leaked value is reported, never finalized: Finalize runs
// synchronously at the release point or not at all, and the GC's cleanup
// goroutine is neither.
func reportLeak(st *guardState) {
	if st.released.Load() {
		return
	}
	Logger().Warn(leakMessage, zap.String("type", st.typ))
}
