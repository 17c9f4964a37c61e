// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package once

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/iox"
)

// CAS states.
const (
	casIdle uint32 = iota
	casRunning
	casDone
)

// CAS is a race-free run-once guard.
//
// The first caller to swap the state from idle to running runs f. Every
// other caller waits until f has returned, so Do never returns before the
// action has completed. If f panics, the guard still latches as done.
//
// Calling Do on the same guard from inside f deadlocks.
type CAS struct {
	state atomix.Uint32
}

// Do runs f exactly once across all callers.
func (g *CAS) Do(f func()) {
	if g.state.LoadAcquire() == casDone {
		return
	}
	g.doSlow(f)
}

func (g *CAS) doSlow(f func()) {
	if g.state.CompareAndSwap(casIdle, casRunning) {
		defer g.state.StoreRelease(casDone)
		f()
		return
	}
	// Lost the swap: wait out the winner with adaptive backoff.
	var bo iox.Backoff
	for g.state.LoadAcquire() != casDone {
		bo.Wait()
	}
}

// Done reports whether the action has completed.
func (g *CAS) Done() bool {
	return g.state.LoadAcquire() == casDone
}
