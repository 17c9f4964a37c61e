// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package once

import (
	"sync/atomic"

	"code.hybscloud.com/atomix"
)

// Relaxed is a run-once guard backed by an atomic flag with relaxed ordering.
//
// Loads and stores are atomic but carry no happens-before edge. Two
// concurrent first callers can both load 0 and both run f.
type Relaxed struct {
	done atomix.Uint32
}

// Do runs f if the relaxed load observed the flag unset.
func (g *Relaxed) Do(f func()) {
	if g.done.LoadRelaxed() == 0 {
		g.done.StoreRelaxed(1)
		f()
	}
}

// Done reports whether the guard has fired.
func (g *Relaxed) Done() bool {
	return g.done.LoadRelaxed() != 0
}

// SeqCst is a run-once guard backed by a sequentially consistent atomic flag.
//
// The Go memory model orders all sync/atomic operations in one global
// sequence. The load and the store are still two steps, so concurrent first
// callers can both run f.
type SeqCst struct {
	done atomic.Bool
}

// Do runs f if the load observed the flag unset.
func (g *SeqCst) Do(f func()) {
	if !g.done.Load() {
		g.done.Store(true)
		f()
	}
}

// Done reports whether the guard has fired.
func (g *SeqCst) Done() bool {
	return g.done.Load()
}
