// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package once

import (
	"sync"

	"github.com/pkg/errors"
)

// ErrPoisoned is the panic value raised by an [RWLock] whose write section
// was unwound by a panic. The at-most-one-flip invariant no longer holds, so
// the guard refuses every later call.
var ErrPoisoned = errors.New("once: lock poisoned")

// RWLock is a run-once guard whose bool is protected by a reader/writer lock.
//
// The check holds the read lock and the flip holds the write lock, as two
// separate acquisitions. Concurrent first callers can all pass the check
// before any of them flips, so f may run more than once. f runs with no lock
// held.
type RWLock struct {
	mu       sync.RWMutex
	done     bool
	poisoned bool
}

// Do runs f if the read-locked check observed the flag unset.
// Panics with [ErrPoisoned] if the lock is poisoned.
func (g *RWLock) Do(f func()) {
	if g.Done() {
		return
	}
	g.write(func() { g.done = true })
	f()
}

// Done reports whether the guard has fired.
// Panics with [ErrPoisoned] if the lock is poisoned.
func (g *RWLock) Done() bool {
	g.mu.RLock()
	done, poisoned := g.done, g.poisoned
	g.mu.RUnlock()
	if poisoned {
		panic(ErrPoisoned)
	}
	return done
}

// write runs fn under the write lock. A panic out of fn poisons the guard
// and is re-raised.
func (g *RWLock) write(fn func()) {
	g.mu.Lock()
	if g.poisoned {
		g.mu.Unlock()
		panic(ErrPoisoned)
	}
	ok := false
	defer func() {
		if !ok {
			g.poisoned = true
		}
		g.mu.Unlock()
	}()
	fn()
	ok = true
}
