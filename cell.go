// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package once

// Plain is a run-once guard backed by an ordinary bool.
//
// Intentionally unsound for comparison only: concurrent callers race on the
// flag, and the compiler is free to cache or reorder accesses to it. Use from
// a single goroutine.
type Plain struct {
	done bool
}

// Do runs f on the first call.
func (g *Plain) Do(f func()) {
	if !g.done {
		g.done = true
		f()
	}
}

// Done reports whether the guard has fired.
func (g *Plain) Done() bool {
	return g.done
}

// Volatile is a run-once guard whose bool is reloaded from memory on every
// check and stored through an accessor the compiler may not inline.
//
// The check is one inlined load. It is not hoisted out of a caller's loop
// because the compiler keeps no value of the field in a register across the
// call to f or to the non-inlined store. This stops compiler elision only.
// It adds no atomicity and no ordering between goroutines. Intentionally
// unsound for comparison only: use from a single goroutine.
type Volatile struct {
	done bool
}

// Do runs f on the first call.
func (g *Volatile) Do(f func()) {
	if !loadVolatile(&g.done) {
		storeVolatile(&g.done, true)
		f()
	}
}

// Done reports whether the guard has fired.
func (g *Volatile) Done() bool {
	return loadVolatile(&g.done)
}

// loadVolatile reads *p through the pointer. It inlines to a single load.
func loadVolatile(p *bool) bool {
	return *p
}

// storeVolatile runs once per guard, so its call frame stays off the
// check path.
//
//go:noinline
func storeVolatile(p *bool, v bool) {
	*p = v
}
