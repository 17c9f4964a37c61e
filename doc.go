// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package once provides run-once guards with different synchronization costs.
//
// A guard gates a side-effecting action so that it runs on the first call to
// Do that observes the guard unset. The guards differ in how the fired flag is
// stored and how reads and writes of it are ordered.
//
// # Variants
//
// Ordered by increasing synchronization overhead, not by correctness:
//
//   - [Plain]: ordinary bool. No ordering. Single goroutine only.
//   - [Volatile]: bool read and written through non-inlined accessors, so the
//     compiler reloads it on every check. Single goroutine only.
//   - [Relaxed]: [code.hybscloud.com/atomix.Uint32] with relaxed load and store.
//   - [SeqCst]: [sync/atomic.Bool], sequentially consistent load and store.
//   - [RWLock]: bool under [sync.RWMutex]; the check takes the read lock, the
//     flip takes the write lock.
//   - [CAS]: single compare-and-swap from unset to running. The only variant
//     that runs the action exactly once under concurrent first callers.
//
// The first five are check-then-act: the load and the store are separate
// steps, so two concurrent first callers may both run the action. Plain and
// Volatile are additionally data races under concurrent access. They are kept
// intentionally unsound as points of comparison.
//
// # Call Sites
//
// A guard lives as long as the call site it protects. Declare one per site as
// a package-level variable or struct field, or use [Warnf], which keys a [CAS]
// guard by the caller's source line.
//
// # Example
//
//	var warnOnce once.CAS
//
//	func handle(e diag.Emitter) {
//		warnOnce.Do(func() { e.Emitf("complex %v arguments are void", 42) })
//	}
package once
