// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package harness

import (
	"code.hybscloud.com/once"
	"code.hybscloud.com/once/diag"
)

// Message and MessageArg make up the diagnostic line each standard entry
// emits when its guard fires.
const (
	Message    = "complex %v arguments are void"
	MessageArg = 42
)

// Standard returns one entry per guard variant, in variant order. Each entry
// owns a guard allocated here, so it fires at most once however often the
// entry runs. Loops call the concrete guard type directly, and the action is
// built once, so the loop body does not allocate.
func Standard(e diag.Emitter, iterations int) []Entry {
	fire := func() { e.Emitf(Message, MessageArg) }
	var (
		plain    once.Plain
		volatile once.Volatile
		relaxed  once.Relaxed
		seqcst   once.SeqCst
		rwlock   once.RWLock
		cas      once.CAS
	)
	return []Entry{
		{Name: once.NamePlain, Fn: func() {
			for range iterations {
				plain.Do(fire)
			}
		}},
		{Name: once.NameVolatile, Fn: func() {
			for range iterations {
				volatile.Do(fire)
			}
		}},
		{Name: once.NameRelaxed, Fn: func() {
			for range iterations {
				relaxed.Do(fire)
			}
		}},
		{Name: once.NameSeqCst, Fn: func() {
			for range iterations {
				seqcst.Do(fire)
			}
		}},
		{Name: once.NameRWLock, Fn: func() {
			for range iterations {
				rwlock.Do(fire)
			}
		}},
		{Name: once.NameCAS, Fn: func() {
			for range iterations {
				cas.Do(fire)
			}
		}},
	}
}
