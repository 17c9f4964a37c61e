// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package once_test

import (
	"testing"

	"code.hybscloud.com/once"
	"code.hybscloud.com/once/diag"
)

// One guard per benchmark, living for the whole test binary.
var (
	benchPlain    once.Plain
	benchVolatile once.Volatile
	benchRelaxed  once.Relaxed
	benchSeqCst   once.SeqCst
	benchRWLock   once.RWLock
	benchCAS      once.CAS
)

func benchFire() {
	diag.Discard.Emitf("complex %v arguments are void", 42)
}

// BenchmarkPlain measures one plain-cell guard check.
func BenchmarkPlain(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		benchPlain.Do(benchFire)
	}
}

// BenchmarkVolatile measures one non-cached-cell guard check.
func BenchmarkVolatile(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		benchVolatile.Do(benchFire)
	}
}

// BenchmarkRelaxed measures one relaxed atomic guard check.
func BenchmarkRelaxed(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		benchRelaxed.Do(benchFire)
	}
}

// BenchmarkSeqCst measures one sequentially consistent atomic guard check.
func BenchmarkSeqCst(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		benchSeqCst.Do(benchFire)
	}
}

// BenchmarkRWLock measures one read-locked guard check.
func BenchmarkRWLock(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		benchRWLock.Do(benchFire)
	}
}

// BenchmarkCAS measures one compare-and-swap guard check after it fired.
func BenchmarkCAS(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		benchCAS.Do(benchFire)
	}
}

// BenchmarkRWLockParallel measures read-lock contention on a fired guard.
func BenchmarkRWLockParallel(b *testing.B) {
	var g once.RWLock
	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			g.Do(benchFire)
		}
	})
}

// BenchmarkCASParallel measures the CAS fast path under parallel readers.
func BenchmarkCASParallel(b *testing.B) {
	skipRace(b) // CAS state is an atomix cell
	var g once.CAS
	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			g.Do(benchFire)
		}
	})
}

// BenchmarkWarnf measures the call-site lookup of Warnf.
func BenchmarkWarnf(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		once.Warnf(diag.Discard, "complex %v arguments are void", 42)
	}
}
