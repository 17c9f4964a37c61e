// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package harness

import "testing"

// Runner times repeated calls of fn and reports the result per call.
type Runner func(fn func()) testing.BenchmarkResult

// DefaultRunner runs fn under testing.Benchmark, which handles warm-up and
// scales the call count to its benchtime.
func DefaultRunner(fn func()) testing.BenchmarkResult {
	return testing.Benchmark(func(b *testing.B) {
		b.ReportAllocs()
		for b.Loop() {
			fn()
		}
	})
}
