// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package harness_test

import (
	"testing"
	"time"
)

// scripted is a fake Runner. Each entry built by entry marks itself current
// when called; run calls the entry once and reports the next scripted cost
// for it, in ns per entry call.
type scripted struct {
	current string
	costs   map[string][]time.Duration
	calls   map[string]int
}

func newScripted(costs map[string][]time.Duration) *scripted {
	return &scripted{costs: costs, calls: make(map[string]int)}
}

func (s *scripted) entry(name string) func() {
	return func() {
		s.current = name
		s.calls[name]++
	}
}

func (s *scripted) run(fn func()) testing.BenchmarkResult {
	fn()
	d := s.costs[s.current][0]
	s.costs[s.current] = s.costs[s.current][1:]
	return testing.BenchmarkResult{N: 1, T: d}
}
