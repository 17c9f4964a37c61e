// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package once_test

import (
	"sync"
	"testing"

	"code.hybscloud.com/atomix"

	"code.hybscloud.com/once"
)

// forEachVariant runs fn as a subtest per variant.
func forEachVariant(t *testing.T, fn func(t *testing.T, v once.Variant)) {
	t.Helper()
	for _, v := range once.Variants() {
		t.Run(v.Name, func(t *testing.T) {
			fn(t, v)
		})
	}
}

// skipRacy skips under the race detector for unsound variants and for
// variants whose flag is an atomix cell.
func skipRacy(tb testing.TB, v once.Variant) {
	tb.Helper()
	if !v.Sound || atomixBacked(v.Policy) {
		skipRace(tb)
	}
}

// atomixBacked reports whether the policy's flag is an atomix cell. atomix
// orders through plain loads and stores on TSO targets; the race detector
// tracks per-variable happens-before and cannot see that ordering, so it
// reports races the hardware rules out.
func atomixBacked(p once.Policy) bool {
	return p == once.PolicyRelaxed || p == once.PolicyCompareAndSwap
}

// raceFirstCallers releases n goroutines at once on g and returns how many
// ran the action.
func raceFirstCallers(g once.Guard, n int) int {
	var (
		fired atomix.Uint32
		wg    sync.WaitGroup
	)
	fire := func() { fired.Add(1) }
	start := make(chan struct{})
	for range n {
		wg.Go(func() {
			<-start
			g.Do(fire)
		})
	}
	close(start)
	wg.Wait()
	return int(fired.Load())
}
