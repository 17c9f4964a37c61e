// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package harness

import (
	"context"

	"code.hybscloud.com/atomix"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"code.hybscloud.com/once"
)

// ProbeResult counts how many first callers ran the action per round.
type ProbeResult struct {
	Variant string
	Rounds  int
	Callers int
	// Fires is the action count of each round.
	Fires []int
	// MaxFires is the largest entry of Fires.
	MaxFires int
	// MultiFire is the number of rounds that fired more than once.
	MultiFire int
}

// ExactlyOnce reports whether every round fired exactly once.
func (p ProbeResult) ExactlyOnce() bool {
	for _, n := range p.Fires {
		if n != 1 {
			return false
		}
	}
	return len(p.Fires) > 0
}

// Probe races callers goroutines against a fresh guard of v, rounds times,
// and records how many of them ran the action each round.
//
// Plain and Volatile guards are data races under Probe; do not probe them
// under the race detector.
func Probe(ctx context.Context, v once.Variant, callers, rounds int) (ProbeResult, error) {
	if callers < 2 || rounds < 1 {
		return ProbeResult{}, errors.Wrapf(ErrBadConfig, "probe callers %d rounds %d", callers, rounds)
	}
	res := ProbeResult{
		Variant: v.Name,
		Rounds:  rounds,
		Callers: callers,
		Fires:   make([]int, 0, rounds),
	}
	for i := range rounds {
		if err := ctx.Err(); err != nil {
			return res, errors.Wrapf(err, "harness: probe %s round %d", v.Name, i)
		}
		n, err := probeRound(ctx, v.New(), callers)
		if err != nil {
			return res, errors.Wrapf(err, "harness: probe %s round %d", v.Name, i)
		}
		res.Fires = append(res.Fires, n)
		res.MaxFires = max(res.MaxFires, n)
		if n > 1 {
			res.MultiFire++
		}
	}
	return res, nil
}

// probeRound releases all callers at once through a closed channel and
// returns the number of times the action ran.
func probeRound(ctx context.Context, g once.Guard, callers int) (int, error) {
	var fired atomix.Uint32
	fire := func() { fired.Add(1) }
	start := make(chan struct{})
	eg, ctx := errgroup.WithContext(ctx)
	for range callers {
		eg.Go(func() error {
			select {
			case <-start:
			case <-ctx.Done():
				return ctx.Err()
			}
			g.Do(fire)
			return nil
		})
	}
	close(start)
	if err := eg.Wait(); err != nil {
		return 0, err
	}
	return int(fired.Load()), nil
}
