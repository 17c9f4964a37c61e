// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package harness

import (
	"slices"

	"github.com/montanaflynn/stats"
	"github.com/pkg/errors"
)

// summarize trims samples and reduces the rest to mean, median and
// standard deviation. Samples are kept untrimmed in the result.
func summarize(name string, samples []float64, trim float64) (Result, error) {
	kept := trimmed(samples, trim)
	mean, err := stats.Mean(kept)
	if err != nil {
		return Result{}, errors.Wrapf(err, "harness: mean of %s", name)
	}
	median, err := stats.Median(kept)
	if err != nil {
		return Result{}, errors.Wrapf(err, "harness: median of %s", name)
	}
	sd, err := stats.StandardDeviation(kept)
	if err != nil {
		return Result{}, errors.Wrapf(err, "harness: stddev of %s", name)
	}
	return Result{
		Name:    name,
		Mean:    mean,
		Median:  median,
		StdDev:  sd,
		Samples: samples,
	}, nil
}

// trimmed drops the lowest and highest frac of samples. At least one
// sample is always kept.
func trimmed(samples []float64, frac float64) []float64 {
	sorted := slices.Clone(samples)
	slices.Sort(sorted)
	k := int(float64(len(sorted)) * frac)
	if 2*k >= len(sorted) {
		k = (len(sorted) - 1) / 2
	}
	return sorted[k : len(sorted)-k]
}
