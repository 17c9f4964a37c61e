// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package harness

import "github.com/pkg/errors"

// Iterations is the number of guarded calls one entry makes.
const Iterations = 1_000_000

// Config controls sampling.
type Config struct {
	// Iterations is the guarded-call count of each entry, used to turn
	// ns per entry call into ns per guard check.
	Iterations int `yaml:"iterations"`
	// Samples is the number of timed runs per entry.
	Samples int `yaml:"samples"`
	// Trim is the fraction of samples dropped from each end before
	// summarizing. Must be in [0, 0.5).
	Trim float64 `yaml:"trim"`
}

// DefaultConfig returns the standard sampling configuration.
func DefaultConfig() Config {
	return Config{
		Iterations: Iterations,
		Samples:    5,
		Trim:       0.2,
	}
}

// Validate reports whether c is usable.
func (c Config) Validate() error {
	if c.Iterations <= 0 {
		return errors.Wrapf(ErrBadConfig, "iterations %d", c.Iterations)
	}
	if c.Samples <= 0 {
		return errors.Wrapf(ErrBadConfig, "samples %d", c.Samples)
	}
	if c.Trim < 0 || c.Trim >= 0.5 {
		return errors.Wrapf(ErrBadConfig, "trim %g", c.Trim)
	}
	return nil
}
