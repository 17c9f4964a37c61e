// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package harness

import (
	"context"
	"testing"

	"github.com/pkg/errors"

	"code.hybscloud.com/once/diag"
)

// Entry is a named benchmark entry: one call of Fn makes the entry's full
// run of guarded calls.
type Entry struct {
	Name string
	Fn   func()
}

// Option configures a Suite.
type Option func(*Suite)

// WithRunner replaces DefaultRunner.
func WithRunner(r Runner) Option {
	return func(s *Suite) {
		s.run = r
	}
}

// WithProgress emits one line per entry as sampling starts.
func WithProgress(e diag.Emitter) Option {
	return func(s *Suite) {
		s.progress = e
	}
}

// Suite holds registered entries and samples them on Run.
// A Suite is not safe for concurrent use.
type Suite struct {
	cfg      Config
	run      Runner
	progress diag.Emitter
	entries  []Entry
	index    map[string]int
}

// New returns an empty Suite.
func New(cfg Config, opts ...Option) *Suite {
	s := &Suite{
		cfg:      cfg,
		run:      DefaultRunner,
		progress: diag.Discard,
		index:    make(map[string]int),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Config returns the suite's configuration.
func (s *Suite) Config() Config {
	return s.cfg
}

// Register adds a named entry. Names must be unique and non-empty.
func (s *Suite) Register(name string, fn func()) error {
	if name == "" {
		return ErrEmptyName
	}
	if fn == nil {
		return errors.Wrapf(ErrNilEntry, "entry %q", name)
	}
	if _, ok := s.index[name]; ok {
		return errors.Wrapf(ErrDuplicate, "entry %q", name)
	}
	s.index[name] = len(s.entries)
	s.entries = append(s.entries, Entry{Name: name, Fn: fn})
	return nil
}

// MustRegister is like Register but panics on error.
func (s *Suite) MustRegister(name string, fn func()) {
	if err := s.Register(name, fn); err != nil {
		panic(err)
	}
}

// RegisterVariants registers the Standard entries for every guard variant,
// sized to the suite's iteration count.
func (s *Suite) RegisterVariants(e diag.Emitter) error {
	for _, entry := range Standard(e, s.cfg.Iterations) {
		if err := s.Register(entry.Name, entry.Fn); err != nil {
			return err
		}
	}
	return nil
}

// Names returns the registered entry names in registration order.
func (s *Suite) Names() []string {
	names := make([]string, len(s.entries))
	for i, e := range s.entries {
		names[i] = e.Name
	}
	return names
}

// Run samples every entry and returns the report. ctx is checked between
// samples; a sample in progress is not interrupted.
func (s *Suite) Run(ctx context.Context) (*Report, error) {
	if err := s.cfg.Validate(); err != nil {
		return nil, err
	}
	if len(s.entries) == 0 {
		return nil, ErrNoEntries
	}
	report := &Report{Config: s.cfg, Results: make([]Result, 0, len(s.entries))}
	for _, e := range s.entries {
		s.progress.Emitf("harness: sampling %s", e.Name)
		samples := make([]float64, 0, s.cfg.Samples)
		var allocs int64
		for i := range s.cfg.Samples {
			if err := ctx.Err(); err != nil {
				return nil, errors.Wrapf(err, "harness: %s sample %d", e.Name, i)
			}
			r := s.run(e.Fn)
			samples = append(samples, nsPerCheck(r, s.cfg.Iterations))
			allocs = max(allocs, r.AllocsPerOp())
		}
		res, err := summarize(e.Name, samples, s.cfg.Trim)
		if err != nil {
			return nil, err
		}
		res.AllocsPerOp = allocs
		report.Results = append(report.Results, res)
	}
	return report, nil
}

// nsPerCheck converts one timed sample to ns per guard check, keeping the
// fractional nanoseconds NsPerOp would truncate.
func nsPerCheck(r testing.BenchmarkResult, iterations int) float64 {
	if r.N <= 0 {
		return 0
	}
	return float64(r.T.Nanoseconds()) / float64(r.N) / float64(iterations)
}
