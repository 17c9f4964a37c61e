// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package harness

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// orderFloor is the absolute noise allowance, in ns, for Ordered.
const orderFloor = 1.0

// Result is the summarized cost of one entry, in ns per guard check.
type Result struct {
	Name        string    `yaml:"name"`
	Mean        float64   `yaml:"mean_ns"`
	Median      float64   `yaml:"median_ns"`
	StdDev      float64   `yaml:"stddev_ns"`
	AllocsPerOp int64     `yaml:"allocs_per_op"`
	Samples     []float64 `yaml:"samples_ns"`
}

// Report is the outcome of Suite.Run.
type Report struct {
	Config  Config   `yaml:"config"`
	Results []Result `yaml:"results"`
}

// Result returns the result recorded for name.
func (r *Report) Result(name string) (Result, bool) {
	for _, res := range r.Results {
		if res.Name == name {
			return res, true
		}
	}
	return Result{}, false
}

// WriteText writes the report as an aligned table.
func (r *Report) WriteText(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "name\tmean ns/check\tstddev\tmedian\tallocs\t")
	for _, res := range r.Results {
		fmt.Fprintf(tw, "%s\t%.3f\t±%.3f\t%.3f\t%d\t\n",
			res.Name, res.Mean, res.StdDev, res.Median, res.AllocsPerOp)
	}
	return tw.Flush()
}

// WriteYAML writes the report as a YAML document.
func (r *Report) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return errors.Wrap(err, "harness: encode report")
	}
	return enc.Close()
}

// Ordered checks that the named results are non-decreasing in mean cost.
// Each mean may exceed its successor by the relative slack plus a 1ns floor
// to absorb timer noise.
func (r *Report) Ordered(slack float64, names ...string) error {
	var prev Result
	for i, name := range names {
		cur, ok := r.Result(name)
		if !ok {
			return errors.Wrapf(ErrUnknown, "entry %q", name)
		}
		if i > 0 && prev.Mean > cur.Mean*(1+slack)+orderFloor {
			return errors.Wrapf(ErrOrder, "%s %.3fns > %s %.3fns", prev.Name, prev.Mean, cur.Name, cur.Mean)
		}
		prev = cur
	}
	return nil
}
