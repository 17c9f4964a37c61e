// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package harness measures the per-check cost of run-once guards.
//
// # Measurement
//
//   - Entries: [Standard] builds one named entry per guard variant. Each entry
//     makes [Iterations] guarded calls on its own guard, which fires once for
//     the life of the entry.
//   - Runner: a [Runner] times one entry. [DefaultRunner] delegates warm-up and
//     iteration scaling to [testing.Benchmark].
//   - Sampling: [Suite.Run] samples every entry [Config.Samples] times, trims
//     outliers symmetrically, and summarizes the rest with
//     [github.com/montanaflynn/stats].
//   - Report: [Report.WriteText] prints a table; [Report.WriteYAML] writes a
//     report file; [Report.Ordered] checks the ordinal cost relationship.
//
// # Concurrency
//
// Measurement is single-threaded. [Probe] is the separate concurrent check: it
// races many first callers against fresh guards and counts how many ran the
// action.
//
// # Example
//
//	progress := diag.NewSink(os.Stderr)
//	defer progress.Close()
//	s := harness.New(harness.DefaultConfig(), harness.WithProgress(progress))
//	if err := s.RegisterVariants(diag.NewWriter(os.Stdout)); err != nil {
//		return err
//	}
//	report, err := s.Run(ctx)
//	if err != nil {
//		return err
//	}
//	report.WriteText(os.Stdout)
package harness
