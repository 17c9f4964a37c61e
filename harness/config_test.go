// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package harness_test

import (
	"testing"

	"github.com/pkg/errors"

	"code.hybscloud.com/once/harness"
)

func TestDefaultConfig(t *testing.T) {
	cfg := harness.DefaultConfig()
	if cfg.Iterations != 1_000_000 {
		t.Fatalf("Iterations = %d, want 1000000", cfg.Iterations)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		name string
		cfg  harness.Config
	}{
		{"zero iterations", harness.Config{Iterations: 0, Samples: 1}},
		{"negative samples", harness.Config{Iterations: 1, Samples: -1}},
		{"negative trim", harness.Config{Iterations: 1, Samples: 1, Trim: -0.1}},
		{"half trim", harness.Config{Iterations: 1, Samples: 1, Trim: 0.5}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.cfg.Validate()
			if errors.Cause(err) != harness.ErrBadConfig {
				t.Fatalf("Validate = %v, want ErrBadConfig", err)
			}
		})
	}
}
