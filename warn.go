// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package once

import (
	"runtime"
	"sync"

	"code.hybscloud.com/atomix"

	"code.hybscloud.com/once/diag"
)

// site identifies a call site by source position. Inlined copies of the
// same call share one site.
type site struct {
	file string
	line int
}

var (
	sites     sync.Map // site -> *CAS
	siteCount atomix.Uint32
)

// Warnf emits format with v through e at most once per calling source line.
// Each call site gets its own [CAS] guard, registered on first use and kept
// for the life of the process.
func Warnf(e diag.Emitter, format string, v any) {
	_, file, line, ok := runtime.Caller(1)
	if !ok {
		file, line = "?", 0
	}
	guardAt(site{file: file, line: line}).Do(func() {
		e.Emitf(format, v)
	})
}

// Sites returns the number of call sites registered by [Warnf].
func Sites() int {
	return int(siteCount.Load())
}

func guardAt(s site) *CAS {
	if g, ok := sites.Load(s); ok {
		return g.(*CAS)
	}
	g, loaded := sites.LoadOrStore(s, new(CAS))
	if !loaded {
		siteCount.Add(1)
	}
	return g.(*CAS)
}
