// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package diag

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"code.hybscloud.com/atomix"
)

// Emitter writes one formatted line per call.
type Emitter interface {
	Emitf(format string, v any)
}

type discard struct{}

func (discard) Emitf(string, any) {}

// Discard is an Emitter that does nothing.
var Discard Emitter = discard{}

// format renders one line, appending a newline when missing.
func format(template string, v any) string {
	s := fmt.Sprintf(template, v)
	if !strings.HasSuffix(s, "\n") {
		s += "\n"
	}
	return s
}

// Writer is an Emitter that writes each line to an io.Writer.
// Safe for concurrent use.
type Writer struct {
	mu    sync.Mutex
	w     io.Writer
	err   error
	lines atomix.Uint32
}

// NewWriter returns a Writer on w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Emitf writes one line. The first write error is kept and reported by Err;
// later lines are still attempted.
func (w *Writer) Emitf(template string, v any) {
	s := format(template, v)
	w.mu.Lock()
	if _, err := io.WriteString(w.w, s); err != nil && w.err == nil {
		w.err = err
	}
	w.mu.Unlock()
	w.lines.Add(1)
}

// Lines returns the number of lines emitted.
func (w *Writer) Lines() int {
	return int(w.lines.Load())
}

// Err returns the first write error.
func (w *Writer) Err() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.err
}
