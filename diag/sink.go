// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package diag

import (
	"io"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/iox"
	"code.hybscloud.com/lfq"
)

// sinkCapacity is the bounded capacity of the line queue.
const sinkCapacity = 64

// Sink is an asynchronous Emitter.
//
// Emitf formats on the calling goroutine and enqueues the line on a bounded
// SPSC queue; a drain goroutine writes lines to the underlying io.Writer in
// order. Emitf and Close must be called from one goroutine.
type Sink struct {
	q      lfq.SPSC[string]
	slot   string
	w      io.Writer
	err    error
	closed atomix.Uint32
	done   chan struct{}
}

// NewSink returns a Sink writing to w and starts its drain goroutine.
func NewSink(w io.Writer) *Sink {
	s := &Sink{w: w, done: make(chan struct{})}
	s.q.Init(sinkCapacity)
	go s.drain()
	return s
}

// Emitf enqueues one line. Backs off while the queue is full.
// Panics if the Sink is closed.
func (s *Sink) Emitf(template string, v any) {
	if s.closed.LoadAcquire() != 0 {
		panic("diag: emit on closed sink")
	}
	s.slot = format(template, v)
	var bo iox.Backoff
	for {
		err := s.q.Enqueue(&s.slot)
		if err == nil {
			return
		}
		if !iox.IsWouldBlock(err) {
			panic(err)
		}
		bo.Wait()
	}
}

// Close stops accepting lines, waits for the queue to drain, and returns the
// first write error. Close is idempotent.
func (s *Sink) Close() error {
	s.closed.CompareAndSwap(0, 1)
	<-s.done
	return s.err
}

// drain is the single consumer. After observing closed it empties the
// queue once more and exits: every Enqueue happened before Close.
func (s *Sink) drain() {
	defer close(s.done)
	var bo iox.Backoff
	for {
		line, err := s.q.Dequeue()
		if err == nil {
			s.write(line)
			bo.Reset()
			continue
		}
		if s.closed.LoadAcquire() != 0 {
			for {
				line, err := s.q.Dequeue()
				if err != nil {
					return
				}
				s.write(line)
			}
		}
		bo.Wait()
	}
}

func (s *Sink) write(line string) {
	if s.err != nil {
		return
	}
	if _, err := io.WriteString(s.w, line); err != nil {
		s.err = err
	}
}
