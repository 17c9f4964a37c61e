// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package diag provides the diagnostic emitters that guarded actions write to.
//
// An [Emitter] formats a template with one value and writes it as a single
// line.
//
//   - [Writer]: synchronous, mutex-serialized writes to an [io.Writer].
//   - [Sink]: asynchronous single-producer emitter. Lines travel through a
//     bounded lock-free SPSC queue ([code.hybscloud.com/lfq]) to one drain
//     goroutine, keeping output I/O off the producer's path.
//   - [Discard]: formats and writes nothing.
package diag
