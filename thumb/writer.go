// This file is part of thumbwriter.
//
// thumbwriter is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// thumbwriter is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with thumbwriter.  If not, see <https://www.gnu.org/licenses/>.

package thumb

import (
	"encoding/binary"
	"runtime"
	"sync/atomic"
)

// OS is the target-OS tag consulted by Breakpoint. It has no other effect
// on code generation.
type OS string

// Recognised OS tags. Any other value (including the zero value) is
// treated as Other.
const (
	Linux   OS = "linux"
	Android OS = "android"
	Other   OS = "other"
)

// hostOS reports the OS tag a freshly reset Writer should carry, mirroring
// the host process the generated code will run under.
func hostOS() OS {
	switch runtime.GOOS {
	case "linux":
		return Linux
	case "android":
		return Android
	default:
		return Other
	}
}

// Capacity limits for the three bounded fixup tables. These are design
// values, not hard architectural limits; Init allocates each table with
// this capacity up front, and recording into a full table fails so that a
// runaway caller fails fast rather than growing the tables without bound.
const (
	MaxLabels      = 100
	MaxLabelRefs   = 3 * MaxLabels
	MaxLiteralRefs = 100
)

// Writer emits Thumb/Thumb-2 instructions into a borrowed byte slice. The
// zero value is not usable; construct one with New.
type Writer struct {
	refCount int32

	buf  []byte
	base uint32
	code int
	pc   uint32

	targetOS OS

	labels      []labelDef
	labelRefs   []labelRef
	literalRefs []literalRef
}

type labelDef struct {
	id      any
	address uint32
}

type labelRef struct {
	id   any
	insn int
	pc   uint32
}

type literalRef struct {
	value uint32
	insn  int
	pc    uint32
}

// New allocates a Writer that emits into code, treating code[0] as the
// address address. code is borrowed: the Writer never reallocates or frees
// it, and it must remain valid and large enough (instructions, the literal
// pool, and any alignment nop) for the Writer's lifetime.
func New(code []byte, address uint32) *Writer {
	w := &Writer{}
	w.Init(code, address)
	return w
}

// Init (re)binds w to a new backing buffer and base address, as New does.
// It is provided separately from New so that an existing Writer value can
// be reused; the fixup tables are allocated afresh.
func (w *Writer) Init(code []byte, address uint32) {
	w.refCount = 1
	w.labels = make([]labelDef, 0, MaxLabels)
	w.labelRefs = make([]labelRef, 0, MaxLabelRefs)
	w.literalRefs = make([]literalRef, 0, MaxLiteralRefs)
	w.buf = code

	w.Reset(address)
}

// Reset rebases the Writer onto address without changing the backing
// buffer: the cursor returns to the start of the buffer and both fixup
// tables are cleared. Bytes already present in the buffer below the new
// cursor are logically undefined from this point on.
func (w *Writer) Reset(address uint32) {
	w.base = address
	w.code = 0
	w.pc = address

	w.labels = w.labels[:0]
	w.labelRefs = w.labelRefs[:0]
	w.literalRefs = w.literalRefs[:0]

	w.targetOS = hostOS()
}

// Clear flushes any pending fixups and drops the Writer's reference to its
// backing buffer and tables. A cleared Writer has no buffer, so emitting
// into it panics.
func (w *Writer) Clear() error {
	err := w.Flush()

	w.buf = nil
	w.labels = nil
	w.labelRefs = nil
	w.literalRefs = nil

	return err
}

// Ref increments the Writer's reference count and returns w, for callers
// that share ownership of a Writer across goroutines. It does not make
// concurrent emission safe - only lifetime bookkeeping is atomic.
func (w *Writer) Ref() *Writer {
	atomic.AddInt32(&w.refCount, 1)
	return w
}

// Unref decrements the reference count and calls Clear once it reaches
// zero.
func (w *Writer) Unref() {
	if atomic.AddInt32(&w.refCount, -1) == 0 {
		_ = w.Clear()
	}
}

// SetTargetOS overrides the OS tag used by Breakpoint. It takes effect for
// subsequently emitted breakpoints only.
func (w *Writer) SetTargetOS(os OS) {
	w.targetOS = os
}

// Cur returns the address of the Writer's current cursor.
func (w *Writer) Cur() uint32 {
	return w.base + uint32(w.code)
}

// Offset returns the number of bytes written so far.
func (w *Writer) Offset() int {
	return w.code
}

// Skip advances the cursor and program counter by n bytes without writing
// anything. n need not be a multiple of 2; it is the caller's
// responsibility to leave the stream halfword-aligned if that matters to
// subsequently emitted instructions.
func (w *Writer) Skip(n int) {
	w.code += n
	w.pc += uint32(n)
}

// Flush resolves every pending label and literal fixup and appends the
// literal pool. It is idempotent when both fixup tables are empty.
func (w *Writer) Flush() error {
	if err := w.flushLabels(); err != nil {
		return err
	}
	return w.flushLiterals()
}

// putInstruction writes a single halfword to the cursor, little-endian, and
// advances the cursor and program counter by 2 bytes.
func (w *Writer) putInstruction(insn uint16) {
	binary.LittleEndian.PutUint16(w.buf[w.code:w.code+2], insn)
	w.code += 2
	w.pc += 2
}

// Instruction writes a raw halfword verbatim. It is an escape hatch for
// encodings this package does not otherwise expose.
func (w *Writer) Instruction(insn uint16) {
	w.putInstruction(insn)
}

// halfwordAt reads back the halfword previously written at byte offset
// insn, for use by the fixup passes in labels.go and literals.go.
func (w *Writer) halfwordAt(insn int) uint16 {
	return binary.LittleEndian.Uint16(w.buf[insn : insn+2])
}

func (w *Writer) putHalfwordAt(insn int, v uint16) {
	binary.LittleEndian.PutUint16(w.buf[insn:insn+2], v)
}
