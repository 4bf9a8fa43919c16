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
	"github.com/jetsetilly/thumbwriter/errors"
	"github.com/jetsetilly/thumbwriter/register"
)

// LDRRegAddress loads a 32-bit address into reg via the literal pool: an
// equivalent of the assembler pseudo-instruction "ldr reg, =address". The
// value is enrolled as a literal reference and the PC-relative load offset
// is patched in at Flush.
func (w *Writer) LDRRegAddress(reg register.Register, address uint32) error {
	return w.LDRRegU32(reg, address)
}

// LDRRegU32 loads the literal 32-bit value val into reg via the literal
// pool.
func (w *Writer) LDRRegU32(reg register.Register, val uint32) error {
	ri := register.Describe(reg)

	if err := w.addLiteralReferenceHere(val); err != nil {
		return err
	}

	if ri.Low() {
		w.putInstruction(0x4800 | uint16(ri.Index)<<8)
	} else {
		const add = 1
		w.putInstruction(0xf85f | add<<7)
		w.putInstruction(uint16(ri.Index) << 12)
	}

	return nil
}

// LDRRegReg loads from [src] into dst (offset 0).
func (w *Writer) LDRRegReg(dst, src register.Register) {
	// offset 0 always satisfies the narrow form's range and alignment
	// constraints, so this cannot fail.
	_ = w.LDRRegRegOffset(dst, src, 0)
}

// LDRRegRegOffset loads from [src, #offset] into dst.
func (w *Writer) LDRRegRegOffset(dst, src register.Register, offset uint32) error {
	return w.putTransferRegRegOffset(true, dst, src, offset)
}

// STRRegReg stores src into [dst] (offset 0).
func (w *Writer) STRRegReg(src, dst register.Register) {
	_ = w.STRRegRegOffset(src, dst, 0)
}

// STRRegRegOffset stores src into [dst, #offset].
func (w *Writer) STRRegRegOffset(src, dst register.Register, offset uint32) error {
	return w.putTransferRegRegOffset(false, src, dst, offset)
}

// putTransferRegRegOffset implements the narrow/wide selection described in
// this package's memory-transfer contract: the narrow form requires a low
// (or SP) base, a low destination/source, and an offset that is a multiple
// of 4 within 1020 bytes (SP base) or 124 bytes (low base).
func (w *Writer) putTransferRegRegOffset(load bool, leftReg, rightReg register.Register, offset uint32) error {
	l := register.Describe(leftReg)
	r := register.Describe(rightReg)

	narrowBase := r.Low() || r.Meta == register.MetaSP
	maxOffset := uint32(124)
	if r.Meta == register.MetaSP {
		maxOffset = 1020
	}

	if l.Low() && narrowBase && offset%4 == 0 && offset <= maxOffset {
		var insn uint16
		if r.Meta == register.MetaSP {
			insn = 0x9000 | uint16(l.Index)<<8 | uint16(offset/4)
		} else {
			insn = 0x6000 | uint16(offset/4)<<6 | uint16(r.Index)<<3 | uint16(l.Index)
		}
		if load {
			insn |= 0x0800
		}
		w.putInstruction(insn)
		return nil
	}

	if offset > 4095 {
		return errors.Errorf(errors.OffsetOutOfRange, offset, 4095)
	}

	var loadBit uint16
	if load {
		loadBit = 0x0010
	}
	w.putInstruction(0xf8c0 | loadBit | uint16(r.Index))
	w.putInstruction(uint16(l.Index)<<12 | uint16(offset))
	return nil
}
