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

// CMP emits a comparison of a low register against an 8-bit unsigned
// immediate.
func (w *Writer) CMP(reg register.Register, imm uint8) error {
	ri := register.Describe(reg)
	if !ri.Low() {
		return errors.Errorf(errors.UnsupportedRegister, reg)
	}

	w.putInstruction(0x2800 | uint16(ri.Index)<<8 | uint16(imm))
	return nil
}

// MOV copies src into dst. Both low-register and high-register forms are
// supported.
func (w *Writer) MOV(dst, src register.Register) {
	d := register.Describe(dst)
	s := register.Describe(src)

	if d.Low() && s.Low() {
		w.putInstruction(0x1c00 | uint16(s.Index)<<3 | uint16(d.Index))
		return
	}

	var dstHi, dstIdx uint16
	if !d.Low() {
		dstHi = 1
		dstIdx = uint16(d.Index - 8)
	} else {
		dstIdx = uint16(d.Index)
	}

	w.putInstruction(0x4600 | dstHi<<7 | uint16(s.Index)<<3 | dstIdx)
}

// MOVImm loads an 8-bit unsigned immediate into a low register.
func (w *Writer) MOVImm(dst register.Register, imm uint8) error {
	d := register.Describe(dst)
	if !d.Low() {
		return errors.Errorf(errors.UnsupportedRegister, dst)
	}

	w.putInstruction(0x2000 | uint16(d.Index)<<8 | uint16(imm))
	return nil
}

// ADDImm emits "add dst, #imm" (equivalently "sub dst, #-imm" below).
// dst==SP requires imm be a multiple of 4; any other register requires
// abs(imm) fit in 8 bits.
func (w *Writer) ADDImm(dst register.Register, imm int) error {
	d := register.Describe(dst)

	if d.Meta == register.MetaSP {
		if imm%4 != 0 {
			return errors.Errorf(errors.OffsetMisaligned, imm, 4)
		}

		var sign uint16
		if imm < 0 {
			sign = 0x0080
		}
		w.putInstruction(0xb000 | sign | uint16(abs(imm)/4))
		return nil
	}

	if abs(imm) > 0xff {
		return errors.Errorf(errors.ImmediateOutOfRange, imm, 8)
	}

	var sign uint16
	if imm < 0 {
		sign = 0x0800
	}
	w.putInstruction(0x3000 | sign | uint16(d.Index)<<8 | uint16(abs(imm)))
	return nil
}

// SUBImm emits "sub dst, #imm" as ADDImm with the immediate negated.
func (w *Writer) SUBImm(dst register.Register, imm int) error {
	return w.ADDImm(dst, -imm)
}

// ADDRegReg emits the two-operand form "add dst, src", equivalent to
// ADDRegRegReg(dst, dst, src).
func (w *Writer) ADDRegReg(dst, src register.Register) {
	w.ADDRegRegReg(dst, dst, src)
}

// ADDRegRegReg emits "add dst, left, right". When left and dst are the same
// register this uses the high-register-capable T2 form; otherwise the
// three-operand low-register T1 form, which requires all three registers
// be low.
func (w *Writer) ADDRegRegReg(dst, left, right register.Register) {
	d := register.Describe(dst)
	l := register.Describe(left)
	r := register.Describe(right)

	if l.Meta == d.Meta {
		var hi, idx uint16
		if !d.Low() {
			hi = 0x0080
			idx = uint16(d.Index - 8)
		} else {
			idx = uint16(d.Index)
		}
		w.putInstruction(0x4400 | hi | idx | uint16(r.Index)<<3)
		return
	}

	w.putInstruction(0x1800 | uint16(r.Index)<<6 | uint16(l.Index)<<3 | uint16(d.Index))
}

// SUBRegReg emits the two-operand form "sub dst, src".
func (w *Writer) SUBRegReg(dst, src register.Register) {
	w.SUBRegRegReg(dst, dst, src)
}

// SUBRegRegReg emits "sub dst, left, right". All three registers must be
// low registers.
func (w *Writer) SUBRegRegReg(dst, left, right register.Register) {
	d := register.Describe(dst)
	l := register.Describe(left)
	r := register.Describe(right)

	w.putInstruction(0x1a00 | uint16(r.Index)<<6 | uint16(l.Index)<<3 | uint16(d.Index))
}

// ADDRegRegImm emits "add dst, left, #imm". When left and dst are the same
// register this delegates to ADDImm. When left is SP or PC, the "load
// address" form is used and the immediate must be a non-negative multiple
// of 4. Otherwise the immediate must fit in 3 bits (abs(imm) <= 7).
func (w *Writer) ADDRegRegImm(dst, left register.Register, imm int) error {
	d := register.Describe(dst)
	l := register.Describe(left)

	if l.Meta == d.Meta {
		return w.ADDImm(dst, imm)
	}

	if l.Meta == register.MetaSP || l.Meta == register.MetaPC {
		if imm < 0 || imm%4 != 0 {
			return errors.Errorf(errors.OffsetMisaligned, imm, 4)
		}

		var base uint16
		if l.Meta == register.MetaSP {
			base = 0x0800
		}
		w.putInstruction(0xa000 | base | uint16(d.Index)<<8 | uint16(imm/4))
		return nil
	}

	if abs(imm) > 7 {
		return errors.Errorf(errors.ImmediateOutOfRange, imm, 3)
	}

	var sign uint16
	if imm < 0 {
		sign = 0x0200
	}
	w.putInstruction(0x1c00 | sign | uint16(abs(imm))<<6 | uint16(l.Index)<<3 | uint16(d.Index))
	return nil
}

// SUBRegRegImm emits "sub dst, left, #imm" as ADDRegRegImm with the
// immediate negated.
func (w *Writer) SUBRegRegImm(dst, left register.Register, imm int) error {
	return w.ADDRegRegImm(dst, left, -imm)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
