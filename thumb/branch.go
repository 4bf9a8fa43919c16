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

// Condition is an ARM condition code, numbered one past its real 4-bit
// field value (EQ's field is 0, so Condition EQ is 1) so that the zero
// value is reserved rather than meaning EQ by accident.
type Condition uint8

// Condition codes usable with BCondLabel. AL is not listed: an always-taken
// branch is encoded as an unconditional B, not a conditional one.
const (
	EQ Condition = iota + 1
	NE
	CS
	CC
	MI
	PL
	VS
	VC
	HI
	LS
	GE
	LT
	GT
	LE
)

// B emits an unconditional branch to the absolute address target. Per this
// package's contract it is always encoded as the 32-bit T4 form, the same
// encoding used for BL; a narrower encoding is available via BLabel for
// branches to a symbolic forward label instead of a fixed address.
//
// The computed displacement is not range-checked: a target outside
// approximately +-16MiB of the instruction silently produces a malformed
// encoding. This mirrors the minimal contract this package is built to and
// is a known sharp edge - see DESIGN.md.
func (w *Writer) B(target uint32) {
	w.putBranchImm(target, false, true)
}

// BL emits a branch-with-link (function call) to the absolute address
// target, landing in Thumb state.
func (w *Writer) BL(target uint32) {
	w.putBranchImm(target, true, true)
}

// BLXImm emits a branch-with-link to the absolute address target, landing
// in ARM state. Bit 0 of target is cleared regardless of its input value.
func (w *Writer) BLXImm(target uint32) {
	w.putBranchImm(target, true, false)
}

// putBranchImm is the shared T4 encoder behind B, BL and BLXImm: "A6.3.4
// The Thumb2Supplement" branch-with-link/exchange family. s/j1/j2 are the
// sign and history bits of the branch-offset encoding, each referencing
// a bit of the 25-bit signed distance but with j1/j2 inverted relative to
// the sign bit (a scheme ARM calls "J1/J2 encoding of the branch range").
func (w *Writer) putBranchImm(target uint32, link, thumb bool) {
	distance := int32(target&^1) - int32(w.pc+4)
	distance /= 2

	u := uint32(distance)
	s := (u >> 31) & 1
	j1 := ^((u >> 22) ^ s) & 1
	j2 := ^((u >> 21) ^ s) & 1

	imm10 := uint16((u >> 11) & 0x3ff)
	imm11 := uint16(u & 0x7ff)

	var linkBit, thumbBit uint16
	if link {
		linkBit = 1
	}
	if thumb {
		thumbBit = 1
	}

	w.putInstruction(0xf000 | uint16(s)<<10 | imm10)
	w.putInstruction(0x8000 | linkBit<<14 | uint16(j1)<<13 | thumbBit<<12 | uint16(j2)<<11 | imm11)
}

// BX emits an unconditional branch-and-exchange to reg.
func (w *Writer) BX(reg register.Register) {
	ri := register.Describe(reg)
	w.putInstruction(0x4700 | uint16(ri.Index)<<3)
}

// BLX emits a branch-with-link-and-exchange to reg.
func (w *Writer) BLX(reg register.Register) {
	ri := register.Describe(reg)
	w.putInstruction(0x4780 | uint16(ri.Index)<<3)
}

// BLabel emits an unconditional branch (T2) to a symbolic label, resolved
// at Flush. Displacement must fit an 11-bit signed halfword count
// (roughly +-2046 bytes); exceeding that range fails Flush, not this call.
func (w *Writer) BLabel(id Label) error {
	if err := w.addLabelReferenceHere(id); err != nil {
		return err
	}
	w.putInstruction(0xe000)
	return nil
}

// BCondLabel emits a conditional branch (T1) to a symbolic label, resolved
// at Flush. Displacement must fit an 8-bit signed halfword count (roughly
// +-254 bytes).
func (w *Writer) BCondLabel(cc Condition, id Label) error {
	if err := w.addLabelReferenceHere(id); err != nil {
		return err
	}
	w.putInstruction(0xd000 | uint16(cc-1)<<8)
	return nil
}

// CBZ emits "compare and branch if zero" against a low register and a
// symbolic forward label, resolved at Flush. The encoding only supports
// forward branches within 126 bytes.
func (w *Writer) CBZ(reg register.Register, id Label) error {
	return w.putCompareAndBranch(0xb100, reg, id)
}

// CBNZ emits "compare and branch if non-zero".
func (w *Writer) CBNZ(reg register.Register, id Label) error {
	return w.putCompareAndBranch(0xb900, reg, id)
}

func (w *Writer) putCompareAndBranch(base uint16, reg register.Register, id Label) error {
	ri := register.Describe(reg)
	if !ri.Low() {
		return errors.Errorf(errors.UnsupportedRegister, reg)
	}

	if err := w.addLabelReferenceHere(id); err != nil {
		return err
	}
	w.putInstruction(base | uint16(ri.Index))
	return nil
}
