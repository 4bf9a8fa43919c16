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
	"github.com/jetsetilly/thumbwriter/logger"
)

// Label is an opaque, caller-supplied token identifying a forward branch
// target. Any comparable value works - a pointer, an interned string, a
// small int - identity is tested with ==.
type Label = any

// lookupLabel returns the address a label was Defined at, and whether it
// has been defined yet.
func (w *Writer) lookupLabel(id Label) (uint32, bool) {
	for _, l := range w.labels {
		if l.id == id {
			return l.address, true
		}
	}
	return 0, false
}

// DefineLabel binds id to the Writer's current program counter. It fails
// if id is already bound, or if the label table is full.
func (w *Writer) DefineLabel(id Label) error {
	if _, ok := w.lookupLabel(id); ok {
		return errors.Errorf(errors.LabelAlreadyDefined, id)
	}

	if len(w.labels) == MaxLabels {
		return errors.Errorf(errors.LabelTableFull, MaxLabels)
	}

	w.labels = append(w.labels, labelDef{id: id, address: w.pc})

	return nil
}

// addLabelReferenceHere records a pending fixup at the Writer's current
// cursor: the halfword about to be emitted there will have its
// displacement field patched in once id is defined and Flush runs.
func (w *Writer) addLabelReferenceHere(id Label) error {
	if len(w.labelRefs) == MaxLabelRefs {
		return errors.Errorf(errors.LabelRefTableFull, MaxLabelRefs)
	}

	w.labelRefs = append(w.labelRefs, labelRef{
		id:   id,
		insn: w.code,
		pc:   w.pc + 4,
	})

	return nil
}

// flushLabels resolves every pending branch-to-label fixup, in the order
// the references were recorded. On the first unresolved label it aborts,
// clearing both fixup tables; code already emitted is untouched.
func (w *Writer) flushLabels() error {
	if len(w.labelRefs) == 0 {
		return nil
	}

	for _, r := range w.labelRefs {
		target, ok := w.lookupLabel(r.id)
		if !ok {
			w.labelRefs = w.labelRefs[:0]
			w.literalRefs = w.literalRefs[:0]
			logger.Logf("thumb", "flush failed: label %v was never defined", r.id)
			return errors.Errorf(errors.LabelUndefined, r.id)
		}

		distance := (int32(target) - int32(r.pc)) / 2

		insn := w.halfwordAt(r.insn)

		switch {
		case insn&0xf000 == 0xd000:
			// conditional branch (T1): 8-bit signed halfword displacement
			if !fitsSigned(int64(distance), 8) {
				w.labelRefs = w.labelRefs[:0]
				w.literalRefs = w.literalRefs[:0]
				return errors.Errorf(errors.BranchDistanceInvalid, distance, "conditional (T1)")
			}
			insn |= uint16(distance) & 0xff

		case insn&0xf800 == 0xe000:
			// unconditional branch (T2): 11-bit signed halfword displacement
			if !fitsSigned(int64(distance), 11) {
				w.labelRefs = w.labelRefs[:0]
				w.literalRefs = w.literalRefs[:0]
				return errors.Errorf(errors.BranchDistanceInvalid, distance, "unconditional (T2)")
			}
			insn |= uint16(distance) & 0x7ff

		default:
			// CBZ/CBNZ: i:imm5 is a 6-bit unsigned halfword count (a 7-bit
			// byte displacement, at most 126 bytes), forward only
			if distance < 0 || !fitsUnsigned(int64(distance), 6) {
				w.labelRefs = w.labelRefs[:0]
				w.literalRefs = w.literalRefs[:0]
				return errors.Errorf(errors.BranchDistanceInvalid, distance, "CBZ/CBNZ")
			}
			i := uint16((distance >> 5) & 1)
			imm5 := uint16(distance & 0x1f)
			insn |= (i << 9) | (imm5 << 3)
		}

		w.putHalfwordAt(r.insn, insn)
	}

	w.labelRefs = w.labelRefs[:0]

	return nil
}

// fitsSigned reports whether v fits in a two's-complement field of n bits.
func fitsSigned(v int64, n uint) bool {
	lo := -(int64(1) << (n - 1))
	hi := (int64(1) << (n - 1)) - 1
	return v >= lo && v <= hi
}

// fitsUnsigned reports whether v fits in an unsigned field of n bits.
func fitsUnsigned(v int64, n uint) bool {
	return v >= 0 && v < (int64(1)<<n)
}
