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

import "github.com/jetsetilly/thumbwriter/errors"

// isT1Load reports whether insn is the 16-bit "LDR Rd, [PC, #imm8]" form
// (T1), as opposed to the 32-bit LDR.W (T2). The two forms carry their
// PC-relative offset in different places and at different granularities,
// so the literal pool fixup pass needs to tell them apart.
func isT1Load(insn uint16) bool {
	return insn&0xf800 == 0x4800
}

// addLiteralReferenceHere records a pending literal-pool fixup at the
// Writer's current cursor: the load instruction about to be emitted there
// will have its PC-relative offset patched in once Flush lays out the
// pool.
func (w *Writer) addLiteralReferenceHere(value uint32) error {
	if len(w.literalRefs) == MaxLiteralRefs {
		return errors.Errorf(errors.LiteralRefTableFull, MaxLiteralRefs)
	}

	w.literalRefs = append(w.literalRefs, literalRef{
		value: value,
		insn:  w.code,
		pc:    w.pc + 4,
	})

	return nil
}

// flushLiterals lays out the literal pool immediately after the last
// emitted instruction, deduplicating by exact 32-bit value, and patches
// every pending PC-relative load to point at its slot. It runs after
// flushLabels so that label fixups see the code stream as it was before
// the pool (and any alignment nop) were appended.
func (w *Writer) flushLiterals() error {
	if len(w.literalRefs) == 0 {
		return nil
	}

	needAlignedSlot := false
	for _, r := range w.literalRefs {
		if isT1Load(w.halfwordAt(r.insn)) {
			needAlignedSlot = true
			break
		}
	}

	// T1 loads require the pool to sit on a 4-byte boundary; T2 loads carry
	// a full byte offset and don't care.
	if needAlignedSlot && w.pc&3 != 0 {
		w.putInstruction(0x46c0) // nop
	}

	firstSlot := w.code
	lastSlot := w.code

	for _, r := range w.literalRefs {
		insn := w.halfwordAt(r.insn)

		slot := firstSlot
		found := false
		for s := firstSlot; s < lastSlot; s += 4 {
			if w.readSlot(s) == r.value {
				slot = s
				found = true
				break
			}
		}

		if !found {
			slot = lastSlot
			w.writeSlot(lastSlot, r.value)
			w.code += 4
			w.pc += 4
			lastSlot += 4
		}

		slotPC := w.base + uint32(slot)
		distance := slotPC - (r.pc &^ 3)

		if isT1Load(insn) {
			w.putHalfwordAt(r.insn, insn|uint16(distance/4)&0xff)
		} else {
			hw2 := w.halfwordAt(r.insn + 2)
			w.putHalfwordAt(r.insn+2, hw2|uint16(distance)&0x0fff)
		}
	}

	w.literalRefs = w.literalRefs[:0]

	return nil
}

func (w *Writer) readSlot(offset int) uint32 {
	b := w.buf[offset : offset+4]
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}

func (w *Writer) writeSlot(offset int, v uint32) {
	b := w.buf[offset : offset+4]
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
}
