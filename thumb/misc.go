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

// NOP emits "mov r8, r8", the conventional Thumb no-op encoding.
func (w *Writer) NOP() {
	w.putInstruction(0x46c0)
}

// BKPT emits a software breakpoint with an 8-bit immediate comment field.
func (w *Writer) BKPT(imm uint8) {
	w.putInstruction(0xbe00 | uint16(imm))
}

// Breakpoint emits a trap appropriate to the Writer's target OS: the Linux
// kernel's dedicated Thumb breakpoint instruction on Linux/Android, or
// "bkpt #0; bx lr" elsewhere, a pattern debuggers on other platforms
// generally expect to be able to step over.
func (w *Writer) Breakpoint() {
	switch w.targetOS {
	case Linux, Android:
		w.putInstruction(0xde01)
	default:
		w.BKPT(0)
		w.BX(register.LR)
	}
}

// Bytes copies data into the code stream verbatim. len(data) must be even.
func (w *Writer) Bytes(data []byte) error {
	if len(data)%2 != 0 {
		return errors.Errorf(errors.OddByteLength, len(data))
	}

	copy(w.buf[w.code:], data)
	w.code += len(data)
	w.pc += uint32(len(data))

	return nil
}
