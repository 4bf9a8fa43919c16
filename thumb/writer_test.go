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

package thumb_test

import (
	"testing"

	"github.com/jetsetilly/thumbwriter/register"
	"github.com/jetsetilly/thumbwriter/test"
	"github.com/jetsetilly/thumbwriter/thumb"
)

// TestMovImmThenBX checks the bytes emitted for "mov r0, #42; bx lr".
func TestMovImmThenBX(t *testing.T) {
	buf := make([]byte, 16)
	w := thumb.New(buf, 0x1000)

	test.ExpectSuccess(t, w.MOVImm(register.R0, 42))
	w.BX(register.LR)

	test.ExpectSuccess(t, w.Flush())

	test.Equate(t, buf[:4], []byte{0x2a, 0x20, 0x70, 0x47})
	test.Equate(t, w.Offset(), 4)
}

func TestCurAdvancesWithOffset(t *testing.T) {
	buf := make([]byte, 16)
	w := thumb.New(buf, 0x2000)

	test.Equate(t, w.Cur(), uint32(0x2000))
	w.NOP()
	test.Equate(t, w.Cur(), uint32(0x2002))
}

func TestSkip(t *testing.T) {
	buf := make([]byte, 16)
	w := thumb.New(buf, 0x2000)

	w.Skip(6)
	test.Equate(t, w.Offset(), 6)
	test.Equate(t, w.Cur(), uint32(0x2006))
}

func TestResetClearsCursorAndTables(t *testing.T) {
	buf := make([]byte, 16)
	w := thumb.New(buf, 0x2000)

	test.ExpectSuccess(t, w.DefineLabel("here"))
	w.NOP()

	w.Reset(0x4000)

	test.Equate(t, w.Cur(), uint32(0x4000))
	test.Equate(t, w.Offset(), 0)

	// the label table was cleared by Reset, so referencing the old id
	// through BLabel now fails to resolve at Flush.
	test.ExpectSuccess(t, w.BLabel("here"))
	test.ExpectFailure(t, w.Flush())
}

func TestRefUnrefClearsAtZero(t *testing.T) {
	buf := make([]byte, 16)
	w := thumb.New(buf, 0x1000)
	w.Ref()

	w.Unref()
	// one reference remains; Flush must still be well-defined
	test.ExpectSuccess(t, w.Flush())

	w.Unref()
}

func TestInstructionEscapeHatch(t *testing.T) {
	buf := make([]byte, 16)
	w := thumb.New(buf, 0x1000)

	w.Instruction(0xbf00) // yield hint
	test.Equate(t, buf[0], byte(0x00))
	test.Equate(t, buf[1], byte(0xbf))
}
