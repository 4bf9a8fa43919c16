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

func TestBCondLabelForward(t *testing.T) {
	buf := make([]byte, 64)
	w := thumb.New(buf, 0x1000)

	test.ExpectSuccess(t, w.BCondLabel(thumb.EQ, "skip"))
	for i := 0; i < 4; i++ {
		w.NOP()
	}
	test.ExpectSuccess(t, w.DefineLabel("skip"))

	test.ExpectSuccess(t, w.Flush())

	insn := uint16(buf[0]) | uint16(buf[1])<<8
	test.Equate(t, insn, uint16(0xd000|3))
}

func TestBCondLabelOutOfRangeFails(t *testing.T) {
	buf := make([]byte, 1024)
	w := thumb.New(buf, 0x1000)

	test.ExpectSuccess(t, w.BCondLabel(thumb.NE, "far"))
	w.Skip(300)
	test.ExpectSuccess(t, w.DefineLabel("far"))

	test.ExpectFailure(t, w.Flush())
}

func TestBLabelForward(t *testing.T) {
	buf := make([]byte, 64)
	w := thumb.New(buf, 0x1000)

	test.ExpectSuccess(t, w.BLabel("end"))
	w.NOP()
	test.ExpectSuccess(t, w.DefineLabel("end"))

	test.ExpectSuccess(t, w.Flush())
}

func TestDuplicateLabelFails(t *testing.T) {
	buf := make([]byte, 16)
	w := thumb.New(buf, 0x1000)

	test.ExpectSuccess(t, w.DefineLabel("a"))
	test.ExpectFailure(t, w.DefineLabel("a"))
}

func TestUndefinedLabelFailsAtFlush(t *testing.T) {
	buf := make([]byte, 16)
	w := thumb.New(buf, 0x1000)

	test.ExpectSuccess(t, w.BLabel("nope"))
	test.ExpectFailure(t, w.Flush())
}

func TestCBZAtZeroDistance(t *testing.T) {
	buf := make([]byte, 16)
	w := thumb.New(buf, 0x1000)

	// the displacement is measured from the CBZ's address plus 4, so the
	// label sits one halfword past the end of the CBZ
	test.ExpectSuccess(t, w.CBZ(register.R0, "here"))
	w.NOP()
	test.ExpectSuccess(t, w.DefineLabel("here"))

	test.ExpectSuccess(t, w.Flush())
}

func TestCBNZRequiresLowRegister(t *testing.T) {
	buf := make([]byte, 16)
	w := thumb.New(buf, 0x1000)

	test.ExpectFailure(t, w.CBNZ(register.R9, "here"))
}

func TestCBZOutOfRangeFails(t *testing.T) {
	buf := make([]byte, 512)
	w := thumb.New(buf, 0x1000)

	test.ExpectSuccess(t, w.CBZ(register.R0, "far"))
	w.Skip(300)
	test.ExpectSuccess(t, w.DefineLabel("far"))

	test.ExpectFailure(t, w.Flush())
}

func TestLabelTableFull(t *testing.T) {
	buf := make([]byte, 4)
	w := thumb.New(buf, 0x1000)

	for i := 0; i < thumb.MaxLabels; i++ {
		test.ExpectSuccess(t, w.DefineLabel(i))
	}
	test.ExpectFailure(t, w.DefineLabel("overflow"))
}
