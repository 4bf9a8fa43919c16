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

func TestCMPRequiresLowRegister(t *testing.T) {
	buf := make([]byte, 4)
	w := thumb.New(buf, 0x1000)

	test.ExpectSuccess(t, w.CMP(register.R3, 10))
	test.ExpectFailure(t, w.CMP(register.R9, 10))
}

func TestMOVImmRequiresLowRegister(t *testing.T) {
	buf := make([]byte, 4)
	w := thumb.New(buf, 0x1000)

	test.ExpectFailure(t, w.MOVImm(register.R12, 1))
}

func TestMOVBetweenRegisterClasses(t *testing.T) {
	buf := make([]byte, 4)
	w := thumb.New(buf, 0x1000)

	// low -> low and high -> low must both succeed without error
	w.MOV(register.R0, register.R1)
	w.MOV(register.R0, register.R12)
}

func TestADDImmSPRequiresAlignment(t *testing.T) {
	buf := make([]byte, 4)
	w := thumb.New(buf, 0x1000)

	test.ExpectSuccess(t, w.ADDImm(register.SP, 16))
	test.ExpectFailure(t, w.ADDImm(register.SP, 3))
}

func TestADDImmRangeCheck(t *testing.T) {
	buf := make([]byte, 4)
	w := thumb.New(buf, 0x1000)

	test.ExpectSuccess(t, w.ADDImm(register.R0, 255))
	test.ExpectFailure(t, w.ADDImm(register.R0, 256))
}

func TestSUBImmDelegatesToADDImm(t *testing.T) {
	buf := make([]byte, 4)
	w := thumb.New(buf, 0x1000)

	test.ExpectSuccess(t, w.SUBImm(register.R0, 10))
}

func TestADDRegRegRegSameDestAndLeftUsesHighCapableForm(t *testing.T) {
	buf := make([]byte, 4)
	w := thumb.New(buf, 0x1000)

	// dst==left, with a high register, must not require right to be low
	w.ADDRegRegReg(register.R12, register.R12, register.R3)
}

func TestPushEmptySetFails(t *testing.T) {
	buf := make([]byte, 4)
	w := thumb.New(buf, 0x1000)

	test.ExpectFailure(t, w.Push(nil))
}

func TestPushNarrowVsWide(t *testing.T) {
	buf := make([]byte, 16)
	w := thumb.New(buf, 0x1000)

	test.ExpectSuccess(t, w.Push([]register.Register{register.R4, register.LR}))
	test.Equate(t, w.Offset(), 2) // narrow form: low regs + LR fit in one halfword

	buf2 := make([]byte, 16)
	w2 := thumb.New(buf2, 0x1000)
	test.ExpectSuccess(t, w2.Push([]register.Register{register.R9}))
	test.Equate(t, w2.Offset(), 4) // R9 is neither low nor LR: needs the wide form
}

func TestPopNarrowVsWide(t *testing.T) {
	buf := make([]byte, 16)
	w := thumb.New(buf, 0x1000)

	test.ExpectSuccess(t, w.Pop([]register.Register{register.R0, register.PC}))
	test.Equate(t, w.Offset(), 2)
}

func TestLDRRegRegOffsetNarrowRange(t *testing.T) {
	buf := make([]byte, 8)
	w := thumb.New(buf, 0x1000)

	test.ExpectSuccess(t, w.LDRRegRegOffset(register.R0, register.R1, 4))
	// 5 is not a multiple of 4, so it falls outside the narrow form and is
	// encoded with the wide form instead
	test.ExpectSuccess(t, w.LDRRegRegOffset(register.R0, register.R1, 5))
	test.Equate(t, w.Offset(), 2+4)
}

func TestSTRRegRegOffsetSPWiderRange(t *testing.T) {
	buf := make([]byte, 4)
	w := thumb.New(buf, 0x1000)

	test.ExpectSuccess(t, w.STRRegRegOffset(register.R0, register.SP, 1020))
}

func TestSTRRegRegOffsetWideFallback(t *testing.T) {
	buf := make([]byte, 4)
	w := thumb.New(buf, 0x1000)

	// out of narrow range (non-SP base) but within the wide form's 12-bit field
	test.ExpectSuccess(t, w.STRRegRegOffset(register.R0, register.R1, 200))
}

func TestBytesRejectsOddLength(t *testing.T) {
	buf := make([]byte, 4)
	w := thumb.New(buf, 0x1000)

	test.ExpectFailure(t, w.Bytes([]byte{0x01, 0x02, 0x03}))
	test.ExpectSuccess(t, w.Bytes([]byte{0x01, 0x02}))
}

func TestBreakpointPerOS(t *testing.T) {
	buf := make([]byte, 16)
	w := thumb.New(buf, 0x1000)

	w.SetTargetOS(thumb.Linux)
	w.Breakpoint()
	test.Equate(t, w.Offset(), 2)

	buf2 := make([]byte, 16)
	w2 := thumb.New(buf2, 0x1000)
	w2.SetTargetOS(thumb.Other)
	w2.Breakpoint()
	test.Equate(t, w2.Offset(), 4)
}

func TestCallAddressWithArgumentsMaterialisesRegisterSlots(t *testing.T) {
	buf := make([]byte, 64)
	w := thumb.New(buf, 0x1000)

	args := []thumb.Argument{
		{Kind: thumb.ArgRegister, Reg: register.R5},
		{Kind: thumb.ArgAddress, Address: 0xcafef00d},
	}

	test.ExpectSuccess(t, w.CallAddress(0x2000, args))
	test.ExpectSuccess(t, w.Flush())
}

func TestCallRegWithStackArguments(t *testing.T) {
	buf := make([]byte, 64)
	w := thumb.New(buf, 0x1000)

	args := make([]thumb.Argument, 5)
	for i := range args {
		args[i] = thumb.Argument{Kind: thumb.ArgRegister, Reg: register.R0}
	}

	test.ExpectSuccess(t, w.CallReg(register.R7, args))
	test.ExpectSuccess(t, w.Flush())
}
