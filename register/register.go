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

// Package register describes the symbolic ARM register names consumed by
// package thumb. It is the "register lookup table" collaborator assumed by
// the encoder: given a Register it reports the 0..15 field index used in an
// instruction's bit pattern and the meta-class used to decide between the
// low-register (R0-R7) and high-register forms of an operation.
package register

// Register is a symbolic ARM register name. The zero value is invalid; use
// one of the R0..R15, SP, LR or PC constants.
type Register int

const (
	invalid Register = iota
	R0
	R1
	R2
	R3
	R4
	R5
	R6
	R7
	R8
	R9
	R10
	R11
	R12
	SP
	LR
	PC
)

// Meta classifies a register for the purposes of operand-form selection.
// R8..R12 are reported individually so callers needing the field index can
// still distinguish them, but most encoding decisions only care whether a
// register is Low, or one of SP/LR/PC.
type Meta int

const (
	MetaR0 Meta = iota
	MetaR1
	MetaR2
	MetaR3
	MetaR4
	MetaR5
	MetaR6
	MetaR7
	MetaR8
	MetaR9
	MetaR10
	MetaR11
	MetaR12
	MetaSP
	MetaLR
	MetaPC
)

// Info is the description returned by Describe.
type Info struct {
	// Index is the 0..15 register number, suitable for placing directly into
	// a 4-bit instruction field. High-register encodings that use a 3-bit
	// field must take Index modulo 8 themselves; Describe does not do this
	// for them because some forms (eg. the wide push/pop mask) want the full
	// index.
	Index int

	// Meta is the classification used to choose an encoding.
	Meta Meta
}

// Low reports whether the register is one of R0..R7.
func (i Info) Low() bool {
	return i.Meta >= MetaR0 && i.Meta <= MetaR7
}

// Describe maps a symbolic register to its encoding index and meta-class.
// It panics on an unrecognised register; an invalid register is a
// programmer error in the caller, not an operand-range failure, and so is
// not reported via the error-return convention used elsewhere in this
// module.
func Describe(r Register) Info {
	switch r {
	case R0:
		return Info{0, MetaR0}
	case R1:
		return Info{1, MetaR1}
	case R2:
		return Info{2, MetaR2}
	case R3:
		return Info{3, MetaR3}
	case R4:
		return Info{4, MetaR4}
	case R5:
		return Info{5, MetaR5}
	case R6:
		return Info{6, MetaR6}
	case R7:
		return Info{7, MetaR7}
	case R8:
		return Info{8, MetaR8}
	case R9:
		return Info{9, MetaR9}
	case R10:
		return Info{10, MetaR10}
	case R11:
		return Info{11, MetaR11}
	case R12:
		return Info{12, MetaR12}
	case SP:
		return Info{13, MetaSP}
	case LR:
		return Info{14, MetaLR}
	case PC:
		return Info{15, MetaPC}
	default:
		panic("register: unrecognised register")
	}
}

// String returns the conventional ARM assembler name for r.
func (r Register) String() string {
	switch r {
	case R0:
		return "r0"
	case R1:
		return "r1"
	case R2:
		return "r2"
	case R3:
		return "r3"
	case R4:
		return "r4"
	case R5:
		return "r5"
	case R6:
		return "r6"
	case R7:
		return "r7"
	case R8:
		return "r8"
	case R9:
		return "r9"
	case R10:
		return "r10"
	case R11:
		return "r11"
	case R12:
		return "r12"
	case SP:
		return "sp"
	case LR:
		return "lr"
	case PC:
		return "pc"
	default:
		return "?"
	}
}
