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

import "github.com/jetsetilly/thumbwriter/register"

// ArgKind distinguishes the two forms a call Argument may take.
type ArgKind int

const (
	// ArgAddress materialises a fixed address into the target register
	// (or the stack) via the literal pool.
	ArgAddress ArgKind = iota
	// ArgRegister passes the current value of a register through.
	ArgRegister
)

// Argument is one entry of the argument list passed to CallAddress and
// CallReg. Arguments are matched to AAPCS slots (R0..R3, then the stack)
// by their position in the list.
type Argument struct {
	Kind    ArgKind
	Address uint32
	Reg     register.Register
}

// CallAddress synthesises an AAPCS call to the fixed address func, passing
// args: "ldr lr, =func; blx lr". Arguments beyond the four register slots
// are pushed on the stack; the emitted sequence does not pop them - if the
// callee doesn't clean up its own stack (as AAPCS specifies it will not),
// that is the caller's responsibility.
func (w *Writer) CallAddress(fn uint32, args []Argument) error {
	if err := w.putArgumentListSetup(args); err != nil {
		return err
	}

	if err := w.LDRRegAddress(register.LR, fn); err != nil {
		return err
	}
	w.BLX(register.LR)

	return nil
}

// CallReg synthesises an AAPCS call through reg: "blx reg".
func (w *Writer) CallReg(reg register.Register, args []Argument) error {
	if err := w.putArgumentListSetup(args); err != nil {
		return err
	}

	w.BLX(reg)

	return nil
}

// putArgumentListSetup materialises args right-to-left, matching the order
// the reference emitter uses so that a register argument that is itself
// the destination slot (eg. passing R2 as the third argument) becomes a
// no-op rather than clobbering a not-yet-consumed source register.
func (w *Writer) putArgumentListSetup(args []Argument) error {
	for i := len(args) - 1; i >= 0; i-- {
		arg := args[i]

		if i < 4 {
			dst := register.Register(int(register.R0) + i)

			if arg.Kind == ArgAddress {
				if err := w.LDRRegAddress(dst, arg.Address); err != nil {
					return err
				}
			} else if arg.Reg != dst {
				w.MOV(dst, arg.Reg)
			}

			continue
		}

		if arg.Kind == ArgAddress {
			if err := w.LDRRegAddress(register.R0, arg.Address); err != nil {
				return err
			}
			if err := w.Push([]register.Register{register.R0}); err != nil {
				return err
			}
		} else {
			if err := w.Push([]register.Register{arg.Reg}); err != nil {
				return err
			}
		}
	}

	return nil
}
