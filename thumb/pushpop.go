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

// Push emits a PUSH of regs, narrow (16-bit) if every register is either
// low or LR, wide (32-bit) otherwise. regs must not be empty.
func (w *Writer) Push(regs []register.Register) error {
	return w.putPushOrPopRegs(0xb400, 0xe92d, register.MetaLR, regs)
}

// Pop emits a POP of regs, narrow if every register is either low or PC,
// wide otherwise. regs must not be empty.
func (w *Writer) Pop(regs []register.Register) error {
	return w.putPushOrPopRegs(0xbc00, 0xe8bd, register.MetaPC, regs)
}

func (w *Writer) putPushOrPopRegs(narrowOpcode, wideOpcode uint16, special register.Meta, regs []register.Register) error {
	if len(regs) == 0 {
		return errors.Errorf(errors.RegisterSetEmpty)
	}

	infos := make([]register.Info, len(regs))
	needWide := false
	for i, r := range regs {
		ri := register.Describe(r)
		infos[i] = ri
		if !ri.Low() && ri.Meta != special {
			needWide = true
		}
	}

	if needWide {
		w.putInstruction(wideOpcode)

		var mask uint16
		for _, ri := range infos {
			mask |= 1 << uint(ri.Index)
		}
		w.putInstruction(mask)
		return nil
	}

	insn := narrowOpcode
	for _, ri := range infos {
		if ri.Meta == special {
			insn |= 0x0100
		} else {
			insn |= 1 << uint(ri.Index)
		}
	}
	w.putInstruction(insn)

	return nil
}
