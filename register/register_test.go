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

package register_test

import (
	"testing"

	"github.com/jetsetilly/thumbwriter/register"
	"github.com/jetsetilly/thumbwriter/test"
)

func TestDescribe(t *testing.T) {
	test.Equate(t, register.Describe(register.R0).Index, 0)
	test.Equate(t, register.Describe(register.R0).Low(), true)

	test.Equate(t, register.Describe(register.R7).Index, 7)
	test.Equate(t, register.Describe(register.R7).Low(), true)

	test.Equate(t, register.Describe(register.R8).Index, 8)
	test.Equate(t, register.Describe(register.R8).Low(), false)

	test.Equate(t, register.Describe(register.SP).Index, 13)
	test.Equate(t, register.Describe(register.SP).Meta, register.MetaSP)

	test.Equate(t, register.Describe(register.LR).Index, 14)
	test.Equate(t, register.Describe(register.PC).Index, 15)
}

func TestString(t *testing.T) {
	test.Equate(t, register.R4.String(), "r4")
	test.Equate(t, register.SP.String(), "sp")
	test.Equate(t, register.LR.String(), "lr")
	test.Equate(t, register.PC.String(), "pc")
}

func TestDescribePanicsOnInvalid(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected Describe to panic on an invalid register")
		}
	}()
	register.Describe(register.Register(99))
}
