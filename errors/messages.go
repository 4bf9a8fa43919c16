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

package errors

// error messages, grouped by the four failure kinds the writer reports.
const (
	// capacity exceeded
	LabelTableFull      = "label table is full (%d labels)"
	LabelRefTableFull   = "label reference table is full (%d references)"
	LiteralRefTableFull = "literal reference table is full (%d references)"

	// operand out of range / unsupported register class
	RegisterSetEmpty      = "register set must not be empty"
	OffsetMisaligned      = "offset %d is not a multiple of %d"
	OffsetOutOfRange      = "offset %d exceeds the maximum of %d for this form"
	ImmediateOutOfRange   = "immediate %d does not fit in %d bits"
	UnsupportedRegister   = "register %v is not valid for this operand form"
	OddByteLength         = "byte sequence has odd length %d"
	BranchDistanceInvalid = "branch distance %d does not fit the %s encoding"

	// duplicate label definition
	LabelAlreadyDefined = "label %v is already defined"

	// unresolved label at flush
	LabelUndefined = "label %v was referenced but never defined"
)
