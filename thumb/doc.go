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

// Package thumb is a streaming Thumb/Thumb-2 instruction encoder. A Writer
// emits instructions one mnemonic at a time into a caller-owned byte slice,
// resolving forward branches to symbolic labels and materialising a literal
// pool for PC-relative constant loads at Flush.
//
// The package does not allocate executable memory, does not invalidate
// instruction caches, and does not decide calling conventions beyond the
// four-register AAPCS boundary encoded by the call helpers in call.go - all
// of that is the caller's responsibility. A Writer is not safe for
// concurrent use; build one Writer per code region being generated.
//
// Register operands are values from package register, which plays the part
// of the symbolic register lookup table this encoder assumes as a
// collaborator: it maps a register name to the bit-field index and
// meta-class (low / SP / LR / PC / high) that operand-form selection is
// based on.
package thumb
