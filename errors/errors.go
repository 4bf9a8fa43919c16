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

import (
	"fmt"
	"strings"
)

// Values is the type used to specify arguments for curated errors.
type Values []interface{}

// curated errors let callers raise a predefined failure without worrying
// about message formatting at every call site.
type curated struct {
	message string
	values  Values
}

// Errorf creates a new curated error from one of the message constants in
// this package.
func Errorf(message string, values ...interface{}) error {
	return curated{
		message: message,
		values:  values,
	}
}

// Error implements the go language error interface. If the first two
// ": "-separated message parts are identical (common when an error is
// wrapped by a caller that has already included the same context), the
// duplicate is collapsed; later parts are not compared.
func (er curated) Error() string {
	s := fmt.Errorf(er.message, er.values...).Error()

	p := strings.SplitN(s, ": ", 3)
	if len(p) > 1 && p[0] == p[1] {
		return strings.Join(p[1:], ": ")
	}

	return strings.Join(p, ": ")
}

// Is allows errors.Is(err, errors.Errorf(SomeMessage)) style comparisons by
// matching on the underlying message format, ignoring the formatted values.
func (er curated) Is(target error) bool {
	t, ok := target.(curated)
	if !ok {
		return false
	}
	return er.message == t.message
}
