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

// Package test collects the small assertion helpers used by this module's
// test suites, so that individual _test.go files stay free of boilerplate
// reflect.DeepEqual/t.Fatalf noise.
package test

import (
	"fmt"
	"reflect"
	"testing"
)

// Equate fails the test if got and want are not equal, as judged by
// reflect.DeepEqual.
func Equate(t *testing.T, got, want interface{}) {
	t.Helper()

	if got == nil && want == nil {
		return
	}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("unexpected value\ngot:  %#v\nwant: %#v", got, want)
	}
}

// ExpectSuccess fails the test if v indicates failure. v may be a bool
// (false means failure), an error (non-nil means failure), or nil (always
// success), matching the variety of return shapes used across the module.
func ExpectSuccess(t *testing.T, v interface{}) {
	t.Helper()

	if !isSuccess(v) {
		t.Errorf("expected success, got %s", describe(v))
	}
}

// ExpectFailure fails the test if v indicates success.
func ExpectFailure(t *testing.T, v interface{}) {
	t.Helper()

	if isSuccess(v) {
		t.Errorf("expected failure, got %s", describe(v))
	}
}

func isSuccess(v interface{}) bool {
	switch w := v.(type) {
	case nil:
		return true
	case bool:
		return w
	case error:
		return w == nil
	default:
		return true
	}
}

func describe(v interface{}) string {
	if v == nil {
		return "nil"
	}
	return fmt.Sprintf("%v", v)
}
