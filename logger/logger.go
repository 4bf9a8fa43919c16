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

// Package logger is a small process-wide ring buffer of tagged log entries.
// It exists so that package thumb can record diagnostic detail (a Flush
// that fails on an undefined label is logged) without taking an I/O
// dependency or forcing a particular logging library on the caller -
// nothing in this module writes to stdout/stderr directly.
package logger

import (
	"fmt"
	"io"
	"sync"
)

// maxEntries bounds the ring so a long-running host process embedding this
// module doesn't leak memory through the log.
const maxEntries = 1000

type entry struct {
	tag     string
	message string
}

var (
	mu      sync.Mutex
	entries []entry
)

// Log appends a tagged entry to the log. tag is typically a short component
// name ("writer", "flush", "literal pool").
func Log(tag, message string) {
	mu.Lock()
	defer mu.Unlock()

	entries = append(entries, entry{tag: tag, message: message})
	if len(entries) > maxEntries {
		entries = entries[len(entries)-maxEntries:]
	}
}

// Logf is Log with fmt.Sprintf-style formatting of message.
func Logf(tag, format string, args ...interface{}) {
	Log(tag, fmt.Sprintf(format, args...))
}

// Write copies every entry currently in the log to w, one "tag: message"
// line per entry.
func Write(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()

	for _, e := range entries {
		fmt.Fprintf(w, "%s: %s\n", e.tag, e.message)
	}
}

// Tail copies the most recent n entries (or fewer, if the log is shorter)
// to w.
func Tail(w io.Writer, n int) {
	mu.Lock()
	defer mu.Unlock()

	start := 0
	if len(entries) > n {
		start = len(entries) - n
	}

	for _, e := range entries[start:] {
		fmt.Fprintf(w, "%s: %s\n", e.tag, e.message)
	}
}

// Clear empties the log. Intended for use between test cases.
func Clear() {
	mu.Lock()
	defer mu.Unlock()

	entries = nil
}
