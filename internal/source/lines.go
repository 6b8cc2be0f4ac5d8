// Package source locates the input file and streams its lines.
package source

import (
	"bufio"
	"io"
)

// DefaultMaxLineBytes is the longest line accepted unless configured otherwise
const DefaultMaxLineBytes = 16 * 1024 * 1024

// Lines iterates over the lines of a reader one at a time
type Lines struct {
	scanner *bufio.Scanner
	number  int
}

// NewLines wraps r. Lines longer than maxLineBytes stop the iteration with an error.
func NewLines(r io.Reader, maxLineBytes int) *Lines {
	if maxLineBytes <= 0 {
		maxLineBytes = DefaultMaxLineBytes
	}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	return &Lines{scanner: scanner}
}

// Next advances to the next line
func (l *Lines) Next() bool {
	if !l.scanner.Scan() {
		return false
	}
	l.number++
	return true
}

// Bytes returns the current line without its terminator. The slice is only
// valid until the next call to Next.
func (l *Lines) Bytes() []byte {
	return l.scanner.Bytes()
}

// Number returns the 1-based number of the current line
func (l *Lines) Number() int {
	return l.number
}

// Err returns the first read error, if any
func (l *Lines) Err() error {
	return l.scanner.Err()
}
