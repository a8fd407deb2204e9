package io

import (
	"bufio"
	"io"
	"iter"
	"strconv"
	"unicode"
	"unicode/utf8"
)

// Tape provides sequential I/O of decimal text.
// Input values are separated by commas or white space; output values are
// written one per line.
type Tape struct {
	Input  io.Reader
	Output io.Writer

	scanner *bufio.Scanner
	err     error
}

var _ Channel = (*Tape)(nil)

// Rewind is not possible on a tape.
func (tc *Tape) Rewind() {
}

// Err returns the first error encountered while reading input.
func (tc *Tape) Err() error {
	return tc.err
}

// isSeparator is true for the runes between tape values.
func isSeparator(r rune) bool {
	return r == ',' || unicode.IsSpace(r)
}

// scanValues is a bufio.SplitFunc for comma or space separated values.
func scanValues(data []byte, atEOF bool) (advance int, token []byte, err error) {
	start := 0
	for width := 0; start < len(data); start += width {
		var r rune
		r, width = utf8.DecodeRune(data[start:])
		if !isSeparator(r) {
			break
		}
	}

	for width, i := 0, start; i < len(data); i += width {
		var r rune
		r, width = utf8.DecodeRune(data[i:])
		if isSeparator(r) {
			return i + width, data[start:i], nil
		}
	}

	if atEOF && len(data) > start {
		return len(data), data[start:], nil
	}

	return start, nil, nil
}

// Receive returns an iterator that yields values from the input stream,
// reading as needed. Iteration stops at end of input or at the first
// malformed value; see Err.
func (tc *Tape) Receive() iter.Seq[int64] {
	return func(yield func(value int64) bool) {
		if tc.Input == nil || tc.err != nil {
			return
		}
		if tc.scanner == nil {
			tc.scanner = bufio.NewScanner(tc.Input)
			tc.scanner.Split(scanValues)
		}
		for tc.scanner.Scan() {
			word := tc.scanner.Text()
			value, err := strconv.ParseInt(word, 10, 64)
			if err != nil {
				tc.err = ErrParse(word)
				return
			}
			if !yield(value) {
				return
			}
		}
		tc.err = tc.scanner.Err()
	}
}

// Send writes a value to the output stream as a line of text.
// Without an output stream, the tape is read only.
func (tc *Tape) Send(value int64) (err error) {
	if tc.Output == nil {
		err = ErrChannelReadOnly
		return
	}

	line := strconv.AppendInt(nil, value, 10)
	line = append(line, '\n')
	_, err = tc.Output.Write(line)
	return
}
