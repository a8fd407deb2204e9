package io

import (
	"bufio"
	"io"
	"iter"
	"strconv"
)

// Ascii provides sequential I/O of bytes, one value per byte.
// Output values outside the ASCII range are written as a line of decimal
// text, which is how Intcode programs report a final result.
type Ascii struct {
	Input  io.Reader
	Output io.Writer

	reader *bufio.Reader
}

var _ Channel = (*Ascii)(nil)

// Rewind is not possible on a byte stream.
func (ac *Ascii) Rewind() {
}

// Receive returns an iterator that yields input bytes until end of input.
func (ac *Ascii) Receive() iter.Seq[int64] {
	return func(yield func(value int64) bool) {
		if ac.Input == nil {
			return
		}
		if ac.reader == nil {
			ac.reader = bufio.NewReader(ac.Input)
		}
		for {
			one, err := ac.reader.ReadByte()
			if err != nil {
				return
			}
			if !yield(int64(one)) {
				return
			}
		}
	}
}

// Send writes a value to the output stream.
func (ac *Ascii) Send(value int64) (err error) {
	if ac.Output == nil {
		err = ErrChannelReadOnly
		return
	}

	if value >= 0 && value < 0x80 {
		_, err = ac.Output.Write([]byte{byte(value)})
		return
	}

	line := append([]byte{'\n'}, strconv.AppendInt(nil, value, 10)...)
	line = append(line, '\n')
	_, err = ac.Output.Write(line)
	return
}
