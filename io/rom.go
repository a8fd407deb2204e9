package io

import (
	"iter"
)

// Rom is a fixed list of input values.
type Rom struct {
	Data []int64

	readIndex int
}

var _ Channel = (*Rom)(nil)

// Rewind restarts reading from the first value.
func (rc *Rom) Rewind() {
	rc.readIndex = 0
}

// Receive returns an iterator over the unread values.
func (rc *Rom) Receive() iter.Seq[int64] {
	return func(yield func(value int64) bool) {
		for rc.readIndex < len(rc.Data) {
			value := rc.Data[rc.readIndex]
			rc.readIndex++
			if !yield(value) {
				return
			}
		}
	}
}

// Send is refused; a Rom is read only.
func (rc *Rom) Send(value int64) error {
	return ErrChannelReadOnly
}
