package io

import (
	"iter"

	"github.com/ezrec/intcode/internal"
)

// Chain reads each of its channels in turn, and sends to the last.
type Chain []Channel

var _ Channel = (Chain)(nil)

// Rewind rewinds every channel of the chain.
func (ch Chain) Rewind() {
	for _, channel := range ch {
		channel.Rewind()
	}
}

// Receive yields the values of the first channel, then the second, and so on.
func (ch Chain) Receive() iter.Seq[int64] {
	seqs := make([]iter.Seq[int64], len(ch))
	for n, channel := range ch {
		seqs[n] = channel.Receive()
	}
	return internal.IterSeqConcat(seqs...)
}

// Send writes to the last channel of the chain.
func (ch Chain) Send(value int64) error {
	if len(ch) == 0 {
		return ErrChannelReadOnly
	}
	return ch[len(ch)-1].Send(value)
}
