// Package io provides value channels that feed or drain an Intcode machine.
// It includes sequential decimal text I/O (Tape), byte oriented text I/O
// (Ascii), a bounded in-memory FIFO (Temporary), fixed input (Rom), and
// concatenated input (Chain).
package io

import (
	"iter"
)

// Channel defines the interface for all value channels.
// Channels are read from and written to one Intcode value at a time.
type Channel interface {
	// Rewind resets the channel to its initial state, where possible.
	Rewind()
	// Receive returns an iterator over values not yet consumed from the
	// channel. Stopping the iteration early leaves the remaining values
	// available to the next Receive.
	Receive() iter.Seq[int64]
	// Send writes a single value to the channel.
	Send(value int64) error
}
