package io

import (
	"errors"

	"github.com/ezrec/intcode/translate"
)

var f = translate.From

var (
	// Channel errors
	ErrChannelFull     = errors.New(f("channel full"))
	ErrChannelReadOnly = errors.New(f("channel read only"))
)

// ErrParse is a malformed value read from a tape.
type ErrParse string

func (err ErrParse) Error() string {
	return f("'%v' is not a value", string(err))
}
