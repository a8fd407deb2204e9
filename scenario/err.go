package scenario

import (
	"errors"
	"slices"

	"github.com/ezrec/intcode/translate"
)

var f = translate.From

var (
	ErrNoOxygen = errors.New(f("no oxygen system found"))
	ErrEmpty    = errors.New(f("empty memory image"))

	ErrNotHalted  = errors.New(f("program did not halt"))
	ErrNoNounVerb = errors.New(f("no noun and verb give the target"))
)

// ErrOutput is output of an unexpected shape from a machine.
type ErrOutput []int64

func (err ErrOutput) Error() string {
	return f("unexpected output %v", []int64(err))
}

func (err ErrOutput) Is(target error) bool {
	other, ok := target.(ErrOutput)
	return ok && slices.Equal(err, other)
}

// ErrReply is an unknown reply from a repair droid.
type ErrReply int64

func (err ErrReply) Error() string {
	return f("unknown droid reply %v", int64(err))
}
