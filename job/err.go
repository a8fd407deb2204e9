package job

import (
	"errors"

	"github.com/ezrec/intcode/translate"
)

var f = translate.From

var (
	ErrNoProgram = errors.New(f("no program image or source given"))
)

// ErrLoad is a failure to read or decode a job file.
type ErrLoad struct {
	Path string
	Err  error
}

func (err *ErrLoad) Error() string {
	return f("%v: %v", err.Path, err.Err)
}

func (err *ErrLoad) Unwrap() error {
	return err.Err
}

// ErrPatch is a malformed memory patch address.
type ErrPatch string

func (err ErrPatch) Error() string {
	return f("patch address '%v' is not valid", string(err))
}
