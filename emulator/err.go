package emulator

import (
	"errors"

	"github.com/ezrec/intcode/translate"
)

var f = translate.From

var (
	ErrInputExhausted  = errors.New(f("input exhausted"))
	ErrPipelineEmpty   = errors.New(f("pipeline has no stages"))
	ErrPipelineStalled = errors.New(f("pipeline stalled"))
)

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	Ip     int64
	LineNo int
	Err    error
}

func (err *ErrRuntime) Error() string {
	if err.LineNo == 0 {
		return f("ip %d: %v", err.Ip, err.Err)
	}
	return f("line %d: ip %d: %v", err.LineNo, err.Ip, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}

// ErrStage indicates which machine of a pipeline failed.
type ErrStage struct {
	Stage int
	Err   error
}

func (err *ErrStage) Error() string {
	return f("stage %d: %v", err.Stage, err.Err)
}

func (err *ErrStage) Unwrap() error {
	return err.Err
}
