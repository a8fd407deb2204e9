package cpu

import (
	"errors"

	"github.com/ezrec/intcode/translate"
)

var f = translate.From

var (
	// Cpu errors
	ErrHalted          = errors.New(f("halted"))
	ErrAddress         = errors.New(f("address"))
	ErrAddressNegative = errors.New(f("negative address"))
	ErrAddressTooLarge = errors.New(f("address beyond memory limit"))

	// Instruction decode errors
	ErrOpcodeDecode = errors.New(f("decode"))
	ErrOpcodeParam1 = errors.New(f("param1"))
	ErrOpcodeParam2 = errors.New(f("param2"))
	ErrOpcodeParam3 = errors.New(f("param3"))

	// Assembler errors
	ErrEquateSyntax       = errors.New(f(".equ syntax"))
	ErrEquateDuplicate    = errors.New(f(".equ duplicated"))
	ErrLabelDuplicate     = errors.New(f("label duplicated"))
	ErrMacroSyntax        = errors.New(f(".macro syntax"))
	ErrMacroNesting       = errors.New(f(".macro in .macro prohibited"))
	ErrMacroDuplicate     = errors.New(f(".macro duplicated"))
	ErrMacroLonely        = errors.New(f(".macro without .endm"))
	ErrMacroLonelyEndm    = errors.New(f(".endm without .macro"))
	ErrOpcodeExtraArgs    = errors.New(f("excessive arguments"))
	ErrOpcodeMissing      = errors.New(f("opcode missing"))
	ErrOpcodeValueMissing = errors.New(f("value missing"))
	ErrTargetInvalid      = errors.New(f("target invalid"))
	ErrInstructionInvalid = errors.New(f("instruction invalid"))
)

// errParam is indexed by parameter number.
var errParam = [3]error{ErrOpcodeParam1, ErrOpcodeParam2, ErrOpcodeParam3}

type ErrLabelMissing string

func (el ErrLabelMissing) Error() string {
	return f("label %v missing", string(el))
}

// ErrOpcode is an instruction word whose low two digits are not a known opcode.
type ErrOpcode int64

func (eo ErrOpcode) Error() string {
	return f("bad opcode %v in word %v", int64(eo)%100, int64(eo))
}

func (eo ErrOpcode) Is(err error) (ok bool) {
	_, ok = err.(ErrOpcode)
	return
}

// ErrMode is an addressing mode digit that is not position, immediate or relative.
type ErrMode struct {
	Word  int64
	Param int
	Digit int64
}

func (em ErrMode) Error() string {
	return f("bad mode %v for param %v in word %v", em.Digit, em.Param+1, em.Word)
}

func (em ErrMode) Is(err error) (ok bool) {
	_, ok = err.(ErrMode)
	return
}

// ErrAccess reports the address of a failed memory access.
type ErrAccess struct {
	Addr int64
	Err  error
}

func (err *ErrAccess) Error() string {
	return f("address %v %v", err.Addr, err.Err)
}

func (err *ErrAccess) Unwrap() []error {
	return []error{ErrAddress, err.Err}
}

type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseCharacter string

func (err ErrParseCharacter) Error() string {
	return f("'%v' is not a character", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

type ErrMacro struct {
	Macro string
	Line  int
	Err   error
}

func (err ErrMacro) Error() string {
	return f("macro %v line %v %v", err.Macro, err.Line, err.Err.Error())
}

func (err ErrMacro) Unwrap() error {
	return err.Err
}
