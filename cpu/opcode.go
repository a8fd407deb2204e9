package cpu

import (
	"fmt"
	"strings"
)

// Op is an Intcode operation.
type Op int

const (
	OP_ADD  = Op(1)  // add
	OP_MUL  = Op(2)  // mul
	OP_IN   = Op(3)  // in
	OP_OUT  = Op(4)  // out
	OP_JT   = Op(5)  // jt
	OP_JF   = Op(6)  // jf
	OP_LT   = Op(7)  // lt
	OP_EQ   = Op(8)  // eq
	OP_ARB  = Op(9)  // arb
	OP_HALT = Op(99) // halt
)

var opName = map[Op]string{
	OP_ADD:  "add",
	OP_MUL:  "mul",
	OP_IN:   "in",
	OP_OUT:  "out",
	OP_JT:   "jt",
	OP_JF:   "jf",
	OP_LT:   "lt",
	OP_EQ:   "eq",
	OP_ARB:  "arb",
	OP_HALT: "halt",
}

// opParams is the declared parameter count of each operation.
var opParams = map[Op]int{
	OP_ADD:  3,
	OP_MUL:  3,
	OP_IN:   1,
	OP_OUT:  1,
	OP_JT:   2,
	OP_JF:   2,
	OP_LT:   3,
	OP_EQ:   3,
	OP_ARB:  1,
	OP_HALT: 0,
}

// Valid returns true if the operation is part of the instruction set.
func (op Op) Valid() bool {
	_, ok := opParams[op]
	return ok
}

// Params returns the number of parameters the operation takes.
func (op Op) Params() int {
	return opParams[op]
}

// Writes returns true if the last parameter of the operation is a destination.
func (op Op) Writes() bool {
	switch op {
	case OP_ADD, OP_MUL, OP_IN, OP_LT, OP_EQ:
		return true
	}
	return false
}

func (op Op) String() string {
	name, ok := opName[op]
	if !ok {
		return fmt.Sprintf("op(%d)", int(op))
	}
	return name
}

// Mode is a parameter addressing mode.
type Mode int

const (
	MODE_POSITION  = Mode(0) // value is an address
	MODE_IMMEDIATE = Mode(1) // value is literal
	MODE_RELATIVE  = Mode(2) // value is an offset from the relative base
)

// Prefix returns the assembler operand prefix for the mode.
func (mode Mode) Prefix() string {
	switch mode {
	case MODE_IMMEDIATE:
		return "#"
	case MODE_RELATIVE:
		return "@"
	}
	return ""
}

func (mode Mode) String() string {
	switch mode {
	case MODE_POSITION:
		return "position"
	case MODE_IMMEDIATE:
		return "immediate"
	case MODE_RELATIVE:
		return "relative"
	}
	return fmt.Sprintf("mode(%d)", int(mode))
}

// Code is a decoded instruction word.
type Code struct {
	Word  int64
	Op    Op
	Modes [3]Mode
}

// Decode splits an instruction word into its operation and the modes of
// the operation's declared parameters. Mode digits beyond the declared
// parameters are never examined.
func Decode(word int64) (code Code, err error) {
	code.Word = word
	code.Op = Op(word % 100)
	if !code.Op.Valid() {
		err = ErrOpcode(word)
		return
	}

	modes := word / 100
	for n := range code.Op.Params() {
		digit := modes % 10
		switch Mode(digit) {
		case MODE_POSITION, MODE_IMMEDIATE, MODE_RELATIVE:
			code.Modes[n] = Mode(digit)
		default:
			err = ErrMode{Word: word, Param: n, Digit: digit}
			return
		}
		modes /= 10
	}

	return
}

// MakeCode encodes an instruction word. Missing modes are MODE_POSITION.
func MakeCode(op Op, modes ...Mode) Code {
	code := Code{Op: op}
	word := int64(0)
	scale := int64(100)
	for n, mode := range modes {
		if n >= len(code.Modes) {
			break
		}
		code.Modes[n] = mode
		word += int64(mode) * scale
		scale *= 10
	}
	code.Word = word + int64(op)
	return code
}

// Size returns the number of words the instruction occupies.
func (code Code) Size() int64 {
	return int64(code.Op.Params() + 1)
}

// String returns the assembly language form of the instruction, without operands.
func (code Code) String() string {
	parts := []string{code.Op.String()}
	for n := range code.Op.Params() {
		parts = append(parts, code.Modes[n].String())
	}
	return strings.Join(parts, ".")
}
