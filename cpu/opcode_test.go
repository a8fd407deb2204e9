package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecode(t *testing.T) {
	table := []struct {
		word  int64
		op    Op
		modes [3]Mode
	}{
		{1, OP_ADD, [3]Mode{}},
		{1002, OP_MUL, [3]Mode{MODE_POSITION, MODE_IMMEDIATE, MODE_POSITION}},
		{21101, OP_ADD, [3]Mode{MODE_IMMEDIATE, MODE_IMMEDIATE, MODE_RELATIVE}},
		{203, OP_IN, [3]Mode{MODE_RELATIVE}},
		{104, OP_OUT, [3]Mode{MODE_IMMEDIATE}},
		{1105, OP_JT, [3]Mode{MODE_IMMEDIATE, MODE_IMMEDIATE}},
		{2106, OP_JF, [3]Mode{MODE_IMMEDIATE, MODE_RELATIVE}},
		{1107, OP_LT, [3]Mode{MODE_IMMEDIATE, MODE_IMMEDIATE, MODE_POSITION}},
		{108, OP_EQ, [3]Mode{MODE_IMMEDIATE}},
		{109, OP_ARB, [3]Mode{MODE_IMMEDIATE}},
		{99, OP_HALT, [3]Mode{}},
		// Digits past the declared parameters are never examined.
		{99999, OP_HALT, [3]Mode{}},
		{90004, OP_OUT, [3]Mode{}},
	}

	for _, entry := range table {
		assert := assert.New(t)

		code, err := Decode(entry.word)
		assert.NoError(err, entry.word)
		assert.Equal(entry.word, code.Word)
		assert.Equal(entry.op, code.Op, entry.word)
		assert.Equal(entry.modes, code.Modes, entry.word)
	}
}

func TestDecode_Errors(t *testing.T) {
	assert := assert.New(t)

	for _, word := range []int64{0, 10, 98, 100, -1, -99} {
		_, err := Decode(word)
		assert.ErrorIs(err, ErrOpcode(0), word)
	}

	_, err := Decode(301)
	assert.ErrorIs(err, ErrMode{})
	assert.Equal(ErrMode{Word: 301, Param: 0, Digit: 3}, err)

	_, err = Decode(90101)
	assert.Equal(ErrMode{Word: 90101, Param: 2, Digit: 9}, err)
}

func TestMakeCode(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(int64(1), MakeCode(OP_ADD).Word)
	assert.Equal(int64(21101), MakeCode(OP_ADD, MODE_IMMEDIATE, MODE_IMMEDIATE, MODE_RELATIVE).Word)
	assert.Equal(int64(204), MakeCode(OP_OUT, MODE_RELATIVE).Word)
	assert.Equal(int64(99), MakeCode(OP_HALT).Word)

	for _, word := range []int64{1, 1002, 21101, 203, 1105, 2106, 1107, 109} {
		code, err := Decode(word)
		assert.NoError(err)
		assert.Equal(code, MakeCode(code.Op, code.Modes[:code.Op.Params()]...))
	}
}

func TestCode_String(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("halt", MakeCode(OP_HALT).String())
	assert.Equal("jt.immediate.relative", MakeCode(OP_JT, MODE_IMMEDIATE, MODE_RELATIVE).String())
	assert.Equal(int64(2), MakeCode(OP_ARB).Size())
	assert.Equal(int64(4), MakeCode(OP_EQ).Size())
	assert.Equal("op(42)", Op(42).String())
	assert.True(OP_IN.Writes())
	assert.False(OP_OUT.Writes())
}
