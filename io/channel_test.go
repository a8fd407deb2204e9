package io

import (
	"bytes"
	"iter"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// takeOne reads a single value from a channel, as the emulator does.
func takeOne(ch Channel) (value int64, ok bool) {
	for value = range ch.Receive() {
		ok = true
		break
	}
	return
}

func TestRom_Receive(t *testing.T) {
	assert := assert.New(t)

	rom := &Rom{Data: []int64{1, -2, 1 << 40}}

	assert.Equal([]int64{1, -2, 1 << 40}, slices.Collect(rom.Receive()))
	assert.Empty(slices.Collect(rom.Receive()))

	rom.Rewind()
	value, ok := takeOne(rom)
	assert.True(ok)
	assert.Equal(int64(1), value)
	assert.Equal([]int64{-2, 1 << 40}, slices.Collect(rom.Receive()))
}

func TestRom_Send(t *testing.T) {
	assert := assert.New(t)

	rom := &Rom{}
	assert.ErrorIs(rom.Send(1), ErrChannelReadOnly)
	_, ok := takeOne(rom)
	assert.False(ok)
}

func TestTemporary(t *testing.T) {
	assert := assert.New(t)

	temp := NewTemporary(3)
	assert.Equal(0, temp.Len())

	assert.NoError(temp.Send(1))
	assert.NoError(temp.Send(2))
	assert.NoError(temp.Send(3))
	assert.ErrorIs(temp.Send(4), ErrChannelFull)
	assert.Equal(3, temp.Len())

	value, ok := takeOne(temp)
	assert.True(ok)
	assert.Equal(int64(1), value)

	// Wraps around the capacity boundary.
	assert.NoError(temp.Send(5))
	assert.Equal([]int64{2, 3, 5}, slices.Collect(temp.Receive()))
	assert.Equal(0, temp.Len())

	assert.NoError(temp.Send(6))
	temp.Rewind()
	assert.Equal(0, temp.Len())
	assert.Empty(slices.Collect(temp.Receive()))
}

func TestTape_Receive(t *testing.T) {
	assert := assert.New(t)

	tape := &Tape{Input: strings.NewReader(" 1,2\n-3 ,, 40\n")}

	value, ok := takeOne(tape)
	assert.True(ok)
	assert.Equal(int64(1), value)

	assert.Equal([]int64{2, -3, 40}, slices.Collect(tape.Receive()))
	assert.NoError(tape.Err())

	_, ok = takeOne(tape)
	assert.False(ok)
}

func TestTape_Receive_Malformed(t *testing.T) {
	assert := assert.New(t)

	tape := &Tape{Input: strings.NewReader("7 x8 9")}
	assert.Equal([]int64{7}, slices.Collect(tape.Receive()))
	assert.ErrorIs(tape.Err(), ErrParse("x8"))

	// Once broken, the tape stays broken.
	assert.Empty(slices.Collect(tape.Receive()))
}

func TestTape_Receive_NoInput(t *testing.T) {
	assert := assert.New(t)

	tape := &Tape{}
	assert.Empty(slices.Collect(tape.Receive()))
	assert.NoError(tape.Err())
}

func TestTape_Send(t *testing.T) {
	assert := assert.New(t)

	output := &bytes.Buffer{}
	tape := &Tape{Output: output}

	assert.NoError(tape.Send(5))
	assert.NoError(tape.Send(-1234567890123))
	assert.Equal("5\n-1234567890123\n", output.String())
}

func TestTape_Send_NoOutput(t *testing.T) {
	assert := assert.New(t)

	tape := &Tape{Input: strings.NewReader("1")}
	assert.ErrorIs(tape.Send(1), ErrChannelReadOnly)

	ascii := &Ascii{}
	assert.ErrorIs(ascii.Send('A'), ErrChannelReadOnly)
}

func TestAscii(t *testing.T) {
	assert := assert.New(t)

	output := &bytes.Buffer{}
	ascii := &Ascii{
		Input:  strings.NewReader("A,\n"),
		Output: output,
	}

	assert.Equal([]int64{'A', ',', '\n'}, slices.Collect(ascii.Receive()))

	for _, value := range []int64{'#', '.', '\n', 19348359} {
		assert.NoError(ascii.Send(value))
	}
	assert.Equal("#.\n\n19348359\n", output.String())
}

func TestChain(t *testing.T) {
	assert := assert.New(t)

	temp := NewTemporary(4)
	chain := Chain{
		&Rom{Data: []int64{5}},
		temp,
	}

	assert.NoError(chain.Send(10))
	assert.NoError(chain.Send(11))
	assert.Equal(2, temp.Len())

	value, ok := takeOne(chain)
	assert.True(ok)
	assert.Equal(int64(5), value)

	var seq iter.Seq[int64] = chain.Receive()
	assert.Equal([]int64{10, 11}, slices.Collect(seq))

	chain.Rewind()
	assert.Equal([]int64{5}, slices.Collect(chain.Receive()))

	assert.ErrorIs(Chain{}.Send(1), ErrChannelReadOnly)
}
