package emulator

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/intcode/cpu"
	"github.com/ezrec/intcode/io"
)

func doAssemble(t *testing.T, program []string) (prog *cpu.Program) {
	asm := &cpu.Assembler{}
	prog, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	if err != nil {
		t.Fatal(err)
	}
	return
}

// echoDouble outputs twice each input, until a zero is read.
var echoDouble = []string{
	"loop: in value",
	"      jf value #done",
	"      mul value #2 value",
	"      out value",
	"      jump loop",
	"done: halt",
	"value: .data 0",
}

func TestEmulator(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator([]int64{104, 7, 99})
	assert.False(emu.Verbose)
	assert.Equal(cpu.STATE_CREATED, emu.Cpu.State())
	assert.Equal(0, emu.LineNo())

	done, err := emu.Tick()
	assert.NoError(err)
	assert.True(done)
	assert.Equal([]int64{7}, emu.Cpu.Output)
	assert.Equal(2, emu.Ticks())

	// Halted stays halted.
	done, err = emu.Tick()
	assert.NoError(err)
	assert.True(done)

	emu.Reset()
	assert.Equal(cpu.STATE_CREATED, emu.Cpu.State())
	assert.Empty(emu.Cpu.Output)
	assert.Equal(0, emu.Ticks())
}

func TestEmulatorChannels(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulatorProgram(doAssemble(t, echoDouble))

	output := io.NewTemporary(16)
	emu.Input = &io.Rom{Data: []int64{3, -4, 0}}
	emu.Output = output

	ticks := 0
	for done := false; !done; ticks++ {
		var err error
		done, err = emu.Tick()
		assert.NoError(err)
	}

	// Run to first input, then one tick per input value.
	assert.Equal(4, ticks)
	assert.Equal(cpu.STATE_HALTED, emu.Cpu.State())
	assert.Empty(emu.Cpu.Output)
	assert.Equal(2, output.Len())
	assert.Equal([]int64{6, -8}, output.Data[:2])
}

func TestEmulatorTape(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulatorProgram(doAssemble(t, echoDouble))

	tape_output := &bytes.Buffer{}
	emu.Input = &io.Tape{Input: strings.NewReader("1,2\n3 0\n")}
	emu.Output = &io.Tape{Output: tape_output}

	assert.NoError(emu.Run())
	assert.Equal("2\n4\n6\n", tape_output.String())
}

func TestEmulatorTapeMalformed(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulatorProgram(doAssemble(t, echoDouble))
	emu.Input = &io.Tape{Input: strings.NewReader("1 two")}

	err := emu.Run()
	assert.ErrorIs(err, io.ErrParse("two"))

	var runtime *ErrRuntime
	if assert.ErrorAs(err, &runtime) {
		assert.Equal(1, runtime.LineNo)
	}
}

func TestEmulatorInputExhausted(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulatorProgram(doAssemble(t, echoDouble))
	emu.Input = &io.Rom{Data: []int64{5}}

	err := emu.Run()
	assert.ErrorIs(err, ErrInputExhausted)
	assert.Equal(cpu.STATE_WAITING, emu.Cpu.State())
	assert.Equal([]int64{10}, emu.Cpu.Output)

	// More input resumes the machine.
	emu.Input = &io.Rom{Data: []int64{0}}
	assert.NoError(emu.Run())
	assert.Equal(cpu.STATE_HALTED, emu.Cpu.State())

	// No input channel at all.
	emu.Reset()
	emu.Input = nil
	done, err := emu.Tick()
	assert.NoError(err)
	assert.False(done)
	done, err = emu.Tick()
	assert.True(done)
	assert.ErrorIs(err, ErrInputExhausted)
}

func TestEmulatorRuntimeError(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		"out #1",
		"arb #-10",
		"out @0",
		"halt",
	}

	emu := NewEmulatorProgram(doAssemble(t, program))
	output := io.NewTemporary(4)
	emu.Output = output

	done, err := emu.Tick()
	assert.True(done)
	assert.ErrorIs(err, cpu.ErrAddressNegative)

	var runtime *ErrRuntime
	if assert.ErrorAs(err, &runtime) {
		assert.Equal(3, runtime.LineNo)
		assert.Equal(int64(4), runtime.Ip)
	}

	// Output before the fault is delivered.
	assert.Equal(1, output.Len())

	// The failure is sticky.
	done, err = emu.Tick()
	assert.True(done)
	assert.ErrorIs(err, cpu.ErrAddressNegative)
}

func TestEmulatorOutputFull(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator([]int64{104, 1, 104, 2, 99})
	emu.Output = io.NewTemporary(1)

	_, err := emu.Tick()
	assert.ErrorIs(err, io.ErrChannelFull)
}
