// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package emulator connects Intcode machines to I/O channels.
package emulator

import (
	"errors"
	"log"
	"slices"

	"github.com/ezrec/intcode/cpu"
	"github.com/ezrec/intcode/io"
)

// Emulator state. CPU + IO channels.
type Emulator struct {
	Verbose  bool         // If set, enables verbose logging.
	*cpu.Cpu              // Reference to the CPU simulation.
	Program  *cpu.Program // Listing of the loaded image, if assembled.

	Input  io.Channel // Source of input values.
	Output io.Channel // Sink for output values. If nil, output stays in the Cpu.

	image []int64
}

// NewEmulator creates a new emulator for a memory image.
func NewEmulator(memory []int64) (emu *Emulator) {
	emu = &Emulator{
		Program: &cpu.Program{},
		image:   slices.Clone(memory),
	}

	emu.Reset()

	return
}

// NewEmulatorProgram creates a new emulator for an assembled program.
func NewEmulatorProgram(prog *cpu.Program) (emu *Emulator) {
	emu = NewEmulator(prog.Binary())
	emu.Program = prog
	return
}

// Reset reloads the initial memory image into a fresh machine.
func (emu *Emulator) Reset() {
	emu.Cpu = cpu.NewCpu(emu.image)
	emu.Cpu.Verbose = emu.Verbose
}

// Ticks returns the instructions executed since a reset.
func (emu *Emulator) Ticks() int {
	return emu.Cpu.Ticks
}

// LineNo returns the current line number for the executing opcode.
func (emu *Emulator) LineNo() int {
	return emu.Program.LineNo(emu.Cpu.Ip)
}

// receive pulls a single value from the input channel.
func (emu *Emulator) receive() (value int64, ok bool, err error) {
	if emu.Input == nil {
		return
	}

	for value = range emu.Input.Receive() {
		ok = true
		break
	}

	if !ok {
		if failed, has := emu.Input.(interface{ Err() error }); has {
			err = failed.Err()
		}
	}

	return
}

// flush sends all pending machine output to the output channel.
func (emu *Emulator) flush() (err error) {
	if emu.Output == nil {
		return
	}

	for _, value := range emu.Cpu.DrainOutput() {
		err = emu.Output.Send(value)
		if err != nil {
			return
		}
	}

	return
}

// Tick runs the machine until it halts or needs input. When it is waiting,
// one value is taken from the input channel first.
// done is set once the machine has halted, or input has run dry.
func (emu *Emulator) Tick() (done bool, err error) {
	emu.Cpu.Verbose = emu.Verbose

	defer func() {
		if err != nil && !errors.Is(err, ErrInputExhausted) {
			err = &ErrRuntime{Ip: emu.Cpu.Ip, LineNo: emu.LineNo(), Err: err}
		}
		if err != nil && emu.Verbose {
			log.Printf("emulator: %v", err)
		}
	}()

	switch emu.Cpu.State() {
	case cpu.STATE_HALTED:
		done = true
		err = emu.Cpu.Err()
		return
	case cpu.STATE_WAITING:
		value, ok, rerr := emu.receive()
		if rerr != nil {
			done = true
			err = rerr
			return
		}
		if !ok {
			done = true
			err = ErrInputExhausted
			return
		}
		if emu.Verbose {
			log.Printf("emulator: input %d", value)
		}
		err = emu.Cpu.SupplyInput(value)
	default:
		err = emu.Cpu.Run()
	}

	if ferr := emu.flush(); ferr != nil {
		err = errors.Join(err, ferr)
	}
	done = emu.Cpu.State() == cpu.STATE_HALTED

	return
}

// Run ticks the emulator until done.
func (emu *Emulator) Run() (err error) {
	for done := false; !done; {
		done, err = emu.Tick()
		if err != nil {
			return
		}
	}

	return
}
