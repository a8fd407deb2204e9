package cpu

import (
	"errors"
	"fmt"
	"log"
	"slices"
)

// State is the execution state of a machine.
type State int

const (
	STATE_CREATED = State(0) // No instruction executed yet.
	STATE_RUNNING = State(1) // Inside Run; never seen between calls.
	STATE_WAITING = State(2) // Suspended in an input instruction.
	STATE_HALTED  = State(3) // Executed halt, or failed.
)

func (state State) String() string {
	switch state {
	case STATE_CREATED:
		return "created"
	case STATE_RUNNING:
		return "running"
	case STATE_WAITING:
		return "waiting"
	case STATE_HALTED:
		return "halted"
	}
	return fmt.Sprintf("state(%d)", int(state))
}

// Cpu is the simulation context for a single Intcode machine.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Memory       Memory  // Program and data memory.
	Ip           int64   // Current instruction pointer.
	RelativeBase int64   // Relative base register.
	Input        Queue   // Values waiting to be read.
	Output       []int64 // Values written, oldest first.

	Ticks int // Instructions executed.

	state State
	err   error
}

// NewCpu creates a machine from a memory image and optional initial input.
// The image is copied; the caller may reuse it.
func NewCpu(memory []int64, input ...int64) (cpu *Cpu) {
	cpu = &Cpu{
		Memory: Memory{Data: slices.Clone(memory)},
	}
	cpu.Input.Push(input...)

	return
}

// State returns the current execution state.
func (cpu *Cpu) State() State {
	return cpu.state
}

// Err returns the error that stopped the machine, if any.
func (cpu *Cpu) Err() error {
	return cpu.err
}

// Clone returns an independent deep copy of the machine.
func (cpu *Cpu) Clone() *Cpu {
	return &Cpu{
		Verbose:      cpu.Verbose,
		Memory:       cpu.Memory.Clone(),
		Ip:           cpu.Ip,
		RelativeBase: cpu.RelativeBase,
		Input:        cpu.Input.Clone(),
		Output:       slices.Clone(cpu.Output),
		Ticks:        cpu.Ticks,
		state:        cpu.state,
		err:          cpu.err,
	}
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	regs := []string{"ip", "rb", "state", "code", "input", "output", "memory"}
	for _, reg := range regs {
		var strval string
		switch reg {
		case "ip":
			strval = fmt.Sprintf("%d", cpu.Ip)
		case "rb":
			strval = fmt.Sprintf("%d", cpu.RelativeBase)
		case "state":
			strval = cpu.state.String()
		case "code":
			word, err := cpu.Memory.Read(cpu.Ip)
			if err != nil {
				strval = "----"
				break
			}
			code, err := Decode(word)
			if err != nil {
				strval = fmt.Sprintf("%d ????", word)
				break
			}
			strval = fmt.Sprintf("%d %v", word, code)
		case "input":
			strval = fmt.Sprintf("%v", cpu.Input.Data)
		case "output":
			strval = fmt.Sprintf("%d values", len(cpu.Output))
		case "memory":
			strval = fmt.Sprintf("%d words", cpu.Memory.Len())
		}
		text += fmt.Sprintf("% 6s: %v\n", reg, strval)
	}

	return
}

// PeekOutput returns the output log without clearing it.
// The returned slice must not be modified.
func (cpu *Cpu) PeekOutput() []int64 {
	return cpu.Output
}

// DrainOutput returns the output log and clears it.
func (cpu *Cpu) DrainOutput() (output []int64) {
	output = cpu.Output
	cpu.Output = nil
	return
}

// LastOutput returns the most recent output value.
func (cpu *Cpu) LastOutput() (value int64, ok bool) {
	if len(cpu.Output) == 0 {
		return
	}
	return cpu.Output[len(cpu.Output)-1], true
}

// SupplyInput queues input values. If the machine is waiting for input it
// is resumed, and SupplyInput returns once it halts or waits again.
// A halted machine refuses input.
func (cpu *Cpu) SupplyInput(values ...int64) (err error) {
	if cpu.err != nil {
		return cpu.err
	}

	if cpu.state == STATE_HALTED {
		err = ErrHalted
		return
	}

	cpu.Input.Push(values...)

	if cpu.state == STATE_WAITING {
		err = cpu.Run()
	}

	return
}

// Run dispatches instructions until the machine halts or waits for input.
// Once a run has failed, the machine is halted and Run returns the same
// error without executing anything.
func (cpu *Cpu) Run() (err error) {
	if cpu.err != nil {
		return cpu.err
	}

	if cpu.state == STATE_HALTED {
		return
	}

	cpu.state = STATE_RUNNING
	for cpu.state == STATE_RUNNING {
		err = cpu.step()
		if err != nil {
			return
		}
	}

	return
}

// step executes the instruction at Ip, for Run.
// An input instruction with no input leaves Ip unchanged, and the machine
// waiting for input; it is retried in full on the next step.
// Otherwise the machine is left running, which only Run may observe.
func (cpu *Cpu) step() (err error) {
	if cpu.err != nil {
		return cpu.err
	}

	if cpu.state == STATE_HALTED {
		err = ErrHalted
		return
	}

	defer func() {
		if err != nil {
			cpu.err = err
			cpu.state = STATE_HALTED
			if cpu.Verbose {
				log.Printf("cpu: %v: %v", cpu.Ip, err)
			}
		}
	}()

	cpu.state = STATE_RUNNING

	word, err := cpu.Memory.Read(cpu.Ip)
	if err != nil {
		err = errors.Join(ErrOpcodeDecode, err)
		return
	}

	code, err := Decode(word)
	if err != nil {
		err = errors.Join(ErrOpcodeDecode, err)
		return
	}

	if cpu.Verbose {
		log.Printf("cpu: %v: %v %v", cpu.Ip, code, cpu.Memory.Data[cpu.Ip+1:min(cpu.Ip+code.Size(), int64(cpu.Memory.Len()))])
	}

	next_ip := cpu.Ip + code.Size()

	// Parameter values and destination address.
	var a, b int64
	var dst int64

	switch code.Op {
	case OP_ADD, OP_MUL, OP_LT, OP_EQ:
		a, err = cpu.load(code, 0)
		if err != nil {
			return
		}
		b, err = cpu.load(code, 1)
		if err != nil {
			return
		}
		dst, err = cpu.address(code, 2)
		if err != nil {
			return
		}
		var result int64
		switch code.Op {
		case OP_ADD:
			result = a + b
		case OP_MUL:
			result = a * b
		case OP_LT:
			if a < b {
				result = 1
			}
		case OP_EQ:
			if a == b {
				result = 1
			}
		}
		err = cpu.store(2, dst, result)
		if err != nil {
			return
		}
	case OP_IN:
		dst, err = cpu.address(code, 0)
		if err != nil {
			return
		}
		value, ok := cpu.Input.Pop()
		if !ok {
			// Don't advance to next IP.
			cpu.state = STATE_WAITING
			if cpu.Verbose {
				log.Printf("cpu: %v: waiting for input", cpu.Ip)
			}
			return
		}
		err = cpu.store(0, dst, value)
		if err != nil {
			return
		}
	case OP_OUT:
		a, err = cpu.load(code, 0)
		if err != nil {
			return
		}
		cpu.Output = append(cpu.Output, a)
	case OP_JT, OP_JF:
		a, err = cpu.load(code, 0)
		if err != nil {
			return
		}
		b, err = cpu.load(code, 1)
		if err != nil {
			return
		}
		if (a != 0) == (code.Op == OP_JT) {
			next_ip = b
		}
	case OP_ARB:
		a, err = cpu.load(code, 0)
		if err != nil {
			return
		}
		cpu.RelativeBase += a
	case OP_HALT:
		cpu.state = STATE_HALTED
		next_ip = cpu.Ip
	default:
		err = errors.Join(ErrOpcodeDecode, ErrOpcode(word))
		return
	}

	cpu.Ip = next_ip
	cpu.Ticks++

	return
}

// address resolves the address referred to by parameter n of the
// instruction at Ip. An immediate parameter refers to its own word.
func (cpu *Cpu) address(code Code, n int) (addr int64, err error) {
	addr = cpu.Ip + 1 + int64(n)

	switch code.Modes[n] {
	case MODE_IMMEDIATE:
		// The parameter word itself.
	case MODE_POSITION, MODE_RELATIVE:
		addr, err = cpu.Memory.Read(addr)
		if err != nil {
			err = errors.Join(errParam[n], err)
			return
		}
		if code.Modes[n] == MODE_RELATIVE {
			addr += cpu.RelativeBase
		}
	default:
		err = errors.Join(errParam[n], ErrMode{Word: code.Word, Param: n, Digit: int64(code.Modes[n])})
		return
	}

	return
}

// load returns the value of parameter n.
func (cpu *Cpu) load(code Code, n int) (value int64, err error) {
	addr, err := cpu.address(code, n)
	if err != nil {
		return
	}

	value, err = cpu.Memory.Read(addr)
	if err != nil {
		err = errors.Join(errParam[n], err)
		return
	}

	return
}

// store writes value to the destination of parameter n.
func (cpu *Cpu) store(n int, addr int64, value int64) (err error) {
	err = cpu.Memory.Write(addr, value)
	if err != nil {
		err = errors.Join(errParam[n], err)
		return
	}

	return
}
