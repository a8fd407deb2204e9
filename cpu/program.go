package cpu

import (
	"io"
	"iter"
	"strconv"
	"strings"
)

// ParseProgram parses a line of comma separated integers into a memory image.
func ParseProgram(text string) (memory []int64, err error) {
	text = strings.TrimSpace(text)
	if len(text) == 0 {
		return
	}

	for _, field := range strings.Split(text, ",") {
		field = strings.TrimSpace(field)
		var value int64
		value, err = strconv.ParseInt(field, 10, 64)
		if err != nil {
			err = ErrParseNumber(field)
			memory = nil
			return
		}
		memory = append(memory, value)
	}

	return
}

// ReadProgram reads a program text from an input stream.
func ReadProgram(input io.Reader) (memory []int64, err error) {
	text, err := io.ReadAll(input)
	if err != nil {
		return
	}

	memory, err = ParseProgram(string(text))
	return
}

// FormatProgram returns the program text of a memory image.
func FormatProgram(memory []int64) string {
	words := make([]string, len(memory))
	for n, value := range memory {
		words[n] = strconv.FormatInt(value, 10)
	}
	return strings.Join(words, ",")
}

// Opcode represents a line of assembled code with its source location and generated words.
type Opcode struct {
	LineNo    int
	Ip        int
	Words     []string
	Codes     []int64
	LinkLabel []string // Label to link, per code word. Empty if none.
}

// Program is an assembled program listing.
type Program struct {
	Opcodes []Opcode
}

type Debug struct {
	*Opcode
	Index int
}

// Debug finds the source line that generated the word at ip.
func (prog *Program) Debug(ip int64) (dbg Debug) {
	for n, op := range prog.Opcodes {
		if ip >= int64(op.Ip) && ip < int64(op.Ip+len(op.Codes)) {
			dbg = Debug{
				Opcode: &prog.Opcodes[n],
				Index:  int(ip - int64(op.Ip)),
			}
			break
		}
	}

	return
}

// LineNo returns the source line of the word at ip, or 0 if unknown.
func (prog *Program) LineNo(ip int64) int {
	dbg := prog.Debug(ip)
	if dbg.Opcode == nil {
		return 0
	}
	return dbg.LineNo
}

// Binary returns the memory image of the program.
func (prog *Program) Binary() (memory []int64) {
	for _, word := range prog.Codes() {
		memory = append(memory, word)
	}

	return
}

// Codes iterates over the program words and their addresses.
func (prog *Program) Codes() iter.Seq2[int, int64] {
	return func(yield func(ip int, word int64) bool) {
		for _, op := range prog.Opcodes {
			for n, word := range op.Codes {
				if !yield(op.Ip+n, word) {
					return
				}
			}
		}
	}
}
