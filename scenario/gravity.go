package scenario

import (
	"github.com/ezrec/intcode/cpu"
)

// NOUN_VERB_LIMIT bounds the noun and verb tried by FindNounVerb.
const NOUN_VERB_LIMIT = 100

// Gravity runs a gravity assist program with memory[1] set to noun and
// memory[2] set to verb, and returns memory[0] once it halts.
func Gravity(memory []int64, noun int64, verb int64) (result int64, err error) {
	machine := cpu.NewCpu(memory)

	err = machine.Memory.Write(1, noun)
	if err != nil {
		return
	}
	err = machine.Memory.Write(2, verb)
	if err != nil {
		return
	}

	err = machine.Run()
	if err != nil {
		return
	}

	if machine.State() != cpu.STATE_HALTED {
		err = ErrNotHalted
		return
	}

	result, err = machine.Memory.Read(0)
	return
}

// FindNounVerb tries every noun and verb below NOUN_VERB_LIMIT, noun
// first, and returns the first pair for which Gravity gives target.
// Pairs whose run fails are skipped.
func FindNounVerb(memory []int64, target int64) (noun int64, verb int64, err error) {
	for noun = range NOUN_VERB_LIMIT {
		for verb = range NOUN_VERB_LIMIT {
			result, rerr := Gravity(memory, noun, verb)
			if rerr == nil && result == target {
				return
			}
		}
	}

	noun, verb = 0, 0
	err = ErrNoNounVerb
	return
}
