package emulator

import (
	"iter"
	"log"
	"slices"

	"github.com/ezrec/intcode/cpu"
)

// Pipeline is a chain of machines, each feeding its output to the next.
type Pipeline struct {
	Verbose  bool       // If set, enables verbose logging.
	Feedback bool       // If set, the last stage feeds the first.
	Stages   []*cpu.Cpu // Machines, in signal order.
}

// NewPipeline creates one stage per phase, each loaded with the memory
// image and primed with its phase as the first input.
func NewPipeline(memory []int64, phases ...int64) (pl *Pipeline) {
	pl = &Pipeline{}
	for _, phase := range phases {
		pl.Stages = append(pl.Stages, cpu.NewCpu(memory, phase))
	}
	return
}

// Run sends signal into the first stage, and returns the last value
// output by the final stage.
// With Feedback set, output of the final stage is looped back to the
// first stage until the final stage halts.
func (pl *Pipeline) Run(signal int64) (result int64, err error) {
	if len(pl.Stages) == 0 {
		err = ErrPipelineEmpty
		return
	}

	last := pl.Stages[len(pl.Stages)-1]
	values := []int64{signal}
	seen := false

	for {
		for n, stage := range pl.Stages {
			stage.Verbose = pl.Verbose
			err = stage.SupplyInput(values...)
			if err == nil && stage.State() == cpu.STATE_CREATED {
				err = stage.Run()
			}
			if err != nil {
				err = &ErrStage{Stage: n, Err: err}
				return
			}
			values = stage.DrainOutput()
			if pl.Verbose {
				log.Printf("emulator: stage %d: %v %v", n, stage.State(), values)
			}
		}

		if len(values) != 0 {
			result = values[len(values)-1]
			seen = true
		}

		if !pl.Feedback || last.State() == cpu.STATE_HALTED {
			break
		}

		if len(values) == 0 {
			err = ErrPipelineStalled
			return
		}
	}

	if !seen {
		err = ErrPipelineStalled
	}

	return
}

// MaxSignal tries every ordering of phases, and returns the highest signal
// produced from an input signal of zero along with the ordering giving it.
func MaxSignal(memory []int64, phases []int64, feedback bool) (best int64, order []int64, err error) {
	first := true
	for perm := range permutations(phases) {
		pl := NewPipeline(memory, perm...)
		pl.Feedback = feedback

		var signal int64
		signal, err = pl.Run(0)
		if err != nil {
			return
		}

		if first || signal > best {
			best = signal
			order = slices.Clone(perm)
			first = false
		}
	}

	return
}

// permutations yields every ordering of values, by Heap's algorithm.
// The yielded slice is reused between iterations.
func permutations(values []int64) iter.Seq[[]int64] {
	return func(yield func([]int64) bool) {
		perm := slices.Clone(values)
		count := make([]int, len(perm))

		if !yield(perm) {
			return
		}

		for i := 1; i < len(perm); {
			if count[i] < i {
				if i%2 == 0 {
					perm[0], perm[i] = perm[i], perm[0]
				} else {
					perm[count[i]], perm[i] = perm[i], perm[count[i]]
				}
				if !yield(perm) {
					return
				}
				count[i]++
				i = 1
			} else {
				count[i] = 0
				i++
			}
		}
	}
}
