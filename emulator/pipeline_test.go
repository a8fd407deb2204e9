package emulator

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/intcode/cpu"
)

func TestPipeline(t *testing.T) {
	table := []struct {
		name     string
		program  string
		phases   []int64
		feedback bool
		signal   int64
	}{
		{"serial_43210", "3,15,3,16,1002,16,10,16,1,16,15,15,4,15,99,0,0",
			[]int64{4, 3, 2, 1, 0}, false, 43210},
		{"serial_54321", "3,23,3,24,1002,24,10,24,1002,23,-1,23,101,5,23,23,1,24,23,23,4,23,99,0,0",
			[]int64{0, 1, 2, 3, 4}, false, 54321},
		{"serial_65210", "3,31,3,32,1002,32,10,32,1001,31,-2,31,1007,31,0,33,1002,33,7,33,1,33,31,31,1,32,31,31,4,31,99,0,0,0",
			[]int64{1, 0, 4, 3, 2}, false, 65210},
		{"feedback_139629729", "3,26,1001,26,-4,26,3,27,1002,27,2,27,1,27,26,27,4,27,1001,28,-1,28,1005,28,6,99,0,0,5",
			[]int64{9, 8, 7, 6, 5}, true, 139629729},
		{"feedback_18216", "3,52,1001,52,-5,52,3,53,1,52,56,54,1007,54,5,55,1005,55,26,1001,54,-5,54,1105,1,12,1,53,54,53,1008,54,0,55,1001,55,1,55,2,53,55,53,4,53,1001,56,-1,56,1005,56,6,99,0,0,0,0,10",
			[]int64{9, 7, 8, 5, 6}, true, 18216},
	}

	for _, entry := range table {
		assert := assert.New(t)

		memory, err := cpu.ParseProgram(entry.program)
		assert.NoError(err, entry.name)

		pl := NewPipeline(memory, entry.phases...)
		pl.Feedback = entry.feedback
		signal, err := pl.Run(0)
		assert.NoError(err, entry.name)
		assert.Equal(entry.signal, signal, entry.name)

		for _, stage := range pl.Stages {
			assert.Equal(cpu.STATE_HALTED, stage.State(), entry.name)
		}

		best, order, err := MaxSignal(memory, entry.phases, entry.feedback)
		assert.NoError(err, entry.name)
		assert.Equal(entry.signal, best, entry.name)
		assert.Equal(entry.phases, order, entry.name)
	}
}

func TestPipelineErrors(t *testing.T) {
	assert := assert.New(t)

	_, err := (&Pipeline{}).Run(0)
	assert.ErrorIs(err, ErrPipelineEmpty)

	// Never outputs anything.
	pl := NewPipeline([]int64{3, 0, 3, 0, 99}, 1, 2)
	_, err = pl.Run(0)
	assert.ErrorIs(err, ErrPipelineStalled)

	// Waits forever without output.
	pl = NewPipeline([]int64{3, 5, 1105, 1, 0, 0}, 1)
	pl.Feedback = true
	_, err = pl.Run(0)
	assert.ErrorIs(err, ErrPipelineStalled)

	// Second stage faults.
	pl = NewPipeline([]int64{3, 3, 4, 0, 99}, 1, -1)
	_, err = pl.Run(0)
	var stage *ErrStage
	if assert.ErrorAs(err, &stage) {
		assert.Equal(1, stage.Stage)
	}
	assert.ErrorIs(err, cpu.ErrAddressNegative)
}

func TestPermutations(t *testing.T) {
	assert := assert.New(t)

	var all [][]int64
	for perm := range permutations([]int64{1, 2, 3}) {
		all = append(all, slices.Clone(perm))
	}
	assert.Len(all, 6)

	for _, want := range [][]int64{{1, 2, 3}, {1, 3, 2}, {2, 1, 3}, {2, 3, 1}, {3, 1, 2}, {3, 2, 1}} {
		assert.Contains(all, want)
	}

	count := 0
	for range permutations(nil) {
		count++
	}
	assert.Equal(1, count)
}
