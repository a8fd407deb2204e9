// Package job describes an Intcode run: which program to load, how to patch
// it, where its input comes from, and whether it runs as an amplifier
// pipeline.
package job

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"

	"github.com/ezrec/intcode/cpu"
)

// Job is the contents of a job file.
type Job struct {
	Verbose  bool     `toml:"verbose"`
	Program  Program  `toml:"program"`
	Tape     Tape     `toml:"tape"`
	Pipeline Pipeline `toml:"pipeline"`

	// Dir is the directory relative paths are resolved against.
	Dir string `toml:"-"`
}

// Program selects the memory image.
type Program struct {
	Image   string            `toml:"image"`   // Program text file.
	Source  string            `toml:"source"`  // Assembler source file, used instead of Image.
	Defines map[string]string `toml:"defines"` // Equates predefined for Source.
	Patch   map[string]int64  `toml:"patch"`   // Words written over the image, by address.
}

// Tape selects the I/O channels.
type Tape struct {
	Input  string  `toml:"input"`  // Input file, or "-" for stdin.
	Output string  `toml:"output"` // Output file, or "-" for stdout.
	Ascii  bool    `toml:"ascii"`  // Byte I/O instead of decimal text.
	Values []int64 `toml:"values"` // Input values read before the input file.
}

// Pipeline configures an amplifier run.
type Pipeline struct {
	Phases   []int64 `toml:"phases"`
	Feedback bool    `toml:"feedback"`
	Search   bool    `toml:"search"` // Try every phase ordering.
}

// Load decodes a job file.
func Load(path string) (job *Job, err error) {
	job = &Job{}

	_, err = toml.DecodeFile(path, job)
	if err != nil {
		err = &ErrLoad{Path: path, Err: err}
		job = nil
		return
	}

	job.Dir = filepath.Dir(path)

	return
}

// Path resolves a file name from the job file. "-" and absolute paths are
// returned unchanged.
func (job *Job) Path(name string) string {
	if name == "-" || name == "" || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(job.Dir, name)
}

// Image loads the memory image, assembling the source if one is given,
// then applies the patches. prog is non-nil only for assembled source.
func (job *Job) Image() (memory []int64, prog *cpu.Program, err error) {
	switch {
	case len(job.Program.Source) != 0:
		path := job.Path(job.Program.Source)
		var inf *os.File
		inf, err = os.Open(path)
		if err != nil {
			return
		}
		defer inf.Close()

		asm := &cpu.Assembler{Verbose: job.Verbose}
		for name, value := range job.Program.Defines {
			asm.Predefine(name, value)
		}
		prog, err = asm.Parse(inf)
		if err != nil {
			err = &ErrLoad{Path: path, Err: err}
			return
		}
		memory = prog.Binary()
	case len(job.Program.Image) != 0:
		path := job.Path(job.Program.Image)
		var inf *os.File
		inf, err = os.Open(path)
		if err != nil {
			return
		}
		defer inf.Close()

		memory, err = cpu.ReadProgram(inf)
		if err != nil {
			err = &ErrLoad{Path: path, Err: err}
			return
		}
	default:
		err = ErrNoProgram
		return
	}

	mem := cpu.Memory{Data: memory}
	for key, value := range job.Program.Patch {
		var addr int64
		addr, err = strconv.ParseInt(key, 0, 64)
		if err != nil {
			err = ErrPatch(key)
			return
		}
		err = mem.Write(addr, value)
		if err != nil {
			return
		}
	}
	memory = mem.Data

	return
}
