// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	goio "io"
	"log"
	"os"

	"github.com/ezrec/intcode/cpu"
	"github.com/ezrec/intcode/emulator"
	"github.com/ezrec/intcode/io"
	"github.com/ezrec/intcode/job"
	"github.com/ezrec/intcode/scenario"
)

func main() {
	var config string
	var compile string
	var image string
	var save bool
	var input string
	var output string
	var ascii bool
	var phases string
	var feedback bool
	var search bool
	var verbose bool
	var peek int64
	var target int64

	flag.StringVar(&config, "config", "", "TOML job file")
	flag.StringVar(&compile, "c", "", "Assembler source file to compile")
	flag.StringVar(&image, "p", "", "Program text file to run")
	flag.BoolVar(&save, "s", false, "Write the program text to the output, do not execute")
	flag.StringVar(&input, "i", "-", "Tape input")
	flag.StringVar(&output, "o", "-", "Tape output")
	flag.BoolVar(&ascii, "a", false, "ASCII tape I/O")
	flag.StringVar(&phases, "phases", "", "Comma separated amplifier phases")
	flag.BoolVar(&feedback, "loop", false, "Amplifier feedback loop")
	flag.BoolVar(&search, "search", false, "Search for the amplifier phase order with the highest signal")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.Int64Var(&peek, "peek", -1, "Print the memory word at this address after halting")
	flag.Int64Var(&target, "target", 0, "Search for the noun and verb giving this memory[0]")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	run := &job.Job{
		Tape: job.Tape{Input: "-", Output: "-"},
	}
	if len(config) != 0 {
		var err error
		run, err = job.Load(config)
		if err != nil {
			log.Fatal(err)
		}
	}

	// Flags override the job file.
	flag.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "c":
			run.Program.Source = compile
		case "p":
			run.Program.Image = image
			run.Program.Source = ""
		case "i":
			run.Tape.Input = input
		case "o":
			run.Tape.Output = output
		case "a":
			run.Tape.Ascii = ascii
		case "phases":
			values, err := cpu.ParseProgram(phases)
			if err != nil {
				log.Fatalf("-phases: %v", err)
			}
			run.Pipeline.Phases = values
		case "loop":
			run.Pipeline.Feedback = feedback
		case "search":
			run.Pipeline.Search = search
		case "v":
			run.Verbose = verbose
		}
	})

	memory, prog, err := run.Image()
	if err != nil {
		log.Fatal(err)
	}

	outf := os.Stdout
	if path := run.Path(run.Tape.Output); path != "-" && len(path) != 0 {
		outf, err = os.Create(path)
		if err != nil {
			log.Fatalf("%v: %v", path, err)
		}
		defer outf.Close()
	}

	if save {
		fmt.Fprintln(outf, cpu.FormatProgram(memory))
		return
	}

	if isFlagSet("target") {
		noun, verb, err := scenario.FindNounVerb(memory, target)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Fprintf(outf, "%d\n", 100*noun+verb)
		return
	}

	if len(run.Pipeline.Phases) != 0 {
		runPipeline(run, memory, outf)
		return
	}

	var inf goio.Reader = os.Stdin
	if path := run.Path(run.Tape.Input); path != "-" && len(path) != 0 {
		file, err := os.Open(path)
		if err != nil {
			log.Fatalf("%v: %v", path, err)
		}
		defer file.Close()
		inf = file
	}

	var emu *emulator.Emulator
	if prog != nil {
		emu = emulator.NewEmulatorProgram(prog)
	} else {
		emu = emulator.NewEmulator(memory)
	}
	emu.Verbose = run.Verbose

	var tape io.Channel
	if run.Tape.Ascii {
		tape = &io.Ascii{Input: inf, Output: outf}
	} else {
		tape = &io.Tape{Input: inf, Output: outf}
	}
	emu.Input = io.Chain{&io.Rom{Data: run.Tape.Values}, tape}
	emu.Output = tape

	err = emu.Run()
	if err != nil {
		log.Fatal(err)
	}

	if run.Verbose {
		log.Printf("intcode: halted after %d ticks", emu.Ticks())
	}

	if peek >= 0 {
		value, err := emu.Cpu.Memory.Read(peek)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Fprintf(outf, "%d\n", value)
	}
}

// isFlagSet is true if the named flag was given on the command line.
func isFlagSet(name string) (set bool) {
	flag.Visit(func(fl *flag.Flag) {
		if fl.Name == name {
			set = true
		}
	})
	return
}

// runPipeline runs the program as a chain of amplifiers, and prints the
// resulting signal.
func runPipeline(run *job.Job, memory []int64, outf goio.Writer) {
	if run.Pipeline.Search {
		best, order, err := emulator.MaxSignal(memory, run.Pipeline.Phases, run.Pipeline.Feedback)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Fprintf(outf, "%d\n", best)
		if run.Verbose {
			log.Printf("intcode: phases %v", cpu.FormatProgram(order))
		}
		return
	}

	pl := emulator.NewPipeline(memory, run.Pipeline.Phases...)
	pl.Verbose = run.Verbose
	pl.Feedback = run.Pipeline.Feedback

	signal := int64(0)
	if len(run.Tape.Values) != 0 {
		signal = run.Tape.Values[0]
	}

	signal, err := pl.Run(signal)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Fprintf(outf, "%d\n", signal)
}
