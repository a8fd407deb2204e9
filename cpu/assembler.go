// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"unicode"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Macro represents a macro definition in the assembly language.
type Macro struct {
	LineNo int      // Line number of the macro definition.
	Args   []string // Arguments for the macro.
	Lines  []string // Lines of macro text to expand.
}

// Predefined system equates
var sysEquate = map[string]string{
	"LINENO":  "0",
	"OP_ADD":  fmt.Sprintf("%d", OP_ADD),
	"OP_MUL":  fmt.Sprintf("%d", OP_MUL),
	"OP_IN":   fmt.Sprintf("%d", OP_IN),
	"OP_OUT":  fmt.Sprintf("%d", OP_OUT),
	"OP_JT":   fmt.Sprintf("%d", OP_JT),
	"OP_JF":   fmt.Sprintf("%d", OP_JF),
	"OP_LT":   fmt.Sprintf("%d", OP_LT),
	"OP_EQ":   fmt.Sprintf("%d", OP_EQ),
	"OP_ARB":  fmt.Sprintf("%d", OP_ARB),
	"OP_HALT": fmt.Sprintf("%d", OP_HALT),
	"TRUE":    "1",
	"FALSE":   "0",
}

// Assembler is a single pass macro assembler for Intcode.
//
// Operands are written as 'value' (position mode), '#value' (immediate mode)
// or '@value' (relative mode), where a value is a number, an equate, or a
// label. Inside a macro, '%name' is a label local to each expansion.
type Assembler struct {
	Verbose bool     // If set, verbosely logs the assembler actions.
	Opcode  []Opcode // List of generated opcodes.

	predefine  map[string]string   // Predefines
	Label      map[string]int      // Map of labels to addresses.
	Equate     map[string]string   // Map of equates.
	Macro      map[string](*Macro) // Map of macros.
	expansions int                 // Count of macro expansions.
}

// Predefine defines a new equate or redefines an existing equate.
func (asm *Assembler) Predefine(equ string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{equ: value}
	} else {
		asm.predefine[equ] = value
	}
}

// opMap maps mnemonics to operations.
var opMap = map[string]Op{
	"add":  OP_ADD,
	"mul":  OP_MUL,
	"in":   OP_IN,
	"out":  OP_OUT,
	"jt":   OP_JT,
	"jf":   OP_JF,
	"lt":   OP_LT,
	"eq":   OP_EQ,
	"arb":  OP_ARB,
	"halt": OP_HALT,
}

var (
	labelRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_.]*$`)
	localRe = regexp.MustCompile(`\B%([A-Za-z_])`)
)

// valueOf returns the value of a simple word.
func (asm *Assembler) valueOf(word string) (value int64, err error) {
	if len(word) == 0 {
		err = ErrParseNumber(word)
		return
	}

	invert := false
	if word[0] == '~' {
		invert = true
		word = word[1:]
	}
	if len(word) > 0 && word[0] == '\'' {
		// Character quotes should have been expanded into
		// values in parseLine()
		err = ErrParseCharacter(strings.Trim(word, "'"))
		return
	}

	value, err = strconv.ParseInt(word, 0, 64)
	if err != nil {
		err = ErrParseNumber(word)
		return
	}

	if invert {
		value = ^value
	}

	return
}

// operand is a single parsed instruction parameter.
type operand struct {
	mode  Mode
	value int64
	label string // Label to add to value at link time.
}

// parseOperand parses a parameter word into its mode and value.
func (asm *Assembler) parseOperand(word string) (arg operand, err error) {
	switch {
	case strings.HasPrefix(word, "#"):
		arg.mode = MODE_IMMEDIATE
		word = word[1:]
	case strings.HasPrefix(word, "@"):
		arg.mode = MODE_RELATIVE
		word = word[1:]
	}

	arg.value, err = asm.valueOf(word)
	if err == nil {
		return
	}

	if labelRe.MatchString(word) {
		err = nil
		arg.value = 0
		arg.label = word
	}

	return
}

// parenEval does compile-time $(...) evaluations
func (asm *Assembler) parenEval(expr string) (value int64, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, addr := range asm.Label {
		pred[key] = starlark.MakeInt(addr)
	}
	for key, str := range asm.Equate {
		var value64 int64
		value64, err = asm.valueOf(str)
		if err != nil {
			// Ignore non-integer equates. They may be operands
			// or something else.
			err = nil
			continue
		}
		pred[key] = starlark.MakeInt64(value64)
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value, ok = st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	return
}

// splitWords splits a line on blanks and commas.
func splitWords(line string) []string {
	return strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
}

// parseLine parses a single line as an opcode.
func (asm *Assembler) parseLine(line string, lineno int) (words []string, err error) {
	// Set line number.
	asm.Equate["LINENO"] = fmt.Sprintf("%v", lineno)

	// Do 'x' evaluations
	re := regexp.MustCompile(`'\\?[^']'`)
	line = re.ReplaceAllStringFunc(line, func(word string) string {
		str := word[1 : len(word)-1]
		if str[0] == '\\' {
			str = str[1:]
			switch str {
			case "\\":
				str = "\\"
			case "n":
				str = "\n"
			case "r":
				str = "\r"
			case "t":
				str = "\t"
			case "e":
				str = "\033"
			default:
				return word
			}
		} else if len(str) != 1 {
			return word
		}
		return fmt.Sprintf("%v", str[0])
	})

	// Do $() evaluations
	re = regexp.MustCompile(`\$\([^\$]*\)`)
	line = re.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := asm.parenEval(str[2 : len(str)-1])
		if _err != nil {
			err = _err
		}
		return fmt.Sprintf("%d", value)
	})
	if err != nil {
		return
	}

	words = splitWords(line)

	if len(words) == 0 {
		return
	}

	// .equ CONST VALUE
	if words[0] == ".equ" {
		if len(words) != 3 {
			err = ErrEquateSyntax
			return
		}
		_, ok := asm.Equate[words[1]]
		if ok {
			err = ErrEquateDuplicate
			return
		}
		asm.Equate[words[1]] = words[2]
		words = words[:0]
		return
	}

	for n, word := range words {
		// Check for equate next, looking past any mode prefix.
		prefix := ""
		if strings.HasPrefix(word, "#") || strings.HasPrefix(word, "@") {
			prefix = word[:1]
			word = word[1:]
		}
		equate, ok := asm.Equate[word]
		if ok {
			words[n] = prefix + equate
		}
	}

	for strings.HasSuffix(words[0], ":") {
		label := words[0][:len(words[0])-1]
		_, ok := asm.Label[label]
		if ok {
			err = ErrLabelDuplicate
			return
		}

		if asm.Label == nil {
			asm.Label = make(map[string]int, 16)
		}
		asm.Label[label] = asm.currentIp()
		words = words[1:]
		if len(words) == 0 {
			return
		}
	}

	// .macro processing
	macro, ok := asm.Macro[words[0]]
	if ok {
		name := words[0]

		args := words[1:]
		if len(args) != len(macro.Args) {
			err = ErrMacroSyntax
			return
		}
		// Turn args into equs
		old_equate := maps.Clone(asm.Equate)
		for n, arg := range macro.Args {
			asm.Equate[arg] = words[1+n]
		}
		defer func() { asm.Equate = old_equate }()

		asm.expansions++
		local := fmt.Sprintf("%v_%v_", name, asm.expansions)

		for n, line := range macro.Lines {
			lineno := macro.LineNo + n

			line = localRe.ReplaceAllString(line, local+"${1}")
			words, err = asm.parseLine(line, lineno)
			if err != nil {
				err = ErrMacro{Macro: name, Line: lineno, Err: err}
				return
			}

			err = asm.parseWords(words, lineno)
			if err != nil {
				err = ErrMacro{Macro: name, Line: lineno, Err: err}
				return
			}
		}
		words = nil
		return
	}

	return
}

// currentIp gets the current Ip
func (asm *Assembler) currentIp() int {
	if len(asm.Opcode) == 0 {
		return 0
	}

	last := asm.Opcode[len(asm.Opcode)-1]

	return last.Ip + len(last.Codes)
}

// Parse parses an input stream into a Program containing opcodes.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int
	var macro *Macro

	defer func() {
		if err != nil {
			err = ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	clear(asm.Label)
	asm.Opcode = asm.Opcode[:0]
	asm.expansions = 0
	if asm.Macro == nil {
		asm.Macro = make(map[string](*Macro))
	}
	clear(asm.Macro)
	asm.Equate = maps.Clone(sysEquate)
	for attr, val := range asm.predefine {
		asm.Equate[attr] = val
	}

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if asm.Verbose {
			log.Printf("asm: %v: %v\n", lineno, text)
		}

		text_comment := strings.Split(text, ";")
		line = strings.TrimSpace(text_comment[0])
		words := splitWords(line)

		// .macro NAME arg...
		if len(words) > 0 && words[0] == ".macro" {
			if macro != nil {
				err = ErrMacroNesting
				return
			}
			if len(words) < 2 {
				err = ErrMacroSyntax
				return
			}
			_, ok := asm.Macro[words[1]]
			if ok {
				err = ErrMacroDuplicate
				return
			}
			macro = &Macro{
				LineNo: lineno + 1,
			}
			if len(words) > 2 {
				macro.Args = words[2:]
			}
			asm.Macro[words[1]] = macro
			continue
		}

		if len(words) > 0 && words[0] == ".endm" {
			if macro == nil {
				err = ErrMacroLonelyEndm
				return
			}
			macro = nil
			continue
		}

		if macro != nil {
			macro.Lines = append(macro.Lines, line)
			continue
		}

		words, err = asm.parseLine(line, lineno)
		if err != nil {
			return
		}

		err = asm.parseWords(words, lineno)
		if err != nil {
			return
		}
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	if macro != nil {
		err = ErrMacroLonely
		return
	}

	// Final linking of labels.
	for n := range asm.Opcode {
		op := &asm.Opcode[n]

		for index, label := range op.LinkLabel {
			if len(label) == 0 {
				continue
			}
			ip, ok := asm.Label[label]
			if !ok {
				lineno = op.LineNo
				line = strings.Join(op.Words, " ")
				err = ErrLabelMissing(label)
				return
			}
			op.Codes[index] += int64(ip)
		}
	}

	prog = &Program{
		Opcodes: slices.Clone(asm.Opcode),
	}

	return
}

// parseWords evaluates the words in a line of assembly text.
func (asm *Assembler) parseWords(words []string, lineno int) (err error) {
	var codes []int64
	var labels []string

	// no-op
	if len(words) == 0 {
		return
	}

	initial_words := words

	defer func() {
		if err != nil || len(codes) == 0 {
			return
		}
		opcode := Opcode{LineNo: lineno, Ip: asm.currentIp(), Words: initial_words, Codes: codes}
		if slices.ContainsFunc(labels, func(label string) bool { return len(label) != 0 }) {
			opcode.LinkLabel = labels
		}
		asm.Opcode = append(asm.Opcode, opcode)
	}()

	// Alternate syntax substitutions
	switch {
	case len(words) == 2 && words[0] == "jump":
		// jump TARGET => jt #1 #TARGET
		target := words[1]
		if !strings.HasPrefix(target, "#") && !strings.HasPrefix(target, "@") {
			target = "#" + target
		}
		words = []string{"jt", "#1", target}
	case len(words) == 3 && words[0] == "mov":
		// mov SRC DST => add SRC #0 DST
		words = []string{"add", words[1], "#0", words[2]}
	default:
		// unchanged
	}

	if words[0] == ".data" {
		if len(words) < 2 {
			err = ErrOpcodeValueMissing
			return
		}
		for _, word := range words[1:] {
			var arg operand
			arg, err = asm.parseOperand(word)
			if err != nil {
				return
			}
			if arg.mode != MODE_POSITION {
				err = ErrParseNumber(word)
				return
			}
			codes = append(codes, arg.value)
			labels = append(labels, arg.label)
		}
		return
	}

	op, ok := opMap[words[0]]
	if !ok {
		err = ErrInstructionInvalid
		return
	}

	args := words[1:]
	if len(args) < op.Params() {
		err = ErrOpcodeValueMissing
		return
	}
	if len(args) > op.Params() {
		err = ErrOpcodeExtraArgs
		return
	}

	modes := make([]Mode, len(args))
	values := make([]int64, len(args))
	names := make([]string, len(args))
	for n, word := range args {
		var arg operand
		arg, err = asm.parseOperand(word)
		if err != nil {
			return
		}
		if op.Writes() && n == len(args)-1 && arg.mode == MODE_IMMEDIATE {
			err = ErrTargetInvalid
			return
		}
		modes[n] = arg.mode
		values[n] = arg.value
		names[n] = arg.label
	}

	codes = append(codes, MakeCode(op, modes...).Word)
	labels = append(labels, "")
	codes = append(codes, values...)
	labels = append(labels, names...)

	return
}
