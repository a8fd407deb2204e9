// Package cpu implements the Intcode machine and its assembler.
//
// The machine consists of a growable memory of signed 64-bit words, an
// instruction pointer (Ip), a relative base register, a FIFO input queue and
// an append-only output log. Instructions encode an opcode in their two low
// decimal digits, and one addressing mode digit per parameter above that.
//
// A machine suspends, rather than blocks, when it needs input that has not
// been supplied yet; SupplyInput resumes it. Machines share no state, and
// Clone produces an independent copy for search-style exploration.
//
// The assembler provides a small assembly language for Intcode, supporting
// macros, labels, equates, and compile-time expression evaluation.
package cpu
