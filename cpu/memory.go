package cpu

import (
	"slices"
)

// MEMORY_LIMIT is the largest number of words a machine may address.
const MEMORY_LIMIT = 1 << 24

// Memory is the flat, zero filled word store of a machine.
// It grows on demand to cover any non-negative address accessed.
type Memory struct {
	Data []int64
}

// Len returns the current extent of memory.
func (mem *Memory) Len() int {
	return len(mem.Data)
}

// grow extends the memory with zeros up to and including addr.
func (mem *Memory) grow(addr int64) (err error) {
	if addr < 0 {
		err = &ErrAccess{Addr: addr, Err: ErrAddressNegative}
		return
	}

	if addr >= MEMORY_LIMIT {
		err = &ErrAccess{Addr: addr, Err: ErrAddressTooLarge}
		return
	}

	if addr >= int64(len(mem.Data)) {
		mem.Data = append(mem.Data, make([]int64, addr-int64(len(mem.Data))+1)...)
	}

	return
}

// Read returns the word at addr.
func (mem *Memory) Read(addr int64) (value int64, err error) {
	err = mem.grow(addr)
	if err != nil {
		return
	}

	value = mem.Data[addr]
	return
}

// Write sets the word at addr.
func (mem *Memory) Write(addr int64, value int64) (err error) {
	err = mem.grow(addr)
	if err != nil {
		return
	}

	mem.Data[addr] = value
	return
}

// Clone returns an independent copy of the memory.
func (mem *Memory) Clone() Memory {
	return Memory{Data: slices.Clone(mem.Data)}
}
