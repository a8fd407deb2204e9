package cpu

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemory_Read(t *testing.T) {
	assert := assert.New(t)

	mem := &Memory{Data: []int64{1, 2, 3}}

	value, err := mem.Read(1)
	assert.NoError(err)
	assert.Equal(int64(2), value)
	assert.Equal(3, mem.Len())
}

func TestMemory_Read_Grow(t *testing.T) {
	assert := assert.New(t)

	mem := &Memory{Data: []int64{1, 2, 3}}

	value, err := mem.Read(9)
	assert.NoError(err)
	assert.Equal(int64(0), value)
	assert.Equal(10, mem.Len())
	assert.Equal([]int64{1, 2, 3, 0, 0, 0, 0, 0, 0, 0}, mem.Data)
}

func TestMemory_Write_Grow(t *testing.T) {
	assert := assert.New(t)

	mem := &Memory{}

	err := mem.Write(3, -42)
	assert.NoError(err)
	assert.Equal([]int64{0, 0, 0, -42}, mem.Data)

	err = mem.Write(0, 7)
	assert.NoError(err)
	assert.Equal([]int64{7, 0, 0, -42}, mem.Data)
}

func TestMemory_Negative(t *testing.T) {
	assert := assert.New(t)

	mem := &Memory{Data: []int64{1}}

	_, err := mem.Read(-1)
	assert.ErrorIs(err, ErrAddressNegative)
	assert.ErrorIs(err, ErrAddress)

	err = mem.Write(-2, 5)
	assert.ErrorIs(err, ErrAddressNegative)
	assert.Equal([]int64{1}, mem.Data)
}

func TestMemory_Clone(t *testing.T) {
	assert := assert.New(t)

	mem := &Memory{Data: []int64{1, 2, 3}}
	other := mem.Clone()

	assert.NoError(other.Write(0, 9))
	assert.NoError(other.Write(5, 9))
	assert.Equal([]int64{1, 2, 3}, mem.Data)
	assert.Equal([]int64{9, 2, 3, 0, 0, 9}, other.Data)
}

func TestMemory_TooLarge(t *testing.T) {
	assert := assert.New(t)

	mem := &Memory{Data: []int64{1}}

	_, err := mem.Read(math.MaxInt64)
	assert.ErrorIs(err, ErrAddressTooLarge)
	assert.ErrorIs(err, ErrAddress)

	err = mem.Write(MEMORY_LIMIT, 5)
	assert.ErrorIs(err, ErrAddressTooLarge)
	assert.Equal([]int64{1}, mem.Data)

	assert.NoError(mem.Write(MEMORY_LIMIT-1, 5))
	assert.Equal(MEMORY_LIMIT, mem.Len())
}
