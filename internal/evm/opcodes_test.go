package evm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpCodeBytes(t *testing.T) {
	tests := []struct {
		op   OpCode
		want byte
	}{
		{PUSH1, 0x60},
		{PUSH2, 0x61},
		{PUSH4, 0x63},
		{PUSH20, 0x73},
		{PUSH32, 0x7f},
		{DUP1, 0x80},
		{POP, 0x50},
		{AND, 0x16},
		{JUMP, 0x56},
		{JUMPI, 0x57},
		{JUMPDEST, 0x5b},
		{REVERT, 0xfd},
		{MLOAD, 0x51},
		{MSTORE, 0x52},
		{CALLVALUE, 0x34},
		{ISZERO, 0x15},
		{SWAP1, 0x90},
		{LOG4, 0xa4},
	}

	for _, tt := range tests {
		t.Run(tt.op.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, byte(tt.op))
		})
	}
}

func TestLookupOpCode(t *testing.T) {
	op, ok := LookupOpCode("CALLVALUE")
	require.True(t, ok)
	assert.Equal(t, CALLVALUE, op)

	op, ok = LookupOpCode("PUSH20")
	require.True(t, ok)
	assert.Equal(t, PUSH20, op)

	_, ok = LookupOpCode("PUSH33")
	assert.False(t, ok)
}

func TestStackEffects(t *testing.T) {
	pops, pushes := DUP1.StackEffect()
	assert.Equal(t, 1, pops)
	assert.Equal(t, 2, pushes)

	pops, pushes = JUMPI.StackEffect()
	assert.Equal(t, 2, pops)
	assert.Equal(t, 0, pushes)

	pops, pushes = SWAP16.StackEffect()
	assert.Equal(t, 17, pops)
	assert.Equal(t, 17, pushes)

	pops, pushes = CALL.StackEffect()
	assert.Equal(t, 7, pops)
	assert.Equal(t, 1, pushes)
}

func TestPushN(t *testing.T) {
	for n := 1; n <= 32; n++ {
		op, err := PushN(n)
		require.NoError(t, err)
		assert.Equal(t, n, op.PushSize())
		assert.True(t, op.IsPush())
	}

	_, err := PushN(0)
	assert.Error(t, err)
	_, err = PushN(33)
	assert.Error(t, err)
	assert.Equal(t, 0, ADD.PushSize())
}

func TestUndefinedOpCodeString(t *testing.T) {
	assert.False(t, OpCode(0x0c).Defined())
	assert.Equal(t, "opcode 0x0c", OpCode(0x0c).String())
}
