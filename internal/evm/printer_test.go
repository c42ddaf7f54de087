package evm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisassemble(t *testing.T) {
	code := []byte{0x60, 0x80, 0x60, 0x40, 0x52, 0x34, 0x63, 0xa9, 0x05, 0x9c, 0xbb}
	instructions := Disassemble(code)

	require.Len(t, instructions, 5)
	assert.Equal(t, PUSH1, instructions[0].Op)
	assert.Equal(t, []byte{0x80}, instructions[0].Operand)
	assert.Equal(t, 4, instructions[2].Offset)
	assert.Equal(t, MSTORE, instructions[2].Op)
	assert.Equal(t, "PUSH4 0xa9059cbb", instructions[4].String())
}

func TestDisassembleTruncatedPush(t *testing.T) {
	instructions := Disassemble([]byte{0x61, 0x01})

	require.Len(t, instructions, 1)
	assert.True(t, instructions[0].Truncated)
	assert.Equal(t, "PUSH2 0x01 (truncated)", instructions[0].String())
}

func TestPrint(t *testing.T) {
	listing := Print([]byte{0x60, 0x40, 0x51, 0x0c})

	assert.Equal(t, "0000: PUSH1 0x40\n0002: MLOAD\n0003: opcode 0x0c\n", listing)
}

func TestPrintSections(t *testing.T) {
	listing := PrintSections([]string{"creation", "runtime"}, [][]byte{{0x50}, {0x51}})

	assert.Equal(t, "creation:\n0000: POP\n\nruntime:\n0000: MLOAD\n", listing)
}
