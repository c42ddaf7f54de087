package abi

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"solidus/internal/ast"
	"solidus/internal/parser"
)

func TestKnownSelectors(t *testing.T) {
	tests := []struct {
		signature string
		want      string
	}{
		{"transfer(address,uint256)", "a9059cbb"},
		{"balanceOf(address)", "70a08231"},
		{"approve(address,uint256)", "095ea7b3"},
		{"totalSupply()", "18160ddd"},
	}

	for _, tt := range tests {
		t.Run(tt.signature, func(t *testing.T) {
			assert.Equal(t, tt.want, SelectorOf(tt.signature).Hex())
		})
	}
}

func TestSelectorIsDeterministic(t *testing.T) {
	sig := Signature("transfer", []string{"address", "uint256"})
	first := SelectorOf(sig)
	second := SelectorOf(sig)

	assert.Equal(t, first, second)
	assert.Equal(t, "0xa9059cbb", first.String())
	assert.Len(t, first.Bytes(), SelectorSize)
}

func TestKeccakOfEmptyInput(t *testing.T) {
	assert.Equal(t,
		"c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470",
		hex.EncodeToString(Keccak256(nil)))
}

func TestSignature(t *testing.T) {
	assert.Equal(t, "f()", Signature("f", nil))
	assert.Equal(t, "f(bool,address)", Signature("f", []string{"bool", "address"}))
}

func TestSignatureOfCanonicalisesTypes(t *testing.T) {
	part, _, err := parser.ParseContractPart("function f(uint a, byte b, address[] memory c, int8[2] d) public;")
	require.NoError(t, err)

	fn, ok := part.(*ast.FunctionDefinition)
	require.True(t, ok)
	assert.Equal(t, "f(uint256,bytes1,address[],int8[2])", SignatureOf(fn))
}

func TestSignatureOfFallback(t *testing.T) {
	part, _, err := parser.ParseContractPart("function() external payable { }")
	require.NoError(t, err)

	assert.Equal(t, "()", SignatureOf(part.(*ast.FunctionDefinition)))
}
