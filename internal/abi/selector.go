// Package abi derives function signatures and 4-byte selectors.
package abi

import (
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/sha3"
	"solidus/internal/ast"
	"solidus/internal/builtins"
)

// SelectorSize is the number of digest bytes that route an external call
const SelectorSize = 4

// Selector is the routing key of an external function
type Selector [SelectorSize]byte

func (s Selector) Bytes() []byte {
	return s[:]
}

// Hex returns the selector as eight lowercase hex digits
func (s Selector) Hex() string {
	return hex.EncodeToString(s[:])
}

func (s Selector) String() string {
	return "0x" + s.Hex()
}

// Signature joins a function name with its argument type names, e.g.
// "transfer(address,uint256)".
func Signature(name string, argTypes []string) string {
	return name + "(" + strings.Join(argTypes, ",") + ")"
}

// SignatureOf builds the canonical signature of a function definition
// from its declared parameter types.
func SignatureOf(fn *ast.FunctionDefinition) string {
	name := ""
	if fn.Name != nil {
		name = fn.Name.Value
	}
	types := make([]string, 0, len(fn.Params))
	for _, param := range fn.Params {
		types = append(types, builtins.CanonicalABIName(param.Type))
	}
	return Signature(name, types)
}

// Keccak256 hashes data with the legacy (pre-standard) Keccak padding
func Keccak256(data []byte) []byte {
	h := sha3.NewLegacyKeccak256()
	_, _ = h.Write(data)
	return h.Sum(nil)
}

// SelectorOf returns the first four bytes of the Keccak-256 digest of signature
func SelectorOf(signature string) Selector {
	var s Selector
	copy(s[:], Keccak256([]byte(signature)))
	return s
}
