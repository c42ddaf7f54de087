package codegen

import (
	"solidus/internal/ast"
	"solidus/internal/errors"
)

// Error is a fatal code generation failure. No output accompanies it.
// Diagnostic carries the code, message and position.
type Error struct {
	Node       ast.Node
	Diagnostic errors.CompilerError
}

func (e *Error) Error() string {
	return e.Diagnostic.Error()
}

func newError(node ast.Node, diag errors.CompilerError) *Error {
	return &Error{Node: node, Diagnostic: diag}
}
