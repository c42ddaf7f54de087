package parser

import "fmt"

// ParseError names the construct the parser expected and where matching failed.
type ParseError struct {
	Expected string
	Found    string
	Position Position // Position.Offset is the byte offset of the failure
	Length   int
}

func (e ParseError) Message() string {
	return fmt.Sprintf("expected %s, found %s", e.Expected, e.Found)
}

func (e ParseError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Position.Line, e.Position.Column, e.Message())
}

// Expectations the compiler maps to dedicated error codes.
const (
	ExpectedEndOfInput = "contract declaration or end of input"
	ExpectedEscape     = "valid string escape"
)
