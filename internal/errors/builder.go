package errors

import (
	"fmt"
	"strings"

	"solidus/internal/ast"
)

// ErrorBuilder provides a fluent interface for creating compiler errors with suggestions
type ErrorBuilder struct {
	err CompilerError
}

// NewCompilerError creates a new error builder
func NewCompilerError(code, message string, pos ast.Position) *ErrorBuilder {
	return &ErrorBuilder{
		err: CompilerError{
			Level:    Error,
			Code:     code,
			Message:  message,
			Position: pos,
			Length:   1,
		},
	}
}

// NewCompilerWarning creates a new warning builder
func NewCompilerWarning(code, message string, pos ast.Position) *ErrorBuilder {
	return &ErrorBuilder{
		err: CompilerError{
			Level:    Warning,
			Code:     code,
			Message:  message,
			Position: pos,
			Length:   1,
		},
	}
}

// WithLength sets the length of the error span
func (b *ErrorBuilder) WithLength(length int) *ErrorBuilder {
	if length > 0 {
		b.err.Length = length
	}
	return b
}

// WithSuggestion adds a suggestion to the error
func (b *ErrorBuilder) WithSuggestion(message string) *ErrorBuilder {
	b.err.Suggestions = append(b.err.Suggestions, Suggestion{Message: message})
	return b
}

// WithReplacement adds a suggestion with replacement text
func (b *ErrorBuilder) WithReplacement(message, replacement string, pos ast.Position, length int) *ErrorBuilder {
	b.err.Suggestions = append(b.err.Suggestions, Suggestion{
		Message:     message,
		Replacement: replacement,
		Position:    pos,
		Length:      length,
	})
	return b
}

// WithNote adds a note to the error
func (b *ErrorBuilder) WithNote(note string) *ErrorBuilder {
	b.err.Notes = append(b.err.Notes, note)
	return b
}

// WithHelp adds help text to the error
func (b *ErrorBuilder) WithHelp(help string) *ErrorBuilder {
	b.err.HelpText = help
	return b
}

// Build returns the completed compiler error
func (b *ErrorBuilder) Build() CompilerError {
	return b.err
}

// Parser errors

// UnexpectedToken reports a failed grammar expectation. When found is an
// identifier close to one of the candidate keywords it suggests the keyword.
func UnexpectedToken(expected, found string, pos ast.Position, length int, candidates []string) CompilerError {
	builder := NewCompilerError(ErrorUnexpectedToken,
		fmt.Sprintf("expected %s, found %s", expected, found), pos).
		WithLength(length)

	word := strings.Trim(found, "'")
	if similar := findSimilarNames(word, candidates); len(similar) > 0 {
		builder.WithReplacement(fmt.Sprintf("did you mean '%s'?", similar[0]), similar[0], pos, len(word))
	}
	return builder.Build()
}

// TrailingInput reports input left over after the last contract
func TrailingInput(found string, pos ast.Position, length int) CompilerError {
	return NewCompilerError(ErrorTrailingInput,
		fmt.Sprintf("unexpected %s after the last contract declaration", found), pos).
		WithLength(length).
		WithHelp("a source unit is one pragma followed by contract, library or interface declarations").
		Build()
}

// InvalidCharacter reports a character the lexer does not recognise
func InvalidCharacter(message string, pos ast.Position, length int) CompilerError {
	return NewCompilerError(ErrorInvalidCharacter, message, pos).
		WithLength(length).
		Build()
}

// InvalidEscape reports an unknown escape sequence in a string literal
func InvalidEscape(pos ast.Position, length int) CompilerError {
	return NewCompilerError(ErrorInvalidEscape, "invalid escape sequence in string literal", pos).
		WithLength(length).
		WithHelp(`supported escapes are \\ \" \' \n \r \t`).
		Build()
}

// Declaration errors

// DuplicateContract reports a second declaration of the same contract name
func DuplicateContract(name string, pos ast.Position, previous ast.Position) CompilerError {
	return NewCompilerError(ErrorDuplicateContract,
		fmt.Sprintf("'%s' is declared more than once", name), pos).
		WithLength(len(name)).
		WithNote(fmt.Sprintf("first declared at %d:%d", previous.Line, previous.Column)).
		Build()
}

// MultipleConstructors reports a contract with more than one constructor
func MultipleConstructors(contractName string, pos ast.Position) CompilerError {
	return NewCompilerError(ErrorMultipleConstructors,
		fmt.Sprintf("contract '%s' has more than one constructor", contractName), pos).
		WithLength(len("constructor")).
		WithSuggestion("merge the constructor bodies into a single constructor").
		Build()
}

// InterfaceConstructor reports a constructor inside an interface
func InterfaceConstructor(interfaceName string, pos ast.Position) CompilerError {
	return NewCompilerError(ErrorInterfaceConstructor,
		fmt.Sprintf("interface '%s' cannot declare a constructor", interfaceName), pos).
		WithLength(len("constructor")).
		Build()
}

// InterfaceFunctionBody reports an interface function with an implementation
func InterfaceFunctionBody(interfaceName, functionName string, pos ast.Position) CompilerError {
	return NewCompilerError(ErrorInterfaceFunctionBody,
		fmt.Sprintf("function '%s' in interface '%s' cannot have a body", functionName, interfaceName), pos).
		WithLength(len(functionName)).
		WithSuggestion("end the declaration with ';' instead of a block").
		Build()
}

// DuplicateStateVariable reports a state variable declared twice in one contract
func DuplicateStateVariable(name string, pos ast.Position, previous ast.Position) CompilerError {
	return NewCompilerError(ErrorDuplicateStateVariable,
		fmt.Sprintf("state variable '%s' is already declared", name), pos).
		WithLength(len(name)).
		WithNote(fmt.Sprintf("previous declaration at %d:%d", previous.Line, previous.Column)).
		Build()
}

// DuplicateDeclaration reports a parameter or local variable whose name is
// already taken in the same scope
func DuplicateDeclaration(name string, pos ast.Position, previous ast.Position) CompilerError {
	return NewCompilerError(ErrorDuplicateDeclaration,
		fmt.Sprintf("identifier '%s' is already declared in this scope", name), pos).
		WithLength(len(name)).
		WithNote(fmt.Sprintf("previous declaration at %d:%d", previous.Line, previous.Column)).
		Build()
}

// Code generation errors

// UnsupportedCallee reports a call whose target is not a plain name
func UnsupportedCallee(callee string, pos ast.Position) CompilerError {
	return NewCompilerError(ErrorUnsupportedCallee,
		fmt.Sprintf("cannot compile a call to '%s'", callee), pos).
		WithLength(len(callee)).
		WithHelp("only calls to a plain name or to a member of an interface handle are compiled").
		Build()
}

// NamedArguments reports a call using {name: value} arguments
func NamedArguments(callee string, pos ast.Position) CompilerError {
	return NewCompilerError(ErrorNamedArguments,
		fmt.Sprintf("named arguments in call to '%s' are not supported", callee), pos).
		WithLength(len(callee)).
		WithSuggestion("pass the arguments positionally").
		Build()
}

// UnsupportedArgument reports an argument the encoder cannot lower
func UnsupportedArgument(arg string, pos ast.Position) CompilerError {
	return NewCompilerError(ErrorUnsupportedArgument,
		fmt.Sprintf("cannot encode argument '%s'", arg), pos).
		WithLength(len(arg)).
		WithNote("arguments must be hex address, decimal number or boolean literals").
		Build()
}

// InvalidNumberLiteral reports a literal that does not fit its encoding
func InvalidNumberLiteral(literal, reason string, pos ast.Position) CompilerError {
	return NewCompilerError(ErrorInvalidNumberLiteral,
		fmt.Sprintf("invalid number literal '%s': %s", literal, reason), pos).
		WithLength(len(literal)).
		Build()
}

// UnsupportedConversion reports a type conversion with the wrong argument shape
func UnsupportedConversion(typeName string, pos ast.Position) CompilerError {
	return NewCompilerError(ErrorUnsupportedConversion,
		fmt.Sprintf("conversion to '%s' takes exactly one positional argument", typeName), pos).
		WithLength(len(typeName)).
		Build()
}

// UnresolvedJump reports a jump whose destination was never placed
func UnresolvedJump(pos ast.Position) CompilerError {
	return NewCompilerError(ErrorUnresolvedJump, "jump target was never placed", pos).
		WithNote("this is a compiler bug").
		Build()
}

// ValueNotStored warns that a definition computes a value without a slot to keep it
func ValueNotStored(name string, pos ast.Position) CompilerError {
	return NewCompilerWarning(WarningValueNotStored,
		fmt.Sprintf("value assigned to '%s' is computed but not stored", name), pos).
		WithLength(len(name)).
		Build()
}

// PragmaVersion warns that the source asks for a language version this compiler does not target
func PragmaVersion(constraint, target string, pos ast.Position) CompilerError {
	return NewCompilerWarning(WarningPragmaVersion,
		fmt.Sprintf("source requires solidity %s, code is generated for %s", constraint, target), pos).
		WithLength(len(constraint)).
		Build()
}

// InvalidPragma warns about a version pragma that is not a version constraint
func InvalidPragma(value, reason string, pos ast.Position) CompilerError {
	return NewCompilerWarning(WarningInvalidPragma,
		fmt.Sprintf("cannot read version pragma '%s': %s", value, reason), pos).
		WithLength(len(value)).
		WithHelp("write a constraint such as ^0.5.6 or >=0.4.22 <0.6.0").
		Build()
}

// findSimilarNames finds names similar to the target using edit distance
func findSimilarNames(target string, candidates []string) []string {
	if target == "" {
		return nil
	}
	var similar []string
	maxDistance := max(1, len(target)/3)

	for _, candidate := range candidates {
		if candidate == target {
			continue
		}
		if levenshteinDistance(target, candidate) <= maxDistance {
			similar = append(similar, candidate)
		}
	}
	return similar
}

// levenshteinDistance calculates the edit distance between two strings
func levenshteinDistance(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	matrix := make([][]int, len(a)+1)
	for i := range matrix {
		matrix[i] = make([]int, len(b)+1)
		matrix[i][0] = i
	}
	for j := 0; j <= len(b); j++ {
		matrix[0][j] = j
	}

	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			matrix[i][j] = min(
				matrix[i-1][j]+1,
				matrix[i][j-1]+1,
				matrix[i-1][j-1]+cost,
			)
		}
	}
	return matrix[len(a)][len(b)]
}
