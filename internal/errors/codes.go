package errors

// Error codes for the solidus compiler, shared by the CLI, the language
// server and the compiler package.
//
// Error code ranges:
// E0100-E0199: Parser errors
// E0200-E0299: Declaration checks run before code generation
// E0400-E0499: Code generation errors
// W0001-W0099: Warnings

const (
	// Parser errors (E0100-E0199)

	// E0100: No grammar alternative matched
	ErrorUnexpectedToken = "E0100"

	// E0101: Input remains after the last contract
	ErrorTrailingInput = "E0101"

	// E0102: Character outside the language's alphabet
	ErrorInvalidCharacter = "E0102"

	// E0103: Unknown escape sequence in a string literal
	ErrorInvalidEscape = "E0103"

	// Declaration checks (E0200-E0299)

	// E0200: Two contracts, libraries or interfaces share a name
	ErrorDuplicateContract = "E0200"

	// E0201: More than one constructor in a contract
	ErrorMultipleConstructors = "E0201"

	// E0202: Interfaces cannot be constructed
	ErrorInterfaceConstructor = "E0202"

	// E0203: Interface functions are declarations only
	ErrorInterfaceFunctionBody = "E0203"

	// E0204: Two state variables share a name
	ErrorDuplicateStateVariable = "E0204"

	// E0205: Two parameters or local variables in one scope share a name
	ErrorDuplicateDeclaration = "E0205"

	// Code generation errors (E0400-E0499)

	// E0400: Call target is not a plain name
	ErrorUnsupportedCallee = "E0400"

	// E0401: Named call arguments cannot be encoded
	ErrorNamedArguments = "E0401"

	// E0402: Argument is not a literal the encoder understands
	ErrorUnsupportedArgument = "E0402"

	// E0403: Numeric literal does not fit its encoding
	ErrorInvalidNumberLiteral = "E0403"

	// E0404: Type conversion with the wrong shape
	ErrorUnsupportedConversion = "E0404"

	// E0405: Jump target never placed
	ErrorUnresolvedJump = "E0405"

	// Warnings

	// W0001: Value computed but never stored
	WarningValueNotStored = "W0001"

	// W0002: Version pragma excludes the targeted language version
	WarningPragmaVersion = "W0002"

	// W0003: Version pragma is not a valid constraint
	WarningInvalidPragma = "W0003"
)

// GetErrorDescription returns a human-readable description of the error code
func GetErrorDescription(code string) string {
	switch code {
	case ErrorUnexpectedToken:
		return "The parser found a token no grammar rule accepts here"
	case ErrorTrailingInput:
		return "Input remains after the last contract declaration"
	case ErrorInvalidCharacter:
		return "Character is not part of the language"
	case ErrorInvalidEscape:
		return "String literal contains an unknown escape sequence"
	case ErrorDuplicateContract:
		return "Contract, library or interface name declared twice"
	case ErrorMultipleConstructors:
		return "A contract has at most one constructor"
	case ErrorInterfaceConstructor:
		return "Interfaces cannot declare constructors"
	case ErrorInterfaceFunctionBody:
		return "Interface functions cannot have bodies"
	case ErrorDuplicateStateVariable:
		return "State variable declared twice in one contract"
	case ErrorDuplicateDeclaration:
		return "Parameter or local variable declared twice in one scope"
	case ErrorUnsupportedCallee:
		return "Only calls to plain names can be compiled"
	case ErrorNamedArguments:
		return "Named call arguments are parsed but cannot be compiled"
	case ErrorUnsupportedArgument:
		return "Call arguments must be address, number or boolean literals"
	case ErrorInvalidNumberLiteral:
		return "Numeric literal does not fit its encoding"
	case ErrorUnsupportedConversion:
		return "Type conversions take exactly one positional argument"
	case ErrorUnresolvedJump:
		return "Internal error: a jump target was never placed"
	case WarningValueNotStored:
		return "Value is computed but never stored"
	case WarningPragmaVersion:
		return "Version pragma does not admit the targeted language version"
	case WarningInvalidPragma:
		return "Version pragma could not be parsed"
	default:
		return "Unknown error code"
	}
}

// IsWarning returns true if the error code represents a warning rather than an error
func IsWarning(code string) bool {
	return code != "" && code[0] == 'W'
}

// GetErrorCategory returns the category of the error based on its code
func GetErrorCategory(code string) string {
	switch {
	case IsWarning(code):
		return "Warning"
	case code >= "E0100" && code < "E0200":
		return "Parser"
	case code >= "E0200" && code < "E0300":
		return "Declaration"
	case code >= "E0400" && code < "E0500":
		return "Code Generation"
	default:
		return "Unknown"
	}
}
