package codegen

// Config selects between the historical encoding and conformant variants.
// The zero value follows the historical output, except that decimal
// arguments above 0xff widen their push to the narrowest that holds them.
type Config struct {
	// PadArguments pushes decimal arguments as full 32-byte words.
	PadArguments bool

	// DrainExpressionStatements pops whatever an expression statement
	// leaves on the stack.
	DrainExpressionStatements bool

	// CanonicalBoolSignature contributes plain "bool" to a call signature
	// instead of the type followed by the literal value.
	CanonicalBoolSignature bool
}
