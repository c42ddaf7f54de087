package grammar

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// SolidityLexer splits source text into raw runs. Classification into
// keywords, reserved words and identifiers happens in the scanner.
var SolidityLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		// Comments
		{"BlockComment", `/\*([^*]|\*+[^*/])*\*+/`, nil},
		{"Comment", `//[^\n]*`, nil},

		// String literals, escapes are decoded by the parser
		{"String", `"(\\.|[^"\\\n])*"|'(\\.|[^'\\\n])*'`, nil},

		// Numbers (hex before decimal)
		{"Hex", `0[xX][0-9a-fA-F]+`, nil},
		{"Decimal", `[0-9]+`, nil},

		// Keywords and Identifiers
		{"Ident", `[a-zA-Z_$][a-zA-Z0-9_$]*`, nil},

		// Operators
		{"Operator", `(<<=|>>=|=>|==|!=|<=|>=|&&|\|\||\+\+|--|\*\*|<<|>>|\+=|-=|\*=|/=|%=|\|=|&=|\^=|:=)`, nil},

		// Punctuation (must come after operators)
		{"Punctuation", `[{}()\[\].,;:?=+\-*/%<>!~&|^]`, nil},

		// Whitespace
		{"Whitespace", `[ \t\r\n]+`, nil},

		// Anything else is handed to the parser, which rejects it with a position
		{"Other", `.`, nil},
	},
})

// VersionLexer tokenizes pragma version constraints.
var VersionLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Or", Pattern: `\|\|`},
	{Name: "Op", Pattern: `>=|<=|[\^~><=]`},
	{Name: "Number", Pattern: `[0-9]+`},
	{Name: "Dot", Pattern: `\.`},
	{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
})
