package parser

type TokenType int

const (
	// Special tokens
	ILLEGAL TokenType = iota
	EOF

	// Words
	IDENTIFIER
	KEYWORD
	RESERVED

	// Literals
	NUMBER
	HEX_NUMBER
	STRING

	// Operators and punctuation
	DELIMITER
)

var tokenTypeNames = [...]string{
	ILLEGAL:    "ILLEGAL",
	EOF:        "EOF",
	IDENTIFIER: "IDENTIFIER",
	KEYWORD:    "KEYWORD",
	RESERVED:   "RESERVED",
	NUMBER:     "NUMBER",
	HEX_NUMBER: "HEX_NUMBER",
	STRING:     "STRING",
	DELIMITER:  "DELIMITER",
}

func (t TokenType) String() string {
	if t < 0 || int(t) >= len(tokenTypeNames) {
		return "TokenType(?)"
	}
	return tokenTypeNames[t]
}

type Position struct {
	Line   int
	Column int
	Offset int
}
