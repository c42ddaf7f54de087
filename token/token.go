// Package token SPDX-License-Identifier: Apache-2.0
package token

// Kind classifies a lexical run.
type Kind string

const (
	RESERVED   Kind = "RESERVED"
	KEYWORD    Kind = "KEYWORD"
	IDENT      Kind = "IDENT"
	ANYTHING   Kind = "ANYTHING"
	DELIMITER  Kind = "DELIMITER"
	UNKNOWN    Kind = "UNKNOWN"
	END_OF_RUN Kind = "EOF"
)

// Atom is an immutable classification of one token span.
type Atom struct {
	Kind Kind
	Text string
}

func (a Atom) String() string {
	return a.Text
}

// Words the language sets aside for future use. They can never be identifiers.
var reserved = map[string]struct{}{
	"abstract": {}, "after": {}, "alias": {}, "apply": {}, "auto": {}, "case": {},
	"catch": {}, "copyof": {}, "default": {}, "define": {}, "final": {}, "immutable": {},
	"implements": {}, "in": {}, "inline": {}, "let": {}, "macro": {}, "match": {},
	"mutable": {}, "null": {}, "of": {}, "override": {}, "partial": {}, "promise": {},
	"reference": {}, "relocatable": {}, "sealed": {}, "sizeof": {}, "static": {},
	"supports": {}, "switch": {}, "try": {}, "typedef": {}, "typeof": {}, "unchecked": {},
}

var keywords = map[string]struct{}{
	// declarations
	"pragma": {}, "contract": {}, "library": {}, "interface": {}, "constructor": {},
	"function": {}, "returns": {}, "mapping": {}, "modifier": {}, "event": {},
	"struct": {}, "enum": {}, "using": {}, "for": {},
	// visibility and mutability
	"public": {}, "private": {}, "internal": {}, "external": {},
	"pure": {}, "view": {}, "payable": {}, "constant": {},
	// storage locations
	"memory": {}, "storage": {}, "calldata": {},
	// literals and units
	"true": {}, "false": {},
	"wei": {}, "szabo": {}, "finney": {}, "ether": {},
	"seconds": {}, "minutes": {}, "hours": {}, "days": {}, "weeks": {}, "years": {},
	// statements
	"if": {}, "else": {}, "while": {}, "do": {}, "return": {}, "break": {},
	"continue": {}, "emit": {}, "new": {}, "delete": {}, "assembly": {},
}

// Multi-character operators first so the scanner can match greedily.
var delimiters = []string{
	"<<=", ">>=",
	"=>", "==", "!=", "<=", ">=", "&&", "||", "++", "--", "**", "<<", ">>",
	"+=", "-=", "*=", "/=", "%=", "|=", "&=", "^=", ":=",
	"{", "}", "(", ")", "[", "]", ".", ",", ";", ":", "?",
	"=", "+", "-", "*", "/", "%", "<", ">", "!", "~", "&", "|", "^",
}

var delimiterSet = func() map[string]struct{} {
	m := make(map[string]struct{}, len(delimiters))
	for _, d := range delimiters {
		m[d] = struct{}{}
	}
	return m
}()

// Classify reports whether word is reserved, a keyword or a plain identifier.
func Classify(word string) Kind {
	if _, ok := reserved[word]; ok {
		return RESERVED
	}
	if _, ok := keywords[word]; ok {
		return KEYWORD
	}
	return IDENT
}

func IsKeyword(word string) bool {
	_, ok := keywords[word]
	return ok
}

func IsReserved(word string) bool {
	_, ok := reserved[word]
	return ok
}

func IsDelimiter(text string) bool {
	_, ok := delimiterSet[text]
	return ok
}

// Keywords returns every keyword, used for completion.
func Keywords() []string {
	out := make([]string, 0, len(keywords))
	for k := range keywords {
		out = append(out, k)
	}
	return out
}
