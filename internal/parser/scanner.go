package parser

import (
	"fmt"

	"github.com/alecthomas/participle/v2/lexer"
	"solidus/grammar"
	"solidus/token"
)

type Token struct {
	Type     TokenType
	Lexeme   string
	Position Position
}

// End is the byte offset just past the token.
func (t Token) End() int {
	return t.Position.Offset + len(t.Lexeme)
}

type Scanner struct {
	filename string
	source   string
	tokens   []Token
	errors   []ScanError
}

type ScanError struct {
	Message  string
	Position Position // line, column, offset
	Length   int      // optional: how many characters it covers
}

var symbolNames = func() map[lexer.TokenType]string {
	names := make(map[lexer.TokenType]string)
	for name, tt := range grammar.SolidityLexer.Symbols() {
		names[tt] = name
	}
	return names
}()

func NewScanner(source string) *Scanner {
	return &Scanner{source: source}
}

// ScanTokens runs the rule-table lexer and classifies each run into an atom.
// Whitespace and comments are dropped. The result always ends with EOF.
func (s *Scanner) ScanTokens() []Token {
	lex, err := grammar.SolidityLexer.LexString(s.filename, s.source)
	if err != nil {
		s.fail(err)
		return s.finish(Position{Line: 1, Column: 1})
	}

	for {
		raw, err := lex.Next()
		if err != nil {
			s.fail(err)
			return s.finish(s.endPosition())
		}
		pos := Position{Line: raw.Pos.Line, Column: raw.Pos.Column, Offset: raw.Pos.Offset}
		if raw.EOF() {
			return s.finish(pos)
		}
		s.classify(raw, pos)
	}
}

func (s *Scanner) classify(raw lexer.Token, pos Position) {
	switch symbolNames[raw.Type] {
	case "Whitespace", "Comment", "BlockComment":
		// Ignore
	case "Ident":
		s.addToken(wordType(raw.Value), raw.Value, pos)
	case "Hex":
		s.addToken(HEX_NUMBER, raw.Value, pos)
	case "Decimal":
		s.addToken(NUMBER, raw.Value, pos)
	case "String":
		s.addToken(STRING, raw.Value, pos)
	case "Operator", "Punctuation":
		s.addToken(DELIMITER, raw.Value, pos)
	default:
		s.errors = append(s.errors, ScanError{
			Message:  fmt.Sprintf("unexpected character '%s'", raw.Value),
			Position: pos,
			Length:   len(raw.Value),
		})
		s.addToken(ILLEGAL, raw.Value, pos)
	}
}

func wordType(word string) TokenType {
	switch token.Classify(word) {
	case token.KEYWORD:
		return KEYWORD
	case token.RESERVED:
		return RESERVED
	default:
		return IDENTIFIER
	}
}

func (s *Scanner) addToken(tt TokenType, lexeme string, pos Position) {
	s.tokens = append(s.tokens, Token{Type: tt, Lexeme: lexeme, Position: pos})
}

func (s *Scanner) finish(pos Position) []Token {
	s.tokens = append(s.tokens, Token{Type: EOF, Position: pos})
	return s.tokens
}

func (s *Scanner) fail(err error) {
	pos := s.endPosition()
	if lerr, ok := err.(*lexer.Error); ok {
		pos = Position{Line: lerr.Pos.Line, Column: lerr.Pos.Column, Offset: lerr.Pos.Offset}
	}
	s.errors = append(s.errors, ScanError{Message: err.Error(), Position: pos})
}

func (s *Scanner) endPosition() Position {
	if len(s.tokens) == 0 {
		return Position{Line: 1, Column: 1}
	}
	last := s.tokens[len(s.tokens)-1]
	return Position{Line: last.Position.Line, Column: last.Position.Column + len(last.Lexeme), Offset: last.End()}
}

func (s *Scanner) Errors() []ScanError {
	return s.errors
}
