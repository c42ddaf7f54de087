package parser

import (
	"fmt"
	"strings"

	"solidus/internal/ast"
)

func (p *Parser) advance() Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) check(tt TokenType) bool {
	return p.peek().Type == tt
}

// checkDelimiter reports whether the current token is the given punctuation.
func (p *Parser) checkDelimiter(lexeme string) bool {
	tok := p.peek()
	return tok.Type == DELIMITER && tok.Lexeme == lexeme
}

func (p *Parser) checkKeyword(word string) bool {
	tok := p.peek()
	return tok.Type == KEYWORD && tok.Lexeme == word
}

func (p *Parser) matchDelimiter(lexeme string) bool {
	if p.checkDelimiter(lexeme) {
		p.advance()
		return true
	}
	return false
}

func (p *Parser) matchKeyword(words ...string) bool {
	for _, w := range words {
		if p.checkKeyword(w) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) consumeDelimiter(lexeme string) (Token, error) {
	if p.checkDelimiter(lexeme) {
		return p.advance(), nil
	}
	return Token{}, p.fail("'" + lexeme + "'")
}

func (p *Parser) consumeKeyword(word string) (Token, error) {
	if p.checkKeyword(word) {
		return p.advance(), nil
	}
	return Token{}, p.fail("'" + word + "'")
}

func (p *Parser) peek() Token {
	return p.tokens[p.current]
}

func (p *Parser) previous() Token {
	return p.tokens[p.current-1]
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Type == EOF
}

// mark and reset implement backtracking: an alternative that fails is
// rewound so the next one starts from the same token.
func (p *Parser) mark() int {
	return p.current
}

func (p *Parser) reset(m int) {
	p.current = m
}

// fail builds an error at the current token and keeps the one that got
// furthest into the input, merging expectations that failed at the same spot.
func (p *Parser) fail(expected string) error {
	tok := p.peek()
	return p.record(&ParseError{
		Expected: expected,
		Found:    describe(tok),
		Position: tok.Position,
		Length:   len(tok.Lexeme),
	})
}

// failAfter reports the rest of the current token, past a type name that
// was matched on its prefix.
func (p *Parser) failAfter(elem *ast.ElementaryTypeName, expected string) error {
	tok := p.peek()
	rest := tok.Lexeme[elem.EndPos.Offset-tok.Position.Offset:]
	return p.record(&ParseError{
		Expected: expected,
		Found:    fmt.Sprintf("'%s'", rest),
		Position: Position{Line: elem.EndPos.Line, Column: elem.EndPos.Column, Offset: elem.EndPos.Offset},
		Length:   len(rest),
	})
}

func (p *Parser) record(err *ParseError) error {
	switch {
	case p.furthest == nil || err.Position.Offset > p.furthest.Position.Offset:
		p.furthest = err
	case err.Position.Offset == p.furthest.Position.Offset && !containsExpectation(p.furthest.Expected, err.Expected):
		p.furthest.Expected += " or " + err.Expected
	}

	return err
}

func containsExpectation(list, expected string) bool {
	for _, e := range strings.Split(list, " or ") {
		if e == expected {
			return true
		}
	}
	return false
}

func describe(tok Token) string {
	if tok.Type == EOF {
		return "end of input"
	}
	return fmt.Sprintf("'%s'", tok.Lexeme)
}

func (p *Parser) makePos(tok Token) ast.Position {
	return ast.Position{
		Filename: p.filename,
		Offset:   tok.Position.Offset,
		Line:     tok.Position.Line,
		Column:   tok.Position.Column,
	}
}

func (p *Parser) makeEndPos(tok Token) ast.Position {
	return ast.Position{
		Filename: p.filename,
		Offset:   tok.End(),
		Line:     tok.Position.Line,
		Column:   tok.Position.Column + len(tok.Lexeme),
	}
}

// endPos is the end of the most recently consumed token.
func (p *Parser) endPos() ast.Position {
	return p.makeEndPos(p.previous())
}

// makeIdent creates an ast.Ident from a token
func (p *Parser) makeIdent(tok Token) ast.Ident {
	return ast.Ident{
		Pos:    p.makePos(tok),
		EndPos: p.makeEndPos(tok),
		Value:  tok.Lexeme,
	}
}

// consumeIdent consumes an identifier token and returns an ast.Ident
func (p *Parser) consumeIdent(expected string) (ast.Ident, error) {
	if !p.check(IDENTIFIER) {
		return ast.Ident{}, p.fail(expected)
	}
	return p.makeIdent(p.advance()), nil
}
