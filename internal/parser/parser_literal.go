package parser

import (
	"strings"

	"solidus/internal/ast"
)

var numberUnits = map[string]ast.NumberUnit{
	"wei":     ast.UnitWei,
	"szabo":   ast.UnitSzabo,
	"finney":  ast.UnitFinney,
	"ether":   ast.UnitEther,
	"seconds": ast.UnitSeconds,
	"minutes": ast.UnitMinutes,
	"hours":   ast.UnitHours,
	"days":    ast.UnitDays,
	"weeks":   ast.UnitWeeks,
	"years":   ast.UnitYears,
}

// parseLiteral reports ok=false without consuming when the current token
// does not start a literal.
func (p *Parser) parseLiteral() (ast.Literal, bool, error) {
	tok := p.peek()

	switch {
	case p.checkKeyword("true"), p.checkKeyword("false"):
		p.advance()
		return &ast.BoolLiteral{
			Pos:    p.makePos(tok),
			EndPos: p.makeEndPos(tok),
			Value:  tok.Lexeme == "true",
		}, true, nil

	case p.check(NUMBER), p.check(HEX_NUMBER):
		p.advance()
		lit := &ast.NumberLiteral{
			Pos:    p.makePos(tok),
			Base:   ast.Decimal,
			Digits: tok.Lexeme,
		}
		if tok.Type == HEX_NUMBER {
			lit.Base = ast.Hex
			lit.Digits = tok.Lexeme[2:]
		}
		if unit, ok := numberUnits[p.peek().Lexeme]; ok && p.check(KEYWORD) {
			p.advance()
			lit.Unit = unit
		}
		lit.EndPos = p.endPos()
		return lit, true, nil

	case p.check(STRING):
		value, ok := unquote(tok.Lexeme)
		if !ok {
			return nil, true, p.fail(ExpectedEscape)
		}
		p.advance()
		return &ast.StringLiteral{
			Pos:    p.makePos(tok),
			EndPos: p.makeEndPos(tok),
			Value:  value,
		}, true, nil
	}

	return nil, false, nil
}

// unquote strips the surrounding quotes and resolves \\ \" \' \n \r \t.
func unquote(lexeme string) (string, bool) {
	if len(lexeme) < 2 {
		return "", false
	}
	body := lexeme[1 : len(lexeme)-1]
	if !strings.Contains(body, `\`) {
		return body, true
	}

	var b strings.Builder
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c != '\\' {
			b.WriteByte(c)
			continue
		}
		i++
		if i >= len(body) {
			return "", false
		}
		switch body[i] {
		case '\\':
			b.WriteByte('\\')
		case '"':
			b.WriteByte('"')
		case '\'':
			b.WriteByte('\'')
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		default:
			return "", false
		}
	}

	return b.String(), true
}
