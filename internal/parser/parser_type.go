package parser

import (
	"solidus/internal/ast"
	"solidus/internal/builtins"
)

// parseTypeName tries elementary names before user-defined paths, so
// "uint8" can never resolve to a user type of that name. Array suffixes
// bind left to right: "uint[2][]" is a dynamic array of uint[2].
func (p *Parser) parseTypeName() (ast.TypeName, error) {
	var base ast.TypeName

	switch {
	case p.checkKeyword("mapping"):
		mapping, err := p.parseMapping()
		if err != nil {
			return nil, err
		}
		base = mapping
	default:
		if elem, ok := p.parseElementaryTypeName(); ok {
			base = elem
			break
		}
		if elem, _, ok := p.elementaryPrefix(); ok {
			return nil, p.failAfter(elem, "whitespace or delimiter after '"+elem.String()+"'")
		}
		user, err := p.parseUserDefinedTypeName()
		if err != nil {
			return nil, err
		}
		base = user
	}

	for p.checkDelimiter("[") {
		start := p.mark()
		p.advance()

		arr := &ast.ArrayTypeName{Pos: base.NodePos(), Elem: base}
		if !p.checkDelimiter("]") {
			length, err := p.parseExpression()
			if err != nil {
				p.reset(start)
				break
			}
			arr.Length = length
		}
		if !p.matchDelimiter("]") {
			p.fail("']'")
			p.reset(start)
			break
		}
		arr.EndPos = p.endPos()
		base = arr
	}

	return base, nil
}

// parseElementaryTypeName consumes nothing when the current word is not a
// built-in type.
func (p *Parser) parseElementaryTypeName() (*ast.ElementaryTypeName, bool) {
	tok := p.peek()
	if tok.Type != IDENTIFIER {
		return nil, false
	}
	kind, width, ok := builtins.LookupElementary(tok.Lexeme)
	if !ok {
		return nil, false
	}
	p.advance()

	elem := &ast.ElementaryTypeName{
		Pos:    p.makePos(tok),
		EndPos: p.makeEndPos(tok),
		Kind:   kind,
		Width:  width,
	}
	if kind == ast.KindAddress && p.matchKeyword("payable") {
		elem.Payable = true
		elem.EndPos = p.endPos()
	}

	return elem, true
}

// elementaryPrefix matches a built-in type name glued to further identifier
// characters, as in "uint8x". The token is left unconsumed; end is the
// source offset where the type name stops.
func (p *Parser) elementaryPrefix() (*ast.ElementaryTypeName, int, bool) {
	tok := p.peek()
	if tok.Type != IDENTIFIER {
		return nil, 0, false
	}
	n := builtins.ElementaryPrefix(tok.Lexeme)
	if n == 0 {
		return nil, 0, false
	}
	kind, width, _ := builtins.LookupElementary(tok.Lexeme[:n])

	end := p.makePos(tok)
	end.Offset += n
	end.Column += n

	return &ast.ElementaryTypeName{
		Pos:    p.makePos(tok),
		EndPos: end,
		Kind:   kind,
		Width:  width,
	}, end.Offset, true
}

// Example: "Lib.Point"
func (p *Parser) parseUserDefinedTypeName() (*ast.UserDefinedTypeName, error) {
	first, err := p.consumeIdent("type name")
	if err != nil {
		return nil, err
	}

	user := &ast.UserDefinedTypeName{Pos: first.Pos, Path: []ast.Ident{first}}
	for p.checkDelimiter(".") && p.tokens[p.current+1].Type == IDENTIFIER {
		p.advance()
		user.Path = append(user.Path, p.makeIdent(p.advance()))
	}
	user.EndPos = p.endPos()

	return user, nil
}

// Example: "mapping(address => uint256)"
func (p *Parser) parseMapping() (*ast.MappingTypeName, error) {
	start := p.advance()

	if _, err := p.consumeDelimiter("("); err != nil {
		return nil, err
	}
	key, ok := p.parseElementaryTypeName()
	if !ok {
		return nil, p.fail("elementary mapping key type")
	}
	if _, err := p.consumeDelimiter("=>"); err != nil {
		return nil, err
	}
	value, err := p.parseTypeName()
	if err != nil {
		return nil, err
	}
	if _, err := p.consumeDelimiter(")"); err != nil {
		return nil, err
	}

	return &ast.MappingTypeName{
		Pos:    p.makePos(start),
		EndPos: p.endPos(),
		Key:    key,
		Value:  value,
	}, nil
}
