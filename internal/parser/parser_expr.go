package parser

import (
	"solidus/internal/ast"
)

var assignmentOperators = map[string]bool{
	"=": true, "+=": true, "-=": true, "*=": true, "/=": true, "%=": true,
	"|=": true, "&=": true, "^=": true, "<<=": true, ">>=": true,
}

// parseExpression parses an assignment or a postfix chain. Assignment is
// right-associative: "a = b = c" is a = (b = c).
func (p *Parser) parseExpression() (ast.Expr, error) {
	left, err := p.parsePostfixExpr()
	if err != nil {
		return nil, err
	}

	tok := p.peek()
	if tok.Type != DELIMITER || !assignmentOperators[tok.Lexeme] {
		return left, nil
	}
	p.advance()

	right, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	return &ast.AssignmentExpr{
		Pos:      left.NodePos(),
		EndPos:   right.NodeEndPos(),
		Left:     left,
		Operator: tok.Lexeme,
		Right:    right,
	}, nil
}

// parsePostfixExpr folds member accesses and calls onto the operand from
// the left, so "a.b.c" is ((a.b).c) and "A(x).f(y)" is (A(x)).(f(y)).
func (p *Parser) parsePostfixExpr() (ast.Expr, error) {
	expr, err := p.parseOperand()
	if err != nil {
		return nil, err
	}

	for {
		switch {
		case p.matchDelimiter("."):
			name, err := p.consumeIdent("member name")
			if err != nil {
				return nil, err
			}
			var member ast.Expr = &ast.IdentExpr{Pos: name.Pos, EndPos: name.EndPos, Name: name}
			if p.checkDelimiter("(") {
				args, err := p.parseCallArguments()
				if err != nil {
					return nil, err
				}
				member = &ast.FunctionCallExpr{Pos: name.Pos, EndPos: p.endPos(), Callee: member, Args: args}
			}
			expr = &ast.MemberAccessExpr{
				Pos:    expr.NodePos(),
				EndPos: member.NodeEndPos(),
				Base:   expr,
				Member: member,
			}
		case p.checkDelimiter("("):
			args, err := p.parseCallArguments()
			if err != nil {
				return nil, err
			}
			expr = &ast.FunctionCallExpr{
				Pos:    expr.NodePos(),
				EndPos: p.endPos(),
				Callee: expr,
				Args:   args,
			}
		default:
			return expr, nil
		}
	}
}

func (p *Parser) parseOperand() (ast.Expr, error) {
	if !p.matchDelimiter("(") {
		return p.parsePrimaryExpr()
	}

	inner, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consumeDelimiter(")"); err != nil {
		return nil, err
	}

	return inner, nil
}

// parsePrimaryExpr tries a literal, then a type name used as a value, then
// a plain identifier.
func (p *Parser) parsePrimaryExpr() (ast.Expr, error) {
	if lit, ok, err := p.parseLiteral(); ok || err != nil {
		return lit, err
	}

	if elem, ok := p.parseElementaryTypeName(); ok {
		return &ast.ElementaryTypeExpr{Pos: elem.Pos, EndPos: elem.EndPos, Type: elem}, nil
	}

	if p.check(IDENTIFIER) {
		name := p.makeIdent(p.advance())
		return &ast.IdentExpr{Pos: name.Pos, EndPos: name.EndPos, Name: name}, nil
	}

	return nil, p.fail("expression")
}

// parseCallArguments parses "(a, b)" or "({name: a, other: b})". An empty
// call yields an empty ExpressionList, never nil.
func (p *Parser) parseCallArguments() (ast.CallArguments, error) {
	open, err := p.consumeDelimiter("(")
	if err != nil {
		return nil, err
	}

	if p.checkDelimiter("{") {
		list, err := p.parseNameValueList()
		if err != nil {
			return nil, err
		}
		if _, err := p.consumeDelimiter(")"); err != nil {
			return nil, err
		}
		return list, nil
	}

	list := &ast.ExpressionList{Pos: p.makePos(open), Exprs: []ast.Expr{}}
	if !p.checkDelimiter(")") {
		for {
			arg, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			list.Exprs = append(list.Exprs, arg)

			if !p.matchDelimiter(",") {
				break
			}
		}
	}
	if _, err := p.consumeDelimiter(")"); err != nil {
		return nil, err
	}
	list.EndPos = p.endPos()

	return list, nil
}

// Example: "{a: 1, b: true}"
func (p *Parser) parseNameValueList() (*ast.NameValueList, error) {
	open := p.advance()

	list := &ast.NameValueList{Pos: p.makePos(open)}
	for !p.checkDelimiter("}") {
		name, err := p.consumeIdent("argument name")
		if err != nil {
			return nil, err
		}
		if _, err := p.consumeDelimiter(":"); err != nil {
			return nil, err
		}
		value, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		list.Entries = append(list.Entries, &ast.NameValue{
			Pos:    name.Pos,
			EndPos: value.NodeEndPos(),
			Name:   name,
			Value:  value,
		})

		if !p.matchDelimiter(",") {
			break
		}
	}
	if _, err := p.consumeDelimiter("}"); err != nil {
		return nil, err
	}
	list.EndPos = p.endPos()

	return list, nil
}
