package parser

import (
	"solidus/internal/ast"
)

var visibilities = map[string]ast.Visibility{
	"public":   ast.VisibilityPublic,
	"private":  ast.VisibilityPrivate,
	"internal": ast.VisibilityInternal,
	"external": ast.VisibilityExternal,
}

var mutabilities = map[string]ast.StateMutability{
	"pure":     ast.MutabilityPure,
	"view":     ast.MutabilityView,
	"payable":  ast.MutabilityPayable,
	"constant": ast.MutabilityConstant,
}

var storageLocations = map[string]ast.StorageLocation{
	"memory":   ast.StorageMemory,
	"storage":  ast.StorageStorage,
	"calldata": ast.StorageCalldata,
}

// Example: "constructor(uint256 supply) public payable { ... }"
func (p *Parser) parseConstructor() (*ast.Constructor, error) {
	start := p.advance()

	params, err := p.parseParameterList()
	if err != nil {
		return nil, err
	}

	ctor := &ast.Constructor{Pos: p.makePos(start), Params: params}
	for {
		if vis, ok := visibilities[p.peek().Lexeme]; ok && p.check(KEYWORD) {
			if ctor.Visibility != ast.VisibilityNone {
				return nil, p.fail("constructor body")
			}
			p.advance()
			ctor.Visibility = vis
			continue
		}
		if p.checkKeyword("payable") {
			if ctor.Payable {
				return nil, p.fail("constructor body")
			}
			p.advance()
			ctor.Payable = true
			continue
		}
		break
	}

	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	ctor.Body = body.Stmts
	ctor.EndPos = body.EndPos

	return ctor, nil
}

// Example: "function transfer(address to, uint256 value) external returns (bool);"
func (p *Parser) parseFunctionDefinition() (*ast.FunctionDefinition, error) {
	start := p.advance()

	fn := &ast.FunctionDefinition{Pos: p.makePos(start)}
	if p.check(IDENTIFIER) {
		name := p.makeIdent(p.advance())
		fn.Name = &name
	}

	params, err := p.parseParameterList()
	if err != nil {
		return nil, err
	}
	fn.Params = params

	for {
		tok := p.peek()
		if tok.Type != KEYWORD {
			break
		}
		if vis, ok := visibilities[tok.Lexeme]; ok {
			if fn.Visibility != ast.VisibilityNone {
				return nil, p.fail("function body")
			}
			p.advance()
			fn.Visibility = vis
			continue
		}
		if mut, ok := mutabilities[tok.Lexeme]; ok {
			if fn.Mutability != ast.MutabilityNone {
				return nil, p.fail("function body")
			}
			p.advance()
			fn.Mutability = mut
			continue
		}
		break
	}

	if p.matchKeyword("returns") {
		returns, err := p.parseParameterList()
		if err != nil {
			return nil, err
		}
		fn.Returns = returns
	}

	if p.matchDelimiter(";") {
		fn.EndPos = p.endPos()
		return fn, nil
	}

	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	fn.Body = body
	fn.EndPos = body.EndPos

	return fn, nil
}

// Example: "(address to, uint256 value)", "(address)", "()"
func (p *Parser) parseParameterList() ([]*ast.Parameter, error) {
	if _, err := p.consumeDelimiter("("); err != nil {
		return nil, err
	}

	params := []*ast.Parameter{}
	if p.matchDelimiter(")") {
		return params, nil
	}

	for {
		param, err := p.parseParameter()
		if err != nil {
			return nil, err
		}
		params = append(params, param)

		if !p.matchDelimiter(",") {
			break
		}
	}

	if _, err := p.consumeDelimiter(")"); err != nil {
		return nil, err
	}

	return params, nil
}

// Example: "string memory name"
func (p *Parser) parseParameter() (*ast.Parameter, error) {
	typ, err := p.parseTypeName()
	if err != nil {
		return nil, err
	}

	param := &ast.Parameter{Pos: typ.NodePos(), Type: typ}
	if loc, ok := storageLocations[p.peek().Lexeme]; ok && p.check(KEYWORD) {
		p.advance()
		param.Storage = loc
	}
	if p.check(IDENTIFIER) {
		name := p.makeIdent(p.advance())
		param.Name = &name
	}
	param.EndPos = p.endPos()

	return param, nil
}

// Example: "uint256 public constant supply = 1000;"
func (p *Parser) parseStateVariableDeclaration() (*ast.StateVariableDeclaration, error) {
	typ, err := p.parseTypeName()
	if err != nil {
		return nil, err
	}

	decl := &ast.StateVariableDeclaration{Pos: typ.NodePos(), Type: typ}
	for {
		if vis, ok := visibilities[p.peek().Lexeme]; ok && p.check(KEYWORD) && decl.Visibility == ast.VisibilityNone {
			p.advance()
			decl.Visibility = vis
			continue
		}
		if !decl.Constant && p.matchKeyword("constant") {
			decl.Constant = true
			continue
		}
		break
	}

	if decl.Name, err = p.consumeIdent("state variable name"); err != nil {
		return nil, err
	}
	if _, err := p.consumeDelimiter("="); err != nil {
		return nil, err
	}
	if decl.Value, err = p.parseExpression(); err != nil {
		return nil, err
	}
	if _, err := p.consumeDelimiter(";"); err != nil {
		return nil, err
	}
	decl.EndPos = p.endPos()

	return decl, nil
}
