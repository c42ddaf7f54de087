package parser

import (
	"solidus/internal/ast"
)

// parseStatement tries, in order: a block, a variable definition, a
// variable declaration, and an expression statement. Each failed
// alternative is rewound before the next one runs.
func (p *Parser) parseStatement() (ast.Stmt, error) {
	if p.checkDelimiter("{") {
		return p.parseBlock()
	}

	start := p.mark()
	if def, err := p.parseVariableDefinition(); err == nil {
		return def, nil
	}
	p.reset(start)

	if decl, err := p.parseVariableDeclarationStmt(); err == nil {
		return decl, nil
	}
	p.reset(start)

	return p.parseExprStmt()
}

// Example: "{ a = 1; }"
func (p *Parser) parseBlock() (*ast.BlockStmt, error) {
	open, err := p.consumeDelimiter("{")
	if err != nil {
		return nil, err
	}

	block := &ast.BlockStmt{Pos: p.makePos(open), Stmts: []ast.Stmt{}}
	for !p.checkDelimiter("}") {
		if p.isAtEnd() {
			return nil, p.fail("'}'")
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		block.Stmts = append(block.Stmts, stmt)
	}
	p.advance()
	block.EndPos = p.endPos()

	return block, nil
}

// Example: "address to = address(0x01);", "(uint a, bool b) = f();"
func (p *Parser) parseVariableDefinition() (*ast.VariableDefinitionStmt, error) {
	start := p.peek()
	def := &ast.VariableDefinitionStmt{Pos: p.makePos(start)}

	if p.matchDelimiter("(") {
		def.Tuple = true
		for {
			decl, err := p.parseVariableDeclaration()
			if err != nil {
				return nil, err
			}
			def.Decls = append(def.Decls, decl)
			if !p.matchDelimiter(",") {
				break
			}
		}
		if _, err := p.consumeDelimiter(")"); err != nil {
			return nil, err
		}
	} else {
		decl, err := p.parseVariableDeclaration()
		if err != nil {
			return nil, err
		}
		def.Decls = []*ast.VariableDeclaration{decl}
	}

	if _, err := p.consumeDelimiter("="); err != nil {
		return nil, err
	}
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	def.Value = value
	if _, err := p.consumeDelimiter(";"); err != nil {
		return nil, err
	}
	def.EndPos = p.endPos()

	return def, nil
}

// Example: "uint256 amount;"
func (p *Parser) parseVariableDeclarationStmt() (*ast.VariableDeclarationStmt, error) {
	decl, err := p.parseVariableDeclaration()
	if err != nil {
		return nil, err
	}
	if _, err := p.consumeDelimiter(";"); err != nil {
		return nil, err
	}

	return &ast.VariableDeclarationStmt{Pos: decl.Pos, EndPos: p.endPos(), Decl: decl}, nil
}

// Example: "string memory name"
func (p *Parser) parseVariableDeclaration() (*ast.VariableDeclaration, error) {
	typ, err := p.parseTypeName()
	if err != nil {
		return nil, err
	}

	decl := &ast.VariableDeclaration{Pos: typ.NodePos(), Type: typ}
	if loc, ok := storageLocations[p.peek().Lexeme]; ok && p.check(KEYWORD) {
		p.advance()
		decl.Storage = loc
	}
	if decl.Name, err = p.consumeIdent("variable name"); err != nil {
		return nil, err
	}
	decl.EndPos = p.endPos()

	return decl, nil
}

// Example: "transfer(0x01, 5);"
func (p *Parser) parseExprStmt() (*ast.ExprStmt, error) {
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consumeDelimiter(";"); err != nil {
		return nil, err
	}

	return &ast.ExprStmt{Pos: expr.NodePos(), EndPos: p.endPos(), Expr: expr}, nil
}
