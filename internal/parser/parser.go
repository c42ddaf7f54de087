package parser

import (
	"strings"

	"solidus/internal/ast"
)

type Parser struct {
	filename string
	source   string
	tokens   []Token
	current  int
	furthest *ParseError
}

func NewParser(filename string, source string, tokens []Token) *Parser {
	return &Parser{
		filename: filename,
		source:   source,
		tokens:   tokens,
	}
}

// ParseRoot parses a pragma followed by contract declarations and requires
// the whole input to be consumed.
func (p *Parser) ParseRoot() (*ast.Root, error) {
	start := p.peek()

	pragma, err := p.parsePragma()
	if err != nil {
		return nil, err
	}

	root := &ast.Root{Pos: p.makePos(start), Pragma: pragma}
	for p.checkKeyword("contract") || p.checkKeyword("library") || p.checkKeyword("interface") {
		contract, err := p.parseContract()
		if err != nil {
			return nil, err
		}
		root.Contracts = append(root.Contracts, contract)
	}

	if !p.isAtEnd() {
		return nil, p.fail(ExpectedEndOfInput)
	}
	root.EndPos = p.endPos()

	return root, nil
}

// Example: "pragma solidity ^0.5.6;"
func (p *Parser) parsePragma() (*ast.PragmaDirective, error) {
	start, err := p.consumeKeyword("pragma")
	if err != nil {
		return nil, err
	}

	name, err := p.consumeIdent("pragma name")
	if err != nil {
		return nil, err
	}

	// The value is free text up to the next semicolon.
	for !p.isAtEnd() && !p.checkDelimiter(";") {
		p.advance()
	}
	if p.isAtEnd() {
		return nil, p.fail("';'")
	}
	value := strings.TrimSpace(p.source[name.EndPos.Offset:p.peek().Position.Offset])
	if value == "" {
		return nil, p.fail("pragma value")
	}
	p.advance()

	return &ast.PragmaDirective{
		Pos:    p.makePos(start),
		EndPos: p.endPos(),
		Name:   name,
		Value:  value,
	}, nil
}

// Example: "contract C { constructor() public { } }"
func (p *Parser) parseContract() (*ast.Contract, error) {
	start := p.advance()

	var kind ast.ContractKind
	switch start.Lexeme {
	case "library":
		kind = ast.ContractKindLibrary
	case "interface":
		kind = ast.ContractKindInterface
	default:
		kind = ast.ContractKindContract
	}

	name, err := p.consumeIdent("contract name")
	if err != nil {
		return nil, err
	}
	if _, err := p.consumeDelimiter("{"); err != nil {
		return nil, err
	}

	contract := &ast.Contract{Pos: p.makePos(start), Kind: kind, Name: name}
	for !p.checkDelimiter("}") {
		if p.isAtEnd() {
			return nil, p.fail("'}'")
		}
		part, err := p.parseContractPart()
		if err != nil {
			return nil, err
		}
		contract.Parts = append(contract.Parts, part)
	}
	p.advance()
	contract.EndPos = p.endPos()

	return contract, nil
}

func (p *Parser) parseContractPart() (ast.ContractPart, error) {
	switch {
	case p.checkKeyword("constructor"):
		return p.parseConstructor()
	case p.checkKeyword("function"):
		return p.parseFunctionDefinition()
	default:
		return p.parseStateVariableDeclaration()
	}
}
