package parser

import "solidus/internal/ast"

// ParseSource parses a whole compilation unit. At most one ParseError is
// returned: the failure that got furthest into the input.
func ParseSource(path string, source string) (*ast.Root, []ParseError, []ScanError) {
	scanner := NewScanner(source)
	scanner.filename = path
	tokens := scanner.ScanTokens()

	parser := NewParser(path, source, tokens)
	root, err := parser.ParseRoot()
	if err != nil {
		return nil, []ParseError{*parser.report(err)}, scanner.errors
	}

	return root, nil, scanner.errors
}

// ParseExpression parses a single expression and returns the unconsumed rest of source.
func ParseExpression(source string) (ast.Expr, string, error) {
	return parseFragment(source, (*Parser).parseExpression)
}

// ParseTypeName parses a single type name and returns the unconsumed rest of source.
// A built-in type name glued to further identifier characters stops at the
// type name: "uint8x" gives uint8 with "x" left over.
func ParseTypeName(source string) (ast.TypeName, string, error) {
	p := NewParser("", source, NewScanner(source).ScanTokens())
	if elem, end, ok := p.elementaryPrefix(); ok {
		return elem, source[end:], nil
	}
	return parseFragment(source, (*Parser).parseTypeName)
}

// ParseStatement parses a single statement and returns the unconsumed rest of source.
func ParseStatement(source string) (ast.Stmt, string, error) {
	return parseFragment(source, (*Parser).parseStatement)
}

// ParseParameterList parses "(...)" and returns the unconsumed rest of source.
func ParseParameterList(source string) ([]*ast.Parameter, string, error) {
	return parseFragment(source, (*Parser).parseParameterList)
}

// ParseContractPart parses one constructor, function or state variable.
func ParseContractPart(source string) (ast.ContractPart, string, error) {
	return parseFragment(source, (*Parser).parseContractPart)
}

func parseFragment[T any](source string, parse func(*Parser) (T, error)) (T, string, error) {
	tokens := NewScanner(source).ScanTokens()
	p := NewParser("", source, tokens)

	value, err := parse(p)
	if err != nil {
		var zero T
		return zero, source, p.report(err)
	}
	if p.current == 0 {
		return value, source, nil
	}

	return value, source[p.previous().End():], nil
}

// report prefers the furthest failure seen during backtracking.
func (p *Parser) report(err error) *ParseError {
	if p.furthest != nil {
		return p.furthest
	}
	if perr, ok := err.(*ParseError); ok {
		return perr
	}
	return &ParseError{Expected: "valid input", Found: err.Error(), Position: p.peek().Position}
}
