package lsp

import (
	"sort"

	"solidus/internal/ast"
	"solidus/internal/parser"
	"solidus/internal/types"
)

// SemanticToken represents a single LSP semantic token entry
// Line and StartChar are 0-based positions
// TokenType is an index into the semanticTokenTypes array
// TokenModifiers is a bitmask based on semanticTokenModifiers
type SemanticToken struct {
	Line           uint32
	StartChar      uint32
	Length         uint32
	TokenType      int // index into semanticTokenTypes
	TokenModifiers int // bitmask
}

// tokenWalker collects tokens for declared names and references. Names
// registered as contracts or interfaces colour as types wherever they appear.
type tokenWalker struct {
	registry *types.TypeRegistry
	tokens   []SemanticToken
}

func collectSemanticTokens(root *ast.Root, scanned []parser.Token) []SemanticToken {
	if root == nil {
		return nil
	}

	w := &tokenWalker{registry: types.NewTypeRegistryFromRoot(root)}
	for _, contract := range root.Contracts {
		w.walkContract(contract)
	}
	for _, tok := range scanned {
		if tok.Type == parser.KEYWORD {
			w.add(tokenFromScan(tok, "keyword"))
		}
	}

	return sortTokens(w.tokens)
}

// sortTokens orders tokens by position and drops duplicates at the same start
func sortTokens(tokens []SemanticToken) []SemanticToken {
	sort.SliceStable(tokens, func(i, j int) bool {
		if tokens[i].Line != tokens[j].Line {
			return tokens[i].Line < tokens[j].Line
		}
		return tokens[i].StartChar < tokens[j].StartChar
	})

	var result []SemanticToken
	for i, tok := range tokens {
		if i > 0 && tok.Line == tokens[i-1].Line && tok.StartChar == tokens[i-1].StartChar {
			continue
		}
		result = append(result, tok)
	}
	return result
}

func (w *tokenWalker) add(tokens []SemanticToken) {
	w.tokens = append(w.tokens, tokens...)
}

func (w *tokenWalker) walkContract(c *ast.Contract) {
	w.add(makeToken(c.Name.Pos, c.Name.EndPos, c.Name.Value, "type", 1))

	for _, part := range c.Parts {
		switch p := part.(type) {
		case *ast.Constructor:
			w.walkParams(p.Params)
			w.walkStmts(p.Body)
		case *ast.StateVariableDeclaration:
			w.walkTypeName(p.Type)
			w.add(makeToken(p.Name.Pos, p.Name.EndPos, p.Name.Value, "property", 1))
			w.walkExpr(p.Value)
		case *ast.FunctionDefinition:
			if p.Name != nil {
				w.add(makeToken(p.Name.Pos, p.Name.EndPos, p.Name.Value, "function", 1))
			}
			w.walkParams(p.Params)
			w.walkParams(p.Returns)
			if p.Body != nil {
				w.walkStmts(p.Body.Stmts)
			}
		}
	}
}

func (w *tokenWalker) walkParams(params []*ast.Parameter) {
	for _, param := range params {
		w.walkTypeName(param.Type)
		if param.Name != nil {
			w.add(makeToken(param.Name.Pos, param.Name.EndPos, param.Name.Value, "parameter", 1))
		}
	}
}

func (w *tokenWalker) walkStmts(stmts []ast.Stmt) {
	for _, stmt := range stmts {
		w.walkStmt(stmt)
	}
}

func (w *tokenWalker) walkStmt(stmt ast.Stmt) {
	switch s := stmt.(type) {
	case *ast.BlockStmt:
		w.walkStmts(s.Stmts)
	case *ast.ExprStmt:
		w.walkExpr(s.Expr)
	case *ast.VariableDeclarationStmt:
		w.walkDecl(s.Decl)
	case *ast.VariableDefinitionStmt:
		for _, decl := range s.Decls {
			w.walkDecl(decl)
		}
		w.walkExpr(s.Value)
	}
}

func (w *tokenWalker) walkDecl(decl *ast.VariableDeclaration) {
	w.walkTypeName(decl.Type)
	w.add(makeToken(decl.Name.Pos, decl.Name.EndPos, decl.Name.Value, "variable", 1))
}

func (w *tokenWalker) walkTypeName(t ast.TypeName) {
	switch v := t.(type) {
	case *ast.ElementaryTypeName:
		if v.Payable {
			// "payable" is coloured by its keyword token
			end := ast.Position{Line: v.Pos.Line, Column: v.Pos.Column + len("address")}
			w.add(makeToken(v.Pos, end, "address", "type", 0))
			return
		}
		w.add(makeToken(v.Pos, v.EndPos, v.String(), "type", 0))
	case *ast.UserDefinedTypeName:
		for _, ident := range v.Path {
			w.add(makeToken(ident.Pos, ident.EndPos, ident.Value, "type", 0))
		}
	case *ast.MappingTypeName:
		w.walkTypeName(v.Key)
		w.walkTypeName(v.Value)
	case *ast.ArrayTypeName:
		w.walkTypeName(v.Elem)
		w.walkExpr(v.Length)
	}
}

func (w *tokenWalker) walkExpr(expr ast.Expr) {
	switch e := expr.(type) {
	case *ast.IdentExpr:
		w.add(w.identToken(e.Name, "variable"))
	case *ast.ElementaryTypeExpr:
		w.walkTypeName(e.Type)
	case *ast.NumberLiteral:
		w.add(makeToken(e.Pos, e.EndPos, e.String(), "number", 0))
	case *ast.MemberAccessExpr:
		w.walkExpr(e.Base)
		if ident, ok := e.Member.(*ast.IdentExpr); ok {
			w.add(makeToken(ident.Name.Pos, ident.Name.EndPos, ident.Name.Value, "property", 0))
		} else {
			w.walkExpr(e.Member)
		}
	case *ast.FunctionCallExpr:
		if ident, ok := e.Callee.(*ast.IdentExpr); ok {
			w.add(w.identToken(ident.Name, "function"))
		} else {
			w.walkExpr(e.Callee)
		}
		switch args := e.Args.(type) {
		case *ast.ExpressionList:
			for _, arg := range args.Exprs {
				w.walkExpr(arg)
			}
		case *ast.NameValueList:
			for _, entry := range args.Entries {
				w.add(makeToken(entry.Name.Pos, entry.Name.EndPos, entry.Name.Value, "parameter", 0))
				w.walkExpr(entry.Value)
			}
		}
	case *ast.AssignmentExpr:
		w.walkExpr(e.Left)
		w.walkExpr(e.Right)
	}
}

// identToken colours a reference, promoting declared contract names to types
func (w *tokenWalker) identToken(ident ast.Ident, fallback string) []SemanticToken {
	if _, ok := w.registry.Lookup(ident.Value); ok {
		return makeToken(ident.Pos, ident.EndPos, ident.Value, "type", 0)
	}
	return makeToken(ident.Pos, ident.EndPos, ident.Value, fallback, 0)
}

func tokenFromScan(tok parser.Token, tokenType string) []SemanticToken {
	return []SemanticToken{{
		Line:      uint32(tok.Position.Line - 1),
		StartChar: uint32(tok.Position.Column - 1),
		Length:    uint32(len(tok.Lexeme)),
		TokenType: indexOf(tokenType, SemanticTokenTypes),
	}}
}

func makeToken(pos, endPos ast.Position, value, tokenType string, declModifier int) []SemanticToken {
	if value == "" {
		return nil
	}

	length := endPos.Column - pos.Column
	if length <= 0 || endPos.Line != pos.Line {
		length = len(value)
	}

	return []SemanticToken{{
		Line:           uint32(pos.Line - 1),   // LSP uses 0-based line numbers
		StartChar:      uint32(pos.Column - 1), // LSP uses 0-based column numbers
		Length:         uint32(length),
		TokenType:      indexOf(tokenType, SemanticTokenTypes),
		TokenModifiers: declModifier << indexOf("declaration", SemanticTokenModifiers),
	}}
}

// indexOf returns the index of a string in a slice, or 0 if not found
func indexOf(target string, list []string) int {
	for i, v := range list {
		if v == target {
			return i
		}
	}
	return 0 // Default to first token type if not found
}
