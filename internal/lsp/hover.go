package lsp

import (
	"fmt"
	"strings"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"solidus/internal/abi"
	"solidus/internal/ast"
	"solidus/internal/codegen"
)

// hoverAt describes the declaration whose name covers pos
func hoverAt(root *ast.Root, pos protocol.Position) *protocol.Hover {
	line, column := int(pos.Line)+1, int(pos.Character)+1

	for _, contract := range root.Contracts {
		if covers(contract.Name, line, column) {
			return hover(contract.Name, fmt.Sprintf("```solidity\n%s %s\n```", contract.Kind, contract.Name.Value))
		}

		for _, part := range contract.Parts {
			switch p := part.(type) {
			case *ast.FunctionDefinition:
				if p.Name == nil || !covers(*p.Name, line, column) {
					continue
				}
				signature := abi.SignatureOf(p)
				return hover(*p.Name, describeMethod("function "+signature, signature, p.Visibility))
			case *ast.StateVariableDeclaration:
				if !covers(p.Name, line, column) {
					continue
				}
				declaration := fmt.Sprintf("%s %s", p.Type, p.Name.Value)
				if getter := getterFor(root, contract, p); getter != "" {
					return hover(p.Name, describeMethod(declaration, getter, p.Visibility))
				}
				return hover(p.Name, fmt.Sprintf("```solidity\n%s\n```", declaration))
			}
		}
	}
	return nil
}

func describeMethod(declaration, signature string, visibility ast.Visibility) string {
	var b strings.Builder
	fmt.Fprintf(&b, "```solidity\n%s\n```\n", declaration)
	switch visibility {
	case ast.VisibilityPrivate, ast.VisibilityInternal:
		fmt.Fprintf(&b, "not externally callable (%s)", visibility)
	default:
		fmt.Fprintf(&b, "selector `%s` for `%s`", abi.SelectorOf(signature), signature)
	}
	return b.String()
}

// getterFor returns the signature of the getter generated for a public state variable
func getterFor(root *ast.Root, contract *ast.Contract, decl *ast.StateVariableDeclaration) string {
	if decl.Visibility != ast.VisibilityPublic {
		return ""
	}
	prefix := decl.Name.Value + "("
	for _, method := range codegen.MethodIdentifiers(root) {
		if method.Contract == contract.Name.Value && strings.HasPrefix(method.Signature, prefix) {
			return method.Signature
		}
	}
	return ""
}

func covers(ident ast.Ident, line, column int) bool {
	if ident.Pos.Line != line {
		return false
	}
	end := ident.EndPos.Column
	if ident.EndPos.Line != line || end <= ident.Pos.Column {
		end = ident.Pos.Column + len(ident.Value)
	}
	return column >= ident.Pos.Column && column < end
}

func hover(ident ast.Ident, markdown string) *protocol.Hover {
	start := protocol.Position{Line: uint32(ident.Pos.Line - 1), Character: uint32(ident.Pos.Column - 1)}
	end := protocol.Position{Line: start.Line, Character: start.Character + uint32(len(ident.Value))}
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.MarkupKindMarkdown,
			Value: markdown,
		},
		Range: &protocol.Range{Start: start, End: end},
	}
}
