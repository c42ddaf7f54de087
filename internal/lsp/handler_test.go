package lsp_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"solidus/internal/ast"
	"solidus/internal/errors"
	"solidus/internal/lsp"
)

func exampleURI(t *testing.T, name string) string {
	absPath, err := filepath.Abs(filepath.Join("../../examples", name))
	require.NoError(t, err, "Failed to get absolute path")
	return "file://" + filepath.ToSlash(absPath)
}

func TestTextDocumentSemanticTokensFull(t *testing.T) {
	handler := lsp.NewSolidusHandler()

	ctx := &glsp.Context{}
	params := &protocol.SemanticTokensParams{
		TextDocument: protocol.TextDocumentIdentifier{
			URI: exampleURI(t, "erc20.sol"),
		},
	}

	tokens, err := handler.TextDocumentSemanticTokensFull(ctx, params)
	require.NoError(t, err, "TextDocumentSemanticTokensFull returned error")
	require.NotNil(t, tokens, "Returned tokens should not be nil")
	require.NotEmpty(t, tokens.Data, "Returned token data should not be empty")

	decoded, err := decodeSemanticTokens(tokens.Data)
	require.NoError(t, err, "Failed to decode semantic tokens")
	require.Greater(t, len(decoded), 13)

	assertToken(t, &decoded[0], 1, 1, 6, "keyword", nil)
	assertToken(t, &decoded[1], 3, 1, 9, "keyword", nil)
	assertToken(t, &decoded[2], 3, 11, 12, "type", []string{"declaration"})
	assertToken(t, &decoded[3], 4, 5, 8, "keyword", nil)
	assertToken(t, &decoded[4], 4, 14, 11, "function", []string{"declaration"})
	assertToken(t, &decoded[5], 4, 28, 8, "keyword", nil)
	assertToken(t, &decoded[6], 4, 37, 4, "keyword", nil)
	assertToken(t, &decoded[7], 4, 42, 7, "keyword", nil)
	assertToken(t, &decoded[8], 4, 51, 7, "type", nil)
	assertToken(t, &decoded[9], 5, 5, 8, "keyword", nil)
	assertToken(t, &decoded[10], 5, 14, 9, "function", []string{"declaration"})
	assertToken(t, &decoded[11], 5, 24, 7, "type", nil)
	assertToken(t, &decoded[12], 5, 32, 5, "parameter", []string{"declaration"})

	// Contract body: state variables, the payable address and the constructor call.
	assertHasToken(t, decoded, 11, 10, 9, "type", []string{"declaration"})
	assertHasToken(t, decoded, 12, 5, 7, "type", nil)
	assertHasToken(t, decoded, 12, 20, 9, "property", []string{"declaration"})
	assertHasToken(t, decoded, 12, 32, 1, "number", nil)
	assertHasToken(t, decoded, 13, 5, 7, "keyword", nil)
	assertHasToken(t, decoded, 13, 13, 7, "type", nil)
	assertHasToken(t, decoded, 13, 40, 7, "property", []string{"declaration"})
	assertHasToken(t, decoded, 14, 5, 7, "type", nil)
	assertHasToken(t, decoded, 14, 13, 7, "keyword", nil)
	assertHasToken(t, decoded, 14, 29, 4, "number", nil)
	assertHasToken(t, decoded, 17, 9, 12, "type", nil)
	assertHasToken(t, decoded, 17, 22, 42, "number", nil)
	assertHasToken(t, decoded, 17, 66, 8, "function", nil)
	assertHasToken(t, decoded, 17, 81, 3, "number", nil)

	for i := 1; i < len(decoded); i++ {
		prev, cur := decoded[i-1], decoded[i]
		if prev.Line == cur.Line {
			assert.Less(t, prev.Char, cur.Char, "tokens %d and %d out of order", i-1, i)
		}
	}
}

func TestTextDocumentHover(t *testing.T) {
	handler := lsp.NewSolidusHandler()
	ctx := &glsp.Context{}
	uri := exampleURI(t, "erc20.sol")

	hover := func(line, char uint32) *protocol.Hover {
		result, err := handler.TextDocumentHover(ctx, &protocol.HoverParams{
			TextDocumentPositionParams: protocol.TextDocumentPositionParams{
				TextDocument: protocol.TextDocumentIdentifier{URI: uri},
				Position:     protocol.Position{Line: line, Character: char},
			},
		})
		require.NoError(t, err)
		return result
	}

	// "transfer" in the interface declaration
	result := hover(5, 15)
	require.NotNil(t, result)
	content, ok := result.Contents.(protocol.MarkupContent)
	require.True(t, ok)
	assert.Contains(t, content.Value, "transfer(address,uint256)")
	assert.Contains(t, content.Value, "0xa9059cbb")
	require.NotNil(t, result.Range)
	assert.Equal(t, uint32(13), result.Range.Start.Character)
	assert.Equal(t, uint32(21), result.Range.End.Character)

	// the public mapping getter takes the key as its argument
	result = hover(12, 40)
	require.NotNil(t, result)
	content = result.Contents.(protocol.MarkupContent)
	assert.Contains(t, content.Value, "credits(address)")

	// a private state variable has no getter
	result = hover(13, 22)
	require.NotNil(t, result)
	content = result.Contents.(protocol.MarkupContent)
	assert.NotContains(t, content.Value, "selector")

	// whitespace
	assert.Nil(t, hover(1, 0))
}

func TestDidOpenKeepsLastGoodTree(t *testing.T) {
	handler := lsp.NewSolidusHandler()
	ctx := &glsp.Context{}
	uri := "file:///tmp/solidus-open-test.sol"

	err := handler.TextDocumentDidOpen(ctx, &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{
			URI:  uri,
			Text: "pragma solidity ^0.5.6;\ncontract Token { uint256 public supply = 1; }",
		},
	})
	require.NoError(t, err)

	err = handler.TextDocumentDidChange(ctx, &protocol.DidChangeTextDocumentParams{
		TextDocument: protocol.VersionedTextDocumentIdentifier{
			TextDocumentIdentifier: protocol.TextDocumentIdentifier{URI: uri},
		},
		ContentChanges: []any{
			protocol.TextDocumentContentChangeEventWhole{Text: "pragma solidity ^0.5.6;\ncontract Token {"},
		},
	})
	require.NoError(t, err)

	tokens, err := handler.TextDocumentSemanticTokensFull(ctx, &protocol.SemanticTokensParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	})
	require.NoError(t, err)

	decoded, err := decodeSemanticTokens(tokens.Data)
	require.NoError(t, err)
	assertHasToken(t, decoded, 2, 10, 5, "type", []string{"declaration"})

	require.NoError(t, handler.TextDocumentDidClose(ctx, &protocol.DidCloseTextDocumentParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	}))
}

func TestTextDocumentCompletion(t *testing.T) {
	handler := lsp.NewSolidusHandler()
	ctx := &glsp.Context{}
	uri := exampleURI(t, "erc20.sol")

	content, err := os.ReadFile(filepath.Join("../../examples", "erc20.sol"))
	require.NoError(t, err)
	require.NoError(t, handler.TextDocumentDidOpen(ctx, &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{URI: uri, Text: string(content)},
	}))

	result, err := handler.TextDocumentCompletion(ctx, &protocol.CompletionParams{
		TextDocumentPositionParams: protocol.TextDocumentPositionParams{
			TextDocument: protocol.TextDocumentIdentifier{URI: uri},
		},
	})
	require.NoError(t, err)

	list, ok := result.(*protocol.CompletionList)
	require.True(t, ok)

	labels := make(map[string]protocol.CompletionItemKind)
	for _, item := range list.Items {
		labels[item.Label] = *item.Kind
	}
	assert.Equal(t, protocol.CompletionItemKindKeyword, labels["contract"])
	assert.Equal(t, protocol.CompletionItemKindInterface, labels["GeneralERC20"])
	assert.Equal(t, protocol.CompletionItemKindClass, labels["Forwarder"])
}

func TestInitializeAdvertisesCapabilities(t *testing.T) {
	handler := lsp.NewSolidusHandler()

	result, err := handler.Initialize(&glsp.Context{}, &protocol.InitializeParams{})
	require.NoError(t, err)

	initResult, ok := result.(*protocol.InitializeResult)
	require.True(t, ok)
	assert.Equal(t, true, initResult.Capabilities.HoverProvider)
	assert.NotNil(t, initResult.Capabilities.SemanticTokensProvider)
}

func TestConvertDiagnostics(t *testing.T) {
	diagnostics := lsp.ConvertDiagnostics([]errors.CompilerError{
		errors.NamedArguments("f", ast.Position{Line: 4, Column: 9}),
		errors.ValueNotStored("to", ast.Position{Line: 3, Column: 17}),
	})
	require.Len(t, diagnostics, 2)

	first := diagnostics[0]
	assert.Equal(t, protocol.DiagnosticSeverityError, *first.Severity)
	assert.Equal(t, "E0401", first.Code.Value)
	assert.Equal(t, "solidus", *first.Source)
	assert.Equal(t, protocol.Position{Line: 3, Character: 8}, first.Range.Start)
	assert.Equal(t, protocol.Position{Line: 3, Character: 9}, first.Range.End)

	second := diagnostics[1]
	assert.Equal(t, protocol.DiagnosticSeverityWarning, *second.Severity)
	assert.Equal(t, uint32(18), second.Range.End.Character)
}

type DecodedToken struct {
	Index     int
	Line      uint32
	Char      uint32
	Length    uint32
	Type      string
	Modifiers []string
}

func decodeSemanticTokens(raw []uint32) ([]DecodedToken, error) {
	if len(raw)%5 != 0 {
		return nil, fmt.Errorf("raw token data length %d is not a multiple of 5", len(raw))
	}

	var (
		decoded []DecodedToken
		line    uint32
		char    uint32
	)

	for i := 0; i < len(raw); i += 5 {
		deltaLine := raw[i]
		deltaStart := raw[i+1]
		length := raw[i+2]
		tokenTypeIdx := raw[i+3]
		tokenModMask := raw[i+4]

		if deltaLine == 0 {
			char += deltaStart
		} else {
			line += deltaLine
			char = deltaStart
		}

		var modifiers []string
		for j, name := range lsp.SemanticTokenModifiers {
			if tokenModMask&(1<<j) != 0 {
				modifiers = append(modifiers, name)
			}
		}

		decoded = append(decoded, DecodedToken{
			Index:     i / 5,
			Line:      line + 1, // LSP uses 0-based indexing
			Char:      char + 1, // LSP uses 0-based indexing
			Length:    length,
			Type:      lsp.SemanticTokenTypes[tokenTypeIdx],
			Modifiers: modifiers,
		})
	}

	return decoded, nil
}

func assertToken(t *testing.T, token *DecodedToken, expectedLine, expectedChar, expectedLength uint32, expectedType string, expectedModifiers []string) {
	require.Equal(t, expectedLine, token.Line, "line mismatch (expected line %d)", expectedLine)
	require.Equal(t, expectedChar, token.Char, "char mismatch (expected char %d)", expectedChar)
	require.Equal(t, expectedLength, token.Length, "length mismatch")
	require.Equal(t, expectedType, token.Type, "type mismatch")
	require.ElementsMatch(t, expectedModifiers, token.Modifiers, "modifiers mismatch")
}

func assertHasToken(t *testing.T, tokens []DecodedToken, line, char, length uint32, tokenType string, modifiers []string) {
	for i := range tokens {
		if tokens[i].Line == line && tokens[i].Char == char {
			assertToken(t, &tokens[i], line, char, length, tokenType, modifiers)
			return
		}
	}
	t.Fatalf("no token at %d:%d", line, char)
}
