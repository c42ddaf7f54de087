package lsp

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"solidus/compiler"
	"solidus/internal/ast"
	"solidus/internal/codegen"
	"solidus/internal/parser"
	"solidus/internal/types"
	"solidus/token"
)

var log = commonlog.GetLogger("solidus.lsp")

// Semantic token types advertised to the client, in legend order.
var SemanticTokenTypes = []string{
	"namespace",
	"type",
	"typeParameter",
	"function",
	"variable",
	"parameter",
	"property",
	"keyword",
	"number",
	"operator",
	"modifier",
}

// Define the set of supported semantic token modifiers (for extra tagging like declaration, readonly, etc.)
var SemanticTokenModifiers = []string{
	"declaration",
	"definition",
	"readonly",
	"static",
	"deprecated",
	"abstract",
}

// document is the last analysed state of one open file. root survives a
// failed parse so highlighting does not flicker while typing.
type document struct {
	content string
	root    *ast.Root
	tokens  []parser.Token
}

// SolidusHandler implements the LSP server handlers for Solidity sources
type SolidusHandler struct {
	mu     sync.RWMutex
	docs   map[string]*document
	config codegen.Config
}

// NewSolidusHandler creates and returns a new SolidusHandler instance
func NewSolidusHandler() *SolidusHandler {
	return &SolidusHandler{
		docs: make(map[string]*document),
	}
}

// WithConfig sets the code generation options used when diagnosing documents
func (h *SolidusHandler) WithConfig(config codegen.Config) *SolidusHandler {
	h.config = config
	return h
}

// Initialize responds to the LSP client's initialize request and advertises the server's capabilities
func (h *SolidusHandler) Initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	log.Info("LSP Initialize called")

	return &protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			TextDocumentSync: &protocol.TextDocumentSyncOptions{
				OpenClose: ptrBool(true), // notify on open/close events
				Change:    ptrSyncKind(protocol.TextDocumentSyncKindFull),
			},
			CompletionProvider: &protocol.CompletionOptions{
				ResolveProvider: ptrBool(false),
			},
			HoverProvider: true,
			SemanticTokensProvider: &protocol.SemanticTokensOptions{
				Legend: protocol.SemanticTokensLegend{
					TokenTypes:     SemanticTokenTypes,
					TokenModifiers: SemanticTokenModifiers,
				},
				Full: ptrBool(true), // support full-document semantic token requests
			},
		},
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name: "solidus",
		},
	}, nil
}

// Initialized is called after the client receives the server's capabilities and completes initialization
func (h *SolidusHandler) Initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	log.Info("Solidus LSP Initialized")
	return nil
}

// Shutdown handles the LSP shutdown request
func (h *SolidusHandler) Shutdown(ctx *glsp.Context) error {
	log.Info("Solidus LSP Shutdown")
	protocol.SetTraceValue(protocol.TraceValueOff)
	return nil
}

func (h *SolidusHandler) SetTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

// TextDocumentDidOpen handles file open notifications from the editor
func (h *SolidusHandler) TextDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	log.Infof("Opened file: %s", params.TextDocument.URI)

	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return err
	}

	diagnostics := h.update(path, params.TextDocument.Text)
	sendDiagnosticNotification(ctx, params.TextDocument.URI, diagnostics)
	return nil
}

// TextDocumentDidClose handles file close notifications from the editor
func (h *SolidusHandler) TextDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	log.Infof("Closed file: %s", params.TextDocument.URI)

	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.docs, path)

	return nil
}

// TextDocumentDidChange handles file change notifications from the editor.
// The server advertises full sync, so the last change carries the whole text.
func (h *SolidusHandler) TextDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	log.Debugf("Changed file: %s", params.TextDocument.URI)

	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return err
	}

	text, ok := lastFullText(params.ContentChanges)
	if !ok {
		// Range edits cannot be applied without the previous text; re-read from disk.
		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read file %s: %w", path, err)
		}
		text = string(content)
	}

	diagnostics := h.update(path, text)
	sendDiagnosticNotification(ctx, params.TextDocument.URI, diagnostics)
	return nil
}

// TextDocumentCompletion offers the language keywords and every contract
// name declared in the document.
func (h *SolidusHandler) TextDocumentCompletion(ctx *glsp.Context, params *protocol.CompletionParams) (interface{}, error) {
	var items []protocol.CompletionItem

	keywords := token.Keywords()
	sort.Strings(keywords)
	for _, kw := range keywords {
		items = append(items, protocol.CompletionItem{
			Label: kw,
			Kind:  ptrCompletionKind(protocol.CompletionItemKindKeyword),
		})
	}

	if path, err := uriToPath(params.TextDocument.URI); err == nil {
		if doc := h.document(path); doc != nil && doc.root != nil {
			registry := types.NewTypeRegistryFromRoot(doc.root)
			for _, name := range registry.Names() {
				kind := protocol.CompletionItemKindClass
				if registry.IsInterface(name) {
					kind = protocol.CompletionItemKindInterface
				}
				items = append(items, protocol.CompletionItem{
					Label: name,
					Kind:  ptrCompletionKind(kind),
				})
			}
		}
	}

	return &protocol.CompletionList{
		IsIncomplete: false,
		Items:        items,
	}, nil
}

// TextDocumentHover shows the ABI signature and selector of the function
// or public getter under the cursor.
func (h *SolidusHandler) TextDocumentHover(ctx *glsp.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil, err
	}

	doc, err := h.getOrUpdate(ctx, path, params.TextDocument.URI)
	if err != nil {
		return nil, err
	}
	if doc.root == nil {
		return nil, nil
	}

	return hoverAt(doc.root, params.Position), nil
}

// TextDocumentSemanticTokensFull handles semantic token requests for the entire document
func (h *SolidusHandler) TextDocumentSemanticTokensFull(ctx *glsp.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	log.Debugf("TextDocumentSemanticTokensFull called for: %s", params.TextDocument.URI)

	rawURI := params.TextDocument.URI

	path, err := uriToPath(rawURI)
	if err != nil {
		return nil, err
	}

	doc, err := h.getOrUpdate(ctx, path, rawURI)
	if err != nil {
		return nil, err
	}

	tokens := collectSemanticTokens(doc.root, doc.tokens)

	var data []uint32
	var prevLine, prevStart uint32

	// Encode tokens into LSP wire format (using delta-line, delta-start compression)
	for _, tok := range tokens {
		deltaLine := tok.Line - prevLine
		var deltaStart uint32
		if deltaLine == 0 {
			deltaStart = tok.StartChar - prevStart
		} else {
			deltaStart = tok.StartChar
		}

		data = append(data, deltaLine, deltaStart, tok.Length, uint32(tok.TokenType), uint32(tok.TokenModifiers))

		prevLine = tok.Line
		prevStart = tok.StartChar
	}

	return &protocol.SemanticTokens{
		Data: data,
	}, nil
}

func (h *SolidusHandler) document(path string) *document {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.docs[path]
}

// getOrUpdate returns the cached document, reading it from disk when the
// editor never opened it.
func (h *SolidusHandler) getOrUpdate(ctx *glsp.Context, path string, rawURI protocol.DocumentUri) (*document, error) {
	if doc := h.document(path); doc != nil {
		return doc, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}

	diagnostics := h.update(path, string(content))
	sendDiagnosticNotification(ctx, rawURI, diagnostics)

	return h.document(path), nil
}

// update re-analyses content and returns the diagnostics to publish
func (h *SolidusHandler) update(path, content string) []protocol.Diagnostic {
	root, diags := compiler.Diagnose(path, content, h.config)
	tokens := parser.NewScanner(content).ScanTokens()

	h.mu.Lock()
	defer h.mu.Unlock()

	doc, ok := h.docs[path]
	if !ok {
		doc = &document{}
		h.docs[path] = doc
	}
	doc.content = content
	doc.tokens = tokens
	if root != nil {
		doc.root = root
	}

	return ConvertDiagnostics(diags)
}

func lastFullText(changes []any) (string, bool) {
	for i := len(changes) - 1; i >= 0; i-- {
		switch change := changes[i].(type) {
		case protocol.TextDocumentContentChangeEventWhole:
			return change.Text, true
		case *protocol.TextDocumentContentChangeEventWhole:
			return change.Text, true
		}
	}
	return "", false
}

// Convert URI to platform-local file path
func uriToPath(rawURI string) (string, error) {
	u, err := url.Parse(rawURI)
	if err != nil {
		return "", fmt.Errorf("invalid URI %s: %w", rawURI, err)
	}

	path := u.Path

	// On Windows, remove leading slash (e.g., /C:/...) -> C:/...
	if runtime.GOOS == "windows" && strings.HasPrefix(path, "/") && len(path) > 3 && path[2] == ':' {
		path = path[1:]
	}

	return filepath.FromSlash(path), nil
}

func sendDiagnosticNotification(ctx *glsp.Context, uri protocol.URI, diagnostics []protocol.Diagnostic) {
	if ctx == nil || ctx.Notify == nil {
		return
	}
	if diagnostics == nil {
		// An empty list clears stale markers in the editor.
		diagnostics = []protocol.Diagnostic{}
	}

	log.Debugf("Sending %d diagnostics for %s", len(diagnostics), uri)

	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

func ptrBool(b bool) *bool {
	return &b
}

func ptrSyncKind(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}

func ptrCompletionKind(k protocol.CompletionItemKind) *protocol.CompletionItemKind {
	return &k
}
