package lsp

import (
	protocol "github.com/tliron/glsp/protocol_3_16"

	"solidus/internal/errors"
)

// ConvertDiagnostics transforms compiler errors and warnings into LSP
// diagnostics. Positions are converted to 0-based indexing and the error
// code is carried so editors can link to its description.
func ConvertDiagnostics(errs []errors.CompilerError) []protocol.Diagnostic {
	var diagnostics []protocol.Diagnostic

	for _, err := range errs {
		line := uint32(max(0, err.Position.Line-1))
		start := uint32(max(0, err.Position.Column-1))

		diagnostic := protocol.Diagnostic{
			Range: protocol.Range{
				Start: protocol.Position{Line: line, Character: start},
				End:   protocol.Position{Line: line, Character: start + uint32(max(1, err.Length))},
			},
			Severity: ptrSeverity(severity(err.Level)),
			Source:   ptrString("solidus"),
			Message:  err.Message,
		}
		if err.Code != "" {
			diagnostic.Code = &protocol.IntegerOrString{Value: err.Code}
		}
		for _, note := range err.Notes {
			diagnostic.Message += "\nnote: " + note
		}
		if err.HelpText != "" {
			diagnostic.Message += "\nhelp: " + err.HelpText
		}
		diagnostics = append(diagnostics, diagnostic)
	}

	return diagnostics
}

func severity(level errors.ErrorLevel) protocol.DiagnosticSeverity {
	switch level {
	case errors.Warning:
		return protocol.DiagnosticSeverityWarning
	case errors.Note:
		return protocol.DiagnosticSeverityInformation
	case errors.Help:
		return protocol.DiagnosticSeverityHint
	default:
		return protocol.DiagnosticSeverityError
	}
}

func ptrSeverity(s protocol.DiagnosticSeverity) *protocol.DiagnosticSeverity {
	return &s
}

func ptrString(s string) *string {
	return &s
}
