package compiler

import (
	stderrors "errors"

	"solidus/internal/ast"
	"solidus/internal/codegen"
	"solidus/internal/errors"
	"solidus/internal/parser"
	"solidus/internal/semantic"
	"solidus/token"
)

// ConvertParseErrors maps parser failures onto numbered compiler errors
func ConvertParseErrors(filename string, parseErrors []parser.ParseError) []errors.CompilerError {
	var diags []errors.CompilerError
	for _, perr := range parseErrors {
		pos := position(filename, perr.Position)
		switch perr.Expected {
		case parser.ExpectedEndOfInput:
			diags = append(diags, errors.TrailingInput(perr.Found, pos, perr.Length))
		case parser.ExpectedEscape:
			diags = append(diags, errors.InvalidEscape(pos, perr.Length))
		default:
			diags = append(diags, errors.UnexpectedToken(perr.Expected, perr.Found, pos, perr.Length, token.Keywords()))
		}
	}
	return diags
}

// ConvertScanErrors maps lexer failures onto numbered compiler errors
func ConvertScanErrors(filename string, scanErrors []parser.ScanError) []errors.CompilerError {
	var diags []errors.CompilerError
	for _, serr := range scanErrors {
		diags = append(diags, errors.InvalidCharacter(serr.Message, position(filename, serr.Position), serr.Length))
	}
	return diags
}

// Diagnose collects every diagnostic the pipeline produces for source,
// warnings included, without stopping at the first failing phase when a
// later phase can still run.
func Diagnose(filename, source string, config codegen.Config) (*ast.Root, []errors.CompilerError) {
	root, parseErrors, scanErrors := parser.ParseSource(filename, source)
	diags := ConvertScanErrors(filename, scanErrors)
	diags = append(diags, ConvertParseErrors(filename, parseErrors)...)
	if root == nil {
		return nil, diags
	}

	analyzer := semantic.NewAnalyzer()
	registry := analyzer.Analyze(root)
	diags = append(diags, analyzer.GetErrors()...)
	if analyzer.HasErrors() {
		return root, diags
	}

	if _, err := codegen.NewGenerator(registry, config).Generate(root); err != nil {
		var genErr *codegen.Error
		if stderrors.As(err, &genErr) {
			diags = append(diags, genErr.Diagnostic)
		}
	}
	return root, diags
}

func position(filename string, pos parser.Position) ast.Position {
	return ast.Position{
		Filename: filename,
		Offset:   pos.Offset,
		Line:     pos.Line,
		Column:   pos.Column,
	}
}
