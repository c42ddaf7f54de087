// Package compiler is the single entry point from source text to EVM
// bytecode.
package compiler

import (
	"encoding/hex"
	stderrors "errors"
	"fmt"

	"github.com/tliron/commonlog"
	"solidus/internal/ast"
	"solidus/internal/codegen"
	"solidus/internal/errors"
	"solidus/internal/parser"
	"solidus/internal/semantic"
)

var log = commonlog.GetLogger("solidus.compiler")

// DefaultFilename labels diagnostics when Options.Filename is empty
const DefaultFilename = "<input>"

// Options configures one compilation
type Options struct {
	Filename string
	Codegen  codegen.Config
}

// Result is a successful compilation
type Result struct {
	Root     *ast.Root
	Creation []byte
	Runtime  []byte
	Layout   []codegen.StorageSlot
	Methods  []codegen.Method
	Warnings []errors.CompilerError
}

// Bytecode returns creation code immediately followed by runtime code
func (r *Result) Bytecode() []byte {
	code := make([]byte, 0, len(r.Creation)+len(r.Runtime))
	code = append(code, r.Creation...)
	return append(code, r.Runtime...)
}

// Hex renders Bytecode as lowercase hex pairs
func (r *Result) Hex() string {
	return hex.EncodeToString(r.Bytecode())
}

// Error is a failed compilation. Diagnostics holds every error found in
// the failing phase, warnings excluded.
type Error struct {
	Diagnostics []errors.CompilerError
}

func (e *Error) Error() string {
	switch len(e.Diagnostics) {
	case 0:
		return "compilation failed"
	case 1:
		return e.Diagnostics[0].Error()
	default:
		return fmt.Sprintf("%s (and %d more errors)", e.Diagnostics[0].Error(), len(e.Diagnostics)-1)
	}
}

// Compile turns source into lowercase hex bytecode with the default options.
func Compile(source string) (string, error) {
	result, err := CompileWithOptions(source, Options{})
	if err != nil {
		return "", err
	}
	return result.Hex(), nil
}

// MustCompile is like Compile but panics on failure.
func MustCompile(source string) string {
	code, err := Compile(source)
	if err != nil {
		panic(err)
	}
	return code
}

// CompileWithOptions runs parsing, declaration checks and code generation.
// A failure in any phase stops the pipeline and returns an *Error.
func CompileWithOptions(source string, opts Options) (*Result, error) {
	filename := opts.Filename
	if filename == "" {
		filename = DefaultFilename
	}

	root, parseErrors, scanErrors := parser.ParseSource(filename, source)
	if diags := ConvertScanErrors(filename, scanErrors); len(diags) > 0 || len(parseErrors) > 0 {
		diags = append(diags, ConvertParseErrors(filename, parseErrors)...)
		log.Errorf("%s: parsing failed with %d errors", filename, len(diags))
		return nil, &Error{Diagnostics: diags}
	}
	log.Debugf("%s: parsed %d declarations", filename, len(root.Contracts))

	analyzer := semantic.NewAnalyzer()
	registry := analyzer.Analyze(root)
	diags, warnings := splitWarnings(analyzer.GetErrors())
	if len(diags) > 0 {
		log.Errorf("%s: declaration checks failed with %d errors", filename, len(diags))
		return nil, &Error{Diagnostics: diags}
	}

	out, err := codegen.NewGenerator(registry, opts.Codegen).Generate(root)
	if err != nil {
		log.Errorf("%s: code generation failed: %s", filename, err.Error())
		var genErr *codegen.Error
		if stderrors.As(err, &genErr) {
			return nil, &Error{Diagnostics: []errors.CompilerError{genErr.Diagnostic}}
		}
		return nil, err
	}
	log.Debugf("%s: generated %d creation and %d runtime bytes", filename, len(out.Creation), len(out.Runtime))

	return &Result{
		Root:     root,
		Creation: out.Creation,
		Runtime:  out.Runtime,
		Layout:   out.Layout,
		Methods:  out.Methods,
		Warnings: warnings,
	}, nil
}

func splitWarnings(all []errors.CompilerError) (errs, warnings []errors.CompilerError) {
	for _, err := range all {
		if err.Level == errors.Warning {
			warnings = append(warnings, err)
		} else {
			errs = append(errs, err)
		}
	}
	return errs, warnings
}
