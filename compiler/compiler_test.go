package compiler

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"solidus/internal/codegen"
	"solidus/internal/errors"
)

const endToEnd = "pragma solidity ^0.5.6;" +
	"contract C { constructor() public { address to = address(0xFB88dE099e13c3ED21F80a7a1E49f8CAEcF10df6); } }"

func readExample(t *testing.T, name string) string {
	t.Helper()
	source, err := os.ReadFile("../examples/" + name)
	require.NoError(t, err)
	return string(source)
}

func compileError(t *testing.T, source string) *Error {
	t.Helper()
	result, err := CompileWithOptions(source, Options{Filename: "test.sol"})
	require.Error(t, err)
	assert.Nil(t, result)

	var cerr *Error
	require.ErrorAs(t, err, &cerr)
	require.NotEmpty(t, cerr.Diagnostics)
	return cerr
}

func TestCompileEndToEnd(t *testing.T) {
	code, err := Compile(endToEnd)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(code, "6080604052"+"34801561001057600080fd5b50"), code)
	assert.Equal(t, "6080604052"+"34801561001057600080fd5b50"+
		"73fb88de099e13c3ed21f80a7a1e49f8caecf10df6"+
		"73ffffffffffffffffffffffffffffffffffffffff16"+
		"604051", code)
	assert.Equal(t, strings.ToLower(code), code)
}

func TestCompileExampleFile(t *testing.T) {
	code, err := Compile(readExample(t, "handle.sol"))
	require.NoError(t, err)

	expected, err := Compile(endToEnd)
	require.NoError(t, err)
	assert.Equal(t, expected, code)
}

func TestCompileWithOptionsResult(t *testing.T) {
	result, err := CompileWithOptions(readExample(t, "erc20.sol"), Options{Filename: "erc20.sol"})
	require.NoError(t, err)

	assert.NotNil(t, result.Root)
	assert.True(t, strings.HasSuffix(result.Hex(), "604051"))
	assert.Contains(t, result.Hex(), "63a9059cbb")
	assert.Empty(t, result.Warnings)

	require.Len(t, result.Layout, 3)
	assert.Equal(t, "forwarded", result.Layout[0].Name)
	assert.Equal(t, "owner", result.Layout[2].Name)

	methods := codegen.MethodMap(result.Methods)
	assert.Equal(t, "a9059cbb", methods["transfer(address,uint256)"])
	assert.Equal(t, "18160ddd", methods["totalSupply()"])
	assert.Contains(t, methods, "credits(address)")
	assert.Contains(t, methods, "credit(address,uint256)")
	assert.NotContains(t, methods, "owner()")
}

func TestCompileReportsWarnings(t *testing.T) {
	result, err := CompileWithOptions(endToEnd, Options{})
	require.NoError(t, err)

	require.Len(t, result.Warnings, 1)
	assert.Equal(t, errors.WarningValueNotStored, result.Warnings[0].Code)
	assert.Equal(t, DefaultFilename, result.Warnings[0].Position.Filename)
}

func TestCompileWithCodegenConfig(t *testing.T) {
	source := "pragma solidity ^0.5.6; contract C { constructor() public { f(1); } }"

	plain, err := CompileWithOptions(source, Options{})
	require.NoError(t, err)
	drained, err := CompileWithOptions(source, Options{Codegen: codegen.Config{DrainExpressionStatements: true}})
	require.NoError(t, err)

	assert.Equal(t, len(plain.Creation)+2, len(drained.Creation))
}

func TestNamedArgumentsFail(t *testing.T) {
	cerr := compileError(t, readExample(t, "named_arguments.sol"))

	require.Len(t, cerr.Diagnostics, 1)
	assert.Equal(t, errors.ErrorNamedArguments, cerr.Diagnostics[0].Code)
	assert.Equal(t, 5, cerr.Diagnostics[0].Position.Line)
}

func TestParseErrorsFail(t *testing.T) {
	cerr := compileError(t, "pragma solidity ^0.5.6; contract C { uint x; }")
	assert.Equal(t, errors.ErrorUnexpectedToken, cerr.Diagnostics[0].Code)

	cerr = compileError(t, "pragma solidity ^0.5.6; contract C { } }")
	assert.Equal(t, errors.ErrorTrailingInput, cerr.Diagnostics[0].Code)
	assert.Equal(t, 40, cerr.Diagnostics[0].Position.Column)

	cerr = compileError(t, `pragma solidity ^0.5.6; contract C { constructor() public { f("\q"); } }`)
	assert.Equal(t, errors.ErrorInvalidEscape, cerr.Diagnostics[0].Code)
}

func TestGluedTypeNameFails(t *testing.T) {
	cerr := compileError(t, "pragma solidity ^0.5.6; contract C { uint8x y = 1; }")

	diag := cerr.Diagnostics[0]
	assert.Equal(t, errors.ErrorUnexpectedToken, diag.Code)
	assert.Equal(t, 43, diag.Position.Column)
	assert.Contains(t, diag.Message, "'x'")
}

func TestMisspelledKeywordSuggestion(t *testing.T) {
	cerr := compileError(t, "pragma solidity ^0.5.6; contarct C { }")

	diag := cerr.Diagnostics[0]
	assert.Equal(t, errors.ErrorTrailingInput, diag.Code)

	cerr = compileError(t, "pragma solidity ^0.5.6; contract C { constructor() pubic { } }")
	diag = cerr.Diagnostics[0]
	assert.Equal(t, errors.ErrorUnexpectedToken, diag.Code)
	require.NotEmpty(t, diag.Suggestions)
	assert.Contains(t, diag.Suggestions[0].Message, "public")
}

func TestInvalidCharacterFails(t *testing.T) {
	cerr := compileError(t, "pragma solidity ^0.5.6; contract C { # }")
	assert.Equal(t, errors.ErrorInvalidCharacter, cerr.Diagnostics[0].Code)
}

func TestDeclarationErrorsFail(t *testing.T) {
	cerr := compileError(t, readExample(t, "duplicate_constructor.sol"))
	assert.Equal(t, errors.ErrorMultipleConstructors, cerr.Diagnostics[0].Code)
	assert.Contains(t, cerr.Error(), "test.sol:5:5")
}

func TestErrorMessageCountsExtraDiagnostics(t *testing.T) {
	err := &Error{Diagnostics: []errors.CompilerError{
		{Level: errors.Error, Code: "E0200", Message: "a"},
		{Level: errors.Error, Code: "E0200", Message: "b"},
	}}
	assert.Contains(t, err.Error(), "and 1 more errors")
	assert.Equal(t, "compilation failed", (&Error{}).Error())
}

func TestMustCompile(t *testing.T) {
	assert.NotPanics(t, func() { MustCompile(endToEnd) })
	assert.Panics(t, func() {
		MustCompile("pragma solidity ^0.5.6; contract C { constructor() public { f({a: 1}); } }")
	})
}

func TestCompileIsIndependentPerCall(t *testing.T) {
	first, err := Compile(endToEnd)
	require.NoError(t, err)
	second, err := Compile(endToEnd)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestDiagnoseCollectsAllPhases(t *testing.T) {
	root, diags := Diagnose("x.sol", readExample(t, "handle.sol"), codegen.Config{})
	require.NotNil(t, root)
	require.Len(t, diags, 1)
	assert.Equal(t, errors.WarningValueNotStored, diags[0].Code)

	_, diags = Diagnose("x.sol", readExample(t, "named_arguments.sol"), codegen.Config{})
	require.Len(t, diags, 1)
	assert.Equal(t, errors.ErrorNamedArguments, diags[0].Code)

	root, diags = Diagnose("x.sol", "pragma", codegen.Config{})
	assert.Nil(t, root)
	assert.Equal(t, errors.ErrorUnexpectedToken, diags[0].Code)
}
