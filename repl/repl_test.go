package repl

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func run(input string) string {
	var out bytes.Buffer
	Start(strings.NewReader(input), &out)
	return out.String()
}

func TestStartPrintsASTAndCode(t *testing.T) {
	out := run("transfer(0x01, 250)\n")

	assert.Contains(t, out, "AST:")
	assert.Contains(t, out, "EVM:")
	assert.Contains(t, out, "PUSH4 0xa9059cbb")
	assert.Contains(t, out, "PUSH1 0xfa")
}

func TestStartInterfaceShortcut(t *testing.T) {
	out := run(":interface Token\nToken(0x01)\n")

	assert.Contains(t, out, "interface Token")
	assert.Contains(t, out, "PUSH20 0xffffffffffffffffffffffffffffffffffffffff")
	assert.NotContains(t, out, "PUSH4")
}

func TestStartReportsCodegenErrors(t *testing.T) {
	out := run("f({a: 1})\n")

	assert.Contains(t, out, "error[E0401]")
	assert.NotContains(t, out, "EVM:")
}

func TestStartReportsParseErrors(t *testing.T) {
	out := run("f(\n")
	assert.Contains(t, out, "parse error")
}

func TestStartSkipsCodeForPlainValues(t *testing.T) {
	out := run("balance\n")

	assert.Contains(t, out, "AST:")
	assert.NotContains(t, out, "EVM:")
}

func TestStartEndsAtEOF(t *testing.T) {
	assert.Equal(t, PROMPT+"\n", run(""))
}
