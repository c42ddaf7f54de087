// Package repl SPDX-License-Identifier: Apache-2.0
package repl

import (
	"bufio"
	stderrors "errors"
	"fmt"
	"io"
	"strings"

	"solidus/internal/codegen"
	"solidus/internal/errors"
	"solidus/internal/evm"
	"solidus/internal/parser"
	"solidus/internal/types"
)

const PROMPT = ">> "

// Start reads one expression per line, prints its AST and, when it lowers
// to code, the instructions it compiles to. ":interface Name" declares an
// interface name for later calls.
func Start(in io.Reader, out io.Writer) {
	scanner := bufio.NewScanner(in)
	registry := types.NewTypeRegistry()

	for {
		fmt.Fprint(out, PROMPT)
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return
		}

		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "":
			continue
		case strings.HasPrefix(line, ":interface "):
			for _, name := range strings.Fields(strings.TrimPrefix(line, ":interface ")) {
				registry.AddInterface(name)
				fmt.Fprintf(out, "interface %s\n", name)
			}
			continue
		}

		expr, rest, err := parser.ParseExpression(line)
		if err != nil {
			fmt.Fprintf(out, "parse error: %s\n", err)
			continue
		}
		if strings.TrimSpace(rest) != "" {
			fmt.Fprintf(out, "parse error: unexpected %q\n", strings.TrimSpace(rest))
			continue
		}

		fmt.Fprintf(out, "AST:\n%s\n", expr.String())

		code, err := codegen.LowerExpression(expr, registry, codegen.Config{})
		if err != nil {
			var genErr *codegen.Error
			if stderrors.As(err, &genErr) {
				fmt.Fprint(out, errors.NewErrorReporter("<repl>", line).Plain().FormatError(genErr.Diagnostic))
			} else {
				fmt.Fprintf(out, "error: %s\n", err)
			}
			continue
		}
		if len(code) > 0 {
			fmt.Fprintf(out, "EVM:\n%s", evm.Print(code))
		}
	}
}
