// SPDX-License-Identifier: Apache-2.0
package main

import (
	stderrors "errors"
	"flag"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/fatih/color"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"solidus/compiler"
	"solidus/internal/codegen"
	"solidus/internal/errors"
	"solidus/internal/evm"
)

func main() {
	asm := flag.Bool("asm", false, "print the assembly listing instead of hex")
	hashes := flag.Bool("hashes", false, "print function selectors")
	layout := flag.Bool("layout", false, "print the storage layout")
	pad := flag.Bool("pad", false, "push decimal arguments as full 32-byte words")
	drain := flag.Bool("drain", false, "pop expression statement results")
	canonicalBool := flag.Bool("canonical-bool", false, "use bool instead of booltrue/boolfalse in inferred signatures")
	verbose := flag.Int("v", 0, "log verbosity")
	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), "Usage: solidus [flags] <file.sol>")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}
	commonlog.Configure(*verbose, nil)

	startTime := time.Now()
	path := flag.Arg(0)

	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read file: %v\n", err)
		os.Exit(1)
	}

	errorReporter := errors.NewErrorReporter(path, string(source))

	result, err := compiler.CompileWithOptions(string(source), compiler.Options{
		Filename: path,
		Codegen: codegen.Config{
			PadArguments:              *pad,
			DrainExpressionStatements: *drain,
			CanonicalBoolSignature:    *canonicalBool,
		},
	})

	formattedDuration := formatDuration(time.Since(startTime))

	if err != nil {
		var compileErr *compiler.Error
		if stderrors.As(err, &compileErr) {
			fmt.Fprint(os.Stderr, errorReporter.FormatErrors(compileErr.Diagnostics))
		} else {
			fmt.Fprintf(os.Stderr, "%v\n", err)
		}
		color.Red("Compilation failed after %s", formattedDuration)
		os.Exit(1)
	}

	fmt.Fprint(os.Stderr, errorReporter.FormatErrors(result.Warnings))

	switch {
	case *asm:
		fmt.Print(evm.PrintSections([]string{"creation", "runtime"}, [][]byte{result.Creation, result.Runtime}))
	default:
		fmt.Println(result.Hex())
	}

	if *hashes {
		printHashes(result.Methods)
	}
	if *layout {
		printLayout(result.Layout)
	}

	color.Green("Successfully compiled %s in %s", path, formattedDuration)
}

// printHashes lists selectors sorted by signature, as solc --hashes does
func printHashes(methods []codegen.Method) {
	sorted := make([]codegen.Method, len(methods))
	copy(sorted, methods)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Signature < sorted[j].Signature
	})

	bold := color.New(color.Bold).SprintFunc()
	fmt.Println(bold("Function signatures:"))
	for _, m := range sorted {
		fmt.Printf("%s: %s (%s)\n", m.Selector.Hex(), m.Signature, m.Contract)
	}
}

func printLayout(slots []codegen.StorageSlot) {
	bold := color.New(color.Bold).SprintFunc()
	fmt.Println(bold("Storage layout:"))
	for _, s := range slots {
		fmt.Printf("%s.%s: slot %d (%s)\n", s.Contract, s.Name, s.Slot, s.Type)
	}
}

func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Minute:
		return fmt.Sprintf("%.2fmin", d.Minutes())
	case d >= time.Second:
		return fmt.Sprintf("%.2fs", d.Seconds())
	case d >= time.Millisecond:
		return fmt.Sprintf("%.1fms", float64(d.Nanoseconds())/1000000.0)
	case d >= time.Microsecond:
		return fmt.Sprintf("%.1fμs", float64(d.Nanoseconds())/1000.0)
	default:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	}
}
