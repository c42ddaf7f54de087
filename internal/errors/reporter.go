package errors

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"solidus/internal/ast"
)

// ErrorLevel represents the severity of an error
type ErrorLevel string

const (
	Error   ErrorLevel = "error"
	Warning ErrorLevel = "warning"
	Note    ErrorLevel = "note"
	Help    ErrorLevel = "help"
)

// CompilerError represents a structured error with suggestions and context
type CompilerError struct {
	Level       ErrorLevel
	Code        string       // Error code like E0100
	Message     string       // Primary error message
	Position    ast.Position // Location in source
	Length      int          // Length of the problematic region
	Suggestions []Suggestion // Suggested fixes
	Notes       []string     // Additional context notes
	HelpText    string       // Help text for the error
}

func (e CompilerError) Error() string {
	return fmt.Sprintf("%s:%d:%d: %s[%s]: %s",
		e.Position.Filename, e.Position.Line, e.Position.Column, e.Level, e.Code, e.Message)
}

// Suggestion represents a suggested fix
type Suggestion struct {
	Message     string       // Description of the suggestion
	Replacement string       // Suggested replacement text (optional)
	Position    ast.Position // Position to apply the fix (optional)
	Length      int          // Length of text to replace (optional)
}

// ErrorReporter renders compiler errors against the source they came from
type ErrorReporter struct {
	filename string
	lines    []string
	plain    bool
}

// NewErrorReporter creates a new error reporter for a file
func NewErrorReporter(filename, source string) *ErrorReporter {
	return &ErrorReporter{
		filename: filename,
		lines:    strings.Split(source, "\n"),
	}
}

// Plain disables colour escapes regardless of the terminal.
func (er *ErrorReporter) Plain() *ErrorReporter {
	er.plain = true
	return er
}

func (er *ErrorReporter) paint(attrs ...color.Attribute) func(...interface{}) string {
	c := color.New(attrs...)
	if er.plain {
		c.DisableColor()
	}
	return c.SprintFunc()
}

// FormatErrors formats every error in order, separated by blank lines.
func (er *ErrorReporter) FormatErrors(errs []CompilerError) string {
	var result strings.Builder
	for _, err := range errs {
		result.WriteString(er.FormatError(err))
	}
	return result.String()
}

// FormatError formats a compiler error with Rust-like styling and suggestions
func (er *ErrorReporter) FormatError(err CompilerError) string {
	var result strings.Builder

	levelColor := er.levelColor(err.Level)
	bold := er.paint(color.Bold)
	dim := er.paint(color.Faint)

	// Header: error[E0100]: message
	if err.Code != "" {
		result.WriteString(fmt.Sprintf("%s[%s]: %s\n", levelColor(string(err.Level)), err.Code, err.Message))
	} else {
		result.WriteString(fmt.Sprintf("%s: %s\n", levelColor(string(err.Level)), err.Message))
	}

	width := lineNumberWidth(err.Position.Line)
	indent := strings.Repeat(" ", width)
	gutter := dim("│")

	result.WriteString(fmt.Sprintf("%s %s %s:%d:%d\n", indent, dim("-->"), er.filename, err.Position.Line, err.Position.Column))
	result.WriteString(fmt.Sprintf("%s %s\n", indent, gutter))

	if line, ok := er.line(err.Position.Line - 1); ok {
		result.WriteString(fmt.Sprintf("%s %s %s\n", dim(fmt.Sprintf("%*d", width, err.Position.Line-1)), gutter, line))
	}
	if line, ok := er.line(err.Position.Line); ok {
		result.WriteString(fmt.Sprintf("%s %s %s\n", bold(fmt.Sprintf("%*d", width, err.Position.Line)), gutter, line))
		result.WriteString(fmt.Sprintf("%s %s %s\n", indent, gutter, er.marker(err.Position.Column, err.Length, levelColor)))
	}
	if line, ok := er.line(err.Position.Line + 1); ok {
		result.WriteString(fmt.Sprintf("%s %s %s\n", dim(fmt.Sprintf("%*d", width, err.Position.Line+1)), gutter, line))
	}

	if len(err.Suggestions) > 0 {
		cyan := er.paint(color.FgCyan)
		result.WriteString(fmt.Sprintf("%s %s\n", indent, gutter))
		for i, suggestion := range err.Suggestions {
			if i == 0 {
				result.WriteString(fmt.Sprintf("%s %s %s: %s\n", indent, cyan("help"), cyan("try"), suggestion.Message))
			} else {
				result.WriteString(fmt.Sprintf("%s %s %s\n", indent, cyan("    "), suggestion.Message))
			}
			if suggestion.Replacement != "" {
				replacement := strings.ReplaceAll(suggestion.Replacement, "\n", fmt.Sprintf("\n%s %s ", indent, gutter))
				result.WriteString(fmt.Sprintf("%s %s %s\n", indent, cyan("│"), cyan(replacement)))
			}
		}
	}

	noteColor := er.paint(color.FgBlue)
	for _, note := range err.Notes {
		result.WriteString(fmt.Sprintf("%s %s %s %s\n", indent, gutter, noteColor("note:"), note))
	}

	if err.HelpText != "" {
		helpColor := er.paint(color.FgGreen)
		result.WriteString(fmt.Sprintf("%s %s %s %s\n", indent, gutter, helpColor("help:"), err.HelpText))
	}

	result.WriteString("\n")
	return result.String()
}

// line returns the 1-based source line if it exists
func (er *ErrorReporter) line(n int) (string, bool) {
	if n < 1 || n > len(er.lines) {
		return "", false
	}
	return er.lines[n-1], true
}

func (er *ErrorReporter) levelColor(level ErrorLevel) func(...interface{}) string {
	switch level {
	case Warning:
		return er.paint(color.FgYellow, color.Bold)
	case Note:
		return er.paint(color.FgBlue, color.Bold)
	case Help:
		return er.paint(color.FgGreen, color.Bold)
	default:
		return er.paint(color.FgRed, color.Bold)
	}
}

// marker underlines the problematic region with carets
func (er *ErrorReporter) marker(column, length int, paint func(...interface{}) string) string {
	if length <= 0 {
		length = 1
	}
	return strings.Repeat(" ", max(0, column-1)) + paint(strings.Repeat("^", length))
}

// lineNumberWidth calculates the width needed for line numbers
func lineNumberWidth(line int) int {
	return max(3, len(fmt.Sprintf("%d", line+1)))
}
