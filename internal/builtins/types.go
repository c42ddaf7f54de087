package builtins

import (
	"strconv"
	"strings"

	"solidus/internal/ast"
)

const (
	// DefaultIntWidth is what bare "uint" and "int" alias.
	DefaultIntWidth = 256
	// DefaultByteWidth is what bare "byte" aliases.
	DefaultByteWidth = 1
)

var fixedElementary = map[string]ast.ElementaryKind{
	"address": ast.KindAddress,
	"bool":    ast.KindBool,
	"string":  ast.KindString,
	"int":     ast.KindInt,
	"uint":    ast.KindUInt,
	"byte":    ast.KindByte,
	"bytes":   ast.KindBytes,
	"fixed":   ast.KindFixed,
	"ufixed":  ast.KindUfixed,
}

// LookupElementary resolves an exact keyword such as "uint8" or "bytes32"
// to its kind and width. Widths outside the standard set are rejected, so
// "uint7" falls through to a user-defined type.
func LookupElementary(word string) (ast.ElementaryKind, int, bool) {
	if kind, ok := fixedElementary[word]; ok {
		return kind, 0, true
	}

	switch {
	case strings.HasPrefix(word, "uint"):
		if w, ok := intWidth(word[len("uint"):]); ok {
			return ast.KindUInt, w, true
		}
	case strings.HasPrefix(word, "int"):
		if w, ok := intWidth(word[len("int"):]); ok {
			return ast.KindInt, w, true
		}
	case strings.HasPrefix(word, "bytes"):
		if w, ok := byteWidth(word[len("bytes"):]); ok {
			return ast.KindByte, w, true
		}
	}

	return 0, 0, false
}

// IsElementaryTypeName checks if a word names a built-in type
func IsElementaryTypeName(word string) bool {
	_, _, ok := LookupElementary(word)
	return ok
}

// ElementaryPrefix returns the length of the longest built-in type name that
// is a proper prefix of word, or 0. "uint8x" gives 5; "uint8" itself gives 0.
func ElementaryPrefix(word string) int {
	if IsElementaryTypeName(word) {
		return 0
	}
	for n := len(word) - 1; n > 0; n-- {
		if IsElementaryTypeName(word[:n]) {
			return n
		}
	}
	return 0
}

func intWidth(digits string) (int, bool) {
	w, ok := parseWidth(digits)
	if !ok || w < 8 || w > 256 || w%8 != 0 {
		return 0, false
	}
	return w, true
}

func byteWidth(digits string) (int, bool) {
	w, ok := parseWidth(digits)
	if !ok || w < 1 || w > 32 {
		return 0, false
	}
	return w, true
}

func parseWidth(digits string) (int, bool) {
	// leading zeros ("uint08") are not type names
	if digits == "" || digits[0] == '0' {
		return 0, false
	}
	w, err := strconv.Atoi(digits)
	if err != nil {
		return 0, false
	}
	return w, true
}

// CanonicalABIName returns the name a type takes in a function signature.
func CanonicalABIName(t ast.TypeName) string {
	switch t := t.(type) {
	case *ast.ElementaryTypeName:
		return canonicalElementary(t)
	case *ast.ArrayTypeName:
		suffix := "[]"
		if n, ok := t.Length.(*ast.NumberLiteral); ok && n.Base == ast.Decimal {
			suffix = "[" + n.Digits + "]"
		}
		return CanonicalABIName(t.Elem) + suffix
	case *ast.UserDefinedTypeName:
		return t.String()
	case *ast.MappingTypeName:
		return t.String()
	default:
		return ""
	}
}

func canonicalElementary(t *ast.ElementaryTypeName) string {
	switch t.Kind {
	case ast.KindAddress:
		return "address"
	case ast.KindBool:
		return "bool"
	case ast.KindString:
		return "string"
	case ast.KindInt:
		return "int" + strconv.Itoa(widthOr(t.Width, DefaultIntWidth))
	case ast.KindUInt:
		return "uint" + strconv.Itoa(widthOr(t.Width, DefaultIntWidth))
	case ast.KindByte:
		return "bytes" + strconv.Itoa(widthOr(t.Width, DefaultByteWidth))
	case ast.KindBytes:
		return "bytes"
	case ast.KindFixed:
		return "fixed128x18"
	case ast.KindUfixed:
		return "ufixed128x18"
	default:
		return ""
	}
}

func widthOr(width, def int) int {
	if width == 0 {
		return def
	}
	return width
}
