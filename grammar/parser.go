package grammar

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
)

var constraintParser = participle.MustBuild[Constraint](
	participle.Lexer(VersionLexer),
	participle.Elide("Whitespace"),
	participle.UseLookahead(2),
)

// ParseConstraint parses the value of a "pragma solidity" directive.
func ParseConstraint(text string) (*Constraint, error) {
	constraint, err := constraintParser.ParseString("", strings.TrimSpace(text))
	if err != nil {
		if pe, ok := err.(participle.Error); ok {
			return nil, fmt.Errorf("column %d: %s", pe.Position().Column, pe.Message())
		}
		return nil, err
	}
	return constraint, nil
}

// Semver is a complete version number.
type Semver struct {
	Major, Minor, Patch int
}

// Compare returns -1, 0 or 1 as s is lower than, equal to or higher than o.
func (s Semver) Compare(o Semver) int {
	switch {
	case s.Major != o.Major:
		return sign(s.Major - o.Major)
	case s.Minor != o.Minor:
		return sign(s.Minor - o.Minor)
	default:
		return sign(s.Patch - o.Patch)
	}
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}

// Admits reports whether v satisfies at least one range of the constraint.
func (c *Constraint) Admits(v Semver) bool {
	for _, r := range c.Ranges {
		if r.admits(v) {
			return true
		}
	}
	return false
}

func (r *Range) admits(v Semver) bool {
	for _, cmp := range r.Comparators {
		if !cmp.admits(v) {
			return false
		}
	}
	return true
}

// admits treats missing components as wildcards, so "0.5" stands for every 0.5.x.
func (c *Comparator) admits(v Semver) bool {
	low := c.Version.lower()
	high := c.Version.upper()

	switch c.Op {
	case "", "=":
		return v.Compare(low) >= 0 && v.Compare(high) < 0
	case ">=":
		return v.Compare(low) >= 0
	case ">":
		return v.Compare(high) >= 0
	case "<=":
		return v.Compare(high) < 0
	case "<":
		return v.Compare(low) < 0
	case "~":
		return v.Compare(low) >= 0 && v.Compare(c.Version.tildeUpper()) < 0
	case "^":
		return v.Compare(low) >= 0 && v.Compare(c.Version.caretUpper()) < 0
	}
	return false
}

func (v *Version) part(i int) int {
	if i < len(v.Parts) {
		return v.Parts[i]
	}
	return 0
}

// lower is the smallest version the written prefix matches
func (v *Version) lower() Semver {
	return Semver{v.part(0), v.part(1), v.part(2)}
}

// upper is the first version past everything the written prefix matches
func (v *Version) upper() Semver {
	switch len(v.Parts) {
	case 1:
		return Semver{v.part(0) + 1, 0, 0}
	case 2:
		return Semver{v.part(0), v.part(1) + 1, 0}
	default:
		return Semver{v.part(0), v.part(1), v.part(2) + 1}
	}
}

// tildeUpper allows patch-level changes, or minor-level ones when only the
// major version is written.
func (v *Version) tildeUpper() Semver {
	if len(v.Parts) == 1 {
		return Semver{v.part(0) + 1, 0, 0}
	}
	return Semver{v.part(0), v.part(1) + 1, 0}
}

// caretUpper allows changes that do not touch the left-most non-zero component.
func (v *Version) caretUpper() Semver {
	major, minor := v.part(0), v.part(1)
	switch {
	case major > 0 || len(v.Parts) == 1:
		return Semver{major + 1, 0, 0}
	case minor > 0 || len(v.Parts) == 2:
		return Semver{0, minor + 1, 0}
	default:
		return Semver{0, 0, v.part(2) + 1}
	}
}
