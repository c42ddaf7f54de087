package grammar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"solidus/grammar"
)

func TestParseConstraint(t *testing.T) {
	constraint, err := grammar.ParseConstraint(">=0.4.22 <0.6.0 || ^0.7")
	require.NoError(t, err)
	require.Len(t, constraint.Ranges, 2)

	first := constraint.Ranges[0]
	require.Len(t, first.Comparators, 2)
	assert.Equal(t, ">=", first.Comparators[0].Op)
	assert.Equal(t, []int{0, 4, 22}, first.Comparators[0].Version.Parts)
	assert.Equal(t, "<", first.Comparators[1].Op)

	second := constraint.Ranges[1]
	require.Len(t, second.Comparators, 1)
	assert.Equal(t, "^", second.Comparators[0].Op)
	assert.Equal(t, []int{0, 7}, second.Comparators[0].Version.Parts)

	assert.Equal(t, ">=0.4.22 <0.6.0 || ^0.7", constraint.String())
}

func TestParseConstraintRejectsGarbage(t *testing.T) {
	for _, text := range []string{"", "abc", "^", "0..1", ">=0.5 ||"} {
		_, err := grammar.ParseConstraint(text)
		assert.Error(t, err, "%q should not parse", text)
	}
}

func TestConstraintAdmits(t *testing.T) {
	v056 := grammar.Semver{Major: 0, Minor: 5, Patch: 6}

	tests := []struct {
		constraint string
		admits     bool
	}{
		{"^0.5.6", true},
		{"^0.5.0", true},
		{"^0.5.7", false},
		{"^0.4.24", false},
		{"^0.5", true},
		{"^0", true},
		{"^0.0.3", false},
		{"~0.5.2", true},
		{"~0.4", false},
		{"0.5.6", true},
		{"=0.5.6", true},
		{"0.5", true},
		{"0.5.5", false},
		{">=0.4.22 <0.6.0", true},
		{">=0.4.22 <0.5.0", false},
		{">0.5.6", false},
		{">0.5", false},
		{">0.4", true},
		{"<=0.5.6", true},
		{"<=0.5", true},
		{"<0.5.6", false},
		{"0.4.24 || ^0.5.0", true},
		{"0.4.24 || ^0.6.0", false},
	}

	for _, tt := range tests {
		t.Run(tt.constraint, func(t *testing.T) {
			constraint, err := grammar.ParseConstraint(tt.constraint)
			require.NoError(t, err)
			assert.Equal(t, tt.admits, constraint.Admits(v056))
		})
	}
}

func TestSemverCompare(t *testing.T) {
	a := grammar.Semver{Major: 0, Minor: 5, Patch: 6}
	assert.Equal(t, 0, a.Compare(a))
	assert.Equal(t, -1, a.Compare(grammar.Semver{Major: 0, Minor: 6}))
	assert.Equal(t, 1, a.Compare(grammar.Semver{Major: 0, Minor: 5, Patch: 1}))
	assert.Equal(t, -1, a.Compare(grammar.Semver{Major: 1}))
	assert.Equal(t, "0.5.6", a.String())
}
