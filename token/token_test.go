package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		word string
		want Kind
	}{
		{"contract", KEYWORD},
		{"payable", KEYWORD},
		{"ether", KEYWORD},
		{"typeof", RESERVED},
		{"unchecked", RESERVED},
		{"balance", IDENT},
		{"GeneralERC20", IDENT},
		{"uint256", IDENT},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.word))
		})
	}
}

func TestIsDelimiter(t *testing.T) {
	for _, d := range []string{";", "=>", "<<=", "{", "."} {
		assert.True(t, IsDelimiter(d), d)
	}
	assert.False(t, IsDelimiter("@"))
	assert.False(t, IsDelimiter("abc"))
}

func TestKeywordsContainsDeclarations(t *testing.T) {
	kws := Keywords()
	assert.Contains(t, kws, "function")
	assert.Contains(t, kws, "constructor")
	assert.NotContains(t, kws, "typeof")
}
