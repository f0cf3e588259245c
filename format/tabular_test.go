package format

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sqlfmtgo/sqlfmt/lexer"
)

func TestTabulateNoopForStandardNonTabulated(t *testing.T) {
	opts, err := NewOptions()
	require.NoError(t, err)
	out := tabulate("SELECT\n  a\nFROM\n  t", opts)
	assert.Equal(t, "SELECT\n  a\nFROM\n  t", out)
}

func TestTabulateAliasAlignsASColumn(t *testing.T) {
	tokens := lexer.Lex("select a as x, bbbbb as y from t", ansiDialect(t))
	opts, err := NewOptions(WithTabulateAlias(true))
	require.NoError(t, err)
	out, err := FormatTokens(tokens, opts)
	require.NoError(t, err)

	var asCols []int
	for _, line := range strings.Split(out, "\n") {
		if idx := asBoundary(line); idx > 0 {
			asCols = append(asCols, idx)
		}
	}
	require.Len(t, asCols, 2)
	assert.Equal(t, asCols[0], asCols[1])
}

func TestTabulateCommaColumnLeftAlignment(t *testing.T) {
	opts, err := NewOptions(WithIndentStyle(IndentTabularLeft))
	require.NoError(t, err)
	in := "SELECT\n  a\n  , b\nFROM\n  t"
	out := tabulate(in, opts)
	assert.Contains(t, out, ", b")
}

func TestTabulatePadsReservedCommandColumn(t *testing.T) {
	tokens := lexer.Lex("select a from t", ansiDialect(t))
	opts, err := NewOptions(
		WithIndentStyle(IndentTabularLeft),
		WithMultilineLists(MultilineAvoid),
	)
	require.NoError(t, err)
	out, err := FormatTokens(tokens, opts)
	require.NoError(t, err)

	assert.NotContains(t, out, "\x00")
	assert.Contains(t, out, "SELECT")
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "SELECT") {
			assert.GreaterOrEqual(t, len(line)-len(strings.TrimLeft(line[len("SELECT"):], " ")), 4)
		}
	}
}
