package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sqlfmtgo/sqlfmt/errs"
)

func TestNewOptionsDefaults(t *testing.T) {
	o, err := NewOptions()
	require.NoError(t, err)
	assert.Equal(t, "sql", o.Dialect.Tag)
	assert.Equal(t, 2, o.TabWidth)
	assert.Equal(t, CaseUpper, o.KeywordCase)
}

func TestNewOptionsUnknownDialectIsConfigError(t *testing.T) {
	_, err := NewOptions(WithLanguage("plpgsql-nonexistent"))
	require.Error(t, err)
	var cfgErr errs.ConfigError
	assert.ErrorAs(t, err, &cfgErr)
}

func TestNewOptionsNegativeTabWidthIsConfigError(t *testing.T) {
	_, err := NewOptions(WithTabWidth(-1))
	require.Error(t, err)
	var cfgErr errs.ConfigError
	assert.ErrorAs(t, err, &cfgErr)
}

func TestNewOptionsNegativeExpressionWidthIsConfigError(t *testing.T) {
	_, err := NewOptions(WithExpressionWidth(-1))
	require.Error(t, err)
}

func TestNewOptionsNegativeLinesBetweenQueriesIsConfigError(t *testing.T) {
	_, err := NewOptions(WithLinesBetweenQueries(-1))
	require.Error(t, err)
}

func TestNewOptionsNegativeMultilineCountIsConfigError(t *testing.T) {
	_, err := NewOptions(WithMultilineLists(MultilineCount(-1)))
	require.Error(t, err)
}

func TestNewOptionsAcceptsKnownDialect(t *testing.T) {
	o, err := NewOptions(WithLanguage("postgresql"))
	require.NoError(t, err)
	assert.Equal(t, "postgresql", o.Dialect.Tag)
}

func TestIndentUnitUsesTabsWhenConfigured(t *testing.T) {
	o, err := NewOptions(WithUseTabs(true))
	require.NoError(t, err)
	assert.Equal(t, "\t", o.indentUnit())
}

func TestIndentUnitDefaultsToTwoSpacesWhenTabWidthUnset(t *testing.T) {
	o := FormatOptions{}
	assert.Equal(t, "  ", o.indentUnit())
}
