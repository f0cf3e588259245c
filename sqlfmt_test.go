package sqlfmt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sqlfmtgo/sqlfmt/format"
)

// These cases exercise the documented formatting scenarios end to end.

func TestFormatScenarioSelectSingleColumn(t *testing.T) {
	out, err := Format("select 1")
	require.NoError(t, err)
	assert.Equal(t, "SELECT\n  1", out)
}

func TestFormatScenarioSelectListAndWhere(t *testing.T) {
	out, err := Format("select a,b from t where x>1")
	require.NoError(t, err)
	assert.Equal(t, "SELECT\n  a,\n  b\nFROM\n  t\nWHERE\n  x > 1", out)
}

func TestFormatScenarioFunctionCallGlued(t *testing.T) {
	out, err := Format("select count(*) from t",
		format.WithLanguage("postgresql"),
		format.WithKeywordCase(format.CaseUpper),
	)
	require.NoError(t, err)
	assert.Contains(t, out, "COUNT(*)")
	assert.NotContains(t, out, "COUNT (*)")
}

func TestFormatScenarioPropertyAccessGlued(t *testing.T) {
	out, err := Format("select a.b from t")
	require.NoError(t, err)
	assert.Contains(t, out, "a.b")
}

func TestFormatScenarioBetweenAndStaysOnOneLine(t *testing.T) {
	out, err := Format("select * from t where x between 1 and 2")
	require.NoError(t, err)
	assert.Contains(t, out, "x BETWEEN 1 AND 2")
}

func TestFormatScenarioCaseForcesMultilineInSelect(t *testing.T) {
	// multilineLists=avoid would otherwise keep every clause on one line;
	// a CASE expression inside a SELECT list overrides that.
	out, err := Format("select case when a then 1 else 2 end from t",
		format.WithMultilineLists(format.MultilineAvoid),
	)
	require.NoError(t, err)
	assert.Contains(t, out, "CASE")
	assert.Contains(t, out, "\n")
}

// Two statements separated by ';' format the same as each half formatted on
// its own, joined by the configured blank-line count.
func TestFormatStatementIndependence(t *testing.T) {
	q1 := "select a from t"
	q2 := "select b from u"

	combined, err := Format(q1+";"+q2, format.WithLinesBetweenQueries(1))
	require.NoError(t, err)

	half1, err := Format(q1+";", format.WithLinesBetweenQueries(1))
	require.NoError(t, err)
	half2, err := Format(q2, format.WithLinesBetweenQueries(1))
	require.NoError(t, err)

	assert.Equal(t, half1+"\n\n"+half2, combined)
}

// Formatting already-formatted output is a no-op.
func TestFormatIsIdempotent(t *testing.T) {
	q := "select a, b from t where x > 1 and y < 2 order by a desc"
	once, err := Format(q)
	require.NoError(t, err)
	twice, err := Format(once)
	require.NoError(t, err)
	assert.Equal(t, once, twice)
}

// A trailing comment survives formatting verbatim.
func TestFormatPreservesComments(t *testing.T) {
	out, err := Format("select a -- trailing comment\nfrom t")
	require.NoError(t, err)
	assert.Contains(t, out, "-- trailing comment")
}

func TestFormatRejectsUnknownDialect(t *testing.T) {
	_, err := Format("select 1", format.WithLanguage("not-a-dialect"))
	require.Error(t, err)
}

func TestFormatRejectsNegativeTabWidth(t *testing.T) {
	_, err := Format("select 1", format.WithTabWidth(-1))
	require.Error(t, err)
}

func TestFormatPlaceholderSubstitution(t *testing.T) {
	out, err := Format("select * from t where id = ?", format.WithParams(format.Params{
		Positional: []string{"42"},
	}))
	require.NoError(t, err)
	assert.Contains(t, out, "id = 42")
}

func TestFormatPlaceholderPassesThroughWithoutParams(t *testing.T) {
	out, err := Format("select * from t where id = ?")
	require.NoError(t, err)
	assert.Contains(t, out, "id = ?")
}

func TestFormatPlaceholderErrorWhenUnresolved(t *testing.T) {
	_, err := Format("select * from t where id = ? and name = ?", format.WithParams(format.Params{
		Positional: []string{"42"},
	}))
	require.Error(t, err)
}

func TestFormatUseTabsIndent(t *testing.T) {
	out, err := Format("select 1", format.WithUseTabs(true))
	require.NoError(t, err)
	assert.Equal(t, "SELECT\n\t1", out)
}

// A synthesized alias keyword matches the casing the query itself already
// uses, not the (default, upper) KeywordCase option.
func TestFormatSynthesizedAliasMatchesQueryCase(t *testing.T) {
	out, err := Format("select a b from t", format.WithAliasAs(format.AliasAlways))
	require.NoError(t, err)
	assert.Contains(t, out, "a as b")
	assert.NotContains(t, out, "a AS b")
}

func TestFormatSynthesizedAliasMatchesUppercaseQuery(t *testing.T) {
	out, err := Format("SELECT a b FROM t", format.WithAliasAs(format.AliasAlways))
	require.NoError(t, err)
	assert.Contains(t, out, "a AS b")
}

func TestFormatNewlineBeforeOpenParen(t *testing.T) {
	withoutBreak, err := Format("select (1 + 2) from t",
		format.WithMultilineLists(format.MultilineAvoid),
	)
	require.NoError(t, err)
	assert.Contains(t, withoutBreak, "SELECT (1 + 2)")

	withBreak, err := Format("select (1 + 2) from t",
		format.WithMultilineLists(format.MultilineAvoid),
		format.WithNewlineBeforeOpenParen(true),
	)
	require.NoError(t, err)
	assert.Contains(t, withBreak, "SELECT\n")
	assert.NotContains(t, withBreak, "SELECT (1 + 2)")
}

func TestFormatNewlineBeforeCloseParenDisabled(t *testing.T) {
	out, err := Format("select * from (select 1 from t) x",
		format.WithNewlineBeforeCloseParen(false),
	)
	require.NoError(t, err)
	assert.NotContains(t, out, "\n)")
}
