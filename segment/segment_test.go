package segment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sqlfmtgo/sqlfmt/dialect"
	"github.com/sqlfmtgo/sqlfmt/lexer"
)

func ansi(t *testing.T) *dialect.Dialect {
	t.Helper()
	d, err := dialect.Lookup("sql")
	require.NoError(t, err)
	return d
}

func TestSplitSingleStatementNoSemicolon(t *testing.T) {
	tokens := lexer.Lex("select 1", ansi(t))
	stmts := Split(tokens)
	require.Len(t, stmts, 1)
}

func TestSplitTwoStatements(t *testing.T) {
	tokens := lexer.Lex("select 1; select 2", ansi(t))
	stmts := Split(tokens)
	require.Len(t, stmts, 2)
	assert.Equal(t, ";", stmts[0].Tokens[len(stmts[0].Tokens)-1].Text)
}

func TestSplitTrailingSemicolonNoEmptyStatement(t *testing.T) {
	tokens := lexer.Lex("select 1;", ansi(t))
	stmts := Split(tokens)
	require.Len(t, stmts, 1)
}

func TestSplitIgnoresSemicolonInsideString(t *testing.T) {
	tokens := lexer.Lex("select ';' from t; select 2", ansi(t))
	stmts := Split(tokens)
	require.Len(t, stmts, 2)
}

func TestSplitBatchSeparator(t *testing.T) {
	d, err := dialect.Lookup("transactsql")
	require.NoError(t, err)
	tokens := lexer.Lex("select 1\nGO\nselect 2", d)
	stmts := Split(tokens)
	require.Len(t, stmts, 2)
	for _, s := range stmts {
		for _, tok := range s.Tokens {
			assert.NotEqual(t, "GO", tok.Value)
		}
	}
}
