package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sqlfmtgo/sqlfmt/dialect"
	"github.com/sqlfmtgo/sqlfmt/token"
)

func ansi(t *testing.T) *dialect.Dialect {
	t.Helper()
	d, err := dialect.Lookup("sql")
	require.NoError(t, err)
	return d
}

func categories(tokens []token.Token) []token.Category {
	var out []token.Category
	for _, tok := range tokens {
		out = append(out, tok.Category)
	}
	return out
}

func TestLexSimpleSelect(t *testing.T) {
	tokens := Lex("select 1", ansi(t))
	require.Len(t, tokens, 3)
	assert.Equal(t, token.RESERVED_COMMAND, tokens[0].Category)
	assert.Equal(t, "select", tokens[0].Text)
	assert.Equal(t, "SELECT", tokens[0].Value)
	assert.Equal(t, token.NUMBER, tokens[1].Category)
	assert.Equal(t, token.EOF, tokens[2].Category)
}

func TestLexMultiWordReservedWordLongestMatch(t *testing.T) {
	tokens := Lex("select a from t group by a", ansi(t))
	var sawGroupBy bool
	for _, tok := range tokens {
		if tok.Category == token.RESERVED_COMMAND && tok.Value == "GROUP BY" {
			sawGroupBy = true
		}
	}
	assert.True(t, sawGroupBy)
}

func TestLexStringLiteralSingleQuoted(t *testing.T) {
	tokens := Lex("select 'it''s'", ansi(t))
	require.GreaterOrEqual(t, len(tokens), 2)
	str := tokens[1]
	assert.Equal(t, token.STRING, str.Category)
	assert.Equal(t, `'it''s'`, str.Text)
}

func TestLexQuotedIdentifierDoubleQuote(t *testing.T) {
	tokens := Lex(`select "My Column" from t`, ansi(t))
	require.GreaterOrEqual(t, len(tokens), 2)
	ident := tokens[1]
	assert.Equal(t, token.QUOTED_IDENTIFIER, ident.Category)
	assert.Equal(t, "My Column", ident.Value)
}

func TestLexLineComment(t *testing.T) {
	tokens := Lex("select 1 -- trailing note\n", ansi(t))
	var sawComment bool
	for _, tok := range tokens {
		if tok.Category == token.LINE_COMMENT {
			sawComment = true
			assert.Equal(t, "-- trailing note", tok.Text)
		}
	}
	assert.True(t, sawComment)
}

func TestLexBlockComment(t *testing.T) {
	tokens := Lex("select /* note */ 1", ansi(t))
	assert.Equal(t, token.BLOCK_COMMENT, tokens[1].Category)
}

func TestLexOperatorsLongestMatchFirst(t *testing.T) {
	tokens := Lex("a <= b", ansi(t))
	require.GreaterOrEqual(t, len(tokens), 3)
	assert.Equal(t, "<=", tokens[1].Text)
}

func TestLexPlaceholderQuestionMark(t *testing.T) {
	tokens := Lex("select ? from t", ansi(t))
	assert.Equal(t, token.PLACEHOLDER, tokens[1].Category)
	assert.Equal(t, "?", tokens[1].Text)
}

func TestLexPostgresDollarTagged(t *testing.T) {
	d, err := dialect.Lookup("postgresql")
	require.NoError(t, err)
	tokens := Lex(`select $tag$a ; b$tag$`, d)
	assert.Equal(t, token.STRING, tokens[1].Category)
	assert.Equal(t, "$tag$a ; b$tag$", tokens[1].Text)
}

func TestLexTransactSQLBracketIdentifier(t *testing.T) {
	d, err := dialect.Lookup("transactsql")
	require.NoError(t, err)
	tokens := Lex("select [My Table].[Col] from [My Table]", d)
	assert.Equal(t, token.QUOTED_IDENTIFIER, tokens[1].Category)
	assert.Equal(t, "My Table", tokens[1].Value)
}

func TestLexTransactSQLBatchSeparator(t *testing.T) {
	d, err := dialect.Lookup("transactsql")
	require.NoError(t, err)
	tokens := Lex("select 1\nGO\nselect 2", d)
	var found bool
	for _, tok := range tokens {
		if tok.Category == token.BATCH_SEPARATOR {
			found = true
		}
	}
	assert.True(t, found)
}

func TestLexFunctionNameRequiresParen(t *testing.T) {
	tokens := Lex("select count(*) from t", ansi(t))
	var cats []token.Category
	for _, tok := range tokens {
		if tok.Text == "count" || tok.Text == "COUNT" {
			cats = append(cats, tok.Category)
		}
	}
	require.Len(t, cats, 1)
	assert.Equal(t, token.RESERVED_FUNCTION_NAME, cats[0])
}

func TestLexFunctionNameWithoutParenBecomesIdentifier(t *testing.T) {
	tokens := Lex("select count from t", ansi(t))
	assert.Equal(t, token.IDENTIFIER, tokens[1].Category)
}

func TestLexDataTypeBecomesParameterized(t *testing.T) {
	tokens := Lex("create table t (a varchar(10))", ansi(t))
	var found bool
	for _, tok := range tokens {
		if tok.Category == token.RESERVED_PARAMETERIZED_DATA_TYPE {
			found = true
		}
	}
	assert.True(t, found)
}

func TestLexArrayIdentifier(t *testing.T) {
	pg, err := dialect.Lookup("postgresql")
	require.NoError(t, err)
	tokens := Lex("select tags[1] from t", pg)
	assert.Equal(t, token.ARRAY_IDENTIFIER, tokens[1].Category)
}

func TestLexArrayIdentifierRequiresBracketArrayAccess(t *testing.T) {
	tokens := Lex("select tags[1] from t", ansi(t))
	assert.Equal(t, token.IDENTIFIER, tokens[1].Category)
	assert.Equal(t, token.BLOCK_START, tokens[2].Category)
}

func TestLexReservedWordAfterDotBecomesIdentifier(t *testing.T) {
	tokens := Lex("select t.select from t", ansi(t))
	require.Len(t, tokens, 7)
	assert.Equal(t, token.IDENTIFIER, tokens[3].Category)
}

func TestLexPreservesSourceViaWhitespaceAndText(t *testing.T) {
	source := "select   1 ,2\nfrom t"
	tokens := Lex(source, ansi(t))
	var rebuilt string
	for _, tok := range tokens {
		rebuilt += tok.WhitespaceBefore + tok.Text
	}
	assert.Equal(t, source, rebuilt)
}
