package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sqlfmtgo/sqlfmt/dialect"
	"github.com/sqlfmtgo/sqlfmt/lexer"
)

func ansiDialect(t *testing.T) *dialect.Dialect {
	t.Helper()
	d, err := dialect.Lookup("sql")
	require.NoError(t, err)
	return d
}

func TestPlanAliasesPreserveMakesNoChanges(t *testing.T) {
	tokens := lexer.Lex("select a as b from t", ansiDialect(t))
	plan := planAliases(tokens, AliasPreserve)
	assert.Empty(t, plan.removeAS)
	assert.Empty(t, plan.insertAS)
}

func TestPlanAliasesNeverRemovesAS(t *testing.T) {
	tokens := lexer.Lex("select a as b from t", ansiDialect(t))
	plan := planAliases(tokens, AliasNever)
	var sawRemoval bool
	for i, tok := range tokens {
		if isASKeyword(tok) {
			assert.True(t, plan.removeAS[i])
			sawRemoval = true
		}
	}
	assert.True(t, sawRemoval)
}

func TestPlanAliasesAlwaysInsertsImplicitAlias(t *testing.T) {
	tokens := lexer.Lex("select a b from t", ansiDialect(t))
	plan := planAliases(tokens, AliasAlways)
	var sawInsertion bool
	for range plan.insertAS {
		sawInsertion = true
	}
	assert.True(t, sawInsertion)
}

func TestPlanAliasesAlwaysSkipsQualifiedName(t *testing.T) {
	tokens := lexer.Lex("select t.a from t", ansiDialect(t))
	plan := planAliases(tokens, AliasAlways)
	assert.Empty(t, plan.insertAS)
}
