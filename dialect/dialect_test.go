package dialect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupKnownTags(t *testing.T) {
	for _, tag := range Tags {
		d, err := Lookup(tag)
		require.NoError(t, err, tag)
		assert.Equal(t, tag, d.Tag)
	}
}

func TestLookupTSQLAlias(t *testing.T) {
	d, err := Lookup("tsql")
	require.NoError(t, err)
	assert.Equal(t, "transactsql", d.Tag)
}

func TestLookupUnknownTag(t *testing.T) {
	_, err := Lookup("cobol-sql")
	assert.Error(t, err)
}

func TestKeywordSetNormalizesWhitespaceAndCase(t *testing.T) {
	set := NewKeywordSet("group by")
	assert.True(t, set.Contains("GROUP BY"))
	assert.True(t, set.Contains("group   by"))
	assert.False(t, set.Contains("grouping"))
}

func TestPostgresAcceptsDollarTagged(t *testing.T) {
	d, err := Lookup("postgresql")
	require.NoError(t, err)
	assert.Contains(t, d.StringStyles, DollarTagged)
}

func TestTransactSQLUsesBracketIdentifiers(t *testing.T) {
	d, err := Lookup("transactsql")
	require.NoError(t, err)
	assert.Contains(t, d.IdentifierQuotes, BracketIdent)
	assert.Equal(t, "GO", d.BatchSeparatorKeyword)
}

func TestMySQLFamilySharesBacktickIdentifiers(t *testing.T) {
	for _, tag := range []string{"mysql", "mariadb", "singlestoredb"} {
		d, err := Lookup(tag)
		require.NoError(t, err, tag)
		assert.Contains(t, d.IdentifierQuotes, BacktickIdent, tag)
	}
}

func TestDialectsAreIndependentCopies(t *testing.T) {
	mysql, err := Lookup("mysql")
	require.NoError(t, err)
	pg, err := Lookup("postgresql")
	require.NoError(t, err)

	mysql.ReservedKeywords["ZZZ_TEST_ONLY"] = struct{}{}
	assert.False(t, pg.ReservedKeywords.Contains("ZZZ_TEST_ONLY"))
}
