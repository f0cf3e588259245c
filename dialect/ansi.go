package dialect

// ansiCore is the shared reserved-word base every dialect in the registry
// layers its own additions onto or removes entries from: one KeywordSet per
// lexical category, rather than a single flat reserved-word set, so the
// lexer can assign the right Category on a match instead of reclassifying
// afterwards.
//
// These tables are representative rather than exhaustive — covering the
// clauses and functions a pretty-printer actually needs to recognize the
// shape of a statement, not a complete reference of every keyword a given
// engine accepts.
var ansiCore = struct {
	commands, binaryCommands, dependentClauses, joinConditions,
	logicalOperators, reservedKeywords, functionNames, dataTypes,
	caseStart, caseEnd KeywordSet
}{
	commands: NewKeywordSet(
		"SELECT", "FROM", "WHERE", "GROUP BY", "HAVING", "ORDER BY",
		"LIMIT", "OFFSET", "INSERT INTO", "VALUES", "UPDATE", "SET",
		"DELETE FROM", "CREATE TABLE", "CREATE INDEX", "DROP TABLE",
		"DROP INDEX", "ALTER TABLE", "TRUNCATE TABLE", "WITH",
		"RETURNING", "WINDOW", "EXPLAIN",
	),
	binaryCommands: NewKeywordSet(
		"UNION", "UNION ALL", "INTERSECT", "EXCEPT",
		"JOIN", "INNER JOIN", "LEFT JOIN", "LEFT OUTER JOIN",
		"RIGHT JOIN", "RIGHT OUTER JOIN", "FULL JOIN", "FULL OUTER JOIN",
		"CROSS JOIN", "NATURAL JOIN",
	),
	dependentClauses: NewKeywordSet(
		"WHEN", "ELSE", "FILTER",
	),
	joinConditions: NewKeywordSet(
		"ON", "USING",
	),
	logicalOperators: NewKeywordSet(
		"AND", "OR", "XOR",
	),
	reservedKeywords: NewKeywordSet(
		"AS", "ASC", "DESC", "DISTINCT", "ALL", "ANY", "SOME", "NULL", "NOT",
		"IN", "BETWEEN", "LIKE", "ILIKE", "IS", "EXISTS", "THEN",
		"CASCADE", "IF EXISTS", "IF NOT EXISTS",
		"PRIMARY KEY", "FOREIGN KEY", "REFERENCES", "UNIQUE", "CHECK",
		"DEFAULT", "CONSTRAINT", "NULLS FIRST", "NULLS LAST",
		"OVER", "PARTITION BY", "ROWS", "RANGE", "GROUPS",
		"UNBOUNDED", "PRECEDING", "FOLLOWING", "CURRENT ROW",
		"RECURSIVE", "TEMPORARY", "CONCURRENTLY", "FOR UPDATE", "FOR SHARE",
		"ADD COLUMN", "DROP COLUMN", "RENAME COLUMN", "RENAME TO", "TO",
		"INTO", "DO", "NOTHING", "CONFLICT",
	),
	functionNames: NewKeywordSet(
		"COUNT", "SUM", "AVG", "MIN", "MAX", "COALESCE", "NULLIF",
		"CAST", "EXTRACT", "SUBSTRING", "TRIM", "CONCAT",
		"ARRAY_AGG", "STRING_AGG", "ROW_NUMBER", "RANK", "DENSE_RANK",
		"LEAD", "LAG", "FIRST_VALUE", "LAST_VALUE", "NOW", "LENGTH",
		"UPPER", "LOWER", "ROUND", "ABS", "COALESCE",
	),
	dataTypes: NewKeywordSet(
		"INT", "INTEGER", "BIGINT", "SMALLINT", "TINYINT",
		"VARCHAR", "CHAR", "TEXT", "BOOLEAN", "BOOL",
		"DATE", "TIME", "TIMESTAMP", "DATETIME",
		"NUMERIC", "DECIMAL", "FLOAT", "DOUBLE", "REAL",
		"UUID", "JSON", "BLOB",
	),
	caseStart: NewKeywordSet("CASE"),
	caseEnd:   NewKeywordSet("END"),
}

// commonOperators is tried longest-match-first; dialect-specific additions
// are prepended, and since the lexer picks the longest matching entry, the
// slice order does not affect which operator matches (entries here are
// listed longest-to-shortest for readability).
var commonOperators = []string{
	"<=", ">=", "<>", "!=", "||",
	"<<", ">>",
	"=", "<", ">", "+", "-", "*", "/", "%",
	"&", "|", "^", "~", ":", ";", "?", "$",
}

var commonLineCommentPrefixes = []string{"--"}

func cloneKeywordSet(s KeywordSet) KeywordSet {
	out := make(KeywordSet, len(s))
	for k := range s {
		out[k] = struct{}{}
	}
	return out
}

// newANSIDialect returns a fresh Dialect seeded from ansiCore; callers mutate
// the returned value's maps/slices to add or remove dialect-specific entries
// before registering it.
func newANSIDialect(tag string) *Dialect {
	return &Dialect{
		Tag:                 tag,
		Commands:            cloneKeywordSet(ansiCore.commands),
		BinaryCommands:      cloneKeywordSet(ansiCore.binaryCommands),
		DependentClauses:    cloneKeywordSet(ansiCore.dependentClauses),
		JoinConditions:      cloneKeywordSet(ansiCore.joinConditions),
		LogicalOperators:    cloneKeywordSet(ansiCore.logicalOperators),
		ReservedKeywords:    cloneKeywordSet(ansiCore.reservedKeywords),
		FunctionNames:       cloneKeywordSet(ansiCore.functionNames),
		DataTypes:           cloneKeywordSet(ansiCore.dataTypes),
		CaseStart:           cloneKeywordSet(ansiCore.caseStart),
		CaseEnd:             cloneKeywordSet(ansiCore.caseEnd),
		Operators:           append([]string{}, commonOperators...),
		StringStyles:        []StringStyle{SingleQuoted},
		IdentifierQuotes:    []IdentifierQuoteStyle{DoubleQuoteIdent},
		PlaceholderPrefixes: []string{"?"},
		LineCommentPrefixes: append([]string{}, commonLineCommentPrefixes...),
	}
}

func addKeywords(set KeywordSet, words ...string) {
	for _, w := range words {
		set[normalizeKeyword(w)] = struct{}{}
	}
}

func prependOperators(d *Dialect, ops ...string) {
	d.Operators = append(append([]string{}, ops...), d.Operators...)
}
