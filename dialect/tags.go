package dialect

import "fmt"

// Tags lists the closed set of dialect tags this package supports.
var Tags = []string{
	"sql", "bigquery", "db2", "hive", "mariadb", "mysql", "n1ql", "plsql",
	"postgresql", "redshift", "singlestoredb", "snowflake", "spark",
	"sqlite", "transactsql", "trino",
}

var registry = buildRegistry()

// Lookup resolves a dialect tag (case-sensitive; "tsql" is accepted as an
// alias of "transactsql"). Returns an error whose
// message names the unknown tag — errs.ConfigError wraps this for the
// option-validation layer.
func Lookup(tag string) (*Dialect, error) {
	if tag == "tsql" {
		tag = "transactsql"
	}
	d, ok := registry[tag]
	if !ok {
		return nil, fmt.Errorf("unknown dialect tag %q", tag)
	}
	return d, nil
}

func buildRegistry() map[string]*Dialect {
	reg := make(map[string]*Dialect, len(Tags))
	for _, d := range []*Dialect{
		newSQLDialect(),
		newPostgreSQLDialect("postgresql"),
		newPostgreSQLDialect("redshift"),
		newMySQLFamilyDialect("mysql"),
		newMySQLFamilyDialect("mariadb"),
		newMySQLFamilyDialect("singlestoredb"),
		newTransactSQLDialect(),
		newSQLiteDialect(),
		newBigQueryDialect(),
		newSnowflakeDialect(),
		newSparkDialect(),
		newHiveDialect(),
		newTrinoDialect(),
		newDB2Dialect(),
		newPLSQLDialect(),
		newN1QLDialect(),
	} {
		reg[d.Tag] = d
	}
	return reg
}

// newSQLDialect is the generic/default "sql" tag: plain ANSI core, no
// dialect-specific extensions.
func newSQLDialect() *Dialect {
	return newANSIDialect("sql")
}

// newPostgreSQLDialect covers both "postgresql" and "redshift" (Redshift is
// Postgres-derived and shares its quoting/placeholder conventions):
// dollar-quoted strings, positional $N parameters, double-quoted
// identifiers.
func newPostgreSQLDialect(tag string) *Dialect {
	d := newANSIDialect(tag)
	addKeywords(d.ReservedKeywords, "ILIKE", "SIMILAR TO", "AT TIME ZONE")
	addKeywords(d.DataTypes, "BYTEA", "JSONB", "SERIAL", "BIGSERIAL", "INTERVAL", "NUMERIC", "TIMESTAMPTZ")
	addKeywords(d.FunctionNames, "ARRAY_AGG", "GENERATE_SERIES", "JSONB_BUILD_OBJECT")
	d.StringStyles = []StringStyle{SingleQuoted, DollarTagged}
	d.IdentifierQuotes = []IdentifierQuoteStyle{DoubleQuoteIdent}
	d.PlaceholderPrefixes = []string{"$"}
	d.BracketArrayAccess = true
	prependOperators(d, "::", "->>", "->")
	return d
}

// newMySQLFamilyDialect covers "mysql", "mariadb", and "singlestoredb":
// backtick identifiers, "#" line comments, ":=" assignment.
func newMySQLFamilyDialect(tag string) *Dialect {
	d := newANSIDialect(tag)
	addKeywords(d.Commands, "REPLACE INTO", "ON DUPLICATE KEY UPDATE")
	addKeywords(d.ReservedKeywords, "IGNORE", "UNSIGNED", "ZEROFILL", "AUTO_INCREMENT", "STRAIGHT_JOIN")
	addKeywords(d.DataTypes, "MEDIUMINT", "LONGTEXT", "MEDIUMTEXT", "TINYTEXT", "ENUM", "SET")
	d.IdentifierQuotes = []IdentifierQuoteStyle{BacktickIdent}
	d.PlaceholderPrefixes = []string{"?"}
	d.LineCommentPrefixes = append(d.LineCommentPrefixes, "#")
	prependOperators(d, "<=>", ":=")
	return d
}

// newTransactSQLDialect covers "transactsql" (alias "tsql"): bracket-quoted
// identifiers, @variables, and the GO batch separator. N'...' nvarchar
// literals lex as a bare "N" identifier followed by an ordinary single-quoted
// string, same as the ANSI core; no dialect table distinguishes them.
func newTransactSQLDialect() *Dialect {
	d := newANSIDialect("transactsql")
	addKeywords(d.Commands, "EXEC", "EXECUTE")
	addKeywords(d.ReservedKeywords, "TOP", "OUTPUT", "IDENTITY", "NOLOCK", "ROWLOCK")
	addKeywords(d.DataTypes, "NVARCHAR", "NCHAR", "DATETIME2", "UNIQUEIDENTIFIER", "MONEY", "BIT", "IMAGE")
	d.IdentifierQuotes = []IdentifierQuoteStyle{BracketIdent, DoubleQuoteIdent}
	d.PlaceholderPrefixes = []string{"@"}
	d.BatchSeparatorKeyword = "GO"
	return d
}

// newSQLiteDialect: "sqlite", bracket or double-quoted identifiers, numbered
// placeholders (?NNN handled as a plain "?" prefix with a following number).
func newSQLiteDialect() *Dialect {
	d := newANSIDialect("sqlite")
	addKeywords(d.Commands, "REPLACE INTO")
	addKeywords(d.ReservedKeywords, "AUTOINCREMENT", "WITHOUT ROWID")
	d.IdentifierQuotes = []IdentifierQuoteStyle{DoubleQuoteIdent, BracketIdent, BacktickIdent}
	d.PlaceholderPrefixes = []string{"?", ":", "@", "$"}
	return d
}

// newBigQueryDialect: "bigquery", backtick identifiers for fully-qualified
// table paths, @name placeholders, array/struct types.
func newBigQueryDialect() *Dialect {
	d := newANSIDialect("bigquery")
	addKeywords(d.ReservedKeywords, "QUALIFY", "EXCEPT", "REPLACE")
	addKeywords(d.DataTypes, "STRUCT", "ARRAY", "BYTES", "GEOGRAPHY", "BIGNUMERIC")
	addKeywords(d.FunctionNames, "GENERATE_ARRAY", "ARRAY_LENGTH", "SAFE_CAST")
	d.IdentifierQuotes = []IdentifierQuoteStyle{BacktickIdent}
	d.PlaceholderPrefixes = []string{"@"}
	d.BracketArrayAccess = true
	return d
}

// newSnowflakeDialect: "snowflake", double-quoted identifiers, "?" and
// ":name" placeholders, "::" casts, VARIANT/OBJECT types.
func newSnowflakeDialect() *Dialect {
	d := newANSIDialect("snowflake")
	addKeywords(d.ReservedKeywords, "QUALIFY", "SAMPLE", "MATCH_RECOGNIZE")
	addKeywords(d.DataTypes, "VARIANT", "OBJECT", "ARRAY", "GEOGRAPHY")
	d.PlaceholderPrefixes = []string{"?", ":"}
	prependOperators(d, "::")
	return d
}

// newSparkDialect: "spark" (Spark SQL), backtick identifiers, LATERAL VIEW.
func newSparkDialect() *Dialect {
	d := newANSIDialect("spark")
	addKeywords(d.Commands, "LATERAL VIEW", "CLUSTER BY", "DISTRIBUTE BY", "SORT BY")
	addKeywords(d.DataTypes, "STRUCT", "ARRAY", "MAP")
	d.IdentifierQuotes = []IdentifierQuoteStyle{BacktickIdent}
	return d
}

// newHiveDialect: "hive", close cousin of Spark SQL.
func newHiveDialect() *Dialect {
	d := newANSIDialect("hive")
	addKeywords(d.Commands, "CLUSTER BY", "DISTRIBUTE BY", "SORT BY", "LATERAL VIEW")
	addKeywords(d.ReservedKeywords, "INSERT OVERWRITE")
	addKeywords(d.DataTypes, "STRUCT", "ARRAY", "MAP", "UNIONTYPE")
	d.IdentifierQuotes = []IdentifierQuoteStyle{BacktickIdent}
	return d
}

// newTrinoDialect: "trino" (formerly Presto), double-quoted identifiers,
// ROW/ARRAY types, "?" positional placeholders.
func newTrinoDialect() *Dialect {
	d := newANSIDialect("trino")
	addKeywords(d.ReservedKeywords, "UNNEST", "WITH ORDINALITY")
	addKeywords(d.DataTypes, "ROW", "ARRAY", "MAP", "JSON")
	prependOperators(d, "||")
	return d
}

// newDB2Dialect: "db2", largely ANSI with FETCH FIRST n ROWS ONLY instead of
// LIMIT and colon-prefixed host variables.
func newDB2Dialect() *Dialect {
	d := newANSIDialect("db2")
	addKeywords(d.ReservedKeywords, "FETCH FIRST", "ROWS ONLY", "WITH UR")
	addKeywords(d.DataTypes, "GRAPHIC", "VARGRAPHIC", "DBCLOB", "DECFLOAT")
	d.PlaceholderPrefixes = []string{"?", ":"}
	return d
}

// newPLSQLDialect: "plsql" (Oracle PL/SQL), double-quoted identifiers,
// CONNECT BY, MINUS instead of EXCEPT.
func newPLSQLDialect() *Dialect {
	d := newANSIDialect("plsql")
	addKeywords(d.Commands, "CONNECT BY", "START WITH")
	addKeywords(d.BinaryCommands, "MINUS")
	addKeywords(d.DataTypes, "VARCHAR2", "NUMBER", "CLOB", "NCLOB", "RAW")
	addKeywords(d.FunctionNames, "NVL", "DECODE", "TO_CHAR", "TO_DATE")
	d.PlaceholderPrefixes = []string{":"}
	return d
}

// newN1QLDialect: "n1ql" (Couchbase N1QL), document-oriented: bracket-array
// access is the dialect's signature feature, backtick-escaped identifiers.
func newN1QLDialect() *Dialect {
	d := newANSIDialect("n1ql")
	addKeywords(d.Commands, "UNNEST", "NEST", "USE KEYS")
	addKeywords(d.DataTypes, "OBJECT", "ARRAY")
	d.IdentifierQuotes = []IdentifierQuoteStyle{BacktickIdent}
	d.PlaceholderPrefixes = []string{"$"}
	d.BracketArrayAccess = true
	return d
}
