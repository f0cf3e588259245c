// Package dialect holds the immutable, per-SQL-dialect configuration the
// lexer and formatter are parameterized over: reserved-word sets, operator
// lists, quote styles, and placeholder syntaxes.
//
// A Dialect is built once (in this package's init-time tables) and never
// mutated afterwards, so instances may be freely shared across goroutines.
package dialect

import "strings"

// StringStyle enumerates the literal quoting conventions a dialect accepts.
type StringStyle int

const (
	SingleQuoted StringStyle = iota
	DoubleQuoted
	BacktickQuoted
	DollarTagged
	BitPrefixed
	HexPrefixed
)

// IdentifierQuoteStyle enumerates the quoted-identifier conventions.
type IdentifierQuoteStyle int

const (
	DoubleQuoteIdent IdentifierQuoteStyle = iota
	BacktickIdent
	BracketIdent
)

// KeywordSet is an immutable set of uppercased, whitespace-normalized
// reserved-word strings. Multi-word entries (e.g. "GROUP BY") are permitted;
// the lexer tries the longest whitespace-collapsed match first.
type KeywordSet map[string]struct{}

// Contains reports whether the whitespace-normalized, uppercased form of s is
// a member of the set.
func (k KeywordSet) Contains(s string) bool {
	_, ok := k[normalizeKeyword(s)]
	return ok
}

func normalizeKeyword(s string) string {
	return strings.ToUpper(strings.Join(strings.Fields(s), " "))
}

// NewKeywordSet builds a KeywordSet from plain words, normalizing each entry.
func NewKeywordSet(words ...string) KeywordSet {
	set := make(KeywordSet, len(words))
	for _, w := range words {
		set[normalizeKeyword(w)] = struct{}{}
	}
	return set
}

// union returns a new KeywordSet containing every entry of all inputs.
func union(sets ...KeywordSet) KeywordSet {
	out := make(KeywordSet)
	for _, s := range sets {
		for k := range s {
			out[k] = struct{}{}
		}
	}
	return out
}

// Dialect is the static table the lexer and formatter consume. Zero value is
// not meaningful; always obtain one via Lookup.
type Dialect struct {
	Tag string

	Commands         KeywordSet
	BinaryCommands   KeywordSet
	DependentClauses KeywordSet
	JoinConditions   KeywordSet
	LogicalOperators KeywordSet
	ReservedKeywords KeywordSet
	FunctionNames    KeywordSet
	DataTypes        KeywordSet
	CaseStart        KeywordSet
	CaseEnd          KeywordSet

	// Operators is tried longest-match-first: the lexer picks the longest
	// entry that matches, so "<=" wins over "<" whatever the slice order.
	Operators []string

	StringStyles        []StringStyle
	IdentifierQuotes    []IdentifierQuoteStyle
	PlaceholderPrefixes []string

	// BracketArrayAccess enables `identifier[...]`/`keyword[...]` subscript
	// recognition: the lexer classifies an identifier or ARRAY keyword
	// immediately followed by `[` as ARRAY_IDENTIFIER/ARRAY_KEYWORD instead
	// of leaving the brackets to be parsed as an ordinary BLOCK_START/END
	// pair, for dialects with array/subscript syntax (Postgres, BigQuery,
	// N1QL). Dialects that leave this false never see the array categories.
	BracketArrayAccess bool

	// LineCommentPrefixes lists all the run-to-end-of-line comment openers,
	// e.g. {"--"} for ANSI, {"--", "#"} for MySQL-family dialects.
	LineCommentPrefixes []string

	// BatchSeparatorKeyword, when non-empty, is a bare start-of-line word
	// (case-insensitive) that the lexer recognizes as an additional statement
	// boundary distinct from ';' — T-SQL's "GO".
	BatchSeparatorKeyword string
}

// IsKeyword reports whether s (in any casing, any internal whitespace run)
// matches any of the dialect's reserved-word categories.
func (d *Dialect) IsKeyword(s string) bool {
	return d.Commands.Contains(s) || d.BinaryCommands.Contains(s) ||
		d.DependentClauses.Contains(s) || d.JoinConditions.Contains(s) ||
		d.LogicalOperators.Contains(s) || d.ReservedKeywords.Contains(s) ||
		d.FunctionNames.Contains(s) || d.DataTypes.Contains(s) ||
		d.CaseStart.Contains(s) || d.CaseEnd.Contains(s)
}

// AcceptsPlaceholderPrefix reports whether r begins a placeholder token in
// this dialect.
func (d *Dialect) AcceptsPlaceholderPrefix(r rune) bool {
	for _, p := range d.PlaceholderPrefixes {
		if len(p) > 0 && rune(p[0]) == r {
			return true
		}
	}
	return false
}
