// Package sqlfmt is a dialect-aware SQL pretty-printer. Format is the
// single public entry point; the lexer, disambiguator, segmenter and
// statement formatter it wires together each live in their own
// subpackage so they can be tested and reused independently.
package sqlfmt

import (
	"strings"

	"github.com/sqlfmtgo/sqlfmt/format"
	"github.com/sqlfmtgo/sqlfmt/lexer"
	"github.com/sqlfmtgo/sqlfmt/segment"
)

// Option configures a Format call; see the format package's With* functions
// (format.WithLanguage, format.WithKeywordCase, and so on).
type Option = format.Option

// Format pretty-prints query, which may contain one or more ';'- or
// (for dialects that define one) batch-separator-delimited statements.
// Each statement is lexed, disambiguated, segmented and formatted
// independently, then rejoined with FormatOptions.LinesBetweenQueries
// blank lines between them.
func Format(query string, opts ...Option) (string, error) {
	o, err := format.NewOptions(opts...)
	if err != nil {
		return "", err
	}

	tokens := lexer.Lex(query, o.Dialect) // already disambiguated
	statements := segment.Split(tokens)

	var out strings.Builder
	var firstErr error
	for i, stmt := range statements {
		if i > 0 {
			for n := 0; n < o.LinesBetweenQueries+1; n++ {
				out.WriteString("\n")
			}
		}
		rendered, err := format.FormatTokens(stmt.Tokens, o)
		if err != nil && firstErr == nil {
			firstErr = err
		}
		out.WriteString(rendered)
	}

	return out.String(), firstErr
}
