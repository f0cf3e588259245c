// Package segment splits a disambiguated token stream into statements so
// formatting can be scoped per-statement.
package segment

import "github.com/sqlfmtgo/sqlfmt/token"

// Statement is a contiguous slice of tokens terminated by a ';' operator
// (included) or by EOF.
type Statement struct {
	Tokens []token.Token
}

// Split cuts tokens before each ';' (inclusive) and before each
// BATCH_SEPARATOR (T-SQL's "GO", exclusive, since GO is not part of either
// surrounding statement's text but still a boundary). The
// trailing span after the last boundary, if non-empty (ignoring a lone EOF
// token), is its own statement. Each statement keeps its own trailing EOF
// marker trimmed; callers format each Statement.Tokens independently and
// join results with the caller's configured blank-line count.
func Split(tokens []token.Token) []Statement {
	var statements []Statement
	var current []token.Token

	flush := func() {
		if len(current) > 0 {
			statements = append(statements, Statement{Tokens: current})
		}
		current = nil
	}

	for _, t := range tokens {
		switch t.Category {
		case token.EOF:
			flush()
		case token.OPERATOR:
			if t.Text == ";" {
				current = append(current, t)
				flush()
				continue
			}
			current = append(current, t)
		case token.BATCH_SEPARATOR:
			flush()
		default:
			current = append(current, t)
		}
	}
	flush()

	return statements
}
