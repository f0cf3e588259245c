// Package format implements the indentation/output buffer, inline-block
// detector, alias engine, statement formatter state machine, tabular
// post-processor, and parameter substitution, plus the FormatOptions
// record and FormatTokens entry point that make up the core's external
// interface.
package format

import (
	"github.com/sqlfmtgo/sqlfmt/dialect"
	"github.com/sqlfmtgo/sqlfmt/errs"
)

// CaseMode controls how a token class is cased on output.
type CaseMode int

const (
	CasePreserve CaseMode = iota
	CaseUpper
	CaseLower
)

func parseCaseMode(name string) (CaseMode, bool) {
	switch name {
	case "", "preserve":
		return CasePreserve, true
	case "upper":
		return CaseUpper, true
	case "lower":
		return CaseLower, true
	default:
		return 0, false
	}
}

// IndentStyle selects standard indentation or one of the two tabular modes.
type IndentStyle int

const (
	IndentStandard IndentStyle = iota
	IndentTabularLeft
	IndentTabularRight
)

// LogicalOperatorNewlinePosition selects where the newline falls relative to
// AND/OR when a logical operator breaks across lines.
type LogicalOperatorNewlinePosition int

const (
	LogicalOperatorNewlineBefore LogicalOperatorNewlinePosition = iota
	LogicalOperatorNewlineAfter
)

// CommaPosition selects where commas land in multi-line lists. Only 'after'
// (default) and 'before' place the comma itself; 'tabular' renders exactly
// as 'after', and the tabular post-processor does not move those commas.
type CommaPosition int

const (
	CommaAfter CommaPosition = iota
	CommaBefore
	CommaTabular
)

// AliasAsMode selects the alias-engine policy.
type AliasAsMode int

const (
	AliasPreserve AliasAsMode = iota
	AliasAlways
	AliasNever
)

// MultilineListsMode is the multilineLists decision: a fixed policy name,
// or a positive integer clause-count threshold.
type MultilineListsMode struct {
	name  string // "always" | "avoid" | "expressionWidth" | "count"
	count int    // valid when name == "count"
}

var (
	MultilineAlways          = MultilineListsMode{name: "always"}
	MultilineAvoid           = MultilineListsMode{name: "avoid"}
	MultilineExpressionWidth = MultilineListsMode{name: "expressionWidth"}
)

// MultilineCount returns the "Integer N" policy: true iff top-level clause
// count exceeds n, or projected width exceeds ExpressionWidth.
func MultilineCount(n int) MultilineListsMode {
	return MultilineListsMode{name: "count", count: n}
}

// Params holds caller-supplied placeholder substitutions: a positional list
// (consumed in encounter order for "?"-style placeholders) and/or a keyed
// map (for ":name"/"@name"/"$name" placeholders, also accepting numeric keys
// for "$1"-style placeholders addressed by name).
type Params struct {
	Positional []string
	Named      map[string]string
}

// Option mutates a FormatOptions being built; see the With* constructors
// below.
type Option func(*FormatOptions)

// FormatOptions is the full, validated options record the core consumes.
// Build one with NewOptions, which applies DefaultOptions and validates the
// result.
type FormatOptions struct {
	Dialect *dialect.Dialect

	TabWidth int
	UseTabs  bool

	KeywordCase    CaseMode
	IdentifierCase CaseMode
	FunctionCase   CaseMode
	DataTypeCase   CaseMode

	IndentStyle IndentStyle

	LogicalOperatorNewline  LogicalOperatorNewlinePosition
	ExpressionWidth         int
	LinesBetweenQueries     int
	DenseOperators          bool
	NewlineBeforeSemicolon  bool
	NewlineBeforeOpenParen  bool
	NewlineBeforeCloseParen bool
	TabulateAlias           bool
	CommaPosition           CommaPosition
	MultilineLists          MultilineListsMode
	AliasAs                 AliasAsMode

	Params Params

	invalidLanguage string // set by WithLanguage on an unknown tag, surfaced by validate()
}

// DefaultOptions mirrors widely-observed SQL pretty-printer defaults:
// 2-space indent, uppercased keywords with every other token class's case
// preserved, every SELECT-list/clause item on its own line, spaced
// operators, comma-after, and a generous expression width.
func DefaultOptions() FormatOptions {
	d, _ := dialect.Lookup("sql")
	return FormatOptions{
		Dialect:                 d,
		TabWidth:                2,
		UseTabs:                 false,
		KeywordCase:             CaseUpper,
		IdentifierCase:          CasePreserve,
		FunctionCase:            CasePreserve,
		DataTypeCase:            CasePreserve,
		IndentStyle:             IndentStandard,
		LogicalOperatorNewline:  LogicalOperatorNewlineBefore,
		ExpressionWidth:         50,
		LinesBetweenQueries:     1,
		DenseOperators:          false,
		NewlineBeforeSemicolon:  false,
		NewlineBeforeOpenParen:  false,
		NewlineBeforeCloseParen: true,
		TabulateAlias:           false,
		CommaPosition:           CommaAfter,
		MultilineLists:          MultilineAlways,
		AliasAs:                 AliasPreserve,
	}
}

// NewOptions applies DefaultOptions, then each Option in order, then
// validates the result.
func NewOptions(opts ...Option) (FormatOptions, error) {
	o := DefaultOptions()
	for _, apply := range opts {
		apply(&o)
	}
	if err := validate(o); err != nil {
		return FormatOptions{}, err
	}
	return o, nil
}

func WithLanguage(tag string) Option {
	return func(o *FormatOptions) {
		if d, err := dialect.Lookup(tag); err == nil {
			o.Dialect = d
		} else {
			o.Dialect = nil // validate() reports the ConfigError
			o.invalidLanguage = tag
		}
	}
}

func WithTabWidth(n int) Option          { return func(o *FormatOptions) { o.TabWidth = n } }
func WithUseTabs(b bool) Option          { return func(o *FormatOptions) { o.UseTabs = b } }
func WithKeywordCase(m CaseMode) Option  { return func(o *FormatOptions) { o.KeywordCase = m } }
func WithIdentifierCase(m CaseMode) Option {
	return func(o *FormatOptions) { o.IdentifierCase = m }
}
func WithFunctionCase(m CaseMode) Option { return func(o *FormatOptions) { o.FunctionCase = m } }
func WithDataTypeCase(m CaseMode) Option { return func(o *FormatOptions) { o.DataTypeCase = m } }
func WithIndentStyle(s IndentStyle) Option {
	return func(o *FormatOptions) { o.IndentStyle = s }
}
func WithLogicalOperatorNewline(p LogicalOperatorNewlinePosition) Option {
	return func(o *FormatOptions) { o.LogicalOperatorNewline = p }
}
func WithExpressionWidth(n int) Option {
	return func(o *FormatOptions) { o.ExpressionWidth = n }
}
func WithLinesBetweenQueries(n int) Option {
	return func(o *FormatOptions) { o.LinesBetweenQueries = n }
}
func WithDenseOperators(b bool) Option { return func(o *FormatOptions) { o.DenseOperators = b } }
func WithNewlineBeforeSemicolon(b bool) Option {
	return func(o *FormatOptions) { o.NewlineBeforeSemicolon = b }
}
func WithNewlineBeforeOpenParen(b bool) Option {
	return func(o *FormatOptions) { o.NewlineBeforeOpenParen = b }
}
func WithNewlineBeforeCloseParen(b bool) Option {
	return func(o *FormatOptions) { o.NewlineBeforeCloseParen = b }
}
func WithTabulateAlias(b bool) Option { return func(o *FormatOptions) { o.TabulateAlias = b } }
func WithCommaPosition(p CommaPosition) Option {
	return func(o *FormatOptions) { o.CommaPosition = p }
}
func WithMultilineLists(m MultilineListsMode) Option {
	return func(o *FormatOptions) { o.MultilineLists = m }
}
func WithAliasAs(m AliasAsMode) Option { return func(o *FormatOptions) { o.AliasAs = m } }
func WithParams(p Params) Option       { return func(o *FormatOptions) { o.Params = p } }

func validate(o FormatOptions) error {
	if o.invalidLanguage != "" || o.Dialect == nil {
		return errs.ConfigError{Option: "language", Value: o.invalidLanguage, Reason: "unknown dialect tag"}
	}
	if o.TabWidth < 0 {
		return errs.ConfigError{Option: "tabWidth", Value: o.TabWidth, Reason: "must not be negative"}
	}
	if o.ExpressionWidth < 0 {
		return errs.ConfigError{Option: "expressionWidth", Value: o.ExpressionWidth, Reason: "must not be negative"}
	}
	if o.LinesBetweenQueries < 0 {
		return errs.ConfigError{Option: "linesBetweenQueries", Value: o.LinesBetweenQueries, Reason: "must not be negative"}
	}
	if o.MultilineLists.name == "count" && o.MultilineLists.count < 0 {
		return errs.ConfigError{Option: "multilineLists", Value: o.MultilineLists.count, Reason: "must not be negative"}
	}
	return nil
}

func (o FormatOptions) indentUnit() string {
	if o.UseTabs {
		return "\t"
	}
	n := o.TabWidth
	if n <= 0 {
		n = 2
	}
	out := make([]byte, n)
	for i := range out {
		out[i] = ' '
	}
	return string(out)
}
