// Package config loads a YAML options file for the CLI: a single struct
// with yaml tags, read from a fixed filename via gopkg.in/yaml.v3 and
// translated into format.Option values.
package config

import (
	"bytes"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/sqlfmtgo/sqlfmt/errs"
	"github.com/sqlfmtgo/sqlfmt/format"
)

// FileName is the default config file name `sqlfmt config init` writes and
// `sqlfmt format` looks for in the current directory when no --config flag
// is given.
const FileName = ".sqlfmt.yaml"

// FileConfig is the on-disk shape of a sqlfmt config file. Every field is
// optional; zero values are left alone by Options, so a caller building
// options from a FileConfig should start from format.DefaultOptions().
type FileConfig struct {
	Language string `yaml:"language"`

	TabWidth int  `yaml:"tabWidth"`
	UseTabs  bool `yaml:"useTabs"`

	KeywordCase    string `yaml:"keywordCase"`
	IdentifierCase string `yaml:"identifierCase"`
	FunctionCase   string `yaml:"functionCase"`
	DataTypeCase   string `yaml:"dataTypeCase"`

	IndentStyle string `yaml:"indentStyle"`

	LogicalOperatorNewline  string `yaml:"logicalOperatorNewline"`
	ExpressionWidth         int    `yaml:"expressionWidth"`
	LinesBetweenQueries     int    `yaml:"linesBetweenQueries"`
	DenseOperators          bool   `yaml:"denseOperators"`
	NewlineBeforeSemicolon  bool   `yaml:"newlineBeforeSemicolon"`
	NewlineBeforeOpenParen  bool   `yaml:"newlineBeforeOpenParen"`
	NewlineBeforeCloseParen bool   `yaml:"newlineBeforeCloseParen"`
	TabulateAlias           bool   `yaml:"tabulateAlias"`
	CommaPosition           string `yaml:"commaPosition"`
	MultilineLists          string `yaml:"multilineLists"`
	AliasAs                 string `yaml:"aliasAs"`
}

// Load reads and parses a YAML config file at path. Unrecognized keys are
// rejected rather than silently ignored, so a misspelled option fails
// validation instead of quietly falling back to its default.
func Load(path string) (FileConfig, error) {
	var fc FileConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil {
		return fc, errs.ConfigError{Option: path, Reason: fmt.Sprintf("parsing config: %s", err)}
	}
	return fc, nil
}

// Options translates a FileConfig into format.Options, skipping any field
// left at its zero value so callers can layer a config file underneath
// explicit CLI flags.
func (fc FileConfig) Options() ([]format.Option, error) {
	var opts []format.Option

	if fc.Language != "" {
		opts = append(opts, format.WithLanguage(fc.Language))
	}
	if fc.TabWidth != 0 {
		opts = append(opts, format.WithTabWidth(fc.TabWidth))
	}
	if fc.UseTabs {
		opts = append(opts, format.WithUseTabs(true))
	}
	if fc.KeywordCase != "" {
		m, err := caseMode("keywordCase", fc.KeywordCase)
		if err != nil {
			return nil, err
		}
		opts = append(opts, format.WithKeywordCase(m))
	}
	if fc.IdentifierCase != "" {
		m, err := caseMode("identifierCase", fc.IdentifierCase)
		if err != nil {
			return nil, err
		}
		opts = append(opts, format.WithIdentifierCase(m))
	}
	if fc.FunctionCase != "" {
		m, err := caseMode("functionCase", fc.FunctionCase)
		if err != nil {
			return nil, err
		}
		opts = append(opts, format.WithFunctionCase(m))
	}
	if fc.DataTypeCase != "" {
		m, err := caseMode("dataTypeCase", fc.DataTypeCase)
		if err != nil {
			return nil, err
		}
		opts = append(opts, format.WithDataTypeCase(m))
	}
	if fc.IndentStyle != "" {
		s, err := indentStyle(fc.IndentStyle)
		if err != nil {
			return nil, err
		}
		opts = append(opts, format.WithIndentStyle(s))
	}
	if fc.LogicalOperatorNewline != "" {
		p, err := logicalOperatorNewline(fc.LogicalOperatorNewline)
		if err != nil {
			return nil, err
		}
		opts = append(opts, format.WithLogicalOperatorNewline(p))
	}
	if fc.ExpressionWidth != 0 {
		opts = append(opts, format.WithExpressionWidth(fc.ExpressionWidth))
	}
	if fc.LinesBetweenQueries != 0 {
		opts = append(opts, format.WithLinesBetweenQueries(fc.LinesBetweenQueries))
	}
	if fc.DenseOperators {
		opts = append(opts, format.WithDenseOperators(true))
	}
	if fc.NewlineBeforeSemicolon {
		opts = append(opts, format.WithNewlineBeforeSemicolon(true))
	}
	if fc.NewlineBeforeOpenParen {
		opts = append(opts, format.WithNewlineBeforeOpenParen(true))
	}
	if fc.NewlineBeforeCloseParen {
		opts = append(opts, format.WithNewlineBeforeCloseParen(true))
	}
	if fc.TabulateAlias {
		opts = append(opts, format.WithTabulateAlias(true))
	}
	if fc.CommaPosition != "" {
		p, err := commaPosition(fc.CommaPosition)
		if err != nil {
			return nil, err
		}
		opts = append(opts, format.WithCommaPosition(p))
	}
	if fc.MultilineLists != "" {
		m, err := multilineLists(fc.MultilineLists)
		if err != nil {
			return nil, err
		}
		opts = append(opts, format.WithMultilineLists(m))
	}
	if fc.AliasAs != "" {
		a, err := aliasAs(fc.AliasAs)
		if err != nil {
			return nil, err
		}
		opts = append(opts, format.WithAliasAs(a))
	}

	return opts, nil
}

func caseMode(option, s string) (format.CaseMode, error) {
	switch s {
	case "preserve":
		return format.CasePreserve, nil
	case "upper":
		return format.CaseUpper, nil
	case "lower":
		return format.CaseLower, nil
	default:
		return 0, fmt.Errorf("config: %s: unknown value %q (want preserve, upper, or lower)", option, s)
	}
}

func indentStyle(s string) (format.IndentStyle, error) {
	switch s {
	case "standard":
		return format.IndentStandard, nil
	case "tabularLeft":
		return format.IndentTabularLeft, nil
	case "tabularRight":
		return format.IndentTabularRight, nil
	default:
		return 0, fmt.Errorf("config: indentStyle: unknown value %q", s)
	}
}

func logicalOperatorNewline(s string) (format.LogicalOperatorNewlinePosition, error) {
	switch s {
	case "before":
		return format.LogicalOperatorNewlineBefore, nil
	case "after":
		return format.LogicalOperatorNewlineAfter, nil
	default:
		return 0, fmt.Errorf("config: logicalOperatorNewline: unknown value %q", s)
	}
}

func commaPosition(s string) (format.CommaPosition, error) {
	switch s {
	case "after":
		return format.CommaAfter, nil
	case "before":
		return format.CommaBefore, nil
	case "tabular":
		return format.CommaTabular, nil
	default:
		return 0, fmt.Errorf("config: commaPosition: unknown value %q", s)
	}
}

func multilineLists(s string) (format.MultilineListsMode, error) {
	switch s {
	case "always":
		return format.MultilineAlways, nil
	case "avoid":
		return format.MultilineAvoid, nil
	case "expressionWidth":
		return format.MultilineExpressionWidth, nil
	default:
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			return format.MultilineListsMode{}, fmt.Errorf("config: multilineLists: unknown value %q", s)
		}
		return format.MultilineCount(n), nil
	}
}

func aliasAs(s string) (format.AliasAsMode, error) {
	switch s {
	case "preserve":
		return format.AliasPreserve, nil
	case "always":
		return format.AliasAlways, nil
	case "never":
		return format.AliasNever, nil
	default:
		return 0, fmt.Errorf("config: aliasAs: unknown value %q", s)
	}
}
