package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/alecthomas/repr"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sqlfmt "github.com/sqlfmtgo/sqlfmt"
	"github.com/sqlfmtgo/sqlfmt/config"
	"github.com/sqlfmtgo/sqlfmt/errs"
	"github.com/sqlfmtgo/sqlfmt/format"
	"github.com/sqlfmtgo/sqlfmt/lexer"
)

// flagConfig mirrors config.FileConfig field-for-field (string/int/bool
// flags only; cobra has no notion of the yaml-only zero-value-means-unset
// convention for enums, so every enum flag is still a string parsed by
// FileConfig.Options). Left-at-zero-value fields are skipped there, which
// is why CLI flags can layer on top of a config file without needing a
// separate "was this flag set" bookkeeping pass.
var (
	flagLanguage string

	flagTabWidth int
	flagUseTabs  bool

	flagKeywordCase    string
	flagIdentifierCase string
	flagFunctionCase   string
	flagDataTypeCase   string

	flagIndentStyle string

	flagLogicalOperatorNewline  string
	flagExpressionWidth         int
	flagLinesBetweenQueries     int
	flagDenseOperators          bool
	flagNewlineBeforeSemicolon  bool
	flagNewlineBeforeOpenParen  bool
	flagNewlineBeforeCloseParen bool
	flagTabulateAlias           bool
	flagCommaPosition           string
	flagMultilineLists          string
	flagAliasAs                 string

	flagWrite bool
)

var formatCmd = &cobra.Command{
	Use:   "format [file...]",
	Short: "Pretty-print one or more SQL files (or stdin, with no arguments)",
	RunE:  runFormat,
}

func init() {
	flags := formatCmd.Flags()
	flags.StringVar(&flagLanguage, "language", "", "dialect tag (see 'sqlfmt config init' for the full list); overrides the config file")

	flags.IntVar(&flagTabWidth, "tab-width", 0, "spaces per indent level (0: use config file or default)")
	flags.BoolVar(&flagUseTabs, "use-tabs", false, "indent with tabs instead of spaces")

	flags.StringVar(&flagKeywordCase, "keyword-case", "", "preserve, upper, or lower")
	flags.StringVar(&flagIdentifierCase, "identifier-case", "", "preserve, upper, or lower")
	flags.StringVar(&flagFunctionCase, "function-case", "", "preserve, upper, or lower")
	flags.StringVar(&flagDataTypeCase, "data-type-case", "", "preserve, upper, or lower")

	flags.StringVar(&flagIndentStyle, "indent-style", "", "standard, tabularLeft, or tabularRight")

	flags.StringVar(&flagLogicalOperatorNewline, "logical-operator-newline", "", "before or after")
	flags.IntVar(&flagExpressionWidth, "expression-width", 0, "column width used by the expressionWidth multilineLists mode and inline-block detection (0: use config file or default)")
	flags.IntVar(&flagLinesBetweenQueries, "lines-between-queries", 0, "blank lines emitted between statements (0: use config file or default)")
	flags.BoolVar(&flagDenseOperators, "dense-operators", false, "omit spaces around binary operators")
	flags.BoolVar(&flagNewlineBeforeSemicolon, "newline-before-semicolon", false, "put a trailing ';' on its own line")
	flags.BoolVar(&flagNewlineBeforeOpenParen, "newline-before-open-paren", false, "break before a non-glued '(' instead of keeping it on the current line")
	flags.BoolVar(&flagNewlineBeforeCloseParen, "newline-before-close-paren", false, "break before a multi-line block's closing ')'")
	flags.BoolVar(&flagTabulateAlias, "tabulate-alias", false, "align a SELECT list's AS column")
	flags.StringVar(&flagCommaPosition, "comma-position", "", "after, before, or tabular")
	flags.StringVar(&flagMultilineLists, "multiline-lists", "", "always, avoid, expressionWidth, or a literal count")
	flags.StringVar(&flagAliasAs, "alias-as", "", "preserve, always, or never")

	flags.BoolVarP(&flagWrite, "write", "w", false, "rewrite each input file in place instead of printing to stdout")
	rootCmd.AddCommand(formatCmd)
}

func runFormat(cmd *cobra.Command, args []string) error {
	logger := requestLogger()

	opts, err := buildOptions()
	if err != nil {
		logger.WithError(err).Error("invalid configuration")
		return ExitCode(2)
	}

	if len(args) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return ExitCode(1)
		}
		return emit(string(data), opts, os.Stdout, logger)
	}

	for _, path := range args {
		if err := formatFile(path, opts, logger); err != nil {
			return err
		}
	}
	return nil
}

func formatFile(path string, opts []format.Option, logger *logrus.Entry) error {
	data, err := os.ReadFile(path)
	if err != nil {
		logger.WithError(err).Errorf("reading %s", path)
		return ExitCode(1)
	}

	if !flagWrite {
		return emit(string(data), opts, os.Stdout, logger)
	}

	rendered, err := render(string(data), opts, logger)
	if err != nil {
		logger.WithError(err).Errorf("formatting %s", path)
		return classify(err)
	}
	if err := os.WriteFile(path, []byte(rendered+"\n"), 0o644); err != nil {
		logger.WithError(err).Errorf("writing %s", path)
		return ExitCode(1)
	}
	return nil
}

func emit(source string, opts []format.Option, out io.Writer, logger *logrus.Entry) error {
	rendered, err := render(source, opts, logger)
	if err != nil {
		logger.WithError(err).Error("formatting")
		return classify(err)
	}
	fmt.Fprintln(out, rendered)
	return nil
}

func render(source string, opts []format.Option, logger *logrus.Entry) (string, error) {
	start := time.Now()

	o, err := format.NewOptions(opts...)
	if err != nil {
		return "", err
	}

	tokens := lexer.Lex(source, o.Dialect)
	if dumpTokens {
		repr.New(os.Stderr).Println(tokens)
	}

	out, err := sqlfmt.Format(source, opts...)
	if err != nil {
		return "", err
	}

	logger.WithFields(logrus.Fields{
		"dialect":     o.Dialect.Tag,
		"token_count": len(tokens),
		"elapsed":     time.Since(start),
	}).Debug("formatted")

	return out, nil
}

func buildOptions() ([]format.Option, error) {
	var opts []format.Option

	path := configPath
	if path == "" {
		if _, err := os.Stat(config.FileName); err == nil {
			path = config.FileName
		}
	}
	if path != "" {
		fc, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		fromFile, err := fc.Options()
		if err != nil {
			return nil, err
		}
		opts = append(opts, fromFile...)
	}

	fromFlags, err := flagConfig().Options()
	if err != nil {
		return nil, err
	}
	opts = append(opts, fromFlags...)

	return opts, nil
}

// flagConfig builds a config.FileConfig from whatever flags were set,
// leaving the rest at their zero value so FileConfig.Options skips them
// and a config file's settings survive underneath unset flags.
func flagConfig() config.FileConfig {
	return config.FileConfig{
		Language: flagLanguage,

		TabWidth: flagTabWidth,
		UseTabs:  flagUseTabs,

		KeywordCase:    flagKeywordCase,
		IdentifierCase: flagIdentifierCase,
		FunctionCase:   flagFunctionCase,
		DataTypeCase:   flagDataTypeCase,

		IndentStyle: flagIndentStyle,

		LogicalOperatorNewline:  flagLogicalOperatorNewline,
		ExpressionWidth:         flagExpressionWidth,
		LinesBetweenQueries:     flagLinesBetweenQueries,
		DenseOperators:          flagDenseOperators,
		NewlineBeforeSemicolon:  flagNewlineBeforeSemicolon,
		NewlineBeforeOpenParen:  flagNewlineBeforeOpenParen,
		NewlineBeforeCloseParen: flagNewlineBeforeCloseParen,
		TabulateAlias:           flagTabulateAlias,
		CommaPosition:           flagCommaPosition,
		MultilineLists:          flagMultilineLists,
		AliasAs:                 flagAliasAs,
	}
}

// classify maps an error into the CLI's exit-code convention: 2 for a
// configuration/option problem, 1 for anything else (e.g. an unresolved
// placeholder).
func classify(err error) error {
	var cfgErr errs.ConfigError
	if errors.As(err, &cfgErr) {
		return ExitCode(2)
	}
	return ExitCode(1)
}
