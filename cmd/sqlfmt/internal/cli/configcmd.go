package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sqlfmtgo/sqlfmt/config"
	"github.com/sqlfmtgo/sqlfmt/dialect"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage a sqlfmt config file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a commented .sqlfmt.yaml with the default options to the current directory",
	RunE:  runConfigInit,
}

func init() {
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	logger := requestLogger()

	if _, err := os.Stat(config.FileName); err == nil {
		logger.Warnf("%s already exists, not overwriting", config.FileName)
		return ExitCode(2)
	}

	if err := os.WriteFile(config.FileName, []byte(defaultConfigYAML()), 0o644); err != nil {
		logger.WithError(err).Error("writing config file")
		return ExitCode(1)
	}
	fmt.Printf("wrote %s\n", config.FileName)
	return nil
}

func defaultConfigYAML() string {
	return fmt.Sprintf(`# sqlfmt config file. Every key is optional; an absent key keeps
# sqlfmt's built-in default. Dialect tags: %s

language: sql
tabWidth: 2
useTabs: false

keywordCase: upper       # preserve | upper | lower
identifierCase: preserve
functionCase: preserve
dataTypeCase: preserve

indentStyle: standard    # standard | tabularLeft | tabularRight

logicalOperatorNewline: before   # before | after
expressionWidth: 50
linesBetweenQueries: 1
denseOperators: false
newlineBeforeSemicolon: false
newlineBeforeOpenParen: false
newlineBeforeCloseParen: true
tabulateAlias: false
commaPosition: after     # after | before | tabular
multilineLists: always   # always | avoid | expressionWidth | <integer>
aliasAs: preserve        # preserve | always | never
`, joinTags())
}

func joinTags() string {
	out := ""
	for i, t := range dialect.Tags {
		if i > 0 {
			out += ", "
		}
		out += t
	}
	return out
}
