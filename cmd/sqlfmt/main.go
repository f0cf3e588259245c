package main

import (
	"os"

	"github.com/sqlfmtgo/sqlfmt/cmd/sqlfmt/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
