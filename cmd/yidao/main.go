// cmd/yidao/main.go
//
// This is the entry point for the yidao CLI. Without arguments it opens the
// terminal UI; subcommands expose the chart calculations for scripting.

package main

import "github.com/kingrea/yidao/internal/cli"

func main() {
	cli.Execute()
}
