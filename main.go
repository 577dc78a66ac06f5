package main

import (
	"fmt"
	"os"

	"fjacquet/fintrack/cmd/add"
	"fjacquet/fintrack/cmd/analytics"
	"fjacquet/fintrack/cmd/export"
	"fjacquet/fintrack/cmd/importer"
	"fjacquet/fintrack/cmd/list"
	"fjacquet/fintrack/cmd/root"
	"fjacquet/fintrack/cmd/settings"
)

func init() {
	root.Init()

	root.Cmd.AddCommand(add.Cmd)
	root.Cmd.AddCommand(list.Cmd)
	root.Cmd.AddCommand(analytics.Cmd)
	root.Cmd.AddCommand(export.Cmd)
	root.Cmd.AddCommand(importer.Cmd)
	root.Cmd.AddCommand(settings.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
