// Command josedb is a line-oriented shell over the embedding interface:
// it opens a database file (or starts empty), reads statements terminated
// by ';', executes them, and prints the result.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:   "josedb [database-file]",
		Short: "Interactive shell for a josedb database",
		Long: "josedb opens a database file and starts an interactive shell. " +
			"Statements accumulate until a ';' is seen, then run and auto-save " +
			"if a file was given.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			return runShell(path, os.Stdin, os.Stdout)
		},
	}

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
