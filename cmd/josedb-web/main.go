// Command josedb-web is a demo REST application built on top of a josedb
// database: a merchants/transactions payments ledger with a live change
// feed over a websocket. It exercises the engine's public embedding
// interface the same way any other collaborator would, and is not part
// of the engine itself.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	var addr, dbPath string

	root := &cobra.Command{
		Use:   "josedb-web",
		Short: "Demo merchants/transactions dashboard backed by josedb",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(addr, dbPath)
		},
	}
	root.Flags().StringVar(&addr, "addr", ":8080", "address to listen on")
	root.Flags().StringVar(&dbPath, "db", "josedb-web.josedb", "database file path")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
