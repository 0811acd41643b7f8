package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/jose-oyuko/josedb/db"
	"github.com/jose-oyuko/josedb/executor"
)

// runShell opens path (or starts empty if path is "") and runs the
// read-accumulate-execute loop: lines accumulate into a buffer until a
// ';' is seen, then every ';'-separated statement in the buffer runs in
// order.
func runShell(path string, in io.Reader, out io.Writer) error {
	database, err := db.Open(path)
	if err != nil {
		return err
	}
	exec := executor.New(database, nil)

	fmt.Fprintln(out, "Welcome to josedb. Type .help for instructions.")
	fmt.Fprintln(out, "Type .exit to quit.")

	scanner := bufio.NewScanner(in)
	var buffer strings.Builder

	for {
		fmt.Fprint(out, prompt(buffer.String()))
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return nil
		}
		line := scanner.Text()

		if buffer.Len() == 0 && strings.HasPrefix(strings.TrimSpace(line), ".") {
			if handleMeta(strings.TrimSpace(line), exec, out) {
				return nil
			}
			continue
		}

		buffer.WriteString(line)
		buffer.WriteByte(' ')

		if strings.Contains(buffer.String(), ";") {
			runBuffered(buffer.String(), exec, out)
			buffer.Reset()
		}
	}
}

func prompt(buffered string) string {
	if buffered == "" {
		return "josedb> "
	}
	return "     -> "
}

func runBuffered(buffered string, exec *executor.Executor, out io.Writer) {
	for _, stmt := range strings.Split(buffered, ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		fmt.Fprintf(out, "executing: %s\n", stmt)
		res, err := exec.Execute(stmt)
		if err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
			continue
		}
		if res.Rows != nil {
			fmt.Fprintln(out, executor.FormatRows(res.Rows))
		}
		fmt.Fprintln(out, res.Message)
	}
}

func handleMeta(command string, exec *executor.Executor, out io.Writer) (exit bool) {
	parts := strings.Fields(command)
	switch parts[0] {
	case ".exit":
		fmt.Fprintln(out, "goodbye")
		return true
	case ".tables":
		printTables(exec, out)
	case ".describe":
		if len(parts) < 2 {
			fmt.Fprintln(out, "usage: .describe <table_name>")
			return false
		}
		printDescribe(exec, parts[1], out)
	case ".stats":
		printStats(exec, out)
	case ".help":
		printHelp(out)
	default:
		fmt.Fprintf(out, "unknown command: %s\n", command)
	}
	return false
}

func printTables(exec *executor.Executor, out io.Writer) {
	names := exec.ListTables()
	fmt.Fprintln(out, "tables:")
	if len(names) == 0 {
		fmt.Fprintln(out, "  (no tables)")
		return
	}
	for _, n := range names {
		fmt.Fprintf(out, "  - %s\n", n)
	}
}

func printDescribe(exec *executor.Executor, name string, out io.Writer) {
	desc, err := exec.Describe(name)
	if err != nil {
		fmt.Fprintf(out, "error: %v\n", err)
		return
	}
	fmt.Fprintf(out, "table: %s (%s rows)\n", desc.Name, humanize.Comma(int64(desc.RowCount)))
	if desc.PrimaryKey != "" {
		fmt.Fprintf(out, "primary key: %s\n", desc.PrimaryKey)
	}
	fmt.Fprintln(out, "columns:")
	for _, c := range desc.Columns {
		constraints := columnConstraints(c.Name, desc)
		fmt.Fprintf(out, "  - %s (%s) %s\n", c.Name, c.Type, constraints)
	}
}

func columnConstraints(name string, desc executor.TableDescription) string {
	var tags []string
	if name == desc.PrimaryKey {
		tags = append(tags, "PK")
	}
	for _, u := range desc.UniqueColumns {
		if u == name {
			tags = append(tags, "UNIQUE")
		}
	}
	if len(tags) == 0 {
		return ""
	}
	return "[" + strings.Join(tags, ", ") + "]"
}

func printStats(exec *executor.Executor, out io.Writer) {
	names := exec.ListTables()
	var totalRows int
	for _, n := range names {
		desc, err := exec.Describe(n)
		if err != nil {
			continue
		}
		totalRows += desc.RowCount
		fmt.Fprintf(out, "  %-20s %s row(s)\n", n, humanize.Comma(int64(desc.RowCount)))
	}
	fmt.Fprintf(out, "%d table(s), %s row(s) total\n", len(names), humanize.Comma(int64(totalRows)))
}

func printHelp(out io.Writer) {
	fmt.Fprintln(out, "available commands:")
	fmt.Fprintln(out, "  .tables                 list all tables")
	fmt.Fprintln(out, "  .describe <table_name>  show table schema")
	fmt.Fprintln(out, "  .stats                  show row counts per table")
	fmt.Fprintln(out, "  .exit                   exit the shell")
	fmt.Fprintln(out, "  <statement>;            execute a statement (must end with ;)")
}
