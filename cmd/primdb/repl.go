package main

import (
	"bufio"
	"os"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"primdb/internal/engine"
	"primdb/internal/sql"
)

const helpText = `Commands:
  create_table <table> <col:type> [<col:type> ...]   create a table (types: int, str, bool)
  drop_table <table>                                 remove a table and its rows
  list_tables                                        list all tables
  info <table>                                       show a table's columns and row count
  insert into <table> values (<v1>, <v2>, ...)       append a row (ID is assigned)
  select from <table> [where <col> = <value>]        show rows
  update <table> set <col> = <value> where <col> = <value>
  delete from <table> where <col> = <value>
  help                                               show this help
  exit                                               leave the session

String values must be quoted ("..." or '...'); integers and true/false
are written bare.`

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive command session",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, closer, err := newSession(promptConfirm)
		if err != nil {
			return err
		}
		defer closer()

		exec := engine.Timed(log, sess.Execute)

		pterm.Println("primdb " + Version + " — type help for usage, exit to quit")
		scanner := bufio.NewScanner(os.Stdin)
		for {
			pterm.Print(pterm.NewStyle(pterm.FgLightCyan).Sprint("primdb> "))
			if !scanner.Scan() {
				break
			}
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}

			stmt, err := sql.Parse(line)
			if err != nil {
				pterm.Error.Println(err)
				continue
			}

			switch stmt.(type) {
			case *sql.HelpStmt:
				pterm.Println(helpText)
				continue
			case *sql.ExitStmt:
				return nil
			}

			res, err := exec(stmt)
			if err != nil {
				pterm.Error.Println(err)
				continue
			}
			renderResult(res)
		}
		return scanner.Err()
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}
