package main

import (
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"primdb/internal/engine"
	"primdb/internal/sql"
)

var execYes bool

var execCmd = &cobra.Command{
	Use:   "exec <command>",
	Short: "Execute a single command and exit",
	Long: `Execute one command without entering the REPL, e.g.:

  primdb exec 'create_table users name:str age:int'
  primdb exec 'insert into users values ("Alice", 30)'
  primdb exec 'select from users where age = 30'

Destructive commands (drop_table, delete) prompt for confirmation unless
--yes is given.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		line := strings.Join(args, " ")

		confirm := promptConfirm
		if execYes {
			confirm = func(string) bool { return true }
		}

		sess, closer, err := newSession(confirm)
		if err != nil {
			return err
		}
		defer closer()

		stmt, err := sql.Parse(line)
		if err != nil {
			return err
		}
		switch stmt.(type) {
		case *sql.HelpStmt:
			pterm.Println(helpText)
			return nil
		case *sql.ExitStmt:
			return nil
		}

		res, err := engine.Timed(log, sess.Execute)(stmt)
		if err != nil {
			return err
		}
		renderResult(res)
		return nil
	},
}

func init() {
	execCmd.Flags().BoolVarP(&execYes, "yes", "y", false, "Skip confirmation prompts")
	rootCmd.AddCommand(execCmd)
}
