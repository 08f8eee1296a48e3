package main

import (
	"github.com/pterm/pterm"

	"primdb/internal/engine"
)

// renderResult prints a command result: select output as a table,
// everything else as its message.
func renderResult(res *engine.Result) {
	if res.Columns != nil {
		td := pterm.TableData{res.Columns}
		for _, row := range res.Rows {
			line := make([]string, len(res.Columns))
			for i, col := range res.Columns {
				line[i] = row[col].String()
			}
			td = append(td, line)
		}
		if err := pterm.DefaultTable.WithHasHeader().WithData(td).Render(); err != nil {
			pterm.Println(res.Message)
			return
		}
		pterm.Println(res.Message)
		return
	}
	if res.Message != "" {
		pterm.Success.Println(res.Message)
	}
}

// promptConfirm asks the user to approve a destructive action.
func promptConfirm(action string) bool {
	ok, err := pterm.DefaultInteractiveConfirm.
		WithDefaultValue(false).
		Show("Are you sure you want to " + action + "?")
	if err != nil {
		return false
	}
	return ok
}
