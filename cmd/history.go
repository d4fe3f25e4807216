// Package cmd implements the command-line interface for kata.
package cmd

import (
	"encoding/json"
	"os"

	"github.com/kata-cli/kata/color"
	"github.com/kata-cli/kata/history"
	"github.com/kata-cli/kata/style"
	"github.com/kata-cli/kata/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().StringP("filter", "f", "", "Fuzzy-filter records by kind or input")
	historyCmd.Flags().BoolP("json", "j", false, "Format the command output as a JSON string")

	historyCmd.SetOut(os.Stdout)
}

// historyCmd displays the localized registry of evaluated runs.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Display recorded runs, most frequent first",
	Run: func(cmd *cobra.Command, args []string) {
		records, err := history.List(lo.Must(cmd.Flags().GetString("filter")))
		handleErr(err)

		if lo.Must(cmd.Flags().GetBool("json")) {
			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			lo.Must0(encoder.Encode(records))
			return
		}

		if len(records) == 0 {
			cmd.Println(style.Faint("history is empty"))
			return
		}

		kindStyle := style.Fg(color.Purple)
		for _, record := range records {
			cmd.Printf(
				"%s %q => %s %s\n",
				kindStyle(record.Kind),
				record.Input,
				record.Result,
				style.Faint("("+util.Quantify(record.Runs, "run", "runs")+")"),
			)
		}
	},
}
