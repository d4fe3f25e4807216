// Package cmd implements the command-line interface for kata.
package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/kata-cli/kata/color"
	"github.com/kata-cli/kata/factorial"
	"github.com/kata-cli/kata/history"
	"github.com/kata-cli/kata/key"
	"github.com/kata-cli/kata/log"
	"github.com/kata-cli/kata/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(factorialCmd)

	factorialCmd.Flags().BoolP("table", "t", false, "Print the whole factorial sequence up to each argument")
	factorialCmd.Flags().BoolP("json", "j", false, "Format the command output as a JSON object")

	factorialCmd.SetOut(os.Stdout)
}

// factorialCmd computes factorials for the given numbers.
var factorialCmd = &cobra.Command{
	Use:     "factorial <n>...",
	Short:   "Compute the factorial of one or more numbers",
	Long:    "Compute n! for each argument. Results beyond 20! wrap around silently on the unsigned 64-bit boundary.",
	Example: "  kata factorial 5 10\n  kata factorial --table 6",
	Args:    cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var (
			asTable = lo.Must(cmd.Flags().GetBool("table"))
			asJson  = lo.Must(cmd.Flags().GetBool("json"))
		)

		numbers := lo.Map(args, func(arg string, _ int) uint64 {
			n, err := strconv.ParseUint(arg, 10, 64)
			if err != nil {
				handleErr(fmt.Errorf("invalid number %q", arg))
			}
			return n
		})

		if asJson {
			type entry struct {
				N        uint64   `json:"n"`
				Result   uint64   `json:"result"`
				Sequence []uint64 `json:"sequence,omitempty"`
			}

			entries := lo.Map(numbers, func(n uint64, _ int) entry {
				e := entry{N: n, Result: factorial.Of(n)}
				if asTable {
					e.Sequence = factorial.Sequence(n)
				}
				return e
			})

			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			lo.Must0(encoder.Encode(entries))
		} else {
			faint := style.Faint
			accent := style.Fg(color.Purple)

			for _, n := range numbers {
				if asTable {
					for i, v := range factorial.Sequence(n) {
						cmd.Printf("%s %d\n", faint(fmt.Sprintf("%d!", i)), v)
					}
					continue
				}
				cmd.Printf("%s %s\n", accent(fmt.Sprintf("%d!", n)), fmt.Sprint(factorial.Of(n)))
			}
		}

		if viper.GetBool(key.HistorySaveOnRun) {
			for _, n := range numbers {
				input := strconv.FormatUint(n, 10)
				result := strconv.FormatUint(factorial.Of(n), 10)
				if err := history.Save("factorial", input, result); err != nil {
					log.Error(err)
				}
			}
		}
	},
}
