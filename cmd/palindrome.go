// Package cmd implements the command-line interface for kata.
package cmd

import (
	"encoding/json"
	"os"
	"strconv"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/kata-cli/kata/history"
	"github.com/kata-cli/kata/icon"
	"github.com/kata-cli/kata/key"
	"github.com/kata-cli/kata/log"
	"github.com/kata-cli/kata/palindrome"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(palindromeCmd)

	palindromeCmd.Flags().BoolP("normalize", "n", false, "Also print the normalized form used for the comparison")
	palindromeCmd.Flags().BoolP("json", "j", false, "Format the command output as a JSON object")

	palindromeCmd.SetOut(os.Stdout)
}

// palindromeCmd reports whether the given text is a palindrome.
var palindromeCmd = &cobra.Command{
	Use:     "palindrome [text]",
	Short:   "Check whether text reads the same forward and backward",
	Long:    "Check whether the alphanumeric content of the text, ignoring case, reads identically forward and backward.",
	Example: `  kata palindrome "A man a plan a canal Panama"`,
	Run: func(cmd *cobra.Command, args []string) {
		text := strings.Join(args, " ")

		if len(args) == 0 {
			input := survey.Input{
				Message: "Text to check:",
			}
			handleErr(survey.AskOne(&input, &text))
		}

		result := palindrome.Check(text)
		normalized := palindrome.Normalize(text)

		if lo.Must(cmd.Flags().GetBool("json")) {
			output := struct {
				Input      string `json:"input"`
				Normalized string `json:"normalized"`
				Palindrome bool   `json:"palindrome"`
			}{
				Input:      text,
				Normalized: normalized,
				Palindrome: result,
			}

			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			lo.Must0(encoder.Encode(&output))
		} else {
			verdict := icon.Get(icon.Fail) + " not a palindrome"
			if result {
				verdict = icon.Get(icon.Success) + " palindrome"
			}

			cmd.Println(strings.TrimSpace(verdict))
			if lo.Must(cmd.Flags().GetBool("normalize")) {
				cmd.Printf("normalized: %q\n", normalized)
			}
		}

		if viper.GetBool(key.HistorySaveOnRun) {
			if err := history.Save("palindrome", text, strconv.FormatBool(result)); err != nil {
				log.Error(err)
			}
		}
	},
}
