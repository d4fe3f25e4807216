// Package cmd implements the command-line interface for kata.
package cmd

import (
	"bufio"
	"os"
	"reflect"
	"strings"

	"github.com/invopop/jsonschema"
	"github.com/kata-cli/kata/eval"
	"github.com/kata-cli/kata/filesystem"
	"github.com/kata-cli/kata/history"
	"github.com/kata-cli/kata/key"
	"github.com/kata-cli/kata/log"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(stackCmd)

	stackCmd.Flags().StringP("file", "f", "", "Read the operation script from a file instead of arguments")
	stackCmd.Flags().BoolP("json", "j", false, "Format the command output as a JSON object")
	stackCmd.Flags().Bool("json-schema", false, "Print the JSON schema of the structured output and exit")
	stackCmd.Flags().IntP("limit", "l", 0, "Override the configured step limit (0 uses the configured value)")

	stackCmd.SetOut(os.Stdout)
}

// stackCmd evaluates a stack operation script non-interactively.
var stackCmd = &cobra.Command{
	Use:   "stack [script]",
	Short: "Evaluate a stack operation script",
	Long: `Evaluate a semicolon-separated stack operation script and print its trace.

Operations: push <value>, pop, top, len, clear.
With no script and no --file, operations are read from standard input, one per line.`,
	Example: `  kata stack "push 1; push 2; pop; top"
  echo "push a
pop" | kata stack`,
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("json-schema")) {
			reflector := new(jsonschema.Reflector)
			reflector.Anonymous = true
			reflector.Namer = func(t reflect.Type) string {
				return t.Name()
			}

			schema := reflector.Reflect(&eval.Output{})
			raw, err := schema.MarshalJSON()
			handleErr(err)
			cmd.Println(string(raw))
			return
		}

		lines, err := scriptLines(cmd, args)
		handleErr(err)

		limit := lo.Must(cmd.Flags().GetInt("limit"))
		if limit <= 0 {
			limit = viper.GetInt(key.EvalStepLimit)
		}

		options := eval.Options{
			Out:       cmd.OutOrStdout(),
			Json:      lo.Must(cmd.Flags().GetBool("json")),
			StepLimit: mo.Some(limit),
		}

		output, err := eval.Run(lines, &options)
		handleErr(err)

		if viper.GetBool(key.HistorySaveOnRun) {
			script := strings.Join(lines, "; ")
			final := "[" + strings.Join(output.Final, " ") + "]"
			if err := history.Save("stack", script, final); err != nil {
				log.Error(err)
			}
		}
	},
}

// scriptLines resolves the operation script from arguments, a file, or standard input.
func scriptLines(cmd *cobra.Command, args []string) ([]string, error) {
	if file := lo.Must(cmd.Flags().GetString("file")); file != "" {
		content, err := filesystem.API().ReadFile(file)
		if err != nil {
			return nil, err
		}
		return strings.Split(string(content), "\n"), nil
	}

	if len(args) > 0 {
		return strings.Split(strings.Join(args, " "), ";"), nil
	}

	var lines []string
	scanner := bufio.NewScanner(cmd.InOrStdin())
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}
