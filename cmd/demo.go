// Package cmd implements the command-line interface for kata.
package cmd

import (
	"fmt"
	"strings"

	"github.com/kata-cli/kata/color"
	"github.com/kata-cli/kata/factorial"
	"github.com/kata-cli/kata/icon"
	"github.com/kata-cli/kata/palindrome"
	"github.com/kata-cli/kata/stack"
	"github.com/kata-cli/kata/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(demoCmd)
}

// demoCmd runs a guided tour over the built-in katas with human-readable output.
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run a guided tour over the built-in katas",
	Run: func(cmd *cobra.Command, args []string) {
		var (
			header  = style.New().Bold(true).Foreground(color.HiPurple).Render
			verdict = map[bool]string{
				true:  style.Fg(color.Green)(icon.Get(icon.Success)),
				false: style.Fg(color.Red)(icon.Get(icon.Fail)),
			}
		)

		cmd.Println(header("Stack"))

		items := stack.New[string]()
		for _, word := range []string{"first", "second", "third"} {
			items.Push(word)
			cmd.Printf("push %-8s [%s]\n", word, strings.Join(items.Items(), " "))
		}

		top := lo.Must(items.Top())
		cmd.Printf("top          %s\n", style.Fg(color.Yellow)(top))

		for !items.Empty() {
			popped := lo.Must(items.Pop())
			cmd.Printf("pop  %-8s [%s]\n", popped, strings.Join(items.Items(), " "))
		}

		if _, err := items.Pop(); err != nil {
			cmd.Printf("pop          %s %s\n", verdict[false], style.Faint(err.Error()))
		}

		cmd.Println()
		cmd.Println(header("Factorial"))

		for n, value := range factorial.Sequence(10) {
			cmd.Printf("%2d! = %s\n", n, style.Fg(color.Yellow)(fmt.Sprintf("%d", value)))
		}

		cmd.Println()
		cmd.Println(header("Palindrome"))

		for _, phrase := range []string{
			"Madam, I'm Adam",
			"A man, a plan, a canal: Panama",
			"kata",
		} {
			cmd.Printf(
				"%s %q %s %q\n",
				verdict[palindrome.Check(phrase)],
				phrase,
				style.Faint("reads as"),
				palindrome.Normalize(phrase),
			)
		}
	},
}
