// Package cmd implements the command-line interface for kata.
package cmd

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strconv"
	"strings"
	"text/template"

	"github.com/AlecAivazis/survey/v2"
	"github.com/kata-cli/kata/checker"
	"github.com/kata-cli/kata/color"
	"github.com/kata-cli/kata/constant"
	"github.com/kata-cli/kata/filesystem"
	"github.com/kata-cli/kata/history"
	"github.com/kata-cli/kata/icon"
	"github.com/kata-cli/kata/key"
	"github.com/kata-cli/kata/log"
	"github.com/kata-cli/kata/style"
	"github.com/kata-cli/kata/util"
	"github.com/kata-cli/kata/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(checkCmd)
}

// checkCmd provides a parent command for managing named text checks.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Manage and run built-in and custom text checks",
}

func init() {
	checkCmd.AddCommand(checkListCmd)

	checkListCmd.Flags().BoolP("raw", "r", false, "Suppress header and metadata descriptions in the output")
	checkListCmd.Flags().BoolP("custom", "c", false, "Display only user-installed custom Lua checks")
	checkListCmd.Flags().BoolP("builtin", "b", false, "Display only pre-compiled built-in checks")

	checkListCmd.MarkFlagsMutuallyExclusive("custom", "builtin")
	checkListCmd.SetOut(os.Stdout)
}

// checkListCmd displays a summary of all registered checks.
var checkListCmd = &cobra.Command{
	Use:   "list",
	Short: "Display a collection of all registered checks",
	Run: func(cmd *cobra.Command, args []string) {
		printHeader := !lo.Must(cmd.Flags().GetBool("raw"))
		headerStyle := style.New().Foreground(color.HiBlue).Bold(true).Render
		h := func(s string) {
			if printHeader {
				cmd.Println(headerStyle(s))
			}
		}

		printBuiltin := func() {
			h("Builtin:")
			for _, c := range checker.Builtins() {
				cmd.Println(c.Name)
			}
		}

		printCustom := func() {
			h("Custom:")
			for _, c := range checker.Customs() {
				cmd.Println(c.Name)
			}
		}

		switch {
		case lo.Must(cmd.Flags().GetBool("builtin")):
			printBuiltin()
		case lo.Must(cmd.Flags().GetBool("custom")):
			printCustom()
		default:
			printBuiltin()
			if printHeader {
				cmd.Println()
			}
			printCustom()
		}
	},
}

func init() {
	checkCmd.AddCommand(checkRunCmd)

	checkRunCmd.SetOut(os.Stdout)
	checkRunCmd.Flags().StringP("name", "n", "", "The name of the check to run")
	lo.Must0(checkRunCmd.RegisterFlagCompletionFunc("name", completionCheckerNames))
	lo.Must0(checkRunCmd.MarkFlagRequired("name"))
}

func completionCheckerNames(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	var names []string

	for _, c := range checker.Builtins() {
		names = append(names, c.Name)
	}

	for _, c := range checker.Customs() {
		names = append(names, c.Name)
	}

	return names, cobra.ShellCompDirectiveNoFileComp
}

// checkRunCmd runs a named check against the given text.
var checkRunCmd = &cobra.Command{
	Use:   "run [text]",
	Short: "Run a named check against the given text",
	Run: func(cmd *cobra.Command, args []string) {
		name := lo.Must(cmd.Flags().GetString("name"))

		c, ok := checker.Get(name)
		if !ok {
			handleErr(fmt.Errorf("unknown check %q", name))
		}

		check, err := c.CreateCheck()
		handleErr(err)

		text := strings.Join(args, " ")
		if len(args) == 0 {
			input := survey.Input{
				Message: "Text to check:",
			}
			handleErr(survey.AskOne(&input, &text))
		}

		result, err := check.Run(text)
		handleErr(err)

		if result {
			cmd.Printf("%s %s passed\n", icon.Get(icon.Success), style.Fg(color.Green)(name))
		} else {
			cmd.Printf("%s %s failed\n", icon.Get(icon.Fail), style.Fg(color.Red)(name))
		}

		if viper.GetBool(key.HistorySaveOnRun) {
			if err := history.Save(name, text, strconv.FormatBool(result)); err != nil {
				log.Error(err)
			}
		}
	},
}

func init() {
	checkCmd.AddCommand(checkRemoveCmd)

	checkRemoveCmd.Flags().StringArrayP("name", "n", []string{}, "Specify the name of the custom check(s) to uninstall")
	lo.Must0(checkRemoveCmd.RegisterFlagCompletionFunc("name", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		checks, err := filesystem.API().ReadDir(where.Checkers())
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}

		return lo.FilterMap(checks, func(item os.FileInfo, _ int) (string, bool) {
			name := item.Name()
			if !strings.HasSuffix(name, ".lua") {
				return "", false
			}

			return util.FileStem(filepath.Base(name)), true
		}), cobra.ShellCompDirectiveNoFileComp
	}))
}

// checkRemoveCmd facilitates the uninstallation of custom Lua checks.
var checkRemoveCmd = &cobra.Command{
	Use:   "remove",
	Short: "Permanently uninstall specified custom Lua checks from the system",
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range lo.Must(cmd.Flags().GetStringArray("name")) {
			path := filepath.Join(where.Checkers(), name+".lua")
			handleErr(filesystem.API().Remove(path))
			fmt.Printf("%s successfully removed %s\n", icon.Get(icon.Success), style.Fg(color.Yellow)(name))
		}
	},
}

func init() {
	checkCmd.AddCommand(checkNewCmd)

	checkNewCmd.Flags().StringP("name", "n", "", "The display name of the new check")
	lo.Must0(checkNewCmd.MarkFlagRequired("name"))
}

// checkNewCmd scaffolds a boilerplate Lua check script.
var checkNewCmd = &cobra.Command{
	Use:   "new",
	Short: "Scaffold a new Lua check script using a predefined template",
	Long:  `Generate a boilerplate Lua check script with the required Check function and optional Normalize hook.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.SetOut(os.Stdout)

		var author string
		usr, err := user.Current()
		if err == nil {
			author = usr.Username
		} else {
			author = "Anonymous"
		}

		s := struct {
			Name        string
			CheckFn     string
			NormalizeFn string
			Author      string
		}{
			Name:        lo.Must(cmd.Flags().GetString("name")),
			CheckFn:     constant.CheckFn,
			NormalizeFn: constant.NormalizeFn,
			Author:      author,
		}

		funcMap := template.FuncMap{
			"repeat": strings.Repeat,
			"plus":   func(a, b int) int { return a + b },
			"max":    util.Max[int],
		}

		tmpl, err := template.New("check").Funcs(funcMap).Parse(constant.CheckerTemplate)
		handleErr(err)

		target := filepath.Join(where.Checkers(), util.SanitizeFilename(s.Name)+".lua")
		f, err := filesystem.API().Create(target)
		handleErr(err)

		defer util.Ignore(f.Close)

		err = tmpl.Execute(f, s)
		handleErr(err)

		cmd.Println(target)
	},
}
