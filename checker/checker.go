// Package checker manages built-in and custom named text checks.
package checker

import (
	"path/filepath"

	"github.com/kata-cli/kata/checker/custom"
	"github.com/kata-cli/kata/filesystem"
	"github.com/kata-cli/kata/key"
	"github.com/kata-cli/kata/palindrome"
	"github.com/kata-cli/kata/util"
	"github.com/kata-cli/kata/where"
	"github.com/spf13/viper"
)

// Checker represents a registered check, loadable on demand.
type Checker struct {
	ID          string
	Name        string
	IsCustom    bool // Reserved for Lua-based checks.
	CreateCheck func() (Check, error)
}

func (c *Checker) String() string {
	return c.Name
}

// Builtins returns built-in checkers.
func Builtins() []*Checker {
	return []*Checker{
		{
			ID:   "palindrome builtin",
			Name: "palindrome",
			CreateCheck: func() (Check, error) {
				return &funcCheck{name: "palindrome", fn: palindrome.Check}, nil
			},
		},
	}
}

// Customs returns all available Lua checkers.
func Customs() []*Checker {
	checkers, _ := CustomCheckers()
	return checkers
}

// Get finds a checker by name, preferring builtins over customs.
func Get(name string) (*Checker, bool) {
	for _, c := range Builtins() {
		if c.Name == name {
			return c, true
		}
	}

	for _, c := range Customs() {
		if c.Name == name {
			return c, true
		}
	}
	return nil, false
}

// CustomCheckers scans the checkers directory for Lua scripts and registers each as a checker.
func CustomCheckers() ([]*Checker, error) {
	if !viper.GetBool(key.CheckersLoadCustom) {
		return nil, nil
	}

	files, err := filesystem.API().ReadDir(where.Checkers())
	if err != nil {
		return nil, err
	}

	var checkers []*Checker
	for _, f := range files {
		if filepath.Ext(f.Name()) != ".lua" {
			continue
		}

		if f.Name() == "common.lua" {
			continue
		}

		path := filepath.Join(where.Checkers(), f.Name())
		name := util.FileStem(f.Name())

		checkers = append(checkers, &Checker{
			ID:       custom.IDfromName(name),
			Name:     name,
			IsCustom: true,
			CreateCheck: func() (Check, error) {
				check, err := custom.LoadCheck(path)
				if err != nil {
					return nil, err
				}
				return check, nil
			},
		})
	}

	return checkers, nil
}
