package checker

import (
	"path/filepath"
	"testing"

	"github.com/kata-cli/kata/filesystem"
	"github.com/kata-cli/kata/key"
	"github.com/kata-cli/kata/where"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestGet(t *testing.T) {
	Convey("When trying to get an invalid checker", t, func() {
		viper.Set(key.CheckersLoadCustom, false)
		_, ok := Get("kek")
		Convey("Then ok should be false", func() {
			So(ok, ShouldBeFalse)
		})
	})

	Convey("The palindrome builtin", t, func() {
		c, ok := Get("palindrome")
		So(ok, ShouldBeTrue)
		So(c.IsCustom, ShouldBeFalse)

		check, err := c.CreateCheck()
		So(err, ShouldBeNil)

		Convey("Accepts classic palindromes", func() {
			result, err := check.Run("A man a plan a canal Panama")
			So(err, ShouldBeNil)
			So(result, ShouldBeTrue)
		})

		Convey("Rejects ordinary words", func() {
			result, err := check.Run("hello")
			So(err, ShouldBeNil)
			So(result, ShouldBeFalse)
		})
	})
}

func TestCustomCheckers(t *testing.T) {
	Convey("Custom checkers", t, func() {
		Convey("Disabled loading yields no checkers", func() {
			viper.Set(key.CheckersLoadCustom, false)
			checkers, err := CustomCheckers()
			So(err, ShouldBeNil)
			So(checkers, ShouldBeEmpty)
		})

		Convey("Lua scripts register by basename", func() {
			viper.Set(key.CheckersLoadCustom, true)

			script := "function Check(input)\n\treturn input == string.reverse(input)\nend\n"
			path := filepath.Join(where.Checkers(), "mirrored.lua")
			So(filesystem.API().WriteFile(path, []byte(script), 0644), ShouldBeNil)

			checkers, err := CustomCheckers()
			So(err, ShouldBeNil)
			So(checkers, ShouldHaveLength, 1)
			So(checkers[0].Name, ShouldEqual, "mirrored")
			So(checkers[0].IsCustom, ShouldBeTrue)

			check, err := checkers[0].CreateCheck()
			So(err, ShouldBeNil)

			result, err := check.Run("abba")
			So(err, ShouldBeNil)
			So(result, ShouldBeTrue)

			result, err = check.Run("abc")
			So(err, ShouldBeNil)
			So(result, ShouldBeFalse)
		})
	})
}
