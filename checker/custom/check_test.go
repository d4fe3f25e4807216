package custom

import (
	"path/filepath"
	"testing"

	"github.com/kata-cli/kata/filesystem"
	"github.com/kata-cli/kata/where"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func writeScript(name, body string) string {
	path := filepath.Join(where.Checkers(), name)
	if err := filesystem.API().WriteFile(path, []byte(body), 0644); err != nil {
		panic(err)
	}
	return path
}

func TestLoadCheck(t *testing.T) {
	Convey("LoadCheck", t, func() {
		Convey("Rejects scripts without a Check function", func() {
			path := writeScript("broken.lua", "local x = 1\n")
			_, err := LoadCheck(path)
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "Check")
		})

		Convey("Runs the Check predicate", func() {
			path := writeScript("shouty.lua", "function Check(input)\n\treturn input == string.upper(input)\nend\n")
			check, err := LoadCheck(path)
			So(err, ShouldBeNil)
			So(check.Name(), ShouldEqual, "shouty")
			So(check.ID(), ShouldEqual, "shouty custom")

			result, err := check.Run("LOUD")
			So(err, ShouldBeNil)
			So(result, ShouldBeTrue)

			result, err = check.Run("quiet")
			So(err, ShouldBeNil)
			So(result, ShouldBeFalse)
		})

		Convey("Applies the optional Normalize function first", func() {
			body := "function Normalize(input)\n\treturn string.lower(input)\nend\n\nfunction Check(input)\n\treturn input == \"ok\"\nend\n"
			path := writeScript("normalized.lua", body)
			check, err := LoadCheck(path)
			So(err, ShouldBeNil)

			result, err := check.Run("OK")
			So(err, ShouldBeNil)
			So(result, ShouldBeTrue)
		})

		Convey("Rejects a Check returning a non-boolean", func() {
			path := writeScript("badret.lua", "function Check(input)\n\treturn \"yes\"\nend\n")
			check, err := LoadCheck(path)
			So(err, ShouldBeNil)

			_, err = check.Run("anything")
			So(err, ShouldNotBeNil)
		})
	})
}
