package eval

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/kata-cli/kata/stack"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
)

func TestParse(t *testing.T) {
	Convey("Parse", t, func() {
		Convey("Accepts the full vocabulary", func() {
			steps, err := Parse([]string{"push a", "top", "pop", "len", "clear"})
			So(err, ShouldBeNil)
			So(steps, ShouldHaveLength, 5)
			So(steps[0], ShouldResemble, Step{Op: OpPush, Arg: "a"})
		})

		Convey("Skips blank lines", func() {
			steps, err := Parse([]string{"", "  ", "push x"})
			So(err, ShouldBeNil)
			So(steps, ShouldHaveLength, 1)
		})

		Convey("Joins multi-word push values", func() {
			steps, err := Parse([]string{"push hello world"})
			So(err, ShouldBeNil)
			So(steps[0].Arg, ShouldEqual, "hello world")
		})

		Convey("Rejects push without a value", func() {
			_, err := Parse([]string{"push"})
			So(err, ShouldNotBeNil)
		})

		Convey("Rejects stray arguments", func() {
			_, err := Parse([]string{"pop now"})
			So(err, ShouldNotBeNil)
		})

		Convey("Suggests the closest operation", func() {
			_, err := Parse([]string{"psuh x"})
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, `"push"`)
		})
	})
}

func TestRun(t *testing.T) {
	Convey("Run", t, func() {
		Convey("Produces a LIFO trace", func() {
			var b strings.Builder
			_, err := Run(
				[]string{"push 1", "push 2", "pop", "top"},
				&Options{Out: &b, StepLimit: mo.None[int]()},
			)
			So(err, ShouldBeNil)

			out := b.String()
			So(out, ShouldContainSubstring, "pop => 2")
			So(out, ShouldContainSubstring, "top => 1")
		})

		Convey("Pop on empty surfaces the container error", func() {
			var b strings.Builder
			_, err := Run([]string{"pop"}, &Options{Out: &b, StepLimit: mo.None[int]()})
			So(err, ShouldNotBeNil)
			So(err, ShouldWrap, stack.ErrEmpty)
		})

		Convey("Enforces the step limit", func() {
			var b strings.Builder
			_, err := Run(
				[]string{"push 1", "push 2", "pop"},
				&Options{Out: &b, StepLimit: mo.Some(2)},
			)
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "step limit")
		})

		Convey("Renders valid JSON output", func() {
			var b strings.Builder
			_, err := Run(
				[]string{"push a", "push b", "pop"},
				&Options{Out: &b, Json: true, StepLimit: mo.None[int]()},
			)
			So(err, ShouldBeNil)

			var output Output
			So(json.Unmarshal([]byte(b.String()), &output), ShouldBeNil)
			So(output.Trace, ShouldHaveLength, 3)
			So(output.Final, ShouldResemble, []string{"a"})
		})
	})
}
