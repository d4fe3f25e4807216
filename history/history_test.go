package history

import (
	"fmt"
	"testing"

	"github.com/kata-cli/kata/filesystem"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestHistory(t *testing.T) {
	Convey("Given a run", t, func() {
		kind := "palindrome"
		input := "A man a plan a canal Panama"

		Convey("When saving the run", func() {
			err := Save(kind, input, "true")

			Convey("Then the error should be nil", func() {
				So(err, ShouldBeNil)

				Convey("And the record should be saved", func() {
					records, err := Get()
					So(err, ShouldBeNil)
					So(len(records), ShouldBeGreaterThan, 0)

					record := records[fmt.Sprintf("%s (%s)", input, kind)]
					So(record, ShouldNotBeNil)
					So(record.Result, ShouldEqual, "true")
				})

				Convey("And re-saving increments the run counter", func() {
					So(Save(kind, input, "true"), ShouldBeNil)

					records, err := Get()
					So(err, ShouldBeNil)
					So(records[fmt.Sprintf("%s (%s)", input, kind)].Runs, ShouldBeGreaterThanOrEqualTo, 2)
				})
			})
		})

		Convey("When listing with a fuzzy filter", func() {
			So(Save("factorial", "5", "120"), ShouldBeNil)
			So(Save(kind, input, "true"), ShouldBeNil)

			records, err := List("canal")
			So(err, ShouldBeNil)
			So(len(records), ShouldBeGreaterThan, 0)
			for _, r := range records {
				So(r.Kind, ShouldEqual, kind)
			}
		})

		Convey("When removing a record", func() {
			So(Save("factorial", "7", "5040"), ShouldBeNil)

			records, err := Get()
			So(err, ShouldBeNil)
			target := records[fmt.Sprintf("%s (%s)", "7", "factorial")]
			So(target, ShouldNotBeNil)

			So(Remove(target), ShouldBeNil)

			records, err = Get()
			So(err, ShouldBeNil)
			So(records[fmt.Sprintf("%s (%s)", "7", "factorial")], ShouldBeNil)
		})
	})
}
