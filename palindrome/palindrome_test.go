package palindrome

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestNormalize(t *testing.T) {
	Convey("Normalize", t, func() {
		So(Normalize("A man, a plan!"), ShouldEqual, "amanaplan")
		So(Normalize("No 1 left?"), ShouldEqual, "no1left")
		So(Normalize("?!... "), ShouldEqual, "")
	})
}

func TestCheck(t *testing.T) {
	Convey("Check", t, func() {
		Convey("Classic phrases", func() {
			So(Check("A man a plan a canal Panama"), ShouldBeTrue)
			So(Check("Was it a car or a cat I saw?"), ShouldBeTrue)
			So(Check("hello"), ShouldBeFalse)
		})

		Convey("Degenerate input is trivially a palindrome", func() {
			So(Check(""), ShouldBeTrue)
			So(Check("!!! ???"), ShouldBeTrue)
			So(Check("x"), ShouldBeTrue)
		})

		Convey("Case folding and digits", func() {
			So(Check("RaceCar"), ShouldBeTrue)
			So(Check("12 321"), ShouldBeTrue)
			So(Check("12 345"), ShouldBeFalse)
		})
	})
}
