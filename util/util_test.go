package util

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestSanitizeFilename(t *testing.T) {
	Convey("SanitizeFilename", t, func() {
		Convey("Should replace invalid chars", func() {
			So(SanitizeFilename("check:name?.lua"), ShouldEqual, "check_name_.lua")
		})
		Convey("Should collapse underscores", func() {
			So(SanitizeFilename("check__name.lua"), ShouldEqual, "check_name.lua")
		})
		Convey("Should trim separators", func() {
			So(SanitizeFilename("-check-name-"), ShouldEqual, "check-name")
		})
	})
}

func TestQuantify(t *testing.T) {
	Convey("Quantify", t, func() {
		So(Quantify(1, "record", "records"), ShouldEqual, "1 record")
		So(Quantify(2, "record", "records"), ShouldEqual, "2 records")
	})
}

func TestCapitalize(t *testing.T) {
	Convey("Capitalize", t, func() {
		So(Capitalize("hello"), ShouldEqual, "Hello")
		So(Capitalize(""), ShouldEqual, "")
	})
}

func TestFileStem(t *testing.T) {
	Convey("FileStem", t, func() {
		So(FileStem("path/to/check.lua"), ShouldEqual, "check")
		So(FileStem("check"), ShouldEqual, "check")
	})
}

func TestMaxMin(t *testing.T) {
	Convey("Max/Min", t, func() {
		So(Max(1, 5, 2), ShouldEqual, 5)
		So(Min(1, 5, 2), ShouldEqual, 1)
	})
}
