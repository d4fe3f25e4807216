package factorial

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestOf(t *testing.T) {
	Convey("Factorial", t, func() {
		So(Of(0), ShouldEqual, 1)
		So(Of(1), ShouldEqual, 1)
		So(Of(5), ShouldEqual, 120)
		So(Of(10), ShouldEqual, 3628800)
		So(Of(20), ShouldEqual, uint64(2432902008176640000))
	})
}

func TestSequence(t *testing.T) {
	Convey("Sequence", t, func() {
		So(Sequence(0), ShouldResemble, []uint64{1})
		So(Sequence(5), ShouldResemble, []uint64{1, 1, 2, 6, 24, 120})

		Convey("Agrees with Of", func() {
			seq := Sequence(12)
			for i, v := range seq {
				So(v, ShouldEqual, Of(uint64(i)))
			}
		})
	})
}
