package stack

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestStack(t *testing.T) {
	Convey("Stack", t, func() {
		s := New[int]()

		Convey("Starts empty", func() {
			So(s.Empty(), ShouldBeTrue)
			So(s.Len(), ShouldEqual, 0)
		})

		Convey("Pop on empty returns ErrEmpty", func() {
			_, err := s.Pop()
			So(err, ShouldEqual, ErrEmpty)
		})

		Convey("Top on empty returns ErrEmpty", func() {
			_, err := s.Top()
			So(err, ShouldEqual, ErrEmpty)
		})

		Convey("Push/Pop obeys LIFO order", func() {
			for i := 1; i <= 5; i++ {
				s.Push(i)
			}
			So(s.Len(), ShouldEqual, 5)

			for i := 5; i >= 1; i-- {
				item, err := s.Pop()
				So(err, ShouldBeNil)
				So(item, ShouldEqual, i)
			}
			So(s.Empty(), ShouldBeTrue)
		})

		Convey("Len equals pushes minus pops", func() {
			s.Push(1)
			s.Push(2)
			s.Push(3)
			_, _ = s.Pop()
			So(s.Len(), ShouldEqual, 2)
		})

		Convey("Top does not remove", func() {
			s.Push(42)
			top, err := s.Top()
			So(err, ShouldBeNil)
			So(top, ShouldEqual, 42)
			So(s.Len(), ShouldEqual, 1)
		})

		Convey("Clear resets to empty", func() {
			s.Push(1)
			s.Push(2)
			s.Clear()
			So(s.Empty(), ShouldBeTrue)
			_, err := s.Pop()
			So(err, ShouldEqual, ErrEmpty)
		})

		Convey("Items snapshots bottom-to-top", func() {
			s.Push(1)
			s.Push(2)
			items := s.Items()
			So(items, ShouldResemble, []int{1, 2})

			// Mutating the snapshot leaves the stack untouched.
			items[0] = 99
			top, _ := s.Top()
			So(top, ShouldEqual, 2)
			So(s.Len(), ShouldEqual, 2)
		})

		Convey("Zero value is usable", func() {
			var zv Stack[string]
			zv.Push("a")
			item, err := zv.Pop()
			So(err, ShouldBeNil)
			So(item, ShouldEqual, "a")
		})
	})
}
