package tuple

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestPair(t *testing.T) {
	Convey("Given a pair of an int and a string", t, func() {
		p := NewPair(1, "a")

		Convey("Unpack returns both elements in order", func() {
			first, second := p.Unpack()
			So(first, ShouldEqual, 1)
			So(second, ShouldEqual, "a")
		})

		Convey("Swap exchanges the elements", func() {
			s := p.Swap()
			So(s.First, ShouldEqual, "a")
			So(s.Second, ShouldEqual, 1)
			So(s.Swap(), ShouldResemble, p)
		})

		Convey("String renders a tuple", func() {
			So(p.String(), ShouldEqual, "(1, a)")
		})

		Convey("Pairs of comparable elements compare by value", func() {
			So(p == NewPair(1, "a"), ShouldBeTrue)
			So(p == NewPair(2, "a"), ShouldBeFalse)
		})
	})
}
