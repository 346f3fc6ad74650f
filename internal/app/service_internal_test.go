package service

import (
	"context"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/okian/talentiq/pkg/logger"
)

func TestService_DefaultLogger(t *testing.T) {
	Convey("Given a service built without a logger option", t, func() {
		s := New(WithRefreshDelay(0))

		Convey("Then it carries a discarding logger", func() {
			So(s.logger, ShouldNotBeNil)
		})

		Convey("And a nil logger option keeps the default", func() {
			So(New(WithLogger(nil)).logger, ShouldNotBeNil)
		})

		Convey("And it starts and stops without a global logger", func() {
			So(s.Start(context.Background()), ShouldBeNil)
			s.Stop()
			So(s.GetStats()["started"], ShouldBeFalse)
		})
	})
}

func TestService_ExplicitLogger(t *testing.T) {
	Convey("Given a service with an explicit logger", t, func() {
		l := logger.Nop()
		s := New(WithLogger(l))

		Convey("Then the option wins over the default", func() {
			So(s.logger, ShouldEqual, l)
		})
	})
}
