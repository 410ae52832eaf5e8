package logger

import (
	"bytes"
	"context"
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestLoggerInit(t *testing.T) {
	Convey("Given the global logger", t, func() {
		Convey("When initialized with the default writer", func() {
			So(Init(), ShouldBeNil)

			Convey("Then Get returns a logger", func() {
				So(Get(), ShouldNotBeNil)
				So(Sync(), ShouldBeNil)
			})
		})

		Convey("When initialized with a nil writer", func() {
			err := InitWithWriter(nil)

			Convey("Then it should fail", func() {
				So(err, ShouldNotBeNil)
			})
		})
	})
}

func TestLoggerOutput(t *testing.T) {
	Convey("Given a logger writing to a buffer", t, func() {
		var buf bytes.Buffer
		So(InitWithWriter(&buf), ShouldBeNil)
		ctx := context.Background()

		Convey("When logging at info with fields", func() {
			Get().Info(ctx, "selection finished", String("run_id", "r-1"), Int("champions", 2), Uint("rank", 1100))

			Convey("Then the record carries message, fields and source", func() {
				out := buf.String()
				So(out, ShouldContainSubstring, "selection finished")
				So(out, ShouldContainSubstring, "run_id=r-1")
				So(out, ShouldContainSubstring, "champions=2")
				So(out, ShouldContainSubstring, "rank=1100")
				So(out, ShouldContainSubstring, "logger_test.go")
			})
		})

		Convey("When logging an error", func() {
			Get().Error(ctx, "load failed", Error(errors.New("boom")))

			Convey("Then the error is included", func() {
				So(buf.String(), ShouldContainSubstring, "error=boom")
			})
		})

		Convey("When debug is disabled", func() {
			Get().Debug(ctx, "hidden detail")

			Convey("Then nothing is written", func() {
				So(buf.String(), ShouldBeEmpty)
			})
		})

		Convey("When the level is lowered to debug", func() {
			So(SetLevelString("DEBUG"), ShouldBeNil)
			Get().Debug(ctx, "visible detail")

			Convey("Then debug records appear", func() {
				So(buf.String(), ShouldContainSubstring, "visible detail")
			})
		})

		Convey("When the level is raised to error", func() {
			So(SetLevelString("error"), ShouldBeNil)
			Get().Warn(ctx, "suppressed warning")

			Convey("Then warnings are dropped", func() {
				So(buf.String(), ShouldBeEmpty)
			})
		})

		Convey("When using a named logger with bound fields", func() {
			Named("app").With(String("run_id", "r-9")).Info(ctx, "hello")

			Convey("Then both the component and bound field are written", func() {
				So(buf.String(), ShouldContainSubstring, "component=app")
				So(buf.String(), ShouldContainSubstring, "run_id=r-9")
			})
		})
	})
}

func TestSetLevelString(t *testing.T) {
	Convey("Given level strings", t, func() {
		So(InitWithWriter(&bytes.Buffer{}), ShouldBeNil)

		Convey("Known levels are accepted", func() {
			for _, l := range []string{"debug", "info", "", "warn", "warning", "error", " Info "} {
				So(SetLevelString(l), ShouldBeNil)
			}
		})

		Convey("Unknown levels are rejected", func() {
			So(SetLevelString("verbose"), ShouldNotBeNil)
		})
	})
}
