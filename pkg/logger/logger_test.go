package logger

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func TestLoggerInit(t *testing.T) {
	err := Init()
	if err != nil {
		t.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := Sync(); err != nil {
			t.Errorf("failed to sync logger: %v", err)
		}
	}()

	logger := Get()
	if logger == nil {
		t.Fatal("logger is nil after initialization")
	}

	ctx := context.Background()
	logger.Info(ctx, "test message", String("k", "v"))
	Named("test").Info(ctx, "named message")
}

func TestLoggerOutput(t *testing.T) {
	Convey("Given a logger writing to a buffer", t, func() {
		var buf bytes.Buffer
		level := new(slog.LevelVar)
		l := New(&buf, WithLevel(level))
		ctx := context.Background()

		Convey("When logging at info with fields", func() {
			l.Info(ctx, "request done",
				String("endpoint", "/get_scores"),
				Int("status", 200),
				Bool("cached", false),
				Duration("took", 15*time.Millisecond),
				Error(errors.New("boom")),
			)
			out := buf.String()

			Convey("Then the record should carry every field and the caller", func() {
				So(out, ShouldContainSubstring, "request done")
				So(out, ShouldContainSubstring, "endpoint=/get_scores")
				So(out, ShouldContainSubstring, "status=200")
				So(out, ShouldContainSubstring, "cached=false")
				So(out, ShouldContainSubstring, "took=15ms")
				So(out, ShouldContainSubstring, "error=boom")
				So(out, ShouldContainSubstring, "logger_test.go:")
			})
		})

		Convey("When logging below the configured level", func() {
			l.Debug(ctx, "hidden")
			So(buf.Len(), ShouldEqual, 0)

			Convey("Then lowering the level should let it through", func() {
				level.Set(slog.LevelDebug)
				l.Debug(ctx, "visible")
				So(buf.String(), ShouldContainSubstring, "visible")
			})
		})

		Convey("When using a named logger", func() {
			l.Named("transport").Warn(ctx, "slow", String("endpoint", "/get_user"))
			So(buf.String(), ShouldContainSubstring, "transport.endpoint=/get_user")
		})
	})

	Convey("Given a JSON logger without source", t, func() {
		var buf bytes.Buffer
		l := New(&buf, WithJSON(), WithoutSource())
		l.Error(context.Background(), "failed", String("k", "v"))

		Convey("Then it should emit a JSON line without a source field", func() {
			out := buf.String()
			So(strings.HasPrefix(out, "{"), ShouldBeTrue)
			So(out, ShouldContainSubstring, `"k":"v"`)
			So(out, ShouldNotContainSubstring, `"source"`)
		})
	})
}

func TestNop(t *testing.T) {
	Convey("Given the no-op logger", t, func() {
		l := Nop()

		Convey("Then logging should not panic", func() {
			So(func() {
				ctx := context.Background()
				l.Info(ctx, "x")
				l.Debug(ctx, "x")
				l.Warn(ctx, "x")
				l.Error(ctx, "x", Error(errors.New("e")))
				l.Named("a").Info(ctx, "y")
			}, ShouldNotPanic)
		})
	})
}

func TestParseLevel(t *testing.T) {
	Convey("Given level names", t, func() {
		cases := map[string]slog.Level{
			"debug":   slog.LevelDebug,
			"":        slog.LevelInfo,
			"INFO":    slog.LevelInfo,
			"warning": slog.LevelWarn,
			" error ": slog.LevelError,
		}
		for in, want := range cases {
			got, err := ParseLevel(in)
			So(err, ShouldBeNil)
			So(got, ShouldEqual, want)
		}

		_, err := ParseLevel("loud")
		So(err, ShouldNotBeNil)
		So(SetLevelString("loud"), ShouldNotBeNil)
	})
}

func TestNopFatal(t *testing.T) {
	Convey("Given the no-op logger", t, func() {
		var buf bytes.Buffer
		code := -1
		origExit, origOut := exit, fatalOut
		exit = func(c int) { code = c }
		fatalOut = &buf
		defer func() { exit, fatalOut = origExit, origOut }()

		Convey("When Fatal is called", func() {
			Nop().Named("client").Fatal(context.Background(), "cannot continue", String("endpoint", "/get_user"))

			Convey("Then the message should be printed before exiting", func() {
				So(code, ShouldEqual, 1)
				So(buf.String(), ShouldEqual, "FATAL cannot continue endpoint=/get_user\n")
			})
		})

		Convey("When the other levels are used", func() {
			l := Nop()
			l.Info(context.Background(), "ignored")
			l.Error(context.Background(), "ignored")

			Convey("Then nothing should be written", func() {
				So(buf.Len(), ShouldEqual, 0)
				So(code, ShouldEqual, -1)
			})
		})
	})
}
