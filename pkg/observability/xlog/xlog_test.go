package xlog_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/omeyang/resultcache/pkg/observability/xlog"
)

func testCleanup(t *testing.T, cleanup func() error) {
	t.Helper()
	t.Cleanup(func() {
		if err := cleanup(); err != nil {
			t.Errorf("cleanup error: %v", err)
		}
	})
}

func TestLogger_BasicLogging(t *testing.T) {
	var buf bytes.Buffer
	logger, cleanup, err := xlog.New().
		SetOutput(&buf).
		SetLevel(xlog.LevelDebug).
		Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	testCleanup(t, cleanup)

	ctx := context.Background()
	logger.Debug(ctx, "debug message")
	logger.Info(ctx, "info message")
	logger.Warn(ctx, "warn message")
	logger.Error(ctx, "error message", xlog.Err(errors.New("boom")))

	output := buf.String()
	for _, want := range []string{"debug message", "info message", "warn message", "error message", "error=boom"} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q\noutput: %s", want, output)
		}
	}
}

func TestLogger_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, cleanup, err := xlog.New().
		SetOutput(&buf).
		SetFormat(" JSON ").
		Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	testCleanup(t, cleanup)

	logger.With(slog.String(xlog.KeyComponent, "xresult")).
		WithGroup("cache").
		Info(context.Background(), "report written", slog.Int(xlog.KeyCount, 3))

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}
	if record["msg"] != "report written" {
		t.Errorf("msg = %v", record["msg"])
	}
	if record[xlog.KeyComponent] != "xresult" {
		t.Errorf("component = %v", record[xlog.KeyComponent])
	}
	group, ok := record["cache"].(map[string]any)
	if !ok || group[xlog.KeyCount] != float64(3) {
		t.Errorf("cache group = %v", record["cache"])
	}
}

func TestLogger_DynamicLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, cleanup, err := xlog.New().SetOutput(&buf).SetLevelString("warn").Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	testCleanup(t, cleanup)

	ctx := context.Background()
	child := logger.With(slog.String("k", "v"))

	child.Info(ctx, "hidden")
	if buf.Len() != 0 {
		t.Fatalf("info should be filtered at warn level: %s", buf.String())
	}
	if logger.Enabled(ctx, xlog.LevelInfo) {
		t.Error("Enabled(Info) should be false at warn level")
	}

	logger.SetLevel(xlog.LevelDebug)
	if logger.GetLevel() != xlog.LevelDebug {
		t.Errorf("GetLevel() = %v, want DEBUG", logger.GetLevel())
	}
	child.Debug(ctx, "visible")
	if !strings.Contains(buf.String(), "visible") {
		t.Errorf("derived logger should follow parent level: %s", buf.String())
	}
}

func TestBuilder_Errors(t *testing.T) {
	tests := []struct {
		name    string
		builder *xlog.Builder
	}{
		{"unknown level", xlog.New().SetLevelString("verbose")},
		{"unknown format", xlog.New().SetFormat("xml")},
		{"empty rotation filename", xlog.New().SetRotation("")},
		{"first error wins", xlog.New().SetFormat("xml").SetLevelString("nope")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, cleanup, err := tt.builder.Build()
			if err == nil {
				t.Fatal("Build() expected error")
			}
			if logger != nil || cleanup != nil {
				t.Error("logger and cleanup should be nil on error")
			}
		})
	}

	t.Run("first error message", func(t *testing.T) {
		_, _, err := xlog.New().SetFormat("xml").SetLevelString("nope").Build()
		if err == nil || !strings.Contains(err.Error(), "format") {
			t.Errorf("err = %v, want format error", err)
		}
	})
}

func TestBuilder_Rotation(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "logs", "app.log")
	logger, cleanup, err := xlog.New().SetRotation(filename).Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	logger.Info(context.Background(), "to file")
	if err := cleanup(); err != nil {
		t.Fatalf("cleanup: %v", err)
	}
	if err := cleanup(); err != nil {
		t.Errorf("second cleanup should be a no-op: %v", err)
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "to file") {
		t.Errorf("file content = %q", data)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestLogger_OnError(t *testing.T) {
	var got []error
	logger, cleanup, err := xlog.New().
		SetOutput(failingWriter{}).
		SetOnError(func(err error) {
			got = append(got, err)
			panic("callback panic is isolated")
		}).
		Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	testCleanup(t, cleanup)

	logger.Info(context.Background(), "lost")
	logger.With(slog.String("k", "v")).Info(context.Background(), "lost too")

	if len(got) != 2 {
		t.Fatalf("onError called %d times, want 2", len(got))
	}
	// 两次写入错误 + 两次回调 panic
	if n := xlog.ErrorCount(logger); n != 4 {
		t.Errorf("ErrorCount() = %d, want 4", n)
	}
}

func TestSlog(t *testing.T) {
	var buf bytes.Buffer
	logger, cleanup, err := xlog.New().SetOutput(&buf).Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	testCleanup(t, cleanup)

	xlog.Slog(logger).Info("from slog", slog.String("group", "watch"))
	if !strings.Contains(buf.String(), "from slog") {
		t.Errorf("output = %q", buf.String())
	}

	logger.SetLevel(xlog.LevelError)
	buf.Reset()
	xlog.Slog(logger).Info("filtered")
	if buf.Len() != 0 {
		t.Errorf("slog logger should share the level: %q", buf.String())
	}

	if xlog.Slog(nil) != slog.Default() {
		t.Error("Slog(nil) should return slog.Default()")
	}
}
