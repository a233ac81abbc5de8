package logging

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}

func TestNewRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "warn")

	l.Info("hidden")
	l.Warn("shown", "table", "pet")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "table=pet")
}

func TestGormLoggerWritesThroughSlog(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "info")

	Gorm(l, "info").Warn(context.Background(), "slow %s", "query")

	assert.Contains(t, buf.String(), "slow query")

	buf.Reset()
	Gorm(l, "error").Warn(context.Background(), "suppressed")
	assert.Empty(t, buf.String())
}

func TestGormLoggerHonoursHandlerLevel(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		level     string
		errShown  bool
		warnShown bool
	}{
		{level: "warn", errShown: true, warnShown: true},
		{level: "error", errShown: true, warnShown: false},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			var buf bytes.Buffer
			g := Gorm(New(&buf, tt.level), tt.level)

			g.Error(ctx, "insert failed: %s", "boom")
			assert.Equal(t, tt.errShown, strings.Contains(buf.String(), "insert failed: boom"))
			assert.Contains(t, buf.String(), "level=ERROR")

			buf.Reset()
			g.Warn(ctx, "slow: %s", "q")
			assert.Equal(t, tt.warnShown, strings.Contains(buf.String(), "slow: q"))
		})
	}
}

func TestGormTrace(t *testing.T) {
	ctx := context.Background()
	stmt := func() (string, int64) { return `INSERT INTO "pet" ("name") VALUES ('x')`, 0 }

	t.Run("failed statement at error level", func(t *testing.T) {
		var buf bytes.Buffer
		Gorm(New(&buf, "error"), "error").Trace(ctx, time.Now(), stmt, errors.New("null value in column"))

		assert.Contains(t, buf.String(), "level=ERROR")
		assert.Contains(t, buf.String(), "sql failed")
		assert.Contains(t, buf.String(), "null value in column")
	})

	t.Run("record not found is ignored", func(t *testing.T) {
		var buf bytes.Buffer
		Gorm(New(&buf, "debug"), "debug").Trace(ctx, time.Now(), stmt, gorm.ErrRecordNotFound)

		assert.NotContains(t, buf.String(), "sql failed")
	})

	t.Run("slow statement at warn level", func(t *testing.T) {
		var buf bytes.Buffer
		Gorm(New(&buf, "warn"), "warn").Trace(ctx, time.Now().Add(-time.Second), stmt, nil)

		assert.Contains(t, buf.String(), "level=WARN")
		assert.Contains(t, buf.String(), "slow sql")
	})

	t.Run("plain sql only at debug", func(t *testing.T) {
		var buf bytes.Buffer
		Gorm(New(&buf, "info"), "info").Trace(ctx, time.Now(), stmt, nil)
		assert.Empty(t, buf.String())

		Gorm(New(&buf, "debug"), "debug").Trace(ctx, time.Now(), stmt, nil)
		assert.Contains(t, buf.String(), "level=DEBUG")
		assert.Contains(t, buf.String(), "INSERT INTO")
	})
}
