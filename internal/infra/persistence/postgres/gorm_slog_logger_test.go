package postgres

import (
	"bytes"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"institute/config"
)

func newCapturedGormLogger(debug bool) (logger.Interface, *bytes.Buffer) {
	buf := new(bytes.Buffer)
	base := slog.New(slog.NewTextHandler(buf, nil))

	cfg := new(config.Config)
	cfg.Env.Debug = debug

	return newGormSlogLogger(base, cfg), buf
}

func sqlFn(sql string) func() (string, int64) {
	return func() (string, int64) { return sql, 1 }
}

func TestGormSlogLogger_Trace(t *testing.T) {
	t.Parallel()

	t.Run("record not found is not an error", func(t *testing.T) {
		t.Parallel()

		gl, buf := newCapturedGormLogger(false)
		gl.Trace(t.Context(), time.Now(), sqlFn("SELECT 1"), gorm.ErrRecordNotFound)

		assert.Empty(t, buf.String())
	})

	t.Run("query failure is logged with the statement", func(t *testing.T) {
		t.Parallel()

		gl, buf := newCapturedGormLogger(false)
		gl.Trace(t.Context(), time.Now(), sqlFn("SELECT broken"), assert.AnError)

		assert.Contains(t, buf.String(), "GORM query failed")
		assert.Contains(t, buf.String(), "SELECT broken")
	})

	t.Run("slow query warns outside debug mode", func(t *testing.T) {
		t.Parallel()

		gl, buf := newCapturedGormLogger(false)
		gl.Trace(t.Context(), time.Now().Add(-2*slowQueryThreshold), sqlFn("SELECT pg_sleep(1)"), nil)

		assert.Contains(t, buf.String(), "GORM slow query")
	})

	t.Run("fast query is silent unless debugging", func(t *testing.T) {
		t.Parallel()

		gl, buf := newCapturedGormLogger(false)
		gl.Trace(t.Context(), time.Now(), sqlFn("SELECT 1"), nil)
		assert.Empty(t, buf.String())

		gl, buf = newCapturedGormLogger(true)
		gl.Trace(t.Context(), time.Now(), sqlFn("SELECT 1"), nil)
		assert.Contains(t, buf.String(), "GORM query")
	})

	t.Run("LogMode silences without touching the original", func(t *testing.T) {
		t.Parallel()

		gl, buf := newCapturedGormLogger(false)
		silent := gl.LogMode(logger.Silent)

		silent.Trace(t.Context(), time.Now(), sqlFn("SELECT broken"), assert.AnError)
		assert.Empty(t, buf.String())

		gl.Trace(t.Context(), time.Now(), sqlFn("SELECT broken"), assert.AnError)
		assert.Contains(t, buf.String(), "GORM query failed")
	})
}
