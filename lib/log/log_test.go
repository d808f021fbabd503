package log_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"cdr.dev/slog"
	"github.com/stretchr/testify/assert"

	"oss.terrastruct.com/shapearea/lib/log"
)

func TestHuman(t *testing.T) {
	t.Setenv("DEBUG", "")

	var b bytes.Buffer
	ctx := log.Human(context.Background(), &b, false)
	log.Debug(ctx, "hidden")
	log.Info(ctx, "computed", slog.F("area", 6.0))
	log.Sync(ctx)

	out := b.String()
	assert.False(t, strings.Contains(out, "hidden"), out)
	assert.Contains(t, out, "computed")
	assert.Contains(t, out, "area")

	b.Reset()
	ctx = log.Human(context.Background(), &b, true)
	ctx = log.Named(ctx, "shape")
	log.Debug(ctx, "visible")
	log.Sync(ctx)
	assert.Contains(t, b.String(), "visible")
}

func TestWithTB(t *testing.T) {
	t.Parallel()

	ctx := log.WithTB(context.Background(), t, nil)
	ctx = log.Leveled(ctx, slog.LevelDebug)
	log.Debug(ctx, "debug from test")
	log.Warn(ctx, "warn from test")
}
