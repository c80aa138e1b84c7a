package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJSONLogger(t *testing.T, level slog.Level) (*SlogLogger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	h := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: level})
	return NewSlogLogger(slog.New(h)), &buf
}

func records(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &m))
		out = append(out, m)
	}
	return out
}

func TestSlogLogger_Levels(t *testing.T) {
	log, buf := newJSONLogger(t, slog.LevelInfo)
	ctx := context.Background()

	log.Debug(ctx, "refetch discarded", "gen", 1)
	log.Info(ctx, "loaded", "table", "papers")
	log.Warn(ctx, "retrying", "table", "words")
	log.Error(ctx, "store failed", "code", "Unavailable")

	got := records(t, buf)
	require.Len(t, got, 3)
	assert.Equal(t, "INFO", got[0]["level"])
	assert.Equal(t, "papers", got[0]["table"])
	assert.Equal(t, "WARN", got[1]["level"])
	assert.Equal(t, "ERROR", got[2]["level"])
	assert.Equal(t, "Unavailable", got[2]["code"])
}

func TestSlogLogger_WithAndContextFields(t *testing.T) {
	log, buf := newJSONLogger(t, slog.LevelDebug)

	ctx := ContextWith(context.Background(), "request_id", "r-1")
	ctx = ContextWith(ctx, "user_id", "u-7")
	log.With("module", "web").Info(ctx, "handled", "status", 200)

	got := records(t, buf)
	require.Len(t, got, 1)
	assert.Equal(t, "web", got[0]["module"])
	assert.Equal(t, "r-1", got[0]["request_id"])
	assert.Equal(t, "u-7", got[0]["user_id"])
	assert.EqualValues(t, 200, got[0]["status"])
}

func TestContextWith_DoesNotLeakBetweenBranches(t *testing.T) {
	base := ContextWith(context.Background(), "a", 1)
	left := ContextWith(base, "b", 2)
	right := ContextWith(base, "c", 3)

	assert.Equal(t, []any{"x", 0, "a", 1, "b", 2}, withContext(left, []any{"x", 0}))
	assert.Equal(t, []any{"a", 1, "c", 3}, withContext(right, nil))
	assert.Equal(t, []any{"x"}, withContext(context.Background(), []any{"x"}))
}

func TestSlogLogger_NilContext(t *testing.T) {
	log, buf := newJSONLogger(t, slog.LevelInfo)

	//nolint:staticcheck // nil context is tolerated
	log.Info(nil, "no context")
	assert.Contains(t, buf.String(), `"msg":"no context"`)
}
