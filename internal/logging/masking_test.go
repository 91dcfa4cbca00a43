package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/telswitch/isdnc/internal/model"
)

func newTestLogger(t *testing.T) (*slog.Logger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	inner := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(NewMaskingHandler(inner)), &buf
}

func lastRecord(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	return rec
}

func TestMaskingHandlerMasksPhoneAttrs(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"bare digits", "2125551234"},
		{"parenthesized", "(212) 555-1234"},
		{"dashed", "212-555-1234"},
		{"dotted", "212.555.1234"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := newTestLogger(t)
			logger.Info("lookup", "phone_number", tt.input)

			rec := lastRecord(t, buf)
			assert.Equal(t, "***-***-1234", rec["phone_number"])
			assert.NotContains(t, buf.String(), "2125551234")
		})
	}
}

func TestMaskingHandlerLeavesOtherFieldsAlone(t *testing.T) {
	logger, buf := newTestLogger(t)
	logger.Info("login rejected", "username", "alice", "reason", "bad password")

	rec := lastRecord(t, buf)
	assert.Equal(t, "alice", rec["username"])
	assert.Equal(t, "bad password", rec["reason"])
}

func TestMaskingHandlerWithAttrs(t *testing.T) {
	logger, buf := newTestLogger(t)
	logger.With("phone", "(212) 555-1234").Info("history requested")

	rec := lastRecord(t, buf)
	assert.Equal(t, "***-***-1234", rec["phone"])
}

func TestMaskingHandlerInsideGroup(t *testing.T) {
	logger, buf := newTestLogger(t)
	logger.Info("lookup", slog.Group("query", slog.String("phone", "212-555-1234"), slog.String("date", "01/15/2024")))

	rec := lastRecord(t, buf)
	query, ok := rec["query"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "***-***-1234", query["phone"])
	assert.Equal(t, "01/15/2024", query["date"])
}

func TestMaskingHandlerResolvesPhoneValuer(t *testing.T) {
	logger, buf := newTestLogger(t)
	logger.Info("lookup", "number", model.Phone("2125551234"))

	rec := lastRecord(t, buf)
	assert.Equal(t, "***-***-1234", rec["number"])
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("WARN"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
	assert.Equal(t, slog.LevelInfo, ParseLevel("bogus"))
}
