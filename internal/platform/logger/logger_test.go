package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, Debug, ParseLevel("DEBUG"))
	assert.Equal(t, Warn, ParseLevel(" warning "))
	assert.Equal(t, Info, ParseLevel(""))
	assert.Equal(t, Info, ParseLevel("nope"))
}

func TestJSONLogger_MergesBaseAndFields(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: Info, Format: FormatJSON, App: "pet-care", Output: &buf})

	l.With(map[string]any{"request_id": "r-1"}).Info("hello", map[string]any{
		"status": 201,
		"err":    errors.New("boom"),
		"  ":     "ignored",
	})

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "hello", entry["msg"])
	assert.Equal(t, "pet-care", entry["app"])
	assert.Equal(t, "r-1", entry["request_id"])
	assert.Equal(t, "boom", entry["err"])
	assert.EqualValues(t, 201, entry["status"])
	assert.NotContains(t, entry, "  ")
}

func TestLogger_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: Warn, Format: FormatText, Output: &buf})

	l.Info("skipped", nil)
	l.Warn("kept", nil)

	out := buf.String()
	assert.False(t, strings.Contains(out, "skipped"))
	assert.True(t, strings.Contains(out, "kept"))
}

func TestFromContext(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: Info, Format: FormatText, Output: &buf})

	ctx := IntoContext(context.Background(), l.With(map[string]any{"request_id": "abc"}))
	FromContext(ctx).Info("in request", nil)
	assert.Contains(t, buf.String(), "request_id=abc")

	// Sin logger en el contexto no explota.
	FromContext(context.Background()).Error("dropped", nil)
}
