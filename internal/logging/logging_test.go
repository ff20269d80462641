package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("タイムスタンプ無しではtime属性を出力しない", func(t *testing.T) {
		buf := new(bytes.Buffer)
		New(buf, slog.LevelInfo, false).Info("hello", "model", "nano-banana")

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.NotContains(t, entry, slog.TimeKey)
		assert.Equal(t, "hello", entry[slog.MessageKey])
		assert.Equal(t, "nano-banana", entry["model"])
	})

	t.Run("タイムスタンプ有りではtime属性を出力する", func(t *testing.T) {
		buf := new(bytes.Buffer)
		New(buf, slog.LevelInfo, true).Info("hello")

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Contains(t, entry, slog.TimeKey)
	})

	t.Run("レベル未満のログは出力しない", func(t *testing.T) {
		buf := new(bytes.Buffer)
		New(buf, slog.LevelWarn, true).Info("ignored")
		assert.Zero(t, buf.Len())
	})
}
