package observability

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    slog.Level
		wantErr bool
	}{
		{name: "debug", input: "debug", want: slog.LevelDebug},
		{name: "upper case", input: "INFO", want: slog.LevelInfo},
		{name: "warn", input: "warn", want: slog.LevelWarn},
		{name: "error", input: "error", want: slog.LevelError},
		{name: "offset", input: "info+2", want: slog.LevelInfo + 2},
		{name: "padded", input: " error ", want: slog.LevelError},
		{name: "unknown", input: "verbose", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			lvl, err := ParseLevel(test.input)
			if test.wantErr {
				require.ErrorContains(t, err, "invalid log level")
				assert.Equal(t, DefaultLevel, lvl)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.want, lvl)
		})
	}
}

func TestInitSlog(t *testing.T) {
	t.Parallel()

	t.Run("json when not a terminal", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		logger := InitSlog(&buf, slog.LevelInfo)
		logger.InfoContext(context.Background(), "hashed", slog.Int("cost", 12))

		var record map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
		assert.Equal(t, "hashed", record["msg"])
		assert.InDelta(t, 12, record["cost"], 0)
	})

	t.Run("filters below level", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		logger := InitSlog(&buf, DefaultLevel)
		logger.InfoContext(context.Background(), "hidden")
		assert.Empty(t, buf.String())
	})
}
