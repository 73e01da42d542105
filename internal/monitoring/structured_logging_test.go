package monitoring

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected LogLevel
		wantErr  bool
	}{
		{"debug", LevelDebug, false},
		{"INFO", LevelInfo, false},
		{"", LevelInfo, false},
		{"warning", LevelWarn, false},
		{"error", LevelError, false},
		{"verbose", LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			level, err := ParseLogLevel(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, level)
		})
	}
}

func TestParseLogFormat(t *testing.T) {
	format, err := ParseLogFormat("json")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, format)

	format, err = ParseLogFormat("Console")
	require.NoError(t, err)
	assert.Equal(t, FormatConsole, format)

	_, err = ParseLogFormat("xml")
	assert.Error(t, err)
}

func TestStructuredLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewStructuredLogger(LoggerConfig{
		Level:     LevelInfo,
		Format:    FormatJSON,
		Output:    &buf,
		Component: "cli",
	})

	logger.Debug("hidden %d", 1)
	assert.Zero(t, buf.Len())

	logger.Info("processed %d requests", 3)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "processed 3 requests", entry["msg"])
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "classix", entry["service"])
	assert.Equal(t, "cli", entry["component"])
}

func TestStructuredLogger_LogCipherOperation(t *testing.T) {
	var buf bytes.Buffer
	logger := NewStructuredLogger(LoggerConfig{Level: LevelDebug, Format: FormatJSON, Output: &buf})

	logger.LogCipherOperation(context.Background(), "hill", 3*time.Microsecond, errors.New("bad key"), map[string]any{"direction": "decrypt"})

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "cipher operation failed", entry["msg"])
	assert.Equal(t, "hill", entry["operation"])
	assert.Equal(t, "decrypt", entry["direction"])
	assert.Equal(t, "bad key", entry["error"])
	assert.Contains(t, entry, "caller")
}

func TestStructuredLogger_Console(t *testing.T) {
	var buf bytes.Buffer
	logger := NewStructuredLogger(LoggerConfig{Level: LevelInfo, Format: FormatConsole, Output: &buf})

	logger.WithFields(map[string]any{"cipher": "caesar"}).Warn("shift %d wraps", 29)

	out := buf.String()
	assert.Contains(t, out, "WARN")
	assert.Contains(t, out, "shift 29 wraps")
	assert.Contains(t, out, "cipher=caesar")
}
