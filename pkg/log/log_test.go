package log

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    LogLevel
		wantErr bool
	}{
		{name: "error", input: "error", want: LogLevelError},
		{name: "warn", input: "warn", want: LogLevelWarn},
		{name: "info", input: "info", want: LogLevelInfo},
		{name: "debug", input: "debug", want: LogLevelDebug},
		{name: "trace", input: "trace", want: LogLevelTrace},
		{name: "unknown", input: "verbose", want: LogLevelError, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLogLevel(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
			if !tt.wantErr {
				assert.Equal(t, tt.input, got.String())
			}
		})
	}
}

func TestLogger_levelFiltering(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := New(buf, "", 0, LogLevelInfo)

	logger.Debug("hidden %d", 1)
	logger.Info("shown %d", 2)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	entry := map[string]interface{}{}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "shown 2", entry["msg"])
}

func TestLogger_WithFields(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := New(buf, "", 0, LogLevelTrace).WithFields(Fields{"round": "abc"})
	child := logger.WithFields(Fields{"piece": "A", "msg": "ignored"})

	child.Trace("moved")

	entry := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "trace", entry["level"])
	assert.Equal(t, "moved", entry["msg"])
	assert.Equal(t, "abc", entry["round"])
	assert.Equal(t, "A", entry["piece"])
	// encoding/json writes map keys in sorted order
	assert.Equal(t, `{"level":"trace","msg":"moved","piece":"A","round":"abc"}`, string(bytes.TrimSpace(buf.Bytes())))
}
