package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/home-assistant/sarifmerge/internal/config"
)

func TestParseLogLevel(t *testing.T) {
	testCases := []struct {
		in   string
		want hclog.Level
	}{
		{in: "TRACE", want: hclog.Trace},
		{in: "DEBUG", want: hclog.Debug},
		{in: "INFO", want: hclog.Info},
		{in: "WARN", want: hclog.Warn},
		{in: "ERROR", want: hclog.Error},
		{in: "LOUD", want: hclog.Info},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, parseLogLevel(tc.in))
		})
	}
}

func TestDetermineLogLevel(t *testing.T) {
	t.Setenv(config.EnvLogLevel, "")
	assert.Equal(t, hclog.Info, determineLogLevel(nil))
	assert.Equal(t, hclog.Debug, determineLogLevel(&config.Config{Logger: config.Logger{Level: "debug"}}))

	t.Setenv(config.EnvLogLevel, "error")
	assert.Equal(t, hclog.Error, determineLogLevel(&config.Config{Logger: config.Logger{Level: "debug"}}))
}

func TestNewLoggerJSONFormat(t *testing.T) {
	t.Setenv(config.EnvLogLevel, "")
	enabled := true
	cfg := &config.Config{Logger: config.Logger{JSONFormat: &enabled}}

	var buf bytes.Buffer
	l := newLogger(cfg, "merge", &buf)
	l.Info("merged", "files", 2)

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "merged", line["@message"])
	assert.Equal(t, "merge", line["@module"])
	assert.EqualValues(t, 2, line["files"])
}
