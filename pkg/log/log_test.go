package log

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultLogger(t *testing.T) {
	logger := NewDefaultLogger()
	require.NotNil(t, logger)
	assert.Equal(t, logrus.InfoLevel, logger.GetLogrus().GetLevel())
}

func TestNewLoggerWithLevel(t *testing.T) {
	tests := []struct {
		name     string
		level    string
		expected logrus.Level
	}{
		{"debug level", "debug", logrus.DebugLevel},
		{"info level", "info", logrus.InfoLevel},
		{"warn level", "warn", logrus.WarnLevel},
		{"error level", "error", logrus.ErrorLevel},
		{"invalid level", "invalid", logrus.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := NewLoggerWithLevel(tt.level)
			require.NotNil(t, logger)
			assert.Equal(t, tt.expected, logger.GetLogrus().GetLevel())
		})
	}
}

func TestDefaultLoggerOutput(t *testing.T) {
	var buf bytes.Buffer

	logger := NewLoggerWithLevel("debug")
	logger.SetOutput(&buf)

	var _ Logger = logger

	logger.Debugf("loaded %d attributes", 3)
	logger.WithField("file", "microsoft.yaml").Warnf("duplicate %s", "vendor")

	out := buf.String()
	assert.Contains(t, out, "loaded 3 attributes")
	assert.Contains(t, out, "duplicate vendor")
	assert.Contains(t, out, "file=microsoft.yaml")
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer

	logger := NewLoggerWithLevel("error")
	logger.SetOutput(&buf)

	logger.Infof("hidden")
	assert.Empty(t, buf.String())

	logger.Errorf("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestNopLogger(t *testing.T) {
	logger := NewNopLogger()

	assert.NotPanics(t, func() {
		logger.Debugf("test %s", "debug")
		logger.Infof("test %s", "info")
		logger.Warnf("test %s", "warn")
		logger.Errorf("test %s", "error")
		logger.WithField("k", "v").Infof("test")
	})
}
