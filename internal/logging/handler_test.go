package logging_test

import (
	"bytes"
	"log/slog"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"transfuse/internal/logging"
)

func TestTextHandler(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	logger := slog.New(logging.NewTextHandler(buf, slog.LevelInfo))

	logger.Debug("hidden")
	logger.Info("loaded config", "output", "text")

	line := buf.String()
	assert.NotContains(t, line, "hidden")
	assert.Regexp(t, regexp.MustCompile(`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2} INFO loaded config output=text\n$`), line)
}

func TestTextHandlerWithAttrsAndGroup(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	logger := slog.New(logging.NewTextHandler(buf, slog.LevelDebug)).
		With("cmd", "version").
		WithGroup("build")

	logger.Debug("resolved", "commit", "abc123")

	assert.Contains(t, buf.String(), "DEBUG resolved cmd=version build.commit=abc123")
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tcs := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"WARN":  slog.LevelWarn,
		"error": slog.LevelError,
	}
	for in, want := range tcs {
		got, err := logging.ParseLevel(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := logging.ParseLevel("loud")
	require.Error(t, err)
}
