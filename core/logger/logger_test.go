package logger

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetWriterForAll(&buf)
	SetColor(false)
	t.Cleanup(func() {
		SetWriterForAll(os.Stderr)
		SetColor(true)
		SetVerbose(false)
	})
	return &buf
}

func TestDebugNeedsVerbose(t *testing.T) {
	buf := capture(t)

	Debug("hidden %d", 1)
	assert.Empty(t, buf.String())

	SetVerbose(true)
	Debug("shown %d", 2)
	assert.Contains(t, buf.String(), "DEBUG shown 2")
}

func TestSetLevel(t *testing.T) {
	buf := capture(t)
	SetLevel(WARN)

	Info("quiet")
	Warn("loud")
	assert.NotContains(t, buf.String(), "quiet")
	assert.Contains(t, buf.String(), "loud")
}

func TestPlainFormat(t *testing.T) {
	buf := capture(t)

	Info("mapped %d files", 3)
	Warn("careful")
	Error("broken: %v", "io")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasSuffix(lines[0], "INFO  mapped 3 files"))
	assert.True(t, strings.HasSuffix(lines[1], "WARN  careful"))
	assert.True(t, strings.HasSuffix(lines[2], "ERROR broken: io"))
	assert.NotContains(t, buf.String(), "\033[")
}

func TestAddWriter(t *testing.T) {
	buf := capture(t)
	var extra bytes.Buffer
	AddWriter(WARN, &extra)

	Info("only primary")
	Warn("both")

	assert.Contains(t, buf.String(), "only primary")
	assert.NotContains(t, extra.String(), "only primary")
	assert.Contains(t, extra.String(), "both")
}

func TestParseLevel(t *testing.T) {
	for name, want := range map[string]LogLevel{
		"debug":   DEBUG,
		"":        INFO,
		"Warning": WARN,
		"ERROR":   ERROR,
	} {
		got, err := ParseLevel(name)
		require.NoError(t, err)
		assert.Equal(t, want, got, name)
	}

	_, err := ParseLevel("loud")
	assert.Error(t, err)
}
