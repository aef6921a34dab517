package simplelogger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLog_WritesAndAppends(t *testing.T) {
	t.Setenv(LogFileEnv, filepath.Join(t.TempDir(), "diffcore.log"))
	require.True(t, Enabled())

	Log("hello %s", "world")
	Log(" %d", 123)

	b, err := os.ReadFile(os.Getenv(LogFileEnv))
	require.NoError(t, err)
	require.Equal(t, "hello world\n 123\n", string(b))
}

func TestLogger_Prefix(t *testing.T) {
	t.Setenv(LogFileEnv, filepath.Join(t.TempDir(), "diffcore.log"))

	l := New("altdiff")
	l.Log("too many tokens: %d", 7)
	l.Log("already terminated\n")

	b, err := os.ReadFile(os.Getenv(LogFileEnv))
	require.NoError(t, err)
	require.Equal(t, "altdiff: too many tokens: 7\naltdiff: already terminated\n", string(b))
}

func TestLog_NoOpWhenUnset(t *testing.T) {
	t.Setenv(LogFileEnv, "")
	require.False(t, Enabled())
	Log("should not %s", "panic")
	New("diff").Log("nor %s", "this")
}

func TestLog_NoOpWhenPathIsDirectory(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(LogFileEnv, dir)

	Log("ignored %d", 1)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Empty(t, entries)
}
