package logs

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStreamLogger(t *testing.T) {
	t.Parallel()

	var logOut, errOut bytes.Buffer
	l := NewWriters(false, map[string]io.Writer{
		StreamLog:   &logOut,
		StreamError: &errOut,
	})

	l.Log("tasks", "added", 3, "tasks")
	l.Error("tasks add", "disk full")
	l.Debug("tasks", "invisible")

	assert.Contains(t, logOut.String(), "tasks")
	assert.Contains(t, logOut.String(), "added 3 tasks")
	assert.NotContains(t, logOut.String(), "invisible")
	assert.Contains(t, errOut.String(), "tasks add [ERROR]")
	assert.Contains(t, errOut.String(), "disk full")

	l.SetDebug(true)
	require.True(t, l.DebugEnabled())
	l.Debug("tasks", "now visible")
	// Without its own writer the debug stream shares the log stream.
	assert.Contains(t, logOut.String(), "tasks [DEBUG]")
	assert.Contains(t, logOut.String(), "now visible")
}

func TestStreamLoggerUnknownStream(t *testing.T) {
	t.Parallel()

	var logOut bytes.Buffer
	l := NewWriters(false, map[string]io.Writer{StreamLog: &logOut})
	l.LogTo("audit", "who", "to the log stream")
	assert.Contains(t, logOut.String(), "to the log stream")
}

func TestNewWithFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfg := Config{
		Log:          filepath.Join(dir, "log.txt"),
		Error:        filepath.Join(dir, "nested", "error.txt"),
		DebugEnabled: true,
		Streams:      map[string]string{"audit": filepath.Join(dir, "audit.txt"), "shared": ""},
	}
	l, err := New(cfg)
	require.NoError(t, err)

	l.Log("app", "started")
	l.Error("app", "failed")
	l.Debug("app", "details")
	l.LogTo("audit", "app", "login")
	l.LogTo("shared", "app", "shared line")
	require.NoError(t, l.AddStream("extra", filepath.Join(dir, "extra.txt")))
	l.LogTo("extra", "app", "extra line")
	require.NoError(t, l.Close())

	read := func(name string) string {
		data, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err)
		return string(data)
	}
	logText := read("log.txt")
	assert.Contains(t, logText, "started")
	assert.Contains(t, logText, "shared line")
	// No debug path: debug shares the log stream.
	assert.Contains(t, logText, "app [DEBUG]")
	assert.NotContains(t, logText, "failed")

	assert.Contains(t, read("nested/error.txt"), "app [ERROR]")
	assert.Contains(t, read("audit.txt"), "login")
	assert.Contains(t, read("extra.txt"), "extra line")
}

func TestNewBadPath(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(file, nil, 0o644))

	_, err := New(Config{Log: filepath.Join(file, "below", "log.txt")})
	require.Error(t, err)
}

func TestAddStreamRequiresName(t *testing.T) {
	t.Parallel()

	l := NewWriters(false, map[string]io.Writer{StreamLog: io.Discard})
	assert.Error(t, l.AddStream("", "-"))
}

func TestNamed(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	l := NewWriters(true, map[string]io.Writer{StreamLog: &out})

	n := NewNamed("worker", l)
	n.Log("one")
	n.Error("two")
	n.Debug("shown")
	n.LogTo(StreamLog, "three")
	assert.Contains(t, out.String(), "one")
	assert.Contains(t, out.String(), "worker [ERROR]")
	assert.Contains(t, out.String(), "worker [DEBUG]")
	assert.Contains(t, out.String(), "shown")
	assert.Contains(t, out.String(), "three")
	assert.Equal(t, 4, strings.Count(out.String(), "worker"))

	n.NoDebug = true
	n.Debug("skipped")
	assert.NotContains(t, out.String(), "skipped")

	// The logger's own setting still gates an enabled Named.
	l.SetDebug(false)
	NewNamed("quiet", l).Debug("dropped")
	assert.NotContains(t, out.String(), "dropped")
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "logging.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
log = "-"
error = "/var/log/app/error.log"
debug_enabled = true

[streams]
audit = "audit.log"
`), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, Config{
		Log:          "-",
		Error:        "/var/log/app/error.log",
		DebugEnabled: true,
		Streams:      map[string]string{"audit": "audit.log"},
	}, cfg)

	cfg, err = LoadConfig(filepath.Join(dir, "missing.toml"))
	require.NoError(t, err)
	assert.Equal(t, Config{}, cfg)

	cfg, err = LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, Config{}, cfg)

	require.NoError(t, os.WriteFile(path, []byte("log = ["), 0o644))
	_, err = LoadConfig(path)
	assert.ErrorContains(t, err, "parsing logger config")
}

func TestDefault(t *testing.T) {
	// Not parallel: touches the process-wide default.
	first := Default()
	require.NotNil(t, first)
	assert.Same(t, first, Default())
	assert.ErrorIs(t, Init(Config{}), ErrAlreadyInitialized)
}
