// Package logs provides the diagnostic sink used by command interpreters and their actions.
//
// A [StreamLogger] writes to named streams. Three streams always exist: "log" for ordinary
// messages, "error" and "debug". Each message is keyed by its originator ("who"), which is
// rendered as the message prefix. Applications can add their own streams with
// [StreamLogger.AddStream].
//
// The process-wide default logger is created once, either explicitly with [Init] at startup or
// lazily by the first call to [Default].
package logs

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// Stream names that every StreamLogger provides.
const (
	StreamLog   = "log"
	StreamError = "error"
	StreamDebug = "debug"
)

// Logger is the sink interpreters write diagnostics to.
type Logger interface {
	// LogTo writes a message from who to the named stream.
	LogTo(stream, who string, msg ...any)
	Log(who string, msg ...any)
	Error(who string, msg ...any)
	Debug(who string, msg ...any)
}

// StreamLogger is a [Logger] writing each stream through its own charmbracelet logger. It is
// safe for concurrent use.
type StreamLogger struct {
	mu         sync.RWMutex
	streams    map[string]*log.Logger
	closers    []io.Closer
	debug      bool
	timestamps bool
}

var _ Logger = (*StreamLogger)(nil)

// New creates a StreamLogger from cfg. Output paths are interpreted as follows: "-" selects the
// standard output (standard error for the error and debug streams), any other non-empty value is
// a file opened for appending, and an empty value shares the log stream.
func New(cfg Config) (*StreamLogger, error) {
	l := &StreamLogger{
		streams:    make(map[string]*log.Logger),
		debug:      cfg.DebugEnabled,
		timestamps: cfg.Timestamps,
	}

	logOut := cfg.Log
	if logOut == "" {
		logOut = "-"
	}
	w, err := l.open(logOut, os.Stdout)
	if err != nil {
		return nil, err
	}
	l.streams[StreamLog] = l.newStream(w)

	for _, s := range []struct {
		name, path string
	}{
		{StreamError, cfg.Error},
		{StreamDebug, cfg.Debug},
	} {
		if err := l.addStream(s.name, s.path, os.Stderr); err != nil {
			_ = l.Close()
			return nil, err
		}
	}
	for name, path := range cfg.Streams {
		if err := l.addStream(name, path, os.Stdout); err != nil {
			_ = l.Close()
			return nil, err
		}
	}
	return l, nil
}

// NewWriters creates a StreamLogger over already opened writers, keyed by stream name. Streams
// missing from the map share the writer of the "log" stream, which defaults to [os.Stdout].
func NewWriters(debug bool, writers map[string]io.Writer) *StreamLogger {
	l := &StreamLogger{
		streams: make(map[string]*log.Logger),
		debug:   debug,
	}
	logOut, ok := writers[StreamLog]
	if !ok {
		logOut = os.Stdout
	}
	l.streams[StreamLog] = l.newStream(logOut)
	for name, w := range writers {
		l.streams[name] = l.newStream(w)
	}
	for _, name := range []string{StreamError, StreamDebug} {
		if _, ok := l.streams[name]; !ok {
			l.streams[name] = l.streams[StreamLog]
		}
	}
	return l
}

// AddStream adds or replaces the named stream. See [New] for how path is interpreted.
func (l *StreamLogger) AddStream(name, path string) error {
	if name == "" {
		return errors.New("stream name must not be empty")
	}
	return l.addStream(name, path, os.Stdout)
}

func (l *StreamLogger) addStream(name, path string, dash io.Writer) error {
	if path == "" {
		l.mu.Lock()
		l.streams[name] = l.streams[StreamLog]
		l.mu.Unlock()
		return nil
	}
	w, err := l.open(path, dash)
	if err != nil {
		return err
	}
	stream := l.newStream(w)
	l.mu.Lock()
	l.streams[name] = stream
	l.mu.Unlock()
	return nil
}

func (l *StreamLogger) open(path string, dash io.Writer) (io.Writer, error) {
	if path == "-" {
		return dash, nil
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create log directory: %w", err)
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	l.mu.Lock()
	l.closers = append(l.closers, f)
	l.mu.Unlock()
	return f, nil
}

func (l *StreamLogger) newStream(w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           log.DebugLevel,
		ReportTimestamp: l.timestamps,
		TimeFormat:      time.DateTime,
	})
}

// LogTo writes a message from who to the named stream. Messages to an unknown stream go to the
// log stream.
func (l *StreamLogger) LogTo(stream, who string, msg ...any) {
	l.mu.RLock()
	s, ok := l.streams[stream]
	if !ok {
		s = l.streams[StreamLog]
	}
	l.mu.RUnlock()
	s.WithPrefix(originator(who)).Print(join(msg))
}

func (l *StreamLogger) Log(who string, msg ...any) {
	l.LogTo(StreamLog, who, msg...)
}

// Error writes to the error stream, tagging the originator with [ERROR].
func (l *StreamLogger) Error(who string, msg ...any) {
	l.LogTo(StreamError, originator(who)+" [ERROR]", msg...)
}

// Debug writes to the debug stream, tagging the originator with [DEBUG]. Nothing is written unless
// debugging was enabled.
func (l *StreamLogger) Debug(who string, msg ...any) {
	if !l.DebugEnabled() {
		return
	}
	l.LogTo(StreamDebug, originator(who)+" [DEBUG]", msg...)
}

// DebugEnabled reports whether Debug messages are written.
func (l *StreamLogger) DebugEnabled() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.debug
}

// SetDebug turns Debug output on or off.
func (l *StreamLogger) SetDebug(on bool) {
	l.mu.Lock()
	l.debug = on
	l.mu.Unlock()
}

// Close closes every log file opened by the logger.
func (l *StreamLogger) Close() error {
	l.mu.Lock()
	closers := l.closers
	l.closers = nil
	l.mu.Unlock()

	var errs []error
	for _, c := range closers {
		errs = append(errs, c.Close())
	}
	return errors.Join(errs...)
}

func originator(who string) string {
	if who == "" {
		return "-"
	}
	return who
}

// join renders msg the way fmt.Println does, space separated, without the newline.
func join(msg []any) string {
	return strings.TrimSuffix(fmt.Sprintln(msg...), "\n")
}

// Nop is a Logger that discards everything.
type Nop struct{}

func (Nop) LogTo(string, string, ...any) {}
func (Nop) Log(string, ...any)           {}
func (Nop) Error(string, ...any)         {}
func (Nop) Debug(string, ...any)         {}
