package logs

import (
	"errors"
	"sync"
)

// ErrAlreadyInitialized is returned by Init once the default logger exists.
var ErrAlreadyInitialized = errors.New("default logger already initialized")

var (
	defaultOnce   sync.Once
	defaultLogger *StreamLogger
)

// Init creates the process-wide default logger from cfg. It must be called at most once, before
// the first call to [Default]; later calls return [ErrAlreadyInitialized]. If cfg cannot be
// applied the default falls back to the standard streams and the error is returned.
func Init(cfg Config) error {
	var err error
	created := false
	defaultOnce.Do(func() {
		created = true
		defaultLogger, err = New(cfg)
		if err != nil {
			defaultLogger = stdio()
		}
	})
	if !created {
		return ErrAlreadyInitialized
	}
	return err
}

// Default returns the process-wide default logger, creating one over the standard streams if
// [Init] was not called.
func Default() Logger {
	defaultOnce.Do(func() {
		defaultLogger = stdio()
	})
	return defaultLogger
}

func stdio() *StreamLogger {
	// New only fails when opening files.
	l, _ := New(Config{Log: "-", Error: "-"})
	return l
}
