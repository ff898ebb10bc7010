package cli

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorCode classifies the errors reported while dispatching a command line. An ErrorCode is
// itself an error so it can be used as a target for [errors.Is]:
//
//	if errors.Is(err, cli.ErrUnknownCommand) { ... }
type ErrorCode int

const (
	// ErrEmptyCommandLine means a group node received no word to dispatch on.
	ErrEmptyCommandLine ErrorCode = iota + 1
	// ErrUnknownCommand means no child of a group node matches the given word.
	ErrUnknownCommand
	// ErrInvalidOptions means the option scanner rejected the command line, either an unknown
	// flag or a flag missing its required value.
	ErrInvalidOptions
	// ErrInvalidArguments means fewer positional arguments remained after option parsing than the
	// command requires.
	ErrInvalidArguments
)

func (c ErrorCode) String() string {
	return convertErrorCode(c)
}

func (c ErrorCode) Error() string {
	return convertErrorCode(c)
}

func convertErrorCode(code ErrorCode) string {
	switch code {
	case ErrEmptyCommandLine:
		return "empty command line"
	case ErrUnknownCommand:
		return "unknown command"
	case ErrInvalidOptions:
		return "invalid options"
	case ErrInvalidArguments:
		return "invalid arguments"
	default:
		return "unknown error"
	}
}

// Error represents an error with an error code and an underlying error, raised while parsing or
// dispatching a command line.
type Error struct {
	code ErrorCode
	err  error

	// path is the command path of the interpreter that raised the error, e.g. "tasks add".
	path string
	// word is the unmatched word for ErrUnknownCommand.
	word string
	// argv is the command line as seen by the interpreter that raised the error.
	argv        []string
	suggestions []string
}

// Code returns the error's classification.
func (e *Error) Code() ErrorCode { return e.code }

// Path returns the space-separated command path of the interpreter that raised the error.
func (e *Error) Path() string { return e.path }

// Word returns the word that could not be resolved. Only set for [ErrUnknownCommand].
func (e *Error) Word() string { return e.word }

// Argv returns the command line the raising interpreter received.
func (e *Error) Argv() []string { return e.argv }

// Suggestions returns known words similar to the unresolved one, best match first.
func (e *Error) Suggestions() []string { return e.suggestions }

func (e *Error) Unwrap() error { return e.err }

// Is reports whether target is the [ErrorCode] of e.
func (e *Error) Is(target error) bool {
	var code ErrorCode
	if errors.As(target, &code) {
		return e.code == code
	}
	return false
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	var msg string
	switch e.code {
	case ErrUnknownCommand:
		msg = fmt.Sprintf("unknown command %q", e.word)
		if len(e.suggestions) > 0 {
			msg += ". Did you mean one of these?\n\t" + strings.Join(e.suggestions, "\n\t")
		}
	case ErrInvalidOptions, ErrInvalidArguments:
		if e.err == nil {
			msg = convertErrorCode(e.code) + ": <nil>"
		} else {
			msg = convertErrorCode(e.code) + ": " + e.err.Error()
		}
	default:
		msg = convertErrorCode(e.code)
		if e.err != nil {
			msg += ": " + e.err.Error()
		}
	}
	if e.path != "" {
		return e.path + ": " + msg
	}
	return msg
}

// NoActionError is returned when a leaf command is reached that has no action.
type NoActionError struct {
	Path string
}

func (e *NoActionError) Error() string {
	return fmt.Sprintf("command %q has no action", e.Path)
}
