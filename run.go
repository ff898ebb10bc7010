package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cmdtree/cli/pkg/logs"
)

// RunOptions specifies options for running a command tree.
type RunOptions struct {
	// Name is the program name used as the first element of command paths in diagnostics and
	// usage text. It may be empty.
	Name string

	// Stdin, Stdout, and Stderr are the standard input, output, and error streams for the command.
	// If any of these are nil, the command will use the default streams ([os.Stdin], [os.Stdout],
	// and [os.Stderr], respectively).
	Stdin          io.Reader
	Stdout, Stderr io.Writer

	// NoUsageOnError makes Run return parse and dispatch errors as [*Error] values. By default
	// they are reported on Stderr together with the relevant usage text and Run returns nil.
	NoUsageOnError bool

	// Logger receives dispatch tracing at debug level and is handed to actions through
	// [State.Log]. If nil, [logs.Default] is used.
	Logger logs.Logger
}

// Run dispatches args through the tree rooted at root, handing ctx down to the leaf that is
// finally selected, and returns whatever that leaf's action returns. It is equivalent to invoking
// root with an empty command word.
//
// Errors returned by actions and UpdateContext hooks are passed through unchanged. Parse and
// dispatch errors ([ErrEmptyCommandLine], [ErrUnknownCommand], [ErrInvalidOptions],
// [ErrInvalidArguments]) are either reported with usage text, in which case Run returns
// (nil, nil), or returned, depending on [RunOptions.NoUsageOnError].
//
// The options parameter may be nil, in which case default values are used.
func Run[T any](root *Node[T], args []string, ctx T, options *RunOptions) (any, error) {
	if root == nil {
		return nil, errors.New("failed to run: root node is nil")
	}
	options = checkAndSetRunOptions(options)
	inv := &invocation{
		name:         options.Name,
		stdin:        options.Stdin,
		stdout:       options.Stdout,
		stderr:       options.Stderr,
		usageOnError: !options.NoUsageOnError,
		logger:       options.Logger,
	}
	return root.invoke(inv, "", ctx, args)
}

func checkAndSetRunOptions(opt *RunOptions) *RunOptions {
	if opt == nil {
		opt = &RunOptions{}
	} else {
		c := *opt
		opt = &c
	}
	if opt.Stdin == nil {
		opt.Stdin = os.Stdin
	}
	if opt.Stdout == nil {
		opt.Stdout = os.Stdout
	}
	if opt.Stderr == nil {
		opt.Stderr = os.Stderr
	}
	if opt.Logger == nil {
		opt.Logger = logs.Default()
	}
	return opt
}

// invocation carries the per-call settings of one Run down the tree. Each dispatch step works on
// its own copy extended with the step's command word.
type invocation struct {
	name           string
	stdin          io.Reader
	stdout, stderr io.Writer
	usageOnError   bool
	logger         logs.Logger
	path           []string
}

// enter returns a copy of inv for the interpreter selected by word. The root is entered with an
// empty word and takes the program name instead.
func (inv *invocation) enter(word string) *invocation {
	next := *inv
	if word == "" && len(inv.path) == 0 {
		word = inv.name
	}
	if word != "" {
		next.path = append(inv.path[:len(inv.path):len(inv.path)], word)
	}
	return &next
}

func (inv *invocation) pathString() string {
	return strings.Join(inv.path, " ")
}

func (inv *invocation) who() string {
	if len(inv.path) == 0 {
		return "cli"
	}
	return inv.pathString()
}

func (inv *invocation) named() logs.Named {
	return logs.NewNamed(inv.who(), inv.logger)
}

func (inv *invocation) debug(msg ...any) {
	inv.logger.Debug(inv.who(), msg...)
}

// fail applies the usage-on-error policy to err: either the error and usage are written to stderr
// and nothing is returned, or the error is returned without output.
func (inv *invocation) fail(err error, usage string) (any, error) {
	var cliErr *Error
	if !errors.As(err, &cliErr) {
		return nil, err
	}
	cliErr.path = inv.pathString()
	if !inv.usageOnError {
		return nil, cliErr
	}
	inv.debug("reporting", cliErr.code)
	fmt.Fprintln(inv.stderr, cliErr.Error())
	fmt.Fprintln(inv.stderr, usage)
	return nil, nil
}

// help writes usage text requested with a help token. Usage text always goes to stderr.
func (inv *invocation) help(usage string) {
	fmt.Fprintln(inv.stderr, usage)
}
