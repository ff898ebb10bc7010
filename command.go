package cli

import (
	"slices"
	"strings"
)

// Interpreter is a node of a command tree: either a group node ([*Node]) dispatching to children
// or a leaf command ([*Command]) running an action. The set of implementations is closed.
type Interpreter[T any] interface {
	// invoke parses argv for this interpreter and runs it, having been selected by word.
	invoke(inv *invocation, word string, ctx T, argv []string) (any, error)
	// usageEntry renders this interpreter as an entry of its parent's usage listing. width is the
	// width of the parent's word column. It returns nil for interpreters hidden from listings.
	usageEntry(word, indent string, width int) []string
	hidden() bool
	// isNil reports whether the interpreter is a typed nil pointer.
	isNil() bool
}

// ActionFunc is the body of a leaf command. Whatever it returns is returned by [Run].
type ActionFunc[T any] func(s *State[T]) (any, error)

// Command is a leaf of the command tree: it parses its options and runs one action.
type Command[T any] struct {
	// Usage is the usage template shown for the command. The first line is the synopsis, e.g.
	// "[-v] [-c <config>] <file>". Further lines describe options and arguments; they are
	// dedented and re-indented to the depth at which the command is listed.
	Usage string

	// Opts lists the options the command accepts. See [ParseSpec] for the accepted shorthands.
	Opts OptionSpec
	// Defaults are applied before parsed options; a flag given on the command line replaces its
	// default.
	Defaults Options
	// MinArgs is the minimum number of positional arguments required after the options.
	MinArgs int

	// Action is run with the parsed input.
	Action ActionFunc[T]
}

var _ Interpreter[any] = (*Command[any])(nil)

func (c *Command[T]) hidden() bool { return false }

func (c *Command[T]) isNil() bool { return c == nil }

func (c *Command[T]) invoke(inv *invocation, word string, ctx T, argv []string) (any, error) {
	inv = inv.enter(word)
	res, err := parseArgv(c.Opts, c.Defaults, c.MinArgs, argv)
	if err != nil {
		return inv.fail(err, c.helpText(inv.pathString()))
	}
	if res.help {
		inv.help(c.helpText(inv.pathString()))
		return nil, nil
	}
	if c.Action == nil {
		return nil, &NoActionError{Path: inv.pathString()}
	}
	inv.debug("running", word, res.args)
	return c.Action(&State[T]{
		Word:    word,
		Path:    slices.Clone(inv.path),
		Context: ctx,
		Options: res.opts,
		Args:    res.args,
		Stdin:   inv.stdin,
		Stdout:  inv.stdout,
		Stderr:  inv.stderr,
		Log:     inv.named(),
	})
}

// FormatUsage renders the command's usage template with the synopsis at firstIndent and the
// remaining lines at restIndent.
func (c *Command[T]) FormatUsage(firstIndent, restIndent string) string {
	return renderTemplate(c.Usage, firstIndent, restIndent)
}

func (c *Command[T]) helpText(path string) string {
	return strings.TrimRight("Usage: "+joinNonEmpty(path, renderTemplate(c.Usage, "", "    ")), " ")
}
