package cli

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/cmdtree/cli/pkg/suggest"
)

// ErrUntitledGroup is returned when a group without a title is added to a node that already has
// groups. Only the first group of a node may be untitled.
var ErrUntitledGroup = errors.New("only the first group may be untitled")

// Binding binds a command word to the interpreter it selects.
type Binding[T any] struct {
	Word        string
	Interpreter Interpreter[T]
}

// Bind is a shorthand for constructing a [Binding].
func Bind[T any](word string, interp Interpreter[T]) Binding[T] {
	return Binding[T]{Word: word, Interpreter: interp}
}

// Group is a titled, ordered list of bindings. Groups are listed separately in usage text.
type Group[T any] struct {
	Title    string
	Bindings []Binding[T]
}

// ContextFunc derives the context handed to a child from the context a node received and the
// node's own parsed options and arguments. The returned value replaces ctx; it must not be
// modified in place.
type ContextFunc[T any] func(ctx T, opts Options, args []string) (T, error)

// Node is a group node of the command tree. It parses its own options, then resolves the first
// positional word to a child interpreter and dispatches the remaining arguments to it.
//
// A Node is assembled once, typically with [New], and must not be modified while it is in use.
type Node[T any] struct {
	// Usage is an optional synopsis of the node's own options, e.g. "[-v] <command> ...".
	Usage string
	// Description is an optional paragraph printed below the synopsis in help output.
	Description string

	// Opts lists the options accepted before the command word. The help flags -h, -? and --help
	// are always accepted unless claimed here.
	Opts OptionSpec
	// Defaults are applied before parsed options.
	Defaults Options
	// MinArgs is the minimum number of positional arguments, including the command word.
	MinArgs int

	// Hidden nodes are left out of their parent's usage text but can still be invoked.
	Hidden bool

	// UpdateContext, if set, is called once per dispatch through this node with its parsed
	// options and arguments. Its result is the context handed to the selected child.
	UpdateContext ContextFunc[T]

	groups []Group[T]
}

var _ Interpreter[any] = (*Node[any])(nil)

// New builds a node from an interleaved list of group titles and bindings. A string ending in
// ':' starts a new group titled by the rest of the string; any other string is a command word
// and must be followed by its Interpreter[T]:
//
//	root, err := cli.New[Env](
//		"init", initCmd,
//		"Tasks:",
//		"add", addCmd,
//		"list", listCmd,
//	)
//
// Bindings before the first title form an untitled group. Groups without bindings are dropped.
func New[T any](items ...any) (*Node[T], error) {
	n := &Node[T]{}
	var (
		title    string
		bindings []Binding[T]
	)
	flush := func() error {
		if len(bindings) == 0 {
			return nil
		}
		err := n.AddGroup(title, bindings...)
		bindings = nil
		return err
	}
	for i := 0; i < len(items); i++ {
		s, ok := items[i].(string)
		if !ok {
			return nil, fmt.Errorf("item %d: expected a command word or group title, got %T", i, items[i])
		}
		if strings.HasSuffix(s, ":") {
			if err := flush(); err != nil {
				return nil, err
			}
			title = strings.TrimSuffix(s, ":")
			continue
		}
		if i+1 >= len(items) {
			return nil, fmt.Errorf("item %d: command word %q has no interpreter", i, s)
		}
		interp, ok := items[i+1].(Interpreter[T])
		if !ok {
			return nil, fmt.Errorf("item %d: command word %q bound to %T, not an interpreter", i+1, s, items[i+1])
		}
		bindings = append(bindings, Bind(s, interp))
		i++
	}
	if err := flush(); err != nil {
		return nil, err
	}
	return n, nil
}

// MustNew is like [New] but panics on error. Intended for static command trees.
func MustNew[T any](items ...any) *Node[T] {
	n, err := New[T](items...)
	if err != nil {
		panic(err)
	}
	return n
}

// AddGroup appends a group of bindings. It fails with [ErrUntitledGroup] if title is empty and
// the node already has a group.
func (n *Node[T]) AddGroup(title string, bindings ...Binding[T]) error {
	if title == "" && len(n.groups) > 0 {
		return ErrUntitledGroup
	}
	for _, b := range bindings {
		if b.Word == "" || strings.ContainsAny(b.Word, " \t\n") {
			return fmt.Errorf("invalid command word %q", b.Word)
		}
		if b.Interpreter == nil || b.Interpreter.isNil() {
			return fmt.Errorf("command word %q has no interpreter", b.Word)
		}
	}
	n.groups = append(n.groups, Group[T]{Title: title, Bindings: slices.Clone(bindings)})
	return nil
}

// Groups returns a copy of the node's groups in declaration order.
func (n *Node[T]) Groups() []Group[T] {
	out := make([]Group[T], len(n.groups))
	for i, g := range n.groups {
		out[i] = Group[T]{Title: g.Title, Bindings: slices.Clone(g.Bindings)}
	}
	return out
}

// Find returns the interpreter bound to word. Groups and their bindings are searched in
// declaration order and the first match wins.
func (n *Node[T]) Find(word string) (Interpreter[T], bool) {
	for _, g := range n.groups {
		for _, b := range g.Bindings {
			if b.Word == word {
				return b.Interpreter, true
			}
		}
	}
	return nil, false
}

func (n *Node[T]) hidden() bool { return n.Hidden }

func (n *Node[T]) isNil() bool { return n == nil }

func (n *Node[T]) invoke(inv *invocation, word string, ctx T, argv []string) (any, error) {
	inv = inv.enter(word)
	res, err := parseArgv(n.Opts, n.Defaults, n.MinArgs, argv)
	if err != nil {
		return inv.fail(err, n.helpText(inv.pathString()))
	}
	if res.help {
		inv.help(n.helpText(inv.pathString()))
		return nil, nil
	}
	if len(res.args) == 0 {
		return inv.fail(&Error{code: ErrEmptyCommandLine, argv: argv}, n.helpText(inv.pathString()))
	}
	next := res.args[0]
	if isHelpToken(next) {
		inv.help(n.helpText(inv.pathString()))
		return nil, nil
	}

	childCtx := ctx
	if n.UpdateContext != nil {
		if childCtx, err = n.UpdateContext(ctx, res.opts, res.args); err != nil {
			return nil, err
		}
	}
	child, ok := n.Find(next)
	if !ok {
		return inv.fail(&Error{
			code:        ErrUnknownCommand,
			word:        next,
			argv:        argv,
			suggestions: suggest.FindSimilar(next, n.visibleWords(), 3),
		}, n.helpText(inv.pathString()))
	}
	inv.debug("dispatching", next)
	return child.invoke(inv, next, childCtx, res.args[1:])
}

// visibleWords returns the words listed in usage text, in declaration order.
func (n *Node[T]) visibleWords() []string {
	var words []string
	for _, g := range n.groups {
		for _, b := range g.Bindings {
			if !b.Interpreter.hidden() {
				words = append(words, b.Word)
			}
		}
	}
	return words
}

func isHelpToken(word string) bool {
	switch word {
	case "help", "-h", "-?", "--help":
		return true
	}
	return false
}
