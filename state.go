package cli

import (
	"io"

	"github.com/cmdtree/cli/pkg/logs"
)

// State is what a leaf command's action receives: the word it was invoked by, the context handed
// down by its ancestors, and its own parsed options and arguments.
type State[T any] struct {
	// Word is the command word that selected this command.
	Word string
	// Path is the full command path, root first.
	Path []string

	// Context is the application value threaded down from [Run], as transformed by every
	// ancestor's UpdateContext hook.
	Context T

	// Options holds the command's defaults overlaid with the options given on the command line.
	Options Options
	// Args contains the positional arguments remaining after option parsing.
	Args []string

	// Standard I/O streams.
	Stdin          io.Reader
	Stdout, Stderr io.Writer

	// Log writes diagnostics on behalf of this command.
	Log logs.Named
}
