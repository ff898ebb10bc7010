// Package cli provides a lightweight framework for building command-line interpreters out of a
// tree of commands.
//
// A tree is made of two kinds of interpreters. A [Node] holds named groups of word→interpreter
// bindings and dispatches on the first positional word; nodes nest arbitrarily. A [Command] is a
// leaf that parses its getopt-style options and runs an action. Every interpreter parses its own
// options before handing the remaining arguments down, so
//
//	tasks -f work.json add -t urgent fix the build
//
// is parsed by the root (-f work.json), which dispatches "add" to a leaf that parses -t urgent and
// receives "fix the build" as arguments.
//
// An application-defined context value of type T is threaded from [Run] down to the selected
// leaf. Nodes may derive a new context from their parsed options with an UpdateContext hook.
//
// Usage text is generated from the shape of the tree. Parse and dispatch errors are reported
// together with the relevant usage text unless [RunOptions.NoUsageOnError] is set, in which case
// they are returned as [*Error] values.
package cli
