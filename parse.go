package cli

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/spf13/pflag"
)

// noValue is what pflag hands to a flag declared without a value. It cannot be typed on a command
// line, so an explicit "-a=x" or "--flag=x" for such a flag is told apart and rejected.
const noValue = "\x00"

// Names of the implicit help flags. A name starting with '-' is unreachable as a long option, which
// leaves -? usable only as a short flag.
const (
	helpFlag     = "help"
	questionFlag = "-?"
)

// parsed is the outcome of scanning one interpreter's argv.
type parsed struct {
	opts Options
	args []string
	help bool
}

// optionValue records every occurrence of one option into the shared Options.
type optionValue struct {
	key      string
	hasValue bool
	into     Options
}

func (v *optionValue) String() string { return "" }

func (v *optionValue) Set(s string) error {
	if !v.hasValue {
		if s != noValue {
			return fmt.Errorf("option %s does not take a value", v.key)
		}
		s = ""
	}
	v.into.collect(v.key, s)
	return nil
}

func (v *optionValue) Type() string {
	if v.hasValue {
		return "string"
	}
	return "bool"
}

type helpValue struct{ set bool }

func (v *helpValue) String() string { return "false" }

func (v *helpValue) Set(string) error {
	v.set = true
	return nil
}

func (v *helpValue) Type() string { return "bool" }

// newFlagSet builds a POSIX-style scanner for spec. Scanning stops at the first positional word
// and a "--" argument ends option processing. Parsed values are collected into into; help is set
// when one of the implicit help flags is given.
func newFlagSet(spec OptionSpec, into Options, help *helpValue) *pflag.FlagSet {
	fset := pflag.NewFlagSet("", pflag.ContinueOnError)
	fset.SetOutput(io.Discard)
	fset.Usage = func() {}
	fset.SetInterspersed(false)
	fset.SortFlags = false

	add := func(name, shorthand string, value pflag.Value, hasValue bool) {
		f := fset.VarPF(value, name, shorthand, "")
		if !hasValue {
			f.NoOptDefVal = noValue
		}
	}
	for _, o := range spec.shorts() {
		key := "-" + string(o.char)
		add(key, string(o.char), &optionValue{key: key, hasValue: o.hasValue, into: into}, o.hasValue)
	}
	for _, l := range spec.Long {
		name := l
		hasValue := false
		if n := len(l); n > 0 && l[n-1] == '=' {
			name, hasValue = l[:n-1], true
		}
		key := "--" + name
		add(name, "", &optionValue{key: key, hasValue: hasValue, into: into}, hasValue)
	}

	if !spec.hasLong(helpFlag) {
		shorthand := "h"
		if spec.hasShort('h') {
			shorthand = ""
		}
		fset.VarPF(help, helpFlag, shorthand, "").NoOptDefVal = "true"
	} else if !spec.hasShort('h') {
		fset.VarPF(help, "-h", "h", "").NoOptDefVal = "true"
	}
	if !spec.hasShort('?') {
		fset.VarPF(help, questionFlag, "?", "").NoOptDefVal = "true"
	}
	return fset
}

// parseArgv scans argv against spec, overlays the result on a copy of defaults and checks that at
// least minArgs positional arguments remain. Scanner failures are reported as ErrInvalidOptions,
// a short argument list as ErrInvalidArguments.
func parseArgv(spec OptionSpec, defaults Options, minArgs int, argv []string) (*parsed, error) {
	expanded, err := expandLongPrefixes(spec, argv)
	if err != nil {
		return nil, &Error{code: ErrInvalidOptions, err: err, argv: argv}
	}
	found := make(Options)
	help := &helpValue{}
	fset := newFlagSet(spec, found, help)
	if err := fset.Parse(expanded); err != nil {
		return nil, &Error{code: ErrInvalidOptions, err: err, argv: argv}
	}

	opts := defaults.Clone()
	for k, v := range found {
		opts[k] = v
	}
	res := &parsed{
		opts: opts,
		args: fset.Args(),
		help: help.set,
	}
	if res.help {
		return res, nil
	}
	if len(res.args) < minArgs {
		return nil, &Error{
			code: ErrInvalidArguments,
			err:  fmt.Errorf("expected at least %d argument(s), got %d", minArgs, len(res.args)),
			argv: argv,
		}
	}
	return res, nil
}

// longNames maps every long option name reachable on the command line to whether it takes a value.
func (s OptionSpec) longNames() map[string]bool {
	names := make(map[string]bool, len(s.Long)+1)
	for _, l := range s.Long {
		name, hasValue := strings.CutSuffix(l, "=")
		names[name] = hasValue
	}
	if _, ok := names[helpFlag]; !ok {
		names[helpFlag] = false
	}
	return names
}

// expandLongPrefixes rewrites abbreviated long options ("--verb" for "--verbose") to their full
// name, the way getopt accepts any unique prefix. Only the options part of argv is touched: the
// scan stops where the scanner would, and values of value-taking options are stepped over. An
// abbreviation matching more than one name is an error; unknown names are left to the scanner.
func expandLongPrefixes(spec OptionSpec, argv []string) ([]string, error) {
	names := spec.longNames()
	shorts := spec.shorts()
	var out []string
	for i := 0; i < len(argv); i++ {
		arg := argv[i]
		if arg == "--" || len(arg) < 2 || arg[0] != '-' {
			break
		}
		if arg[1] != '-' {
			// A short cluster; a value-taking option ends it and takes the rest or the next word.
			for j := 1; j < len(arg); j++ {
				o := slices.IndexFunc(shorts, func(o shortOption) bool { return o.char == arg[j] })
				if o < 0 {
					break
				}
				if shorts[o].hasValue {
					if j == len(arg)-1 {
						i++
					}
					break
				}
			}
			continue
		}

		name, value, hasEq := strings.Cut(arg[2:], "=")
		if name == "" {
			continue
		}
		hasValue, exact := names[name]
		if !exact {
			var matches []string
			for n := range names {
				if strings.HasPrefix(n, name) {
					matches = append(matches, n)
				}
			}
			switch len(matches) {
			case 0:
				continue
			case 1:
				full := "--" + matches[0]
				if hasEq {
					full += "=" + value
				}
				if out == nil {
					out = slices.Clone(argv)
				}
				out[i] = full
				hasValue = names[matches[0]]
			default:
				slices.Sort(matches)
				return nil, fmt.Errorf("option --%s not a unique prefix (%s)", name, strings.Join(matches, ", "))
			}
		}
		if hasValue && !hasEq {
			i++
		}
	}
	if out == nil {
		return argv, nil
	}
	return out, nil
}
