package cli

import (
	"fmt"
	"slices"
	"strings"
)

// OptionSpec describes the options an interpreter accepts, in getopt notation.
//
// Short is a string of option characters; a character followed by ':' requires a value, so "vc:"
// accepts -v and -c <value>. Long is a list of long option names without the leading dashes; a
// name ending in '=' requires a value, so "config=" accepts --config <value> and --config=<value>.
type OptionSpec struct {
	Short string
	Long  []string
}

// ParseSpec normalizes an option specification given in one of the accepted shorthand forms:
//
//   - an [OptionSpec], used as is;
//   - a string of whitespace-separated tokens, where the first token is the short options unless it
//     is exactly "--" (no short options), and the remaining tokens are long option names;
//   - a []string of long option names only.
//
// Long names may be written with or without their leading "--". Any other form is rejected.
//
//	spec, _ := cli.ParseSpec("ab: --long1 long2")
//	// spec.Short == "ab:", spec.Long == []string{"long1", "long2"}
func ParseSpec(v any) (OptionSpec, error) {
	var spec OptionSpec
	switch v := v.(type) {
	case nil:
	case OptionSpec:
		spec = OptionSpec{Short: v.Short, Long: slices.Clone(v.Long)}
	case *OptionSpec:
		if v != nil {
			spec = OptionSpec{Short: v.Short, Long: slices.Clone(v.Long)}
		}
	case string:
		tokens := strings.Fields(v)
		if len(tokens) > 0 {
			if tokens[0] != "--" {
				spec.Short = tokens[0]
			}
			spec.Long = slices.Clone(tokens[1:])
		}
	case []string:
		spec.Long = slices.Clone(v)
	default:
		return OptionSpec{}, fmt.Errorf("unsupported option spec type %T", v)
	}
	for i, name := range spec.Long {
		spec.Long[i] = strings.TrimPrefix(name, "--")
	}
	if err := spec.validate(); err != nil {
		return OptionSpec{}, err
	}
	return spec, nil
}

// MustSpec is like [ParseSpec] but panics if the specification is invalid. Intended for static
// command definitions.
func MustSpec(v any) OptionSpec {
	spec, err := ParseSpec(v)
	if err != nil {
		panic(err)
	}
	return spec
}

func (s OptionSpec) validate() error {
	seen := make(map[rune]bool)
	for i, r := range s.Short {
		if r == ':' {
			if i == 0 {
				return fmt.Errorf("invalid short options %q: leading ':'", s.Short)
			}
			continue
		}
		if r == '-' || r == '=' || r <= ' ' || r > 127 {
			return fmt.Errorf("invalid short option %q in %q", r, s.Short)
		}
		if seen[r] {
			return fmt.Errorf("duplicate short option %q in %q", r, s.Short)
		}
		seen[r] = true
	}
	names := make(map[string]bool)
	for _, raw := range s.Long {
		name := strings.TrimSuffix(raw, "=")
		if name == "" || strings.HasPrefix(name, "-") || strings.ContainsAny(name, " \t=") {
			return fmt.Errorf("invalid long option %q", raw)
		}
		if names[name] {
			return fmt.Errorf("duplicate long option %q", name)
		}
		names[name] = true
	}
	return nil
}

// shortOption is one parsed character of OptionSpec.Short.
type shortOption struct {
	char     byte
	hasValue bool
}

func (s OptionSpec) shorts() []shortOption {
	var out []shortOption
	for i := 0; i < len(s.Short); i++ {
		c := s.Short[i]
		if c == ':' {
			continue
		}
		out = append(out, shortOption{
			char:     c,
			hasValue: i+1 < len(s.Short) && s.Short[i+1] == ':',
		})
	}
	return out
}

// hasShort reports whether c is declared as a short option.
func (s OptionSpec) hasShort(c byte) bool {
	for _, o := range s.shorts() {
		if o.char == c {
			return true
		}
	}
	return false
}

// hasLong reports whether name is declared as a long option.
func (s OptionSpec) hasLong(name string) bool {
	for _, l := range s.Long {
		if strings.TrimSuffix(l, "=") == name {
			return true
		}
	}
	return false
}

// String renders the specification back in the string shorthand accepted by [ParseSpec].
func (s OptionSpec) String() string {
	short := s.Short
	if short == "" {
		short = "--"
	}
	if len(s.Long) == 0 {
		return short
	}
	return short + " " + strings.Join(s.Long, " ")
}
