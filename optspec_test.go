package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSpec(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		in       any
		expected OptionSpec
	}{
		{
			name:     "string with short and long",
			in:       "ab: --long1 long2",
			expected: OptionSpec{Short: "ab:", Long: []string{"long1", "long2"}},
		},
		{
			name:     "string short only",
			in:       "vc:",
			expected: OptionSpec{Short: "vc:", Long: []string{}},
		},
		{
			name:     "double dash means no short options",
			in:       "-- verbose config=",
			expected: OptionSpec{Long: []string{"verbose", "config="}},
		},
		{
			name:     "empty string",
			in:       "",
			expected: OptionSpec{},
		},
		{
			name:     "bare list is long options",
			in:       []string{"verbose", "--config="},
			expected: OptionSpec{Long: []string{"verbose", "config="}},
		},
		{
			name:     "explicit pair",
			in:       OptionSpec{Short: "x:", Long: []string{"all"}},
			expected: OptionSpec{Short: "x:", Long: []string{"all"}},
		},
		{
			name:     "nil",
			in:       nil,
			expected: OptionSpec{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec, err := ParseSpec(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.expected.Short, spec.Short)
			assert.ElementsMatch(t, tt.expected.Long, spec.Long)
		})
	}
}

func TestParseSpecErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   any
		err  string
	}{
		{name: "unsupported type", in: 42, err: "unsupported option spec type int"},
		{name: "map", in: map[string]string{}, err: "unsupported option spec type"},
		{name: "leading colon", in: ":a", err: "leading ':'"},
		{name: "duplicate short", in: "aba", err: "duplicate short option"},
		{name: "dash short", in: "a-", err: "invalid short option"},
		{name: "duplicate long", in: []string{"all", "all="}, err: `duplicate long option "all"`},
		{name: "empty long", in: []string{"="}, err: "invalid long option"},
		{name: "long with single dash", in: []string{"-x"}, err: "invalid long option"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSpec(tt.in)
			require.Error(t, err)
			assert.ErrorContains(t, err, tt.err)
		})
	}
}

func TestParseSpecDoesNotAlias(t *testing.T) {
	t.Parallel()

	long := []string{"one"}
	spec := MustSpec(long)
	long[0] = "two"
	assert.Equal(t, []string{"one"}, spec.Long)
}

func TestMustSpecPanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { MustSpec(3.14) })
}

func TestOptionSpecString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "ab: long1 long2", MustSpec("ab: --long1 long2").String())
	assert.Equal(t, "-- verbose", MustSpec([]string{"verbose"}).String())
	assert.Equal(t, "--", OptionSpec{}.String())

	// The string form round-trips.
	spec := MustSpec("x:y config= all")
	again := MustSpec(spec.String())
	assert.Equal(t, spec.Short, again.Short)
	assert.Equal(t, spec.Long, again.Long)
}
