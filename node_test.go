package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func leaf(usage string) *Command[string] {
	return &Command[string]{
		Usage: usage,
		Action: func(s *State[string]) (any, error) {
			return s.Word, nil
		},
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	a, b, c := leaf("a"), leaf("b"), leaf("c")
	n, err := New[string](
		"a", a,
		"Second:",
		"b", b,
		"Empty:",
		"Third:",
		"c", c,
	)
	require.NoError(t, err)

	groups := n.Groups()
	require.Len(t, groups, 3)
	assert.Equal(t, "", groups[0].Title)
	assert.Equal(t, "Second", groups[1].Title)
	assert.Equal(t, "Third", groups[2].Title)
	require.Len(t, groups[2].Bindings, 1)
	assert.Equal(t, "c", groups[2].Bindings[0].Word)
	assert.Same(t, c, groups[2].Bindings[0].Interpreter)
}

func TestNewErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		items []any
		err   string
	}{
		{
			name:  "dangling word",
			items: []any{"a", leaf(""), "b"},
			err:   `command word "b" has no interpreter`,
		},
		{
			name:  "word bound to nil node",
			items: []any{"a", (*Node[string])(nil)},
			err:   `command word "a" has no interpreter`,
		},
		{
			name:  "word bound to nil command",
			items: []any{"a", leaf(""), "b", (*Command[string])(nil)},
			err:   `command word "b" has no interpreter`,
		},
		{
			name:  "word bound to non-interpreter",
			items: []any{"a", 42},
			err:   "bound to int, not an interpreter",
		},
		{
			name:  "interpreter of another context type",
			items: []any{"a", &Command[int]{}},
			err:   "not an interpreter",
		},
		{
			name:  "non-string item",
			items: []any{leaf("")},
			err:   "expected a command word or group title",
		},
		{
			name:  "untitled group after a titled one",
			items: []any{"One:", "a", leaf(""), ":", "b", leaf("")},
			err:   ErrUntitledGroup.Error(),
		},
		{
			name:  "word with spaces",
			items: []any{"a b", leaf("")},
			err:   `invalid command word "a b"`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New[string](tt.items...)
			require.Error(t, err)
			assert.ErrorContains(t, err, tt.err)
		})
	}
	assert.Panics(t, func() { MustNew[string]("a") })
}

func TestAddGroup(t *testing.T) {
	t.Parallel()

	t.Run("untitled first group", func(t *testing.T) {
		n := &Node[string]{}
		require.NoError(t, n.AddGroup("", Bind[string]("a", leaf(""))))
		require.NoError(t, n.AddGroup("More", Bind[string]("b", leaf(""))))
		assert.Len(t, n.Groups(), 2)
	})
	t.Run("untitled second group fails", func(t *testing.T) {
		n := &Node[string]{}
		require.NoError(t, n.AddGroup("First", Bind[string]("a", leaf(""))))
		err := n.AddGroup("", Bind[string]("b", leaf("")))
		require.ErrorIs(t, err, ErrUntitledGroup)
		// Deterministic: the same call fails again and the node is unchanged.
		require.ErrorIs(t, n.AddGroup(""), ErrUntitledGroup)
		assert.Len(t, n.Groups(), 1)
	})
	t.Run("two untitled groups fail", func(t *testing.T) {
		n := &Node[string]{}
		require.NoError(t, n.AddGroup(""))
		require.ErrorIs(t, n.AddGroup(""), ErrUntitledGroup)
	})
	t.Run("nil interpreter", func(t *testing.T) {
		n := &Node[string]{}
		err := n.AddGroup("X", Binding[string]{Word: "a"})
		assert.ErrorContains(t, err, `command word "a" has no interpreter`)

		err = n.AddGroup("X", Bind[string]("b", (*Node[string])(nil)))
		assert.ErrorContains(t, err, `command word "b" has no interpreter`)
		err = n.AddGroup("X", Bind[string]("c", (*Command[string])(nil)))
		assert.ErrorContains(t, err, `command word "c" has no interpreter`)
		assert.Empty(t, n.Groups())
	})
}

func TestFind(t *testing.T) {
	t.Parallel()

	first, second, other := leaf("first"), leaf("second"), leaf("other")
	n := MustNew[string](
		"dup", first,
		"Other:",
		"x", other,
		"dup", second,
	)

	got, ok := n.Find("dup")
	require.True(t, ok)
	assert.Same(t, first, got)

	got, ok = n.Find("x")
	require.True(t, ok)
	assert.Same(t, other, got)

	got, ok = n.Find("missing")
	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestGroupsIsACopy(t *testing.T) {
	t.Parallel()

	n := MustNew[string]("a", leaf(""))
	groups := n.Groups()
	groups[0].Bindings[0].Word = "changed"
	_, ok := n.Find("a")
	assert.True(t, ok)
}
