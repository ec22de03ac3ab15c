package subcmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGlobalFlags(t *testing.T) {
	t.Parallel()

	t.Run("typed add and lookup with default", func(t *testing.T) {
		t.Parallel()
		g := NewGlobalFlags()
		AddGlobal(g, "retries", "r", 3, "retry count")

		got, err := LookupGlobal[int](g, "retries")
		require.NoError(t, err)
		assert.Equal(t, 3, got)
	})
	t.Run("parsed value replaces the default", func(t *testing.T) {
		t.Parallel()
		g := NewGlobalFlags()
		AddGlobal(g, "retries", "r", 3, "retry count")

		fm := NewFlagMap()
		fm.Set("--retries", "9")
		require.NoError(t, g.Parse(fm))

		got, err := LookupGlobal[int](g, "retries")
		require.NoError(t, err)
		assert.Equal(t, 9, got)
	})
	t.Run("unknown name", func(t *testing.T) {
		t.Parallel()
		g := NewGlobalFlags()
		_, err := LookupGlobal[int](g, "missing")
		var unknown *UnknownFlagError
		require.ErrorAs(t, err, &unknown)
		assert.Equal(t, "missing", unknown.Name)
	})
	t.Run("wrong type", func(t *testing.T) {
		t.Parallel()
		g := NewGlobalFlags()
		AddGlobal(g, "retries", "r", 3, "retry count")

		_, err := LookupGlobal[string](g, "retries")
		var wrong *WrongTypeError
		require.ErrorAs(t, err, &wrong)
		assert.Equal(t, FlagInt, wrong.Registered)
		assert.Equal(t, FlagString, wrong.Requested)
	})
	t.Run("untyped add has no default", func(t *testing.T) {
		t.Parallel()
		g := NewGlobalFlags()
		g.Add(FlagString, "profile", "p", "config profile")

		got, err := LookupGlobal[string](g, "profile")
		require.NoError(t, err)
		assert.Empty(t, got)
	})
	t.Run("flags attachable to a command tree", func(t *testing.T) {
		t.Parallel()
		g := NewGlobalFlags()
		AddGlobal(g, "verbose", "v", false, "enable verbose output")

		root := &Command{Use: "app", Run: func([]string) (int, error) { return 0, nil }}
		root.PersistentFlags = g.Flags()

		code, err := root.Execute([]string{"--verbose"})
		require.NoError(t, err)
		assert.Equal(t, 0, code)
		got, err := LookupGlobal[bool](g, "verbose")
		require.NoError(t, err)
		assert.True(t, got)
	})
}

func TestGlobalsDefault(t *testing.T) {
	// Not parallel: exercises the shared package default.
	ResetGlobals()
	t.Cleanup(ResetGlobals)

	first := Globals()
	assert.Same(t, first, Globals(), "first use initializes a single instance")

	AddGlobal(first, "verbose", "v", true, "")
	got, err := LookupGlobal[bool](Globals(), "verbose")
	require.NoError(t, err)
	assert.True(t, got)

	ResetGlobals()
	assert.NotSame(t, first, Globals(), "teardown discards the instance")
}
