package subcmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type echoRoot struct {
	Base
}

func (echoRoot) Use() string   { return "echo" }
func (echoRoot) Short() string { return "echo prints its arguments" }

func (echoRoot) Commands() []Commander {
	return []Commander{&echoPrint{}}
}

type echoPrint struct {
	Base
	out  *bytes.Buffer
	loud bool
}

func (p *echoPrint) Use() string   { return "print [text]" }
func (p *echoPrint) Short() string { return "Print the given text to screen" }

func (p *echoPrint) RegisterFlags(persistent, local *FlagSet) {
	BindTypedDefault(local, &p.loud, "loud", "l", false, "print in upper case")
}

func (p *echoPrint) Run(args []string) (int, error) {
	text := strings.Join(args, " ")
	if p.loud {
		text = strings.ToUpper(text)
	}
	p.out.WriteString(text)
	return 0, nil
}

func TestBuild(t *testing.T) {
	t.Parallel()

	t.Run("metadata and children translate into the tree", func(t *testing.T) {
		t.Parallel()
		root := Build(echoRoot{})
		assert.Equal(t, "echo", root.Name())
		assert.Equal(t, "echo prints its arguments", root.Short)
		require.Len(t, root.Commands(), 1)
		assert.Equal(t, "print", root.Commands()[0].Name())
		assert.Equal(t, root, root.Commands()[0].Parent())
	})
	t.Run("flags bind to the command instance", func(t *testing.T) {
		t.Parallel()
		out := bytes.NewBuffer(nil)
		// Build keeps the instance alive through the hook closures, so the
		// running command sees the buffer and the parsed flag.
		root := &Command{Use: "echo"}
		root.AddCommand(Build(&echoPrint{out: out}))

		code, err := root.Execute([]string{"print", "hello", "--loud"})
		require.NoError(t, err)
		assert.Equal(t, 0, code)
		assert.Equal(t, "HELLO", out.String())
	})
	t.Run("default run falls back to usage", func(t *testing.T) {
		t.Parallel()
		out := bytes.NewBuffer(nil)
		root := Build(echoRoot{})
		root.Output = out

		code, err := root.Execute(nil)
		require.NoError(t, err)
		assert.Equal(t, 0, code, "the unoverridden run hook is benign")
		assert.Contains(t, out.String(), "Usage:")
		assert.Contains(t, out.String(), "Available commands:")
	})
	t.Run("base defaults", func(t *testing.T) {
		t.Parallel()
		var b Base
		assert.Empty(t, b.Use())
		assert.False(t, b.Hidden())
		assert.Nil(t, b.Commands())
		_, err := b.Run(nil)
		assert.ErrorIs(t, err, ErrNotRunnable)
	})
}
