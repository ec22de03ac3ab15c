package subcmd

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestUsageString(t *testing.T) {
	t.Parallel()

	t.Run("full layout", func(t *testing.T) {
		t.Parallel()
		var verbose, loud bool
		root := &Command{
			Use: "app",
			PersistentFlags: FlagsFunc(func(fs *FlagSet) {
				BindTypedDefault(fs, &verbose, "verbose", "v", false, "enable verbose output")
			}),
		}
		print := &Command{
			Use:     "print [text]",
			Aliases: []string{"p"},
			Short:   "Print the given text to screen",
			Example: "app print hello",
			LocalFlags: FlagsFunc(func(fs *FlagSet) {
				BindTypedDefault(fs, &loud, "loud", "l", false, "print in upper case")
			}),
			Run: func([]string) (int, error) { return 0, nil },
		}
		root.AddCommand(print)

		want := "Usage:\n" +
			"   app print [text] [flags]\n" +
			"   app print [text]\n" +
			"\nAliases:\n" +
			"   print\n" +
			"   p\n" +
			"\nExample:\n" +
			"   app print hello\n" +
			"\nFlags:\n" +
			"   --loud, -l          print in upper case\n" +
			"\nGlobal Flags:\n" +
			"   --verbose, -v       enable verbose output\n"
		if diff := cmp.Diff(want, print.UsageString()); diff != "" {
			t.Errorf("usage mismatch (-want +got):\n%s", diff)
		}
	})
	t.Run("group command lists children in sorted order", func(t *testing.T) {
		t.Parallel()
		root := &Command{Use: "app"}
		ok := func([]string) (int, error) { return 0, nil }
		root.AddCommand(&Command{Use: "serve", Short: "Start the server", Run: ok})
		root.AddCommand(&Command{Use: "add", Short: "Add an item", Run: ok})
		root.AddCommand(&Command{Use: "hush", Hidden: true, Run: ok})

		want := "Usage:\n" +
			"   app [command]\n" +
			"\nAvailable commands:\n" +
			"   add                 Add an item\n" +
			"   serve               Start the server\n"
		if diff := cmp.Diff(want, root.UsageString()); diff != "" {
			t.Errorf("usage mismatch (-want +got):\n%s", diff)
		}
	})
	t.Run("usage writes to the configured sink", func(t *testing.T) {
		t.Parallel()
		out := bytes.NewBuffer(nil)
		root := &Command{Use: "app", Output: out, Run: func([]string) (int, error) { return 0, nil }}
		root.Usage()
		assert.Equal(t, "Usage:\n   app\n", out.String())
	})
	t.Run("output sink inherited from ancestors", func(t *testing.T) {
		t.Parallel()
		out := bytes.NewBuffer(nil)
		root := &Command{Use: "app", Output: out}
		sub := &Command{Use: "sub", Run: func([]string) (int, error) { return 0, nil }}
		root.AddCommand(sub)
		sub.Usage()
		assert.Contains(t, out.String(), "app sub")
	})
}

func TestHelp(t *testing.T) {
	t.Parallel()

	out := bytes.NewBuffer(nil)
	cmd := &Command{
		Use:    "print [text]",
		Short:  "Print the given text to screen",
		Long:   "Print the given text to screen, optionally in upper case.",
		Output: out,
		Run:    func([]string) (int, error) { return 0, nil },
	}
	cmd.Help()

	want := "Print the given text to screen\n\n" +
		"Print the given text to screen, optionally in upper case.\n\n" +
		"Usage:\n" +
		"   print [text]\n"
	if diff := cmp.Diff(want, out.String()); diff != "" {
		t.Errorf("help mismatch (-want +got):\n%s", diff)
	}
}
