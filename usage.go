package subcmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/subcmd/subcmd/pkg/textutil"
)

// OutOrStdout returns the sink usage and help text is written to, inherited
// from the nearest ancestor that set one.
func (c *Command) OutOrStdout() io.Writer {
	for x := c; x != nil; x = x.parent {
		if x.Output != nil {
			return x.Output
		}
	}
	return os.Stdout
}

// ErrOrStderr returns the sink diagnostics are written to, inherited like
// OutOrStdout.
func (c *Command) ErrOrStderr() io.Writer {
	for x := c; x != nil; x = x.parent {
		if x.ErrOutput != nil {
			return x.ErrOutput
		}
	}
	return os.Stderr
}

// UsageString renders the usage block for the command. A runnable command
// with flags and no available subcommands prints both the "[flags]" line and
// the bare use line; long-standing output, kept for compatibility.
func (c *Command) UsageString() string {
	var b strings.Builder

	b.WriteString("Usage:\n")
	if c.IsRunnable() {
		if c.HasAvailableFlags() {
			fmt.Fprintf(&b, "   %s [flags]\n", c.UseLine())
		}
		if c.HasAvailableSubCommands() {
			fmt.Fprintf(&b, "   %s [command]\n", c.CommandPath())
		} else {
			fmt.Fprintf(&b, "   %s\n", c.UseLine())
		}
	} else if c.HasAvailableSubCommands() {
		fmt.Fprintf(&b, "   %s [command]\n", c.CommandPath())
	}

	if len(c.Aliases) > 0 {
		b.WriteString("\nAliases:\n")
		fmt.Fprintf(&b, "   %s\n", c.Name())
		for _, alias := range c.Aliases {
			fmt.Fprintf(&b, "   %s\n", alias)
		}
	}

	if c.HasExample() {
		b.WriteString("\nExample:\n")
		fmt.Fprintf(&b, "   %s\n", c.Example)
	}

	if c.HasAvailableSubCommands() {
		b.WriteString("\nAvailable commands:\n")
		c.sortCommands()
		for _, sub := range c.commands {
			if !sub.IsAvailableCommand() {
				continue
			}
			fmt.Fprintf(&b, "   %s%s\n", textutil.Rpad(sub.Name(), 20), sub.Short)
		}
	}

	if c.lflags().Size() > 0 {
		b.WriteString("\nFlags:\n")
		c.LocalFlags.VisitAll(func(f *Flag) {
			fmt.Fprintf(&b, "   %s\n", f.Usage())
		})
	}

	if inherited := c.InheritedFlags(); inherited.Size() > 0 {
		b.WriteString("\nGlobal Flags:\n")
		inherited.VisitAll(func(f *Flag) {
			fmt.Fprintf(&b, "   %s\n", f.Usage())
		})
	}

	return b.String()
}

// Usage writes the usage block to the command's output sink. Shown when the
// user provides invalid input.
func (c *Command) Usage() {
	fmt.Fprint(c.OutOrStdout(), c.UsageString())
}

// Help writes the help block: the short and long descriptions followed by the
// usage section. Backs the implicit 'help [command]' subcommand.
func (c *Command) Help() {
	var b strings.Builder
	if c.Short != "" {
		b.WriteString(c.Short + "\n\n")
	}
	if c.Long != "" {
		b.WriteString(c.Long + "\n\n")
	}
	if c.IsRunnable() || c.HasSubCommands() {
		b.WriteString(c.UsageString())
	}
	fmt.Fprint(c.OutOrStdout(), b.String())
}
