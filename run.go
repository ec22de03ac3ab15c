package subcmd

import (
	"errors"
	"fmt"
	"strings"
)

// Execute runs one full dispatch: split args into flags and positionals,
// resolve the deepest matching subcommand, parse the effective flags into it,
// and invoke the lifecycle hooks. The int is the process exit status: the run
// hook's return value, 0 on showed-usage paths, -1 on an unknown command or
// an unrecoverable flag-parse failure. Errors returned by hooks, other than
// ErrNotRunnable, pass through to the caller.
//
// Execute may be called on any node in the tree; dispatch always restarts at
// the root. The typical call is Execute(os.Args[1:]). Dispatch mutates lazy
// tree state, so concurrent calls against the same tree must be serialized.
func (c *Command) Execute(args []string) (int, error) {
	if c.parent != nil {
		return c.Root().Execute(args)
	}
	c.injectHelpCommand()

	positionals, flags := SplitArgs(args)
	cmd, rest := c.Find(positionals)

	// Resolution that never left the root with input remaining means the
	// first token named no command. Deeper partial matches fall through: the
	// leftover tokens become the run hook's positional arguments.
	if cmd == c && c.HasAvailableSubCommands() && len(rest) > 0 {
		if !c.SilenceErrors {
			fmt.Fprint(c.ErrOrStderr(), unknownCommandMessage(c, rest[0]))
		}
		return -1, nil
	}

	if !cmd.IsRunnable() {
		cmd.Usage()
		return 0, nil
	}

	effective := cmd.EffectiveFlags()
	if err := effective.Parse(flags); err != nil && !effective.ContinueOnError {
		if !cmd.SilenceUsage {
			cmd.Usage()
		}
		return -1, nil
	}

	return cmd.runLifecycle(rest)
}

// runLifecycle invokes the hooks around Run in order: persistentPreRun,
// preRun, run, postRun, persistentPostRun. The persistent hooks come from the
// nearest command up the chain, self included, that defines them. A pre/post
// hook error aborts the dispatch and propagates with exit status -1.
func (c *Command) runLifecycle(args []string) (int, error) {
	if hook := c.nearestHook(func(x *Command) HookFunc { return x.PersistentPreRun }); hook != nil {
		if err := hook(args); err != nil {
			return -1, err
		}
	}
	if c.PreRun != nil {
		if err := c.PreRun(args); err != nil {
			return -1, err
		}
	}

	code, err := c.Run(args)
	if err != nil {
		// A run hook that was never overridden reports ErrNotRunnable; treat
		// it like any other non-runnable command.
		if errors.Is(err, ErrNotRunnable) {
			c.Usage()
			return 0, nil
		}
		return code, err
	}

	if c.PostRun != nil {
		if err := c.PostRun(args); err != nil {
			return -1, err
		}
	}
	if hook := c.nearestHook(func(x *Command) HookFunc { return x.PersistentPostRun }); hook != nil {
		if err := hook(args); err != nil {
			return -1, err
		}
	}
	return code, nil
}

func (c *Command) nearestHook(get func(*Command) HookFunc) HookFunc {
	for x := c; x != nil; x = x.parent {
		if hook := get(x); hook != nil {
			return hook
		}
	}
	return nil
}

func unknownCommandMessage(root *Command, name string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Unknown command %s for %s", name, root.CommandPath())
	if suggestions := root.SuggestionsFor(name); len(suggestions) > 0 {
		b.WriteString("\n\nDid you mean this?\n")
		for _, s := range suggestions {
			fmt.Fprintf(&b, "   %s\n", s)
		}
	}
	return b.String()
}

// injectHelpCommand attaches the implicit 'help [command]' subcommand to the
// root, once, and only when there are subcommands worth describing.
func (c *Command) injectHelpCommand() {
	if !c.HasSubCommands() {
		return
	}
	for _, sub := range c.commands {
		if sub.Name() == "help" {
			return
		}
	}

	help := &Command{
		Use:   "help [command]",
		Short: "Help about any command",
		Long: fmt.Sprintf("Help provides help for any command in the application.\n"+
			"Simply type %s help [path to command] for details.", c.Name()),
	}
	help.Run = func(args []string) (int, error) {
		target, rest := c.Find(args)
		if len(rest) > 0 {
			fmt.Fprintf(c.ErrOrStderr(), "Unknown help topic %s\n", rest[0])
			if suggestions := target.SuggestionsFor(rest[0]); len(suggestions) > 0 {
				fmt.Fprint(c.ErrOrStderr(), "\nDid you mean this?\n")
				for _, s := range suggestions {
					fmt.Fprintf(c.ErrOrStderr(), "   %s\n", s)
				}
			}
			return -1, nil
		}
		target.Help()
		return 0, nil
	}
	c.AddCommand(help)
}
