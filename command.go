package subcmd

import (
	"io"
	"slices"
	"strings"

	"github.com/subcmd/subcmd/pkg/suggest"
)

// RunFunc is the work hook of a command. Its integer return value becomes the
// process exit status.
type RunFunc func(args []string) (int, error)

// HookFunc is the signature of the pre/post lifecycle hooks.
type HookFunc func(args []string) error

// Command is a node in the command tree: identity and descriptions, its own
// local and persistent flag registries, lifecycle hooks, and links to parent
// and children.
//
// A tree is not safe for concurrent dispatch. Resolution and flag merging
// mutate lazy state in place (child sort flags, flattened persistent flags),
// so callers must serialize Execute per tree.
type Command struct {
	// Use is the one-line usage message. The first word is the command name
	// used for resolution; it must be non-empty for any command added as a
	// child.
	Use string

	// Aliases are alternative names matched during resolution. They do not
	// feed suggestions.
	Aliases []string

	// Short is the description shown in command listings.
	Short string

	// Long is the description shown by 'help <command>'.
	Long string

	// Example shows how to use the command.
	Example string

	// Deprecated carries the deprecation message. A non-empty value excludes
	// the command from listings, resolution and suggestions.
	Deprecated string

	// Hidden excludes the command from listings, resolution and suggestions.
	Hidden bool

	// Annotations are key/value pairs applications can use to identify or
	// group commands.
	Annotations map[string]string

	// PersistentFlags are inherited by descendant commands.
	PersistentFlags *FlagSet

	// LocalFlags apply to this command only.
	LocalFlags *FlagSet

	// SilenceErrors suppresses the unknown-command diagnostic.
	SilenceErrors bool

	// SilenceUsage suppresses the usage block on a flag-parse failure.
	SilenceUsage bool

	// PersistentPreRun runs before Run. A command without one inherits the
	// nearest ancestor's.
	PersistentPreRun HookFunc

	// PreRun runs before Run on this command only.
	PreRun HookFunc

	// Run is the actual work. Most commands implement this; a command without
	// it displays usage when executed.
	Run RunFunc

	// PostRun runs after Run on this command only.
	PostRun HookFunc

	// PersistentPostRun runs after PostRun. A command without one inherits
	// the nearest ancestor's.
	PersistentPostRun HookFunc

	// Output is where usage and help text is written. Falls back to the
	// nearest ancestor's Output, then os.Stdout.
	Output io.Writer

	// ErrOutput is where diagnostics are written. Falls back like Output,
	// then os.Stderr.
	ErrOutput io.Writer

	parent   *Command
	commands []*Command
	sorted   bool
}

// Name returns the command name: the Use line up to the first space.
func (c *Command) Name() string {
	name, _, _ := strings.Cut(c.Use, " ")
	return name
}

// Parent returns the command this one was added to, or nil for a root.
func (c *Command) Parent() *Command {
	return c.parent
}

// Root walks up the parent links to the top of the tree.
func (c *Command) Root() *Command {
	if c.parent == nil {
		return c
	}
	return c.parent.Root()
}

// Commands returns the child commands. The slice is sorted by name on first
// ordered use; callers must not modify it.
func (c *Command) Commands() []*Command {
	return c.commands
}

// AddCommand attaches sub as a child and invalidates the lazy sort, so
// ordering is re-established on the next lookup that needs it. Panics when
// sub has an empty name, since a nameless child could never be resolved, or
// when a command is added to itself.
func (c *Command) AddCommand(sub *Command) {
	if sub.Name() == "" {
		panic("subcmd: cannot add a command with an empty name")
	}
	if sub == c {
		panic("subcmd: a command cannot be a child of itself")
	}
	sub.parent = c
	c.commands = append(c.commands, sub)
	c.sorted = false
}

// compareCommands orders children by name. A package variable so tests can
// observe sorting behaviour.
var compareCommands = func(a, b *Command) int {
	return strings.Compare(a.Name(), b.Name())
}

func (c *Command) sortCommands() {
	if c.sorted {
		return
	}
	slices.SortFunc(c.commands, compareCommands)
	c.sorted = true
}

// IsRunnable reports whether the command has a run hook.
func (c *Command) IsRunnable() bool {
	return c.Run != nil
}

// HasAlias reports whether name is one of the command's aliases.
func (c *Command) HasAlias(name string) bool {
	return slices.Contains(c.Aliases, name)
}

// HasExample reports whether the command carries an example.
func (c *Command) HasExample() bool {
	return c.Example != ""
}

// IsAvailableCommand reports whether the command takes part in listings,
// resolution and suggestions: not hidden, not deprecated, and either runnable
// or the parent of something that is.
func (c *Command) IsAvailableCommand() bool {
	if c.Deprecated != "" || c.Hidden {
		return false
	}
	return c.IsRunnable() || c.HasAvailableSubCommands()
}

// HasSubCommands reports whether the command has any children at all.
func (c *Command) HasSubCommands() bool {
	return len(c.commands) > 0
}

// HasAvailableSubCommands reports whether at least one child is available.
func (c *Command) HasAvailableSubCommands() bool {
	for _, sub := range c.commands {
		if sub.IsAvailableCommand() {
			return true
		}
	}
	return false
}

// pflags returns the persistent FlagSet, creating it on first use.
func (c *Command) pflags() *FlagSet {
	if c.PersistentFlags == nil {
		c.PersistentFlags = NewFlagSet()
	}
	return c.PersistentFlags
}

// lflags returns the local FlagSet, creating it on first use.
func (c *Command) lflags() *FlagSet {
	if c.LocalFlags == nil {
		c.LocalFlags = NewFlagSet()
	}
	return c.LocalFlags
}

// InheritedFlags collects the persistent flags declared by ancestors,
// excluding this command's own. The walk only recurses past an ancestor that
// itself declares at least one persistent flag: an ancestor with none cuts
// off everything above it. Known quirk, kept for compatibility with existing
// trees.
func (c *Command) InheritedFlags() *FlagSet {
	result := NewFlagSet()
	var rmerge func(*Command)
	rmerge = func(cmd *Command) {
		if cmd.pflags().Size() == 0 {
			return
		}
		cmd.PersistentFlags.VisitAll(func(f *Flag) {
			if result.Lookup(f.Long) == nil {
				result.AddDescriptor(f)
			}
		})
		if cmd.parent != nil {
			rmerge(cmd.parent)
		}
	}
	if c.parent != nil {
		rmerge(c.parent)
	}
	return result
}

// mergePersistentFlags flattens every ancestor's persistent flags into this
// command's own persistent set, sharing descriptors by reference. Unlike
// InheritedFlags the walk always continues to the parent; only the merge step
// is skipped for empty sets. A one-time destructive flattening, triggered
// lazily before flag parsing rather than on tree mutation.
func (c *Command) mergePersistentFlags() {
	var rmerge func(*Command)
	rmerge = func(cmd *Command) {
		if cmd.pflags().Size() > 0 {
			cmd.PersistentFlags.VisitAll(func(f *Flag) {
				if c.pflags().Lookup(f.Long) == nil {
					c.PersistentFlags.AddDescriptor(f)
				}
			})
		}
		if cmd.parent != nil {
			rmerge(cmd.parent)
		}
	}
	rmerge(c)
}

// EffectiveFlags triggers the persistent-flag flattening and returns the
// local flags unioned with the flattened persistent ones. A local flag wins a
// long-name collision. ContinueOnError carries over from the local set.
func (c *Command) EffectiveFlags() *FlagSet {
	c.mergePersistentFlags()

	result := NewFlagSet()
	result.ContinueOnError = c.lflags().ContinueOnError
	c.LocalFlags.VisitAll(func(f *Flag) {
		result.AddDescriptor(f)
	})
	c.PersistentFlags.VisitAll(func(f *Flag) {
		if result.Lookup(f.Long) == nil {
			result.AddDescriptor(f)
		}
	})
	return result
}

// HasAvailableFlags reports whether any flag applies to this command.
func (c *Command) HasAvailableFlags() bool {
	return c.EffectiveFlags().Size() > 0
}

// CommandPath returns the space-separated names from the root to this
// command.
func (c *Command) CommandPath() string {
	path := c.Name()
	for x := c.parent; x != nil; x = x.parent {
		path = x.Name() + " " + path
	}
	return path
}

// UseLine returns the full usage line, including the parent path.
func (c *Command) UseLine() string {
	if c.parent == nil {
		return c.Use
	}
	return c.parent.CommandPath() + " " + c.Use
}

// Find walks the tree consuming leading positional tokens, descending into
// children whose name or alias matches exactly, and returns the deepest
// matched command together with the unconsumed tokens. Matching is
// case-sensitive; fuzzy matching is reserved for SuggestionsFor after a
// failed resolution.
func (c *Command) Find(args []string) (*Command, []string) {
	current := c
	for len(args) > 0 && current.HasAvailableSubCommands() {
		current.sortCommands()
		var next *Command
		for _, sub := range current.commands {
			if !sub.IsAvailableCommand() {
				continue
			}
			if sub.Name() == args[0] || sub.HasAlias(args[0]) {
				next = sub
				break
			}
		}
		if next == nil {
			break
		}
		current = next
		args = args[1:]
	}
	return current, args
}

// SuggestionsFor returns the names of available children that are plausible
// matches for name: a case-folded Levenshtein distance of at most 2, or the
// query being a case-folded prefix of the child's name. Child iteration order
// is preserved. Only canonical names are considered; aliases take part in
// exact resolution but not in suggestions.
func (c *Command) SuggestionsFor(name string) []string {
	var suggestions []string
	for _, sub := range c.commands {
		if !sub.IsAvailableCommand() {
			continue
		}
		byDistance := suggest.Distance(name, sub.Name(), true) <= 2
		byPrefix := suggest.HasFoldedPrefix(sub.Name(), name)
		if byDistance || byPrefix {
			suggestions = append(suggestions, sub.Name())
		}
	}
	return suggestions
}
