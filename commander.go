package subcmd

// Commander lets a command be declared as a self-contained type: metadata
// accessors, flag registration, lifecycle hooks and child declarations all in
// one place. Embed Base to pick up neutral defaults and override only what
// the command needs; Build translates the declaration into a Command tree.
//
//	type printCommand struct {
//	    subcmd.Base
//	    loud bool
//	}
//
//	func (p *printCommand) Use() string   { return "print [text]" }
//	func (p *printCommand) Short() string { return "Print the given text" }
//	func (p *printCommand) RegisterFlags(persistent, local *subcmd.FlagSet) {
//	    subcmd.BindTypedDefault(local, &p.loud, "loud", "l", false, "print in upper case")
//	}
//	func (p *printCommand) Run(args []string) (int, error) { ... }
type Commander interface {
	Use() string
	Short() string
	Long() string
	Example() string
	Deprecated() string
	Aliases() []string
	Annotations() map[string]string
	Hidden() bool
	SilenceErrors() bool
	SilenceUsage() bool

	// RegisterFlags declares the command's flags on the two registries.
	RegisterFlags(persistent, local *FlagSet)

	PersistentPreRun(args []string) error
	PreRun(args []string) error
	Run(args []string) (int, error)
	PostRun(args []string) error
	PersistentPostRun(args []string) error

	// Commands declares the child commands.
	Commands() []Commander
}

// Base provides neutral defaults for every Commander method. Its Run reports
// ErrNotRunnable, so a command type that never overrides it falls back to the
// usage display when executed.
type Base struct{}

func (Base) Use() string { return "" }

func (Base) Short() string { return "" }

func (Base) Long() string { return "" }

func (Base) Example() string { return "" }

func (Base) Deprecated() string { return "" }

func (Base) Aliases() []string { return nil }

func (Base) Annotations() map[string]string { return nil }

func (Base) Hidden() bool { return false }

func (Base) SilenceErrors() bool { return false }

func (Base) SilenceUsage() bool { return false }

func (Base) RegisterFlags(persistent, local *FlagSet) {}

func (Base) PersistentPreRun(args []string) error { return nil }

func (Base) PreRun(args []string) error { return nil }

func (Base) Run(args []string) (int, error) { return -1, ErrNotRunnable }

func (Base) PostRun(args []string) error { return nil }

func (Base) PersistentPostRun(args []string) error { return nil }

func (Base) Commands() []Commander { return nil }

// Build instantiates the command tree a Commander describes, recursing into
// declared children. The hook closures keep the instance alive, so stateful
// command types work as expected.
func Build(cmder Commander) *Command {
	cmd := &Command{
		Use:           cmder.Use(),
		Aliases:       cmder.Aliases(),
		Short:         cmder.Short(),
		Long:          cmder.Long(),
		Example:       cmder.Example(),
		Deprecated:    cmder.Deprecated(),
		Hidden:        cmder.Hidden(),
		Annotations:   cmder.Annotations(),
		SilenceErrors: cmder.SilenceErrors(),
		SilenceUsage:  cmder.SilenceUsage(),

		PersistentPreRun:  cmder.PersistentPreRun,
		PreRun:            cmder.PreRun,
		Run:               cmder.Run,
		PostRun:           cmder.PostRun,
		PersistentPostRun: cmder.PersistentPostRun,

		PersistentFlags: NewFlagSet(),
		LocalFlags:      NewFlagSet(),
	}
	cmder.RegisterFlags(cmd.PersistentFlags, cmd.LocalFlags)

	for _, child := range cmder.Commands() {
		cmd.AddCommand(Build(child))
	}
	return cmd
}
