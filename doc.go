// Package subcmd provides a small framework for building command-line
// applications as a tree of named commands with typed, inheritable flags.
//
// Commands are assembled into a tree with [Command.AddCommand], or declared
// as self-contained types via the [Commander] interface and instantiated with
// [Build]. A single [Command.Execute] call splits the raw arguments into
// flags and positionals, resolves the deepest matching subcommand, parses the
// command's effective flags (its own plus every ancestor's persistent flags),
// and runs the lifecycle hooks. Unknown commands produce "did you mean"
// suggestions based on edit distance and prefix matching.
package subcmd
