package subcmd

import "sync"

// GlobalFlags is a registry for process-wide flags that live outside any one
// command tree. Parsed values land in an internal store keyed by long name;
// typed access goes through LookupGlobal. Construct one explicitly with
// NewGlobalFlags, or use the guarded package default via Globals.
type GlobalFlags struct {
	flags    *FlagSet
	registry map[string]globalEntry
}

type globalEntry struct {
	typ   FlagType
	value string
}

// NewGlobalFlags returns an empty registry with caller-controlled lifetime.
func NewGlobalFlags() *GlobalFlags {
	return &GlobalFlags{
		flags:    NewFlagSet(),
		registry: make(map[string]globalEntry),
	}
}

// Add registers a flag under an explicit type tag, with no default value.
func (g *GlobalFlags) Add(typ FlagType, long, short, description string) {
	g.flags.Add(typ, long, short, description, func(value string) error {
		e := g.registry[long]
		e.value = value
		g.registry[long] = e
		return nil
	})
	g.registry[long] = globalEntry{typ: typ}
}

// AddGlobal registers a typed flag with a default value.
func AddGlobal[T Value](g *GlobalFlags, long, short string, def T, description string) {
	g.Add(flagTypeOf[T](), long, short, description)
	g.registry[long] = globalEntry{typ: flagTypeOf[T](), value: formatValue(def)}
}

// LookupGlobal returns the current value of a global flag converted to T.
// Unknown names yield an UnknownFlagError; a T that does not match the
// registered tag yields a WrongTypeError.
func LookupGlobal[T Value](g *GlobalFlags, name string) (T, error) {
	var zero T
	e, ok := g.registry[name]
	if !ok {
		return zero, &UnknownFlagError{Name: name}
	}
	if e.typ < FlagBool || e.typ > FlagString {
		return zero, ErrUnknownType
	}
	if want := flagTypeOf[T](); e.typ != want {
		return zero, &WrongTypeError{Name: name, Registered: e.typ, Requested: want}
	}
	return convertValue[T](e.value)
}

// Flags exposes the registry's FlagSet, for example to merge into a root
// command's persistent flags.
func (g *GlobalFlags) Flags() *FlagSet {
	return g.flags
}

// Parse applies split flag tokens to the registry's setters.
func (g *GlobalFlags) Parse(values *FlagMap) error {
	return g.flags.Parse(values)
}

var (
	globalsMu sync.Mutex
	globals   *GlobalFlags
)

// Globals returns the process-wide default registry, created on first use.
// The guard makes first-use initialization safe against re-entrant callers.
func Globals() *GlobalFlags {
	globalsMu.Lock()
	defer globalsMu.Unlock()
	if globals == nil {
		globals = NewGlobalFlags()
	}
	return globals
}

// ResetGlobals discards the default registry; the next Globals call creates a
// fresh one. Intended for process teardown and tests.
func ResetGlobals() {
	globalsMu.Lock()
	defer globalsMu.Unlock()
	globals = nil
}
