package subcmd

import "fmt"

// FlagSet is an ordered collection of flag descriptors. Insertion order is
// preserved for help rendering. Add never deduplicates: registering the same
// long name twice produces two entries and Lookup returns the first, so the
// later one is shadowed.
type FlagSet struct {
	flags []*Flag

	// ContinueOnError makes dispatch proceed with whatever setters already
	// succeeded instead of failing on a parse error.
	ContinueOnError bool
}

// NewFlagSet returns an empty FlagSet.
func NewFlagSet() *FlagSet {
	return &FlagSet{}
}

// FlagsFunc builds a FlagSet inline, for use in Command literals:
//
//	LocalFlags: subcmd.FlagsFunc(func(fs *subcmd.FlagSet) {
//	    subcmd.BindTypedDefault(fs, &loud, "loud", "l", false, "print in upper case")
//	}),
func FlagsFunc(fn func(*FlagSet)) *FlagSet {
	fs := NewFlagSet()
	fn(fs)
	return fs
}

// Add appends a descriptor built from the given parts.
func (fs *FlagSet) Add(typ FlagType, long, short, description string, setter func(string) error) {
	fs.flags = append(fs.flags, &Flag{
		Type:        typ,
		Long:        long,
		Short:       short,
		Description: description,
		Setter:      setter,
	})
}

// AddDescriptor appends an existing descriptor, sharing it by reference. Used
// when merging inherited flags so that the setter keeps targeting the
// original storage.
func (fs *FlagSet) AddDescriptor(f *Flag) {
	fs.flags = append(fs.flags, f)
}

// Lookup returns the first flag registered under the given long name, or nil.
func (fs *FlagSet) Lookup(long string) *Flag {
	for _, f := range fs.flags {
		if f.Long == long {
			return f
		}
	}
	return nil
}

func (fs *FlagSet) lookupShort(short string) *Flag {
	for _, f := range fs.flags {
		if f.Short == short {
			return f
		}
	}
	return nil
}

// Size returns the number of registered descriptors.
func (fs *FlagSet) Size() int {
	return len(fs.flags)
}

// VisitAll calls fn for every descriptor in registration order.
func (fs *FlagSet) VisitAll(fn func(*Flag)) {
	for _, f := range fs.flags {
		fn(f)
	}
}

// Parse applies split flag tokens to their registered setters, in the order
// the tokens first appeared. The stored key's dash prefix decides whether it
// resolves by long name (two dashes) or short name (one dash). Parsing stops
// at the first unknown flag or conversion failure.
func (fs *FlagSet) Parse(values *FlagMap) error {
	if values == nil {
		return nil
	}
	for _, key := range values.Keys() {
		value, _ := values.Get(key)

		var name string
		var f *Flag
		if len(key) > 1 && key[1] == '-' {
			name = key[2:]
			f = fs.Lookup(name)
		} else {
			if len(key) > 0 {
				name = key[1:]
			}
			f = fs.lookupShort(name)
		}
		if f == nil {
			return &UnknownFlagError{Name: name}
		}
		if err := f.Setter(value); err != nil {
			return fmt.Errorf("flag --%s: %w", f.Long, err)
		}
	}
	return nil
}

// AddTyped registers a flag whose type tag is inferred from T and immediately
// feeds the default through the setter, so the default takes effect at
// registration time rather than parse time.
func AddTyped[T Value](fs *FlagSet, long, short string, def T, description string, setter func(string) error) {
	fs.Add(flagTypeOf[T](), long, short, description, setter)
	_ = setter(formatValue(def))
}

// BindTyped registers a flag that writes parsed values straight into ref.
func BindTyped[T Value](fs *FlagSet, ref *T, long, short, description string) {
	fs.Add(flagTypeOf[T](), long, short, description, func(value string) error {
		v, err := convertValue[T](value)
		if err != nil {
			return err
		}
		*ref = v
		return nil
	})
}

// BindTypedDefault is BindTyped with the default assigned immediately.
func BindTypedDefault[T Value](fs *FlagSet, ref *T, long, short string, def T, description string) {
	BindTyped(fs, ref, long, short, description)
	*ref = def
}
