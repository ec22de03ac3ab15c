package subcmd

import (
	"slices"
	"strings"
)

// FlagMap is an ordered mapping from flag tokens, dash prefix included
// ("--verbose", "-v"), to their raw string values. Insertion order is
// preserved so flag setters fire in the order tokens first appeared on the
// command line; setting an existing key overwrites the value but keeps the
// original position.
type FlagMap struct {
	keys   []string
	values map[string]string
}

// NewFlagMap returns an empty FlagMap.
func NewFlagMap() *FlagMap {
	return &FlagMap{values: make(map[string]string)}
}

// Set stores value under key, overwriting any previous value.
func (m *FlagMap) Set(key, value string) {
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Get returns the value stored under key.
func (m *FlagMap) Get(key string) (string, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Len returns the number of stored keys.
func (m *FlagMap) Len() int {
	return len(m.keys)
}

// Keys returns the stored keys in first-seen order.
func (m *FlagMap) Keys() []string {
	return slices.Clone(m.keys)
}

// SplitArgs separates raw command-line tokens into positional arguments and
// flag assignments. A token counts as a flag if it contains a '-' anywhere,
// so a positional like a negative number or a hyphenated word is claimed as a
// flag too; callers must not rely on a literal dash surviving in a
// positional. Flag tokens split at the first '='; without one the value is
// the string "true". Keys keep their dash prefix. Malformed flag tokens
// (a bare "-", say) are stored as-is and never raise an error here; they
// surface later as unknown flags during parsing.
func SplitArgs(args []string) ([]string, *FlagMap) {
	flags := NewFlagMap()
	var positionals []string
	for _, arg := range args {
		trimmed := strings.TrimSpace(arg)
		if !strings.Contains(trimmed, "-") {
			positionals = append(positionals, arg)
			continue
		}
		key, value, ok := strings.Cut(trimmed, "=")
		if !ok {
			value = "true"
		}
		flags.Set(key, value)
	}
	return positionals, flags
}
