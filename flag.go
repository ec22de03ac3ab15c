package subcmd

import (
	"fmt"
	"strconv"

	"github.com/subcmd/subcmd/pkg/textutil"
)

// FlagType identifies the primitive type a flag converts its textual value
// into.
type FlagType int

const (
	FlagBool FlagType = iota
	FlagInt
	FlagFloat
	FlagChar
	FlagString
)

func (t FlagType) String() string {
	switch t {
	case FlagBool:
		return "bool"
	case FlagInt:
		return "int"
	case FlagFloat:
		return "float"
	case FlagChar:
		return "char"
	case FlagString:
		return "string"
	default:
		return "unknown"
	}
}

// Value enumerates the Go types a typed flag can bind to.
type Value interface {
	bool | int | float64 | rune | string
}

// Flag describes a single registered command-line flag. The Setter writes the
// textual value into whatever storage the registering caller chose. Merged
// registries share the descriptor by reference, never by copy, so every view
// of a flag targets the same storage.
type Flag struct {
	Type        FlagType
	Long        string
	Short       string
	Description string
	Setter      func(value string) error
}

// Usage renders the single help line for the flag: the dashed names padded
// out to the description column.
func (f *Flag) Usage() string {
	name := "--" + f.Long
	if f.Short != "" {
		name += ", -" + f.Short
	}
	return textutil.Rpad(name, 20) + f.Description
}

// flagTypeOf maps a bound Go type onto its FlagType tag.
func flagTypeOf[T Value]() FlagType {
	switch any(*new(T)).(type) {
	case bool:
		return FlagBool
	case int:
		return FlagInt
	case float64:
		return FlagFloat
	case rune:
		return FlagChar
	default:
		return FlagString
	}
}

// convertValue parses s into the bound type. Booleans follow the framework
// convention that exactly "true" is true and anything else is false; chars
// take the first character of the value, or NUL when it is empty.
func convertValue[T Value](s string) (T, error) {
	var out T
	switch p := any(&out).(type) {
	case *bool:
		*p = s == "true"
	case *int:
		n, err := strconv.Atoi(s)
		if err != nil {
			return out, fmt.Errorf("parse int %q: %w", s, err)
		}
		*p = n
	case *float64:
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return out, fmt.Errorf("parse float %q: %w", s, err)
		}
		*p = f
	case *rune:
		if s != "" {
			*p = []rune(s)[0]
		}
	case *string:
		*p = s
	}
	return out, nil
}

// formatValue renders v in the textual form convertValue accepts, used to
// establish defaults through the same setter path as parsed values.
func formatValue[T Value](v T) string {
	switch x := any(v).(type) {
	case bool:
		if x {
			return "true"
		}
		return "false"
	case int:
		return strconv.Itoa(x)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case rune:
		if x == 0 {
			return ""
		}
		return string(x)
	default:
		return any(v).(string)
	}
}
