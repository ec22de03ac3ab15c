package subcmd

import (
	"errors"
	"fmt"
)

// ErrNotRunnable signals that a command's run hook was invoked without being
// overridden. The dispatcher treats it as "show usage", not as a failure.
var ErrNotRunnable = errors.New("command is not runnable")

// ErrUnknownType signals a flag type tag with no registered conversion.
// Purely internal: it can only surface through a corrupted registry entry.
var ErrUnknownType = errors.New("unknown flag type")

// UnknownFlagError is returned when a parsed flag token matches no registered
// descriptor.
type UnknownFlagError struct {
	Name string
}

func (e *UnknownFlagError) Error() string {
	return fmt.Sprintf("unknown flag: %q", e.Name)
}

// WrongTypeError is returned by typed global-flag lookups when the requested
// type does not match the registered one.
type WrongTypeError struct {
	Name       string
	Registered FlagType
	Requested  FlagType
}

func (e *WrongTypeError) Error() string {
	return fmt.Sprintf("flag %q registered as %s, requested %s", e.Name, e.Registered, e.Requested)
}
