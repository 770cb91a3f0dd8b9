package options

import (
	"errors"
	"fmt"
	"strings"
)

type FlagEnum int

const (
	FlagEq         FlagEnum = 1 << iota // structural equality over declared fields
	FlagUnsafeHash                      // hash even when instances stay mutable
	FlagOrder                           // lexicographic total order over declared fields
	FlagRepr                            // TypeName(field=value, ...) representation
	FlagFrozen                          // reject field mutation after construction

	FlagAll  = (1 << iota) - 1 // all flags combined
	FlagNone = 0               // no flags selected
)

// ErrOrderWithoutEq is returned by Config.Validate when ordering is requested without equality.
var ErrOrderWithoutEq = errors.New("order requires eq")

var flagNames = []struct {
	flag FlagEnum
	name string
}{
	{FlagEq, "eq"},
	{FlagUnsafeHash, "unsafe_hash"},
	{FlagOrder, "order"},
	{FlagRepr, "repr"},
	{FlagFrozen, "frozen"},
}

// String returns the flag names joined by "|", e.g. "eq|order".
func (f FlagEnum) String() string {
	if f == FlagNone {
		return "none"
	}

	var parts []string

	for _, fn := range flagNames {
		if f&fn.flag != 0 {
			parts = append(parts, fn.name)
		}
	}

	return strings.Join(parts, "|")
}

// ParseFlag converts a manifest or command line spelling into a flag.
func ParseFlag(s string) (FlagEnum, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, fn := range flagNames {
		if fn.name == name {
			return fn.flag, nil
		}
	}

	return FlagNone, fmt.Errorf("unknown flag %q", s)
}

// Config selects which capabilities are derived for a plain data type.
// It is copied by value wherever it is stored, so it never changes after augmentation.
type Config struct {
	Eq         bool
	UnsafeHash bool
	Order      bool
	Repr       bool
	Frozen     bool
}

// Default returns eq=true, repr=true and everything else false.
func Default() Config {
	return Config{Eq: true, Repr: true}
}

// FromFlags builds a Config with exactly the given flags enabled.
func FromFlags(f FlagEnum) Config {
	return Config{
		Eq:         f&FlagEq != 0,
		UnsafeHash: f&FlagUnsafeHash != 0,
		Order:      f&FlagOrder != 0,
		Repr:       f&FlagRepr != 0,
		Frozen:     f&FlagFrozen != 0,
	}
}

// Flags returns the bitmask form of the configuration.
func (c Config) Flags() FlagEnum {
	var f FlagEnum
	if c.Eq {
		f |= FlagEq
	}

	if c.UnsafeHash {
		f |= FlagUnsafeHash
	}

	if c.Order {
		f |= FlagOrder
	}

	if c.Repr {
		f |= FlagRepr
	}

	if c.Frozen {
		f |= FlagFrozen
	}

	return f
}

// With returns a copy of c with the given flags switched on.
func (c Config) With(f FlagEnum) Config {
	return FromFlags(c.Flags() | f)
}

// Without returns a copy of c with the given flags switched off.
func (c Config) Without(f FlagEnum) Config {
	return FromFlags(c.Flags() &^ f)
}

// String lists the enabled flags.
func (c Config) String() string {
	return c.Flags().String()
}

// Validate rejects incoherent flag combinations.
func (c Config) Validate() error {
	if c.Order && !c.Eq {
		return ErrOrderWithoutEq
	}

	return nil
}

// HashMode describes how hashing behaves for a configuration.
type HashMode int

const (
	HashDefault  HashMode = iota // eq=false: hashing is left to the host default
	HashDerived                  // hash combines field hashes in declared order
	HashDisabled                 // eq=true on a mutable type: hashing fails
)

// String returns a human-readable hash mode.
func (m HashMode) String() string {
	switch m {
	case HashDerived:
		return "derived"
	case HashDisabled:
		return "disabled"
	default:
		return "default"
	}
}

// HashMode applies the equality/mutability discipline to pick the hash behavior.
func (c Config) HashMode() HashMode {
	switch {
	case c.UnsafeHash:
		return HashDerived
	case c.Eq && c.Frozen:
		return HashDerived
	case c.Eq:
		return HashDisabled
	default:
		return HashDefault
	}
}
