package plain

import (
	"fmt"
	"reflect"
)

// Described is implemented by augmented types and their instances.
type Described interface {
	Descriptor() *Descriptor
}

// object is implemented by instances of augmented types.
type object interface {
	Described
	plainValue() reflect.Value
}

type replacer interface {
	Described
	replaceAny(changes map[string]any) (any, error)
}

// Fields lists the declared fields of an augmented type or of an instance of
// one, in declaration order.
func Fields(target any) ([]string, error) {
	d, ok := target.(Described)
	if !ok || d.Descriptor() == nil {
		return nil, mismatch("plain data type or instance", target)
	}

	return d.Descriptor().Fields(), nil
}

// Replace builds a copy of an instance with the named fields overridden. The
// result has the same dynamic type as target.
func Replace(target any, changes map[string]any) (any, error) {
	r, ok := target.(replacer)
	if !ok || r.Descriptor() == nil {
		return nil, mismatch("plain data instance", target)
	}

	return r.replaceAny(changes)
}

// Equal compares two instances of possibly different augmented types.
// Instances of different types are never equal.
func Equal(a, b any) bool {
	ao, aok := a.(object)
	bo, bok := b.(object)

	if !aok || !bok {
		return false
	}

	da, db := ao.Descriptor(), bo.Descriptor()
	if da == nil || da != db {
		return false
	}

	if !da.config.Eq {
		return a == b
	}

	return da.equalValues(ao.plainValue(), bo.plainValue())
}

// Compare orders two instances of possibly different augmented types.
// Different types are a ConfigError rather than an arbitrary answer.
func Compare(a, b any) (int, error) {
	ao, ok := a.(object)
	if !ok {
		return 0, mismatch("plain data instance", a)
	}

	bo, ok := b.(object)
	if !ok {
		return 0, mismatch("plain data instance", b)
	}

	if ao.Descriptor() == nil {
		return 0, mismatch("plain data instance", a)
	}

	if bo.Descriptor() == nil {
		return 0, mismatch("plain data instance", b)
	}

	if err := sameType(ao.Descriptor(), bo.Descriptor()); err != nil {
		return 0, err
	}

	return ao.Descriptor().compareValues(ao.plainValue(), bo.plainValue())
}

// Hash hashes an instance of any augmented type.
func Hash(target any) (uint64, error) {
	h, ok := target.(interface {
		object
		Hash() (uint64, error)
	})
	if !ok || h.Descriptor() == nil {
		return 0, mismatch("plain data instance", target)
	}

	return h.Hash()
}

func mismatch(want string, got any) error {
	return &TypeMismatchError{Want: want, Got: fmt.Sprintf("%T", got)}
}
