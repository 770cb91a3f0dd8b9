package plain

import (
	"fmt"
	"hash/maphash"
	"reflect"

	"plaindata/options"
)

// Instance is a constructed value of an augmented type. It owns a private
// copy of its fields; the only way to populate them is construction (New,
// Make, Replace). When the type is frozen, Set and Delete always fail, so the
// instance can be shared between goroutines without locking as long as the
// data its slices, maps and pointers refer to is not changed. Freezing is
// shallow. Non-frozen instances provide no synchronization of their own.
type Instance[T any] struct {
	typ   *Type[T]
	value T
}

// Type returns the augmented type the instance belongs to.
func (i *Instance[T]) Type() *Type[T] { return i.typ }

// Descriptor returns the descriptor of the instance's augmented type.
func (i *Instance[T]) Descriptor() *Descriptor {
	if i == nil || i.typ == nil {
		return nil
	}

	return i.typ.desc
}

// Fields returns the declared field names in order.
func (i *Instance[T]) Fields() []string { return i.typ.desc.Fields() }

// Frozen reports whether the instance rejects mutation.
func (i *Instance[T]) Frozen() bool { return i.typ.desc.config.Frozen }

// Value returns a shallow copy of the instance's fields. Slices, maps and
// pointers in the copy share their targets with the instance.
func (i *Instance[T]) Value() T { return i.value }

func (i *Instance[T]) plainValue() reflect.Value {
	return reflect.ValueOf(&i.value).Elem()
}

// Get returns the current value of a declared field.
func (i *Instance[T]) Get(name string) (any, error) {
	f, err := i.typ.desc.lookup(name)
	if err != nil {
		return nil, err
	}

	return i.typ.desc.value(i.plainValue(), f).Interface(), nil
}

// Set assigns a declared field. Frozen instances reject every assignment with
// a FrozenAttributeError and stay unchanged.
func (i *Instance[T]) Set(name string, v any) error {
	d := i.typ.desc
	if d.config.Frozen {
		return &FrozenAttributeError{Field: name, Type: d.name, Op: "assign"}
	}

	f, err := d.lookup(name)
	if err != nil {
		return err
	}

	rv, err := convertValue(f, v)
	if err != nil {
		return err
	}

	d.value(i.plainValue(), f).Set(rv)

	return nil
}

// Delete resets a declared field to its zero value. Frozen instances reject
// it with a FrozenAttributeError.
func (i *Instance[T]) Delete(name string) error {
	d := i.typ.desc
	if d.config.Frozen {
		return &FrozenAttributeError{Field: name, Type: d.name, Op: "delete"}
	}

	f, err := d.lookup(name)
	if err != nil {
		return err
	}

	d.value(i.plainValue(), f).SetZero()

	return nil
}

// Equal reports whether o is an instance of the same augmented type whose
// fields all equal i's. Without eq, instances are only equal to themselves.
func (i *Instance[T]) Equal(o *Instance[T]) bool {
	if i == nil || o == nil {
		return i == o
	}

	if i.typ.desc != o.typ.desc {
		return false
	}

	if !i.typ.desc.config.Eq {
		return i == o
	}

	return i.typ.desc.equalValues(i.plainValue(), o.plainValue())
}

// Compare orders i against o. Comparing instances of different augmented
// types, or of a type without order, is a ConfigError.
func (i *Instance[T]) Compare(o *Instance[T]) (int, error) {
	if o == nil {
		return 0, &ConfigError{Type: i.typ.desc.name, Reason: "cannot order against nil"}
	}

	if err := sameType(i.typ.desc, o.typ.desc); err != nil {
		return 0, err
	}

	return i.typ.desc.compareValues(i.plainValue(), o.plainValue())
}

// Less reports whether i orders before o.
func (i *Instance[T]) Less(o *Instance[T]) (bool, error) {
	c, err := i.Compare(o)

	return c < 0, err
}

// Hash returns the derived hash. Mutable types with eq have hashing
// disabled and return an UnhashableTypeError; types without eq hash by
// identity.
func (i *Instance[T]) Hash() (uint64, error) {
	d := i.typ.desc

	switch d.config.HashMode() {
	case options.HashDerived:
		return d.hashValues(i.plainValue())
	case options.HashDisabled:
		return 0, d.hashDisabled()
	default:
		return hashComparable(i), nil
	}
}

// String renders the instance as TypeName(field=value, ...).
func (i *Instance[T]) String() string {
	if i == nil {
		return "nil"
	}

	if !i.typ.desc.config.Repr {
		return fmt.Sprintf("%v", i.value)
	}

	return i.typ.desc.reprValue(i.plainValue())
}

// GoString makes %#v and nested representations use the derived form.
func (i *Instance[T]) GoString() string {
	return i.String()
}

// Replace builds a new instance with the named fields overridden. Unknown
// names fail with FieldNameError before anything is constructed; i is never
// modified.
func (i *Instance[T]) Replace(changes map[string]any) (*Instance[T], error) {
	next, err := i.typ.override(i.value, changes)
	if err != nil {
		return nil, err
	}

	return i.typ.New(next)
}

func (i *Instance[T]) replaceAny(changes map[string]any) (any, error) {
	return i.Replace(changes)
}

func sameType(a, b *Descriptor) error {
	if a != b {
		return &ConfigError{Type: a.name, Reason: "cannot order against " + b.name + ": different plain data types"}
	}

	return nil
}

func hashComparable(v any) uint64 {
	return maphash.Comparable(seed, v)
}
