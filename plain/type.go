package plain

import (
	"fmt"
	"reflect"

	"plaindata/options"
)

// Option adjusts augmentation beyond the five configuration flags.
type Option func(*augmentOptions)

type augmentOptions struct {
	name       string
	invariants []string
}

// WithName overrides the type name used in representations and errors.
func WithName(name string) Option {
	return func(o *augmentOptions) { o.name = name }
}

// WithInvariant adds a boolean expression over the struct's exported fields
// that every constructed value must satisfy, e.g. "Min <= Max".
func WithInvariant(src string) Option {
	return func(o *augmentOptions) { o.invariants = append(o.invariants, src) }
}

// Type is an augmented plain data type: T plus the capabilities derived from
// its fields and configuration.
type Type[T any] struct {
	desc *Descriptor
}

// Augment derives the capabilities selected by cfg for the struct type T.
// All validation happens here, once; the returned Type is immutable.
func Augment[T any](cfg options.Config, opts ...Option) (*Type[T], error) {
	d, err := augment(reflect.TypeFor[T](), cfg, opts...)
	if err != nil {
		return nil, err
	}

	return &Type[T]{desc: d}, nil
}

// MustAugment is like Augment but panics on error. It is meant for
// package-level variable initialization.
func MustAugment[T any](cfg options.Config, opts ...Option) *Type[T] {
	t, err := Augment[T](cfg, opts...)
	if err != nil {
		panic(err)
	}

	return t
}

func augment(rt reflect.Type, cfg options.Config, opts ...Option) (*Descriptor, error) {
	var o augmentOptions
	for _, opt := range opts {
		opt(&o)
	}

	name := o.name
	if name == "" {
		name = typeName(rt)
	}

	if err := cfg.Validate(); err != nil {
		return nil, &ConfigError{Type: name, Reason: err.Error(), Err: err}
	}

	fields, err := discoverFields(rt)
	if err != nil {
		return nil, err
	}

	if err := checkExistingMethods(rt, name, cfg); err != nil {
		return nil, err
	}

	d := &Descriptor{
		name:   name,
		rtype:  rt,
		config: cfg,
		fields: fields,
		byName: make(map[string]int, len(fields)),
		equal:  make([]equalFunc, len(fields)),
		hash:   make([]hashFunc, len(fields)),
	}

	for i, f := range fields {
		d.byName[f.Name] = i
		d.equal[i] = equalFor(f.Type)
		d.hash[i] = hashFor(f.Type)
	}

	if cfg.Order {
		d.order = make([]compareFunc, len(fields))

		for i, f := range fields {
			c, ok := compareFor(f.Type)
			if !ok {
				return nil, &ConfigError{
					Type:   name,
					Reason: fmt.Sprintf("field %s of type %s has no ordering", f.Name, f.Type),
				}
			}

			d.order[i] = c
		}
	}

	for _, src := range o.invariants {
		inv, err := compileInvariant(src, rt)
		if err != nil {
			return nil, &ConfigError{Type: name, Reason: err.Error(), Err: err}
		}

		d.invariants = append(d.invariants, inv)
	}

	return d, nil
}

// synthesized lists the method names a configuration derives.
func synthesized(cfg options.Config) []string {
	var names []string
	if cfg.Eq {
		names = append(names, "Equal")
	}

	if cfg.Order {
		names = append(names, "Compare")
	}

	if cfg.Eq || cfg.UnsafeHash {
		names = append(names, "Hash")
	}

	if cfg.Repr {
		names = append(names, "String")
	}

	return names
}

// checkExistingMethods refuses to augment a type that already declares one of
// the methods the configuration derives, which is also what stops a type
// from being augmented twice.
func checkExistingMethods(rt reflect.Type, name string, cfg options.Config) error {
	ptr := reflect.PointerTo(rt)
	for _, m := range synthesized(cfg) {
		if _, ok := ptr.MethodByName(m); ok {
			return &ConfigError{Type: name, Reason: fmt.Sprintf("can't generate %s: method already exists", m)}
		}
	}

	return nil
}

// Descriptor returns the augmented type's descriptor.
func (t *Type[T]) Descriptor() *Descriptor {
	if t == nil {
		return nil
	}

	return t.desc
}

// Name returns the type name used in representations.
func (t *Type[T]) Name() string { return t.desc.name }

// Config returns the configuration the type was augmented with.
func (t *Type[T]) Config() options.Config { return t.desc.config }

// Fields returns the declared field names in order.
func (t *Type[T]) Fields() []string { return t.desc.Fields() }

// New constructs an instance holding a copy of v. Declared invariants and
// the type's Validate method run before the instance is returned.
func (t *Type[T]) New(v T) (*Instance[T], error) {
	inst := &Instance[T]{typ: t, value: v}
	if err := t.desc.validate(reflect.ValueOf(&inst.value)); err != nil {
		return nil, err
	}

	return inst, nil
}

// MustNew is like New but panics on error.
func (t *Type[T]) MustNew(v T) *Instance[T] {
	inst, err := t.New(v)
	if err != nil {
		panic(err)
	}

	return inst
}

// Make constructs an instance from named field values. Fields not named
// keep their zero value.
func (t *Type[T]) Make(values map[string]any) (*Instance[T], error) {
	var v T
	if err := t.assign(reflect.ValueOf(&v).Elem(), values); err != nil {
		return nil, err
	}

	return t.New(v)
}

// assign checks every name, then every value, and only then writes, so a
// failed call leaves dst untouched. Unknown names win over wrong values.
func (t *Type[T]) assign(dst reflect.Value, values map[string]any) error {
	keys := SortedKeys(values)
	resolved := make([]reflect.Value, len(keys))
	fields := make([]Field, len(keys))

	for i, k := range keys {
		f, err := t.desc.lookup(k)
		if err != nil {
			return err
		}

		fields[i] = f
	}

	for i, k := range keys {
		rv, err := convertValue(fields[i], values[k])
		if err != nil {
			return err
		}

		resolved[i] = rv
	}

	for i, f := range fields {
		dst.FieldByIndex(f.index).Set(resolved[i])
	}

	return nil
}

// convertValue checks that v can be stored in field f.
func convertValue(f Field, v any) (reflect.Value, error) {
	if v == nil {
		if !nillable(f.Type.Kind()) {
			return reflect.Value{}, &TypeMismatchError{Field: f.Name, Want: f.Type.String(), Got: "nil"}
		}

		return reflect.Zero(f.Type), nil
	}

	rv := reflect.ValueOf(v)
	if !rv.Type().AssignableTo(f.Type) {
		return reflect.Value{}, &TypeMismatchError{Field: f.Name, Want: f.Type.String(), Got: rv.Type().String()}
	}

	return rv, nil
}

// Equal reports whether a and b hold equal values in every declared field.
// Without eq the host default applies: == for comparable types, false otherwise.
func (t *Type[T]) Equal(a, b T) bool {
	av, bv := reflect.ValueOf(&a).Elem(), reflect.ValueOf(&b).Elem()
	if !t.desc.config.Eq {
		return av.Comparable() && bv.Comparable() && av.Equal(bv)
	}

	return t.desc.equalValues(av, bv)
}

// Compare orders a and b lexicographically by declared field order.
func (t *Type[T]) Compare(a, b T) (int, error) {
	return t.desc.compareValues(reflect.ValueOf(&a).Elem(), reflect.ValueOf(&b).Elem())
}

// Less reports whether a orders before b.
func (t *Type[T]) Less(a, b T) (bool, error) {
	c, err := t.Compare(a, b)

	return c < 0, err
}

// Hash hashes v according to the configuration's hash mode.
func (t *Type[T]) Hash(v T) (uint64, error) {
	rv := reflect.ValueOf(&v).Elem()

	switch t.desc.config.HashMode() {
	case options.HashDerived:
		return t.desc.hashValues(rv)
	case options.HashDisabled:
		return 0, t.desc.hashDisabled()
	default:
		if !rv.Comparable() {
			return 0, &UnhashableTypeError{Type: t.desc.name, Reason: "value is not comparable"}
		}

		return hashComparable(rv.Interface()), nil
	}
}

// Repr renders v as TypeName(field=value, ...). Without repr the value is
// formatted with %v.
func (t *Type[T]) Repr(v T) string {
	if !t.desc.config.Repr {
		return fmt.Sprintf("%v", v)
	}

	return t.desc.reprValue(reflect.ValueOf(&v).Elem())
}

// Replace returns a copy of v with the named fields overridden. The copy goes
// through the same checks as New; v itself is never modified.
func (t *Type[T]) Replace(v T, changes map[string]any) (T, error) {
	next, err := t.override(v, changes)
	if err != nil {
		return next, err
	}

	if err := t.desc.validate(reflect.ValueOf(&next)); err != nil {
		var zero T
		return zero, err
	}

	return next, nil
}

// override copies v and applies changes to the copy.
func (t *Type[T]) override(v T, changes map[string]any) (T, error) {
	next := v
	if err := t.assign(reflect.ValueOf(&next).Elem(), changes); err != nil {
		var zero T
		return zero, err
	}

	return next, nil
}

func (d *Descriptor) hashDisabled() error {
	return &UnhashableTypeError{Type: d.name, Reason: "mutable type with eq has hashing disabled"}
}
