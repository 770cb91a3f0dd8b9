package plain

import (
	"hash/maphash"
	"reflect"
	"slices"
	"strings"

	"plaindata/internal/match"
	"plaindata/options"
)

// Field describes one declared field: its name and zero-based position in declaration order.
type Field struct {
	Name     string
	Position int
	Type     reflect.Type

	index []int // path for reflect.Value.FieldByIndex
}

// Descriptor is the augmented type: the shape, its configuration, the ordered
// field list and the operations derived from them. A Descriptor is built once
// by Augment and never changes afterwards; its identity is the identity of the
// augmented type.
type Descriptor struct {
	name   string
	rtype  reflect.Type
	config options.Config
	fields []Field
	byName map[string]int

	equal      []equalFunc
	order      []compareFunc
	hash       []hashFunc
	invariants []invariant
}

// Name returns the type name used in representations and errors.
func (d *Descriptor) Name() string { return d.name }

// GoType returns the reflected struct type.
func (d *Descriptor) GoType() reflect.Type { return d.rtype }

// Config returns the configuration the type was augmented with.
func (d *Descriptor) Config() options.Config { return d.config }

// Fields returns the declared field names in order.
func (d *Descriptor) Fields() []string {
	names := make([]string, len(d.fields))
	for i, f := range d.fields {
		names[i] = f.Name
	}

	return names
}

// FieldDescriptors returns a copy of the ordered field descriptors.
func (d *Descriptor) FieldDescriptors() []Field {
	return slices.Clone(d.fields)
}

// Field looks up a declared field by name.
func (d *Descriptor) Field(name string) (Field, bool) {
	i, ok := d.byName[name]
	if !ok {
		return Field{}, false
	}

	return d.fields[i], true
}

// lookup resolves a field name or returns a FieldNameError with a suggestion.
func (d *Descriptor) lookup(name string) (Field, error) {
	f, ok := d.Field(name)
	if !ok {
		return Field{}, &FieldNameError{Field: name, Type: d.name, Suggestion: d.suggest(name)}
	}

	return f, nil
}

// suggest returns the declared field name nearest to name, if it looks like a typo.
func (d *Descriptor) suggest(name string) string {
	return match.Closest(name, d.Fields())
}

func (d *Descriptor) value(v reflect.Value, f Field) reflect.Value {
	return v.FieldByIndex(f.index)
}

// equalValues compares two struct values field by field in declared order.
func (d *Descriptor) equalValues(a, b reflect.Value) bool {
	for i, f := range d.fields {
		if !d.equal[i](d.value(a, f), d.value(b, f)) {
			return false
		}
	}

	return true
}

// compareValues orders two struct values lexicographically by declared field order.
func (d *Descriptor) compareValues(a, b reflect.Value) (int, error) {
	if !d.config.Order {
		return 0, &ConfigError{Type: d.name, Reason: "ordering is not enabled"}
	}

	for i, f := range d.fields {
		c, err := d.order[i](d.value(a, f), d.value(b, f))
		if err != nil {
			return 0, &ConfigError{Type: d.name, Reason: "field " + f.Name + ": " + err.Error()}
		}

		if c != 0 {
			return c, nil
		}
	}

	return 0, nil
}

// hashValues combines the per-field hashes in declared order.
func (d *Descriptor) hashValues(v reflect.Value) (uint64, error) {
	var h maphash.Hash
	h.SetSeed(seed)

	for i, f := range d.fields {
		if err := d.hash[i](&h, d.value(v, f)); err != nil {
			return 0, &UnhashableTypeError{Type: d.name, Field: f.Name, Reason: err.Error()}
		}
	}

	return h.Sum64(), nil
}

// reprValue renders TypeName(field=value, ...) in declared order.
func (d *Descriptor) reprValue(v reflect.Value) string {
	var sb strings.Builder

	sb.WriteString(d.name)
	sb.WriteByte('(')

	for i, f := range d.fields {
		if i > 0 {
			sb.WriteString(", ")
		}

		sb.WriteString(f.Name)
		sb.WriteByte('=')
		sb.WriteString(reprOf(d.value(v, f)))
	}

	sb.WriteByte(')')

	return sb.String()
}

// discoverFields lists the exported fields of a struct type in declaration
// order. Embedded structs are flattened in place: unexported ones always,
// exported ones when all their fields are exported. Names follow Go's
// promotion rules, so a shallower field shadows a deeper one and ambiguous
// names are left out.
func discoverFields(rt reflect.Type) ([]Field, error) {
	if rt.Kind() != reflect.Struct {
		return nil, &ShapeError{Type: typeName(rt), Reason: "plain data types must be structs, got " + rt.Kind().String()}
	}

	var names []string

	seen := map[string]bool{}
	collectNames(rt, &names, seen)

	fields := make([]Field, 0, len(names))

	for _, name := range names {
		sf, ok := rt.FieldByName(name)
		if !ok || !reachable(rt, sf.Index) {
			continue
		}

		fields = append(fields, Field{
			Name:     name,
			Position: len(fields),
			Type:     sf.Type,
			index:    sf.Index,
		})
	}

	return fields, nil
}

func collectNames(rt reflect.Type, names *[]string, seen map[string]bool) {
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)

		if sf.Anonymous && sf.Type.Kind() == reflect.Struct && (!sf.IsExported() || flattenable(sf.Type)) {
			collectNames(sf.Type, names, seen)
			continue
		}

		if !sf.IsExported() {
			continue
		}

		if !seen[sf.Name] {
			seen[sf.Name] = true
			*names = append(*names, sf.Name)
		}
	}
}

// flattenable reports whether an embedded type contributes its fields
// instead of being a field itself. Structs with hidden state (time.Time and
// the like) stay opaque.
func flattenable(t reflect.Type) bool {
	if t.Kind() != reflect.Struct {
		return false
	}

	for i := 0; i < t.NumField(); i++ {
		if !t.Field(i).IsExported() {
			return false
		}
	}

	return true
}

// reachable reports whether the field at index can be read and written
// through reflection: the leaf must be exported, and every step before it
// either exported or an embedded struct.
func reachable(rt reflect.Type, index []int) bool {
	t := rt
	for n, i := range index {
		sf := t.Field(i)
		if !sf.IsExported() && (n == len(index)-1 || !sf.Anonymous || sf.Type.Kind() != reflect.Struct) {
			return false
		}

		t = sf.Type
	}

	return true
}

func typeName(rt reflect.Type) string {
	if rt.Name() != "" {
		return rt.Name()
	}

	return rt.String()
}
