package plain

import (
	"cmp"
	"fmt"
	"hash/maphash"
	"reflect"
	"strconv"
	"time"

	gocmp "github.com/google/go-cmp/cmp"

	"plaindata/primitive"
)

type (
	equalFunc   func(a, b reflect.Value) bool
	compareFunc func(a, b reflect.Value) (int, error)
	hashFunc    func(h *maphash.Hash, v reflect.Value) error
)

var (
	boolType   = reflect.TypeFor[bool]()
	intType    = reflect.TypeFor[int]()
	uint64Type = reflect.TypeFor[uint64]()
	errorType  = reflect.TypeFor[error]()
	timeType   = reflect.TypeFor[time.Time]()
)

// exportAll lets deep equality look into unexported fields of nested values.
var exportAll = gocmp.Exporter(func(reflect.Type) bool { return true })

// methodWith finds a method named name on t taking t as its only argument
// (besides the receiver) and returning exactly the given result types.
func methodWith(t reflect.Type, name string, withArg bool, outs ...reflect.Type) (reflect.Method, bool) {
	m, ok := t.MethodByName(name)
	if !ok || t.Kind() == reflect.Interface {
		return reflect.Method{}, false
	}

	in := 1
	if withArg {
		in = 2
	}

	if m.Type.NumIn() != in || (withArg && m.Type.In(1) != t) || m.Type.NumOut() != len(outs) {
		return reflect.Method{}, false
	}

	for i, out := range outs {
		if m.Type.Out(i) != out {
			return reflect.Method{}, false
		}
	}

	return m, true
}

func nillable(k reflect.Kind) bool {
	switch k {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return true
	default:
		return false
	}
}

// hasEqualMethod reports whether t defines its own equality.
func hasEqualMethod(t reflect.Type) bool {
	_, ok := methodWith(t, "Equal", true, boolType)
	return ok
}

// equalFor picks the equality a field's type brings with it: its Equal
// method, == for comparable values, deep equality otherwise.
func equalFor(t reflect.Type) equalFunc {
	if m, ok := methodWith(t, "Equal", true, boolType); ok {
		return func(a, b reflect.Value) bool {
			if nillable(t.Kind()) && (a.IsNil() || b.IsNil()) {
				return a.IsNil() && b.IsNil()
			}

			return m.Func.Call([]reflect.Value{a, b})[0].Bool()
		}
	}

	if t.Kind() == reflect.Interface {
		return func(a, b reflect.Value) bool {
			return equalDynamic(a.Elem(), b.Elem())
		}
	}

	if t.Comparable() {
		return func(a, b reflect.Value) bool {
			if a.Comparable() && b.Comparable() {
				return a.Equal(b)
			}

			return gocmp.Equal(a.Interface(), b.Interface(), exportAll)
		}
	}

	return func(a, b reflect.Value) bool {
		return gocmp.Equal(a.Interface(), b.Interface(), exportAll)
	}
}

func equalDynamic(a, b reflect.Value) bool {
	if !a.IsValid() || !b.IsValid() {
		return a.IsValid() == b.IsValid()
	}

	if a.Type() != b.Type() {
		return false
	}

	return equalFor(a.Type())(a, b)
}

// compareFor picks the order a field's type brings with it, or reports that it has none.
func compareFor(t reflect.Type) (compareFunc, bool) {
	if m, ok := methodWith(t, "Compare", true, intType); ok {
		return nilsFirst(t, func(a, b reflect.Value) (int, error) {
			return int(m.Func.Call([]reflect.Value{a, b})[0].Int()), nil
		}), true
	}

	if m, ok := methodWith(t, "Compare", true, intType, errorType); ok {
		return nilsFirst(t, func(a, b reflect.Value) (int, error) {
			out := m.Func.Call([]reflect.Value{a, b})
			if err, _ := out[1].Interface().(error); err != nil {
				return 0, err
			}

			return int(out[0].Int()), nil
		}), true
	}

	kind := primitive.UnderlyingReflectKind(t)

	switch {
	case kind.IsSigned() || kind == primitive.KindDuration:
		return func(a, b reflect.Value) (int, error) { return cmp.Compare(a.Int(), b.Int()), nil }, true
	case kind.IsUnsigned():
		return func(a, b reflect.Value) (int, error) { return cmp.Compare(a.Uint(), b.Uint()), nil }, true
	case kind.IsFloat():
		return func(a, b reflect.Value) (int, error) { return cmp.Compare(a.Float(), b.Float()), nil }, true
	case kind == primitive.KindString:
		return func(a, b reflect.Value) (int, error) { return cmp.Compare(a.String(), b.String()), nil }, true
	case kind == primitive.KindBool:
		return func(a, b reflect.Value) (int, error) { return CompareBool(a.Bool(), b.Bool()), nil }, true
	}

	switch t.Kind() {
	case reflect.Array, reflect.Slice:
		elem, ok := compareFor(t.Elem())
		if !ok {
			return nil, false
		}

		return func(a, b reflect.Value) (int, error) {
			for i := 0; i < a.Len() && i < b.Len(); i++ {
				c, err := elem(a.Index(i), b.Index(i))
				if err != nil || c != 0 {
					return c, err
				}
			}

			return cmp.Compare(a.Len(), b.Len()), nil
		}, true

	case reflect.Pointer:
		elem, ok := compareFor(t.Elem())
		if !ok {
			return nil, false
		}

		return nilsFirst(t, func(a, b reflect.Value) (int, error) {
			return elem(a.Elem(), b.Elem())
		}), true

	case reflect.Interface:
		return compareDynamic, true
	}

	return nil, false
}

// nilsFirst orders nil before any non-nil value for nillable types.
func nilsFirst(t reflect.Type, f compareFunc) compareFunc {
	if !nillable(t.Kind()) {
		return f
	}

	return func(a, b reflect.Value) (int, error) {
		switch {
		case a.IsNil() && b.IsNil():
			return 0, nil
		case a.IsNil():
			return -1, nil
		case b.IsNil():
			return 1, nil
		}

		return f(a, b)
	}
}

func compareDynamic(a, b reflect.Value) (int, error) {
	a, b = a.Elem(), b.Elem()

	switch {
	case !a.IsValid() && !b.IsValid():
		return 0, nil
	case !a.IsValid():
		return -1, nil
	case !b.IsValid():
		return 1, nil
	}

	if a.Type() != b.Type() {
		return 0, fmt.Errorf("cannot order %s against %s", a.Type(), b.Type())
	}

	f, ok := compareFor(a.Type())
	if !ok {
		return 0, fmt.Errorf("%s has no ordering", a.Type())
	}

	return f(a, b)
}

// hashFor picks how a field's value feeds the combined hash. Values that
// cannot be hashed consistently with their equality get a func that fails.
func hashFor(t reflect.Type) hashFunc {
	if m, ok := methodWith(t, "Hash", false, uint64Type, errorType); ok {
		return func(h *maphash.Hash, v reflect.Value) error {
			if nillable(t.Kind()) && v.IsNil() {
				return h.WriteByte(0)
			}

			out := m.Func.Call([]reflect.Value{v})
			if err, _ := out[1].Interface().(error); err != nil {
				return err
			}

			maphash.WriteComparable(h, out[0].Uint())

			return nil
		}
	}

	if m, ok := methodWith(t, "Hash", false, uint64Type); ok {
		return func(h *maphash.Hash, v reflect.Value) error {
			if nillable(t.Kind()) && v.IsNil() {
				return h.WriteByte(0)
			}

			maphash.WriteComparable(h, m.Func.Call([]reflect.Value{v})[0].Uint())

			return nil
		}
	}

	if t == timeType {
		return func(h *maphash.Hash, v reflect.Value) error {
			maphash.WriteComparable(h, v.Interface().(time.Time).UnixNano())
			return nil
		}
	}

	if hasEqualMethod(t) {
		return unhashable(fmt.Sprintf("%s defines Equal but no Hash", t))
	}

	if t.Kind() == reflect.Interface {
		return func(h *maphash.Hash, v reflect.Value) error {
			if v.IsNil() {
				return h.WriteByte(0)
			}

			return hashFor(v.Elem().Type())(h, v.Elem())
		}
	}

	if t.Comparable() {
		return func(h *maphash.Hash, v reflect.Value) error {
			if !v.Comparable() {
				return fmt.Errorf("%s holds a value that is not comparable", t)
			}

			maphash.WriteComparable(h, v.Interface())

			return nil
		}
	}

	return unhashable(fmt.Sprintf("%s values are not comparable", t))
}

func unhashable(reason string) hashFunc {
	return func(*maphash.Hash, reflect.Value) error {
		return fmt.Errorf("%s", reason)
	}
}

// reprOf renders a single field value: GoString when the value has one,
// quoted strings, decimal numbers, nil for nil references, %#v otherwise.
func reprOf(v reflect.Value) string {
	if !v.IsValid() {
		return "nil"
	}

	if nillable(v.Kind()) && v.IsNil() {
		return "nil"
	}

	if v.Kind() == reflect.Interface {
		return reprOf(v.Elem())
	}

	if v.CanInterface() {
		if gs, ok := v.Interface().(fmt.GoStringer); ok {
			return gs.GoString()
		}
	}

	switch v.Kind() {
	case reflect.String:
		return strconv.Quote(v.String())
	case reflect.Bool:
		return strconv.FormatBool(v.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(v.Uint(), 10)
	case reflect.Float32:
		return strconv.FormatFloat(v.Float(), 'g', -1, 32)
	case reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'g', -1, 64)
	}

	if v.CanInterface() {
		return fmt.Sprintf("%#v", v.Interface())
	}

	return v.String()
}
