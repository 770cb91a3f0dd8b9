package plain

import (
	"fmt"
	"hash/maphash"
	"reflect"
	"slices"
)

// seed is shared by every derived hash in the process.
var seed = maphash.MakeSeed()

// Seed returns the process-wide seed used by derived hashes. Generated Hash
// methods seed their maphash.Hash with it, so a value hashes the same way
// for the whole life of the process.
func Seed() maphash.Seed {
	return seed
}

// CompareBool orders false before true.
func CompareBool[B ~bool](a, b B) int {
	switch {
	case a == b:
		return 0
	case !bool(a):
		return -1
	default:
		return 1
	}
}

// EqualValues compares two field values the way derived equality does: Equal
// method first, then ==, then deep equality.
func EqualValues(a, b any) bool {
	return equalDynamic(reflect.ValueOf(a), reflect.ValueOf(b))
}

// WriteHash feeds one field value into h the way derived hashing does.
func WriteHash(h *maphash.Hash, v any) error {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return h.WriteByte(0)
	}

	return hashFor(rv.Type())(h, rv)
}

// ReprValue renders one field value the way derived representations do.
func ReprValue(v any) string {
	return reprOf(reflect.ValueOf(v))
}

// UnknownField builds the FieldNameError for name, suggesting the closest of fields.
func UnknownField(typeName, name string, fields []string) error {
	d := &Descriptor{name: typeName}
	for i, f := range fields {
		d.fields = append(d.fields, Field{Name: f, Position: i})
	}

	return &FieldNameError{Field: name, Type: typeName, Suggestion: d.suggest(name)}
}

// ValidationFailed builds the InvariantError for a Validate method that
// rejected a freshly built value.
func ValidationFailed(typeName string, err error) error {
	return &InvariantError{Type: typeName, Invariant: "Validate", Err: err}
}

// HashingDisabled builds the UnhashableTypeError of a mutable type with eq.
func HashingDisabled(typeName string) error {
	return (&Descriptor{name: typeName}).hashDisabled()
}

// UnhashableField builds the UnhashableTypeError for a field whose values cannot be hashed.
func UnhashableField(typeName, field, reason string) error {
	return &UnhashableTypeError{Type: typeName, Field: field, Reason: reason}
}

// FieldTypeMismatch builds the TypeMismatchError for a replacement value of the wrong type.
func FieldTypeMismatch(field, want string, got any) error {
	return &TypeMismatchError{Field: field, Want: want, Got: fmt.Sprintf("%T", got)}
}

// CheckFields fails with a FieldNameError for the first key of changes, in
// sorted order, that is not one of fields.
func CheckFields(typeName string, fields []string, changes map[string]any) error {
	for _, k := range SortedKeys(changes) {
		if !slices.Contains(fields, k) {
			return UnknownField(typeName, k, fields)
		}
	}

	return nil
}

// SortedKeys returns the keys of a change set in sorted order, so that
// validation reports the same key no matter how the map iterates.
func SortedKeys(changes map[string]any) []string {
	keys := make([]string, 0, len(changes))
	for k := range changes {
		keys = append(keys, k)
	}

	slices.Sort(keys)

	return keys
}
