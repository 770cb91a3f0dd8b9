package plan

import (
	"fmt"
	"go/types"

	"plaindata/primitive"
)

var (
	boolType   = types.Typ[types.Bool]
	intType    = types.Typ[types.Int]
	uint64Type = types.Typ[types.Uint64]
	errorType  = types.Universe.Lookup("error").Type()
)

// hasMethod reports whether the value method set of t has a method called
// name with exactly the given parameter and result types. Interfaces are
// handled dynamically and never match.
func hasMethod(t types.Type, name string, params []types.Type, results ...types.Type) bool {
	if types.IsInterface(t) {
		return false
	}

	sel := types.NewMethodSet(t).Lookup(nil, name)
	if sel == nil {
		return false
	}

	fn, ok := sel.Obj().(*types.Func)
	if !ok {
		return false
	}

	sig := fn.Signature()

	return tupleIs(sig.Params(), params) && tupleIs(sig.Results(), results) && !sig.Variadic()
}

func tupleIs(tuple *types.Tuple, want []types.Type) bool {
	if tuple.Len() != len(want) {
		return false
	}

	for i, w := range want {
		if !types.Identical(tuple.At(i).Type(), w) {
			return false
		}
	}

	return true
}

func isPointer(t types.Type) bool {
	_, ok := t.Underlying().(*types.Pointer)
	return ok
}

// nillable reports whether nil is a valid value of t.
func nillable(t types.Type) bool {
	switch t.Underlying().(type) {
	case *types.Pointer, *types.Interface, *types.Map, *types.Slice, *types.Signature, *types.Chan:
		return true
	default:
		return false
	}
}

// strictlyComparable reports whether == on t can never panic.
func strictlyComparable(t types.Type) bool {
	return types.Comparable(t) && !holdsInterface(t, map[types.Type]bool{})
}

func holdsInterface(t types.Type, seen map[types.Type]bool) bool {
	if seen[t] {
		return false
	}

	seen[t] = true

	switch u := t.Underlying().(type) {
	case *types.Interface:
		return true
	case *types.Array:
		return holdsInterface(u.Elem(), seen)
	case *types.Struct:
		for i := range u.NumFields() {
			if holdsInterface(u.Field(i).Type(), seen) {
				return true
			}
		}
	}

	return false
}

// selectEqual picks the equality a field's type brings with it: its Equal
// method, the primitive template, == for comparable values, deep equality
// otherwise. Pointer types with an Equal method go through the runtime
// helper, which handles nil receivers.
func selectEqual(t types.Type, kind primitive.KindEnum) EqualStrategy {
	if hasMethod(t, "Equal", []types.Type{t}, boolType) {
		if isPointer(t) {
			return EqualDeep
		}

		return EqualMethod
	}

	if _, ok := primitive.Lookup(primitive.OpEqual, kind); ok {
		return EqualPrimitive
	}

	if strictlyComparable(t) {
		return EqualOperator
	}

	return EqualDeep
}

// selectOrder picks the ordering of a field type. Generated code orders
// primitive kinds and value types with a Compare(T) int method.
func selectOrder(t types.Type, kind primitive.KindEnum) OrderStrategy {
	if !isPointer(t) && hasMethod(t, "Compare", []types.Type{t}, intType) {
		return OrderMethod
	}

	if _, ok := primitive.Lookup(primitive.OpCompare, kind); ok {
		return OrderPrimitive
	}

	return OrderNone
}

// selectHash picks how a field feeds the combined hash, and explains why
// when it cannot.
func selectHash(t types.Type, kind primitive.KindEnum) (HashStrategy, string) {
	switch {
	case hasMethod(t, "Hash", nil, uint64Type, errorType):
		if isPointer(t) {
			return HashDynamic, ""
		}

		return HashMethodErr, ""

	case hasMethod(t, "Hash", nil, uint64Type):
		if isPointer(t) {
			return HashDynamic, ""
		}

		return HashMethod, ""

	case kind == primitive.KindTime:
		return HashPrimitive, ""

	case hasMethod(t, "Equal", []types.Type{t}, boolType):
		return HashNone, fmt.Sprintf("%s defines Equal but no Hash", t)

	case types.IsInterface(t):
		return HashDynamic, ""
	}

	if _, ok := primitive.Lookup(primitive.OpHash, kind); ok {
		return HashPrimitive, ""
	}

	if strictlyComparable(t) {
		return HashComparable, ""
	}

	if types.Comparable(t) {
		return HashDynamic, ""
	}

	return HashNone, fmt.Sprintf("%s values are not comparable", t)
}
