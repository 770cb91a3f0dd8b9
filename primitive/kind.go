package primitive

import (
	"go/types"
	"math"
	"reflect"
	"time"
)

//go:generate go tool stringer -type=KindEnum -output=kind_string.go

type KindEnum int

const (
	_ KindEnum = iota // skip zero value, use it as a default (invalid) value for KindEnum

	KindInt
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindUint
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindFloat32
	KindFloat64
	KindBool
	KindString
	KindTime
	KindDuration
	KindPrimitiveEnum // named type over any integer, float, boolean or string

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

func (k KindEnum) IsNumber() bool {
	switch k {
	default:
		return false
	case KindInt, KindInt8, KindInt16, KindInt32, KindInt64,
		KindUint, KindUint8, KindUint16, KindUint32, KindUint64,
		KindFloat32, KindFloat64:
		return true
	}
}

func (k KindEnum) IsInteger() bool {
	switch k {
	default:
		return false
	case KindInt, KindInt8, KindInt16, KindInt32, KindInt64,
		KindUint, KindUint8, KindUint16, KindUint32, KindUint64:
		return true
	}
}

func (k KindEnum) IsFloat() bool {
	switch k {
	default:
		return false
	case KindFloat32, KindFloat64:
		return true
	}
}

func (k KindEnum) IsSigned() bool {
	switch k {
	default:
		return false
	case KindInt, KindInt8, KindInt16, KindInt32, KindInt64:
		return true
	}
}

func (k KindEnum) IsUnsigned() bool {
	switch k {
	default:
		return false
	case KindUint, KindUint8, KindUint16, KindUint32, KindUint64:
		return true
	}
}

// IsOrdered reports whether values of the kind satisfy cmp.Ordered.
func (k KindEnum) IsOrdered() bool {
	return k.IsNumber() || k == KindString || k == KindDuration
}

func (k KindEnum) Bits() int {
	switch k {
	default:
		panic("only numeric kinds has meaningful bits amount, but requested for: " + k.String())
	case KindInt, KindUint:
		power := 0
		for n := uint(math.MaxUint); n > 0; n >>= 1 {
			power++
		}
		return power
	case KindInt8, KindUint8:
		return 8
	case KindInt16, KindUint16:
		return 16
	case KindInt32, KindUint32:
		return 32
	case KindInt64, KindUint64, KindDuration:
		return 64
	case KindFloat32:
		return 32
	case KindFloat64:
		return 64
	}
}

var reflectKinds = map[reflect.Kind]KindEnum{
	reflect.Int:     KindInt,
	reflect.Int8:    KindInt8,
	reflect.Int16:   KindInt16,
	reflect.Int32:   KindInt32,
	reflect.Int64:   KindInt64,
	reflect.Uint:    KindUint,
	reflect.Uint8:   KindUint8,
	reflect.Uint16:  KindUint16,
	reflect.Uint32:  KindUint32,
	reflect.Uint64:  KindUint64,
	reflect.Float32: KindFloat32,
	reflect.Float64: KindFloat64,
	reflect.Bool:    KindBool,
	reflect.String:  KindString,
}

func FromReflectType(rtype reflect.Type) KindEnum {
	if rtype == nil {
		return 0
	}

	// check if true primitive type
	switch rtype {
	case reflect.TypeOf(time.Time{}):
		return KindTime
	case reflect.TypeOf(time.Duration(0)):
		return KindDuration
	}

	kind, ok := reflectKinds[rtype.Kind()]
	if !ok {
		return 0
	}

	// builtin basic types have no package path
	if rtype.PkgPath() == "" {
		return kind
	}

	return KindPrimitiveEnum
}

// UnderlyingReflectKind resolves named basic types (including KindPrimitiveEnum)
// to the kind of their underlying builtin type.
func UnderlyingReflectKind(rtype reflect.Type) KindEnum {
	if rtype == nil {
		return 0
	}

	if k := FromReflectType(rtype); k != KindPrimitiveEnum {
		return k
	}

	return reflectKinds[rtype.Kind()]
}

var basicKinds = map[types.BasicKind]KindEnum{
	types.Int:     KindInt,
	types.Int8:    KindInt8,
	types.Int16:   KindInt16,
	types.Int32:   KindInt32,
	types.Int64:   KindInt64,
	types.Uint:    KindUint,
	types.Uint8:   KindUint8,
	types.Uint16:  KindUint16,
	types.Uint32:  KindUint32,
	types.Uint64:  KindUint64,
	types.Float32: KindFloat32,
	types.Float64: KindFloat64,
	types.Bool:    KindBool,
	types.String:  KindString,
}

// FromGoType classifies a go/types type the same way FromReflectType classifies reflect types.
func FromGoType(t types.Type) KindEnum {
	if t == nil {
		return 0
	}

	t = types.Unalias(t)

	if named, ok := t.(*types.Named); ok {
		obj := named.Obj()
		if obj.Pkg() != nil && obj.Pkg().Path() == "time" {
			switch obj.Name() {
			case "Time":
				return KindTime
			case "Duration":
				return KindDuration
			}
		}

		if basic, ok := named.Underlying().(*types.Basic); ok {
			if _, ok := basicKinds[basic.Kind()]; ok {
				return KindPrimitiveEnum
			}
		}

		return 0
	}

	if basic, ok := t.(*types.Basic); ok {
		return basicKinds[basic.Kind()]
	}

	return 0
}

// UnderlyingGoKind resolves named basic go/types types to the kind of their underlying type.
func UnderlyingGoKind(t types.Type) KindEnum {
	k := FromGoType(t)
	if k != KindPrimitiveEnum {
		return k
	}

	if basic, ok := t.Underlying().(*types.Basic); ok {
		return basicKinds[basic.Kind()]
	}

	return 0
}
