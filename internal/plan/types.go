package plan

import (
	"go/types"

	"plaindata/internal/analyze"
	"plaindata/internal/common"
	"plaindata/internal/diagnostic"
	"plaindata/options"
	"plaindata/primitive"
)

// Plan is the final output of the planning pipeline.
// It contains everything needed for code generation.
type Plan struct {
	// Packages lists one entry per manifest package, in manifest order.
	Packages []PackagePlan
	// TypeGraph holds all analyzed types and packages to allow looking up package names.
	TypeGraph *analyze.TypeGraph
	// Diagnostics contains all warnings and errors from planning.
	Diagnostics diagnostic.Diagnostics
}

// PackagePlan groups the planned types of one package.
type PackagePlan struct {
	// Path is the package import path.
	Path string
	// Name is the package name used in the generated file's package clause.
	Name string
	// Dir is the directory the generated file goes to.
	Dir string
	// Output is the generated file name.
	Output string
	// Types lists the planned types in manifest order.
	Types []TypePlan
	// Pkg is the type-checked package, used to qualify type names.
	Pkg *types.Package
}

// TypePlan describes the methods to generate for one struct type.
type TypePlan struct {
	// Name is the type name.
	Name string
	// Config is the resolved flag configuration.
	Config options.Config
	// HashMode is the hashing policy derived from Config.
	HashMode options.HashMode
	// Fields lists the plain data fields in declaration order.
	Fields []FieldPlan
	// Validates is true if the type has a Validate() error method.
	Validates bool
	// Type is the analyzed type.
	Type *analyze.TypeInfo
}

// Constructor returns the name of the generated constructor of a frozen type.
func (t *TypePlan) Constructor() string {
	return "New" + t.Name
}

// FieldPlan describes how one field takes part in the derived operations.
type FieldPlan struct {
	// Name is the Go field name.
	Name string
	// Position is the zero-based declaration position.
	Position int
	// Exported is true for exported fields.
	Exported bool
	// GoType is the field's type.
	GoType types.Type
	// Kind is the primitive kind of the field's underlying type, if any.
	Kind primitive.KindEnum
	// Nillable is true if nil is a valid value of the field's type.
	Nillable bool
	// Equal is the equality strategy.
	Equal EqualStrategy
	// Order is the ordering strategy; OrderNone unless the type has order.
	Order OrderStrategy
	// Hash is the hashing strategy.
	Hash HashStrategy
	// Unhashable explains why the field cannot be hashed when Hash is HashNone.
	Unhashable string
	// Getter is the accessor name for unexported fields.
	Getter string
	// With is the name of the copy-with-one-field method.
	With string
}

// EqualStrategy describes how a field is compared for equality.
type EqualStrategy int

const (
	// EqualPrimitive - per-kind template from package primitive.
	EqualPrimitive EqualStrategy = iota
	// EqualOperator - the == operator on a comparable type.
	EqualOperator
	// EqualMethod - the field type's Equal(T) bool method.
	EqualMethod
	// EqualDeep - plain.EqualValues at run time.
	EqualDeep
)

// String returns a human-readable strategy name.
func (s EqualStrategy) String() string {
	switch s {
	case EqualPrimitive:
		return "primitive"
	case EqualOperator:
		return "operator"
	case EqualMethod:
		return "method"
	case EqualDeep:
		return "deep"
	default:
		return common.UnknownStr
	}
}

// OrderStrategy describes how a field is ordered.
type OrderStrategy int

const (
	// OrderNone - the field has no ordering.
	OrderNone OrderStrategy = iota
	// OrderPrimitive - per-kind template from package primitive.
	OrderPrimitive
	// OrderMethod - the field type's Compare(T) int method.
	OrderMethod
)

// String returns a human-readable strategy name.
func (s OrderStrategy) String() string {
	switch s {
	case OrderNone:
		return "none"
	case OrderPrimitive:
		return "primitive"
	case OrderMethod:
		return "method"
	default:
		return common.UnknownStr
	}
}

// HashStrategy describes how a field feeds the combined hash.
type HashStrategy int

const (
	// HashNone - the field cannot be hashed.
	HashNone HashStrategy = iota
	// HashPrimitive - per-kind template from package primitive.
	HashPrimitive
	// HashComparable - maphash.WriteComparable on a strictly comparable type.
	HashComparable
	// HashMethod - the field type's Hash() uint64 method.
	HashMethod
	// HashMethodErr - the field type's Hash() (uint64, error) method.
	HashMethodErr
	// HashDynamic - plain.WriteHash at run time.
	HashDynamic
)

// String returns a human-readable strategy name.
func (s HashStrategy) String() string {
	switch s {
	case HashNone:
		return "none"
	case HashPrimitive:
		return "primitive"
	case HashComparable:
		return "comparable"
	case HashMethod:
		return "method"
	case HashMethodErr:
		return "method-err"
	case HashDynamic:
		return "dynamic"
	default:
		return common.UnknownStr
	}
}
