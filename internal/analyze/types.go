package analyze

import (
	"go/types"
	"reflect"

	"plaindata/internal/common"
)

// TypeID uniquely identifies a type by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "plaindata/store"
	Name    string // e.g., "Order"
}

// String returns a human-readable representation of the TypeID.
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// TypeKind represents the kind of a type.
type TypeKind int

const (
	TypeKindUnknown   TypeKind = iota
	TypeKindBasic              // int, string, bool, etc.
	TypeKindStruct             // struct type
	TypeKindPointer            // pointer to another type
	TypeKindSlice              // slice of another type
	TypeKindArray              // array of another type
	TypeKindMap                // map type
	TypeKindInterface          // interface type
	TypeKindNamed              // named type over a non-struct underlying type
	TypeKindExternal           // named type from a package outside the analyzed set
)

// String returns a human-readable representation of the TypeKind.
func (k TypeKind) String() string {
	switch k {
	case TypeKindBasic:
		return "basic"
	case TypeKindStruct:
		return "struct"
	case TypeKindPointer:
		return "pointer"
	case TypeKindSlice:
		return "slice"
	case TypeKindArray:
		return "array"
	case TypeKindMap:
		return "map"
	case TypeKindInterface:
		return "interface"
	case TypeKindNamed:
		return "named"
	case TypeKindExternal:
		return "external"
	default:
		return common.UnknownStr
	}
}

// TypeInfo describes a Go type in the type graph.
type TypeInfo struct {
	ID         TypeID       // Unique identifier (empty for unnamed types like *T or []T)
	Kind       TypeKind     // Kind of type
	Underlying *TypeInfo    // For named non-struct types, the underlying type
	ElemType   *TypeInfo    // For pointers, slices, arrays and maps, the element type
	Fields     []FieldInfo  // For structs, the plain data fields in declaration order
	Methods    []MethodInfo // For named types, the method set of the pointer type
	GoType     types.Type   // The original go/types.Type
}

// IsNamed returns true if this type has a name (TypeID is set).
func (t *TypeInfo) IsNamed() bool {
	return t.ID.Name != ""
}

// Method returns the named method, if the type has one.
func (t *TypeInfo) Method(name string) (MethodInfo, bool) {
	for _, m := range t.Methods {
		if m.Name == name {
			return m, true
		}
	}

	return MethodInfo{}, false
}

// FieldInfo describes a plain data field.
type FieldInfo struct {
	Name     string            // Go field name
	Exported bool              // Whether the field is exported
	Type     *TypeInfo         // Field type
	Tag      reflect.StructTag // Raw struct tag
	Embedded bool              // Whether the field is itself embedded (and kept opaque)
	Promoted bool              // Whether the field comes from a flattened embedded struct
	Index    []int             // Field index path from the outer struct
}

// Position returns the field's zero-based position among the plain data fields.
func (t *TypeInfo) Position(name string) int {
	for i := range t.Fields {
		if t.Fields[i].Name == name {
			return i
		}
	}

	return -1
}

// FieldNames returns the plain data field names in declaration order.
func (t *TypeInfo) FieldNames() []string {
	names := make([]string, len(t.Fields))
	for i := range t.Fields {
		names[i] = t.Fields[i].Name
	}

	return names
}

// MethodInfo describes a method in the method set of a named type.
type MethodInfo struct {
	Name      string // Method name
	File      string // Base name of the file declaring the method
	Promoted  bool   // Whether the method is promoted from an embedded field
	Signature *types.Signature
}

// TypeGraph holds all analyzed types from loaded packages.
type TypeGraph struct {
	// Types maps TypeID to TypeInfo for all named types.
	Types map[TypeID]*TypeInfo
	// Packages maps package paths to their package info.
	Packages map[string]*PackageInfo
}

// NewTypeGraph creates a new empty TypeGraph.
func NewTypeGraph() *TypeGraph {
	return &TypeGraph{
		Types:    make(map[TypeID]*TypeInfo),
		Packages: make(map[string]*PackageInfo),
	}
}

// GetType returns the TypeInfo for a given TypeID, or nil if not found.
func (g *TypeGraph) GetType(id TypeID) *TypeInfo {
	return g.Types[id]
}

// PackageInfo holds information about a loaded package.
type PackageInfo struct {
	Path  string            // Import path
	Name  string            // Package name
	Dir   string            // Directory holding the package's files
	Types []TypeID          // Named types defined in this package
	Funcs map[string]string // Package-level function names to the base name of their file
	Pkg   *types.Package
}
