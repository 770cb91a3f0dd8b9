package analyze

import (
	"go/token"
	"go/types"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadStore(t *testing.T) *TypeGraph {
	t.Helper()

	graph, err := NewAnalyzer().LoadPackages("plaindata/store")
	require.NoError(t, err)

	return graph
}

func fieldNamed(t *testing.T, info *TypeInfo, name string) FieldInfo {
	t.Helper()

	pos := info.Position(name)
	require.GreaterOrEqual(t, pos, 0, "field %s", name)

	return info.Fields[pos]
}

func TestAnalyzer_LoadPackages(t *testing.T) {
	graph, err := NewAnalyzer().LoadPackages("plaindata/store", "plaindata/warehouse")
	require.NoError(t, err)
	require.NotNil(t, graph)

	assert.Contains(t, graph.Packages, "plaindata/store")
	assert.Contains(t, graph.Packages, "plaindata/warehouse")

	assert.Contains(t, graph.Types, TypeID{PkgPath: "plaindata/store", Name: "Product"})
	assert.Contains(t, graph.Types, TypeID{PkgPath: "plaindata/warehouse", Name: "Product"})

	store := graph.Packages["plaindata/store"]
	assert.Equal(t, "store", store.Name)
	assert.NotEmpty(t, store.Dir)
	assert.Equal(t, "plaindata_gen.go", store.Funcs["NewOrderItem"])
}

func TestAnalyzer_LoadPackagesError(t *testing.T) {
	_, err := NewAnalyzer().LoadPackages("plaindata/does/not/exist")
	require.Error(t, err)
}

func TestAnalyzer_FieldsInDeclarationOrder(t *testing.T) {
	graph := loadStore(t)

	order, err := graph.GetStruct("plaindata/store", "Order")
	require.NoError(t, err)
	assert.Equal(t, TypeKindStruct, order.Kind)
	assert.Equal(t, []string{"ID", "CustomerID", "Status", "Total", "Items", "OrderedAt"}, order.FieldNames())

	item, err := graph.GetStruct("plaindata/store", "OrderItem")
	require.NoError(t, err)
	assert.Equal(t, []string{"productID", "name", "quantity", "unitPrice"}, item.FieldNames())
	assert.False(t, item.Fields[0].Exported)
}

func TestAnalyzer_FieldKinds(t *testing.T) {
	graph := loadStore(t)

	order := graph.GetType(TypeID{PkgPath: "plaindata/store", Name: "Order"})
	require.NotNil(t, order)

	items := fieldNamed(t, order, "Items")
	assert.Equal(t, TypeKindSlice, items.Type.Kind)
	require.NotNil(t, items.Type.ElemType)
	assert.Equal(t, TypeKindStruct, items.Type.ElemType.Kind)

	status := fieldNamed(t, order, "Status")
	assert.Equal(t, TypeKindNamed, status.Type.Kind)
	assert.Equal(t, TypeKindBasic, status.Type.Underlying.Kind)

	orderedAt := fieldNamed(t, order, "OrderedAt")
	assert.Equal(t, TypeKindExternal, orderedAt.Type.Kind)
	assert.Equal(t, "time.Time", orderedAt.Type.ID.String())

	customer := graph.GetType(TypeID{PkgPath: "plaindata/store", Name: "Customer"})
	require.NotNil(t, customer)

	address := fieldNamed(t, customer, "Address")
	assert.Equal(t, TypeKindPointer, address.Type.Kind)
	assert.Equal(t, TypeKindBasic, address.Type.ElemType.Kind)
	assert.Equal(t, `json:"address"`, string(address.Tag))
}

func TestAnalyzer_MethodFiles(t *testing.T) {
	graph := loadStore(t)

	product := graph.GetType(TypeID{PkgPath: "plaindata/store", Name: "Product"})
	require.NotNil(t, product)

	validate, ok := product.Method("Validate")
	require.True(t, ok, "pointer receiver methods are part of the method set")
	assert.Equal(t, "types.go", validate.File)
	assert.False(t, validate.Promoted)

	equal, ok := product.Method("Equal")
	require.True(t, ok)
	assert.Equal(t, "plaindata_gen.go", equal.File)

	money := graph.GetType(TypeID{PkgPath: "plaindata/store", Name: "Money"})
	require.NotNil(t, money)

	_, ok = money.Method("Compare")
	assert.True(t, ok)

	_, ok = money.Method("Hash")
	assert.False(t, ok)
}

func TestGraph_GetStructErrors(t *testing.T) {
	graph := loadStore(t)

	_, err := graph.GetStruct("plaindata/store", "Nope")
	require.ErrorIs(t, err, ErrTypeNotFound)

	_, err = graph.GetStruct("plaindata/store", "OrderStatus")
	require.ErrorIs(t, err, ErrNotStruct)
}

func TestAnalyzer_FlattensEmbeddedStructs(t *testing.T) {
	pkg := types.NewPackage("example.com/shapes", "shapes")
	a := NewAnalyzer()
	a.graph.Packages[pkg.Path()] = &PackageInfo{Path: pkg.Path(), Name: pkg.Name(), Pkg: pkg}

	intT := types.Typ[types.Int]
	strT := types.Typ[types.String]

	newStruct := func(name string, fields ...*types.Var) *types.Named {
		obj := types.NewTypeName(token.NoPos, pkg, name, nil)
		return types.NewNamed(obj, types.NewStruct(fields, nil), nil)
	}

	v := func(name string, t types.Type, embedded bool) *types.Var {
		return types.NewField(token.NoPos, pkg, name, t, embedded)
	}

	inner := newStruct("Inner", v("A", intT, false), v("B", intT, false))
	left := newStruct("Left", v("N", intT, false))
	right := newStruct("Right", v("N", intT, false))
	outer := newStruct("Outer",
		v("Inner", inner, true),
		v("B", strT, false),
		v("Left", left, true),
		v("Right", right, true),
		v("C", intT, false),
	)

	info := a.analyzeType(outer)
	require.Equal(t, TypeKindStruct, info.Kind)
	assert.Equal(t, []string{"A", "B", "C"}, info.FieldNames(), "shallow B wins, ambiguous N is dropped")

	promoted := fieldNamed(t, info, "A")
	assert.True(t, promoted.Promoted)
	assert.Equal(t, []int{0, 0}, promoted.Index)

	shadowing := fieldNamed(t, info, "B")
	assert.False(t, shadowing.Promoted)
	assert.Equal(t, []int{1}, shadowing.Index)
	assert.Equal(t, TypeKindBasic, shadowing.Type.Kind)
}

func TestAnalyzer_RecursiveType(t *testing.T) {
	pkg := types.NewPackage("example.com/list", "list")
	a := NewAnalyzer()
	a.graph.Packages[pkg.Path()] = &PackageInfo{Path: pkg.Path(), Name: pkg.Name(), Pkg: pkg}

	obj := types.NewTypeName(token.NoPos, pkg, "Node", nil)
	node := types.NewNamed(obj, nil, nil)
	node.SetUnderlying(types.NewStruct([]*types.Var{
		types.NewField(token.NoPos, pkg, "Value", types.Typ[types.Int], false),
		types.NewField(token.NoPos, pkg, "Next", types.NewPointer(node), false),
	}, nil))

	info := a.analyzeType(node)
	next := fieldNamed(t, info, "Next")
	assert.Equal(t, TypeKindPointer, next.Type.Kind)
	assert.Same(t, info, next.Type.ElemType)
}

func TestTypeID_String(t *testing.T) {
	assert.Equal(t, "plaindata/store.Order", TypeID{PkgPath: "plaindata/store", Name: "Order"}.String())
	assert.Equal(t, "int", TypeID{Name: "int"}.String())
}

func TestTypeKind_String(t *testing.T) {
	assert.Equal(t, "basic", TypeKindBasic.String())
	assert.Equal(t, "struct", TypeKindStruct.String())
	assert.Equal(t, "pointer", TypeKindPointer.String())
	assert.Equal(t, "slice", TypeKindSlice.String())
	assert.Equal(t, "named", TypeKindNamed.String())
	assert.Equal(t, "external", TypeKindExternal.String())
	assert.Equal(t, "unknown", TypeKindUnknown.String())
}
