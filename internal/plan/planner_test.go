package plan

import (
	"go/types"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"plaindata/internal/analyze"
	"plaindata/internal/diagnostic"
	"plaindata/internal/manifest"
	"plaindata/options"
)

func manifestFor(entries ...manifest.TypeEntry) *manifest.File {
	return &manifest.File{
		Version: "1",
		Packages: []manifest.Package{{
			Path:  testPkg.Path(),
			Types: entries,
		}},
	}
}

func entry(name string, flags ...string) manifest.TypeEntry {
	return manifest.TypeEntry{Name: name, Flags: manifest.StringOrArray(flags)}
}

func errorCodes(d diagnostic.Diagnostics) []string {
	var out []string
	for _, e := range d.Errors {
		out = append(out, e.Code)
	}

	return out
}

func warningCodes(d diagnostic.Diagnostics) []string {
	var out []string
	for _, e := range d.Warnings {
		out = append(out, e.Code)
	}

	return out
}

func TestPlanFrozenPoint(t *testing.T) {
	point := structType("Point",
		field("x", types.Typ[types.Int]),
		field("y", types.Typ[types.Int]),
	)

	p := NewPlanner(graphOf(point), nil).Plan(manifestFor(entry("Point", "order", "frozen")))
	require.True(t, p.Diagnostics.IsValid(), "%v", p.Diagnostics.Error())
	require.Len(t, p.Packages, 1)

	pp := p.Packages[0]
	assert.Equal(t, "shapes", pp.Name)
	assert.Equal(t, "/src/shapes", pp.Dir)
	assert.Equal(t, manifest.DefaultOutput, pp.Output)
	require.Len(t, pp.Types, 1)

	tp := pp.Types[0]
	assert.Equal(t, options.Config{Eq: true, Repr: true, Order: true, Frozen: true}, tp.Config)
	assert.Equal(t, options.HashDerived, tp.HashMode)
	assert.Equal(t, "NewPoint", tp.Constructor())
	require.Len(t, tp.Fields, 2)

	x := tp.Fields[0]
	assert.Equal(t, "x", x.Name)
	assert.Equal(t, "X", x.Getter)
	assert.Equal(t, "WithX", x.With)
	assert.Equal(t, EqualPrimitive, x.Equal)
	assert.Equal(t, OrderPrimitive, x.Order)
	assert.Equal(t, HashPrimitive, x.Hash)
	assert.Equal(t, 1, tp.Fields[1].Position)

	assert.Equal(t,
		[]string{"PlainFields", "Replace", "Equal", "Compare", "Less", "Hash", "String", "GoString", "WithX", "X", "WithY", "Y"},
		tp.GeneratedMethods())

	assert.Len(t, p.Diagnostics.Infos, 2)
}

func TestPlanErrors(t *testing.T) {
	mixed := structType("Mixed",
		field("ID", types.Typ[types.Int]),
		field("tags", types.NewSlice(types.Typ[types.String])),
	)

	status := &analyze.TypeInfo{
		ID:   analyze.TypeID{PkgPath: testPkg.Path(), Name: "Status"},
		Kind: analyze.TypeKindNamed,
	}

	clash := structType("Clash", field("Name", types.Typ[types.String]))
	clash.Methods = []analyze.MethodInfo{{Name: "String", File: "clash.go"}}

	regenerated := structType("Regenerated", field("Name", types.Typ[types.String]))
	regenerated.Methods = []analyze.MethodInfo{{Name: "String", File: manifest.DefaultOutput}}

	graph := graphOf(mixed, status, clash, regenerated)

	tests := []struct {
		name     string
		entry    manifest.TypeEntry
		expected []string
	}{
		{"exported field on frozen type", entry("Mixed", "frozen"), []string{diagnostic.CodeExportedFrozen}},
		{"unorderable field", entry("Mixed", "order"), []string{diagnostic.CodeUnorderableField}},
		{"not a struct", entry("Status"), []string{diagnostic.CodeNotStruct}},
		{"unknown type", entry("Mixd"), []string{diagnostic.CodeUnknownType}},
		{"existing method", entry("Clash"), []string{diagnostic.CodeMethodExists}},
		{"method from generated file", entry("Regenerated"), nil},
		{"order without eq", manifest.TypeEntry{Name: "Mixed", Flags: manifest.StringOrArray{"order"}, FlagSet: manifest.FlagSet{Eq: new(bool)}}, []string{diagnostic.CodeInvalidConfig}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPlanner(graph, nil).Plan(manifestFor(tt.entry))
			assert.Equal(t, tt.expected, errorCodes(p.Diagnostics))

			if tt.expected != nil {
				assert.Empty(t, p.Packages[0].Types)
			}
		})
	}
}

func TestPlanUnknownTypeSuggestion(t *testing.T) {
	graph := graphOf(structType("Point", field("X", types.Typ[types.Int])))

	p := NewPlanner(graph, nil).Plan(manifestFor(entry("Piont")))
	require.Len(t, p.Diagnostics.Errors, 1)
	assert.Equal(t, []string{"Point"}, p.Diagnostics.Errors[0].Suggestions)
}

func TestPlanUnknownPackage(t *testing.T) {
	mf := &manifest.File{Packages: []manifest.Package{{Path: "example.com/missing", Types: []manifest.TypeEntry{entry("T")}}}}

	p := NewPlanner(analyze.NewTypeGraph(), nil).Plan(mf)
	assert.Equal(t, []string{diagnostic.CodeUnknownPackage}, errorCodes(p.Diagnostics))
	assert.Empty(t, p.Packages)
}

func TestPlanHashWarnings(t *testing.T) {
	bag := structType("Bag", field("Items", types.NewSlice(types.Typ[types.String])))
	graph := graphOf(bag)

	p := NewPlanner(graph, nil).Plan(manifestFor(entry("Bag")))
	assert.True(t, p.Diagnostics.IsValid())
	assert.Equal(t, []string{diagnostic.CodeHashDisabled}, warningCodes(p.Diagnostics))

	p = NewPlanner(graph, nil).Plan(manifestFor(entry("Bag", "unsafe_hash")))
	assert.True(t, p.Diagnostics.IsValid())
	assert.Equal(t, []string{diagnostic.CodeUnhashableField}, warningCodes(p.Diagnostics))
	assert.Equal(t, HashNone, p.Packages[0].Types[0].Fields[0].Hash)
}

func TestPlanValidateAndConstructorClash(t *testing.T) {
	account := structType("Account", field("id", types.Typ[types.Int]))
	account.Methods = []analyze.MethodInfo{{
		Name:      "Validate",
		File:      "account.go",
		Signature: types.NewSignatureType(nil, nil, nil, nil, tuple([]types.Type{errorType}), false),
	}}

	graph := graphOf(account)

	p := NewPlanner(graph, nil).Plan(manifestFor(entry("Account", "frozen")))
	require.True(t, p.Diagnostics.IsValid())
	assert.True(t, p.Packages[0].Types[0].Validates)

	graph.Packages[testPkg.Path()].Funcs["NewAccount"] = "account.go"

	p = NewPlanner(graph, nil).Plan(manifestFor(entry("Account", "frozen")))
	assert.Equal(t, []string{diagnostic.CodeMethodExists}, errorCodes(p.Diagnostics))
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "X", capitalize("x"))
	assert.Equal(t, "CreatedAt", capitalize("createdAt"))
	assert.Equal(t, "Émile", capitalize("émile"))
	assert.Equal(t, "", capitalize(""))
}
