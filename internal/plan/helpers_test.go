package plan

import (
	"go/token"
	"go/types"

	"plaindata/internal/analyze"
)

var testPkg = types.NewPackage("example.com/shapes", "shapes")

// named declares a named type in testPkg with the given underlying type.
func named(name string, underlying types.Type) *types.Named {
	obj := types.NewTypeName(token.NoPos, testPkg, name, nil)
	return types.NewNamed(obj, underlying, nil)
}

// addMethod adds a value-receiver method to n.
func addMethod(n *types.Named, name string, params []types.Type, results ...types.Type) {
	recv := types.NewVar(token.NoPos, testPkg, "r", n)
	sig := types.NewSignatureType(recv, nil, nil, tuple(params), tuple(results), false)
	n.AddMethod(types.NewFunc(token.NoPos, testPkg, name, sig))
}

func tuple(ts []types.Type) *types.Tuple {
	vars := make([]*types.Var, len(ts))
	for i, t := range ts {
		vars[i] = types.NewVar(token.NoPos, testPkg, "", t)
	}

	return types.NewTuple(vars...)
}

func field(name string, t types.Type) analyze.FieldInfo {
	return analyze.FieldInfo{
		Name:     name,
		Exported: token.IsExported(name),
		Type:     &analyze.TypeInfo{GoType: t},
	}
}

func structType(name string, fields ...analyze.FieldInfo) *analyze.TypeInfo {
	return &analyze.TypeInfo{
		ID:     analyze.TypeID{PkgPath: testPkg.Path(), Name: name},
		Kind:   analyze.TypeKindStruct,
		Fields: fields,
	}
}

// graphOf builds a type graph holding one package with the given types.
func graphOf(infos ...*analyze.TypeInfo) *analyze.TypeGraph {
	graph := analyze.NewTypeGraph()
	pkg := &analyze.PackageInfo{
		Path:  testPkg.Path(),
		Name:  testPkg.Name(),
		Dir:   "/src/shapes",
		Funcs: map[string]string{},
		Pkg:   testPkg,
	}

	for _, info := range infos {
		graph.Types[info.ID] = info
		pkg.Types = append(pkg.Types, info.ID)
	}

	graph.Packages[pkg.Path] = pkg

	return graph
}
