package analyze

import (
	"errors"
	"fmt"
	"go/token"
	"go/types"
	"io"
	"log/slog"
	"path/filepath"
	"reflect"
	"slices"

	"golang.org/x/tools/go/packages"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// Analyzer loads Go packages and builds a type graph.
type Analyzer struct {
	graph     *TypeGraph
	typeCache map[types.Type]*TypeInfo // Cache to handle recursive types
	fset      *token.FileSet
	dir       string
	logger    *slog.Logger
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithDir sets the directory packages are resolved from. It defaults to the
// current directory.
func WithDir(dir string) Option {
	return func(a *Analyzer) { a.dir = dir }
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Analyzer) { a.logger = logger }
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer(opts ...Option) *Analyzer {
	a := &Analyzer{
		graph:     NewTypeGraph(),
		typeCache: make(map[types.Type]*TypeInfo),
		fset:      token.NewFileSet(),
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// LoadPackages loads the specified packages and builds the type graph.
// Patterns are standard Go package patterns (e.g., "./store", "plaindata/warehouse").
func (a *Analyzer) LoadPackages(patterns ...string) (*TypeGraph, error) {
	cfg := &packages.Config{
		Mode: LoadMode,
		Dir:  a.dir,
		Fset: a.fset,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	// Check for package errors
	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %w", errors.Join(errs...))
	}

	// Register every package first, so types referring to each other are not
	// mistaken for external ones.
	for _, pkg := range pkgs {
		info := &PackageInfo{Path: pkg.PkgPath, Name: pkg.Name, Pkg: pkg.Types, Funcs: map[string]string{}}
		if len(pkg.GoFiles) > 0 {
			info.Dir = filepath.Dir(pkg.GoFiles[0])
		}

		a.graph.Packages[pkg.PkgPath] = info
	}

	for _, pkg := range pkgs {
		a.processPackage(pkg)
		a.logger.Debug("analyzed package", "path", pkg.PkgPath, "types", len(a.graph.Packages[pkg.PkgPath].Types))
	}

	return a.graph, nil
}

// Graph returns the current type graph.
func (a *Analyzer) Graph() *TypeGraph {
	return a.graph
}

// processPackage extracts named types from a loaded package.
func (a *Analyzer) processPackage(pkg *packages.Package) {
	pkgInfo := a.graph.Packages[pkg.PkgPath]

	scope := pkg.Types.Scope()
	for _, name := range scope.Names() {
		obj := scope.Lookup(name)
		if fn, ok := obj.(*types.Func); ok {
			pkgInfo.Funcs[name] = filepath.Base(a.fset.Position(fn.Pos()).Filename)
			continue
		}

		// Only process type names (not variables, constants)
		typeName, ok := obj.(*types.TypeName)
		if !ok || typeName.IsAlias() {
			continue
		}

		typeID := TypeID{
			PkgPath: pkg.PkgPath,
			Name:    name,
		}

		typeInfo := a.analyzeType(typeName.Type())
		typeInfo.ID = typeID

		a.graph.Types[typeID] = typeInfo
		pkgInfo.Types = append(pkgInfo.Types, typeID)
	}
}

// analyzeType recursively analyzes a go/types.Type and returns a TypeInfo.
func (a *Analyzer) analyzeType(t types.Type) *TypeInfo {
	t = types.Unalias(t)

	// Check cache to handle recursive types
	if cached, ok := a.typeCache[t]; ok {
		return cached
	}

	info := &TypeInfo{
		GoType: t,
	}

	// Pre-cache to handle recursive types (we'll fill in details)
	a.typeCache[t] = info

	switch tt := t.(type) {
	case *types.Named:
		a.analyzeNamedType(tt, info)

	case *types.Basic:
		info.Kind = TypeKindBasic

	case *types.Pointer:
		info.Kind = TypeKindPointer
		info.ElemType = a.analyzeType(tt.Elem())

	case *types.Slice:
		info.Kind = TypeKindSlice
		info.ElemType = a.analyzeType(tt.Elem())

	case *types.Array:
		info.Kind = TypeKindArray
		info.ElemType = a.analyzeType(tt.Elem())

	case *types.Map:
		info.Kind = TypeKindMap
		info.ElemType = a.analyzeType(tt.Elem())

	case *types.Interface:
		info.Kind = TypeKindInterface

	case *types.Struct:
		info.Kind = TypeKindStruct
		a.analyzeStructFields(tt, nil, info)

	default:
		// Channels, functions, type parameters
		info.Kind = TypeKindUnknown
	}

	return info
}

// analyzeNamedType analyzes a named type.
func (a *Analyzer) analyzeNamedType(named *types.Named, info *TypeInfo) {
	obj := named.Obj()
	if obj.Pkg() == nil {
		// Predeclared named types: error, comparable
		info.ID = TypeID{Name: obj.Name()}
		info.Kind = TypeKindInterface

		return
	}

	info.ID = TypeID{
		PkgPath: obj.Pkg().Path(),
		Name:    obj.Name(),
	}

	// External/opaque type (e.g., time.Time)
	if a.isExternalPackage(obj.Pkg().Path()) {
		info.Kind = TypeKindExternal
		return
	}

	info.Methods = a.methodSet(named)

	switch ut := named.Underlying().(type) {
	case *types.Struct:
		info.Kind = TypeKindStruct
		a.analyzeStructFields(ut, obj.Pkg(), info)

	default:
		// Named type wrapping something else in our packages (e.g., type OrderStatus string)
		info.Kind = TypeKindNamed
		info.Underlying = a.analyzeType(ut)
	}
}

// isExternalPackage returns true if the package is not in our analyzed set.
func (a *Analyzer) isExternalPackage(pkgPath string) bool {
	_, ok := a.graph.Packages[pkgPath]
	return !ok
}

// methodSet lists the methods callable on a *T value, with the file each is declared in.
func (a *Analyzer) methodSet(named *types.Named) []MethodInfo {
	ms := types.NewMethodSet(types.NewPointer(named))
	methods := make([]MethodInfo, 0, ms.Len())

	for i := range ms.Len() {
		sel := ms.At(i)

		fn, ok := sel.Obj().(*types.Func)
		if !ok {
			continue
		}

		m := MethodInfo{
			Name:      fn.Name(),
			Promoted:  len(sel.Index()) > 1,
			Signature: fn.Signature(),
		}

		if fn.Pos().IsValid() {
			m.File = filepath.Base(a.fset.Position(fn.Pos()).Filename)
		}

		methods = append(methods, m)
	}

	return methods
}

// fieldCandidate is a field found while walking embedded structs.
type fieldCandidate struct {
	FieldInfo
	depth int
}

// analyzeStructFields lists the plain data fields of a struct. Embedded
// structs whose fields are all accessible from pkg are flattened in place;
// a shallower field shadows a deeper one with the same name and names that
// are ambiguous at their shallowest depth are dropped, as Go's selector rules do.
func (a *Analyzer) analyzeStructFields(st *types.Struct, pkg *types.Package, info *TypeInfo) {
	var candidates []fieldCandidate

	a.collectFields(st, pkg, nil, 0, &candidates)

	var order []string

	best := map[string][]fieldCandidate{}

	for _, c := range candidates {
		prev, seen := best[c.Name]
		if !seen {
			order = append(order, c.Name)
		}

		switch {
		case !seen || c.depth < prev[0].depth:
			best[c.Name] = []fieldCandidate{c}
		case c.depth == prev[0].depth:
			best[c.Name] = append(prev, c)
		}
	}

	for _, name := range order {
		if winners := best[name]; len(winners) == 1 {
			info.Fields = append(info.Fields, winners[0].FieldInfo)
		}
	}
}

func (a *Analyzer) collectFields(st *types.Struct, pkg *types.Package, prefix []int, depth int, out *[]fieldCandidate) {
	for i := range st.NumFields() {
		field := st.Field(i)
		index := append(slices.Clone(prefix), i)

		if field.Embedded() {
			if inner, ok := flattenable(field.Type(), pkg); ok {
				a.collectFields(inner, pkg, index, depth+1, out)
				continue
			}
		}

		*out = append(*out, fieldCandidate{
			FieldInfo: FieldInfo{
				Name:     field.Name(),
				Exported: field.Exported(),
				Type:     a.analyzeType(field.Type()),
				Tag:      reflect.StructTag(st.Tag(i)),
				Embedded: field.Embedded(),
				Promoted: depth > 0,
				Index:    index,
			},
			depth: depth,
		})
	}
}

// flattenable reports whether an embedded field contributes its fields
// instead of being a field itself: a non-pointer struct whose fields can
// all be reached from pkg. time.Time and similar opaque structs stay whole.
func flattenable(t types.Type, pkg *types.Package) (*types.Struct, bool) {
	t = types.Unalias(t)

	st, ok := t.Underlying().(*types.Struct)
	if !ok {
		return nil, false
	}

	if named, ok := t.(*types.Named); ok && pkg != nil && named.Obj().Pkg() == pkg {
		return st, true
	}

	for i := range st.NumFields() {
		if !st.Field(i).Exported() {
			return nil, false
		}
	}

	return st, true
}

// GetStruct returns the TypeInfo for a named struct.
func (a *Analyzer) GetStruct(pkgPath, typeName string) (*TypeInfo, error) {
	return a.graph.GetStruct(pkgPath, typeName)
}

// ErrTypeNotFound is returned when a type is not part of the analyzed packages.
var ErrTypeNotFound = errors.New("type not found")

// ErrNotStruct is returned when a named type is not a struct.
var ErrNotStruct = errors.New("type is not a struct")

// GetStruct returns the TypeInfo for a named struct in the graph.
func (g *TypeGraph) GetStruct(pkgPath, typeName string) (*TypeInfo, error) {
	id := TypeID{PkgPath: pkgPath, Name: typeName}

	info := g.GetType(id)
	if info == nil {
		return nil, fmt.Errorf("%w: %s", ErrTypeNotFound, id)
	}

	if info.Kind != TypeKindStruct {
		return nil, fmt.Errorf("%w: %s (kind: %s)", ErrNotStruct, id, info.Kind)
	}

	return info, nil
}
