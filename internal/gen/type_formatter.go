package gen

import (
	"go/types"
	"sort"
	"strconv"

	"plaindata/internal/common"
)

// importSpec represents an import statement.
type importSpec struct {
	Alias string
	Path  string
	name  string
}

// importSet collects the imports of one generated file.
type importSet struct {
	pkgPath string
	graph   func(path string) string
	byPath  map[string]importSpec
	byName  map[string]string
}

// reservedNames are identifiers the generated code declares or imports
// itself. Packages with these names get a numbered alias instead.
var reservedNames = map[string]string{
	"cmp":     "cmp",
	"maphash": maphashImport,
	"plain":   plainImport,
	"x":       "",
	"o":       "",
	"h":       "",
	"c":       "",
	"v":       "",
	"k":       "",
	"ok":      "",
	"out":     "",
	"err":     "",
	"changes": "",
}

func newImportSet(pkgPath string, pkgName func(path string) string) *importSet {
	s := &importSet{
		pkgPath: pkgPath,
		graph:   pkgName,
		byPath:  make(map[string]importSpec),
		byName:  make(map[string]string, len(reservedNames)),
	}

	for name, path := range reservedNames {
		s.byName[name] = path
	}

	return s
}

// add registers pkgPath and returns the name the generated code refers to it by.
func (s *importSet) add(pkgPath, name string) string {
	if pkgPath == "" || pkgPath == s.pkgPath {
		return ""
	}

	if spec, ok := s.byPath[pkgPath]; ok {
		return spec.name
	}

	if name == "" && s.graph != nil {
		name = s.graph(pkgPath)
	}

	if name == "" {
		name = common.PkgAlias(pkgPath)
	}

	unique := name
	for i := 2; ; i++ {
		if owner, taken := s.byName[unique]; !taken || owner == pkgPath {
			break
		}

		unique = name + strconv.Itoa(i)
	}

	spec := importSpec{Path: pkgPath, name: unique}
	if unique != common.PkgAlias(pkgPath) {
		spec.Alias = unique
	}

	s.byPath[pkgPath] = spec
	s.byName[unique] = pkgPath

	return unique
}

// qualifier renders package-qualified type names and records their imports.
func (s *importSet) qualifier(pkg *types.Package) string {
	if pkg == nil {
		return ""
	}

	return s.add(pkg.Path(), pkg.Name())
}

// typeString returns t as written in the generated file.
func (s *importSet) typeString(t types.Type) string {
	return types.TypeString(t, s.qualifier)
}

// sorted returns the imports ordered by path.
func (s *importSet) sorted() []importSpec {
	out := make([]importSpec, 0, len(s.byPath))
	for _, spec := range s.byPath {
		out = append(out, spec)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Path < out[j].Path
	})

	return out
}
