package plan

import (
	"fmt"
	"go/types"
	"io"
	"log/slog"
	"unicode"
	"unicode/utf8"

	"plaindata/internal/analyze"
	"plaindata/internal/diagnostic"
	"plaindata/internal/manifest"
	"plaindata/internal/match"
	"plaindata/options"
	"plaindata/primitive"
)

// Planner builds a Plan from a manifest and the type graph of its packages.
type Planner struct {
	graph  *analyze.TypeGraph
	logger *slog.Logger
}

// NewPlanner creates a Planner. A nil logger discards output.
func NewPlanner(graph *analyze.TypeGraph, logger *slog.Logger) *Planner {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Planner{graph: graph, logger: logger}
}

// Plan plans every package and type of the manifest. Problems are reported
// through the plan's diagnostics; types with errors are left out.
func (p *Planner) Plan(mf *manifest.File) *Plan {
	out := &Plan{TypeGraph: p.graph}

	for i := range mf.Packages {
		pkg := &mf.Packages[i]

		info, ok := p.graph.Packages[pkg.Path]
		if !ok {
			out.Diagnostics.AddError(diagnostic.CodeUnknownPackage,
				fmt.Sprintf("package %q was not loaded", pkg.Path), "", pkg.Path)

			continue
		}

		pp := PackagePlan{
			Path:   pkg.Path,
			Name:   info.Name,
			Dir:    info.Dir,
			Output: pkg.OutputFile(),
			Pkg:    info.Pkg,
		}

		for j := range pkg.Types {
			tp, ok := p.planType(mf, &pp, info, &pkg.Types[j], &out.Diagnostics)
			if !ok {
				continue
			}

			p.logger.Debug("planned type", "package", pkg.Path, "type", tp.Name,
				"config", tp.Config.String(), "hash", tp.HashMode.String(), "fields", len(tp.Fields))

			pp.Types = append(pp.Types, tp)
		}

		out.Packages = append(out.Packages, pp)
	}

	return out
}

func (p *Planner) planType(
	mf *manifest.File,
	pp *PackagePlan,
	pkgInfo *analyze.PackageInfo,
	entry *manifest.TypeEntry,
	diags *diagnostic.Diagnostics,
) (TypePlan, bool) {
	name := entry.Name

	cfg, err := mf.Config(entry)
	if err == nil {
		err = cfg.Validate()
	}

	if err != nil {
		diags.AddError(diagnostic.CodeInvalidConfig, err.Error(), name, "")
		return TypePlan{}, false
	}

	info := p.graph.GetType(analyze.TypeID{PkgPath: pp.Path, Name: name})
	if info == nil {
		var suggestions []string
		if s := closest(name, pkgInfo.Types); s != "" {
			suggestions = append(suggestions, s)
		}

		diags.AddError(diagnostic.CodeUnknownType,
			fmt.Sprintf("type %s not found in %s", name, pp.Path), name, "", suggestions...)

		return TypePlan{}, false
	}

	if info.Kind != analyze.TypeKindStruct {
		diags.AddError(diagnostic.CodeNotStruct,
			fmt.Sprintf("plain data types must be structs, %s is %s", name, info.Kind), name, "")

		return TypePlan{}, false
	}

	tp := TypePlan{
		Name:     name,
		Config:   cfg,
		HashMode: cfg.HashMode(),
		Type:     info,
	}

	if m, ok := info.Method("Validate"); ok && isValidateSignature(m.Signature) {
		tp.Validates = true
	}

	valid := true

	for i, f := range info.Fields {
		fp := planField(i, f, cfg)

		if cfg.Frozen && f.Exported {
			diags.AddError(diagnostic.CodeExportedFrozen,
				fmt.Sprintf("frozen types keep their fields unexported, %s is exported", f.Name), name, f.Name)

			valid = false
		}

		if cfg.Order && fp.Order == OrderNone {
			diags.AddError(diagnostic.CodeUnorderableField,
				fmt.Sprintf("field %s of type %s has no ordering", f.Name, fp.GoType), name, f.Name)

			valid = false
		}

		if tp.HashMode == options.HashDerived && fp.Hash == HashNone {
			diags.AddWarning(diagnostic.CodeUnhashableField,
				fmt.Sprintf("Hash will fail: %s", fp.Unhashable), name, f.Name)
		}

		diags.AddInfo(diagnostic.CodeFieldStrategy,
			fmt.Sprintf("equal=%s order=%s hash=%s", fp.Equal, fp.Order, fp.Hash), name, f.Name)

		tp.Fields = append(tp.Fields, fp)
	}

	if !checkClashes(&tp, pp.Output, pkgInfo, diags) {
		valid = false
	}

	if tp.HashMode == options.HashDisabled {
		diags.AddWarning(diagnostic.CodeHashDisabled,
			"mutable type with eq: Hash always fails, set frozen or unsafe_hash to enable it", name, "")
	}

	return tp, valid
}

func planField(position int, f analyze.FieldInfo, cfg options.Config) FieldPlan {
	t := f.Type.GoType
	kind := primitive.UnderlyingGoKind(t)

	fp := FieldPlan{
		Name:     f.Name,
		Position: position,
		Exported: f.Exported,
		GoType:   t,
		Kind:     kind,
		Nillable: nillable(t),
		Equal:    selectEqual(t, kind),
		With:     "With" + capitalize(f.Name),
	}

	if cfg.Order {
		fp.Order = selectOrder(t, kind)
	}

	fp.Hash, fp.Unhashable = selectHash(t, kind)

	if !f.Exported {
		fp.Getter = capitalize(f.Name)
	}

	return fp
}

// GeneratedMethods lists the method names the generator adds to a type.
func (t *TypePlan) GeneratedMethods() []string {
	names := []string{"PlainFields", "Replace"}

	if t.Config.Eq {
		names = append(names, "Equal")
	}

	if t.Config.Order {
		names = append(names, "Compare", "Less")
	}

	if t.Config.Eq || t.Config.UnsafeHash {
		names = append(names, "Hash")
	}

	if t.Config.Repr {
		names = append(names, "String", "GoString")
	}

	for _, f := range t.Fields {
		names = append(names, f.With)

		if t.Config.Frozen && f.Getter != "" {
			names = append(names, f.Getter)
		}
	}

	return names
}

// checkClashes reports methods and functions the generator would add that
// the package already declares outside the generated file.
func checkClashes(tp *TypePlan, output string, pkgInfo *analyze.PackageInfo, diags *diagnostic.Diagnostics) bool {
	ok := true
	fields := map[string]bool{}

	for _, f := range tp.Fields {
		fields[f.Name] = true
	}

	for _, name := range tp.GeneratedMethods() {
		if fields[name] {
			diags.AddError(diagnostic.CodeMethodExists,
				fmt.Sprintf("can't generate %s: field with the same name exists", name), tp.Name, name)

			ok = false

			continue
		}

		if m, exists := tp.Type.Method(name); exists && m.File != output {
			diags.AddError(diagnostic.CodeMethodExists,
				fmt.Sprintf("can't generate %s: method already exists", name), tp.Name, name)

			ok = false
		}
	}

	if tp.Config.Frozen {
		if file, exists := pkgInfo.Funcs[tp.Constructor()]; exists && file != output {
			diags.AddError(diagnostic.CodeMethodExists,
				fmt.Sprintf("can't generate %s: function already exists", tp.Constructor()), tp.Name, "")

			ok = false
		}
	}

	return ok
}

func isValidateSignature(sig *types.Signature) bool {
	return sig != nil && sig.Params().Len() == 0 && tupleIs(sig.Results(), []types.Type{errorType})
}

// closest returns the name of the package type nearest to name, if any.
func closest(name string, ids []analyze.TypeID) string {
	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = id.Name
	}

	return match.Closest(name, names)
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}

	return string(unicode.ToUpper(r)) + s[size:]
}
