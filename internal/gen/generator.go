package gen

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"io"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"plaindata/internal/analyze"
	"plaindata/internal/plan"
	"plaindata/options"
	"plaindata/primitive"
)

const (
	// ToolName appears in the header of every generated file.
	ToolName = "plaindata-gen"

	plainImport   = "plaindata/plain"
	maphashImport = "hash/maphash"
)

// ErrPlanHasErrors is returned when asked to generate from a plan whose
// diagnostics contain errors.
var ErrPlanHasErrors = errors.New("plan has errors")

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// WriteDebugUnformatted keeps the raw template output next to the
	// intended file when formatting fails.
	WriteDebugUnformatted bool
	// Logger receives progress messages. Nil discards them.
	Logger *slog.Logger
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		WriteDebugUnformatted: true,
	}
}

// Generator generates Go code from a plan.
type Generator struct {
	config GeneratorConfig
	graph  *analyze.TypeGraph
	logger *slog.Logger
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	logger := config.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Generator{config: config, logger: logger}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Dir is the package directory the file belongs to.
	Dir string
	// Filename is the name of the file (e.g., "plaindata_gen.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// Path returns the file's location on disk.
func (f GeneratedFile) Path() string {
	return filepath.Join(f.Dir, f.Filename)
}

// Generate generates one file per planned package that has types.
func (g *Generator) Generate(p *plan.Plan) ([]GeneratedFile, error) {
	if p.Diagnostics.HasErrors() {
		return nil, fmt.Errorf("%w: %w", ErrPlanHasErrors, p.Diagnostics.Error())
	}

	g.graph = p.TypeGraph

	var files []GeneratedFile

	for i := range p.Packages {
		pp := &p.Packages[i]
		if len(pp.Types) == 0 {
			continue
		}

		file, err := g.GeneratePackage(pp)
		if err != nil {
			return nil, fmt.Errorf("generating %s: %w", pp.Path, err)
		}

		g.logger.Debug("generated file", "package", pp.Path, "file", file.Path(), "types", len(pp.Types))

		files = append(files, *file)
	}

	return files, nil
}

// GeneratePackage renders the methods of every type of one package into a
// single file.
func (g *Generator) GeneratePackage(pp *plan.PackagePlan) (*GeneratedFile, error) {
	imports := newImportSet(pp.Path, g.getPkgName)
	imports.add(plainImport, "plain")

	data := &fileData{
		Tool:        ToolName,
		PackageName: pp.Name,
	}

	for i := range pp.Types {
		data.Types = append(data.Types, buildTypeData(&pp.Types[i], imports))
	}

	data.Imports = imports.sorted()

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	file := &GeneratedFile{Dir: pp.Dir, Filename: pp.Output}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		if g.config.WriteDebugUnformatted {
			_ = writeDebugUnformatted(pp.Dir, pp.Output, buf.Bytes())
		}

		file.Content = buf.Bytes()

		return file, fmt.Errorf("formatting code: %w", err)
	}

	file.Content = formatted

	return file, nil
}

// getPkgName returns the package name for a given package path from the type graph.
func (g *Generator) getPkgName(pkgPath string) string {
	if g.graph != nil {
		if pkgInfo, ok := g.graph.Packages[pkgPath]; ok {
			return pkgInfo.Name
		}
	}

	return ""
}

// fileData holds all data needed for the file template.
type fileData struct {
	Tool        string
	PackageName string
	Imports     []importSpec
	Types       []typeData
}

// typeData holds the rendered pieces of one type's methods.
type typeData struct {
	Name        string
	Quoted      string
	Eq          bool
	Order       bool
	Hash        bool
	Repr        bool
	Frozen      bool
	Validates   bool
	Constructor string
	// HashFailure is a ready-made error expression when Hash can never succeed.
	HashFailure string
	FieldNames  string
	Fields      []fieldData
}

// fieldData holds the rendered pieces of one field.
type fieldData struct {
	Name        string
	Quoted      string
	Type        string
	TypeQuoted  string
	Param       string
	Getter      string
	With        string
	Nillable    bool
	EqualExpr   string
	CompareExpr string
	HashLines   []string
}

func buildTypeData(tp *plan.TypePlan, imports *importSet) typeData {
	quoted := strconv.Quote(tp.Name)

	td := typeData{
		Name:        tp.Name,
		Quoted:      quoted,
		Eq:          tp.Config.Eq,
		Order:       tp.Config.Order,
		Hash:        tp.HashMode != options.HashDefault,
		Repr:        tp.Config.Repr,
		Frozen:      tp.Config.Frozen,
		Validates:   tp.Validates,
		Constructor: tp.Constructor(),
	}

	hashing := tp.HashMode == options.HashDerived

	for _, fp := range tp.Fields {
		if hashing && fp.Hash == plan.HashNone {
			td.HashFailure = fmt.Sprintf("plain.UnhashableField(%s, %s, %s)",
				quoted, strconv.Quote(fp.Name), strconv.Quote(fp.Unhashable))
			hashing = false
		}
	}

	names := make([]string, len(tp.Fields))

	for i := range tp.Fields {
		names[i] = strconv.Quote(tp.Fields[i].Name)
		td.Fields = append(td.Fields, buildFieldData(tp, &tp.Fields[i], hashing, imports))
	}

	td.FieldNames = strings.Join(names, ", ")

	if tp.HashMode == options.HashDisabled {
		td.HashFailure = fmt.Sprintf("plain.HashingDisabled(%s)", quoted)
	}

	if hashing {
		imports.add(maphashImport, "maphash")
	}

	return td
}

func buildFieldData(tp *plan.TypePlan, fp *plan.FieldPlan, hashing bool, imports *importSet) fieldData {
	typ := imports.typeString(fp.GoType)

	fd := fieldData{
		Name:       fp.Name,
		Quoted:     strconv.Quote(fp.Name),
		Type:       typ,
		TypeQuoted: strconv.Quote(typ),
		Param:      paramName(fp.Name),
		Getter:     fp.Getter,
		With:       fp.With,
		Nillable:   fp.Nillable,
	}

	x, y := "x."+fp.Name, "o."+fp.Name

	if tp.Config.Eq {
		fd.EqualExpr = equalExpr(fp, x, y, imports)
	}

	if tp.Config.Order {
		fd.CompareExpr = compareExpr(fp, x, y, imports)
	}

	if hashing {
		fd.HashLines = hashLines(tp, fp, x, imports)
	}

	return fd
}

func equalExpr(fp *plan.FieldPlan, x, y string, imports *importSet) string {
	switch fp.Equal {
	case plan.EqualPrimitive:
		if lines, deps := primitive.Generate(primitive.OpEqual, fp.Kind, x, y, ""); lines != nil {
			addAll(imports, deps)
			return lines[0]
		}

		return x + " == " + y
	case plan.EqualOperator:
		return x + " == " + y
	case plan.EqualMethod:
		return x + ".Equal(" + y + ")"
	default:
		return "plain.EqualValues(" + x + ", " + y + ")"
	}
}

func compareExpr(fp *plan.FieldPlan, x, y string, imports *importSet) string {
	if fp.Order == plan.OrderMethod {
		return x + ".Compare(" + y + ")"
	}

	lines, deps := primitive.Generate(primitive.OpCompare, fp.Kind, x, y, "")
	addAll(imports, deps)

	return lines[0]
}

func hashLines(tp *plan.TypePlan, fp *plan.FieldPlan, x string, imports *importSet) []string {
	fail := func(reason string) string {
		return fmt.Sprintf("return 0, plain.UnhashableField(%s, %s, %s)",
			strconv.Quote(tp.Name), strconv.Quote(fp.Name), reason)
	}

	switch fp.Hash {
	case plan.HashPrimitive:
		lines, deps := primitive.Generate(primitive.OpHash, fp.Kind, x, "", "&h")
		addAll(imports, deps)

		return lines
	case plan.HashComparable:
		return []string{"maphash.WriteComparable(&h, " + x + ")"}
	case plan.HashMethod:
		return []string{"maphash.WriteComparable(&h, " + x + ".Hash())"}
	case plan.HashMethodErr:
		return []string{
			"if v, err := " + x + ".Hash(); err != nil {",
			fail("err.Error()"),
			"} else {",
			"maphash.WriteComparable(&h, v)",
			"}",
		}
	case plan.HashDynamic:
		return []string{
			"if err := plain.WriteHash(&h, " + x + "); err != nil {",
			fail("err.Error()"),
			"}",
		}
	default:
		return nil
	}
}

func addAll(imports *importSet, paths []string) {
	for _, p := range paths {
		imports.add(p, "")
	}
}

// paramName returns the constructor parameter name for a field, steering
// clear of identifiers the constructor body uses.
func paramName(field string) string {
	switch field {
	case "plain", "v", "err":
		return field + "Arg"
	default:
		return field
	}
}
