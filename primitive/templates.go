package primitive

//go:generate go tool stringer -type=OpEnum -output=op_string.go

// OpEnum names a derived operation that has per-kind code templates.
type OpEnum int

const (
	_ OpEnum = iota

	OpEqual   // boolean expression, true when {{.x}} equals {{.y}}
	OpCompare // int expression, negative/zero/positive like cmp.Compare
	OpHash    // statements feeding {{.x}} into the maphash.Hash named {{.h}}

	OpTotal = int(iota)
)

// OpPair selects the template for one operation on one kind.
type OpPair struct {
	Op   OpEnum
	Kind KindEnum
}

// Template is a list of text/template lines plus the imports the rendered lines need.
type Template struct {
	Lines   []string
	Imports []string
}

var (
	templates map[OpPair]Template
)

const plainImport = "plaindata/plain"

func init() {
	templates = map[OpPair]Template{}

	for kind := KindEnum(1); int(kind) < KindTotal; kind++ {
		if kind == KindPrimitiveEnum || kind == KindTime {
			continue
		}

		templates[OpPair{OpEqual, kind}] = Template{Lines: []string{"{{.x}} == {{.y}}"}}
		templates[OpPair{OpHash, kind}] = Template{
			Lines:   []string{"maphash.WriteComparable({{.h}}, {{.x}})"},
			Imports: []string{"hash/maphash"},
		}

		if kind.IsOrdered() {
			templates[OpPair{OpCompare, kind}] = Template{
				Lines:   []string{"cmp.Compare({{.x}}, {{.y}})"},
				Imports: []string{"cmp"},
			}
		}
	}

	templates[OpPair{OpCompare, KindBool}] = Template{
		Lines:   []string{"plain.CompareBool({{.x}}, {{.y}})"},
		Imports: []string{plainImport},
	}

	// time.Time equality, order and hash follow the instant, not the location
	templates[OpPair{OpEqual, KindTime}] = Template{Lines: []string{"{{.x}}.Equal({{.y}})"}}
	templates[OpPair{OpCompare, KindTime}] = Template{Lines: []string{"{{.x}}.Compare({{.y}})"}}
	templates[OpPair{OpHash, KindTime}] = Template{
		Lines:   []string{"maphash.WriteComparable({{.h}}, {{.x}}.UnixNano())"},
		Imports: []string{"hash/maphash"},
	}
}

// Lookup returns the template for an operation on a kind. Named basic
// kinds should be resolved with UnderlyingGoKind or UnderlyingReflectKind first.
func Lookup(op OpEnum, kind KindEnum) (Template, bool) {
	t, ok := templates[OpPair{op, kind}]

	return t, ok
}
