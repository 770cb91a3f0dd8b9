package gen

import "text/template"

var fileTemplate = template.Must(template.New("file").Parse(`// Code generated by {{.Tool}}. DO NOT EDIT.

package {{.PackageName}}

import (
{{- range .Imports}}
	{{if .Alias}}{{.Alias}} {{end}}"{{.Path}}"
{{- end}}
)
{{range .Types}}
{{template "type" .}}
{{- end}}
`))

func init() {
	template.Must(fileTemplate.New("type").Parse(typeTemplate))
}

const typeTemplate = `
{{- $t := . -}}
// PlainFields returns the names of the plain data fields of {{.Name}} in declaration order.
func ({{.Name}}) PlainFields() []string {
	return []string{ {{- .FieldNames -}} }
}
{{if .Eq}}
// Equal reports whether x and o hold equal values in every field.
func (x {{.Name}}) Equal(o {{.Name}}) bool {
	return {{range $i, $f := .Fields}}{{if $i}} &&
		{{end}}{{$f.EqualExpr}}{{else}}true{{end}}
}
{{end}}
{{- if .Order}}
// Compare orders x and o field by field in declaration order.
func (x {{.Name}}) Compare(o {{.Name}}) int {
{{- range .Fields}}
	if c := {{.CompareExpr}}; c != 0 {
		return c
	}
{{- end}}

	return 0
}

// Less reports whether x orders before o.
func (x {{.Name}}) Less(o {{.Name}}) bool {
	return x.Compare(o) < 0
}
{{end}}
{{- if .Hash}}
// Hash returns a hash of x consistent with Equal.
func (x {{.Name}}) Hash() (uint64, error) {
{{- if .HashFailure}}
	return 0, {{.HashFailure}}
{{- else}}
	var h maphash.Hash
	h.SetSeed(plain.Seed())
{{range .Fields}}{{range .HashLines}}
	{{.}}
{{- end}}{{end}}

	return h.Sum64(), nil
{{- end}}
}
{{end}}
{{- if .Repr}}
// String returns x as {{.Name}}(field=value, ...).
func (x {{.Name}}) String() string {
	return {{.Quoted}} + "(" +
{{- range $i, $f := .Fields}}
		{{if $i}}", " + {{end}}"{{$f.Name}}=" + plain.ReprValue(x.{{$f.Name}}) +
{{- end}}
		")"
}

// GoString implements fmt.GoStringer.
func (x {{.Name}}) GoString() string {
	return x.String()
}
{{end}}
// Replace returns a copy of x with the named fields set to new values.
// Unknown names and values of the wrong type are rejected and x is left as is.
func (x {{.Name}}) Replace(changes map[string]any) ({{.Name}}, error) {
	if err := plain.CheckFields({{.Quoted}}, x.PlainFields(), changes); err != nil {
		return {{.Name}}{}, err
	}

	out := x

	for _, k := range plain.SortedKeys(changes) {
		switch k {
{{- range .Fields}}
		case {{.Quoted}}:
			v, ok := changes[k].({{.Type}})
			if !ok {{- if .Nillable}} && changes[k] != nil{{end}} {
				return {{$t.Name}}{}, plain.FieldTypeMismatch(k, {{.TypeQuoted}}, changes[k])
			}

			out.{{.Name}} = v
{{- end}}
		}
	}
{{- if .Validates}}

	if err := out.Validate(); err != nil {
		return {{.Name}}{}, plain.ValidationFailed({{.Quoted}}, err)
	}
{{- end}}

	return out, nil
}
{{range .Fields}}
// {{.With}} returns a copy of x with {{.Name}} set to v.
{{if $t.Validates -}}
func (x {{$t.Name}}) {{.With}}(v {{.Type}}) ({{$t.Name}}, error) {
	x.{{.Name}} = v
	if err := x.Validate(); err != nil {
		return {{$t.Name}}{}, plain.ValidationFailed({{$t.Quoted}}, err)
	}

	return x, nil
}
{{- else -}}
func (x {{$t.Name}}) {{.With}}(v {{.Type}}) {{$t.Name}} {
	x.{{.Name}} = v

	return x
}
{{- end}}
{{end}}
{{- if .Frozen}}
{{- range .Fields}}{{if .Getter}}
// {{.Getter}} returns the {{.Name}} field.
func (x {{$t.Name}}) {{.Getter}}() {{.Type}} {
	return x.{{.Name}}
}
{{end}}{{end}}
// {{.Constructor}} returns a new {{.Name}} holding the given field values.
{{if .Validates -}}
func {{.Constructor}}({{range $i, $f := .Fields}}{{if $i}}, {{end}}{{$f.Param}} {{$f.Type}}{{end}}) ({{.Name}}, error) {
	var v {{.Name}}
{{- range .Fields}}
	v.{{.Name}} = {{.Param}}
{{- end}}

	if err := v.Validate(); err != nil {
		return {{.Name}}{}, plain.ValidationFailed({{.Quoted}}, err)
	}

	return v, nil
}
{{- else -}}
func {{.Constructor}}({{range $i, $f := .Fields}}{{if $i}}, {{end}}{{$f.Param}} {{$f.Type}}{{end}}) {{.Name}} {
	var v {{.Name}}
{{- range .Fields}}
	v.{{.Name}} = {{.Param}}
{{- end}}

	return v
}
{{- end}}
{{end}}`
