package primitive

import (
	"bytes"
	"text/template"
)

// Generate renders the template for op on kind with the given operand
// expressions. x and y are Go expressions for the two operands (y is unused
// by OpHash), h names the *maphash.Hash for OpHash. Named basic kinds are
// resolved to their underlying kind by the caller. The second result
// carries the imports the rendered lines rely on; a nil result means the
// kind has no template for op.
func Generate(op OpEnum, kind KindEnum, x, y, h string) ([]string, []string) {
	tpl, ok := Lookup(op, kind)
	if !ok {
		return nil, nil
	}

	res := make([]string, len(tpl.Lines))
	for i, line := range tpl.Lines {
		tmpl, err := template.New("line").Parse(line)
		if err != nil {
			panic(err)
		}

		var buf bytes.Buffer
		err = tmpl.Execute(&buf, map[string]any{
			"x": x,
			"y": y,
			"h": h,
		})
		if err != nil {
			panic(err)
		}

		res[i] = buf.String()
	}

	return res, tpl.Imports
}
