package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/davecgh/go-spew/spew"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"plaindata/internal/diagnostic"
	"plaindata/internal/gen"
	"plaindata/internal/plan"
)

type reporter struct {
	w io.Writer

	errorC   *color.Color
	warningC *color.Color
	infoC    *color.Color
	addC     *color.Color
	delC     *color.Color
	headC    *color.Color
}

// newReporter colors its output only when w is a terminal.
func newReporter(w io.Writer) *reporter {
	r := &reporter{
		w:        w,
		errorC:   color.New(color.FgRed, color.Bold),
		warningC: color.New(color.FgYellow),
		infoC:    color.New(color.FgCyan),
		addC:     color.New(color.FgGreen),
		delC:     color.New(color.FgRed),
		headC:    color.New(color.Bold),
	}

	tty := false
	if f, ok := w.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		tty = true
	}

	for _, c := range []*color.Color{r.errorC, r.warningC, r.infoC, r.addC, r.delC, r.headC} {
		if tty {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return r
}

func (r *reporter) severity(s diagnostic.DiagnosticSeverity) *color.Color {
	switch s {
	case diagnostic.DiagnosticError:
		return r.errorC
	case diagnostic.DiagnosticWarning:
		return r.warningC
	default:
		return r.infoC
	}
}

// diagnostics prints errors and warnings, and infos when asked to.
func (r *reporter) diagnostics(d *diagnostic.Diagnostics, infos bool) {
	for _, diag := range d.All() {
		if diag.Severity == diagnostic.DiagnosticInfo && !infos {
			continue
		}

		r.severity(diag.Severity).Fprintf(r.w, "%s", diag.Severity)
		fmt.Fprintf(r.w, ": %s\n", diag.String())
	}
}

// strategies prints one table per package describing how each field takes
// part in the generated methods.
func (r *reporter) strategies(p *plan.Plan) {
	for _, pp := range p.Packages {
		r.headC.Fprintf(r.w, "%s", pp.Path)
		fmt.Fprintf(r.w, " -> %s\n", pp.Output)

		for _, tp := range pp.Types {
			fmt.Fprintf(r.w, "\n%s [%s] hash=%s\n", tp.Name, tp.Config, tp.HashMode)

			tw := tabwriter.NewWriter(r.w, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "  FIELD\tTYPE\tEQUAL\tORDER\tHASH")

			for _, f := range tp.Fields {
				hash := f.Hash.String()
				if f.Hash == plan.HashNone && f.Unhashable != "" {
					hash += " (" + f.Unhashable + ")"
				}

				fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\t%s\n", f.Name, f.GoType, f.Equal, f.Order, hash)
			}

			tw.Flush()

			if methods := tp.GeneratedMethods(); len(methods) > 0 {
				fmt.Fprintf(r.w, "  methods: %s\n", strings.Join(methods, ", "))
			}
		}

		fmt.Fprintln(r.w)
	}
}

// stale prints why a generated file is out of date.
func (r *reporter) stale(s gen.StaleFile) {
	if s.Missing {
		r.errorC.Fprintf(r.w, "missing")
		fmt.Fprintf(r.w, ": %s\n", s.Path)

		return
	}

	r.errorC.Fprintf(r.w, "stale")
	fmt.Fprintf(r.w, ": %s\n", s.Path)

	for _, line := range strings.Split(strings.TrimSuffix(s.Diff, "\n"), "\n") {
		switch {
		case strings.HasPrefix(line, "+"):
			r.addC.Fprintln(r.w, line)
		case strings.HasPrefix(line, "-"):
			r.delC.Fprintln(r.w, line)
		default:
			fmt.Fprintln(r.w, line)
		}
	}
}

// planDump is the part of a plan worth looking at when debugging.
type planDump struct {
	Package string
	Output  string
	Types   []typeDump
}

type typeDump struct {
	Name      string
	Config    string
	HashMode  string
	Validates bool
	Methods   []string
	Fields    []fieldDump
}

type fieldDump struct {
	Name       string
	Type       string
	Exported   bool
	Nillable   bool
	Equal      string
	Order      string
	Hash       string
	Unhashable string
}

func dumpPlan(w io.Writer, p *plan.Plan) {
	cfg := spew.ConfigState{
		Indent:                  "  ",
		SortKeys:                true,
		DisablePointerAddresses: true,
		DisableCapacities:       true,
	}

	var out []planDump

	for _, pp := range p.Packages {
		pd := planDump{Package: pp.Path, Output: pp.Output}

		for _, tp := range pp.Types {
			td := typeDump{
				Name:      tp.Name,
				Config:    tp.Config.String(),
				HashMode:  tp.HashMode.String(),
				Validates: tp.Validates,
				Methods:   tp.GeneratedMethods(),
			}

			for _, f := range tp.Fields {
				td.Fields = append(td.Fields, fieldDump{
					Name:       f.Name,
					Type:       f.GoType.String(),
					Exported:   f.Exported,
					Nillable:   f.Nillable,
					Equal:      f.Equal.String(),
					Order:      f.Order.String(),
					Hash:       f.Hash.String(),
					Unhashable: f.Unhashable,
				})
			}

			pd.Types = append(pd.Types, td)
		}

		out = append(out, pd)
	}

	cfg.Fdump(w, out)
}
