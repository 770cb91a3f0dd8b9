package plain

import (
	"fmt"
	"reflect"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Validator is implemented by types that check their own construction-time invariants.
type Validator interface {
	Validate() error
}

type invariant struct {
	src     string
	program *vm.Program
}

// compileInvariant compiles src against the struct type as environment. The
// expression must produce a bool.
func compileInvariant(src string, rt reflect.Type) (invariant, error) {
	program, err := expr.Compile(src, expr.Env(reflect.Zero(rt).Interface()), expr.AsBool())
	if err != nil {
		return invariant{}, fmt.Errorf("compiling invariant %q: %w", src, err)
	}

	return invariant{src: src, program: program}, nil
}

func (inv invariant) check(env any) (bool, error) {
	out, err := expr.Run(inv.program, env)
	if err != nil {
		return false, err
	}

	ok, _ := out.(bool)

	return ok, nil
}

// validate runs the declared invariants and the type's Validate method
// against a freshly constructed value. ptr points at the value under
// construction.
func (d *Descriptor) validate(ptr reflect.Value) error {
	for _, inv := range d.invariants {
		ok, err := inv.check(ptr.Elem().Interface())
		if err != nil {
			return &InvariantError{Type: d.name, Invariant: inv.src, Err: err}
		}

		if !ok {
			return &InvariantError{Type: d.name, Invariant: inv.src}
		}
	}

	if v, ok := ptr.Interface().(Validator); ok {
		if err := v.Validate(); err != nil {
			return ValidationFailed(d.name, err)
		}
	}

	return nil
}
