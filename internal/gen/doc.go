// Package gen provides deterministic Go code generation for plain data methods.
//
// Generation approach uses text/template + go/format for readable,
// reflection-free Go code. One file is written per manifest package.
//
// Codegen patterns:
//   - Equal: field comparisons joined with &&
//   - Compare and Less: lexicographic, first non-zero field result wins
//   - Hash: maphash over every field, seeded per process
//   - String and GoString: TypeName(field=value, ...)
//   - Replace and With<Field>: copy with overrides, re-validated
//   - Frozen types: getters and a New<Type> constructor
package gen
