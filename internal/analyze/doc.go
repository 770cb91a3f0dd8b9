// Package analyze provides package loading and type graph extraction.
//
// It uses golang.org/x/tools/go/packages with go/types to build an
// in-memory model of the named types in the packages a manifest lists.
//
// Key types:
//   - TypeID: package import path + type name
//   - TypeInfo: describes kind (struct/basic/named/pointer/slice/...)
//   - FieldInfo: one plain data field in declaration order, with embedded
//     structs flattened the way Go promotes their fields
//   - MethodInfo: a method of a named type and the file declaring it
package analyze
