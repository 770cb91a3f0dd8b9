// Package plain derives value semantics for plain data structs.
//
// Augment inspects a struct type once and returns a Type that carries the
// ordered field list, the configuration and the derived operations:
//
//	var PointType = plain.MustAugment[Point](options.Default().With(options.FlagOrder | options.FlagFrozen))
//
//	p := PointType.MustNew(Point{X: 1, Y: 2})
//	q, _ := p.Replace(map[string]any{"Y": 9})
//	p.Equal(q)           // false
//	p.Less(q)            // true, nil
//	p.Set("X", 5)        // *FrozenAttributeError
//	p.String()           // Point(X=1, Y=2)
//
// Field order is the declaration order of the struct's exported fields, with
// embedded structs flattened in place. Equality, ordering, hashing and
// representation all walk the fields in that order.
//
// Hashing follows the equality/mutability discipline: a derived hash exists
// when unsafe_hash is set or when the type has eq and is frozen; mutable
// types with eq refuse to hash; types without eq hash by identity.
//
// The descriptor lives on the Type value itself. There is no registry keyed
// by Go type, so augmenting the same struct twice yields two unrelated
// augmented types; a struct that already declares one of the derived methods
// (Equal, Compare, Hash, String) is rejected.
package plain
