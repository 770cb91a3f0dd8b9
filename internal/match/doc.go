// Package match suggests the name a caller most likely meant when a field or
// type name is misspelled.
//
// Names are compared after normalization, so "unit_price", "unitPrice" and
// "UnitPrice" are the same name, and the nearest remaining candidate by
// Levenshtein distance wins if it is close enough to be a typo.
package match
