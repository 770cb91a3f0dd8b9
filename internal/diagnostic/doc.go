// Package diagnostic provides structured warnings and errors for the
// plain data generator.
//
// Key capabilities:
//   - Planning errors that stop generation (unknown types, clashing methods)
//   - Warnings about hashing policy and unhashable fields
//   - Informational notes on the strategy chosen for each field
package diagnostic
