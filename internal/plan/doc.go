// Package plan turns a manifest and an analyzed type graph into a Plan
// consumed by code generation.
//
// Planning pipeline:
//  1. Analyze packages → type graph
//  2. Load the YAML manifest → validate
//  3. For each manifest type:
//     - Resolve its configuration (defaults, flags, explicit settings)
//     - Check it is a struct and that no generated method already exists
//     - Pick an equality, order and hash strategy for every field
//  4. Emit diagnostics (errors stop generation, warnings flag hashing
//     that will fail at run time)
package plan
