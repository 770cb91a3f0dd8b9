// Package manifest defines the YAML file that tells the generator which
// struct types get plain data methods and with which flags.
//
// Example:
//
//	version: "1"
//	defaults: {eq: true, repr: true}
//	packages:
//	  - path: plaindata/examples/geometry
//	    types:
//	      - name: Point
//	        flags: [order, frozen]
//	      - name: Segment
//	        unsafe_hash: true
//
// A type's configuration starts from options.Default, is overridden by the
// file's defaults, then gains the listed flags, and finally takes the
// type's explicit per-flag settings.
package manifest
