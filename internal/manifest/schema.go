package manifest

import (
	"fmt"

	"plaindata/options"
)

// DefaultOutput is the file name generated code is written to when a package does not set one.
const DefaultOutput = "plaindata_gen.go"

// File is the root of a manifest.
type File struct {
	// Version of the manifest format. Only "1" is supported.
	Version string `yaml:"version"`
	// Defaults override options.Default for every type in the file.
	Defaults *FlagSet `yaml:"defaults,omitempty"`
	// Packages lists the packages to generate code for.
	Packages []Package `yaml:"packages"`
}

// Package names one Go package and the types in it.
type Package struct {
	// Path is the import path, as understood by go/packages.
	Path string `yaml:"path"`
	// Output is the generated file name inside the package directory.
	Output string `yaml:"output,omitempty"`
	// Types lists the struct types to augment.
	Types []TypeEntry `yaml:"types"`
}

// TypeEntry selects one struct type and its flags.
type TypeEntry struct {
	// Name is the type name inside the package.
	Name string `yaml:"name"`
	// Flags are switched on in addition to the defaults.
	Flags StringOrArray `yaml:"flags,omitempty"`
	// FlagSet holds explicit per-flag settings, which win over Flags.
	FlagSet `yaml:",inline"`
}

// FlagSet is a partial configuration: nil means "inherit".
type FlagSet struct {
	Eq         *bool `yaml:"eq,omitempty"`
	UnsafeHash *bool `yaml:"unsafe_hash,omitempty"`
	Order      *bool `yaml:"order,omitempty"`
	Repr       *bool `yaml:"repr,omitempty"`
	Frozen     *bool `yaml:"frozen,omitempty"`
}

// Apply returns cfg with every non-nil setting of s applied.
func (s *FlagSet) Apply(cfg options.Config) options.Config {
	if s == nil {
		return cfg
	}

	set := func(dst *bool, src *bool) {
		if src != nil {
			*dst = *src
		}
	}

	set(&cfg.Eq, s.Eq)
	set(&cfg.UnsafeHash, s.UnsafeHash)
	set(&cfg.Order, s.Order)
	set(&cfg.Repr, s.Repr)
	set(&cfg.Frozen, s.Frozen)

	return cfg
}

// Config resolves the configuration of a type entry.
func (f *File) Config(t *TypeEntry) (options.Config, error) {
	cfg := f.Defaults.Apply(options.Default())

	for _, name := range t.Flags {
		flag, err := options.ParseFlag(name)
		if err != nil {
			return cfg, fmt.Errorf("type %s: %w", t.Name, err)
		}

		cfg = cfg.With(flag)
	}

	return t.FlagSet.Apply(cfg), nil
}

// OutputFile returns the generated file name for the package.
func (p *Package) OutputFile() string {
	if p.Output == "" {
		return DefaultOutput
	}

	return p.Output
}

// TypeNames lists the package's type names in manifest order.
func (p *Package) TypeNames() []string {
	names := make([]string, len(p.Types))
	for i := range p.Types {
		names[i] = p.Types[i].Name
	}

	return names
}
