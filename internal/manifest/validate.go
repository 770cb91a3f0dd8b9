package manifest

import (
	"fmt"
	"path/filepath"

	"plaindata/internal/diagnostic"
)

const (
	codeVersion       = "unsupported-version"
	codeNoPackages    = "no-packages"
	codeEmptyPath     = "empty-package-path"
	codeDuplicatePkg  = "duplicate-package"
	codeEmptyTypeName = "empty-type-name"
	codeDuplicateType = "duplicate-type"
	codeBadOutput     = "bad-output"
)

// Validate checks the manifest on its own, before any package is loaded:
// supported version, unique packages and types, known flag spellings and
// coherent configurations.
func Validate(f *File) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if f == nil {
		res.AddError("manifest-is-nil", "manifest is nil", "", "")
		return res
	}

	if f.Version != "1" {
		res.AddError(codeVersion, fmt.Sprintf("unsupported manifest version %q", f.Version), "", "")
	}

	if len(f.Packages) == 0 {
		res.AddError(codeNoPackages, "manifest lists no packages", "", "")
	}

	seenPkgs := map[string]struct{}{}

	for i := range f.Packages {
		pkg := &f.Packages[i]

		if pkg.Path == "" {
			res.AddError(codeEmptyPath, fmt.Sprintf("package #%d has no path", i+1), "", "")
			continue
		}

		if _, ok := seenPkgs[pkg.Path]; ok {
			res.AddError(codeDuplicatePkg, fmt.Sprintf("duplicate package %q", pkg.Path), "", pkg.Path)
			continue
		}

		seenPkgs[pkg.Path] = struct{}{}

		if out := pkg.OutputFile(); filepath.Base(out) != out || filepath.Ext(out) != ".go" {
			res.AddError(codeBadOutput, fmt.Sprintf("output %q must be a .go file name without directories", out), "", pkg.Path)
		}

		validateTypes(res, f, pkg)
	}

	return res
}

func validateTypes(res *diagnostic.Diagnostics, f *File, pkg *Package) {
	seenTypes := map[string]struct{}{}

	for i := range pkg.Types {
		t := &pkg.Types[i]

		if t.Name == "" {
			res.AddError(codeEmptyTypeName, fmt.Sprintf("type #%d has no name", i+1), "", pkg.Path)
			continue
		}

		if _, ok := seenTypes[t.Name]; ok {
			res.AddError(codeDuplicateType, fmt.Sprintf("duplicate type %q", t.Name), t.Name, pkg.Path)
			continue
		}

		seenTypes[t.Name] = struct{}{}

		cfg, err := f.Config(t)
		if err != nil {
			res.AddError(diagnostic.CodeInvalidConfig, err.Error(), t.Name, pkg.Path)
			continue
		}

		if err := cfg.Validate(); err != nil {
			res.AddError(diagnostic.CodeInvalidConfig, err.Error(), t.Name, pkg.Path)
		}
	}
}
