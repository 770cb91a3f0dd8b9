package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"plaindata/options"
)

const sample = `
version: "1"
defaults:
  repr: false
packages:
  - path: plaindata/examples/geometry
    types:
      - name: Point
        flags: [order, frozen]
      - name: Segment
        unsafe_hash: true
      - name: Label
        flags: frozen
        eq: false
        order: false
  - path: plaindata/examples/other
    output: other_gen.go
    types:
      - name: Thing
`

func TestParse(t *testing.T) {
	f, err := Parse([]byte(sample))
	require.NoError(t, err)

	assert.Equal(t, "1", f.Version)
	require.Len(t, f.Packages, 2)

	geo := f.Packages[0]
	assert.Equal(t, "plaindata/examples/geometry", geo.Path)
	assert.Equal(t, DefaultOutput, geo.OutputFile())
	assert.Equal(t, []string{"Point", "Segment", "Label"}, geo.TypeNames())
	assert.True(t, geo.Types[0].Flags.Contains("order"))
	assert.Equal(t, StringOrArray{"frozen"}, geo.Types[2].Flags)

	assert.Equal(t, "other_gen.go", f.Packages[1].OutputFile())
}

func TestConfigResolution(t *testing.T) {
	f, err := Parse([]byte(sample))
	require.NoError(t, err)

	types := f.Packages[0].Types

	tests := []struct {
		name     string
		entry    *TypeEntry
		expected options.Config
	}{
		{"flags add to defaults", &types[0], options.Config{Eq: true, Order: true, Frozen: true}},
		{"explicit setting", &types[1], options.Config{Eq: true, UnsafeHash: true}},
		{"explicit settings win over flags", &types[2], options.Config{Frozen: true}},
		{"defaults only", &f.Packages[1].Types[0], options.Config{Eq: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := f.Config(tt.entry)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg)
		})
	}
}

func TestConfigUnknownFlag(t *testing.T) {
	f := &File{}
	_, err := f.Config(&TypeEntry{Name: "T", Flags: StringOrArray{"sorted"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown flag "sorted"`)
}

func TestParseErrors(t *testing.T) {
	_, err := Parse([]byte("packages: {path: 1"))
	assert.Error(t, err)

	_, err = Parse([]byte("packages:\n  - path: p\n    types:\n      - name: T\n        flags: {a: b}\n"))
	assert.Error(t, err)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestWriteAndLoadFile(t *testing.T) {
	frozen := true
	f := &File{
		Version: "1",
		Packages: []Package{{
			Path:  "example.com/p",
			Types: []TypeEntry{{Name: "T", Flags: StringOrArray{"order"}, FlagSet: FlagSet{Frozen: &frozen}}},
		}},
	}

	path := filepath.Join(t.TempDir(), "plaindata.yaml")
	require.NoError(t, WriteFile(f, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "flags: order")
	assert.Contains(t, string(data), "frozen: true")

	loaded, err := LoadFile(path)
	require.NoError(t, err)

	cfg, err := loaded.Config(&loaded.Packages[0].Types[0])
	require.NoError(t, err)
	assert.Equal(t, options.Config{Eq: true, Repr: true, Order: true, Frozen: true}, cfg)
}
