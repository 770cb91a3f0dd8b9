package gen

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// StaleFile describes a generated file whose content on disk differs from
// what the generator produces now.
type StaleFile struct {
	// Path is the file location.
	Path string
	// Missing is true if the file does not exist.
	Missing bool
	// Diff is a line diff from the file on disk to the expected content.
	Diff string
}

// Check compares files with their content on disk and returns the stale ones.
func Check(files []GeneratedFile) ([]StaleFile, error) {
	var stale []StaleFile

	for _, file := range files {
		path := file.Path()

		existing, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			stale = append(stale, StaleFile{Path: path, Missing: true})
			continue
		}

		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}

		if string(existing) == string(file.Content) {
			continue
		}

		stale = append(stale, StaleFile{
			Path: path,
			Diff: LineDiff(string(existing), string(file.Content)),
		})
	}

	return stale, nil
}

// LineDiff renders the line changes from old to updated, prefixing removed
// lines with "-" and added lines with "+". Unchanged lines are omitted.
func LineDiff(old, updated string) string {
	diffCfg := diffpatch.New()
	a, b, lines := diffCfg.DiffLinesToChars(old, updated)
	diffs := diffCfg.DiffCharsToLines(diffCfg.DiffMain(a, b, false), lines)

	var sb strings.Builder

	for i := range diffs {
		diff := &diffs[i]

		var prefix string

		switch diff.Type {
		case diffpatch.DiffDelete:
			prefix = "-"
		case diffpatch.DiffInsert:
			prefix = "+"
		case diffpatch.DiffEqual:
			continue
		}

		for _, line := range strings.SplitAfter(diff.Text, "\n") {
			if line == "" {
				continue
			}

			sb.WriteString(prefix)
			sb.WriteString(line)

			if !strings.HasSuffix(line, "\n") {
				sb.WriteString("\n")
			}
		}
	}

	return sb.String()
}
