// Package discovery locates fastplong per-sample JSON reports under a results
// directory and derives a sample identifier from each filename.
package discovery

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ReportSuffix is the filename suffix of a fastplong per-sample JSON report.
// The portion of the filename before the suffix is the sample identifier.
const ReportSuffix = "_fastplong_report.json"

// ReportFile is one discovered per-sample report.
type ReportFile struct {
	SampleID string // filename prefix before ReportSuffix, preserved verbatim
	Path     string // absolute path to the JSON report
}

// NotFoundError indicates the results directory is missing, is not a
// directory, or contains no matching report files.
type NotFoundError struct {
	Root string
	Err  error // underlying cause, nil when the directory simply had no matches
}

func (e *NotFoundError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("results directory %s: %v", e.Root, e.Err)
	}
	return fmt.Sprintf("no *%s files found under %s", ReportSuffix, e.Root)
}

func (e *NotFoundError) Unwrap() error { return e.Err }

// Discover finds all *_fastplong_report.json files under root. When recursive
// is false only the top level of root is scanned. The result is ordered by
// base filename, then full path, so repeated runs over the same tree produce
// the same report.
func Discover(root string, recursive bool) ([]ReportFile, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving root path: %w", err)
	}

	info, err := os.Stat(absRoot)
	if err != nil {
		return nil, &NotFoundError{Root: absRoot, Err: err}
	}
	if !info.IsDir() {
		return nil, &NotFoundError{Root: absRoot, Err: fmt.Errorf("not a directory")}
	}

	var files []ReportFile
	if recursive {
		files, err = walkTree(absRoot)
	} else {
		files, err = scanTopLevel(absRoot)
	}
	if err != nil {
		return nil, err
	}

	if len(files) == 0 {
		return nil, &NotFoundError{Root: absRoot}
	}

	sort.Slice(files, func(i, j int) bool {
		bi, bj := filepath.Base(files[i].Path), filepath.Base(files[j].Path)
		if bi != bj {
			return bi < bj
		}
		return files[i].Path < files[j].Path
	})

	return files, nil
}

func walkTree(absRoot string) ([]ReportFile, error) {
	var files []ReportFile

	err := filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // skip inaccessible entries
		}

		// Skip hidden directories, but not the root itself
		if d.IsDir() && strings.HasPrefix(d.Name(), ".") && path != absRoot {
			return fs.SkipDir
		}

		if !d.IsDir() && strings.HasSuffix(d.Name(), ReportSuffix) {
			files = append(files, newReportFile(path))
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", absRoot, err)
	}

	return files, nil
}

func scanTopLevel(absRoot string) ([]ReportFile, error) {
	entries, err := os.ReadDir(absRoot)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", absRoot, err)
	}

	var files []ReportFile
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ReportSuffix) {
			files = append(files, newReportFile(filepath.Join(absRoot, e.Name())))
		}
	}
	return files, nil
}

// newReportFile derives the sample id by stripping ReportSuffix exactly once.
func newReportFile(path string) ReportFile {
	return ReportFile{
		SampleID: strings.TrimSuffix(filepath.Base(path), ReportSuffix),
		Path:     path,
	}
}
