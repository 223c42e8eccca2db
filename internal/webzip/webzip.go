// Package webzip packages web build output into a deflate ZIP archive.
package webzip

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/johann/sgetools/internal/cid"
)

var (
	// ErrNoFiles is returned when Build is given an empty file list
	ErrNoFiles = errors.New("no files to archive")

	// ErrDuplicateEntry is returned when two files share a base name
	ErrDuplicateEntry = errors.New("duplicate archive entry")
)

// Entry describes one file written to the archive
type Entry struct {
	Name   string // Name inside the archive (base name of Source)
	Source string // Path the content was read from
	Size   int64  // Uncompressed size
	CID    string // CIDv1 of the uncompressed content
}

// Result is the outcome of a successful Build
type Result struct {
	Path    string
	Entries []Entry
}

// Build writes files, in order, into a new ZIP archive at output. Each file is
// stored under its base name with deflate compression. An existing archive at
// output is truncated. If writing fails part way the partial archive is left
// in place.
func Build(files []string, output string) (*Result, error) {
	if len(files) == 0 {
		return nil, ErrNoFiles
	}

	seen := make(map[string]string, len(files))
	for _, f := range files {
		name := filepath.Base(f)
		if prev, ok := seen[name]; ok {
			return nil, fmt.Errorf("%w: %s and %s are both stored as %s", ErrDuplicateEntry, prev, f, name)
		}
		seen[name] = f
	}

	out, err := os.Create(output)
	if err != nil {
		return nil, fmt.Errorf("failed to create archive: %w", err)
	}
	defer out.Close()

	zw := zip.NewWriter(out)

	result := &Result{Path: output}
	for _, f := range files {
		entry, err := addFile(zw, f)
		if err != nil {
			return nil, err
		}
		result.Entries = append(result.Entries, entry)
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("failed to finish archive: %w", err)
	}
	if err := out.Close(); err != nil {
		return nil, fmt.Errorf("failed to close archive: %w", err)
	}

	return result, nil
}

func addFile(zw *zip.Writer, path string) (Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return Entry{}, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return Entry{}, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return Entry{}, fmt.Errorf("%s is not a regular file", path)
	}

	header, err := zip.FileInfoHeader(info)
	if err != nil {
		return Entry{}, fmt.Errorf("failed to build header for %s: %w", path, err)
	}
	header.Name = filepath.Base(path)
	header.Method = zip.Deflate

	w, err := zw.CreateHeader(header)
	if err != nil {
		return Entry{}, fmt.Errorf("failed to write header for %s: %w", path, err)
	}

	// Hash while copying so each source is read only once
	contentCID, n, err := cid.Sum(io.TeeReader(f, w))
	if err != nil {
		return Entry{}, fmt.Errorf("failed to write content for %s: %w", path, err)
	}

	return Entry{
		Name:   header.Name,
		Source: path,
		Size:   n,
		CID:    contentCID,
	}, nil
}
