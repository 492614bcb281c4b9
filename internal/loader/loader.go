// Package loader reads the zipped CSV extracts of a batch into a single table.
package loader

import (
	"archive/zip"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"campaignetl/internal/logger"
	"campaignetl/internal/models"
)

// Loader errors. Both are fatal for the batch.
var (
	ErrArchiveRead = errors.New("archive read failed")
	ErrParse       = errors.New("csv parse failed")
)

const utf8BOM = "\ufeff"

// Loader discovers archives in a directory and concatenates their CSV payloads.
type Loader struct {
	log     *logger.Logger
	pattern string
}

// NewLoader creates a loader matching archive file names against pattern.
func NewLoader(pattern string, log *logger.Logger) *Loader {
	return &Loader{
		log:     log,
		pattern: pattern,
	}
}

// Discover returns the regular files in dir matching the archive pattern,
// in lexical order.
func (l *Loader) Discover(dir string) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: input directory: %w", ErrArchiveRead, err)
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("%w: input path %s is not a directory", ErrArchiveRead, dir)
	}

	matches, err := filepath.Glob(filepath.Join(dir, l.pattern))
	if err != nil {
		return nil, fmt.Errorf("%w: pattern %q: %w", ErrArchiveRead, l.pattern, err)
	}

	var archives []string

	for _, m := range matches {
		fi, statErr := os.Stat(m)
		if statErr != nil || !fi.Mode().IsRegular() {
			continue
		}

		archives = append(archives, m)
	}

	return archives, nil
}

// Load reads every archive in dir and returns the concatenated table
// together with the archive paths in the order they were read.
func (l *Loader) Load(dir string) (*models.Table, []string, error) {
	archives, err := l.Discover(dir)
	if err != nil {
		return nil, nil, err
	}

	if len(archives) == 0 {
		return nil, nil, fmt.Errorf("%w: no archives matching %q in %s", ErrArchiveRead, l.pattern, dir)
	}

	tbl, err := l.LoadArchives(archives)
	if err != nil {
		return nil, nil, err
	}

	return tbl, archives, nil
}

// LoadArchives reads the given archives in order and concatenates them.
// Archive order and in-archive row order are preserved.
func (l *Loader) LoadArchives(paths []string) (*models.Table, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("%w: no archives to load", ErrArchiveRead)
	}

	var combined *models.Table

	for _, path := range paths {
		tbl, err := l.LoadArchive(path)
		if err != nil {
			return nil, err
		}

		if combined == nil {
			combined = tbl
			continue
		}

		combined.Concat(tbl)
	}

	l.log.Debug("Batch loaded", "archives", len(paths), "rows", combined.Len())

	return combined, nil
}

// LoadArchive parses the first entry of the zip archive at path as CSV.
// The entry is decompressed in memory only.
func (l *Loader) LoadArchive(path string) (*models.Table, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrArchiveRead, path, err)
	}
	defer zr.Close()

	if len(zr.File) == 0 {
		return nil, fmt.Errorf("%w: %s: archive has no entries", ErrArchiveRead, path)
	}

	entry := zr.File[0]

	rc, err := entry.Open()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: open %s: %w", ErrArchiveRead, path, entry.Name, err)
	}
	defer rc.Close()

	tbl, err := ReadCSV(rc)
	if err != nil {
		return nil, fmt.Errorf("%s!%s: %w", path, entry.Name, err)
	}

	l.log.Debug("Archive read", "path", path, "entry", entry.Name, "rows", tbl.Len())

	return tbl, nil
}

// ReadCSV parses a header row followed by data rows.
// Every row must have as many fields as the header.
func ReadCSV(r io.Reader) (*models.Table, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty payload", ErrParse)
		}

		return nil, fmt.Errorf("%w: header: %w", ErrParse, err)
	}

	header[0] = strings.TrimPrefix(header[0], utf8BOM)

	seen := make(map[string]bool, len(header))
	for _, name := range header {
		if seen[name] {
			return nil, fmt.Errorf("%w: duplicate column %q in header", ErrParse, name)
		}

		seen[name] = true
	}

	tbl := models.NewTable(header)

	for {
		rec, readErr := cr.Read()
		if errors.Is(readErr, io.EOF) {
			break
		}

		if readErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrParse, readErr)
		}

		tbl.AppendRow(rec)
	}

	return tbl, nil
}
