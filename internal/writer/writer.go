// Package writer serializes the derived tables as plain CSV files.
package writer

import (
	"crypto/sha256"
	"encoding/csv"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"campaignetl/internal/logger"
	"campaignetl/internal/models"
)

// ErrWrite wraps every filesystem failure of the writer.
var ErrWrite = errors.New("write failed")

// Output file names.
const (
	ClientFile    = "client.csv"
	CampaignFile  = "campaign.csv"
	EconomicsFile = "economics.csv"
)

// FileResult describes one written table.
type FileResult struct {
	Name   string
	Path   string
	SHA256 string
	Rows   int
	Bytes  int64
}

// Writer writes the three derived tables into an output directory.
type Writer struct {
	log *logger.Logger
}

// NewWriter creates a writer.
func NewWriter(log *logger.Logger) *Writer {
	return &Writer{log: log}
}

type recorder interface {
	Record() []string
}

func records[T recorder](items []T) [][]string {
	out := make([][]string, len(items))
	for i, item := range items {
		out[i] = item.Record()
	}

	return out
}

// Write creates dir if needed and writes client.csv, campaign.csv and
// economics.csv, replacing existing files. Results follow that order.
func (w *Writer) Write(dir string, tables *models.Tables) ([]FileResult, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("%w: create output directory %s: %w", ErrWrite, dir, err)
	}

	jobs := []struct {
		name    string
		header  []string
		records [][]string
	}{
		{ClientFile, models.ClientHeader, records(tables.Clients)},
		{CampaignFile, models.CampaignHeader, records(tables.Campaigns)},
		{EconomicsFile, models.EconomicsHeader, records(tables.Economics)},
	}

	results := make([]FileResult, 0, len(jobs))

	for _, job := range jobs {
		res, err := WriteCSV(filepath.Join(dir, job.name), job.header, job.records)
		if err != nil {
			return nil, err
		}

		w.log.Debug("Table written", "file", res.Path, "rows", res.Rows, "bytes", res.Bytes)
		results = append(results, res)
	}

	return results, nil
}

// countingWriter counts bytes passing through.
type countingWriter struct {
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	c.n += int64(len(p))
	return len(p), nil
}

// WriteCSV writes header and records to path, truncating any existing file.
func WriteCSV(path string, header []string, records [][]string) (FileResult, error) {
	f, err := os.Create(path)
	if err != nil {
		return FileResult{}, fmt.Errorf("%w: %s: %w", ErrWrite, path, err)
	}

	hash := sha256.New()
	counter := &countingWriter{}
	cw := csv.NewWriter(io.MultiWriter(f, hash, counter))

	if err := cw.Write(header); err != nil {
		f.Close()
		return FileResult{}, fmt.Errorf("%w: %s: %w", ErrWrite, path, err)
	}

	if err := cw.WriteAll(records); err != nil {
		f.Close()
		return FileResult{}, fmt.Errorf("%w: %s: %w", ErrWrite, path, err)
	}

	if err := f.Close(); err != nil {
		return FileResult{}, fmt.Errorf("%w: %s: %w", ErrWrite, path, err)
	}

	return FileResult{
		Name:   filepath.Base(path),
		Path:   path,
		SHA256: hex.EncodeToString(hash.Sum(nil)),
		Rows:   len(records),
		Bytes:  counter.n,
	}, nil
}
