// Package testutil builds input fixtures for tests.
package testutil

import (
	"archive/zip"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// RawHeader is the header line of a well-formed input payload.
const RawHeader = "client_id,age,job,marital,education,credit_default,mortgage,number_contacts," +
	"contact_duration,previous_campaign_contacts,previous_outcome,campaign_outcome,day,month," +
	"cons_price_idx,euribor_three_months"

// Entry is one file inside a fixture archive.
type Entry struct {
	Name    string
	Content string
}

// WriteArchive writes a zip archive at dir/name holding entries in order
// and returns its path.
func WriteArchive(t *testing.T, dir, name string, entries ...Entry) string {
	t.Helper()

	path := filepath.Join(dir, name)

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Failed to create archive: %v", err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)

	for _, e := range entries {
		w, createErr := zw.Create(e.Name)
		if createErr != nil {
			t.Fatalf("Failed to add entry %s: %v", e.Name, createErr)
		}

		if _, writeErr := w.Write([]byte(e.Content)); writeErr != nil {
			t.Fatalf("Failed to write entry %s: %v", e.Name, writeErr)
		}
	}

	if err := zw.Close(); err != nil {
		t.Fatalf("Failed to finalize archive: %v", err)
	}

	return path
}

// WriteCSVArchive writes a single-entry archive whose payload is RawHeader
// followed by rows.
func WriteCSVArchive(t *testing.T, dir, name string, rows ...string) string {
	t.Helper()

	lines := append([]string{RawHeader}, rows...)
	entry := strings.TrimSuffix(name, ".zip")

	return WriteArchive(t, dir, name, Entry{Name: entry, Content: strings.Join(lines, "\n") + "\n"})
}
