package pipeline

import (
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"campaignetl/internal/config"
	"campaignetl/internal/loader"
	"campaignetl/internal/logger"
	"campaignetl/internal/normalizer"
	"campaignetl/internal/testutil"
	"campaignetl/internal/writer"
)

const scenarioRow = "1,30,admin.,single,university.degree,no,yes,2,100,0,nonexistent,yes,15,may,93.2,4.8"

func testConfig(t *testing.T) *config.Config {
	t.Helper()

	root := t.TempDir()
	cfg := config.Default()
	cfg.Pipeline.InputDir = filepath.Join(root, "input")
	cfg.Pipeline.OutputDir = filepath.Join(root, "output")

	if err := os.MkdirAll(cfg.Pipeline.InputDir, 0755); err != nil {
		t.Fatal(err)
	}

	return cfg
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("Failed to open %s: %v", path, err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("Failed to parse %s: %v", path, err)
	}

	return records
}

func TestRun_SingleRowScenario(t *testing.T) {
	cfg := testConfig(t)
	testutil.WriteCSVArchive(t, cfg.Pipeline.InputDir, "bank-marketing.csv.zip", scenarioRow)

	res, err := Run(cfg, logger.Discard())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if res.Archives != 1 || res.RawRows != 1 || len(res.Files) != 3 {
		t.Errorf("unexpected result %+v", res)
	}

	if res.RunID == "" {
		t.Error("expected a run id")
	}

	tests := []struct {
		file   string
		header []string
		row    []string
	}{
		{writer.ClientFile,
			[]string{"client_id", "age", "job", "marital", "education", "credit_default", "mortgage"},
			[]string{"1", "30", "admin", "single", "university_degree", "0", "1"}},
		{writer.CampaignFile,
			[]string{"client_id", "number_contacts", "contact_duration", "previous_campaign_contacts", "previous_outcome", "campaign_outcome", "last_contact_date"},
			[]string{"1", "2", "100", "0", "0", "1", "2022-05-15"}},
		{writer.EconomicsFile,
			[]string{"client_id", "cons_price_idx", "euribor_three_months"},
			[]string{"1", "93.2", "4.8"}},
	}

	for _, tt := range tests {
		records := readCSV(t, filepath.Join(cfg.Pipeline.OutputDir, tt.file))
		if len(records) != 2 {
			t.Fatalf("%s: expected header + 1 row, got %d lines", tt.file, len(records))
		}

		if !slices.Equal(records[0], tt.header) {
			t.Errorf("%s header = %v, want %v", tt.file, records[0], tt.header)
		}

		if !slices.Equal(records[1], tt.row) {
			t.Errorf("%s row = %v, want %v", tt.file, records[1], tt.row)
		}
	}

	entries, err := os.ReadDir(cfg.Pipeline.OutputDir)
	if err != nil {
		t.Fatal(err)
	}

	if len(entries) != 3 {
		t.Errorf("output directory should hold exactly 3 files, got %d", len(entries))
	}
}

func TestRun_DuplicatesAcrossArchives(t *testing.T) {
	cfg := testConfig(t)
	testutil.WriteCSVArchive(t, cfg.Pipeline.InputDir, "a.csv.zip", scenarioRow)
	testutil.WriteCSVArchive(t, cfg.Pipeline.InputDir, "b.csv.zip",
		"1,30,services,single,unknown,no,no,3,50,0,success,no,5,jan,92.0,1.1")

	res, err := Run(cfg, logger.Discard())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if res.Archives != 2 || res.RawRows != 2 {
		t.Errorf("expected 2 archives and 2 rows, got %d and %d", res.Archives, res.RawRows)
	}

	for _, f := range res.Files {
		if f.Rows != res.RawRows {
			t.Errorf("%s has %d rows, want %d", f.Name, f.Rows, res.RawRows)
		}

		records := readCSV(t, f.Path)
		if len(records) != 3 || records[1][0] != "1" || records[2][0] != "1" {
			t.Errorf("%s should keep both client_id=1 rows in order: %v", f.Name, records)
		}
	}

	clients := readCSV(t, filepath.Join(cfg.Pipeline.OutputDir, writer.ClientFile))
	if clients[2][4] != "" {
		t.Errorf("unknown education should be written as empty, got %q", clients[2][4])
	}

	campaigns := readCSV(t, filepath.Join(cfg.Pipeline.OutputDir, writer.CampaignFile))
	if campaigns[2][4] != "1" || campaigns[2][6] != "2022-01-05" {
		t.Errorf("unexpected second campaign row %v", campaigns[2])
	}
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(t *testing.T, cfg *config.Config)
		wantErr error
	}{
		{
			name:    "no archives",
			setup:   func(t *testing.T, cfg *config.Config) {},
			wantErr: loader.ErrArchiveRead,
		},
		{
			name: "missing input dir",
			setup: func(t *testing.T, cfg *config.Config) {
				cfg.Pipeline.InputDir = filepath.Join(cfg.Pipeline.InputDir, "absent")
			},
			wantErr: loader.ErrArchiveRead,
		},
		{
			name: "malformed csv",
			setup: func(t *testing.T, cfg *config.Config) {
				testutil.WriteArchive(t, cfg.Pipeline.InputDir, "bad.csv.zip",
					testutil.Entry{Name: "bad.csv", Content: testutil.RawHeader + "\n1,2\n"})
			},
			wantErr: loader.ErrParse,
		},
		{
			name: "missing column",
			setup: func(t *testing.T, cfg *config.Config) {
				testutil.WriteArchive(t, cfg.Pipeline.InputDir, "narrow.csv.zip",
					testutil.Entry{Name: "narrow.csv", Content: "client_id,age\n1,30\n"})
			},
			wantErr: normalizer.ErrMissingColumn,
		},
		{
			name: "impossible date",
			setup: func(t *testing.T, cfg *config.Config) {
				testutil.WriteCSVArchive(t, cfg.Pipeline.InputDir, "feb.csv.zip",
					"5,40,admin.,single,basic.4y,no,no,1,10,0,nonexistent,no,31,feb,93.0,4.0")
			},
			wantErr: normalizer.ErrInvalidDate,
		},
		{
			name: "output blocked",
			setup: func(t *testing.T, cfg *config.Config) {
				testutil.WriteCSVArchive(t, cfg.Pipeline.InputDir, "ok.csv.zip", scenarioRow)
				if err := os.WriteFile(cfg.Pipeline.OutputDir, []byte("x"), 0644); err != nil {
					t.Fatal(err)
				}
			},
			wantErr: writer.ErrWrite,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(t)
			tt.setup(t, cfg)

			res, err := Run(cfg, logger.Discard())
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Run() error = %v, want %v", err, tt.wantErr)
			}

			if res != nil {
				t.Error("expected nil result on failure")
			}
		})
	}
}

func TestNew_InvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Pipeline.AssumedYear = 0

	if _, err := New(cfg, logger.Discard()); !errors.Is(err, config.ErrInvalidAssumedYear) {
		t.Fatalf("expected ErrInvalidAssumedYear, got %v", err)
	}
}
