package storage

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zstd"
)

func TestWriteCSV(t *testing.T) {
	rounds := []RoundResult{
		{ID: 1, RunID: 1, Bet: 2, Lines: 3, TotalBet: 6, Winnings: 0, Outcome: -6},
		{ID: 2, RunID: 2, Bet: 2, Lines: 3, TotalBet: 6, Winnings: 20, Outcome: 14},
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, rounds); err != nil {
		t.Fatalf("WriteCSV() failed: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("csv read failed: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("got %d records, want header + 2", len(records))
	}
	if records[0][0] != "id" || records[0][7] != "timestamp" {
		t.Errorf("header = %v", records[0])
	}
	if records[2][6] != "14" || records[2][7] != "" {
		t.Errorf("row 2 = %v", records[2])
	}
}

func TestExportCSV(t *testing.T) {
	store := openTestStore(t)
	for i := 1; i <= 3; i++ {
		if err := store.SaveRound(record(i, 1, 5, 0)); err != nil {
			t.Fatalf("SaveRound() failed: %v", err)
		}
	}

	tests := []struct {
		name     string
		compress bool
	}{
		{"plain", false},
		{"zstd", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "out", "results.csv")

			n, err := store.ExportCSV(path, tc.compress)
			if err != nil {
				t.Fatalf("ExportCSV() failed: %v", err)
			}
			if n != 3 {
				t.Errorf("ExportCSV() wrote %d rounds, want 3", n)
			}

			data, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("ReadFile() failed: %v", err)
			}
			if tc.compress {
				dec, err := zstd.NewReader(nil)
				if err != nil {
					t.Fatalf("zstd.NewReader() failed: %v", err)
				}
				defer dec.Close()
				data, err = dec.DecodeAll(data, nil)
				if err != nil {
					t.Fatalf("DecodeAll() failed: %v", err)
				}
			}

			records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
			if err != nil {
				t.Fatalf("csv read failed: %v", err)
			}
			if len(records) != 4 {
				t.Errorf("got %d records, want 4", len(records))
			}
			if records[1][7] != "2025-01-02 03:04:05" {
				t.Errorf("timestamp = %q", records[1][7])
			}
		})
	}
}
