package storage

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/klauspost/compress/zstd"

	"github.com/vovakirdan/reelsim/internal/session"
)

// csvHeader matches the results table columns.
var csvHeader = []string{"id", "run_id", "bet", "lines", "total_bet", "winnings", "outcome", "timestamp"}

// WriteCSV writes rounds as CSV with a header row.
func WriteCSV(w io.Writer, rounds []RoundResult) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("storage: cannot write csv header: %w", err)
	}

	for _, r := range rounds {
		ts := ""
		if !r.Timestamp.IsZero() {
			ts = r.Timestamp.Format(session.TimestampLayout)
		}
		rec := []string{
			strconv.FormatInt(r.ID, 10),
			strconv.Itoa(r.RunID),
			strconv.Itoa(r.Bet),
			strconv.Itoa(r.Lines),
			strconv.Itoa(r.TotalBet),
			strconv.Itoa(r.Winnings),
			strconv.Itoa(r.Outcome),
			ts,
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("storage: cannot write csv row %d: %w", r.ID, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("storage: cannot flush csv: %w", err)
	}
	return nil
}

// ExportCSV dumps the results table to path. With compress set the file is
// zstd-compressed. Returns the number of rounds written.
func (s *Store) ExportCSV(path string, compress bool) (int, error) {
	rounds, err := s.Rounds()
	if err != nil {
		return 0, err
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return 0, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot create %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	if !compress {
		if err := WriteCSV(f, rounds); err != nil {
			return 0, err
		}
		if err := f.Close(); err != nil {
			return 0, fmt.Errorf("storage: cannot close %s: %w", path, err)
		}
		return len(rounds), nil
	}

	zw, err := zstd.NewWriter(f)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot create zstd writer: %w", err)
	}
	if err := WriteCSV(zw, rounds); err != nil {
		_ = zw.Close()
		return 0, err
	}
	if err := zw.Close(); err != nil {
		return 0, fmt.Errorf("storage: cannot close zstd writer: %w", err)
	}
	if err := f.Close(); err != nil {
		return 0, fmt.Errorf("storage: cannot close %s: %w", path, err)
	}
	return len(rounds), nil
}
