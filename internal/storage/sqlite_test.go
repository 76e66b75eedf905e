package storage

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
	"time"

	"github.com/vovakirdan/reelsim/internal/session"
	"github.com/vovakirdan/reelsim/internal/slot"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func record(runID, lines, bet, winnings int) session.RoundRecord {
	total := lines * bet
	return session.RoundRecord{
		RunID:     runID,
		Bet:       bet,
		Lines:     lines,
		TotalBet:  total,
		Winnings:  winnings,
		Outcome:   winnings - total,
		Timestamp: time.Date(2025, 1, 2, 3, 4, 5, 0, time.Local),
	}
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsRounds(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if err := store.SaveRound(record(1, 3, 2, 10)); err != nil {
		t.Fatalf("SaveRound() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("Open() second time failed: %v", err)
	}
	defer store.Close()

	n, err := store.RoundCount()
	if err != nil {
		t.Fatalf("RoundCount() failed: %v", err)
	}
	if n != 1 {
		t.Errorf("Expected 1 round after reopen, got %d", n)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	saved := []session.RoundRecord{
		record(1, 3, 2, 0),
		record(2, 3, 2, 14),
		record(3, 1, 10, 50),
	}
	for _, rec := range saved {
		if err := store.SaveRound(rec); err != nil {
			t.Fatalf("SaveRound() failed: %v", err)
		}
	}

	rounds, err := store.Rounds()
	if err != nil {
		t.Fatalf("Rounds() failed: %v", err)
	}
	if len(rounds) != len(saved) {
		t.Fatalf("Expected %d rounds, got %d", len(saved), len(rounds))
	}

	for i, r := range rounds {
		want := saved[i]
		if r.ID != int64(i+1) {
			t.Errorf("round %d: ID = %d, want %d", i, r.ID, i+1)
		}
		if r.RunID != want.RunID || r.Bet != want.Bet || r.Lines != want.Lines ||
			r.TotalBet != want.TotalBet || r.Winnings != want.Winnings || r.Outcome != want.Outcome {
			t.Errorf("round %d = %+v, want %+v", i, r, want)
		}
		if !r.Timestamp.Equal(want.Timestamp) {
			t.Errorf("round %d: Timestamp = %v, want %v", i, r.Timestamp, want.Timestamp)
		}
	}
}

func TestStoreTimestampFormat(t *testing.T) {
	store := openTestStore(t)

	if err := store.SaveRound(record(1, 1, 1, 0)); err != nil {
		t.Fatalf("SaveRound() failed: %v", err)
	}

	var raw string
	if err := store.db.QueryRow("SELECT timestamp FROM results").Scan(&raw); err != nil {
		t.Fatalf("query timestamp failed: %v", err)
	}
	if raw != "2025-01-02 03:04:05" {
		t.Errorf("timestamp = %q, want %q", raw, "2025-01-02 03:04:05")
	}
}

func TestStoreRecentRoundsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 1; i <= 5; i++ {
		store.SaveRound(record(i, 1, 1, 0))
	}

	rounds, err := store.RecentRounds(3)
	if err != nil {
		t.Fatalf("RecentRounds() failed: %v", err)
	}
	if len(rounds) != 3 {
		t.Fatalf("Expected 3 rounds with limit, got %d", len(rounds))
	}

	// Newest first: 5, 4, 3
	if rounds[0].RunID != 5 || rounds[1].RunID != 4 || rounds[2].RunID != 3 {
		t.Errorf("Rounds not in expected order: %+v", rounds)
	}
}

func TestStoreTablesAndClear(t *testing.T) {
	store := openTestStore(t)

	store.SaveRound(record(1, 2, 3, 0))
	store.SaveRound(record(2, 2, 3, 30))

	tables, err := store.Tables()
	if err != nil {
		t.Fatalf("Tables() failed: %v", err)
	}
	if !slices.Contains(tables, "results") {
		t.Errorf("Tables() = %v, want results listed", tables)
	}

	if err := store.ClearRounds(); err != nil {
		t.Fatalf("ClearRounds() failed: %v", err)
	}

	n, err := store.RoundCount()
	if err != nil {
		t.Fatalf("RoundCount() failed: %v", err)
	}
	if n != 0 {
		t.Errorf("Expected 0 rounds after clear, got %d", n)
	}
}

func TestStoreTimestampKeepsLocalZone(t *testing.T) {
	prev := time.Local
	time.Local = time.FixedZone("UTC+3", 3*60*60)
	t.Cleanup(func() { time.Local = prev })

	store := openTestStore(t)

	stamps := []time.Time{
		time.Date(2025, 6, 1, 22, 30, 0, 0, time.Local),
		time.Date(2025, 6, 1, 22, 30, 0, 0, time.UTC),
	}
	for i, ts := range stamps {
		rec := record(i+1, 1, 1, 0)
		rec.Timestamp = ts
		if err := store.SaveRound(rec); err != nil {
			t.Fatalf("SaveRound() failed: %v", err)
		}
	}

	rounds, err := store.Rounds()
	if err != nil {
		t.Fatalf("Rounds() failed: %v", err)
	}
	for i, r := range rounds {
		if !r.Timestamp.Equal(stamps[i]) {
			t.Errorf("round %d: Timestamp = %v, want %v", i, r.Timestamp, stamps[i])
		}
	}

	var raw string
	if err := store.db.QueryRow("SELECT timestamp FROM results WHERE run_id = 2").Scan(&raw); err != nil {
		t.Fatalf("query timestamp failed: %v", err)
	}
	if raw != "2025-06-02 01:30:00" {
		t.Errorf("timestamp = %q, want local wall clock", raw)
	}
}

func TestStoreAsSessionSink(t *testing.T) {
	store := openTestStore(t)

	s, err := session.New(slot.DefaultMachine(), 100, session.Options{Saver: store})
	if err != nil {
		t.Fatalf("session.New() failed: %v", err)
	}

	for range 4 {
		if _, err := s.PlayRound(1, 1); err != nil {
			t.Fatalf("PlayRound() failed: %v", err)
		}
	}

	rounds, err := store.Rounds()
	if err != nil {
		t.Fatalf("Rounds() failed: %v", err)
	}
	if len(rounds) != 4 {
		t.Fatalf("Expected 4 rounds, got %d", len(rounds))
	}

	sum := 0
	for i, r := range rounds {
		if r.RunID != i+1 {
			t.Errorf("round %d: RunID = %d", i, r.RunID)
		}
		sum += r.Outcome
	}
	if s.Balance() != 100+sum {
		t.Errorf("Balance = %d, want %d", s.Balance(), 100+sum)
	}
}

func TestParseTimestamp(t *testing.T) {
	want := time.Date(2024, 12, 31, 23, 59, 0, 0, time.Local)

	tests := []struct {
		name string
		in   any
		want time.Time
	}{
		{"time", want, want},
		{"string", "2024-12-31 23:59:00", want},
		{"bytes", []byte("2024-12-31 23:59:00"), want},
		{"garbage", "yesterday", time.Time{}},
		{"nil", nil, time.Time{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := parseTimestamp(tc.in); !got.Equal(tc.want) {
				t.Errorf("parseTimestamp(%v) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}
