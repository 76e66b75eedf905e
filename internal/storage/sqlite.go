// Package storage provides SQLite-based persistence for settled rounds.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/reelsim/internal/session"
)

// Store manages the SQLite database connection for round persistence.
type Store struct {
	db *sql.DB
}

// RoundResult is one row of the results table.
type RoundResult struct {
	ID        int64
	RunID     int
	Bet       int
	Lines     int
	TotalBet  int
	Winnings  int
	Outcome   int
	Timestamp time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the results table if it doesn't exist.
// Column names and types are read by external analytics and must not change.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id INTEGER,
			bet INTEGER,
			lines INTEGER,
			total_bet INTEGER,
			winnings INTEGER,
			outcome INTEGER,
			timestamp TEXT
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRound appends one settled round to the results table.
func (s *Store) SaveRound(rec session.RoundRecord) error {
	_, err := s.db.Exec(
		`INSERT INTO results (run_id, bet, lines, total_bet, winnings, outcome, timestamp)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.RunID,
		rec.Bet,
		rec.Lines,
		rec.TotalBet,
		rec.Winnings,
		rec.Outcome,
		rec.Timestamp.In(time.Local).Format(session.TimestampLayout),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save round: %w", err)
	}
	return nil
}

// Ensure Store implements RoundSaver
var _ session.RoundSaver = (*Store)(nil)

// Rounds retrieves every stored round ordered by id.
func (s *Store) Rounds() ([]RoundResult, error) {
	return s.queryRounds(
		`SELECT id, run_id, bet, lines, total_bet, winnings, outcome, timestamp
		 FROM results
		 ORDER BY id`,
	)
}

// RecentRounds retrieves the most recent rounds, newest first.
func (s *Store) RecentRounds(limit int) ([]RoundResult, error) {
	if limit <= 0 {
		limit = 20
	}

	return s.queryRounds(
		`SELECT id, run_id, bet, lines, total_bet, winnings, outcome, timestamp
		 FROM results
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
}

func (s *Store) queryRounds(query string, args ...any) ([]RoundResult, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rounds: %w", err)
	}
	defer rows.Close()

	var results []RoundResult
	for rows.Next() {
		var r RoundResult
		var runID, bet, lines, totalBet, win, outcome sql.NullInt64
		var ts any
		if err := rows.Scan(&r.ID, &runID, &bet, &lines, &totalBet, &win, &outcome, &ts); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		r.RunID = int(runID.Int64)
		r.Bet = int(bet.Int64)
		r.Lines = int(lines.Int64)
		r.TotalBet = int(totalBet.Int64)
		r.Winnings = int(win.Int64)
		r.Outcome = int(outcome.Int64)
		r.Timestamp = parseTimestamp(ts)

		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}

// parseTimestamp handles both time.Time and string column values.
// Text timestamps carry no zone and are read as local time, matching
// SaveRound. Unparseable values yield the zero time.
func parseTimestamp(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.ParseInLocation(session.TimestampLayout, v, time.Local); err == nil {
			return parsed
		}
	case []byte:
		if parsed, err := time.ParseInLocation(session.TimestampLayout, string(v), time.Local); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// RoundCount returns the number of stored rounds.
func (s *Store) RoundCount() (int, error) {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM results").Scan(&n); err != nil {
		return 0, fmt.Errorf("storage: cannot count rounds: %w", err)
	}
	return n, nil
}

// Tables lists the table names in the database, sorted by name.
func (s *Store) Tables() ([]string, error) {
	rows, err := s.db.Query(
		`SELECT name FROM sqlite_master
		 WHERE type = 'table'
		 ORDER BY name`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot list tables: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		names = append(names, name)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return names, nil
}

// ClearRounds deletes every stored round.
func (s *Store) ClearRounds() error {
	_, err := s.db.Exec("DELETE FROM results")
	if err != nil {
		return fmt.Errorf("storage: cannot clear rounds: %w", err)
	}
	return nil
}
