package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/Kent-Taylor/Tree-services-directory/models"
)

// SnapshotStore persists canonical catalog snapshots to SQLite. The snapshot
// is a plain export of the normalized records, one row per business, taken
// after each successful refresh.
type SnapshotStore struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSnapshotStore opens (or creates) the snapshot database at dbPath.
func NewSnapshotStore(dbPath string) (*SnapshotStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA busy_timeout=5000",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return nil, fmt.Errorf("setting pragma %q: %w", p, err)
		}
	}

	if err := createSchema(db); err != nil {
		return nil, err
	}

	return &SnapshotStore{db: db}, nil
}

func createSchema(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS businesses (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		score REAL,
		review_count INTEGER,
		area TEXT,
		tags TEXT,
		notes TEXT,
		hours_today TEXT,
		website TEXT,
		phone TEXT,
		map_url TEXT,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_businesses_area ON businesses(area);
	CREATE INDEX IF NOT EXISTS idx_businesses_score ON businesses(score);
	`
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}

// ReplaceAll swaps the stored snapshot for the given records in one
// transaction.
func (s *SnapshotStore) ReplaceAll(records []models.BusinessRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning snapshot tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM businesses"); err != nil {
		return fmt.Errorf("clearing snapshot: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO businesses (id, name, score, review_count, area, tags, notes, hours_today, website, phone, map_url)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing snapshot insert: %w", err)
	}
	defer stmt.Close()

	for i := range records {
		r := &records[i]
		tags, err := json.Marshal(r.Tags)
		if err != nil {
			return fmt.Errorf("marshaling tags for %s: %w", r.Name, err)
		}
		if _, err := stmt.Exec(r.ID, r.Name, r.Score, r.ReviewCount, r.Area,
			string(tags), r.Notes, r.HoursToday, r.Website, r.Phone, r.MapURL); err != nil {
			return fmt.Errorf("inserting %s: %w", r.Name, err)
		}
	}

	return tx.Commit()
}

// LoadAll reads the stored snapshot back, in insertion order.
func (s *SnapshotStore) LoadAll() ([]models.BusinessRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.Query(`
		SELECT id, name, score, review_count, area, tags, notes, hours_today, website, phone, map_url
		FROM businesses ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("querying snapshot: %w", err)
	}
	defer rows.Close()

	var records []models.BusinessRecord
	for rows.Next() {
		var r models.BusinessRecord
		var tags string
		if err := rows.Scan(&r.ID, &r.Name, &r.Score, &r.ReviewCount, &r.Area,
			&tags, &r.Notes, &r.HoursToday, &r.Website, &r.Phone, &r.MapURL); err != nil {
			return nil, fmt.Errorf("scanning snapshot row: %w", err)
		}
		if tags != "" {
			if err := json.Unmarshal([]byte(tags), &r.Tags); err != nil {
				return nil, fmt.Errorf("unmarshaling tags for %s: %w", r.Name, err)
			}
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// Close releases the underlying database handle.
func (s *SnapshotStore) Close() error {
	return s.db.Close()
}
