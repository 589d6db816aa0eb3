package history

import (
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/doeshing/fontset/internal/domain"
	"github.com/doeshing/fontset/internal/ports"
)

// timestampLayout has a fixed width so ORDER BY timestamp sorts chronologically.
const timestampLayout = "2006-01-02T15:04:05.000000000Z07:00"

// SQLiteStore persists history in a SQLite database.
type SQLiteStore struct {
	db   *sql.DB
	path string
	mu   sync.Mutex
}

// NewSQLiteStore creates (or opens) the database at path. When the database
// cannot be opened the store falls back to a JSONL file next to it.
func NewSQLiteStore(path string) *SQLiteStore {
	_ = os.MkdirAll(filepath.Dir(path), domain.DirectoryPermissions)
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return &SQLiteStore{path: path}
	}
	store := &SQLiteStore{db: db, path: path}
	if err := store.init(); err != nil {
		_ = db.Close()
		return &SQLiteStore{path: path}
	}
	return store
}

func (s *SQLiteStore) init() error {
	if s.db == nil {
		return os.ErrInvalid
	}
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		timestamp TEXT,
		font TEXT,
		ligatures TEXT,
		apps TEXT,
		failed_apps TEXT,
		success INTEGER,
		duration_ms INTEGER
	);`)
	return err
}

func (s *SQLiteStore) fallback() *FileStore {
	return NewFileStore(fallbackPath(s.path))
}

// Save inserts a new record.
func (s *SQLiteStore) Save(record domain.HistoryRecord) error {
	if s.db == nil {
		return s.fallback().Save(record)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.Exec(`INSERT INTO runs
		(id, timestamp, font, ligatures, apps, failed_apps, success, duration_ms)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		record.ID,
		record.Timestamp.UTC().Format(timestampLayout),
		record.Font,
		record.Ligatures,
		strings.Join(record.Apps, ","),
		strings.Join(record.FailedApps, ","),
		boolToInt(record.Success),
		record.DurationMS,
	)
	return err
}

// Records returns the newest entries first. A limit <= 0 returns all of them.
func (s *SQLiteStore) Records(limit int) ([]domain.HistoryRecord, error) {
	if s.db == nil {
		return s.fallback().Records(limit)
	}
	query := "SELECT id, timestamp, font, ligatures, apps, failed_apps, success, duration_ms FROM runs ORDER BY timestamp DESC"
	var args []interface{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var records []domain.HistoryRecord
	for rows.Next() {
		var rec domain.HistoryRecord
		var ts, apps, failed string
		var success int
		if err := rows.Scan(&rec.ID, &ts, &rec.Font, &rec.Ligatures, &apps, &failed, &success, &rec.DurationMS); err != nil {
			return nil, err
		}
		if t, err := time.Parse(timestampLayout, ts); err == nil {
			rec.Timestamp = t
		}
		rec.Apps = splitList(apps)
		rec.FailedApps = splitList(failed)
		rec.Success = success == 1
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Clear deletes all history entries.
func (s *SQLiteStore) Clear() error {
	if s.db == nil {
		return s.fallback().Clear()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.Exec("DELETE FROM runs")
	return err
}

// Path returns the file records are written to.
func (s *SQLiteStore) Path() string {
	if s.db == nil {
		return fallbackPath(s.path)
	}
	return s.path
}

// Close releases the database handle.
func (s *SQLiteStore) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func fallbackPath(dbPath string) string {
	return strings.TrimSuffix(dbPath, filepath.Ext(dbPath)) + ".jsonl"
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	return strings.Split(raw, ",")
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

var _ ports.HistoryRepository = (*SQLiteStore)(nil)
