package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// Record represents a single compile run
type Record struct {
	ID             string    `json:"id"`
	Timestamp      time.Time `json:"timestamp"`
	Source         string    `json:"source"`
	SyntaxErrors   []string  `json:"syntax_errors,omitempty"`
	SemanticErrors []string  `json:"semantic_errors,omitempty"`
	Valid          bool      `json:"valid"`
}

// HistoryStore defines the interface for compile history persistence
type HistoryStore interface {
	Save(ctx context.Context, rec *Record) error
	Recent(ctx context.Context, limit int) ([]*Record, error)
	Get(ctx context.Context, id string) (*Record, error)
	Count(ctx context.Context) (int64, error)

	// Maintenance
	Prune(ctx context.Context, olderThan time.Duration) (int64, error)
	Trim(ctx context.Context, maxEntries int) (int64, error)
	Close() error
}

// SQLiteHistoryStore implements HistoryStore using SQLite
type SQLiteHistoryStore struct {
	db *sql.DB
	mu sync.RWMutex
}

// SQLiteHistoryConfig holds configuration for the SQLite store
type SQLiteHistoryConfig struct {
	Path string
}

// DefaultHistoryConfig returns default configuration
func DefaultHistoryConfig() SQLiteHistoryConfig {
	return SQLiteHistoryConfig{
		Path: "./data/history.db",
	}
}

// NewSQLiteHistoryStore creates a new SQLite-based history store
func NewSQLiteHistoryStore(cfg SQLiteHistoryConfig) (*SQLiteHistoryStore, error) {
	// Ensure directory exists
	dir := filepath.Dir(cfg.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	// Open database with WAL mode
	db, err := sql.Open("sqlite3", cfg.Path+"?_journal_mode=WAL&_synchronous=NORMAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &SQLiteHistoryStore{db: db}

	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return store, nil
}

// initSchema creates the necessary tables
func (s *SQLiteHistoryStore) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS compile_history (
		id TEXT PRIMARY KEY,
		timestamp DATETIME NOT NULL,
		source TEXT NOT NULL,
		syntax_errors TEXT,
		semantic_errors TEXT,
		valid INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_history_timestamp ON compile_history(timestamp DESC);
	CREATE INDEX IF NOT EXISTS idx_history_valid ON compile_history(valid);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Save records a compile run
func (s *SQLiteHistoryStore) Save(ctx context.Context, rec *Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}
	if rec.Timestamp.IsZero() {
		rec.Timestamp = time.Now()
	}

	var syntaxJSON, semanticJSON []byte
	if rec.SyntaxErrors != nil {
		syntaxJSON, _ = json.Marshal(rec.SyntaxErrors)
	}
	if rec.SemanticErrors != nil {
		semanticJSON, _ = json.Marshal(rec.SemanticErrors)
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO compile_history (id, timestamp, source, syntax_errors, semantic_errors, valid)
		VALUES (?, ?, ?, ?, ?, ?)
	`, rec.ID, rec.Timestamp, rec.Source, syntaxJSON, semanticJSON, rec.Valid)

	if err != nil {
		return fmt.Errorf("failed to insert history record: %w", err)
	}

	return nil
}

// Recent retrieves the most recent compile records, newest first
func (s *SQLiteHistoryStore) Recent(ctx context.Context, limit int) ([]*Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, timestamp, source, syntax_errors, semantic_errors, valid
		FROM compile_history
		ORDER BY timestamp DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	var records []*Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

// Get retrieves a single record by ID
func (s *SQLiteHistoryStore) Get(ctx context.Context, id string) (*Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, timestamp, source, syntax_errors, semantic_errors, valid
		FROM compile_history
		WHERE id = ?
	`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, fmt.Errorf("history record not found: %s", id)
	}
	return scanRecord(rows)
}

// Count returns the number of stored records
func (s *SQLiteHistoryStore) Count(ctx context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var total int64
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM compile_history`).Scan(&total)
	return total, err
}

// Prune removes records older than the specified duration
func (s *SQLiteHistoryStore) Prune(ctx context.Context, olderThan time.Duration) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := time.Now().Add(-olderThan)

	result, err := s.db.ExecContext(ctx, `DELETE FROM compile_history WHERE timestamp < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to prune history: %w", err)
	}

	deleted, _ := result.RowsAffected()
	return deleted, nil
}

// Trim drops the oldest records beyond maxEntries
func (s *SQLiteHistoryStore) Trim(ctx context.Context, maxEntries int) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if maxEntries <= 0 {
		return 0, nil
	}

	result, err := s.db.ExecContext(ctx, `
		DELETE FROM compile_history
		WHERE id NOT IN (
			SELECT id FROM compile_history ORDER BY timestamp DESC LIMIT ?
		)
	`, maxEntries)
	if err != nil {
		return 0, fmt.Errorf("failed to trim history: %w", err)
	}

	deleted, _ := result.RowsAffected()
	return deleted, nil
}

// Close closes the database connection
func (s *SQLiteHistoryStore) Close() error {
	return s.db.Close()
}

func scanRecord(rows *sql.Rows) (*Record, error) {
	var rec Record
	var syntaxJSON, semanticJSON sql.NullString

	if err := rows.Scan(&rec.ID, &rec.Timestamp, &rec.Source, &syntaxJSON, &semanticJSON, &rec.Valid); err != nil {
		return nil, fmt.Errorf("failed to scan history record: %w", err)
	}

	if syntaxJSON.Valid && syntaxJSON.String != "" {
		json.Unmarshal([]byte(syntaxJSON.String), &rec.SyntaxErrors)
	}
	if semanticJSON.Valid && semanticJSON.String != "" {
		json.Unmarshal([]byte(semanticJSON.String), &rec.SemanticErrors)
	}

	return &rec, nil
}

// MemoryHistoryStore is an in-memory implementation for testing
type MemoryHistoryStore struct {
	mu      sync.RWMutex
	records []*Record
}

// NewMemoryHistoryStore creates a new in-memory history store
func NewMemoryHistoryStore() *MemoryHistoryStore {
	return &MemoryHistoryStore{
		records: make([]*Record, 0),
	}
}

// Save records a compile run
func (s *MemoryHistoryStore) Save(ctx context.Context, rec *Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}
	if rec.Timestamp.IsZero() {
		rec.Timestamp = time.Now()
	}

	s.records = append(s.records, rec)
	return nil
}

// Recent retrieves the most recent compile records, newest first
func (s *MemoryHistoryStore) Recent(ctx context.Context, limit int) ([]*Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 {
		limit = 20
	}

	var results []*Record
	for i := len(s.records) - 1; i >= 0 && len(results) < limit; i-- {
		results = append(results, s.records[i])
	}
	return results, nil
}

// Get retrieves a single record by ID
func (s *MemoryHistoryStore) Get(ctx context.Context, id string) (*Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, rec := range s.records {
		if rec.ID == id {
			return rec, nil
		}
	}
	return nil, fmt.Errorf("history record not found: %s", id)
}

// Count returns the number of stored records
func (s *MemoryHistoryStore) Count(ctx context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return int64(len(s.records)), nil
}

// Prune removes records older than the specified duration
func (s *MemoryHistoryStore) Prune(ctx context.Context, olderThan time.Duration) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := time.Now().Add(-olderThan)
	var deleted int64

	kept := make([]*Record, 0, len(s.records))
	for _, rec := range s.records {
		if rec.Timestamp.After(cutoff) {
			kept = append(kept, rec)
		} else {
			deleted++
		}
	}
	s.records = kept

	return deleted, nil
}

// Trim drops the oldest records beyond maxEntries
func (s *MemoryHistoryStore) Trim(ctx context.Context, maxEntries int) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if maxEntries <= 0 || len(s.records) <= maxEntries {
		return 0, nil
	}

	deleted := int64(len(s.records) - maxEntries)
	s.records = s.records[len(s.records)-maxEntries:]
	return deleted, nil
}

// Close is a no-op for the memory store
func (s *MemoryHistoryStore) Close() error {
	return nil
}
