// Package history provides thread-safe in-memory storage of finished
// calculation records with file-based persistence. The log is capped and
// rotates oldest-first so it cannot grow without bound.
//
// Persistence is designed for reliability with atomic file writes: saves go
// through a temporary file and a rename, and a stale temporary file left
// behind by a crash is discarded on the next load.
package history

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Kind labels which calculator produced a record.
type Kind string

// Record kinds.
const (
	KindGrowth     Kind = "growth"
	KindMigration  Kind = "migration"
	KindComparison Kind = "comparison"
)

// Valid reports whether the kind names a known calculator.
func (k Kind) Valid() bool {
	switch k {
	case KindGrowth, KindMigration, KindComparison:
		return true
	default:
		return false
	}
}

// Record is one finished calculation: what ran, when, a one-line summary for
// listings, and the full result document as raw JSON.
type Record struct {
	ID        string          `json:"id"`
	Kind      Kind            `json:"kind"`
	CreatedAt time.Time       `json:"created_at"`
	Summary   string          `json:"summary"`
	Result    json.RawMessage `json:"result"`
}

// Validate checks that a record is complete enough to store.
func (r Record) Validate() error {
	if r.ID == "" {
		return fmt.Errorf("record ID cannot be empty")
	}
	if !r.Kind.Valid() {
		return fmt.Errorf("unknown record kind: %s", r.Kind)
	}
	if r.CreatedAt.IsZero() {
		return fmt.Errorf("record timestamp cannot be zero")
	}
	if r.Summary == "" {
		return fmt.Errorf("record summary cannot be empty")
	}
	return nil
}

// Store provides thread-safe in-memory record storage with file-based persistence
type Store struct {
	records []Record
	mu      sync.RWMutex

	// Configuration
	maxRecords      int
	filePath        string
	filePermissions os.FileMode
	dirPermissions  os.FileMode
}

// PersistenceFile represents the file structure for JSON persistence
type PersistenceFile struct {
	Version string    `json:"version"`
	SavedAt time.Time `json:"saved_at"`
	Records []Record  `json:"records"`
}

// New creates a new Store instance with persistence to filePath.
// If filePath is empty, uses OS-appropriate tmp directory
func New(maxRecords int, filePath string, filePermissions, dirPermissions os.FileMode) *Store {
	// Use OS-appropriate tmp directory if no path provided
	if filePath == "" {
		filePath = filepath.Join(os.TempDir(), "channelcast", "history.json")
	}

	return &Store{
		records:         make([]Record, 0),
		maxRecords:      maxRecords,
		filePath:        filePath,
		filePermissions: filePermissions,
		dirPermissions:  dirPermissions,
	}
}

// Append stores a finished calculation. The result is marshaled immediately
// so callers keep no live reference into the store.
func (s *Store) Append(kind Kind, summary string, result any) (Record, error) {
	raw, err := json.Marshal(result)
	if err != nil {
		return Record{}, fmt.Errorf("failed to marshal result: %w", err)
	}

	rec := Record{
		ID:        uuid.NewString(),
		Kind:      kind,
		CreatedAt: time.Now().UTC(),
		Summary:   summary,
		Result:    raw,
	}
	if err := rec.Validate(); err != nil {
		return Record{}, fmt.Errorf("invalid record: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = append(s.records, rec)
	return rec, nil
}

// Recent returns up to n records, newest first.
func (s *Store) Recent(n int) []Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if n <= 0 {
		return []Record{}
	}
	if n > len(s.records) {
		n = len(s.records)
	}

	out := make([]Record, 0, n)
	for i := len(s.records) - 1; i >= len(s.records)-n; i-- {
		out = append(out, s.records[i])
	}
	return out
}

// Len returns the number of stored records.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.records)
}

// Rotate removes the oldest records exceeding the max limit
func (s *Store) Rotate() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.maxRecords <= 0 || len(s.records) <= s.maxRecords {
		return nil
	}

	// Keep only the most recent records
	start := len(s.records) - s.maxRecords
	s.records = s.records[start:]
	return nil
}

// Save persists the record log to file
func (s *Store) Save() error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// Create data directory if needed
	dir := filepath.Dir(s.filePath)
	if err := os.MkdirAll(dir, s.dirPermissions); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	data := PersistenceFile{
		Version: "1.0",
		SavedAt: time.Now().UTC(),
		Records: s.records,
	}

	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal data: %w", err)
	}

	// Write to temporary file first (atomic write)
	tempPath := s.filePath + ".tmp"
	if err := os.WriteFile(tempPath, jsonData, s.filePermissions); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	// Rename temp file to actual file
	if err := os.Rename(tempPath, s.filePath); err != nil {
		_ = os.Remove(tempPath) // Clean up temp file on rename failure
		return fmt.Errorf("failed to rename file: %w", err)
	}

	return nil
}

// Load restores the record log from file
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Clean up any stale temp files from previous crashes
	tempPath := s.filePath + ".tmp"
	if _, err := os.Stat(tempPath); err == nil {
		_ = os.Remove(tempPath)
	}

	// Check if file exists
	if _, err := os.Stat(s.filePath); os.IsNotExist(err) {
		// No file to load, start fresh
		return nil
	}

	jsonData, err := os.ReadFile(s.filePath)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	var data PersistenceFile
	if err := json.Unmarshal(jsonData, &data); err != nil {
		return fmt.Errorf("failed to unmarshal data: %w", err)
	}

	s.records = data.Records
	if s.records == nil {
		s.records = make([]Record, 0)
	}

	return nil
}
