// Package status persists the process-wide run status record that external
// monitors poll. Writes go through a single mutex and an atomic temp-file
// rename, so concurrent updates from the foreground run and the live worker
// never lose each other or leave a torn file.
package status

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/amc-dataeng/hospgen/internal/hospgen/logger"
)

// LiveCounts summarizes the most recent live tick.
type LiveCounts struct {
	Patients   int `json:"patients"`
	Admissions int `json:"admissions"`
}

// Record is the persisted run status document.
type Record struct {
	Mode         string   `json:"mode,omitempty"`
	Outdir       string   `json:"outdir,omitempty"`
	Step         string   `json:"step,omitempty"`
	Batch        int      `json:"batch,omitempty"`
	FilesWritten []string `json:"files_written,omitempty"`
	Logs         []string `json:"logs,omitempty"`
	LastMessage  string   `json:"last_message,omitempty"`
	UpdatedAt    string   `json:"updated_at,omitempty"`

	DBURL        string `json:"db_url,omitempty"`
	DBConnected  *bool  `json:"db_connected,omitempty"`
	DBError      string `json:"db_error,omitempty"`
	DBWriteOK    *bool  `json:"db_write_ok,omitempty"`
	DBWriteError string `json:"db_write_error,omitempty"`

	Patients    int `json:"patients,omitempty"`
	Admissions  int `json:"admissions,omitempty"`
	Labs        int `json:"labs,omitempty"`
	Diagnostics int `json:"diagnostics,omitempty"`
	Medications int `json:"medications,omitempty"`
	RevenueRows int `json:"revenue_rows,omitempty"`

	LastLiveCounts *LiveCounts `json:"last_live_counts,omitempty"`
	ADLSUploaded   []string    `json:"adls_uploaded,omitempty"`
}

// maxLogLines bounds the rolling log kept in the record.
const maxLogLines = 200

// Store is the file-backed status record shared by the foreground run and
// the live worker.
type Store struct {
	mu   sync.Mutex
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file location.
func (s *Store) Path() string {
	return s.path
}

// Snapshot returns the current record. ok is false when the store has never
// been written, which monitors treat as idle.
func (s *Store) Snapshot() (Record, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read()
}

// Reset overwrites the record at the start of a run. Nothing from previous
// runs survives except the database probe outcome (db_url, db_connected,
// db_error), which is recorded before the run begins and must stay visible
// through it.
func (s *Store) Reset(mode, outdir string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev, _ := s.read()
	s.write(Record{
		Mode:        mode,
		Outdir:      outdir,
		Step:        "init",
		DBURL:       prev.DBURL,
		DBConnected: prev.DBConnected,
		DBError:     prev.DBError,
	})
}

// Update applies fn to the current record under the store lock and persists
// the result. Persistence failures are logged, never propagated: status is a
// best-effort signal and must not abort generation.
func (s *Store) Update(fn func(*Record)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, _ := s.read()
	fn(&rec)
	s.write(rec)
}

// SetStep records the orchestrator step about to begin.
func (s *Store) SetStep(step string) {
	s.Update(func(r *Record) { r.Step = step })
}

// Log appends a timestamped line to the rolling log (last 200 kept) and sets
// last_message.
func (s *Store) Log(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	s.Update(func(r *Record) {
		line := fmt.Sprintf("[%s] %s", time.Now().UTC().Format("2006-01-02 15:04:05"), msg)
		r.Logs = append(r.Logs, line)
		if len(r.Logs) > maxLogLines {
			r.Logs = r.Logs[len(r.Logs)-maxLogLines:]
		}
		r.LastMessage = msg
	})
}

// read loads the record from disk; callers hold s.mu.
func (s *Store) read() (Record, bool) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return Record{}, false
	}
	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return Record{}, false
	}
	return rec, true
}

// write persists the record atomically; callers hold s.mu.
func (s *Store) write(rec Record) {
	rec.UpdatedAt = time.Now().UTC().Format(time.RFC3339)

	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			logger.L().Warnw("status dir create failed", "dir", dir, "err", err)
			return
		}
	}

	tmp := s.path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		logger.L().Warnw("status write failed", "path", s.path, "err", err)
		return
	}
	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rec); err != nil {
		f.Close()
		os.Remove(tmp)
		logger.L().Warnw("status encode failed", "path", s.path, "err", err)
		return
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		logger.L().Warnw("status close failed", "path", s.path, "err", err)
		return
	}
	if err := os.Rename(tmp, s.path); err != nil {
		logger.L().Warnw("status rename failed", "path", s.path, "err", err)
	}
}
