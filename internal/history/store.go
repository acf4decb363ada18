// Package history keeps an append-only sqlite log of finished runs. It never
// stores a running timer; a restarted process always begins from a fresh
// countdown.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/akyairhashvil/pomo/internal/models"
	_ "github.com/mattn/go-sqlite3"
)

const dayFormat = "2006-01-02"

// Store is safe for concurrent use; runs are recorded from the alarm
// goroutine while the UI reads summaries.
type Store struct {
	DB     *sql.DB
	dbFile string

	mu     sync.RWMutex
	closed bool
}

// Open creates the database file and schema if needed.
func Open(ctx context.Context, path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create history directory: %w", err)
	}
	db, err := sql.Open("sqlite3", path+"?_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open history: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping history: %w", err)
	}
	s := &Store{DB: db, dbFile: path}
	if err := s.createTables(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) createTables(ctx context.Context) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			preset TEXT NOT NULL,
			duration_seconds INTEGER NOT NULL,
			day TEXT NOT NULL,
			finished_at DATETIME NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_runs_day ON runs(day);`,
	}
	for _, query := range queries {
		if _, err := s.DB.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("create history schema: %w", err)
		}
	}
	return nil
}

// Close releases the database. Later calls return ErrStoreClosed.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	return s.DB.Close()
}

// Record appends a finished run.
func (s *Store) Record(ctx context.Context, run models.Run) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return wrapRunErr("record", 0, ErrStoreClosed)
	}
	if run.Duration <= 0 || run.FinishedAt.IsZero() {
		return wrapRunErr("record", 0, ErrInvalidRun)
	}
	local := run.FinishedAt.Local()
	_, err := s.DB.ExecContext(ctx,
		"INSERT INTO runs (preset, duration_seconds, day, finished_at) VALUES (?, ?, ?, ?)",
		run.Preset.String(), int64(run.Duration/time.Second), local.Format(dayFormat), local)
	return wrapRunErr("record", 0, err)
}

// RunsForDay lists the runs finished on day's local date, oldest first.
func (s *Store) RunsForDay(ctx context.Context, day time.Time) ([]models.Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, wrapRunErr("list", 0, ErrStoreClosed)
	}
	rows, err := s.DB.QueryContext(ctx, `
		SELECT id, preset, duration_seconds, finished_at
		FROM runs
		WHERE day = ?
		ORDER BY finished_at ASC, id ASC`, day.Local().Format(dayFormat))
	if err != nil {
		return nil, wrapRunErr("list", 0, err)
	}
	defer rows.Close()

	var runs []models.Run
	for rows.Next() {
		var (
			r       models.Run
			preset  string
			seconds int64
		)
		if err := rows.Scan(&r.ID, &preset, &seconds, &r.FinishedAt); err != nil {
			return nil, wrapRunErr("list", 0, err)
		}
		p, err := models.ParsePreset(preset)
		if err != nil {
			return nil, wrapRunErr("list", r.ID, err)
		}
		r.Preset = p
		r.Duration = time.Duration(seconds) * time.Second
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapRunErr("list", 0, err)
	}
	return runs, nil
}

// Today summarises the runs finished on now's local date.
func (s *Store) Today(ctx context.Context, now time.Time) (models.DaySummary, error) {
	summary := models.NewDaySummary(now.Local())
	runs, err := s.RunsForDay(ctx, now)
	if err != nil {
		return summary, err
	}
	for _, r := range runs {
		summary.Add(r)
	}
	return summary, nil
}
