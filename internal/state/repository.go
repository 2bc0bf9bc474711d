package state

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	_ "modernc.org/sqlite"
)

const (
	StartTimeKey = "startTime"
	StopTimeKey  = "stopTime"
	CountingKey  = "countingKey"
)

// Repository is a key-value store for stopwatch state kept in a sqlite file.
type Repository struct {
	db *sql.DB
}

func NewRepository(path string) (*Repository, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}

	repo := &Repository{db: db}
	if err := repo.init(); err != nil {
		db.Close()
		return nil, err
	}

	return repo, nil
}

func (r *Repository) init() error {
	query := `
	CREATE TABLE IF NOT EXISTS settings (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)
	`
	_, err := r.db.Exec(query)
	return err
}

func (r *Repository) get(key string) (string, bool, error) {
	var value string
	err := r.db.QueryRow("SELECT value FROM settings WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("read %s: %w", key, err)
	}
	return value, true, nil
}

func (r *Repository) set(key, value string) error {
	_, err := r.db.Exec(
		`INSERT INTO settings (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

func (r *Repository) delete(key string) error {
	if _, err := r.db.Exec("DELETE FROM settings WHERE key = ?", key); err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

func (r *Repository) Counting() (bool, error) {
	value, ok, err := r.get(CountingKey)
	if err != nil || !ok {
		return false, err
	}
	counting, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("parse %s: %w", CountingKey, err)
	}
	return counting, nil
}

func (r *Repository) SetCounting(counting bool) error {
	return r.set(CountingKey, strconv.FormatBool(counting))
}

func (r *Repository) StartTime() (*time.Time, error) {
	return r.instant(StartTimeKey)
}

func (r *Repository) SetStartTime(t *time.Time) error {
	return r.setInstant(StartTimeKey, t)
}

func (r *Repository) StopTime() (*time.Time, error) {
	return r.instant(StopTimeKey)
}

func (r *Repository) SetStopTime(t *time.Time) error {
	return r.setInstant(StopTimeKey, t)
}

func (r *Repository) instant(key string) (*time.Time, error) {
	value, ok, err := r.get(key)
	if err != nil || !ok {
		return nil, err
	}
	t, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", key, err)
	}
	return &t, nil
}

// setInstant stores t, or removes the key when t is nil.
func (r *Repository) setInstant(key string, t *time.Time) error {
	if t == nil {
		return r.delete(key)
	}
	return r.set(key, t.UTC().Format(time.RFC3339Nano))
}

func (r *Repository) Close() error {
	return r.db.Close()
}
