// Package sqlite implements trigger storage on SQLite.
package sqlite

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"trigger-console/internal/common/errors"
	"trigger-console/internal/common/validation"
	"trigger-console/internal/storage"
)

// Config holds SQLite connection settings.
type Config struct {
	Path string
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	return validation.NewValidatorWithPrefix("sqlite config").
		RequireString(c.Path, "database path").
		Error()
}

// Store is a SQLite-backed storage.Storage.
type Store struct {
	db *sql.DB
}

// New opens the database, runs migrations and returns the store.
func New(config *Config) (*Store, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite3", config.Path)
	if err != nil {
		return nil, errors.Connection("failed to open sqlite database", err)
	}
	// SQLite serializes writers anyway, and a single pooled connection keeps
	// an in-memory database alive across queries.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		return nil, errors.Connection("failed to ping sqlite database", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		return nil, errors.Internal("failed to migrate sqlite database", err)
	}
	return s, nil
}

func (s *Store) migrate() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS triggers (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL UNIQUE,
			type TEXT NOT NULL,
			process_id INTEGER NOT NULL,
			robot_id INTEGER,
			cron_expression TEXT,
			timezone TEXT,
			queue_id INTEGER,
			batch_size INTEGER,
			polling_interval INTEGER,
			active BOOLEAN NOT NULL DEFAULT 1,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS idx_triggers_type ON triggers(type)`,
		`CREATE INDEX IF NOT EXISTS idx_triggers_active ON triggers(active)`,
		`CREATE INDEX IF NOT EXISTS idx_triggers_process_id ON triggers(process_id)`,
	}

	for _, query := range queries {
		if _, err := s.db.Exec(query); err != nil {
			return fmt.Errorf("migration query failed: %w", err)
		}
	}
	return nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Health() error {
	return s.db.Ping()
}

func (s *Store) CreateTrigger(t *storage.Trigger) error {
	now := time.Now().UTC()
	t.CreatedAt = now
	t.UpdatedAt = now

	result, err := s.db.Exec(
		`INSERT INTO triggers (name, type, process_id, robot_id, cron_expression, timezone,
			queue_id, batch_size, polling_interval, active, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.Name, t.Type, t.ProcessID, t.RobotID, t.CronExpression, t.Timezone,
		t.QueueID, t.BatchSize, t.PollingInterval, t.Active, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return errors.Conflict(fmt.Sprintf("trigger name %q already exists", t.Name))
		}
		return errors.Internal("failed to create trigger", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return errors.Internal("failed to read inserted trigger id", err)
	}
	t.ID = id
	return nil
}

func (s *Store) GetTrigger(id int64) (*storage.Trigger, error) {
	row := s.db.QueryRow(selectTrigger+` WHERE id = ?`, id)

	t, err := scanTrigger(row)
	if err == sql.ErrNoRows {
		return nil, errors.NotFound("trigger")
	}
	if err != nil {
		return nil, errors.Internal("failed to get trigger", err)
	}
	return t, nil
}

func (s *Store) GetTriggersPaginated(filters storage.TriggerFilters, limit, offset int) ([]*storage.Trigger, int, error) {
	where, args := buildFilters(filters)

	var total int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM triggers`+where, args...).Scan(&total); err != nil {
		return nil, 0, errors.Internal("failed to count triggers", err)
	}

	rows, err := s.db.Query(
		selectTrigger+where+` ORDER BY id LIMIT ? OFFSET ?`,
		append(args, limit, offset)...,
	)
	if err != nil {
		return nil, 0, errors.Internal("failed to list triggers", err)
	}
	defer rows.Close()

	triggers := make([]*storage.Trigger, 0, limit)
	for rows.Next() {
		t, err := scanTrigger(rows)
		if err != nil {
			return nil, 0, errors.Internal("failed to scan trigger", err)
		}
		triggers = append(triggers, t)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, errors.Internal("failed to iterate triggers", err)
	}
	return triggers, total, nil
}

func (s *Store) UpdateTrigger(t *storage.Trigger) error {
	t.UpdatedAt = time.Now().UTC()

	result, err := s.db.Exec(
		`UPDATE triggers SET name = ?, type = ?, process_id = ?, robot_id = ?,
			cron_expression = ?, timezone = ?, queue_id = ?, batch_size = ?,
			polling_interval = ?, active = ?, updated_at = ?
		 WHERE id = ?`,
		t.Name, t.Type, t.ProcessID, t.RobotID, t.CronExpression, t.Timezone,
		t.QueueID, t.BatchSize, t.PollingInterval, t.Active, t.UpdatedAt, t.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return errors.Conflict(fmt.Sprintf("trigger name %q already exists", t.Name))
		}
		return errors.Internal("failed to update trigger", err)
	}
	return requireRowAffected(result)
}

func (s *Store) DeleteTrigger(id int64) error {
	result, err := s.db.Exec(`DELETE FROM triggers WHERE id = ?`, id)
	if err != nil {
		return errors.Internal("failed to delete trigger", err)
	}
	return requireRowAffected(result)
}

func (s *Store) SetTriggerActive(id int64, active bool) error {
	result, err := s.db.Exec(
		`UPDATE triggers SET active = ?, updated_at = ? WHERE id = ?`,
		active, time.Now().UTC(), id,
	)
	if err != nil {
		return errors.Internal("failed to toggle trigger", err)
	}
	return requireRowAffected(result)
}

const selectTrigger = `SELECT id, name, type, process_id, robot_id, cron_expression, timezone,
	queue_id, batch_size, polling_interval, active, created_at, updated_at FROM triggers`

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanTrigger(row scanner) (*storage.Trigger, error) {
	var t storage.Trigger
	err := row.Scan(
		&t.ID, &t.Name, &t.Type, &t.ProcessID, &t.RobotID, &t.CronExpression,
		&t.Timezone, &t.QueueID, &t.BatchSize, &t.PollingInterval,
		&t.Active, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func buildFilters(filters storage.TriggerFilters) (string, []interface{}) {
	var clauses []string
	var args []interface{}

	if filters.Type != "" {
		clauses = append(clauses, "type = ?")
		args = append(args, filters.Type)
	}
	if filters.Active != nil {
		clauses = append(clauses, "active = ?")
		args = append(args, *filters.Active)
	}

	if len(clauses) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}

func requireRowAffected(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return errors.Internal("failed to read affected rows", err)
	}
	if affected == 0 {
		return errors.NotFound("trigger")
	}
	return nil
}

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
