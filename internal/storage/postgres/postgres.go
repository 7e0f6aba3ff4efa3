// Package postgres implements trigger storage on PostgreSQL via the pgx
// stdlib driver.
package postgres

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"trigger-console/internal/common/errors"
	"trigger-console/internal/common/validation"
	"trigger-console/internal/storage"
)

// Config holds PostgreSQL connection settings.
type Config struct {
	Host     string
	Port     string
	Database string
	User     string
	Password string
	SSLMode  string
}

// Validate checks the configuration and fills defaults.
func (c *Config) Validate() error {
	if c.Port == "" {
		c.Port = "5432"
	}
	if c.SSLMode == "" {
		c.SSLMode = "disable"
	}

	return validation.NewValidatorWithPrefix("postgres config").
		RequireString(c.Host, "host").
		RequireString(c.Database, "database").
		RequireString(c.User, "user").
		Error()
}

// ConnString builds the keyword/value connection string.
func (c *Config) ConnString() string {
	return fmt.Sprintf(
		"host=%s port=%s dbname=%s user=%s password=%s sslmode=%s",
		c.Host, c.Port, c.Database, c.User, c.Password, c.SSLMode,
	)
}

// Store is a PostgreSQL-backed storage.Storage.
type Store struct {
	db *sql.DB
}

// New opens the database, runs migrations and returns the store.
func New(config *Config) (*Store, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	db, err := sql.Open("pgx", config.ConnString())
	if err != nil {
		return nil, errors.Connection("failed to open postgres database", err)
	}
	if err := db.Ping(); err != nil {
		return nil, errors.Connection("failed to ping postgres database", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		return nil, errors.Internal("failed to migrate postgres database", err)
	}
	return s, nil
}

func (s *Store) migrate() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS triggers (
			id BIGSERIAL PRIMARY KEY,
			name TEXT NOT NULL UNIQUE,
			type TEXT NOT NULL,
			process_id BIGINT NOT NULL,
			robot_id BIGINT,
			cron_expression TEXT,
			timezone TEXT,
			queue_id BIGINT,
			batch_size INTEGER,
			polling_interval INTEGER,
			active BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
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

	err := s.db.QueryRow(
		`INSERT INTO triggers (name, type, process_id, robot_id, cron_expression, timezone,
			queue_id, batch_size, polling_interval, active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		 RETURNING id`,
		t.Name, t.Type, t.ProcessID, t.RobotID, t.CronExpression, t.Timezone,
		t.QueueID, t.BatchSize, t.PollingInterval, t.Active, t.CreatedAt, t.UpdatedAt,
	).Scan(&t.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return errors.Conflict(fmt.Sprintf("trigger name %q already exists", t.Name))
		}
		return errors.Internal("failed to create trigger", err)
	}
	return nil
}

func (s *Store) GetTrigger(id int64) (*storage.Trigger, error) {
	row := s.db.QueryRow(selectTrigger+` WHERE id = $1`, id)

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

	query := fmt.Sprintf("%s%s ORDER BY id LIMIT $%d OFFSET $%d", selectTrigger, where, len(args)+1, len(args)+2)
	rows, err := s.db.Query(query, append(args, limit, offset)...)
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
		`UPDATE triggers SET name = $1, type = $2, process_id = $3, robot_id = $4,
			cron_expression = $5, timezone = $6, queue_id = $7, batch_size = $8,
			polling_interval = $9, active = $10, updated_at = $11
		 WHERE id = $12`,
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
	result, err := s.db.Exec(`DELETE FROM triggers WHERE id = $1`, id)
	if err != nil {
		return errors.Internal("failed to delete trigger", err)
	}
	return requireRowAffected(result)
}

func (s *Store) SetTriggerActive(id int64, active bool) error {
	result, err := s.db.Exec(
		`UPDATE triggers SET active = $1, updated_at = $2 WHERE id = $3`,
		active, time.Now().UTC(), id,
	)
	if err != nil {
		return errors.Internal("failed to toggle trigger", err)
	}
	return requireRowAffected(result)
}

const selectTrigger = `SELECT id, name, type, process_id, robot_id, cron_expression, timezone,
	queue_id, batch_size, polling_interval, active, created_at, updated_at FROM triggers`

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
		args = append(args, filters.Type)
		clauses = append(clauses, fmt.Sprintf("type = $%d", len(args)))
	}
	if filters.Active != nil {
		args = append(args, *filters.Active)
		clauses = append(clauses, fmt.Sprintf("active = $%d", len(args)))
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

// 23505 is the PostgreSQL unique_violation code.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "23505")
}
