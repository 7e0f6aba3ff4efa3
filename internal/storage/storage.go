// Package storage defines the persistence interface for triggers and the
// entity types shared by its backends.
package storage

import "time"

// Trigger is a stored trigger definition. TIME triggers carry a compiled
// cron expression and timezone; QUEUE triggers carry the queue polling
// fields. The two field sets are disjoint and the unused one is null.
type Trigger struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Type      string `json:"type"` // TIME or QUEUE
	ProcessID int64  `json:"processId"`
	RobotID   *int64 `json:"robotId,omitempty"`

	CronExpression *string `json:"cronExpression"`
	Timezone       *string `json:"timezone"`

	QueueID         *int64 `json:"queueId"`
	BatchSize       *int   `json:"batchSize"`
	PollingInterval *int   `json:"pollingInterval"`

	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TriggerFilters narrows trigger list queries.
type TriggerFilters struct {
	Type   string
	Active *bool
}

// Storage is the persistence interface consumed by the handlers.
type Storage interface {
	Close() error
	Health() error

	CreateTrigger(t *Trigger) error
	GetTrigger(id int64) (*Trigger, error)
	// GetTriggersPaginated returns one page of triggers plus the total count
	// matching the filters.
	GetTriggersPaginated(filters TriggerFilters, limit, offset int) ([]*Trigger, int, error)
	UpdateTrigger(t *Trigger) error
	DeleteTrigger(id int64) error
	SetTriggerActive(id int64, active bool) error
}
