package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"trigger-console/internal/common/errors"
	"trigger-console/internal/storage"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := New(&Config{Path: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func timeTrigger(name string) *storage.Trigger {
	cron := "*/5 * * * *"
	tz := "Europe/Berlin"
	return &storage.Trigger{
		Name:           name,
		Type:           "TIME",
		ProcessID:      42,
		CronExpression: &cron,
		Timezone:       &tz,
		Active:         true,
	}
}

func queueTrigger(name string) *storage.Trigger {
	queueID := int64(7)
	batch := 10
	polling := 30
	return &storage.Trigger{
		Name:            name,
		Type:            "QUEUE",
		ProcessID:       42,
		QueueID:         &queueID,
		BatchSize:       &batch,
		PollingInterval: &polling,
		Active:          true,
	}
}

func TestCreateAndGetTrigger(t *testing.T) {
	store := newTestStore(t)

	trigger := timeTrigger("nightly-sync")
	require.NoError(t, store.CreateTrigger(trigger))
	assert.NotZero(t, trigger.ID)
	assert.False(t, trigger.CreatedAt.IsZero())

	got, err := store.GetTrigger(trigger.ID)
	require.NoError(t, err)
	assert.Equal(t, "nightly-sync", got.Name)
	assert.Equal(t, "TIME", got.Type)
	assert.Equal(t, int64(42), got.ProcessID)
	require.NotNil(t, got.CronExpression)
	assert.Equal(t, "*/5 * * * *", *got.CronExpression)
	require.NotNil(t, got.Timezone)
	assert.Equal(t, "Europe/Berlin", *got.Timezone)
	assert.Nil(t, got.QueueID)
	assert.True(t, got.Active)
}

func TestCreateQueueTrigger(t *testing.T) {
	store := newTestStore(t)

	trigger := queueTrigger("invoice-queue")
	require.NoError(t, store.CreateTrigger(trigger))

	got, err := store.GetTrigger(trigger.ID)
	require.NoError(t, err)
	assert.Equal(t, "QUEUE", got.Type)
	require.NotNil(t, got.QueueID)
	assert.Equal(t, int64(7), *got.QueueID)
	require.NotNil(t, got.BatchSize)
	assert.Equal(t, 10, *got.BatchSize)
	require.NotNil(t, got.PollingInterval)
	assert.Equal(t, 30, *got.PollingInterval)
	assert.Nil(t, got.CronExpression)
}

func TestCreateTriggerDuplicateName(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.CreateTrigger(timeTrigger("dup")))

	err := store.CreateTrigger(timeTrigger("dup"))
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeConflict))
}

func TestGetTriggerNotFound(t *testing.T) {
	store := newTestStore(t)

	_, err := store.GetTrigger(999)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeNotFound))
}

func TestGetTriggersPaginated(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.CreateTrigger(timeTrigger("a")))
	require.NoError(t, store.CreateTrigger(timeTrigger("b")))
	require.NoError(t, store.CreateTrigger(queueTrigger("c")))

	triggers, total, err := store.GetTriggersPaginated(storage.TriggerFilters{}, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Len(t, triggers, 2)

	triggers, total, err = store.GetTriggersPaginated(storage.TriggerFilters{}, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Len(t, triggers, 1)
}

func TestGetTriggersPaginatedFilters(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.CreateTrigger(timeTrigger("time-a")))
	require.NoError(t, store.CreateTrigger(queueTrigger("queue-a")))

	inactive := timeTrigger("time-b")
	inactive.Active = false
	require.NoError(t, store.CreateTrigger(inactive))

	triggers, total, err := store.GetTriggersPaginated(storage.TriggerFilters{Type: "QUEUE"}, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, triggers, 1)
	assert.Equal(t, "queue-a", triggers[0].Name)

	active := true
	triggers, total, err = store.GetTriggersPaginated(storage.TriggerFilters{Type: "TIME", Active: &active}, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, triggers, 1)
	assert.Equal(t, "time-a", triggers[0].Name)
}

func TestUpdateTrigger(t *testing.T) {
	store := newTestStore(t)

	trigger := timeTrigger("before")
	require.NoError(t, store.CreateTrigger(trigger))

	trigger.Name = "after"
	cron := "0 9 * * MON"
	trigger.CronExpression = &cron
	trigger.Active = false
	require.NoError(t, store.UpdateTrigger(trigger))

	got, err := store.GetTrigger(trigger.ID)
	require.NoError(t, err)
	assert.Equal(t, "after", got.Name)
	assert.Equal(t, "0 9 * * MON", *got.CronExpression)
	assert.False(t, got.Active)
}

func TestUpdateTriggerNotFound(t *testing.T) {
	store := newTestStore(t)

	trigger := timeTrigger("ghost")
	trigger.ID = 123
	err := store.UpdateTrigger(trigger)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeNotFound))
}

func TestDeleteTrigger(t *testing.T) {
	store := newTestStore(t)

	trigger := timeTrigger("doomed")
	require.NoError(t, store.CreateTrigger(trigger))
	require.NoError(t, store.DeleteTrigger(trigger.ID))

	_, err := store.GetTrigger(trigger.ID)
	assert.True(t, errors.IsType(err, errors.TypeNotFound))

	assert.True(t, errors.IsType(store.DeleteTrigger(trigger.ID), errors.TypeNotFound))
}

func TestSetTriggerActive(t *testing.T) {
	store := newTestStore(t)

	trigger := timeTrigger("toggle")
	require.NoError(t, store.CreateTrigger(trigger))

	require.NoError(t, store.SetTriggerActive(trigger.ID, false))
	got, err := store.GetTrigger(trigger.ID)
	require.NoError(t, err)
	assert.False(t, got.Active)

	require.NoError(t, store.SetTriggerActive(trigger.ID, true))
	got, err = store.GetTrigger(trigger.ID)
	require.NoError(t, err)
	assert.True(t, got.Active)

	assert.True(t, errors.IsType(store.SetTriggerActive(999, true), errors.TypeNotFound))
}

func TestHealth(t *testing.T) {
	store := newTestStore(t)
	assert.NoError(t, store.Health())
}

func TestConfigValidate(t *testing.T) {
	assert.Error(t, (&Config{}).Validate())
	assert.NoError(t, (&Config{Path: ":memory:"}).Validate())
}
