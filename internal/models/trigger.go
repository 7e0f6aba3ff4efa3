// Package models holds the API request and response shapes exchanged with
// the trigger console.
package models

import (
	"trigger-console/internal/recurrence"
	"trigger-console/internal/storage"
)

// TriggerRequest is the create/update payload. It embeds the recurrence form
// state so the server can recompile and revalidate the schedule with the same
// rules the console preview uses.
type TriggerRequest struct {
	recurrence.Model
	Active *bool `json:"active,omitempty"`
}

// CompileResponse is the body of the compile preview endpoint. Cron and
// Error mirror the compiler outcome; ValidationErrors carries the field
// messages that would block submission.
type CompileResponse struct {
	Cron             string                      `json:"cron,omitempty"`
	Error            string                      `json:"error,omitempty"`
	ValidationErrors recurrence.ValidationErrors `json:"validationErrors,omitempty"`
}

// ValidationErrorResponse is the 422 body returned when a trigger payload
// fails recurrence validation.
type ValidationErrorResponse struct {
	Message string                      `json:"message"`
	Errors  recurrence.ValidationErrors `json:"errors"`
}

// TimezonesResponse lists the zone identifiers offered by the console's
// timezone dropdown.
type TimezonesResponse struct {
	Timezones []string `json:"timezones"`
}

// BuildTrigger maps a validated request onto the storage entity. Fields of
// the inactive trigger type are left nil so stale form state never reaches
// the database: a TIME trigger stores only cron and timezone, a QUEUE
// trigger only the queue settings.
func BuildTrigger(req *TriggerRequest, cr recurrence.CompileResult) *storage.Trigger {
	t := &storage.Trigger{
		Name:      req.Name,
		Type:      string(req.TriggerType),
		ProcessID: req.ProcessID,
		Active:    true,
	}
	if req.RobotID > 0 {
		robotID := req.RobotID
		t.RobotID = &robotID
	}
	if req.Active != nil {
		t.Active = *req.Active
	}

	switch req.TriggerType {
	case recurrence.TriggerQueue:
		queueID := req.QueueID
		batchSize := req.BatchSize
		polling := req.PollingInterval
		t.QueueID = &queueID
		t.BatchSize = &batchSize
		t.PollingInterval = &polling
	default:
		cron := cr.Cron
		timezone := req.Timezone
		t.CronExpression = &cron
		t.Timezone = &timezone
	}
	return t
}
