package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"trigger-console/internal/common/pagination"
	"trigger-console/internal/models"
	"trigger-console/internal/recurrence"
	"trigger-console/internal/storage"
)

// Trigger management handlers

// GetTriggers returns configured triggers
// @Summary List triggers
// @Description Returns a paginated list of triggers with optional filtering
// @Tags triggers
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param per_page query int false "Items per page (default 20, max 100)"
// @Param type query string false "Filter by trigger type (TIME or QUEUE)"
// @Param active query boolean false "Filter by active flag"
// @Success 200 {object} pagination.Response[storage.Trigger] "Paginated triggers"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /triggers [get]
func (h *Handlers) GetTriggers(w http.ResponseWriter, r *http.Request) {
	params := pagination.ParseParams(r)

	filters := storage.TriggerFilters{
		Type: r.URL.Query().Get("type"),
	}
	if activeParam := r.URL.Query().Get("active"); activeParam != "" {
		active := activeParam == "true"
		filters.Active = &active
	}

	triggers, total, err := h.storage.GetTriggersPaginated(filters, params.Limit, params.Offset)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, pagination.NewResponse(triggers, params, total))
}

// GetTrigger returns a specific trigger
// @Summary Get trigger
// @Description Returns a single trigger by ID
// @Tags triggers
// @Produce json
// @Param id path int true "Trigger ID"
// @Success 200 {object} storage.Trigger "Trigger"
// @Failure 400 {object} map[string]string "Invalid trigger ID"
// @Failure 404 {object} map[string]string "Trigger not found"
// @Router /triggers/{id} [get]
func (h *Handlers) GetTrigger(w http.ResponseWriter, r *http.Request) {
	id, ok := triggerID(w, r)
	if !ok {
		return
	}

	trigger, err := h.storage.GetTrigger(id)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, trigger)
}

// CreateTrigger creates a new trigger
// @Summary Create trigger
// @Description Compiles and validates the submitted recurrence, then persists the trigger
// @Tags triggers
// @Accept json
// @Produce json
// @Param trigger body models.TriggerRequest true "Trigger payload"
// @Success 201 {object} storage.Trigger "Created trigger"
// @Failure 400 {object} map[string]string "Invalid JSON"
// @Failure 409 {object} map[string]string "Name already exists"
// @Failure 422 {object} models.ValidationErrorResponse "Validation errors"
// @Router /triggers [post]
func (h *Handlers) CreateTrigger(w http.ResponseWriter, r *http.Request) {
	req, result, ok := h.decodeAndValidate(w, r)
	if !ok {
		return
	}

	trigger := models.BuildTrigger(req, result)
	if err := h.storage.CreateTrigger(trigger); err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, trigger)
}

// UpdateTrigger updates an existing trigger
// @Summary Update trigger
// @Description Revalidates the recurrence payload and replaces the stored trigger
// @Tags triggers
// @Accept json
// @Produce json
// @Param id path int true "Trigger ID"
// @Param trigger body models.TriggerRequest true "Trigger payload"
// @Success 200 {object} storage.Trigger "Updated trigger"
// @Failure 400 {object} map[string]string "Invalid JSON or trigger ID"
// @Failure 404 {object} map[string]string "Trigger not found"
// @Failure 422 {object} models.ValidationErrorResponse "Validation errors"
// @Router /triggers/{id} [put]
func (h *Handlers) UpdateTrigger(w http.ResponseWriter, r *http.Request) {
	id, ok := triggerID(w, r)
	if !ok {
		return
	}

	req, result, ok := h.decodeAndValidate(w, r)
	if !ok {
		return
	}

	existing, err := h.storage.GetTrigger(id)
	if err != nil {
		respondError(w, err)
		return
	}

	trigger := models.BuildTrigger(req, result)
	trigger.ID = id
	trigger.CreatedAt = existing.CreatedAt
	if req.Active == nil {
		trigger.Active = existing.Active
	}

	if err := h.storage.UpdateTrigger(trigger); err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, trigger)
}

// DeleteTrigger removes a trigger
// @Summary Delete trigger
// @Description Removes a trigger by ID
// @Tags triggers
// @Param id path int true "Trigger ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid trigger ID"
// @Failure 404 {object} map[string]string "Trigger not found"
// @Router /triggers/{id} [delete]
func (h *Handlers) DeleteTrigger(w http.ResponseWriter, r *http.Request) {
	id, ok := triggerID(w, r)
	if !ok {
		return
	}

	if err := h.storage.DeleteTrigger(id); err != nil {
		respondError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// EnableTrigger activates a trigger
// @Summary Enable trigger
// @Description Marks a trigger active so the scheduler picks it up
// @Tags triggers
// @Produce json
// @Param id path int true "Trigger ID"
// @Success 200 {object} map[string]string "Enable result"
// @Failure 400 {object} map[string]string "Invalid trigger ID"
// @Failure 404 {object} map[string]string "Trigger not found"
// @Router /triggers/{id}/enable [post]
func (h *Handlers) EnableTrigger(w http.ResponseWriter, r *http.Request) {
	h.setActive(w, r, true)
}

// DisableTrigger deactivates a trigger
// @Summary Disable trigger
// @Description Marks a trigger inactive without deleting it
// @Tags triggers
// @Produce json
// @Param id path int true "Trigger ID"
// @Success 200 {object} map[string]string "Disable result"
// @Failure 400 {object} map[string]string "Invalid trigger ID"
// @Failure 404 {object} map[string]string "Trigger not found"
// @Router /triggers/{id}/disable [post]
func (h *Handlers) DisableTrigger(w http.ResponseWriter, r *http.Request) {
	h.setActive(w, r, false)
}

func (h *Handlers) setActive(w http.ResponseWriter, r *http.Request, active bool) {
	id, ok := triggerID(w, r)
	if !ok {
		return
	}

	if err := h.storage.SetTriggerActive(id, active); err != nil {
		respondError(w, err)
		return
	}

	state := "disabled"
	if active {
		state = "enabled"
	}
	respondJSON(w, http.StatusOK, map[string]string{
		"status":  state,
		"message": fmt.Sprintf("Trigger %d %s", id, state),
	})
}

// CompileTrigger previews a recurrence without persisting anything
// @Summary Compile preview
// @Description Compiles the submitted recurrence into a cron expression and reports validation errors
// @Tags triggers
// @Accept json
// @Produce json
// @Param recurrence body recurrence.Model true "Recurrence form state"
// @Success 200 {object} models.CompileResponse "Compile outcome"
// @Failure 400 {object} map[string]string "Invalid JSON"
// @Router /triggers/compile [post]
func (h *Handlers) CompileTrigger(w http.ResponseWriter, r *http.Request) {
	var model recurrence.Model
	if err := json.NewDecoder(r.Body).Decode(&model); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"message": fmt.Sprintf("Invalid JSON: %v", err)})
		return
	}

	result := recurrence.Compile(model)
	errs := recurrence.Validate(model, result)

	respondJSON(w, http.StatusOK, models.CompileResponse{
		Cron:             result.Cron,
		Error:            result.Err,
		ValidationErrors: errs,
	})
}

// GetTimezones lists the supported schedule timezones
// @Summary List timezones
// @Description Returns the IANA zone identifiers accepted for TIME triggers
// @Tags triggers
// @Produce json
// @Success 200 {object} models.TimezonesResponse "Supported timezones"
// @Router /triggers/timezones [get]
func (h *Handlers) GetTimezones(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, models.TimezonesResponse{
		Timezones: recurrence.SupportedTimezones(),
	})
}

// decodeAndValidate parses a trigger payload and gates it through the same
// compiler and validator the console preview uses. A payload the preview
// would reject never reaches storage.
func (h *Handlers) decodeAndValidate(w http.ResponseWriter, r *http.Request) (*models.TriggerRequest, recurrence.CompileResult, bool) {
	var req models.TriggerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"message": fmt.Sprintf("Invalid JSON: %v", err)})
		return nil, recurrence.CompileResult{}, false
	}

	result := recurrence.Compile(req.Model)
	if errs := recurrence.Validate(req.Model, result); !errs.Valid() {
		respondJSON(w, http.StatusUnprocessableEntity, models.ValidationErrorResponse{
			Message: "trigger validation failed",
			Errors:  errs,
		})
		return nil, recurrence.CompileResult{}, false
	}
	return &req, result, true
}

func triggerID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id < 1 {
		respondJSON(w, http.StatusBadRequest, map[string]string{"message": "Invalid trigger ID"})
		return 0, false
	}
	return id, true
}
