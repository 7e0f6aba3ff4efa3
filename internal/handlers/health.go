package handlers

import (
	"net/http"
)

// HealthCheck reports service liveness
// @Summary Health check
// @Description Returns service status including storage connectivity
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string "Service healthy"
// @Failure 503 {object} map[string]string "Storage unreachable"
// @Router /health [get]
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	if err := h.storage.Health(); err != nil {
		respondJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status":  "unhealthy",
			"storage": "unreachable",
		})
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"storage": "ok",
	})
}
