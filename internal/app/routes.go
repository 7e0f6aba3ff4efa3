package app

import (
	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"
	"trigger-console/internal/common/ratelimit"
	"trigger-console/internal/handlers"
	"trigger-console/internal/middleware"
)

// SetupRoutes configures all HTTP routes for the application.
func SetupRoutes(router *mux.Router, h *handlers.Handlers, rateLimiter ratelimit.Limiter) {
	router.Use(middleware.LoggingMiddleware)

	// Health check and swagger UI sit outside the rate limited API surface.
	router.HandleFunc("/health", h.HealthCheck).Methods("GET")
	router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	api := router.PathPrefix("/api").Subrouter()
	if rateLimiter != nil {
		api.Use(ratelimit.HTTPMiddleware(rateLimiter, ratelimit.IPKey))
	}

	// Fixed paths must register before the {id} patterns.
	api.HandleFunc("/triggers/compile", h.CompileTrigger).Methods("POST")
	api.HandleFunc("/triggers/timezones", h.GetTimezones).Methods("GET")

	api.HandleFunc("/triggers", h.GetTriggers).Methods("GET")
	api.HandleFunc("/triggers", h.CreateTrigger).Methods("POST")
	api.HandleFunc("/triggers/{id:[0-9]+}", h.GetTrigger).Methods("GET")
	api.HandleFunc("/triggers/{id:[0-9]+}", h.UpdateTrigger).Methods("PUT")
	api.HandleFunc("/triggers/{id:[0-9]+}", h.DeleteTrigger).Methods("DELETE")
	api.HandleFunc("/triggers/{id:[0-9]+}/enable", h.EnableTrigger).Methods("POST")
	api.HandleFunc("/triggers/{id:[0-9]+}/disable", h.DisableTrigger).Methods("POST")
}

// NewRouter builds the fully configured router for the application.
func (app *App) NewRouter() *mux.Router {
	router := mux.NewRouter()
	SetupRoutes(router, app.Handlers, app.RateLimiter)
	return router
}
