package main

import (
	"os"

	"trigger-console/internal/app"
)

// @title Trigger Console API
// @version 1.0
// @description REST API for managing process triggers: schedule recurrence
// @description compilation to cron, validation, and trigger lifecycle.
// @BasePath /api
func main() {
	if err := app.Run(); err != nil {
		os.Exit(1)
	}
}
