package cli

import (
	"github.com/sayedbaharun/aura/internal/core"
	"github.com/sayedbaharun/aura/internal/observability"
	"github.com/sayedbaharun/aura/internal/storage"
	"github.com/sayedbaharun/aura/pkg/models"
)

// Service instances, set during app initialization in app.go.
var (
	// BasePath is the root directory holding all Aura data files.
	BasePath string

	// Storage layer.
	Tasks    storage.TaskStore
	Ventures storage.VentureStore
	Days     storage.DayStore

	// Core services.
	Scheduler     *core.Scheduler
	Catalog       *core.Catalog
	CapThresholds core.Thresholds

	// Today supplies the reference date for urgency and planning views.
	Today func() models.Date

	// Observability.
	EventLog    observability.EventLog
	AlertEngine observability.AlertEngine
	MetricsCalc observability.MetricsCalculator
	Notifier    observability.Notifier
)
