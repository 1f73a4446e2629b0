// Package internal provides the App struct that wires all components of
// Aura together and initializes the CLI layer.
package internal

import (
	"os"
	"path/filepath"
	"time"

	"github.com/sayedbaharun/aura/internal/cli"
	"github.com/sayedbaharun/aura/internal/core"
	"github.com/sayedbaharun/aura/internal/observability"
	"github.com/sayedbaharun/aura/internal/storage"
	"github.com/sayedbaharun/aura/pkg/models"
)

// App holds all service dependencies for Aura.
type App struct {
	BasePath string

	// Configuration
	ConfigMgr core.ConfigurationManager

	// Storage layer
	Tasks    storage.TaskStore
	Ventures storage.VentureStore
	Days     storage.DayStore

	// Core services
	Catalog       *core.Catalog
	CapThresholds core.Thresholds
	Scheduler     *core.Scheduler

	// Observability
	EventLog    observability.EventLog
	AlertEngine observability.AlertEngine
	MetricsCalc observability.MetricsCalculator
	Notifier    observability.Notifier
}

// NewApp creates and wires all components of Aura. basePath is the root
// directory where all data is stored (typically ~/.aura or the directory
// containing .auraconfig).
func NewApp(basePath string) (*App, error) {
	app := &App{BasePath: basePath}

	// --- Configuration ---
	app.ConfigMgr = core.NewConfigurationManager(basePath)
	globalCfg, err := app.ConfigMgr.LoadGlobalConfig()
	if err != nil {
		// Use defaults if config file is missing or malformed.
		globalCfg = &models.GlobalConfig{
			DefaultPriority:     models.P2,
			DefaultSlotCapacity: core.DefaultSlotCapacity,
			WarnRatio:           0.7,
			OverRatio:           1.0,
		}
	}

	// --- Slot catalog and capacity thresholds ---
	opts := []core.CatalogOption{}
	if globalCfg.DefaultSlotCapacity > 0 {
		opts = append(opts, core.WithDefaultCapacity(globalCfg.DefaultSlotCapacity))
	}
	for _, o := range globalCfg.SlotOverrides {
		opts = append(opts, core.WithCapacityOverride(o.Key, o.CapacityHours))
	}
	app.Catalog = core.NewCatalog(opts...)

	app.CapThresholds = core.DefaultThresholds()
	if globalCfg.WarnRatio > 0 {
		app.CapThresholds.Warn = globalCfg.WarnRatio
	}
	if globalCfg.OverRatio > 0 {
		app.CapThresholds.Over = globalCfg.OverRatio
	}

	// --- Storage layer ---
	app.Tasks = storage.NewTaskStore(basePath)
	app.Ventures = storage.NewVentureStore(basePath)
	app.Days = storage.NewDayStore(basePath)

	// --- Observability ---
	eventLogPath := filepath.Join(basePath, ".aura_events.jsonl")
	app.EventLog, err = observability.NewJSONLEventLog(eventLogPath)
	if err != nil {
		// Non-fatal: disable observability if the log can't be created.
		app.EventLog = nil
	}

	// Dates are taken in local time: "today" means the user's calendar
	// day, not UTC's.
	today := func() models.Date { return models.DateOf(time.Now()) }

	thresholds := observability.DefaultAlertThresholds()
	if globalCfg.Alerts.MaxQueueSize > 0 {
		thresholds.MaxQueueSize = globalCfg.Alerts.MaxQueueSize
	}
	if globalCfg.Alerts.OverdueMaxCount > 0 {
		thresholds.OverdueMaxCount = globalCfg.Alerts.OverdueMaxCount
	}
	app.AlertEngine = observability.NewAlertEngine(app.Catalog, app.CapThresholds, thresholds, today)
	if app.EventLog != nil {
		app.MetricsCalc = observability.NewMetricsCalculator(app.EventLog)
	}
	if globalCfg.Notifications.Enabled && globalCfg.Notifications.WebhookURL != "" {
		app.Notifier = observability.NewSlackNotifier(globalCfg.Notifications.WebhookURL)
	}

	// --- Core services ---
	var events core.EventLogger
	if app.EventLog != nil {
		events = app.EventLog
	}
	app.Scheduler = core.NewScheduler(&scheduleStoreAdapter{store: app.Tasks}, events)

	// --- Wire CLI package-level variables ---
	cli.BasePath = basePath
	cli.Tasks = app.Tasks
	cli.Ventures = app.Ventures
	cli.Days = app.Days
	cli.Scheduler = app.Scheduler
	cli.Catalog = app.Catalog
	cli.CapThresholds = app.CapThresholds
	cli.Today = today

	cli.EventLog = app.EventLog
	cli.AlertEngine = app.AlertEngine
	cli.MetricsCalc = app.MetricsCalc
	cli.Notifier = app.Notifier

	return app, nil
}

// Close releases resources held by the App, such as the event log file
// handle. It is safe to call Close on an App whose EventLog is nil.
func (a *App) Close() error {
	if a.EventLog != nil {
		return a.EventLog.Close()
	}
	return nil
}

// ResolveBasePath determines the base path for the Aura data directory.
// It checks the AURA_HOME env var, then walks up from the current
// directory looking for a .auraconfig.yaml, and falls back to ~/.aura.
func ResolveBasePath() string {
	if home := os.Getenv("AURA_HOME"); home != "" {
		return home
	}
	dir, err := os.Getwd()
	if err == nil {
		for {
			if _, err := os.Stat(filepath.Join(dir, ".auraconfig.yaml")); err == nil {
				return dir
			}
			parent := filepath.Dir(dir)
			if parent == dir {
				break
			}
			dir = parent
		}
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".aura")
	}
	cwd, _ := os.Getwd()
	return cwd
}

// --- Adapters ---

// scheduleStoreAdapter adapts storage.TaskStore to core.ScheduleStore.
type scheduleStoreAdapter struct {
	store storage.TaskStore
}

func (a *scheduleStoreAdapter) Load() error {
	return a.store.Load()
}

func (a *scheduleStoreAdapter) GetTask(id string) (*models.Task, error) {
	return a.store.GetTask(id)
}

func (a *scheduleStoreAdapter) GetAllTasks() ([]models.Task, error) {
	return a.store.GetAllTasks()
}

func (a *scheduleStoreAdapter) ApplyFocus(changes []core.FocusChange) error {
	sc := make([]storage.FocusChange, len(changes))
	for i, c := range changes {
		sc[i] = storage.FocusChange{
			TaskID:    c.TaskID,
			FocusDate: c.FocusDate,
			FocusSlot: c.FocusSlot,
			DayID:     c.DayID,
		}
	}
	return a.store.ApplyFocus(sc)
}
