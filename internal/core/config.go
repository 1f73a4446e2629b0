package core

import (
	"fmt"
	"strings"

	"github.com/sayedbaharun/aura/pkg/models"
	"github.com/spf13/viper"
)

// ConfigurationManager loads and validates the .auraconfig file.
type ConfigurationManager interface {
	LoadGlobalConfig() (*models.GlobalConfig, error)
	ValidateConfig(cfg *models.GlobalConfig) error
}

// viperConfigManager implements ConfigurationManager using Viper for
// reading the YAML configuration file.
type viperConfigManager struct {
	// basePath is the directory where .auraconfig resides.
	basePath string
}

// NewConfigurationManager creates a ConfigurationManager that reads
// configuration relative to basePath.
func NewConfigurationManager(basePath string) ConfigurationManager {
	return &viperConfigManager{basePath: basePath}
}

// defaultGlobalConfig returns a GlobalConfig populated with the stock
// capacity thresholds and defaults.
func defaultGlobalConfig() *models.GlobalConfig {
	th := DefaultThresholds()
	return &models.GlobalConfig{
		DefaultPriority:     models.P2,
		DefaultSlotCapacity: DefaultSlotCapacity,
		WarnRatio:           th.Warn,
		OverRatio:           th.Over,
		Alerts: models.AlertConfig{
			MaxQueueSize:    15,
			OverdueMaxCount: 3,
		},
	}
}

// LoadGlobalConfig reads the .auraconfig file from the base path. If the
// file does not exist, defaults are returned.
func (cm *viperConfigManager) LoadGlobalConfig() (*models.GlobalConfig, error) {
	cfg := defaultGlobalConfig()

	v := viper.New()
	v.SetConfigName(".auraconfig")
	v.SetConfigType("yaml")
	v.AddConfigPath(cm.basePath)

	v.SetDefault("defaults.priority", string(cfg.DefaultPriority))
	v.SetDefault("capacity.default_slot_hours", cfg.DefaultSlotCapacity)
	v.SetDefault("capacity.warn_ratio", cfg.WarnRatio)
	v.SetDefault("capacity.over_ratio", cfg.OverRatio)
	v.SetDefault("alerts.max_queue_size", cfg.Alerts.MaxQueueSize)
	v.SetDefault("alerts.overdue_max_count", cfg.Alerts.OverdueMaxCount)
	v.SetDefault("notifications.enabled", false)
	v.SetDefault("notifications.webhook_url", "")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading .auraconfig: %w", err)
	}

	cfg.DefaultPriority = models.Priority(v.GetString("defaults.priority"))
	cfg.DefaultSlotCapacity = v.GetFloat64("capacity.default_slot_hours")
	cfg.WarnRatio = v.GetFloat64("capacity.warn_ratio")
	cfg.OverRatio = v.GetFloat64("capacity.over_ratio")
	cfg.Alerts.MaxQueueSize = v.GetInt("alerts.max_queue_size")
	cfg.Alerts.OverdueMaxCount = v.GetInt("alerts.overdue_max_count")
	cfg.Notifications.Enabled = v.GetBool("notifications.enabled")
	cfg.Notifications.WebhookURL = v.GetString("notifications.webhook_url")

	// Parse capacity.slot_overrides section.
	var overrides []models.SlotOverrideConfig
	raw := v.Get("capacity.slot_overrides")
	if raw != nil {
		if items, ok := raw.([]interface{}); ok {
			for _, item := range items {
				m, ok := item.(map[string]interface{})
				if !ok {
					continue
				}
				var o models.SlotOverrideConfig
				if key, ok := m["key"].(string); ok {
					o.Key = key
				}
				switch h := m["capacity_hours"].(type) {
				case float64:
					o.CapacityHours = h
				case int:
					o.CapacityHours = float64(h)
				}
				if o.Key != "" {
					overrides = append(overrides, o)
				}
			}
		}
	}
	cfg.SlotOverrides = overrides

	return cfg, nil
}

// validPriorities is the set of allowed Priority values.
var validPriorities = map[models.Priority]bool{
	models.P0: true,
	models.P1: true,
	models.P2: true,
	models.P3: true,
}

// ValidateConfig checks the configuration for invalid values and returns
// a clear error message identifying every problem found.
func (cm *viperConfigManager) ValidateConfig(cfg *models.GlobalConfig) error {
	if cfg == nil {
		return fmt.Errorf("configuration is nil")
	}

	var errs []string

	if cfg.DefaultPriority != "" && !validPriorities[cfg.DefaultPriority] {
		errs = append(errs, fmt.Sprintf(
			"defaults.priority %q is invalid, must be one of: P0, P1, P2, P3",
			cfg.DefaultPriority,
		))
	}

	if cfg.DefaultSlotCapacity <= 0 {
		errs = append(errs, fmt.Sprintf(
			"capacity.default_slot_hours must be positive, got %g", cfg.DefaultSlotCapacity,
		))
	}

	if cfg.WarnRatio <= 0 || cfg.WarnRatio >= cfg.OverRatio {
		errs = append(errs, fmt.Sprintf(
			"capacity.warn_ratio %g must be positive and below over_ratio %g",
			cfg.WarnRatio, cfg.OverRatio,
		))
	}

	for _, o := range cfg.SlotOverrides {
		if o.CapacityHours < 0 {
			errs = append(errs, fmt.Sprintf(
				"capacity.slot_overrides: %q has negative capacity %g", o.Key, o.CapacityHours,
			))
		}
	}

	if cfg.Notifications.Enabled && cfg.Notifications.WebhookURL == "" {
		errs = append(errs, "notifications.enabled is true but notifications.webhook_url is empty")
	}

	if cfg.Alerts.MaxQueueSize < 0 {
		errs = append(errs, fmt.Sprintf(
			"alerts.max_queue_size must be non-negative, got %d", cfg.Alerts.MaxQueueSize,
		))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}

	return nil
}
