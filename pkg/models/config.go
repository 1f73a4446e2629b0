package models

// SlotOverrideConfig lets the config file adjust the capacity of a single
// catalog slot without redefining the whole catalog.
type SlotOverrideConfig struct {
	Key           string  `yaml:"key" mapstructure:"key"`
	CapacityHours float64 `yaml:"capacity_hours" mapstructure:"capacity_hours"`
}

// NotificationConfig holds webhook notification settings.
type NotificationConfig struct {
	Enabled    bool   `yaml:"enabled" mapstructure:"enabled"`
	WebhookURL string `yaml:"webhook_url" mapstructure:"webhook_url"`
}

// AlertConfig holds thresholds for the alert engine.
type AlertConfig struct {
	MaxQueueSize    int `yaml:"max_queue_size" mapstructure:"max_queue_size"`
	OverdueMaxCount int `yaml:"overdue_max_count" mapstructure:"overdue_max_count"`
}

// GlobalConfig holds system-wide settings read from .auraconfig via Viper.
type GlobalConfig struct {
	DefaultPriority     Priority             `yaml:"default_priority" mapstructure:"default_priority"`
	DefaultSlotCapacity float64              `yaml:"default_slot_capacity" mapstructure:"default_slot_capacity"`
	WarnRatio           float64              `yaml:"warn_ratio" mapstructure:"warn_ratio"`
	OverRatio           float64              `yaml:"over_ratio" mapstructure:"over_ratio"`
	SlotOverrides       []SlotOverrideConfig `yaml:"slot_overrides,omitempty" mapstructure:"slot_overrides"`
	Notifications       NotificationConfig   `yaml:"notifications" mapstructure:"notifications"`
	Alerts              AlertConfig          `yaml:"alerts" mapstructure:"alerts"`
}
