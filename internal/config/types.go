package config

import "time"

// Config is the top-level nexus configuration, corresponding to .nexus.yml.
// Keys are flat so that every field can be overridden from NEXUS_* variables.
type Config struct {
	BaseURL        string        `yaml:"base_url" koanf:"base_url" validate:"required,url"`
	Language       string        `yaml:"language" koanf:"language" validate:"required"`
	TopK           int           `yaml:"top_k" koanf:"top_k" validate:"min=1,max=50"`
	RequestTimeout time.Duration `yaml:"request_timeout" koanf:"request_timeout" validate:"gte=0"`

	HealthInterval time.Duration `yaml:"health_interval" koanf:"health_interval" validate:"gt=0"`
	NotifyDuration time.Duration `yaml:"notify_duration" koanf:"notify_duration" validate:"gt=0"`
	NotifyFade     time.Duration `yaml:"notify_fade" koanf:"notify_fade" validate:"gt=0"`

	UploadTick time.Duration `yaml:"upload_tick" koanf:"upload_tick" validate:"gt=0"`
	UploadStep int           `yaml:"upload_step" koanf:"upload_step" validate:"min=1,max=100"`
	UploadCap  int           `yaml:"upload_cap" koanf:"upload_cap" validate:"min=1,max=100"`

	DashboardPort     int  `yaml:"dashboard_port" koanf:"dashboard_port" validate:"min=1,max=65535"`
	DashboardAllowAll bool `yaml:"dashboard_allow_all" koanf:"dashboard_allow_all"`

	LogFile  string `yaml:"log_file" koanf:"log_file"`
	LogLevel string `yaml:"log_level" koanf:"log_level" validate:"oneof=debug info warn error"`
}

// DefaultConfig returns a Config with the values the web client used.
func DefaultConfig() *Config {
	return &Config{
		BaseURL:        "http://localhost:8000",
		Language:       "en",
		TopK:           5,
		HealthInterval: 30 * time.Second,
		NotifyDuration: 3 * time.Second,
		NotifyFade:     300 * time.Millisecond,
		UploadTick:     200 * time.Millisecond,
		UploadStep:     10,
		UploadCap:      90,
		DashboardPort:  8090,
		LogFile:        "nexus.log",
		LogLevel:       "info",
	}
}
