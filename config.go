package mudir

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config consolidates settings for the data core and its persistence cycle.
type Config struct {
	Storage  StorageConfig  `json:"storage" mapstructure:"storage"`
	Settings SettingsConfig `json:"settings" mapstructure:"settings"`
	Logging  LoggingConfig  `json:"logging" mapstructure:"logging"`
}

// StorageConfig contains durable document settings.
type StorageConfig struct {
	DataFile       string        `json:"dataFile" mapstructure:"data_file"`
	ExportDir      string        `json:"exportDir" mapstructure:"export_dir"`
	DebounceWindow time.Duration `json:"debounceWindow" mapstructure:"debounce_window"`
}

// SettingsConfig contains defaults used when seeding a fresh document.
type SettingsConfig struct {
	AppVersion       string `json:"appVersion" mapstructure:"app_version"`
	DefaultCurrency  string `json:"defaultCurrency" mapstructure:"default_currency"`
	OrganizationName string `json:"organizationName" mapstructure:"organization_name"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level  string `json:"level" mapstructure:"level"`
	Format string `json:"format" mapstructure:"format"`
}

// DefaultConfig returns a default configuration.
func DefaultConfig() *Config {
	return &Config{
		Storage: StorageConfig{
			DataFile:       "mudir_db.json",
			ExportDir:      ".",
			DebounceWindow: 1000 * time.Millisecond,
		},
		Settings: SettingsConfig{
			AppVersion:      "1.0.0",
			DefaultCurrency: "₹",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Storage.DataFile == "" {
		return NewMudirError(ErrorTypeValidation, ErrCodeConfigInvalid, "storage.data_file must not be empty")
	}
	if c.Storage.DebounceWindow <= 0 {
		return NewMudirError(ErrorTypeValidation, ErrCodeConfigInvalid, "storage.debounce_window must be greater than 0")
	}
	if c.Settings.AppVersion == "" {
		return NewMudirError(ErrorTypeValidation, ErrCodeConfigInvalid, "settings.app_version must not be empty")
	}
	if c.Settings.DefaultCurrency == "" {
		return NewMudirError(ErrorTypeValidation, ErrCodeConfigInvalid, "settings.default_currency must not be empty")
	}
	return nil
}

// LoadConfig reads configuration from an optional file and MUDIR_* environment
// variables, layered over DefaultConfig.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	defaults := DefaultConfig()
	v.SetDefault("storage.data_file", defaults.Storage.DataFile)
	v.SetDefault("storage.export_dir", defaults.Storage.ExportDir)
	v.SetDefault("storage.debounce_window", defaults.Storage.DebounceWindow)
	v.SetDefault("settings.app_version", defaults.Settings.AppVersion)
	v.SetDefault("settings.default_currency", defaults.Settings.DefaultCurrency)
	v.SetDefault("settings.organization_name", defaults.Settings.OrganizationName)
	v.SetDefault("logging.level", defaults.Logging.Level)
	v.SetDefault("logging.format", defaults.Logging.Format)

	v.SetEnvPrefix("MUDIR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, NewMudirError(ErrorTypeValidation, ErrCodeConfigInvalid, "failed to read config file").WithCause(err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, NewMudirError(ErrorTypeValidation, ErrCodeConfigInvalid, "failed to parse config").WithCause(err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
