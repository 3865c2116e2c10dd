package config

import (
	"os"

	"codeberg.org/mutker/dcdiag/internal/errors"
	"github.com/spf13/viper"
)

const (
	DefaultLogLevel        = "info"
	DefaultDBPath          = "hardware.db"
	DefaultActivityLogPath = "activity.log"

	defaultMaxTemperature = 40
	defaultMaxCPUUsage    = 90
	defaultMaxMemoryUsage = 85
)

// defaultHardwareTypes is the hardware-type set synthesized when no
// config file exists
var defaultHardwareTypes = []string{"Server", "Switch", "Storage", "Disk"}

// Thresholds holds the upper bound per diagnostic metric. A reading
// strictly greater than the bound is flagged.
type Thresholds struct {
	MaxTemperature float64 `mapstructure:"max_temperature_celsius"`
	MaxCPUUsage    float64 `mapstructure:"max_cpu_usage_percentage"`
	MaxMemoryUsage float64 `mapstructure:"max_memory_usage_percentage"`
}

type Config struct {
	LogLevel      string     `mapstructure:"log_level"`
	DBPath        string     `mapstructure:"database"`
	ActivityLog   string     `mapstructure:"activity_log"`
	HardwareTypes []string   `mapstructure:"hardware_types"`
	Thresholds    Thresholds `mapstructure:"diagnostic_thresholds"`

	// Synthesized is true when no config file existed and the defaults
	// were written out. Callers report this to the activity log.
	Synthesized bool `mapstructure:"-"`
	// Path is the config file that was read or created.
	Path string `mapstructure:"-"`
}

// Load reads the configuration from the given path, falling back to the
// DCDIAG_CONFIG environment variable and then to dcdiag.toml in the
// working directory. If no file exists at the resolved path, the default
// configuration is synthesized and persisted there.
func Load(path string) (*Config, error) {
	errFactory := errors.New()

	if path == "" {
		path = os.Getenv("DCDIAG_CONFIG")
	}
	if path == "" {
		path = "dcdiag.toml"
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")

	v.SetDefault("log_level", DefaultLogLevel)
	v.SetDefault("database", DefaultDBPath)
	v.SetDefault("activity_log", DefaultActivityLogPath)
	v.SetDefault("hardware_types", defaultHardwareTypes)
	v.SetDefault("diagnostic_thresholds.max_temperature_celsius", defaultMaxTemperature)
	v.SetDefault("diagnostic_thresholds.max_cpu_usage_percentage", defaultMaxCPUUsage)
	v.SetDefault("diagnostic_thresholds.max_memory_usage_percentage", defaultMaxMemoryUsage)

	synthesized := false
	if err := v.ReadInConfig(); err != nil {
		if !os.IsNotExist(err) {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, errFactory.Wrap(errors.ErrReadConfig, err)
			}
		}

		// No config file: persist the defaults so the next run sees
		// the same policy the operator can edit.
		if err := v.WriteConfigAs(path); err != nil {
			return nil, errFactory.Wrap(errors.ErrWriteConfig, err)
		}
		synthesized = true
	}

	config := &Config{}
	if err := v.Unmarshal(config); err != nil {
		return nil, errFactory.Wrap(errors.ErrReadConfig, err)
	}
	config.Synthesized = synthesized
	config.Path = path

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) Validate() error {
	errFactory := errors.New()

	if len(c.HardwareTypes) == 0 {
		return errFactory.WithMessage(errors.ErrInvalidConfig, "hardware_types must not be empty")
	}
	if c.DBPath == "" {
		return errFactory.WithMessage(errors.ErrInvalidConfig, "database path must not be empty")
	}
	if c.ActivityLog == "" {
		return errFactory.WithMessage(errors.ErrInvalidConfig, "activity_log path must not be empty")
	}

	return nil
}

// SupportsHardwareType reports whether the given type is a member of the
// configured hardware-type set
func (c *Config) SupportsHardwareType(hardwareType string) bool {
	for _, t := range c.HardwareTypes {
		if t == hardwareType {
			return true
		}
	}

	return false
}
