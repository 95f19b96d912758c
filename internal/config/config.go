package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/teambition/rrule-go"
	"gopkg.in/yaml.v3"
)

const (
	StoreFile     = "file"
	StorePostgres = "postgres"

	DefaultServerAddr      = ":8080"
	DefaultWeekStart       = "MO"
	defaultReadTimeout     = 10
	defaultWriteTimeout    = 30
	defaultShutdownTimeout = 10
)

// ServerConfig configures the HTTP board
type ServerConfig struct {
	Addr                   string `yaml:"addr,omitempty"`
	ReadTimeoutSeconds     int    `yaml:"readTimeoutSeconds,omitempty" validate:"omitempty,min=1"`
	WriteTimeoutSeconds    int    `yaml:"writeTimeoutSeconds,omitempty" validate:"omitempty,min=1"`
	ShutdownTimeoutSeconds int    `yaml:"shutdownTimeoutSeconds,omitempty" validate:"omitempty,min=1"`
}

func (s ServerConfig) ReadTimeout() time.Duration {
	return time.Duration(s.ReadTimeoutSeconds) * time.Second
}

func (s ServerConfig) WriteTimeout() time.Duration {
	return time.Duration(s.WriteTimeoutSeconds) * time.Second
}

func (s ServerConfig) ShutdownTimeout() time.Duration {
	return time.Duration(s.ShutdownTimeoutSeconds) * time.Second
}

// Config represents the application configuration
type Config struct {
	Store       string       `yaml:"store" validate:"required,oneof=file postgres"`
	RosterFile  string       `yaml:"rosterFile,omitempty" validate:"required_if=Store file"`
	DatabaseURL string       `yaml:"databaseURL,omitempty" validate:"required_if=Store postgres"`
	Server      ServerConfig `yaml:"server,omitempty"`

	// WeekStart is the first day of contract weeks, as an RRULE weekday (MO..SU)
	WeekStart string `yaml:"weekStart,omitempty" validate:"omitempty,oneof=MO TU WE TH FR SA SU"`

	// Palette overrides the CSS color of severity classes
	Palette map[string]string `yaml:"palette,omitempty" validate:"omitempty,dive,keys,oneof=hard-violation medium-violation soft-violation positive neutral,endkeys,required"`

	// CategoryTiers overrides the tier indictment categories are reported at
	CategoryTiers map[string]string `yaml:"categoryTiers,omitempty" validate:"omitempty,dive,keys,required,endkeys,oneof=hard medium soft"`

	ReportSheetID   string `yaml:"reportSheetID,omitempty"`
	ReportTabPrefix string `yaml:"reportTabPrefix,omitempty"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

var weekdays = map[string]time.Weekday{
	"SU": time.Sunday,
	"MO": time.Monday,
	"TU": time.Tuesday,
	"WE": time.Wednesday,
	"TH": time.Thursday,
	"FR": time.Friday,
	"SA": time.Saturday,
}

// WeekStartDay returns the configured first day of the week
func (c *Config) WeekStartDay() time.Weekday {
	if day, ok := weekdays[c.WeekStart]; ok {
		return day
	}
	return time.Monday
}

// ConfigFileName returns the config file name for an environment, e.g. shiftboard_config.test.yaml
func ConfigFileName(env string) string {
	if env == "" {
		return "shiftboard_config.yaml"
	}
	return "shiftboard_config." + env + ".yaml"
}

// LoadWithEnv loads and validates the configuration for an environment.
// It looks for the config file in the current directory first, then in the user's home directory
func LoadWithEnv(env string) (*Config, error) {
	configPath, err := findFile(ConfigFileName(env))
	if err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}

	return LoadFromPath(configPath)
}

// LoadFromPath loads and validates the configuration from a specific path
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

// Validate validates the configuration struct and checks the week start builds a weekly rule
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	if cfg.WeekStart != "" {
		if _, err := rrule.StrToRRule("FREQ=WEEKLY;BYDAY=" + cfg.WeekStart); err != nil {
			return fmt.Errorf("invalid weekStart %q: %w", cfg.WeekStart, err)
		}
	}

	return nil
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = DefaultServerAddr
	}
	if cfg.Server.ReadTimeoutSeconds == 0 {
		cfg.Server.ReadTimeoutSeconds = defaultReadTimeout
	}
	if cfg.Server.WriteTimeoutSeconds == 0 {
		cfg.Server.WriteTimeoutSeconds = defaultWriteTimeout
	}
	if cfg.Server.ShutdownTimeoutSeconds == 0 {
		cfg.Server.ShutdownTimeoutSeconds = defaultShutdownTimeout
	}
	if cfg.WeekStart == "" {
		cfg.WeekStart = DefaultWeekStart
	}
}

// findFile searches for a file in the current directory, then the home directory
func findFile(name string) (string, error) {
	if _, err := os.Stat(name); err == nil {
		return name, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	homePath := filepath.Join(homeDir, name)
	if _, err := os.Stat(homePath); err == nil {
		return homePath, nil
	}

	return "", fmt.Errorf("%s not found in current directory or home directory", name)
}
