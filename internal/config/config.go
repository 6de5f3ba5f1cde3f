// Package config loads and validates the application configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/teambition/rrule-go"
	"gopkg.in/yaml.v3"
)

// DurationEntry names one discrete session length and the minimum per-role
// headcount it requires.
type DurationEntry struct {
	Name    string `yaml:"name" validate:"required"`
	Minutes int    `yaml:"minutes" validate:"required,min=1"`
	MinRole int    `yaml:"minRole" validate:"required,min=1"`
}

// Config represents the application configuration.
type Config struct {
	DataFolder        string          `yaml:"dataFolder" validate:"required"`
	MaxEvents         int             `yaml:"maxEvents" validate:"required,min=1"`
	AbsMinRole        int             `yaml:"absMinRole" validate:"required,min=1"`
	AbsMaxRole        int             `yaml:"absMaxRole" validate:"required,gtefield=AbsMinRole"`
	DurationTable     []DurationEntry `yaml:"durationTable" validate:"required,min=1,dive"`
	CancellationsFile string          `yaml:"cancellationsFile,omitempty"`
	PartnershipsFile  string          `yaml:"partnershipsFile,omitempty"`
	HistoryDBPath     string          `yaml:"historyDBPath" validate:"required"`
	BackupFolder      string          `yaml:"backupFolder,omitempty"`
	SearchConcurrency int             `yaml:"searchConcurrency,omitempty" validate:"omitempty,min=1"`

	// RRule, PeriodStart and PeriodEnd describe the period's recurring
	// session schedule, consumed by pkg/eventgen to build the candidate
	// Event list the core searches over.
	RRule       string `yaml:"rrule" validate:"required"`
	PeriodStart string `yaml:"periodStart" validate:"required"`
	PeriodEnd   string `yaml:"periodEnd" validate:"required"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// LoadWithEnv loads and validates the configuration with an environment
// suffix. For example, env="test" will look for "peeps_config.test.yaml".
func LoadWithEnv(env string) (*Config, error) {
	configPath, err := findConfigFile(env)
	if err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}

	return LoadFromPath(configPath)
}

// LoadFromPath loads and validates the configuration from a specific path.
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

	return &cfg, nil
}

// Validate validates the configuration struct and checks rrule syntax.
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	if _, err := rrule.StrToRRule(cfg.RRule); err != nil {
		return fmt.Errorf("invalid rrule: %w", err)
	}

	return nil
}

// findConfigFile searches for a config file in the current directory, then
// the home directory. If env is provided, it's added as an extension (e.g.
// "peeps_config.test.yaml").
func findConfigFile(env string) (string, error) {
	configFileName := "peeps_config.yaml"
	if env != "" {
		configFileName = "peeps_config." + env + ".yaml"
	}

	if _, err := os.Stat(configFileName); err == nil {
		return configFileName, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	homeConfigPath := filepath.Join(homeDir, configFileName)
	if _, err := os.Stat(homeConfigPath); err == nil {
		return homeConfigPath, nil
	}

	return "", fmt.Errorf("config file not found in current directory or home directory")
}
