package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		DataFolder:    "data",
		MaxEvents:     5,
		AbsMinRole:    2,
		AbsMaxRole:    4,
		DurationTable: []DurationEntry{{Name: "long", Minutes: 120, MinRole: 3}},
		HistoryDBPath: "history.db",
		RRule:         "FREQ=WEEKLY;BYDAY=SU",
		PeriodStart:   "2026-01-01",
		PeriodEnd:     "2026-03-31",
	}
}

func TestValidate_ValidConfig(t *testing.T) {
	err := Validate(validConfig())
	assert.NoError(t, err)
}

func TestValidate_MissingRequiredField(t *testing.T) {
	cfg := validConfig()
	cfg.HistoryDBPath = ""

	err := Validate(cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestValidate_AbsMaxBelowAbsMin(t *testing.T) {
	cfg := validConfig()
	cfg.AbsMinRole = 4
	cfg.AbsMaxRole = 2

	err := Validate(cfg)
	assert.Error(t, err)
}

func TestValidate_InvalidRRule(t *testing.T) {
	cfg := validConfig()
	cfg.RRule = "INVALID_RRULE_SYNTAX"

	err := Validate(cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid rrule")
}

func TestValidate_ComplexValidRRule(t *testing.T) {
	cfg := validConfig()
	cfg.RRule = "FREQ=MONTHLY;BYDAY=1SU;BYMONTH=1,4,7,10"

	err := Validate(cfg)
	assert.NoError(t, err)
}

func TestLoadFromPath_ValidConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "test_config.yaml")

	raw := `
dataFolder: "data"
maxEvents: 5
absMinRole: 2
absMaxRole: 4
durationTable:
  - name: long
    minutes: 120
    minRole: 3
historyDBPath: "history.db"
rrule: "FREQ=WEEKLY;BYDAY=SU"
periodStart: "2026-01-01"
periodEnd: "2026-03-31"
`

	require.NoError(t, os.WriteFile(configPath, []byte(raw), 0644))

	cfg, err := LoadFromPath(configPath)
	require.NoError(t, err)

	assert.Equal(t, "data", cfg.DataFolder)
	assert.Equal(t, 5, cfg.MaxEvents)
	assert.Equal(t, 2, cfg.AbsMinRole)
	assert.Equal(t, 4, cfg.AbsMaxRole)
	require.Len(t, cfg.DurationTable, 1)
	assert.Equal(t, "long", cfg.DurationTable[0].Name)
	assert.Equal(t, 120, cfg.DurationTable[0].Minutes)
	assert.Equal(t, "FREQ=WEEKLY;BYDAY=SU", cfg.RRule)
}

func TestLoadFromPath_InvalidRRule(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid_rrule.yaml")

	raw := `
dataFolder: "data"
maxEvents: 5
absMinRole: 2
absMaxRole: 4
durationTable:
  - name: long
    minutes: 120
    minRole: 3
historyDBPath: "history.db"
rrule: "NOT_A_RULE"
periodStart: "2026-01-01"
periodEnd: "2026-03-31"
`

	require.NoError(t, os.WriteFile(configPath, []byte(raw), 0644))

	_, err := LoadFromPath(configPath)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid rrule")
}

func TestLoadFromPath_MissingFile(t *testing.T) {
	_, err := LoadFromPath(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
