package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lmeunier/vocaflash/internal/config"
)

func validConfig() config.Config {
	return config.Config{
		Addr:              ":8080",
		DBPath:            "test.db",
		LogLevel:          "INFO",
		CardsPerDay:       20,
		NewCardsPerDay:    10,
		DifficultInterval: 1,
		GoodInterval:      2,
		EasyInterval:      4,
	}
}

func TestValidate_ValidConfig(t *testing.T) {
	cfg := validConfig()
	assert.NoError(t, cfg.Validate())
}

func TestValidate_EmptyAddr(t *testing.T) {
	cfg := validConfig()
	cfg.Addr = ""

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ADDR cannot be empty")
}

func TestValidate_EmptyDBPath(t *testing.T) {
	cfg := validConfig()
	cfg.DBPath = ""

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_PATH cannot be empty")
}

func TestValidate_CardsPerDayBounds(t *testing.T) {
	tests := []struct {
		name  string
		cards int
		valid bool
	}{
		{"below minimum", 4, false},
		{"at minimum", 5, true},
		{"at maximum", 100, true},
		{"above maximum", 101, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			cfg.CardsPerDay = tt.cards
			err := cfg.Validate()
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestValidate_NewCardsPerDayBounds(t *testing.T) {
	cfg := validConfig()
	cfg.NewCardsPerDay = 0
	assert.Error(t, cfg.Validate())

	cfg.NewCardsPerDay = 51
	assert.Error(t, cfg.Validate())
}

func TestValidate_IntervalsAtLeastOneDay(t *testing.T) {
	cfg := validConfig()
	cfg.GoodInterval = 0

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "intervals")
}

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"ADDR", "DB_PATH", "LOG_LEVEL", "CARDS_PER_DAY", "NEW_CARDS_PER_DAY"} {
		os.Unsetenv(key)
	}

	cfg := config.Load()
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "vocaflash.db", cfg.DBPath)
	assert.Equal(t, "INFO", cfg.LogLevel)
	assert.Equal(t, 20, cfg.CardsPerDay)
	assert.Equal(t, 10, cfg.NewCardsPerDay)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("ADDR", ":9999")
	t.Setenv("CARDS_PER_DAY", "50")
	t.Setenv("NEW_CARDS_PER_DAY", "not-a-number")

	cfg := config.Load()
	assert.Equal(t, ":9999", cfg.Addr)
	assert.Equal(t, 50, cfg.CardsPerDay)
	assert.Equal(t, 10, cfg.NewCardsPerDay, "invalid value falls back to the default")
}

func TestStudySettings(t *testing.T) {
	cfg := validConfig()
	cfg.CardsPerDay = 30

	settings := cfg.StudySettings()
	assert.Equal(t, 30, settings.CardsPerDay)
	assert.Equal(t, 2, settings.GoodInterval)
}
