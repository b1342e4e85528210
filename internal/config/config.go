package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/lmeunier/vocaflash/internal/models"
)

type Config struct {
	Addr     string
	DBPath   string
	LogLevel string

	// Study session defaults; per-session overrides come in over the API.
	CardsPerDay       int
	NewCardsPerDay    int
	DifficultInterval int
	GoodInterval      int
	EasyInterval      int
}

// Load reads configuration from a .env file (if present) and environment variables,
// applying sensible defaults when values are missing or invalid.
func Load() Config {
	// Ignore error so the app still starts when .env is absent in production.
	_ = godotenv.Load()

	defaults := models.DefaultStudySettings()
	return Config{
		Addr:              envOr("ADDR", ":8080"),
		DBPath:            envOr("DB_PATH", "vocaflash.db"),
		LogLevel:          envOr("LOG_LEVEL", "INFO"),
		CardsPerDay:       envIntOr("CARDS_PER_DAY", defaults.CardsPerDay),
		NewCardsPerDay:    envIntOr("NEW_CARDS_PER_DAY", defaults.NewCardsPerDay),
		DifficultInterval: envIntOr("DIFFICULT_INTERVAL", defaults.DifficultInterval),
		GoodInterval:      envIntOr("GOOD_INTERVAL", defaults.GoodInterval),
		EasyInterval:      envIntOr("EASY_INTERVAL", defaults.EasyInterval),
	}
}

// Validate checks the configuration for values the server cannot run with.
func (c Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("ADDR cannot be empty")
	}
	if c.DBPath == "" {
		return fmt.Errorf("DB_PATH cannot be empty")
	}
	if c.CardsPerDay < 5 || c.CardsPerDay > 100 {
		return fmt.Errorf("CARDS_PER_DAY must be between 5 and 100, got %d", c.CardsPerDay)
	}
	if c.NewCardsPerDay < 1 || c.NewCardsPerDay > 50 {
		return fmt.Errorf("NEW_CARDS_PER_DAY must be between 1 and 50, got %d", c.NewCardsPerDay)
	}
	if c.DifficultInterval < 1 || c.GoodInterval < 1 || c.EasyInterval < 1 {
		return fmt.Errorf("rating intervals must be at least 1 day")
	}
	return nil
}

// StudySettings converts the configured defaults into scheduler settings.
func (c Config) StudySettings() models.StudySettings {
	return models.StudySettings{
		CardsPerDay:       c.CardsPerDay,
		NewCardsPerDay:    c.NewCardsPerDay,
		DifficultInterval: c.DifficultInterval,
		GoodInterval:      c.GoodInterval,
		EasyInterval:      c.EasyInterval,
	}
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envIntOr(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
		log.Printf("invalid value for %s=%q, using default %d", key, v, def)
	}
	return def
}
