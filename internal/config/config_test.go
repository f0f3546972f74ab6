package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nikhilcs/cs-portfolio-api/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DATABASE_NAME", "")

	cfg := config.Load()

	assert.Equal(t, "8000", cfg.Port)
	assert.Empty(t, cfg.DatabaseURL, "a missing store must not be fatal")
	assert.Equal(t, "portfolio", cfg.DatabaseName)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9001")
	t.Setenv("DATABASE_URL", "mongodb://localhost:27017")
	t.Setenv("DATABASE_NAME", "marketing")

	cfg := config.Load()

	assert.Equal(t, "9001", cfg.Port)
	assert.Equal(t, "mongodb://localhost:27017", cfg.DatabaseURL)
	assert.Equal(t, "marketing", cfg.DatabaseName)
}

func TestLoadTrimsWhitespace(t *testing.T) {
	t.Setenv("PORT", "  8080  ")

	cfg := config.Load()

	assert.Equal(t, "8080", cfg.Port)
}
