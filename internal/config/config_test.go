package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("TELEGRAM_TOKEN", "tok")
	t.Setenv("VYBE_API_KEY", "key")

	cfg := Load()

	assert.Equal(t, "tok", cfg.TelegramToken)
	assert.Equal(t, "key", cfg.VybeAPIKey)
	assert.Equal(t, DefaultVybeBaseURL, cfg.VybeBaseURL)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.Equal(t, DefaultProgramTablePath, cfg.ProgramTablePath)
	assert.False(t, cfg.Development)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("VYBE_BASE_URL", "https://staging.example.com")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("DEVELOPMENT", "true")

	cfg := Load()

	assert.Equal(t, "https://staging.example.com", cfg.VybeBaseURL)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.Development)
}

func TestValidateReportsAllMissingSecrets(t *testing.T) {
	t.Setenv("TELEGRAM_TOKEN", "")
	t.Setenv("VYBE_API_KEY", "")

	err := Load().Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TELEGRAM_TOKEN")
	assert.Contains(t, err.Error(), "VYBE_API_KEY")
}

func TestValidateOK(t *testing.T) {
	t.Setenv("TELEGRAM_TOKEN", "tok")
	t.Setenv("VYBE_API_KEY", "key")

	assert.NoError(t, Load().Validate())
}
