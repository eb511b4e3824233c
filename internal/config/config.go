package config

import (
	"fmt"
	"os"
	"strings"
)

// Defaults for everything that is not a secret.
const (
	DefaultVybeBaseURL       = "https://api.vybenetwork.xyz"
	DefaultLogLevel          = "info"
	DefaultProgramTablePath  = "data/programs.json"
	DefaultKnownAccountsPath = "data/known_accounts.json"
)

// Config holds the application configuration. It is built once at startup
// and passed explicitly to every component that needs it.
type Config struct {
	TelegramToken string
	VybeAPIKey    string

	VybeBaseURL       string
	LogLevel          string
	Development       bool
	ProgramTablePath  string
	KnownAccountsPath string

	// Comma-separated Telegram user IDs. Empty allowed list admits everyone.
	AdminUserIDs   string
	AllowedUserIDs string
}

// Load reads configuration from environment variables. Call godotenv.Load
// before this if a .env file should be honored.
func Load() *Config {
	return &Config{
		TelegramToken:     os.Getenv("TELEGRAM_TOKEN"),
		VybeAPIKey:        os.Getenv("VYBE_API_KEY"),
		VybeBaseURL:       getEnvWithDefault("VYBE_BASE_URL", DefaultVybeBaseURL),
		LogLevel:          getEnvWithDefault("LOG_LEVEL", DefaultLogLevel),
		Development:       os.Getenv("DEVELOPMENT") == "true",
		ProgramTablePath:  getEnvWithDefault("PROGRAM_TABLE_PATH", DefaultProgramTablePath),
		KnownAccountsPath: getEnvWithDefault("KNOWN_ACCOUNTS_PATH", DefaultKnownAccountsPath),
		AdminUserIDs:      os.Getenv("ADMIN_USER_IDS"),
		AllowedUserIDs:    os.Getenv("ALLOWED_USER_IDS"),
	}
}

// Validate reports every missing required secret at once so the operator
// does not fix them one by one.
func (c *Config) Validate() error {
	var missing []string
	if c.TelegramToken == "" {
		missing = append(missing, "TELEGRAM_TOKEN")
	}
	if c.VybeAPIKey == "" {
		missing = append(missing, "VYBE_API_KEY")
	}
	if len(missing) > 0 {
		return fmt.Errorf("required environment variables not set: %s", strings.Join(missing, ", "))
	}
	return nil
}

// getEnvWithDefault gets an environment variable or returns a default value.
func getEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
