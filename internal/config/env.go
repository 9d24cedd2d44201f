package config

import (
	"os"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values taken from the process environment.
// A .env file in the working directory is loaded first if it exists; a
// missing file is not an error. Empty variables leave the current value
// untouched.
//
// Recognized variables:
//
//	CLIENTNOTES_DB         database file path
//	CLIENTNOTES_LEGACY     legacy JSON blob path
//	CLIENTNOTES_LOG_LEVEL  minimum log level
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("CLIENTNOTES_DB"); v != "" {
		cfg.DatabasePath = v
	}
	if v := os.Getenv("CLIENTNOTES_LEGACY"); v != "" {
		cfg.LegacyPath = v
	}
	if v := os.Getenv("CLIENTNOTES_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
}
