package config

// Config holds runtime settings for the clientnotes CLI.
//
// Fields:
//   - DatabasePath: path of the SQLite database file.
//   - LegacyPath: path of the legacy flat JSON export consumed once by the
//     startup migration.
//   - LogLevel: minimum log level ("debug", "info", "warn", "error").
type Config struct {
	DatabasePath string
	LegacyPath   string
	LogLevel     string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "clientnotes.db"
	c.LegacyPath = "client_notes_v1.json"
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment (including a .env file if present), a JSON file (if given
// via -c/-config) and command-line flags. Later sources take precedence over
// earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
