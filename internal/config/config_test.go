package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "clientnotes.db", c.DatabasePath)
	assert.Equal(t, "client_notes_v1.json", c.LegacyPath)
	assert.Equal(t, "info", c.LogLevel)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()
	os.Args = []string{"cli"}

	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "clientnotes.db", cfg.DatabasePath)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestParseEnv_Overrides(t *testing.T) {
	t.Setenv("CLIENTNOTES_DB", "env.db")
	t.Setenv("CLIENTNOTES_LOG_LEVEL", "debug")

	var c Config
	c.LoadDefaults()
	parseEnv(&c)

	assert.Equal(t, "env.db", c.DatabasePath)
	assert.Equal(t, "client_notes_v1.json", c.LegacyPath, "unset variable keeps the default")
	assert.Equal(t, "debug", c.LogLevel)
}

func TestParseFlags_Overrides(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()
	os.Args = []string{"cli", "-d", "flag.db", "-log", "warn"}

	var c Config
	c.LoadDefaults()
	parseFlags(&c)

	assert.Equal(t, "flag.db", c.DatabasePath)
	assert.Equal(t, "warn", c.LogLevel)
}
