package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetFlags(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		configPath, logLevelFlag, logFormatFlag, skillCacheFlag = "", "", "", ""
	})
	for _, name := range []string{"DATABASE_URL", "GEMINI_API_KEY", "JOBBOARD_SKILL_CACHE", "JOBBOARD_WORKERS", "PORT"} {
		t.Setenv(name, "")
	}
}

func TestLoadSettings_Precedence(t *testing.T) {
	resetFlags(t)
	t.Setenv("JOBBOARD_WORKERS", "2")
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_URL", "postgres://env")

	configPath = filepath.Join(t.TempDir(), "jobboard.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("workers: 8\nlog_level: warn\nlog_format: json\n"), 0644))
	logLevelFlag = "error"

	require.NoError(t, loadSettings(nil, nil))

	assert.Equal(t, "error", settings.LogLevel)
	assert.Equal(t, "json", settings.LogFormat)
	assert.Equal(t, 8, settings.Workers)
	assert.Equal(t, 9000, settings.Port)
	assert.Equal(t, "postgres://env", settings.DatabaseURL)
}

func TestLoadSettings_Defaults(t *testing.T) {
	resetFlags(t)

	require.NoError(t, loadSettings(nil, nil))

	assert.Equal(t, "info", settings.LogLevel)
	assert.Equal(t, "console", settings.LogFormat)
	assert.Equal(t, 4, settings.Workers)
	assert.Equal(t, 8080, settings.Port)
	assert.Empty(t, settings.DatabaseURL)
}

func TestLoadSettings_Errors(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T)
	}{
		{"invalid log level", func(_ *testing.T) { logLevelFlag = "loud" }},
		{"missing skill cache", func(t *testing.T) { skillCacheFlag = filepath.Join(t.TempDir(), "missing.json") }},
		{"bad env workers", func(t *testing.T) { t.Setenv("JOBBOARD_WORKERS", "many") }},
		{"missing config file", func(t *testing.T) { configPath = filepath.Join(t.TempDir(), "missing.yaml") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags(t)
			tt.setup(t)
			assert.Error(t, loadSettings(nil, nil))
		})
	}
}
