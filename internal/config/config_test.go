package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testHash = "0b48ee68f9de7a403027775ab3bf217e864de4ef1fee96e3c4b18974cc3df470"

func TestGetEnv(t *testing.T) {
	tests := []struct {
		name         string
		key          string
		defaultValue string
		setEnv       bool
		envValue     string
		expected     string
	}{
		{
			name:         "env variable set",
			key:          "TEST_KEY",
			defaultValue: "default",
			setEnv:       true,
			envValue:     "custom",
			expected:     "custom",
		},
		{
			name:         "env variable not set",
			key:          "TEST_KEY_NOT_SET",
			defaultValue: "default",
			setEnv:       false,
			expected:     "default",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setEnv {
				os.Setenv(tt.key, tt.envValue)
				defer os.Unsetenv(tt.key)
			}

			result := getEnv(tt.key, tt.defaultValue)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestConfig_DSN(t *testing.T) {
	cfg := &Config{
		Database: DatabaseConfig{
			Host:     "localhost",
			Port:     "5432",
			User:     "testuser",
			Password: "testpass",
			Name:     "testdb",
		},
	}

	dsn := cfg.DSN()
	expected := "host=localhost port=5432 user=testuser password=testpass dbname=testdb sslmode=disable"
	assert.Equal(t, expected, dsn)
}

// setBaseEnv sets the required variables and clears the optional ones
func setBaseEnv(t *testing.T) {
	t.Helper()
	t.Setenv("BOT_TOKEN", "test_token")
	t.Setenv("ADMIN_PASSWORD_HASH", testHash)
	for _, key := range []string{
		"SEARCH_DEBOUNCE", "SESSION_TTL", "PAGE_SIZE", "LOG_LEVEL",
		"DICTIONARY_SOURCE", "DICTIONARY_PATH", "DICTIONARY_URL", "EXPORT_FILENAME",
		"DB_HOST", "DB_PORT", "DB_NAME", "DB_USER", "DB_PASSWORD",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_WithDefaults(t *testing.T) {
	setBaseEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "test_token", cfg.BotToken)
	assert.Equal(t, testHash, cfg.AdminPasswordHash)
	assert.Equal(t, 300*time.Millisecond, cfg.SearchDebounce)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
	assert.Equal(t, 8, cfg.PageSize)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, SourceFile, cfg.Dictionary.Source)
	assert.Equal(t, "MyanmarEnglishLawDictionary.json", cfg.Dictionary.Path)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "5432", cfg.Database.Port)
	assert.Equal(t, "lawlex", cfg.Database.Name)
	assert.Equal(t, "lawlex", cfg.Database.User)
	assert.Equal(t, "MyanmarEnglishLawDictionary_updated.json", cfg.ExportFileName())
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name          string
		env           map[string]string
		expectedError string
	}{
		{
			name:          "missing bot token",
			env:           map[string]string{"BOT_TOKEN": ""},
			expectedError: "BOT_TOKEN is required",
		},
		{
			name:          "missing password hash",
			env:           map[string]string{"ADMIN_PASSWORD_HASH": ""},
			expectedError: "ADMIN_PASSWORD_HASH is required",
		},
		{
			name:          "plain password instead of hash",
			env:           map[string]string{"ADMIN_PASSWORD_HASH": "admin123$"},
			expectedError: "ADMIN_PASSWORD_HASH is invalid",
		},
		{
			name:          "unknown source",
			env:           map[string]string{"DICTIONARY_SOURCE": "ftp"},
			expectedError: "DICTIONARY_SOURCE is invalid",
		},
		{
			name:          "http source without url",
			env:           map[string]string{"DICTIONARY_SOURCE": "http"},
			expectedError: "DICTIONARY_URL is required",
		},
		{
			name:          "http source with bad url",
			env:           map[string]string{"DICTIONARY_SOURCE": "http", "DICTIONARY_URL": "not a url"},
			expectedError: "DICTIONARY_URL is invalid",
		},
		{
			name:          "postgres source without db password",
			env:           map[string]string{"DICTIONARY_SOURCE": "postgres"},
			expectedError: "DB_PASSWORD",
		},
		{
			name:          "bad debounce",
			env:           map[string]string{"SEARCH_DEBOUNCE": "soon"},
			expectedError: "SEARCH_DEBOUNCE",
		},
		{
			name:          "bad session ttl",
			env:           map[string]string{"SESSION_TTL": "forever"},
			expectedError: "SESSION_TTL",
		},
		{
			name:          "negative session ttl",
			env:           map[string]string{"SESSION_TTL": "-1h"},
			expectedError: "SESSION_TTL is invalid",
		},
		{
			name:          "bad page size",
			env:           map[string]string{"PAGE_SIZE": "many"},
			expectedError: "PAGE_SIZE",
		},
		{
			name:          "page size out of range",
			env:           map[string]string{"PAGE_SIZE": "50"},
			expectedError: "PAGE_SIZE is invalid",
		},
		{
			name:          "unknown log level",
			env:           map[string]string{"LOG_LEVEL": "verbose"},
			expectedError: "LOG_LEVEL is invalid",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setBaseEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := Load()

			assert.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tt.expectedError)
		})
	}
}

func TestLoad_HTTPSource(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("DICTIONARY_SOURCE", "HTTP")
	t.Setenv("DICTIONARY_URL", "https://example.com/data/MyanmarEnglishLawDictionary.json")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, SourceHTTP, cfg.Dictionary.Source)
	assert.Equal(t, "https://example.com/data/MyanmarEnglishLawDictionary.json", cfg.SourceName())
	assert.Equal(t, "MyanmarEnglishLawDictionary_updated.json", cfg.ExportFileName())
}

func TestLoad_PostgresSource(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("DICTIONARY_SOURCE", "postgres")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("EXPORT_FILENAME", "glossary.json")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "terms", cfg.SourceName())
	assert.Equal(t, "glossary.json", cfg.ExportFileName())
}

func TestLoadDatabase(t *testing.T) {
	setBaseEnv(t)

	_, err := LoadDatabase()
	assert.EqualError(t, err, "DB_PASSWORD is required")

	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_HOST", "db")

	db, err := LoadDatabase()
	require.NoError(t, err)
	assert.Equal(t, "host=db port=5432 user=lawlex password=secret dbname=lawlex sslmode=disable", db.DSN())
}
