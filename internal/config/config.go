package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"
	"time"

	"lawlex/internal/catalog"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Dictionary source kinds
const (
	SourceFile     = "file"
	SourceHTTP     = "http"
	SourcePostgres = "postgres"
)

// Config holds all application configuration
type Config struct {
	BotToken          string        `env:"BOT_TOKEN" validate:"required"`
	AdminPasswordHash string        `env:"ADMIN_PASSWORD_HASH" validate:"required,len=64,hexadecimal"`
	SearchDebounce    time.Duration `env:"SEARCH_DEBOUNCE" validate:"min=0"`
	SessionTTL        time.Duration `env:"SESSION_TTL" validate:"min=0"`
	PageSize          int           `env:"PAGE_SIZE" validate:"min=1,max=20"`
	LogLevel          string        `env:"LOG_LEVEL" validate:"oneof=debug info warn error"`
	Dictionary        DictionaryConfig
	Database          DatabaseConfig
}

// DictionaryConfig selects where the bulk term list comes from
type DictionaryConfig struct {
	Source     string `env:"DICTIONARY_SOURCE" validate:"oneof=file http postgres"`
	Path       string `env:"DICTIONARY_PATH" validate:"required_if=Source file"`
	URL        string `env:"DICTIONARY_URL" validate:"required_if=Source http,omitempty,url"`
	ExportName string `env:"EXPORT_FILENAME"`
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string `env:"DB_HOST"`
	Port     string `env:"DB_PORT"`
	Name     string `env:"DB_NAME"`
	User     string `env:"DB_USER"`
	Password string `env:"DB_PASSWORD"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		if name := f.Tag.Get("env"); name != "" {
			return name
		}
		return f.Name
	})
	return v
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	debounce, err := time.ParseDuration(getEnv("SEARCH_DEBOUNCE", "300ms"))
	if err != nil {
		return nil, fmt.Errorf("SEARCH_DEBOUNCE: %w", err)
	}

	sessionTTL, err := time.ParseDuration(getEnv("SESSION_TTL", "24h"))
	if err != nil {
		return nil, fmt.Errorf("SESSION_TTL: %w", err)
	}

	pageSize, err := strconv.Atoi(getEnv("PAGE_SIZE", "8"))
	if err != nil {
		return nil, fmt.Errorf("PAGE_SIZE: %w", err)
	}

	cfg := &Config{
		BotToken:          os.Getenv("BOT_TOKEN"),
		AdminPasswordHash: strings.TrimSpace(os.Getenv("ADMIN_PASSWORD_HASH")),
		SearchDebounce:    debounce,
		SessionTTL:        sessionTTL,
		PageSize:          pageSize,
		LogLevel:          strings.ToLower(getEnv("LOG_LEVEL", "info")),
		Dictionary: DictionaryConfig{
			Source:     strings.ToLower(getEnv("DICTIONARY_SOURCE", SourceFile)),
			Path:       getEnv("DICTIONARY_PATH", "MyanmarEnglishLawDictionary.json"),
			URL:        os.Getenv("DICTIONARY_URL"),
			ExportName: os.Getenv("EXPORT_FILENAME"),
		},
		Database: loadDatabase(),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadDatabase reads only the database settings, for tools that do not run the bot
func LoadDatabase() (DatabaseConfig, error) {
	_ = godotenv.Load()

	db := loadDatabase()
	if db.Password == "" {
		return DatabaseConfig{}, errors.New("DB_PASSWORD is required")
	}
	return db, nil
}

func loadDatabase() DatabaseConfig {
	return DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "5432"),
		Name:     getEnv("DB_NAME", "lawlex"),
		User:     getEnv("DB_USER", "lawlex"),
		Password: os.Getenv("DB_PASSWORD"),
	}
}

// Validate checks required fields and value ranges
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return describe(err)
	}
	if c.Dictionary.Source == SourcePostgres && c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required for the postgres source")
	}
	return nil
}

func describe(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required", "required_if":
			msgs = append(msgs, fmt.Sprintf("%s is required", fe.Field()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s is invalid (%s)", fe.Field(), fe.Tag()))
		}
	}
	return errors.New(strings.Join(msgs, "; "))
}

// DSN returns PostgreSQL connection string
func (c *Config) DSN() string {
	return c.Database.DSN()
}

// DSN returns PostgreSQL connection string
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		d.Host,
		d.Port,
		d.User,
		d.Password,
		d.Name,
	)
}

// SourceName is the path, URL or table the dictionary is loaded from
func (c *Config) SourceName() string {
	switch c.Dictionary.Source {
	case SourceHTTP:
		return c.Dictionary.URL
	case SourcePostgres:
		return "terms"
	}
	return c.Dictionary.Path
}

// ExportFileName is the download name offered for exported snapshots
func (c *Config) ExportFileName() string {
	if c.Dictionary.ExportName != "" {
		return c.Dictionary.ExportName
	}
	return catalog.ExportFileName(c.SourceName())
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
