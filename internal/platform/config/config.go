package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/SscSPs/notion_quote_viewer/internal/apperrors"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port         string `validate:"required,numeric"`
	IsProduction bool

	// Document store
	NotionAPIKey          string        `validate:"required"`
	NotionDatabaseID      string        `validate:"required"`
	NotionItemsDatabaseID string        // only needed by the seed endpoint
	NotionQuoteDatabaseID string        // legacy quote database, optional
	NotionSchema          string        `validate:"oneof=ko en"`
	NotionBaseURL         string        `validate:"required,url"`
	NotionVersion         string        `validate:"required"`
	NotionTimeout         time.Duration `validate:"gt=0"`

	// Caching
	RevalidateSecret     string
	ListCacheTTL         time.Duration `validate:"gt=0"`
	ItemFetchConcurrency int           `validate:"gte=1"`
	RedisURL             string        `validate:"omitempty,url"`

	// HTTP
	CORSAllowedOrigins   []string
	MaintenanceRateLimit string `validate:"required"` // ulule limiter format, e.g. "10-M"

	// PDF export
	PDFEnabled      bool
	ChromeRemoteURL string `validate:"omitempty,url"`
	ChromeNoSandbox bool
}

// LoadConfig loads configuration from environment variables and .env file if present,
// then validates it. Missing document-store credentials fail here, at startup.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	cfg := &Config{
		Port:                  v.GetString("PORT"),
		IsProduction:          v.GetBool("IS_PRODUCTION"),
		NotionAPIKey:          v.GetString("NOTION_API_KEY"),
		NotionDatabaseID:      v.GetString("NOTION_DATABASE_ID"),
		NotionItemsDatabaseID: v.GetString("NOTION_ITEMS_DATABASE_ID"),
		NotionQuoteDatabaseID: v.GetString("NOTION_QUOTE_DATABASE_ID"),
		NotionSchema:          strings.ToLower(v.GetString("NOTION_SCHEMA")),
		NotionBaseURL:         v.GetString("NOTION_BASE_URL"),
		NotionVersion:         v.GetString("NOTION_VERSION"),
		RevalidateSecret:      v.GetString("REVALIDATE_SECRET"),
		ItemFetchConcurrency:  v.GetInt("ITEM_FETCH_CONCURRENCY"),
		RedisURL:              v.GetString("REDIS_URL"),
		MaintenanceRateLimit:  v.GetString("MAINTENANCE_RATE_LIMIT"),
		PDFEnabled:            v.GetBool("PDF_ENABLED"),
		ChromeRemoteURL:       v.GetString("CHROME_REMOTE_URL"),
		ChromeNoSandbox:       v.GetBool("CHROME_NO_SANDBOX"),
	}

	cfg.NotionTimeout = durationOrDefault(v, "NOTION_TIMEOUT", 15*time.Second)
	cfg.ListCacheTTL = durationOrDefault(v, "LIST_CACHE_TTL", 60*time.Second)
	cfg.CORSAllowedOrigins = splitList(v.GetString("CORS_ALLOWED_ORIGINS"))

	if cfg.RevalidateSecret == "" {
		log.Println("Warning: REVALIDATE_SECRET not set. Cache invalidation endpoint is unauthenticated.")
	}
	if cfg.NotionItemsDatabaseID == "" {
		log.Println("Warning: NOTION_ITEMS_DATABASE_ID not set. Seed endpoint will not function.")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("NOTION_API_KEY", "")
	v.SetDefault("NOTION_DATABASE_ID", "")
	v.SetDefault("NOTION_ITEMS_DATABASE_ID", "")
	v.SetDefault("NOTION_QUOTE_DATABASE_ID", "")
	v.SetDefault("NOTION_SCHEMA", "ko")
	v.SetDefault("NOTION_BASE_URL", "https://api.notion.com")
	v.SetDefault("NOTION_VERSION", "2022-06-28")
	v.SetDefault("NOTION_TIMEOUT", "15s")
	v.SetDefault("REVALIDATE_SECRET", "")
	v.SetDefault("LIST_CACHE_TTL", "60s")
	v.SetDefault("ITEM_FETCH_CONCURRENCY", 10)
	v.SetDefault("REDIS_URL", "")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("MAINTENANCE_RATE_LIMIT", "10-M")
	v.SetDefault("PDF_ENABLED", false)
	v.SetDefault("CHROME_REMOTE_URL", "")
	v.SetDefault("CHROME_NO_SANDBOX", false)
}

// Validate checks the struct tags and wraps any failure in apperrors.ErrConfig.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("%w: %s", apperrors.ErrConfig, describeValidation(err))
	}
	return nil
}

func describeValidation(err error) string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed '%s'", fe.Field(), fe.Tag()))
	}
	return strings.Join(msgs, "; ")
}

func durationOrDefault(v *viper.Viper, key string, def time.Duration) time.Duration {
	raw := v.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, def)
		}
		return def
	}
	return d
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
