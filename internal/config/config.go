package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DataSourceBigQuery = "bigquery"
	DataSourcePostgres = "postgres"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	DatabaseURL string `env:"DATABASE_URL"`
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// Источник данных: bigquery или postgres (зеркало таблицы)
	DataSource string `env:"DATA_SOURCE" envDefault:"bigquery"`

	// BigQuery Config
	BigQueryProjectID     string        `env:"BIGQUERY_PROJECT_ID"`
	BigQueryDataset       string        `env:"BIGQUERY_DATASET"`
	BigQueryTable         string        `env:"BIGQUERY_TABLE"`
	BigQueryTimeout       time.Duration `env:"BIGQUERY_TIMEOUT" envDefault:"30s"`
	GoogleCredentialsFile string        `env:"GOOGLE_APPLICATION_CREDENTIALS"`
	GoogleCredentialsJSON string        `env:"GOOGLE_CREDENTIALS_JSON"`

	// Redis Config
	RedisAddr    string        `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass    string        `env:"REDIS_PASSWORD"`
	RedisDB      int           `env:"REDIS_DB" envDefault:"0"`
	RowsCacheTTL time.Duration `env:"ROWS_CACHE_TTL" envDefault:"5m"`

	// Webhook Config
	WebhookURL        string        `env:"WEBHOOK_URL"`
	WebhookSecret     string        `env:"WEBHOOK_SECRET"`
	WebhookTimeout    time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"5s"`
	WebhookMaxRetries int           `env:"WEBHOOK_MAX_RETRIES" envDefault:"3"`
	WebhookBaseDelay  time.Duration `env:"WEBHOOK_BASE_DELAY" envDefault:"1s"`

	// Размер страницы журнала загрузок по умолчанию
	FetchHistoryLimit int `env:"FETCH_HISTORY_LIMIT" envDefault:"20"`

	// API Keys for authentication
	APIKeys []string `env:"API_KEYS"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		DatabaseURL:           os.Getenv("DATABASE_URL"),
		HTTPPort:              getEnv("HTTP_PORT", "8080"),
		LogLevel:              getEnv("LOG_LEVEL", "info"),
		DataSource:            strings.ToLower(getEnv("DATA_SOURCE", DataSourceBigQuery)),
		BigQueryProjectID:     os.Getenv("BIGQUERY_PROJECT_ID"),
		BigQueryDataset:       os.Getenv("BIGQUERY_DATASET"),
		BigQueryTable:         os.Getenv("BIGQUERY_TABLE"),
		BigQueryTimeout:       getEnvAsDuration("BIGQUERY_TIMEOUT", 30*time.Second),
		GoogleCredentialsFile: os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"),
		GoogleCredentialsJSON: os.Getenv("GOOGLE_CREDENTIALS_JSON"),
		RedisAddr:             getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:             os.Getenv("REDIS_PASSWORD"),
		RedisDB:               getEnvAsInt("REDIS_DB", 0),
		RowsCacheTTL:          getEnvAsDuration("ROWS_CACHE_TTL", 5*time.Minute),
		WebhookURL:            os.Getenv("WEBHOOK_URL"),
		WebhookSecret:         os.Getenv("WEBHOOK_SECRET"),
		WebhookTimeout:        getEnvAsDuration("WEBHOOK_TIMEOUT", 5*time.Second),
		WebhookMaxRetries:     getEnvAsInt("WEBHOOK_MAX_RETRIES", 3),
		WebhookBaseDelay:      getEnvAsDuration("WEBHOOK_BASE_DELAY", time.Second),
		FetchHistoryLimit:     getEnvAsInt("FETCH_HISTORY_LIMIT", 20),
	}

	// Загрузка API ключей
	apiKeysStr := os.Getenv("API_KEYS")
	if apiKeysStr != "" {
		cfg.APIKeys = strings.Split(apiKeysStr, ",")
		for i, key := range cfg.APIKeys {
			cfg.APIKeys[i] = strings.TrimSpace(key)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет обязательные параметры
func (c *Config) Validate() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}

	switch c.DataSource {
	case DataSourceBigQuery:
		var missing []string
		if c.BigQueryProjectID == "" {
			missing = append(missing, "BIGQUERY_PROJECT_ID")
		}
		if c.BigQueryDataset == "" {
			missing = append(missing, "BIGQUERY_DATASET")
		}
		if c.BigQueryTable == "" {
			missing = append(missing, "BIGQUERY_TABLE")
		}
		if len(missing) > 0 {
			return fmt.Errorf("%s required for %s data source", strings.Join(missing, ", "), DataSourceBigQuery)
		}
	case DataSourcePostgres:
	default:
		return fmt.Errorf("unknown DATA_SOURCE %q: must be %s or %s", c.DataSource, DataSourceBigQuery, DataSourcePostgres)
	}

	return nil
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}
