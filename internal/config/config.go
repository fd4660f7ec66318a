package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server       ServerConfig
	Storage      StorageConfig
	Ticketmaster TicketmasterConfig
	Eventbrite   EventbriteConfig
	Cache        CacheConfig
}

type ServerConfig struct {
	Port string
	Host string
	Env  string
}

type StorageConfig struct {
	Path string // sqlite database file for the local key-value store
}

// TicketmasterConfig holds the Discovery API credentials and query scope.
// The deployment is scoped to a single city, so the city/country live in
// configuration rather than in request parameters.
type TicketmasterConfig struct {
	APIKey      string
	BaseURL     string
	City        string
	CountryCode string
	PageSize    int
	Timeout     time.Duration
}

// EventbriteConfig holds the marketplace API token and search scope. The
// provider is only used for cinema listings.
type EventbriteConfig struct {
	Token      string
	BaseURL    string
	Location   string
	CategoryID string
	Query      string
	PageSize   int
	Timeout    time.Duration
}

// CacheConfig controls the optional Redis listing cache. When disabled, or
// when Redis is unreachable at startup, responses are served uncached.
type CacheConfig struct {
	Enabled bool
	TTL     time.Duration
	Prefix  string
}

func Load() (*Config, error) {
	// Load .env files if they exist (try .env.local first, then .env)
	_ = godotenv.Load(".env.local")
	_ = godotenv.Load(".env")

	config := &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
			Host: getEnv("HOST", "localhost"),
			Env:  getEnv("ENV", "development"),
		},
		Storage: StorageConfig{
			Path: getEnv("STORAGE_PATH", "edinburgh-events.db"),
		},
		Ticketmaster: TicketmasterConfig{
			APIKey:      getEnv("TICKETMASTER_API_KEY", ""),
			BaseURL:     getEnv("TICKETMASTER_BASE_URL", "https://app.ticketmaster.com/discovery/v2"),
			City:        getEnv("EVENTS_CITY", "Edinburgh"),
			CountryCode: getEnv("EVENTS_COUNTRY_CODE", "GB"),
			PageSize:    getEnvAsInt("TICKETMASTER_PAGE_SIZE", 100),
			Timeout:     getEnvAsDuration("TICKETMASTER_TIMEOUT", 30*time.Second),
		},
		Eventbrite: EventbriteConfig{
			Token:      getEnv("EVENTBRITE_TOKEN", ""),
			BaseURL:    getEnv("EVENTBRITE_BASE_URL", "https://www.eventbriteapi.com/v3"),
			Location:   getEnv("EVENTBRITE_LOCATION", "Edinburgh, Scotland, UK"),
			CategoryID: getEnv("EVENTBRITE_CATEGORY_ID", "105"),
			Query:      getEnv("EVENTBRITE_QUERY", "cinema OR film OR screening"),
			PageSize:   getEnvAsInt("EVENTBRITE_PAGE_SIZE", 50),
			Timeout:    getEnvAsDuration("EVENTBRITE_TIMEOUT", 30*time.Second),
		},
		Cache: CacheConfig{
			Enabled: getEnvAsBool("CACHE_ENABLED", false),
			TTL:     getEnvAsDuration("CACHE_TTL", 30*time.Second),
			Prefix:  getEnv("CACHE_PREFIX", "events"),
		},
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
