package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all configuration values
type Config struct {
	// Server configuration
	Port        int    `json:"port"`
	Environment string `json:"environment"`

	// MongoDB configuration
	MongoURI      string `json:"mongo_uri"`
	MongoDatabase string `json:"mongo_database"`

	// Redis configuration
	RedisURI       string        `json:"redis_uri"`
	RedisPassword  string        `json:"redis_password"`
	RedisDB        int           `json:"redis_db"`
	SearchCacheTTL time.Duration `json:"search_cache_ttl"`
	FeedCacheTTL   time.Duration `json:"feed_cache_ttl"`

	// Collection names
	AgentCollection        string `json:"mongo_agent_collection"`
	PropertyCollection     string `json:"mongo_property_collection"`
	LeadCollection         string `json:"mongo_lead_collection"`
	BlogPostCollection     string `json:"mongo_blog_post_collection"`
	ReviewCollection       string `json:"mongo_review_collection"`
	SubscriptionCollection string `json:"mongo_subscription_collection"`

	// Tracing configuration
	TracingEnabled  bool   `json:"tracing_enabled"`
	TracingEndpoint string `json:"tracing_endpoint"`

	// Index maintenance
	IndexMaintenanceInterval time.Duration `json:"index_maintenance_interval"`

	// Trial length applied to newly registered agents
	TrialPeriod time.Duration `json:"trial_period"`
}

var (
	AppConfig *Config
)

// LoadConfig loads configuration from environment variables
func LoadConfig() error {
	port, err := strconv.Atoi(getEnvOrDefault("PORT", "8080"))
	if err != nil {
		return fmt.Errorf("invalid PORT: %w", err)
	}

	redisDB, err := strconv.Atoi(getEnvOrDefault("REDIS_DB", "0"))
	if err != nil {
		return fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	searchCacheTTL, err := time.ParseDuration(getEnvOrDefault("SEARCH_CACHE_TTL", "5m"))
	if err != nil {
		return fmt.Errorf("invalid SEARCH_CACHE_TTL: %w", err)
	}

	feedCacheTTL, err := time.ParseDuration(getEnvOrDefault("FEED_CACHE_TTL", "30m"))
	if err != nil {
		return fmt.Errorf("invalid FEED_CACHE_TTL: %w", err)
	}

	indexInterval, err := time.ParseDuration(getEnvOrDefault("INDEX_MAINTENANCE_INTERVAL", "6h"))
	if err != nil {
		return fmt.Errorf("invalid INDEX_MAINTENANCE_INTERVAL: %w", err)
	}

	trialPeriod, err := time.ParseDuration(getEnvOrDefault("TRIAL_PERIOD", "168h"))
	if err != nil {
		return fmt.Errorf("invalid TRIAL_PERIOD: %w", err)
	}

	// Check if MONGODB_PROPERTY_COLLECTION is set
	propertyCollection := os.Getenv("MONGODB_PROPERTY_COLLECTION")
	if propertyCollection == "" {
		propertyCollection = "properties"
	}

	AppConfig = &Config{
		// Server configuration
		Port:        port,
		Environment: getEnvOrDefault("ENVIRONMENT", "development"),

		// MongoDB configuration
		MongoURI:      getEnvOrDefault("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDatabase: getEnvOrDefault("MONGODB_DATABASE", "vitrine"),

		// Redis configuration
		RedisURI:       getEnvOrDefault("REDIS_URI", "localhost:6379"),
		RedisPassword:  getEnvOrDefault("REDIS_PASSWORD", ""),
		RedisDB:        redisDB,
		SearchCacheTTL: searchCacheTTL,
		FeedCacheTTL:   feedCacheTTL,

		// Collection names
		AgentCollection:        getEnvOrDefault("MONGODB_AGENT_COLLECTION", "agents"),
		PropertyCollection:     propertyCollection,
		LeadCollection:         getEnvOrDefault("MONGODB_LEAD_COLLECTION", "leads"),
		BlogPostCollection:     getEnvOrDefault("MONGODB_BLOG_POST_COLLECTION", "blog_posts"),
		ReviewCollection:       getEnvOrDefault("MONGODB_REVIEW_COLLECTION", "reviews"),
		SubscriptionCollection: getEnvOrDefault("MONGODB_SUBSCRIPTION_COLLECTION", "subscriptions"),

		// Tracing configuration
		TracingEnabled:  getEnvOrDefault("TRACING_ENABLED", "false") == "true",
		TracingEndpoint: getEnvOrDefault("TRACING_ENDPOINT", "localhost:4317"),

		IndexMaintenanceInterval: indexInterval,
		TrialPeriod:              trialPeriod,
	}

	return nil
}

// getEnvOrDefault returns environment variable value or default if not set
func getEnvOrDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
