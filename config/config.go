package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	// HTTP server
	Port int

	// Reddit API credentials (app-only OAuth)
	RedditClientID     string
	RedditClientSecret string

	// Market data provider
	AlphaVantageAPIKey  string
	AlphaVantageBaseURL string

	// Database configuration
	DatabaseHost     string
	DatabasePort     string
	DatabaseName     string
	DatabaseUser     string
	DatabasePassword string

	// Redis configuration
	RedisHost     string
	RedisPassword string
	RedisPort     string

	// Sentiment pipeline tuning
	Sentiment SentimentConfig
}

// SentimentConfig holds sentiment pipeline parameters
type SentimentConfig struct {
	// Default number of posts fetched for the aggregate signal
	AggregateSampleSize int
	// Larger sample used by the daily time series for coverage
	TimeseriesSampleSize int
	// Default lookback window in days for the time series
	DefaultWindowDays int
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() *Config {
	// Load .env file if exists
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	return &Config{
		Port: getEnvInt("PORT", 8000),

		RedditClientID:     os.Getenv("REDDIT_CLIENT_ID"),
		RedditClientSecret: os.Getenv("REDDIT_CLIENT_SECRET"),

		AlphaVantageAPIKey:  os.Getenv("ALPHA_VANTAGE_API_KEY"),
		AlphaVantageBaseURL: getEnvOrDefault("ALPHA_VANTAGE_BASE_URL", "https://www.alphavantage.co/query"),

		// Database configuration
		DatabaseHost:     getEnvOrDefault("DB_HOST", "localhost"),
		DatabasePort:     getEnvOrDefault("DB_PORT", "5432"),
		DatabaseName:     getEnvOrDefault("DB_NAME", "stock_sentiment"),
		DatabaseUser:     getEnvOrDefault("DB_USER", "postgres"),
		DatabasePassword: getEnvOrDefault("DB_PASSWORD", "postgres"),

		// Redis configuration
		RedisHost:     getEnvOrDefault("REDIS_HOST", "localhost"),
		RedisPort:     getEnvOrDefault("REDIS_PORT", "6379"),
		RedisPassword: getEnvOrDefault("REDIS_PASSWORD", ""),

		Sentiment: SentimentConfig{
			AggregateSampleSize:  getEnvInt("SENTIMENT_AGGREGATE_SAMPLE", 10),
			TimeseriesSampleSize: getEnvInt("SENTIMENT_TIMESERIES_SAMPLE", 50),
			DefaultWindowDays:    getEnvInt("SENTIMENT_WINDOW_DAYS", 30),
		},
	}
}

// getEnvInt gets environment variable as int or returns default value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var intValue int
	if _, err := fmt.Sscanf(value, "%d", &intValue); err != nil {
		return defaultValue
	}
	return intValue
}

// getEnvOrDefault gets environment variable or returns default value
func getEnvOrDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
