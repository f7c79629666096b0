package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool

	// Market feed settings
	CoinGeckoBaseURL  string
	FeedQuoteCurrency string
	FeedTimeout       time.Duration

	// DisplayTimezone is the IANA zone feed timestamps are converted to.
	DisplayTimezone string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("COINGECKO_BASE_URL", "https://api.coingecko.com/api/v3")
	viper.SetDefault("FEED_QUOTE_CURRENCY", "twd")
	viper.SetDefault("FEED_TIMEOUT", "10s")
	viper.SetDefault("DISPLAY_TIMEZONE", "Asia/Taipei")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.CoinGeckoBaseURL = viper.GetString("COINGECKO_BASE_URL")
	cfg.FeedQuoteCurrency = viper.GetString("FEED_QUOTE_CURRENCY")

	feedTimeoutStr := viper.GetString("FEED_TIMEOUT")
	feedTimeout, err := time.ParseDuration(feedTimeoutStr)
	if err != nil {
		feedTimeout = 10 * time.Second
		if feedTimeoutStr != "" {
			log.Printf("Warning: Invalid value for FEED_TIMEOUT ('%s'). Defaulting to %s.\n", feedTimeoutStr, feedTimeout)
		}
	}
	cfg.FeedTimeout = feedTimeout

	cfg.DisplayTimezone = viper.GetString("DISPLAY_TIMEZONE")

	return cfg, nil
}
