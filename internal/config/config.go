package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Ticker   TickerConfig
	Cache    CacheConfig
	LogLevel string
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// TickerConfig points at the upstream quote endpoint for the one supported pair.
type TickerConfig struct {
	URL      string
	Provider string
	Timeout  time.Duration
}

type CacheConfig struct {
	TTL time.Duration
}

// LoadConfig reads an optional dotenv file, then the process environment.
// Variables already set in the environment win over the file.
func LoadConfig(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	config := &Config{
		Server: ServerConfig{
			Port:         getEnvInt("SERVER_PORT", 8080),
			ReadTimeout:  getEnvDuration("SERVER_READ_TIMEOUT", 5*time.Second),
			WriteTimeout: getEnvDuration("SERVER_WRITE_TIMEOUT", 10*time.Second),
			IdleTimeout:  getEnvDuration("SERVER_IDLE_TIMEOUT", 120*time.Second),
		},
		Ticker: TickerConfig{
			URL:      getEnvString("TICKER_URL", "https://api.cryptonator.com/api/ticker/vtc-usd"),
			Provider: getEnvString("TICKER_PROVIDER", "bitstamp"),
			Timeout:  getEnvDuration("TICKER_TIMEOUT", 10*time.Second),
		},
		Cache: CacheConfig{
			TTL: time.Duration(getEnvInt("CACHE_TTL_SECONDS", 60)) * time.Second,
		},
		LogLevel: getEnvString("LOG_LEVEL", "info"),
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) Validate() error {
	u, err := url.Parse(c.Ticker.URL)
	if err != nil {
		return fmt.Errorf("invalid TICKER_URL: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid TICKER_URL %q: must be an absolute http(s) URL", c.Ticker.URL)
	}
	if c.Ticker.Provider == "" {
		return errors.New("TICKER_PROVIDER must not be empty")
	}
	if c.Cache.TTL < 0 {
		return fmt.Errorf("CACHE_TTL_SECONDS must not be negative, got %s", c.Cache.TTL)
	}
	return nil
}

func getEnvString(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		fmt.Printf("Warning: Invalid value for %s, using default: %d\n", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := time.ParseDuration(valueStr)
	if err != nil {
		fmt.Printf("Warning: Invalid duration for %s, using default: %s\n", key, defaultValue)
		return defaultValue
	}

	return value
}
