package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type HTTPServer struct {
	Port string `mapstructure:"port"`
}

type HTTPClient struct {
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
}

type RateProvider struct {
	URL string `mapstructure:"url"`
}

type Refresh struct {
	IntervalMinutes int `mapstructure:"interval_minutes"`
	RetryMinutes    int `mapstructure:"retry_minutes"`
}

type History struct {
	Capacity int `mapstructure:"capacity"`
}

type Logging struct {
	Level string `mapstructure:"level"`
}

// CurrencyEntry is one row of the static currency table in config.yaml.
type CurrencyEntry struct {
	Rate   float64 `mapstructure:"rate"`
	Symbol string  `mapstructure:"symbol"`
	Name   string  `mapstructure:"name"`
}

type AppConfig struct {
	HTTPServer   HTTPServer               `mapstructure:"http_server"`
	HTTPClient   HTTPClient               `mapstructure:"http_client"`
	RateProvider RateProvider             `mapstructure:"rate_provider"`
	Refresh      Refresh                  `mapstructure:"refresh"`
	History      History                  `mapstructure:"history"`
	Logging      Logging                  `mapstructure:"logging"`
	Currencies   map[string]CurrencyEntry `mapstructure:"currencies"`
}

func Init() (*AppConfig, error) {
	var cfg AppConfig

	// .env is optional outside local development
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	viper.SetConfigFile("config.yaml")
	viper.SetConfigType("yaml")
	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	viper.SetDefault("http_server.port", "8080")
	viper.SetDefault("http_client.timeout_seconds", 15)
	viper.SetDefault("rate_provider.url", "https://open.exchangerate-api.com/v6/latest")
	viper.SetDefault("refresh.interval_minutes", 15)
	viper.SetDefault("refresh.retry_minutes", 5)
	viper.SetDefault("history.capacity", 100)
	viper.SetDefault("logging.level", "info")

	_ = viper.BindEnv("http_server.port", "HTTP_PORT")
	_ = viper.BindEnv("http_client.timeout_seconds", "HTTP_CLIENT_TIMEOUT_SECONDS")
	_ = viper.BindEnv("rate_provider.url", "RATE_PROVIDER_URL")
	_ = viper.BindEnv("refresh.interval_minutes", "REFRESH_INTERVAL_MINUTES")
	_ = viper.BindEnv("refresh.retry_minutes", "REFRESH_RETRY_MINUTES")
	_ = viper.BindEnv("logging.level", "LOG_LEVEL")

	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	return &cfg, nil
}
