// Package config reads settings from the environment, after loading an
// optional .env file from the working directory.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
	"golang.org/x/text/currency"
)

const (
	EnvAPIURL         = "STOREFRONT_API_URL"
	EnvCurrency       = "STOREFRONT_CURRENCY"
	EnvHTTPTimeout    = "STOREFRONT_HTTP_TIMEOUT"
	EnvLogLevel       = "LOG_LEVEL"
	EnvLogDevelopment = "LOG_DEVELOPMENT"
	EnvPort           = "PORT"
	EnvDatabaseURL    = "DATABASE_URL"
	EnvCORSOrigins    = "CORS_ORIGINS"
)

const (
	DefaultAPIURL      = "http://localhost:8000/api"
	DefaultPort        = "8000"
	DefaultHTTPTimeout = 30 * time.Second
)

type Config struct {
	APIURL         string
	Currency       currency.Unit
	HTTPTimeout    time.Duration
	LogLevel       zapcore.Level
	LogDevelopment bool
	Port           string
	DatabaseURL    string
	CORSOrigins    []string
}

// Load reads .env if present and then the process environment. Variables
// already set in the environment win over .env entries.
func Load() (Config, error) {
	_ = godotenv.Load()

	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from a lookup function such as os.Getenv.
func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Config{
		APIURL:      DefaultAPIURL,
		Currency:    currency.INR,
		HTTPTimeout: DefaultHTTPTimeout,
		LogLevel:    zapcore.InfoLevel,
		Port:        DefaultPort,
		CORSOrigins: []string{"*"},
	}

	if v := getenv(EnvAPIURL); v != "" {
		if _, err := url.ParseRequestURI(v); err != nil {
			return Config{}, fmt.Errorf("%s[%s] is not a valid url", EnvAPIURL, v)
		}
		cfg.APIURL = v
	}

	if v := getenv(EnvCurrency); v != "" {
		unit, err := currency.ParseISO(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s[%s] is not a valid currency: %w", EnvCurrency, v, err)
		}
		cfg.Currency = unit
	}

	if v := getenv(EnvHTTPTimeout); v != "" {
		timeout, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s[%s] is not a valid duration: %w", EnvHTTPTimeout, v, err)
		}
		if timeout <= 0 {
			return Config{}, fmt.Errorf("%s[%s] is not positive", EnvHTTPTimeout, v)
		}
		cfg.HTTPTimeout = timeout
	}

	if v := getenv(EnvLogLevel); v != "" {
		level, err := zapcore.ParseLevel(v)
		if err != nil {
			return Config{}, fmt.Errorf("zapcore.ParseLevel: %w", err)
		}
		cfg.LogLevel = level
	}

	if v := getenv(EnvLogDevelopment); v != "" {
		dev, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s[%s] is not a valid bool", EnvLogDevelopment, v)
		}
		cfg.LogDevelopment = dev
	}

	if v := getenv(EnvPort); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil || port <= 0 || port > 65535 {
			return Config{}, fmt.Errorf("%s[%s] is not a valid port", EnvPort, v)
		}
		cfg.Port = v
	}

	cfg.DatabaseURL = getenv(EnvDatabaseURL)

	if v := getenv(EnvCORSOrigins); v != "" {
		var origins []string
		for _, origin := range strings.Split(v, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				origins = append(origins, origin)
			}
		}
		if len(origins) == 0 {
			return Config{}, fmt.Errorf("%s[%s] has no origins", EnvCORSOrigins, v)
		}
		cfg.CORSOrigins = origins
	}

	return cfg, nil
}

// Addr is the listen address for the API server.
func (c Config) Addr() string {
	return ":" + c.Port
}
