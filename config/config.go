package config

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	ServiceName   string
	ServerAddress string

	DBName     string
	DBPassword string
	DBUser     string
	DBPort     string
	DBHost     string

	Env         string
	LogLevel    string
	HTTPTimeout int32

	WeatherAPIKey         string
	WeatherAPICurrentURL  string
	WeatherAPIForecastURL string
	UpstreamTimeout       time.Duration

	SeparateCurrentCall bool
	CORSAllowedOrigin   string
	AuditLogEnabled     bool
}

func LoadConfig() (*Config, error) {
	v := viper.New()

	v.SetDefault("SERVICE_NAME", "weather-service")

	v.SetDefault("SERVER_ADDRESS", "0.0.0.0:8080")
	v.SetDefault("DATABASE_PORT", "5432")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("HTTP_TIMEOUT", 15)
	v.SetDefault("WEATHER_API_CURRENT_URL", "http://api.weatherapi.com/v1/current.json")
	v.SetDefault("WEATHER_API_FORECAST_URL", "http://api.weatherapi.com/v1/forecast.json")
	v.SetDefault("UPSTREAM_TIMEOUT", 10*time.Second)
	v.SetDefault("SEPARATE_CURRENT_CALL", false)
	v.SetDefault("CORS_ALLOWED_ORIGIN", "*")
	v.SetDefault("AUDIT_LOG_ENABLED", false)

	v.AutomaticEnv()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Warn().Msg("No .env file found, using environment variables only")
		} else {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		log.Info().Str("file", v.ConfigFileUsed()).Msg("Config file loaded")
	}

	config := &Config{
		ServiceName:           v.GetString("SERVICE_NAME"),
		ServerAddress:         v.GetString("SERVER_ADDRESS"),
		DBName:                v.GetString("DATABASE_NAME"),
		DBPassword:            v.GetString("DATABASE_PASSWORD"),
		DBUser:                v.GetString("DATABASE_USER"),
		DBPort:                v.GetString("DATABASE_PORT"),
		DBHost:                v.GetString("DATABASE_HOST"),
		Env:                   v.GetString("ENV"),
		LogLevel:              v.GetString("LOG_LEVEL"),
		HTTPTimeout:           v.GetInt32("HTTP_TIMEOUT"),
		WeatherAPIKey:         v.GetString("WEATHER_API_KEY"),
		WeatherAPICurrentURL:  v.GetString("WEATHER_API_CURRENT_URL"),
		WeatherAPIForecastURL: v.GetString("WEATHER_API_FORECAST_URL"),
		UpstreamTimeout:       v.GetDuration("UPSTREAM_TIMEOUT"),
		SeparateCurrentCall:   v.GetBool("SEPARATE_CURRENT_CALL"),
		CORSAllowedOrigin:     v.GetString("CORS_ALLOWED_ORIGIN"),
		AuditLogEnabled:       v.GetBool("AUDIT_LOG_ENABLED"),
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks the settings the service cannot start without.
func (c *Config) Validate() error {
	if c.WeatherAPIKey == "" {
		return errors.New("WEATHER_API_KEY is required")
	}

	for key, raw := range map[string]string{
		"WEATHER_API_CURRENT_URL":  c.WeatherAPICurrentURL,
		"WEATHER_API_FORECAST_URL": c.WeatherAPIForecastURL,
	} {
		u, err := url.Parse(raw)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", key, err)
		}
		if !u.IsAbs() || u.Host == "" {
			return fmt.Errorf("%s must be an absolute URL, got %q", key, raw)
		}
	}

	if c.HTTPTimeout <= 0 {
		return errors.New("HTTP_TIMEOUT must be positive")
	}

	if c.UpstreamTimeout <= 0 {
		return errors.New("UPSTREAM_TIMEOUT must be positive")
	}

	if c.AuditLogEnabled && c.DBHost == "" {
		return errors.New("DATABASE_HOST is required when AUDIT_LOG_ENABLED is set")
	}

	return nil
}

func (c *Config) HTTPTimeoutDuration() time.Duration {
	return time.Duration(c.HTTPTimeout) * time.Second
}
