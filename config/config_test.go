package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"weatherapp/weather-service/config"
)

type ConfigTestSuite struct {
	suite.Suite
}

func (s *ConfigTestSuite) SetupTest() {
	s.T().Setenv("WEATHER_API_KEY", "test-key")
}

func (s *ConfigTestSuite) TestLoadConfigDefaults() {
	conf, err := config.LoadConfig()
	s.Require().NoError(err)

	s.Equal("weather-service", conf.ServiceName)
	s.Equal("0.0.0.0:8080", conf.ServerAddress)
	s.Equal("test-key", conf.WeatherAPIKey)
	s.Equal("http://api.weatherapi.com/v1/current.json", conf.WeatherAPICurrentURL)
	s.Equal("http://api.weatherapi.com/v1/forecast.json", conf.WeatherAPIForecastURL)
	s.Equal(10*time.Second, conf.UpstreamTimeout)
	s.Equal(15*time.Second, conf.HTTPTimeoutDuration())
	s.False(conf.SeparateCurrentCall)
	s.False(conf.AuditLogEnabled)
	s.Equal("*", conf.CORSAllowedOrigin)
}

func (s *ConfigTestSuite) TestLoadConfigFromEnvironment() {
	s.T().Setenv("WEATHER_API_CURRENT_URL", "https://weather.internal/v1/current.json")
	s.T().Setenv("WEATHER_API_FORECAST_URL", "https://weather.internal/v1/forecast.json")
	s.T().Setenv("UPSTREAM_TIMEOUT", "3s")
	s.T().Setenv("SEPARATE_CURRENT_CALL", "true")
	s.T().Setenv("HTTP_TIMEOUT", "30")

	conf, err := config.LoadConfig()
	s.Require().NoError(err)

	s.Equal("https://weather.internal/v1/current.json", conf.WeatherAPICurrentURL)
	s.Equal("https://weather.internal/v1/forecast.json", conf.WeatherAPIForecastURL)
	s.Equal(3*time.Second, conf.UpstreamTimeout)
	s.True(conf.SeparateCurrentCall)
	s.Equal(30*time.Second, conf.HTTPTimeoutDuration())
}

func (s *ConfigTestSuite) TestLoadConfigMissingAPIKey() {
	s.T().Setenv("WEATHER_API_KEY", "")

	conf, err := config.LoadConfig()
	s.Error(err)
	s.Nil(conf)
	s.Contains(err.Error(), "WEATHER_API_KEY")
}

func (s *ConfigTestSuite) TestLoadConfigRelativeURL() {
	s.T().Setenv("WEATHER_API_FORECAST_URL", "/v1/forecast.json")

	_, err := config.LoadConfig()
	s.Error(err)
	s.Contains(err.Error(), "WEATHER_API_FORECAST_URL")
}

func (s *ConfigTestSuite) TestLoadConfigAuditLogNeedsDatabase() {
	s.T().Setenv("AUDIT_LOG_ENABLED", "true")

	_, err := config.LoadConfig()
	s.Error(err)
	s.Contains(err.Error(), "DATABASE_HOST")
}

func (s *ConfigTestSuite) TestLoadConfigNonPositiveHTTPTimeout() {
	for _, raw := range []string{"0", "-5"} {
		s.Run(raw, func() {
			s.T().Setenv("HTTP_TIMEOUT", raw)

			_, err := config.LoadConfig()
			s.Error(err)
			s.Contains(err.Error(), "HTTP_TIMEOUT")
		})
	}
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}
