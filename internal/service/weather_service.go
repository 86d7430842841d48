package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"weatherapp/weather-service/internal/db/weatherquery"
	"weatherapp/weather-service/internal/providers"
)

type CurrentWeather struct {
	City        string  `json:"city"`
	Region      string  `json:"region"`
	Country     string  `json:"country"`
	Condition   string  `json:"condition"`
	Temperature float64 `json:"temperature"`
}

type DailyTemperature struct {
	Date    string  `json:"date"`
	MinTemp float64 `json:"minTemp"`
	AvgTemp float64 `json:"avgTemp"`
	MaxTemp float64 `json:"maxTemp"`
}

type ForecastResult struct {
	Current CurrentWeather     `json:"weatherResponse"`
	Days    []DailyTemperature `json:"dayTemp"`
}

type WeatherService interface {
	GetCurrent(ctx context.Context, city string) (CurrentWeather, error)
	GetForecast(ctx context.Context, city string, days int) (ForecastResult, error)
}

type Options struct {
	// SeparateCurrentCall fetches current conditions from the current endpoint
	// before asking for the forecast, instead of reading them off the forecast
	// response.
	SeparateCurrentCall bool
}

type weatherService struct {
	weatherAPI          providers.WeatherAPIClient
	weatherQueryRepo    weatherquery.Repository
	separateCurrentCall bool
}

// NewWeatherService wires the service. weatherQueryRepo may be nil, in which
// case no audit rows are written.
func NewWeatherService(weatherAPI providers.WeatherAPIClient, weatherQueryRepo weatherquery.Repository, opts Options) WeatherService {
	return &weatherService{
		weatherAPI:          weatherAPI,
		weatherQueryRepo:    weatherQueryRepo,
		separateCurrentCall: opts.SeparateCurrentCall,
	}
}

func (s *weatherService) GetCurrent(ctx context.Context, city string) (CurrentWeather, error) {
	startedAt := time.Now()

	current, err := s.fetchCurrent(ctx, city)

	s.record(ctx, weatherquery.KindCurrent, city, 0, 1, startedAt, err)

	return current, err
}

func (s *weatherService) GetForecast(ctx context.Context, city string, days int) (ForecastResult, error) {
	startedAt := time.Now()

	result, calls, err := s.fetchForecast(ctx, city, days)

	s.record(ctx, weatherquery.KindForecast, city, days, calls, startedAt, err)

	return result, err
}

func (s *weatherService) fetchCurrent(ctx context.Context, city string) (CurrentWeather, error) {
	payload, err := s.weatherAPI.GetCurrent(ctx, city)
	if err != nil {
		return CurrentWeather{}, err
	}

	return mapCurrentWeather(payload)
}

// fetchForecast returns the result and the number of upstream calls it made.
func (s *weatherService) fetchForecast(ctx context.Context, city string, days int) (ForecastResult, int, error) {
	logger := zerolog.Ctx(ctx)
	calls := 0

	var current CurrentWeather
	if s.separateCurrentCall {
		calls++
		var err error
		current, err = s.fetchCurrent(ctx, city)
		if err != nil {
			return ForecastResult{}, calls, err
		}
	}

	calls++
	payload, err := s.weatherAPI.GetForecast(ctx, city, days)
	if err != nil {
		return ForecastResult{}, calls, err
	}

	dayTemps, err := mapDailyTemperatures(payload)
	if err != nil {
		return ForecastResult{}, calls, err
	}

	if !s.separateCurrentCall {
		if payload.Current != nil {
			current, err = mapCurrentWeather(payload)
		} else {
			logger.Debug().Str("city", city).Msg("forecast response has no current block, fetching current conditions")
			calls++
			current, err = s.fetchCurrent(ctx, city)
		}
		if err != nil {
			return ForecastResult{}, calls, err
		}
	}

	return ForecastResult{
		Current: current,
		Days:    dayTemps,
	}, calls, nil
}

func (s *weatherService) record(ctx context.Context, kind weatherquery.Kind, city string, days, calls int, startedAt time.Time, opErr error) {
	logger := zerolog.Ctx(ctx)
	latency := time.Since(startedAt)

	logger.Debug().
		Str("kind", string(kind)).
		Str("city", city).
		Int("upstream_calls", calls).
		Dur("latency", latency).
		Bool("success", opErr == nil).
		Msg("weather query served")

	if s.weatherQueryRepo == nil {
		return
	}

	requestID := RequestIDFromContext(ctx)
	if requestID == "" {
		requestID = uuid.NewString()
	}

	query := &weatherquery.WeatherQuery{
		RequestID:     requestID,
		City:          city,
		Kind:          kind,
		Days:          days,
		Success:       opErr == nil,
		ErrorKind:     errorKind(opErr),
		UpstreamCalls: calls,
		LatencyMs:     latency.Milliseconds(),
	}

	// the request deadline may already be spent; the audit write gets its own budget
	writeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 2*time.Second)
	defer cancel()

	if err := s.weatherQueryRepo.LogWeatherQuery(writeCtx, query); err != nil {
		logger.Error().Err(err).Str("request_id", requestID).Msg("Failed to log weather query")
	}
}

func errorKind(err error) string {
	var upstreamErr *providers.UpstreamError
	var mappingErr *MappingError

	switch {
	case err == nil:
		return ""
	case errors.As(err, &upstreamErr):
		return "upstream"
	case errors.As(err, &mappingErr):
		return "mapping"
	default:
		return "internal"
	}
}
