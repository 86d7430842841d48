package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"weatherapp/weather-service/internal/service"
)

const (
	requestIDHeader = "X-Request-ID"
	defaultDays     = 1
)

type WeatherHandler struct {
	weatherService service.WeatherService
	timeout        time.Duration
	allowedOrigin  string
}

func NewWeatherHandler(weatherService service.WeatherService, timeout time.Duration, allowedOrigin string) *WeatherHandler {
	return &WeatherHandler{
		weatherService: weatherService,
		timeout:        timeout,
		allowedOrigin:  allowedOrigin,
	}
}

func (h *WeatherHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	requestID := r.Header.Get(requestIDHeader)
	if requestID == "" {
		requestID = uuid.NewString()
	}
	w.Header().Set(requestIDHeader, requestID)
	h.setCORSHeaders(w)

	logger := log.With().Str("request_id", requestID).Logger()
	ctx := service.ContextWithRequestID(logger.WithContext(r.Context()), requestID)
	r = r.WithContext(ctx)

	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	switch r.URL.Path {
	case "/weather":
		h.GetCurrentWeather(w, r)
	case "/weather/forecast":
		h.GetForecast(w, r)
	case "/health":
		h.Health(w, r)
	default:
		respondWithError(w, http.StatusNotFound, "not found")
	}
}

func (h *WeatherHandler) GetCurrentWeather(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondWithError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	if r.URL.Path != "/weather" {
		respondWithError(w, http.StatusNotFound, "not found")
		return
	}

	city := cityParam(r)
	if city == "" {
		respondWithError(w, http.StatusBadRequest, "city parameter 'city' is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	current, err := h.weatherService.GetCurrent(ctx, city)
	if err != nil {
		respondWithServiceError(w, r, err, city)
		return
	}

	respondWithJSON(w, http.StatusOK, newCurrentWeatherResponse(current))
}

func (h *WeatherHandler) GetForecast(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondWithError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	if r.URL.Path != "/weather/forecast" {
		respondWithError(w, http.StatusNotFound, "not found")
		return
	}

	city := cityParam(r)
	if city == "" {
		respondWithError(w, http.StatusBadRequest, "city parameter 'city' is required")
		return
	}

	days := defaultDays
	if raw := r.URL.Query().Get("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			respondWithError(w, http.StatusBadRequest, "days parameter must be a positive integer")
			return
		}
		days = parsed
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	forecast, err := h.weatherService.GetForecast(ctx, city, days)
	if err != nil {
		respondWithServiceError(w, r, err, city)
		return
	}

	respondWithJSON(w, http.StatusOK, newForecastResponse(forecast))
}

func (h *WeatherHandler) Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondWithError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	respondWithJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}

func (h *WeatherHandler) setCORSHeaders(w http.ResponseWriter) {
	if h.allowedOrigin == "" {
		return
	}
	w.Header().Set("Access-Control-Allow-Origin", h.allowedOrigin)
	w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type, "+requestIDHeader)
	w.Header().Set("Access-Control-Expose-Headers", requestIDHeader)
}

// cityParam accepts the weatherapi-style "q" as an alias.
func cityParam(r *http.Request) string {
	query := r.URL.Query()
	if city := query.Get("city"); city != "" {
		return city
	}
	return query.Get("q")
}
