package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"weatherapp/weather-service/internal/providers"
	"weatherapp/weather-service/internal/service"
)

func respondWithError(w http.ResponseWriter, code int, message string) {
	errorCode := "INTERNAL_ERROR"
	title := "Internal Server Error"

	switch code {
	case http.StatusBadRequest:
		errorCode = "BAD_REQUEST"
		title = "Bad Request"
	case http.StatusNotFound:
		errorCode = "NOT_FOUND"
		title = "Not Found"
	case http.StatusMethodNotAllowed:
		errorCode = "METHOD_NOT_ALLOWED"
		title = "Method Not Allowed"
	case http.StatusBadGateway:
		errorCode = "BAD_GATEWAY"
		title = "Bad Gateway"
	case http.StatusGatewayTimeout:
		errorCode = "GATEWAY_TIMEOUT"
		title = "Gateway Timeout"
	}

	respondWithJSON(w, code, ErrorResponse{
		Errors: []Error{
			{
				Code:   errorCode,
				Detail: message,
				Status: code,
				Title:  title,
			},
		},
	})
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}

// respondWithServiceError maps weather service errors onto HTTP statuses. The
// full error only goes to the log; clients get a fixed detail per status.
func respondWithServiceError(w http.ResponseWriter, r *http.Request, err error, city string) {
	var upstreamErr *providers.UpstreamError
	var mappingErr *service.MappingError

	code := http.StatusInternalServerError
	detail := "failed to get weather data"
	switch {
	case errors.Is(err, context.DeadlineExceeded),
		errors.As(err, &upstreamErr) && upstreamErr.Timeout():
		code = http.StatusGatewayTimeout
		detail = "weather API timed out"
	case errors.As(err, &upstreamErr) && upstreamErr.Rejected():
		code = http.StatusBadRequest
		detail = "weather API rejected the query"
	case errors.As(err, &upstreamErr):
		code = http.StatusBadGateway
		detail = "weather API request failed"
	case errors.As(err, &mappingErr):
		detail = "weather API returned an incomplete response"
	}

	zerolog.Ctx(r.Context()).Error().
		Err(err).
		Str("city", city).
		Int("status", code).
		Msg("failed to get weather data")

	respondWithError(w, code, detail)
}
