package handlers

import "weatherapp/weather-service/internal/service"

type CurrentWeatherResponse struct {
	City        string  `json:"city"`
	Region      string  `json:"region"`
	Country     string  `json:"country"`
	Condition   string  `json:"condition"`
	Temperature float64 `json:"temperature"`
}

type DailyTemperatureResponse struct {
	Date    string  `json:"date"`
	MinTemp float64 `json:"minTemp"`
	AvgTemp float64 `json:"avgTemp"`
	MaxTemp float64 `json:"maxTemp"`
}

type ForecastResponse struct {
	WeatherResponse CurrentWeatherResponse     `json:"weatherResponse"`
	DayTemp         []DailyTemperatureResponse `json:"dayTemp"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

type Error struct {
	Code   string `json:"code"`
	Detail string `json:"detail"`
	Status int    `json:"status"`
	Title  string `json:"title"`
}

type ErrorResponse struct {
	Errors []Error `json:"errors"`
}

func newCurrentWeatherResponse(current service.CurrentWeather) CurrentWeatherResponse {
	return CurrentWeatherResponse{
		City:        current.City,
		Region:      current.Region,
		Country:     current.Country,
		Condition:   current.Condition,
		Temperature: current.Temperature,
	}
}

func newForecastResponse(forecast service.ForecastResult) ForecastResponse {
	days := make([]DailyTemperatureResponse, 0, len(forecast.Days))
	for _, day := range forecast.Days {
		days = append(days, DailyTemperatureResponse{
			Date:    day.Date,
			MinTemp: day.MinTemp,
			AvgTemp: day.AvgTemp,
			MaxTemp: day.MaxTemp,
		})
	}

	return ForecastResponse{
		WeatherResponse: newCurrentWeatherResponse(forecast.Current),
		DayTemp:         days,
	}
}
