package service

import (
	"fmt"

	"weatherapp/weather-service/internal/providers"
)

func mapCurrentWeather(payload *providers.WeatherPayload) (CurrentWeather, error) {
	if payload == nil {
		return CurrentWeather{}, &MappingError{Field: "response body"}
	}
	if payload.Location == nil {
		return CurrentWeather{}, &MappingError{Field: "location"}
	}
	if payload.Current == nil {
		return CurrentWeather{}, &MappingError{Field: "current"}
	}
	if payload.Current.Condition == nil {
		return CurrentWeather{}, &MappingError{Field: "current.condition"}
	}
	if payload.Current.TempC == nil {
		return CurrentWeather{}, &MappingError{Field: "current.temp_c"}
	}

	return CurrentWeather{
		City:        payload.Location.Name,
		Region:      payload.Location.Region,
		Country:     payload.Location.Country,
		Condition:   payload.Current.Condition.Text,
		Temperature: *payload.Current.TempC,
	}, nil
}

func mapDailyTemperatures(payload *providers.WeatherPayload) ([]DailyTemperature, error) {
	if payload == nil || payload.Forecast == nil {
		return nil, &MappingError{Field: "forecast"}
	}

	days := make([]DailyTemperature, 0, len(payload.Forecast.ForecastDay))
	for i, fd := range payload.Forecast.ForecastDay {
		field := func(name string) error {
			return &MappingError{Field: fmt.Sprintf("forecast.forecastday[%d].%s", i, name)}
		}

		if fd.Date == "" {
			return nil, field("date")
		}
		if fd.Day == nil {
			return nil, field("day")
		}
		if fd.Day.MinTempC == nil {
			return nil, field("day.mintemp_c")
		}
		if fd.Day.AvgTempC == nil {
			return nil, field("day.avgtemp_c")
		}
		if fd.Day.MaxTempC == nil {
			return nil, field("day.maxtemp_c")
		}

		days = append(days, DailyTemperature{
			Date:    fd.Date,
			MinTemp: *fd.Day.MinTempC,
			AvgTemp: *fd.Day.AvgTempC,
			MaxTemp: *fd.Day.MaxTempC,
		})
	}

	return days, nil
}
