package weatherquery

import (
	"time"
)

type Kind string

const (
	KindCurrent  Kind = "current"
	KindForecast Kind = "forecast"
)

// WeatherQuery is one served request. Weather data itself is not stored.
type WeatherQuery struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	RequestID     string    `json:"request_id" gorm:"column:request_id;size:64"`
	City          string    `json:"city" gorm:"index:idx_city;index:idx_city_created_at"`
	Kind          Kind      `json:"kind" gorm:"size:16"`
	Days          int       `json:"days"`
	Success       bool      `json:"success"`
	ErrorKind     string    `json:"error_kind,omitempty" gorm:"column:error_kind;size:16"`
	UpstreamCalls int       `json:"upstream_calls" gorm:"column:upstream_calls"`
	LatencyMs     int64     `json:"latency_ms" gorm:"column:latency_ms"`
	CreatedAt     time.Time `json:"created_at" gorm:"index:idx_created_at;index:idx_city_created_at"`
}

func (WeatherQuery) TableName() string {
	return "weather_queries"
}
