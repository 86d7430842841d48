package weatherquery

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type Repository interface {
	LogWeatherQuery(ctx context.Context, query *WeatherQuery) error
}

type WeatherSQLRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &WeatherSQLRepository{db: db}
}

func (r *WeatherSQLRepository) LogWeatherQuery(ctx context.Context, query *WeatherQuery) error {
	if query.CreatedAt.IsZero() {
		query.CreatedAt = time.Now()
	}

	return r.db.WithContext(ctx).Create(query).Error
}
