package weatherquery_test

import (
	"context"
	"database/sql"
	"errors"
	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"testing"
	"time"
	"weatherapp/weather-service/internal/db/weatherquery"
)

type WeatherRepositorySuite struct {
	suite.Suite
	DB   *gorm.DB
	mock sqlmock.Sqlmock
	repo weatherquery.Repository
}

func (s *WeatherRepositorySuite) SetupSuite() {
	var err error

	var db *sql.DB
	db, s.mock, err = sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	s.Require().NoError(err)

	dialector := postgres.New(postgres.Config{
		DSN:                  "sqlmock_db_0",
		DriverName:           "postgres",
		Conn:                 db,
		PreferSimpleProtocol: true,
	})

	s.DB, err = gorm.Open(dialector, &gorm.Config{})
	s.Require().NoError(err)

	s.repo = weatherquery.NewRepository(s.DB)
}

func (s *WeatherRepositorySuite) TearDownTest() {
	s.Require().NoError(s.mock.ExpectationsWereMet())
}

func (s *WeatherRepositorySuite) TestLogWeatherQuery() {
	s.Run("Successfully logs a forecast query", func() {
		query := &weatherquery.WeatherQuery{
			RequestID:     "6f1c0a52-95b5-4c4e-9f7e-0f3a3d9c2b11",
			City:          "Istanbul",
			Kind:          weatherquery.KindForecast,
			Days:          3,
			Success:       true,
			UpstreamCalls: 1,
			LatencyMs:     120,
		}

		s.mock.ExpectBegin()
		s.mock.ExpectQuery(`INSERT INTO "weather_queries"`).
			WithArgs(
				query.RequestID,
				"Istanbul",
				"forecast",
				3,
				true,
				"",
				1,
				int64(120),
				sqlmock.AnyArg(),
			).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
		s.mock.ExpectCommit()

		err := s.repo.LogWeatherQuery(context.Background(), query)

		s.Require().NoError(err)
		s.Require().Equal(uint(1), query.ID)
		s.Require().False(query.CreatedAt.IsZero())
	})

	s.Run("Keeps a preset creation time", func() {
		createdAt := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
		query := &weatherquery.WeatherQuery{
			RequestID: "req-2",
			City:      "Paris",
			Kind:      weatherquery.KindCurrent,
			ErrorKind: "upstream",
			CreatedAt: createdAt,
		}

		s.mock.ExpectBegin()
		s.mock.ExpectQuery(`INSERT INTO "weather_queries"`).
			WithArgs("req-2", "Paris", "current", 0, false, "upstream", 0, int64(0), createdAt).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(2))
		s.mock.ExpectCommit()

		err := s.repo.LogWeatherQuery(context.Background(), query)

		s.Require().NoError(err)
		s.Require().Equal(createdAt, query.CreatedAt)
	})

	s.Run("Returns error when database operation fails", func() {
		dbError := errors.New("database error")
		query := &weatherquery.WeatherQuery{
			RequestID: "req-3",
			City:      "London",
			Kind:      weatherquery.KindCurrent,
		}

		s.mock.ExpectBegin()
		s.mock.ExpectQuery(`INSERT INTO "weather_queries"`).
			WillReturnError(dbError)
		s.mock.ExpectRollback()

		err := s.repo.LogWeatherQuery(context.Background(), query)

		s.Require().Error(err)
		s.Require().Equal("database error", err.Error())
	})
}

func TestWeatherRepositorySuite(t *testing.T) {
	suite.Run(t, new(WeatherRepositorySuite))
}
