package database

import (
	"errors"
	"fmt"
	"time"

	"diabetes-predictor/internal/config"
	"diabetes-predictor/internal/models"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

var ErrUserNotFound = errors.New("user not found")

const (
	maxAttempts  = 10
	retryBackoff = 2 * time.Second
)

// Init открывает хранилище и создаёт таблицы users и history, если их нет.
func Init(driver, dsn string) error {
	db, err := open(driver, dsn)
	if err != nil {
		return err
	}

	// миграции
	if err := db.AutoMigrate(&models.User{}, &models.HistoryEntry{}); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	DB = db
	return nil
}

func open(driver, dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	attempts := 1

	switch driver {
	case config.DriverSQLite:
		dialector = sqlite.Open(dsn)
	case config.DriverPostgres:
		// postgres в контейнере может подниматься дольше приложения
		dialector = postgres.Open(dsn)
		attempts = maxAttempts
	default:
		return nil, fmt.Errorf("unsupported driver %q", driver)
	}

	gcfg := &gorm.Config{Logger: logger.Default.LogMode(logger.Warn)}

	var err error
	for i := 1; i <= attempts; i++ {
		log.Info().Str("driver", driver).Int("attempt", i).Int("max", attempts).Msg("connecting to DB")

		var db *gorm.DB
		db, err = gorm.Open(dialector, gcfg)
		if err == nil {
			log.Info().Str("driver", driver).Msg("connected to DB")
			return db, nil
		}

		log.Warn().Err(err).Msg("failed to connect to DB")
		if i < attempts {
			time.Sleep(retryBackoff)
		}
	}

	return nil, fmt.Errorf("connect to db after %d attempts: %w", attempts, err)
}

// withConn выполняет fn на отдельном соединении, которое освобождается сразу после вызова.
func withConn(fn func(tx *gorm.DB) error) error {
	if DB == nil {
		return errors.New("database is not initialized")
	}
	return DB.Connection(fn)
}
