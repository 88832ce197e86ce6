package infra

import (
	"errors"
	"time"

	"github.com/amirasaad/bankcore/pkg/config"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ErrMissingDatabaseURL is returned when no DATABASE_URL is configured.
var ErrMissingDatabaseURL = errors.New("DATABASE_URL is not set")

// Pool defaults used when config.DB leaves a limit at zero.
const (
	defaultMaxOpenConns    = 25
	defaultMaxIdleConns    = 25
	defaultConnMaxLifetime = time.Hour
)

// poolSettings resolves the pool limits for cnf, substituting defaults for zero values.
// Idle connections never exceed open connections.
func poolSettings(cnf *config.DB) (maxOpen, maxIdle int, lifetime time.Duration) {
	maxOpen, maxIdle, lifetime = cnf.MaxOpenConns, cnf.MaxIdleConns, cnf.ConnMaxLifetime
	if maxOpen <= 0 {
		maxOpen = defaultMaxOpenConns
	}
	if maxIdle <= 0 {
		maxIdle = defaultMaxIdleConns
	}
	if maxIdle > maxOpen {
		maxIdle = maxOpen
	}
	if lifetime <= 0 {
		lifetime = defaultConnMaxLifetime
	}
	return maxOpen, maxIdle, lifetime
}

// NewDBConnection opens the postgres connection pool. SQL is logged in development only.
func NewDBConnection(
	cnf *config.DB,
	appEnv string,
) (*gorm.DB, error) {
	if cnf == nil || cnf.Url == "" {
		return nil, ErrMissingDatabaseURL
	}

	var logMode logger.LogLevel
	if appEnv == "development" {
		logMode = logger.Info
	} else {
		logMode = logger.Silent
	}

	connection, err := gorm.Open(postgres.Open(cnf.Url), &gorm.Config{
		Logger:                 logger.Default.LogMode(logMode),
		SkipDefaultTransaction: true})
	if err != nil {
		return nil, err
	}

	sqlDB, err := connection.DB()
	if err != nil {
		return nil, err
	}
	maxOpen, maxIdle, lifetime := poolSettings(cnf)
	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetMaxIdleConns(maxIdle)
	sqlDB.SetConnMaxLifetime(lifetime)

	return connection, nil
}
