package config

import (
	"time"
)

// Store backends.
const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
	StoreRedis    = "redis"
)

// DB configures the postgres pool. Zero pool values fall back to the defaults in infra.
type DB struct {
	Url             string        `envconfig:"URL"`
	MaxOpenConns    int           `envconfig:"MAX_OPEN_CONNS" default:"25" validate:"gte=0"`
	MaxIdleConns    int           `envconfig:"MAX_IDLE_CONNS" default:"25" validate:"gte=0"`
	ConnMaxLifetime time.Duration `envconfig:"CONN_MAX_LIFETIME" default:"1h" validate:"gte=0"`
}

type Redis struct {
	URL          string        `envconfig:"URL" default:"redis://localhost:6379/0"`
	KeyPrefix    string        `envconfig:"KEY_PREFIX" default:"bankcore:"`
	PoolSize     int           `envconfig:"POOL_SIZE" default:"10" validate:"gt=0"`
	DialTimeout  time.Duration `envconfig:"DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"READ_TIMEOUT" default:"3s"`
	WriteTimeout time.Duration `envconfig:"WRITE_TIMEOUT" default:"3s"`
	MaxRetries   int           `envconfig:"MAX_RETRIES" default:"10" validate:"gt=0"`
}

// Bank holds the account store selection and the credit policy parameters.
type Bank struct {
	Store                     string  `envconfig:"STORE" default:"memory" validate:"oneof=memory postgres redis"`
	MinimalCreditBalanceRatio float64 `envconfig:"MINIMAL_CREDIT_BALANCE_RATIO" default:"0.15" validate:"gte=0,lte=1"`
	LoanInterestRate          float64 `envconfig:"LOAN_INTEREST_RATE" default:"3.7" validate:"gte=0"`
}

type Metrics struct {
	Enabled bool `envconfig:"ENABLED" default:"false"`
}

type Log struct {
	Level      int    `envconfig:"LEVEL" default:"0" validate:"gte=-4,lte=12"`
	Format     string `envconfig:"FORMAT" default:"text" validate:"oneof=json text"`
	TimeFormat string `envconfig:"TIME_FORMAT" default:"2006-01-02 15:04:05"`
	Prefix     string `envconfig:"PREFIX" default:"[bankcore]"`
}

type App struct {
	Env     string   `envconfig:"APP_ENV" default:"development" validate:"oneof=development test production"`
	Log     *Log     `envconfig:"LOG"`
	DB      *DB      `envconfig:"DATABASE"`
	Redis   *Redis   `envconfig:"REDIS"`
	Bank    *Bank    `envconfig:"BANK"`
	Metrics *Metrics `envconfig:"METRICS"`
}
