package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v9"
)

// Config is read from the environment; .env files are loaded by godotenv/autoload in main.
type Config struct {
	HTTPPort int `env:"HTTP_PORT" envDefault:"8080"`

	AWSRegion          string `env:"AWS_REGION" envDefault:"us-east-1"`
	AWSAccessKeyID     string `env:"AWS_ACCESS_KEY_ID" envDefault:"local"`
	AWSSecretAccessKey string `env:"AWS_SECRET_ACCESS_KEY" envDefault:"local"`
	DynamoDBEndpoint   string `env:"DYNAMODB_ENDPOINT"`

	Tables TablesConfig

	RedisAddr     string        `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string        `env:"REDIS_PASSWORD"`
	RedisDB       int           `env:"REDIS_DB" envDefault:"0"`
	SessionTTL    time.Duration `env:"SESSION_TTL" envDefault:"24h"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`
}

// TablesConfig holds the DynamoDB table names, one per document collection.
type TablesConfig struct {
	Evaluations string `env:"EVALUATIONS_TABLE" envDefault:"evaluations"`
	Units       string `env:"UNITS_TABLE" envDefault:"units"`
	Settings    string `env:"SETTINGS_TABLE" envDefault:"settings"`
	Users       string `env:"USERS_TABLE" envDefault:"users"`
	Alerts      string `env:"ALERTS_TABLE" envDefault:"system_alerts"`
	HiringDocs  string `env:"HIRING_DOCS_TABLE" envDefault:"hiring_docs"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.SessionTTL <= 0 {
		return nil, fmt.Errorf("SESSION_TTL must be positive")
	}
	return &cfg, nil
}
