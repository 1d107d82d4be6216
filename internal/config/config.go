package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Source names a catalog storage backend.
type Source string

const (
	SourceCSV      Source = "csv"
	SourcePostgres Source = "postgres"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"Farm Waste Advisor"`
		Port int    `envconfig:"PORT" default:"8080"`
	}

	Dataset struct {
		Source Source `envconfig:"DATASET_SOURCE" default:"csv"`
		Path   string `envconfig:"DATASET_PATH" default:"waste_data.csv"`
	}

	DB struct {
		Host     string `envconfig:"DB_HOST" default:"localhost"`
		Port     int    `envconfig:"DB_PORT" default:"5432"`
		User     string `envconfig:"DB_USER" default:"postgres"`
		Password string `envconfig:"DB_PASSWORD" default:""`
		Name     string `envconfig:"DB_NAME" default:"wasteadvisor"`
	}

	Matching struct {
		// ScoreCutoff is the minimum similarity score for a confident match.
		ScoreCutoff float64 `envconfig:"MATCH_SCORE_CUTOFF" default:"50"`
	}

	Auth struct {
		// TokenSecret enables JWT bearer auth on dataset-mutating routes
		// when set. Empty leaves them open, which is fine for a local setup.
		TokenSecret string `envconfig:"AUTH_TOKEN_SECRET"`
	}
}

func (c *Config) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.DB.User, c.DB.Password, c.DB.Host, c.DB.Port, c.DB.Name)
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
