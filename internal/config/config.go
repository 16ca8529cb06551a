// Package config loads service configuration from environment variables.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Addr           string `env:"ADDR" envDefault:":8080"`
	DataFile       string `env:"DATA_FILE" envDefault:"AI_Job_Market_Trends.csv"`
	ExportFilename string `env:"EXPORT_FILENAME" envDefault:"filtered_data.csv"`
}

func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
