package main

import (
	"log/slog"
	"os"

	"github.com/DjordjeVuckovic/rpn-calc/internal/history/factory"
	"github.com/DjordjeVuckovic/rpn-calc/pkg/config/env"
)

type AppConfig struct {
	ENV string
}

func NewAppConfig() *AppConfig {
	return &AppConfig{
		ENV: os.Getenv("ENV"),
	}
}

type CalcApiConfig struct {
	StoreConfig factory.StoreConfig
}

func (as *AppConfig) Load() (*CalcApiConfig, error) {
	err := env.LoadDotEnv(as.ENV, "cmd/calc_api/.env")
	if err != nil {
		slog.Info("Failed to .env load environment variables, continuing with existing environment variables", "error", err)
	}

	storeCfg, err := factory.LoadEnv()
	if err != nil {
		slog.Error("Failed to load history configuration from environment", "error", err)
		return nil, err
	}

	return &CalcApiConfig{
		StoreConfig: *storeCfg,
	}, nil
}
