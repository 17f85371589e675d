package factory

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/DjordjeVuckovic/rpn-calc/internal/history"
	"github.com/DjordjeVuckovic/rpn-calc/internal/history/es"
	"github.com/DjordjeVuckovic/rpn-calc/internal/history/pg"
	"github.com/DjordjeVuckovic/rpn-calc/pkg/utils"
)

const DefaultIndexName = "calculations"

type StoreConfig struct {
	history.Type
	Pg *pg.PoolConfig
	Es *es.ClientConfig
}

// LoadEnv reads the history store settings. STORAGE_TYPE defaults to in_mem.
func LoadEnv() (*StoreConfig, error) {
	storeType := history.Type(strings.TrimSpace(os.Getenv("STORAGE_TYPE")))
	if storeType == "" {
		slog.Info("STORAGE_TYPE is not set, keeping history in memory")
		storeType = history.InMem
	}
	if storeType != history.ES && storeType != history.PG && storeType != history.InMem {
		slog.Error("Invalid STORAGE_TYPE environment variable value", "value", storeType)
		return nil, fmt.Errorf(
			"invalid STORAGE_TYPE environment variable value: %s, expected one of %v",
			storeType,
			[]history.Type{history.ES, history.PG, history.InMem})
	}

	cfg := &StoreConfig{Type: storeType}

	switch storeType {
	case history.ES:
		cfg.Es = &es.ClientConfig{
			Addresses: utils.SplitAndTrim(os.Getenv("ES_ADDRESSES"), ","),
			IndexName: os.Getenv("ES_INDEX_NAME"),
			Username:  os.Getenv("ES_USERNAME"),
			Password:  os.Getenv("ES_PASSWORD"),
		}
		if cfg.Es.IndexName == "" {
			cfg.Es.IndexName = DefaultIndexName
		}
		if len(cfg.Es.Addresses) == 0 {
			slog.Error("Elasticsearch configuration is incomplete", "addresses", cfg.Es.Addresses)
			return nil, fmt.Errorf("elasticsearch configuration is incomplete: ES_ADDRESSES is missing")
		}
	case history.PG:
		cfg.Pg = &pg.PoolConfig{
			ConnStr: os.Getenv("PG_CONNECTION_STRING"),
		}
		if cfg.Pg.ConnStr == "" {
			slog.Error("PostgreSQL connection string is not set")
			return nil, fmt.Errorf("PostgreSQL connection string is not set")
		}
	}

	return cfg, nil
}
