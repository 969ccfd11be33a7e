package storage

import (
	"fmt"
	"path/filepath"

	"github.com/julianstephens/hurryup/internal/config"
	"github.com/julianstephens/hurryup/internal/logger"
)

// Open builds the Store configured by cfg.
func Open(cfg *config.Config) (*Store, error) {
	var (
		m   Medium
		err error
	)
	switch cfg.Storage.Backend {
	case "", "file":
		m, err = NewFileMedium(filepath.Join(cfg.DataDir, "data"))
	case "sqlite":
		m, err = NewSQLiteMedium(filepath.Join(cfg.DataDir, "hurryup.db"))
	case "diskv":
		m = NewDiskvMedium(filepath.Join(cfg.DataDir, "kv"))
	case "memory":
		m = NewMemoryMedium()
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
	if err != nil {
		return nil, err
	}

	if cfg.Storage.QuotaBytes > 0 {
		m = NewQuotaMedium(m, cfg.Storage.QuotaBytes)
	}
	logger.Debug("storage opened", "backend", cfg.Storage.Backend, "location", m.Location(), "quota", cfg.Storage.QuotaBytes)
	return NewStore(m), nil
}
