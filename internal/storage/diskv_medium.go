package storage

import (
	"fmt"
	"os"

	"github.com/peterbourgon/diskv/v3"

	apperrors "github.com/julianstephens/hurryup/internal/errors"
)

// DiskvMedium stores values through diskv with a small read cache.
type DiskvMedium struct {
	d        *diskv.Diskv
	basePath string
}

func NewDiskvMedium(basePath string) *DiskvMedium {
	return &DiskvMedium{
		d: diskv.New(diskv.Options{
			BasePath:     basePath,
			TempDir:      basePath + ".tmp",
			Transform:    func(string) []string { return []string{} },
			CacheSizeMax: 8 * 1024 * 1024,
			FilePerm:     0600,
			PathPerm:     0700,
		}),
		basePath: basePath,
	}
}

func (m *DiskvMedium) Get(key string) ([]byte, error) {
	if !m.d.Has(key) {
		return nil, apperrors.ErrNotFound
	}
	v, err := m.d.Read(key)
	if err != nil {
		return nil, fmt.Errorf("failed to read storage: %w", err)
	}
	return v, nil
}

func (m *DiskvMedium) Set(key string, value []byte) error {
	if err := m.d.Write(key, value); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}
	return nil
}

func (m *DiskvMedium) Remove(key string) error {
	if err := m.d.Erase(key); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove storage: %w", err)
	}
	return nil
}

func (m *DiskvMedium) Close() error { return nil }

func (m *DiskvMedium) Location() string { return m.basePath }
