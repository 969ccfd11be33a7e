package storage

import (
	"errors"
	"path/filepath"
	"testing"

	apperrors "github.com/julianstephens/hurryup/internal/errors"
)

func newMedia(t *testing.T) map[string]Medium {
	t.Helper()
	dir := t.TempDir()

	file, err := NewFileMedium(filepath.Join(dir, "file"))
	if err != nil {
		t.Fatalf("NewFileMedium() error = %v", err)
	}
	sqlite, err := NewSQLiteMedium(filepath.Join(dir, "hurryup.db"))
	if err != nil {
		t.Fatalf("NewSQLiteMedium() error = %v", err)
	}
	t.Cleanup(func() { sqlite.Close() })

	return map[string]Medium{
		"memory": NewMemoryMedium(),
		"file":   file,
		"sqlite": sqlite,
		"diskv":  NewDiskvMedium(filepath.Join(dir, "kv")),
	}
}

func TestMediumRoundTrip(t *testing.T) {
	for name, m := range newMedia(t) {
		t.Run(name, func(t *testing.T) {
			if _, err := m.Get("missing"); !errors.Is(err, apperrors.ErrNotFound) {
				t.Fatalf("Get(missing) error = %v, want ErrNotFound", err)
			}

			if err := m.Set("doc", []byte(`{"a":1}`)); err != nil {
				t.Fatalf("Set() error = %v", err)
			}
			if err := m.Set("doc", []byte(`{"a":2}`)); err != nil {
				t.Fatalf("Set() overwrite error = %v", err)
			}

			got, err := m.Get("doc")
			if err != nil {
				t.Fatalf("Get() error = %v", err)
			}
			if string(got) != `{"a":2}` {
				t.Errorf("Get() = %s, want {\"a\":2}", got)
			}

			if err := m.Remove("doc"); err != nil {
				t.Fatalf("Remove() error = %v", err)
			}
			if _, err := m.Get("doc"); !errors.Is(err, apperrors.ErrNotFound) {
				t.Errorf("Get() after Remove error = %v, want ErrNotFound", err)
			}
			if err := m.Remove("doc"); err != nil {
				t.Errorf("Remove() of absent key error = %v", err)
			}
			if m.Location() == "" {
				t.Error("Location() is empty")
			}
		})
	}
}

func TestSQLiteMediumPersistsAcrossOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hurryup.db")

	m, err := NewSQLiteMedium(path)
	if err != nil {
		t.Fatalf("NewSQLiteMedium() error = %v", err)
	}
	if err := m.Set("doc", []byte("payload")); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	m.Close()

	m, err = NewSQLiteMedium(path)
	if err != nil {
		t.Fatalf("reopen error = %v", err)
	}
	defer m.Close()
	got, err := m.Get("doc")
	if err != nil || string(got) != "payload" {
		t.Errorf("Get() = %q, %v", got, err)
	}
}

func TestQuotaMedium(t *testing.T) {
	inner := NewMemoryMedium()
	q := NewQuotaMedium(inner, 10)

	if err := q.Set("k", []byte("small")); err != nil {
		t.Fatalf("Set(small) error = %v", err)
	}
	err := q.Set("k", []byte("much too large"))
	if !errors.Is(err, apperrors.ErrQuotaExceeded) {
		t.Fatalf("Set(large) error = %v, want ErrQuotaExceeded", err)
	}

	got, _ := q.Get("k")
	if string(got) != "small" {
		t.Errorf("previous value lost after rejected write, got %q", got)
	}
}
