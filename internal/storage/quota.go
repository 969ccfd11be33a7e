package storage

import (
	apperrors "github.com/julianstephens/hurryup/internal/errors"
)

// QuotaMedium enforces a per-value byte budget on an inner medium, the way a
// browser caps localStorage. A rejected Set leaves the stored value untouched.
type QuotaMedium struct {
	Medium
	limit int64
}

func NewQuotaMedium(inner Medium, limit int64) *QuotaMedium {
	return &QuotaMedium{Medium: inner, limit: limit}
}

func (q *QuotaMedium) Set(key string, value []byte) error {
	if q.limit > 0 && int64(len(key)+len(value)) > q.limit {
		return apperrors.ErrQuotaExceeded
	}
	return q.Medium.Set(key, value)
}

// Limit returns the byte budget.
func (q *QuotaMedium) Limit() int64 { return q.limit }
