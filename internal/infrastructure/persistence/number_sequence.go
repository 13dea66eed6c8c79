package persistence

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// GormNumberSequence implements quote.NumberSequence with an atomic upsert.
// Two concurrent allocations for the same year serialize on the row, so every
// caller observes a distinct value.
type GormNumberSequence struct {
	db *gorm.DB
}

// NewGormNumberSequence creates a new GormNumberSequence
func NewGormNumberSequence(db *gorm.DB) *GormNumberSequence {
	return &GormNumberSequence{db: db}
}

// Next returns the next sequence value for the given year, starting at 1
func (s *GormNumberSequence) Next(ctx context.Context, year int) (int64, error) {
	// Single-statement upsert, valid on both PostgreSQL and SQLite.
	var seq int64
	err := s.db.WithContext(ctx).Raw(
		`INSERT INTO number_sequences (year, seq) VALUES (?, 1)
		 ON CONFLICT (year) DO UPDATE SET seq = number_sequences.seq + 1
		 RETURNING seq`, year,
	).Scan(&seq).Error
	if err != nil {
		return 0, fmt.Errorf("failed to advance number sequence for %d: %w", year, err)
	}
	return seq, nil
}
