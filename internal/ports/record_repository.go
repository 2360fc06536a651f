package ports

import (
	"context"

	"github.com/Kartik213/rustlings/internal/domain"
)

// RecordRepository handles persistence of the single streak record.
type RecordRepository interface {
	// Load reads the stored record.
	// A missing record is reported as domain.StatusMissing with a nil error.
	// Undecodable data is recovered using today and reported through the
	// snapshot status, never as an error.
	// Returns an error only for actual read failures.
	Load(ctx context.Context, today domain.Date) (domain.Snapshot, error)

	// Save replaces the stored record.
	Save(ctx context.Context, rec domain.Record) error
}
