package fs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Kartik213/rustlings/internal/domain"
)

// RecordFileName is the streak file name inside the home directory.
const RecordFileName = ".rustlings_streak.json"

// fileRecord is the on-disk shape. Pointer fields let a missing key be told
// apart from a zero value.
type fileRecord struct {
	LastDate *string `json:"last_date"`
	Streak   *uint32 `json:"streak"`
}

type encodedRecord struct {
	LastDate string `json:"last_date"`
	Streak   uint32 `json:"streak"`
}

// RecordFileRepository implements ports.RecordRepository using a JSON file.
type RecordFileRepository struct {
	dir string
}

// NewRecordFileRepository creates a repository for the streak file in dir.
func NewRecordFileRepository(dir string) *RecordFileRepository {
	return &RecordFileRepository{dir: dir}
}

// Load retrieves the stored record from disk.
// Returns a StatusMissing snapshot and nil error if no file exists.
func (r *RecordFileRepository) Load(ctx context.Context, today domain.Date) (domain.Snapshot, error) {
	data, err := os.ReadFile(r.Path())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.Snapshot{Status: domain.StatusMissing}, nil
		}
		return domain.Snapshot{}, fmt.Errorf("read streak file: %w", err)
	}
	return DecodeRecord(data, today), nil
}

// DecodeRecord turns file contents into a snapshot. It never fails: data
// that is not a valid record yields StatusCorrupt with a fresh record for
// today, and an unparseable date yields StatusBadDate with today substituted.
func DecodeRecord(data []byte, today domain.Date) domain.Snapshot {
	var fr fileRecord
	if err := json.Unmarshal(data, &fr); err != nil || fr.LastDate == nil || fr.Streak == nil || *fr.Streak == 0 {
		return domain.Snapshot{Status: domain.StatusCorrupt, Record: domain.NewRecord(today)}
	}

	last, err := domain.ParseDate(*fr.LastDate)
	if err != nil {
		return domain.Snapshot{
			Status: domain.StatusBadDate,
			Record: domain.Record{LastDate: today, Streak: *fr.Streak},
		}
	}

	return domain.Snapshot{
		Status: domain.StatusFound,
		Record: domain.Record{LastDate: last, Streak: *fr.Streak},
	}
}

// EncodeRecord renders rec in the indented on-disk format.
func EncodeRecord(rec domain.Record) ([]byte, error) {
	return json.MarshalIndent(encodedRecord{
		LastDate: rec.LastDate.String(),
		Streak:   rec.Streak,
	}, "", "  ")
}

// Save replaces the stored record.
// Writes to a temp file and renames it over the old one.
func (r *RecordFileRepository) Save(ctx context.Context, rec domain.Record) error {
	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return fmt.Errorf("create streak dir: %w", err)
	}

	data, err := EncodeRecord(rec)
	if err != nil {
		return fmt.Errorf("encode streak record: %w", err)
	}

	path := r.Path()
	tmp := path + ".tmp"

	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write streak file: %w", err)
	}

	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replace streak file: %w", err)
	}
	return nil
}

// Path returns the full path to the streak file.
func (r *RecordFileRepository) Path() string {
	return filepath.Join(r.dir, RecordFileName)
}
