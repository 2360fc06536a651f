package app

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/Kartik213/rustlings/internal/domain"
	"github.com/Kartik213/rustlings/internal/ports"
)

// Tracker runs the two streak operations against a record repository.
//
// Each call does at most one read followed by at most one write. There is no
// locking: two processes updating at the same moment can lose one update.
type Tracker struct {
	repo   ports.RecordRepository
	logger ports.Logger
	now    func() time.Time
}

// NewTracker creates a tracker. A nil now defaults to time.Now.
func NewTracker(repo ports.RecordRepository, logger ports.Logger, now func() time.Time) *Tracker {
	if now == nil {
		now = time.Now
	}
	return &Tracker{repo: repo, logger: logger, now: now}
}

// Today returns the local calendar date.
func (t *Tracker) Today() domain.Date {
	return domain.DateOf(t.now())
}

// Update records qualifying progress for today. Call it once progress has
// been confirmed. The record is written only when it changes.
func (t *Tracker) Update(ctx context.Context) error {
	today := t.Today()

	snap, err := t.repo.Load(ctx, today)
	if err != nil {
		return fmt.Errorf("load streak: %w", err)
	}

	var next domain.Record
	switch snap.Status {
	case domain.StatusMissing, domain.StatusCorrupt:
		if snap.Status == domain.StatusCorrupt {
			t.logger.Warn("streak file unreadable, starting over", ports.String("today", today.String()))
		}
		next = domain.NewRecord(today)
	default:
		if snap.Status == domain.StatusBadDate {
			t.logger.Warn("streak file has an invalid date, treating it as today")
		}
		var changed bool
		next, changed = domain.Advance(snap.Record, today)
		if !changed {
			t.logger.Debug("streak already up to date",
				ports.Uint32("streak", snap.Record.Streak),
				ports.String("last_date", snap.Record.LastDate.String()))
			return nil
		}
	}

	if err := t.repo.Save(ctx, next); err != nil {
		return fmt.Errorf("save streak: %w", err)
	}
	t.logger.Debug("streak saved",
		ports.Uint32("streak", next.Streak),
		ports.String("last_date", next.LastDate.String()))
	return nil
}

// Display writes one status line to w describing the current streak and
// returns what it reported. Nothing is ever written to the repository, and
// when no exercise looks done the repository is not touched at all.
func (t *Tracker) Display(ctx context.Context, exercises []ports.Exercise, w io.Writer) (Report, error) {
	report, err := t.Status(ctx, exercises)
	if err != nil {
		return report, err
	}
	if err := NewStatusPrinter(w).Print(report); err != nil {
		return report, fmt.Errorf("print status: %w", err)
	}
	return report, nil
}

// Status computes the report that Display prints.
func (t *Tracker) Status(ctx context.Context, exercises []ports.Exercise) (Report, error) {
	done := CountDone(exercises)
	if done == 0 {
		return Report{Kind: ReportStarting}, nil
	}

	today := t.Today()
	snap, err := t.repo.Load(ctx, today)
	if err != nil {
		return Report{Done: done}, fmt.Errorf("load streak: %w", err)
	}
	if !snap.Exists() {
		return Report{Kind: ReportNoData, Done: done}, nil
	}

	// Corrupt and bad-date snapshots already carry a substitute record
	// dated today. It is used for the message only.
	rec := snap.Record
	report := Report{Streak: rec.Streak, Done: done}
	switch domain.Assess(rec, today) {
	case domain.Active:
		report.Kind = ReportActive
	case domain.DueToday:
		report.Kind = ReportDueToday
	default:
		report.Kind = ReportLapsed
	}
	return report, nil
}

// CountDone returns how many exercises look done.
func CountDone(exercises []ports.Exercise) int {
	n := 0
	for _, e := range exercises {
		if e.LooksDone() {
			n++
		}
	}
	return n
}
