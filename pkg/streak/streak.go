package streak

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/Kartik213/rustlings/internal/adapters/fs"
	logAdapter "github.com/Kartik213/rustlings/internal/adapters/log"
	"github.com/Kartik213/rustlings/internal/app"
	"github.com/Kartik213/rustlings/internal/domain"
	"github.com/Kartik213/rustlings/internal/ports"
)

// Exercise is an exercise handle with a "looks done" predicate.
type Exercise = ports.Exercise

// Logger receives diagnostic messages.
type Logger = ports.Logger

// Report describes the status line shown by Display.
type Report = app.Report

// Report kinds.
const (
	ReportStarting = app.ReportStarting
	ReportNoData   = app.ReportNoData
	ReportActive   = app.ReportActive
	ReportDueToday = app.ReportDueToday
	ReportLapsed   = app.ReportLapsed
)

// ErrHomeNotFound is returned when no home directory can be resolved.
var ErrHomeNotFound = domain.ErrHomeNotFound

// FileName is the streak file name inside the home directory.
const FileName = fs.RecordFileName

// Option configures a Tracker.
type Option func(*options)

type options struct {
	logger Logger
	now    func() time.Time
}

// WithLogger sets the logger. Messages are discarded by default.
func WithLogger(l Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithClock sets the time source used to determine today's date.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// Tracker records and reports a daily streak.
type Tracker struct {
	tracker *app.Tracker
	repo    *fs.RecordFileRepository
}

// New creates a Tracker storing its file in homeDir.
func New(homeDir string, opts ...Option) (*Tracker, error) {
	if homeDir == "" {
		return nil, fmt.Errorf("%w: empty path", ErrHomeNotFound)
	}
	o := options{logger: logAdapter.Discard{}}
	for _, opt := range opts {
		opt(&o)
	}
	repo := fs.NewRecordFileRepository(homeDir)
	return &Tracker{tracker: app.NewTracker(repo, o.logger, o.now), repo: repo}, nil
}

// NewDefault creates a Tracker in the current user's home directory.
func NewDefault(opts ...Option) (*Tracker, error) {
	h, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrHomeNotFound, err)
	}
	return New(h, opts...)
}

// Update records progress for today.
func (t *Tracker) Update(ctx context.Context) error {
	return t.tracker.Update(ctx)
}

// Display writes the current status line to w.
func (t *Tracker) Display(ctx context.Context, exercises []Exercise, w io.Writer) (Report, error) {
	return t.tracker.Display(ctx, exercises, w)
}

// Path returns the streak file path.
func (t *Tracker) Path() string {
	return t.repo.Path()
}
