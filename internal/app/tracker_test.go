package app

import (
	"bytes"
	"context"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/Kartik213/rustlings/internal/adapters/fs"
	logAdapter "github.com/Kartik213/rustlings/internal/adapters/log"
	"github.com/Kartik213/rustlings/internal/domain"
	"github.com/Kartik213/rustlings/internal/ports"
)

type fakeExercise struct {
	name string
	done bool
}

func (e fakeExercise) Name() string    { return e.name }
func (e fakeExercise) LooksDone() bool { return e.done }

func exercises(done ...bool) []ports.Exercise {
	out := make([]ports.Exercise, len(done))
	for i, d := range done {
		out[i] = fakeExercise{name: "ex" + string(rune('a'+i)), done: d}
	}
	return out
}

// countingRepo wraps a repository and counts calls.
type countingRepo struct {
	inner   ports.RecordRepository
	loads   int
	saves   int
	loadErr error
	saveErr error
}

func (r *countingRepo) Load(ctx context.Context, today domain.Date) (domain.Snapshot, error) {
	r.loads++
	if r.loadErr != nil {
		return domain.Snapshot{}, r.loadErr
	}
	return r.inner.Load(ctx, today)
}

func (r *countingRepo) Save(ctx context.Context, rec domain.Record) error {
	r.saves++
	if r.saveErr != nil {
		return r.saveErr
	}
	return r.inner.Save(ctx, rec)
}

func clockAt(s string) func() time.Time {
	d, err := domain.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return func() time.Time {
		return time.Date(d.Year, d.Month, d.Day, 15, 4, 5, 0, time.Local)
	}
}

type fixture struct {
	repo *countingRepo
	file *fs.RecordFileRepository
}

func newFixture(t *testing.T, contents string) fixture {
	t.Helper()
	file := fs.NewRecordFileRepository(t.TempDir())
	if contents != "" {
		if err := os.WriteFile(file.Path(), []byte(contents), 0o644); err != nil {
			t.Fatalf("write fixture: %v", err)
		}
	}
	return fixture{repo: &countingRepo{inner: file}, file: file}
}

func (f fixture) tracker(today string) *Tracker {
	return NewTracker(f.repo, logAdapter.Discard{}, clockAt(today))
}

func (f fixture) read(t *testing.T) string {
	t.Helper()
	b, err := os.ReadFile(f.file.Path())
	if err != nil {
		t.Fatalf("read streak file: %v", err)
	}
	return string(b)
}

func (f fixture) record(t *testing.T) domain.Record {
	t.Helper()
	snap := fs.DecodeRecord([]byte(f.read(t)), domain.Date{})
	if snap.Status != domain.StatusFound {
		t.Fatalf("stored record status = %v", snap.Status)
	}
	return snap.Record
}

func mustDate(t *testing.T, s string) domain.Date {
	t.Helper()
	d, err := domain.ParseDate(s)
	if err != nil {
		t.Fatalf("ParseDate(%q): %v", s, err)
	}
	return d
}

func TestUpdate_Transitions(t *testing.T) {
	tests := []struct {
		name       string
		contents   string
		today      string
		wantDate   string
		wantStreak uint32
		wantSaves  int
	}{
		{
			name:       "no file creates one",
			today:      "2024-01-10",
			wantDate:   "2024-01-10",
			wantStreak: 1,
			wantSaves:  1,
		},
		{
			name:       "next day extends",
			contents:   `{"last_date":"2024-01-01","streak":5}`,
			today:      "2024-01-02",
			wantDate:   "2024-01-02",
			wantStreak: 6,
			wantSaves:  1,
		},
		{
			name:       "skipped days reset",
			contents:   `{"last_date":"2024-01-01","streak":5}`,
			today:      "2024-01-10",
			wantDate:   "2024-01-10",
			wantStreak: 1,
			wantSaves:  1,
		},
		{
			name:       "corrupt file is replaced",
			contents:   `{not json`,
			today:      "2024-01-10",
			wantDate:   "2024-01-10",
			wantStreak: 1,
			wantSaves:  1,
		},
		{
			name:       "month boundary extends",
			contents:   `{"last_date":"2024-02-29","streak":2}`,
			today:      "2024-03-01",
			wantDate:   "2024-03-01",
			wantStreak: 3,
			wantSaves:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, tt.contents)
			if err := f.tracker(tt.today).Update(context.Background()); err != nil {
				t.Fatalf("Update: %v", err)
			}
			if f.repo.saves != tt.wantSaves {
				t.Errorf("saves = %d, want %d", f.repo.saves, tt.wantSaves)
			}
			got := f.record(t)
			want := domain.Record{LastDate: mustDate(t, tt.wantDate), Streak: tt.wantStreak}
			if got != want {
				t.Errorf("record = %+v, want %+v", got, want)
			}
		})
	}
}

func TestUpdate_NoWrite(t *testing.T) {
	tests := []struct {
		name     string
		contents string
		today    string
	}{
		{name: "same day", contents: `{"last_date":"2024-01-01","streak":5}`, today: "2024-01-01"},
		{name: "clock moved backwards", contents: `{"last_date":"2024-01-05","streak":5}`, today: "2024-01-01"},
		{name: "invalid stored date", contents: `{"last_date":"someday","streak":5}`, today: "2024-01-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, tt.contents)
			if err := f.tracker(tt.today).Update(context.Background()); err != nil {
				t.Fatalf("Update: %v", err)
			}
			if f.repo.saves != 0 {
				t.Errorf("saves = %d, want 0", f.repo.saves)
			}
			if got := f.read(t); got != tt.contents {
				t.Errorf("file changed: %q, want %q", got, tt.contents)
			}
		})
	}
}

func TestUpdate_Idempotent(t *testing.T) {
	f := newFixture(t, `{"last_date":"2024-01-01","streak":5}`)
	tr := f.tracker("2024-01-02")

	if err := tr.Update(context.Background()); err != nil {
		t.Fatalf("first Update: %v", err)
	}
	after := f.read(t)
	if err := tr.Update(context.Background()); err != nil {
		t.Fatalf("second Update: %v", err)
	}
	if got := f.read(t); got != after {
		t.Errorf("second update changed file: %q, want %q", got, after)
	}
	if f.repo.saves != 1 {
		t.Errorf("saves = %d, want 1", f.repo.saves)
	}
	if got := f.record(t).Streak; got != 6 {
		t.Errorf("streak = %d, want 6", got)
	}
}

func TestUpdate_Errors(t *testing.T) {
	loadErr := errors.New("permission denied")
	f := newFixture(t, "")
	f.repo.loadErr = loadErr
	err := f.tracker("2024-01-01").Update(context.Background())
	if !errors.Is(err, loadErr) {
		t.Errorf("Update error = %v, want %v", err, loadErr)
	}
	if f.repo.saves != 0 {
		t.Errorf("saves = %d after load failure, want 0", f.repo.saves)
	}

	saveErr := errors.New("disk full")
	f = newFixture(t, "")
	f.repo.saveErr = saveErr
	err = f.tracker("2024-01-01").Update(context.Background())
	if !errors.Is(err, saveErr) {
		t.Errorf("Update error = %v, want %v", err, saveErr)
	}
}

func TestDisplay(t *testing.T) {
	tests := []struct {
		name       string
		contents   string
		today      string
		done       []bool
		wantKind   ReportKind
		wantStreak uint32
		wantLine   string
		wantLoads  int
	}{
		{
			name:      "nothing done",
			contents:  `{"last_date":"2024-01-01","streak":5}`,
			today:     "2024-01-02",
			done:      []bool{false, false},
			wantKind:  ReportStarting,
			wantLine:  "Let's get started!",
			wantLoads: 0,
		},
		{
			name:      "no exercises at all",
			today:     "2024-01-02",
			wantKind:  ReportStarting,
			wantLine:  "Let's get started!",
			wantLoads: 0,
		},
		{
			name:      "no file",
			today:     "2024-01-02",
			done:      []bool{true, false},
			wantKind:  ReportNoData,
			wantLine:  "No streak data found.",
			wantLoads: 1,
		},
		{
			name:       "active today",
			contents:   `{"last_date":"2024-01-02","streak":5}`,
			today:      "2024-01-02",
			done:       []bool{true},
			wantKind:   ReportActive,
			wantStreak: 5,
			wantLine:   "Current streak: 5",
			wantLoads:  1,
		},
		{
			name:       "due today",
			contents:   `{"last_date":"2024-01-01","streak":5}`,
			today:      "2024-01-02",
			done:       []bool{true},
			wantKind:   ReportDueToday,
			wantStreak: 5,
			wantLine:   "You're on a 5-day streak!",
			wantLoads:  1,
		},
		{
			name:       "lapsed",
			contents:   `{"last_date":"2024-01-01","streak":5}`,
			today:      "2024-01-10",
			done:       []bool{true},
			wantKind:   ReportLapsed,
			wantStreak: 5,
			wantLine:   "Your streak was 5 days. Time to start again!",
			wantLoads:  1,
		},
		{
			name:       "clock moved backwards",
			contents:   `{"last_date":"2024-01-05","streak":3}`,
			today:      "2024-01-01",
			done:       []bool{true},
			wantKind:   ReportLapsed,
			wantStreak: 3,
			wantLine:   "Your streak was 3 days.",
			wantLoads:  1,
		},
		{
			name:       "corrupt file uses a fresh record",
			contents:   `garbage`,
			today:      "2024-01-10",
			done:       []bool{true},
			wantKind:   ReportActive,
			wantStreak: 1,
			wantLine:   "Current streak: 1",
			wantLoads:  1,
		},
		{
			name:       "invalid stored date counts as today",
			contents:   `{"last_date":"2024-13-01","streak":4}`,
			today:      "2024-01-10",
			done:       []bool{true},
			wantKind:   ReportActive,
			wantStreak: 4,
			wantLine:   "Current streak: 4",
			wantLoads:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, tt.contents)
			var out bytes.Buffer

			report, err := f.tracker(tt.today).Display(context.Background(), exercises(tt.done...), &out)
			if err != nil {
				t.Fatalf("Display: %v", err)
			}
			if report.Kind != tt.wantKind {
				t.Errorf("Kind = %v, want %v", report.Kind, tt.wantKind)
			}
			if report.Streak != tt.wantStreak {
				t.Errorf("Streak = %d, want %d", report.Streak, tt.wantStreak)
			}
			if !strings.Contains(out.String(), tt.wantLine) {
				t.Errorf("output = %q, want it to contain %q", out.String(), tt.wantLine)
			}
			if n := strings.Count(out.String(), "\n"); n != 1 {
				t.Errorf("output has %d lines, want 1", n)
			}
			if f.repo.loads != tt.wantLoads {
				t.Errorf("loads = %d, want %d", f.repo.loads, tt.wantLoads)
			}
			if f.repo.saves != 0 {
				t.Errorf("saves = %d, want 0", f.repo.saves)
			}
		})
	}
}

func TestDisplay_NeverCreatesFile(t *testing.T) {
	for _, done := range [][]bool{{false}, {true}} {
		f := newFixture(t, "")
		var out bytes.Buffer
		if _, err := f.tracker("2024-01-02").Display(context.Background(), exercises(done...), &out); err != nil {
			t.Fatalf("Display: %v", err)
		}
		if _, err := os.Stat(f.file.Path()); !os.IsNotExist(err) {
			t.Errorf("done=%v: streak file exists after display (stat err %v)", done, err)
		}
	}
}

func TestDisplay_CorruptFileUntouched(t *testing.T) {
	f := newFixture(t, "garbage")
	var out bytes.Buffer
	if _, err := f.tracker("2024-01-02").Display(context.Background(), exercises(true), &out); err != nil {
		t.Fatalf("Display: %v", err)
	}
	if got := f.read(t); got != "garbage" {
		t.Errorf("file = %q, want it untouched", got)
	}
}

func TestDisplay_ReadError(t *testing.T) {
	loadErr := errors.New("permission denied")
	f := newFixture(t, "")
	f.repo.loadErr = loadErr
	var out bytes.Buffer

	_, err := f.tracker("2024-01-02").Display(context.Background(), exercises(true), &out)
	if !errors.Is(err, loadErr) {
		t.Errorf("Display error = %v, want %v", err, loadErr)
	}
	if out.Len() != 0 {
		t.Errorf("output = %q, want nothing on failure", out.String())
	}
}

func TestDisplayThenUpdate_Scenario(t *testing.T) {
	f := newFixture(t, `{"last_date":"2024-01-01","streak":5}`)
	tr := f.tracker("2024-01-02")
	var out bytes.Buffer

	report, err := tr.Display(context.Background(), exercises(true), &out)
	if err != nil {
		t.Fatalf("Display: %v", err)
	}
	if report.Kind != ReportDueToday {
		t.Fatalf("Kind = %v, want due_today", report.Kind)
	}
	if err := tr.Update(context.Background()); err != nil {
		t.Fatalf("Update: %v", err)
	}

	out.Reset()
	report, err = tr.Display(context.Background(), exercises(true), &out)
	if err != nil {
		t.Fatalf("Display: %v", err)
	}
	if report.Kind != ReportActive || report.Streak != 6 {
		t.Errorf("report = %+v, want active with streak 6", report)
	}
}
