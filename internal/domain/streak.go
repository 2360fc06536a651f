package domain

import "math"

// Advance applies the update transition for a qualifying run on today.
//
// One day after LastDate extends the streak, more than one day resets it to 1,
// and the same day or a date in the past leaves the record untouched. The
// returned bool reports whether the record changed and must be written.
func Advance(rec Record, today Date) (Record, bool) {
	days := today.Sub(rec.LastDate)
	switch {
	case days == 1:
		if rec.Streak < math.MaxUint32 {
			rec.Streak++
		}
		rec.LastDate = today
		return rec, true
	case days > 1:
		return NewRecord(today), true
	default:
		return rec, false
	}
}

// Standing classifies a record relative to today for status output.
type Standing int

const (
	// Active means progress was already recorded today.
	Active Standing = iota

	// DueToday means the streak is alive but needs progress today.
	DueToday

	// Lapsed means at least one day was skipped, or the clock moved backwards.
	Lapsed
)

func (s Standing) String() string {
	switch s {
	case Active:
		return "active"
	case DueToday:
		return "due_today"
	case Lapsed:
		return "lapsed"
	default:
		return "unknown"
	}
}

// Assess reports where rec stands on today without modifying it.
func Assess(rec Record, today Date) Standing {
	switch today.Sub(rec.LastDate) {
	case 0:
		return Active
	case 1:
		return DueToday
	default:
		return Lapsed
	}
}
