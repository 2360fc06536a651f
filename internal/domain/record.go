package domain

// Record is the persisted streak state.
// Streak is at least 1 whenever a record exists.
type Record struct {
	// LastDate is the most recent day the streak was started or extended
	LastDate Date

	// Streak is the number of consecutive qualifying days ending at LastDate
	Streak uint32
}

// NewRecord starts a fresh one-day streak on today.
func NewRecord(today Date) Record {
	return Record{LastDate: today, Streak: 1}
}

// LoadStatus describes how a Snapshot was obtained from storage.
type LoadStatus int

const (
	// StatusMissing means no record has been stored yet.
	StatusMissing LoadStatus = iota

	// StatusFound means a valid record was read.
	StatusFound

	// StatusCorrupt means stored data could not be decoded. The snapshot
	// carries a fresh record seeded with today.
	StatusCorrupt

	// StatusBadDate means the record decoded but its date did not parse.
	// The snapshot keeps the stored streak with today as the last date.
	StatusBadDate
)

func (s LoadStatus) String() string {
	switch s {
	case StatusMissing:
		return "missing"
	case StatusFound:
		return "found"
	case StatusCorrupt:
		return "corrupt"
	case StatusBadDate:
		return "bad_date"
	default:
		return "unknown"
	}
}

// Snapshot is the result of loading a record.
type Snapshot struct {
	Status LoadStatus

	// Record is meaningful for every status except StatusMissing.
	Record Record
}

// Exists reports whether the snapshot carries a usable record.
func (s Snapshot) Exists() bool {
	return s.Status != StatusMissing
}
