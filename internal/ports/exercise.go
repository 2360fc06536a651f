package ports

// Exercise is an opaque exercise handle. How "done" is determined is up to
// the implementation.
type Exercise interface {
	// Name identifies the exercise in logs.
	Name() string

	// LooksDone reports whether the exercise appears to be solved.
	LooksDone() bool
}
