// Package domain contains the core entities and streak policy.
//
// This package is the innermost layer. It has no dependencies on the file
// system, logging or the terminal and holds only date arithmetic and the
// rules that move a streak forward.
//
// # Entities
//
//   - [Date]: a calendar date with no time of day and no timezone
//   - [Record]: the persisted streak state (last date, consecutive days)
//   - [Snapshot]: a loaded record together with how it was obtained
//
// # Policy
//
//   - [Advance]: the update transition applied on a qualifying run
//   - [Assess]: the read-only classification used for status output
package domain
