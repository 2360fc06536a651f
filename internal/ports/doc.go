// Package ports defines the interfaces that connect the application layer
// to infrastructure adapters.
//
// # Port Interfaces
//
//   - [RecordRepository]: Loads and saves the streak record
//   - [Exercise]: An exercise handle with a "looks done" predicate
//   - [Logger]: Structured logging abstraction
//
// # Usage
//
// The application layer (internal/app) depends only on these interfaces.
// Infrastructure adapters (internal/adapters) implement them with a JSON
// file and zerolog; internal/exercise provides directory-backed exercises.
package ports
