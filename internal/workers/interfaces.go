// Package workers runs the server's background jobs.
//
// A Worker blocks in Run until its context is cancelled. Workers starts
// every registered worker in its own goroutine and stops them together on
// shutdown.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Run blocks until ctx is cancelled and returns nothing: a worker logs its
// own failures and keeps going.
type Worker interface {
	Run(ctx context.Context)
}
