// Package workers runs the client's background loops.
//
// A [Worker] blocks in Run until its context is cancelled. [Workers] starts
// a group of them, each on its own goroutine, and stops them together.
package workers

import "context"

// Worker is a background loop.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run(ctx context.Context) {
//	    <-ctx.Done()
//	}
type Worker interface {
	Run(ctx context.Context)
}
