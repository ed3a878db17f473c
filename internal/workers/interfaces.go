// Package workers runs batches of independent jobs with bounded
// concurrency. The gateway client uses it to execute several pipeline
// events at once.
package workers

import "context"

// Worker is one unit of work run by [Workers].
//
// Run should return promptly once ctx is cancelled.
//
// Example implementation:
//
//	type executeFile struct{ path string }
//
//	func (w *executeFile) Run(ctx context.Context) error {
//	    // read the event and submit it
//	}
type Worker interface {
	Run(ctx context.Context) error
}

// WorkerFunc adapts a plain function to [Worker].
type WorkerFunc func(ctx context.Context) error

// Run calls f(ctx).
func (f WorkerFunc) Run(ctx context.Context) error {
	return f(ctx)
}
