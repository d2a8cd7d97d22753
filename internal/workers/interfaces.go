// Package workers runs the application's background jobs.
// It defines the Worker interface and a Workers aggregate that starts
// every configured worker in a unified way.
package workers

import "context"

// Worker is the interface implemented by every background worker.
//
// Run must not block: long-running work is started in its own goroutine
// and stops when ctx is done.
type Worker interface {
	Run(ctx context.Context)
}
