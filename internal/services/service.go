package services

import (
	"context"
)

// Entity names used in logs and metrics
const (
	entityUser = "user"
	entityPost = "post"
)

// Recorder receives operation counters.
type Recorder interface {
	RecordMutation(entity, operation string)
	RecordTransition(action, outcome string)
}

// CommitHook defers fn until the request transaction bound to ctx commits.
// Without a transaction fn runs immediately.
type CommitHook func(ctx context.Context, fn func())

func runNow(_ context.Context, fn func()) { fn() }

func hookOrNow(h CommitHook) CommitHook {
	if h == nil {
		return runNow
	}
	return h
}

// detach keeps the values of ctx but drops its cancellation, for work that
// runs after the request has been answered.
func detach(ctx context.Context) context.Context {
	return context.WithoutCancel(ctx)
}
