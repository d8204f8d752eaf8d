package ports

import "context"

// LoginLimiter throttles repeated failed logins per email.
type LoginLimiter interface {
	TooMany(ctx context.Context, email string) (bool, error)
	RecordFailure(ctx context.Context, email string) error
	Reset(ctx context.Context, email string) error
}
