package core

import (
	"context"
	"time"
)

// TimeProvider abstracts the clock operations the domain performs: stamping
// ledger rows and bounding calls to external services.
type TimeProvider interface {
	Now() time.Time
	WithTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc)
}
