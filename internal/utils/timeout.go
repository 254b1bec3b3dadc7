package utils

import (
	"context"
	"time"
)

const dbTimeout = 3 * time.Second

func WithDBTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, dbTimeout)
}
