package service

import (
	"context"
	"fmt"

	"football-data-backend/internal/logger"
)

// StorePolicy decides what a read does when the store fails.
// With FailOpen the failure is logged and the caller serves an empty result.
type StorePolicy struct {
	FailOpen bool
}

// absorb returns nil when the failure should be masked, otherwise the wrapped error
func (p StorePolicy) absorb(ctx context.Context, op string, err error) error {
	if !p.FailOpen {
		return fmt.Errorf("failed to %s: %w", op, err)
	}
	logger.WithContext(ctx).
		WithError(err).
		WithField("operation", op).
		Warn("store read failed, serving empty result")
	return nil
}
