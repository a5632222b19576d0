package database

import (
	"context"
	"errors"
	"testing"

	apperrors "football-data-backend/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestNilHandle(t *testing.T) {
	assert.True(t, errors.Is(Bootstrap(nil), apperrors.ErrStoreUnavailable))
	assert.True(t, errors.Is(Ping(context.Background(), nil), apperrors.ErrStoreUnavailable))
	assert.NoError(t, Close(nil))
}
