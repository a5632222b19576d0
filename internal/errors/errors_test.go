package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "team"}
		assert.Equal(t, "team not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "team"}
		err2 := &NotFoundError{Entity: "team"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		assert.False(t, errors.Is(ErrTeamNotFound, NewNotFoundError("player")))
	})

	t.Run("wrapped error", func(t *testing.T) {
		wrapped := fmt.Errorf("lookup: %w", ErrTeamNotFound)
		assert.True(t, errors.Is(wrapped, ErrTeamNotFound))
		assert.True(t, IsNotFound(wrapped))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrTeamNotFound))
		assert.False(t, IsNotFound(ErrStoreUnavailable))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		assert.Equal(t, "validation error: amount - must be a positive number", ErrInvalidAmount.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "bad body"}
		assert.Equal(t, "validation error: bad body", err.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		assert.True(t, IsValidation(fmt.Errorf("create order: %w", ErrInvalidAmount)))
		assert.True(t, errors.Is(NewValidationError("amount", "must be a positive number"), ErrInvalidAmount))
		assert.False(t, IsValidation(ErrTeamNotFound))
	})
}

func TestConfigurationError(t *testing.T) {
	err := NewConfigurationError("missing PayPal credentials")
	assert.Equal(t, "missing PayPal credentials", err.Error())
	assert.True(t, IsConfiguration(fmt.Errorf("config validation failed: %w", err)))
	assert.False(t, IsConfiguration(ErrInvalidAmount))
}

func TestGatewayError(t *testing.T) {
	cause := errors.New("INVALID_RESOURCE_ID")

	t.Run("message includes cause", func(t *testing.T) {
		err := NewGatewayError("execute payment", cause)
		assert.Equal(t, "payment gateway: execute payment failed: INVALID_RESOURCE_ID", err.Error())
	})

	t.Run("message without cause", func(t *testing.T) {
		err := &GatewayError{Op: "create payment"}
		assert.Equal(t, "payment gateway: create payment failed", err.Error())
	})

	t.Run("unwraps to cause", func(t *testing.T) {
		err := NewGatewayError("execute payment", cause)
		assert.True(t, errors.Is(err, cause))
		assert.True(t, IsGateway(err))
		assert.False(t, IsGateway(cause))
	})
}
