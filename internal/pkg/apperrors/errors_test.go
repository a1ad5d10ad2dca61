package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCustomErrorUnwrapsToSentinel(t *testing.T) {
	err := fmt.Errorf("update job: %w", NewForbiddenError("Not authorized to update this job"))

	assert.True(t, errors.Is(err, ErrPermissionDenied))
	assert.False(t, errors.Is(err, ErrResourceNotFound))
	assert.Equal(t, "update job: Not authorized to update this job", err.Error())

	msg, ok := MessageOf(err)
	assert.True(t, ok)
	assert.Equal(t, "Not authorized to update this job", msg)
}

func TestMessageOfPlainError(t *testing.T) {
	_, ok := MessageOf(ErrResourceNotFound)
	assert.False(t, ok)
}

func TestIsMatchesAnyInList(t *testing.T) {
	err := fmt.Errorf("login: %w", ErrTokenExpired)

	assert.True(t, Is(err, ErrTokenInvalid, ErrTokenExpired))
	assert.False(t, Is(err, ErrTokenInvalid, ErrUnauthorized))
}
