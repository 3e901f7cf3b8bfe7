package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIs_MatchesByKind(t *testing.T) {
	err := NotFound("course %s not found", "abc")

	assert.True(t, errors.Is(err, ErrNotFound))
	assert.False(t, errors.Is(err, ErrValidation))
	assert.Equal(t, "course abc not found", err.Error())
}

func TestIs_ThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("update failed: %w", Validation("price must not be negative"))

	assert.True(t, errors.Is(wrapped, ErrValidation))
	assert.Equal(t, KindValidation, KindOf(wrapped))
}

func TestStorage_WrapsCause(t *testing.T) {
	cause := errors.New("disk full")
	err := Storage(cause, "write %q", "courses")

	assert.True(t, errors.Is(err, ErrStorage))
	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, `write "courses": disk full`, err.Error())
	assert.Nil(t, Storage(nil, "noop"))
}

func TestKindOf_PlainError(t *testing.T) {
	assert.Equal(t, Kind(""), KindOf(errors.New("boom")))
}
