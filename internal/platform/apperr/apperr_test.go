package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIs_MatchesByKind(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", Field("email", "already registered"))

	assert.True(t, errors.Is(err, ErrValidation))
	assert.False(t, errors.Is(err, ErrNotFound))
	assert.Equal(t, KindValidation, KindOf(err))
}

func TestKindOf_PlainErrorIsInternal(t *testing.T) {
	assert.Equal(t, KindInternal, KindOf(errors.New("boom")))
}

func TestIsAuth(t *testing.T) {
	assert.True(t, IsAuth(Unauthorized()))
	assert.True(t, IsAuth(Forbidden()))
	assert.False(t, IsAuth(NotFound("pet")))
}

func TestFields_Err(t *testing.T) {
	f := Fields{}
	require.NoError(t, f.Err())

	f.Add("pet_name", "required")
	f.Add("pet_name", "too long")
	err := f.Err()
	require.Error(t, err)

	var ae *Error
	require.True(t, errors.As(err, &ae))
	assert.Equal(t, "required", ae.Fields["pet_name"])
	assert.Contains(t, err.Error(), "pet_name: required")
}

func TestStorage_UnwrapsCause(t *testing.T) {
	cause := errors.New("s3 down")
	err := Storage(cause)

	assert.True(t, errors.Is(err, cause))
	assert.True(t, errors.Is(err, ErrStorage))
}
