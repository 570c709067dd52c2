package repo

import (
	"errors"
	"fmt"
	"testing"

	"pet-care-service/internal/platform/apperr"

	"github.com/stretchr/testify/assert"
)

func TestAsAppErr(t *testing.T) {
	assert.NoError(t, AsAppErr("pet", nil))

	err := AsAppErr("pet", fmt.Errorf("scan: %w", ErrNotFound))
	assert.True(t, errors.Is(err, apperr.ErrNotFound))
	assert.Equal(t, "pet not found", err.Error())

	forbidden := apperr.Forbidden()
	assert.Same(t, forbidden, AsAppErr("pet", forbidden))

	assert.Equal(t, apperr.KindInternal, apperr.KindOf(AsAppErr("pet", errors.New("conn reset"))))
}
