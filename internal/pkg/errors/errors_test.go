package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_WithDetailsDoesNotMutateSentinel(t *testing.T) {
	detailed := ErrValidationFailed.WithDetails(map[string]interface{}{"field": "types"})

	assert.Equal(t, "types", detailed.Details["field"])
	assert.Nil(t, ErrValidationFailed.Details)
	assert.True(t, errors.Is(detailed, ErrValidationFailed))
}

func TestAs(t *testing.T) {
	wrapped := fmt.Errorf("load session: %w", ErrSessionNotFound)

	appErr, ok := As(wrapped)
	assert.True(t, ok)
	assert.Equal(t, http.StatusNotFound, appErr.StatusCode)

	_, ok = As(errors.New("plain"))
	assert.False(t, ok)
}

func TestAppError_Error(t *testing.T) {
	assert.Equal(t, "LOCATION_NOT_FOUND: Location not found", ErrLocationNotFound.Error())
}
