package app_error

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, StatusFor(ErrTechniqueNotFound))
	assert.Equal(t, http.StatusNotFound, StatusFor(fmt.Errorf("lookup %q: %w", "x", ErrTechniqueNotFound)))
	assert.Equal(t, http.StatusBadRequest, StatusFor(fmt.Errorf("%w: category", ErrInvalidFilter)))
	assert.Equal(t, http.StatusUnprocessableEntity, StatusFor(ErrReloadRejected))
	assert.Equal(t, http.StatusInternalServerError, StatusFor(errors.New("boom")))
}

func TestNewOverridesStatus(t *testing.T) {
	err := New(ErrTechniqueNotFound, http.StatusGone)
	assert.Equal(t, http.StatusGone, StatusFor(err))
	assert.ErrorIs(t, err, ErrTechniqueNotFound)
}
