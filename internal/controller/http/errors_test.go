package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"geodrop/internal/entity"

	"github.com/stretchr/testify/assert"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{entity.ErrNotFound, http.StatusNotFound},
		{entity.ErrUnauthorized, http.StatusUnauthorized},
		{entity.ErrForbidden, http.StatusForbidden},
		{entity.ErrConflict, http.StatusConflict},
		{entity.ErrInvalidInput, http.StatusBadRequest},
		{errors.New("something broke"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.status, statusFromError(tt.err))
	}
}

func TestStatusFromError_Wrapped(t *testing.T) {
	err := fmt.Errorf("location %s: %w", "loc-1", entity.ErrNotFound)
	assert.Equal(t, http.StatusNotFound, statusFromError(err))

	err = fmt.Errorf("vote already recorded: %w", entity.ErrConflict)
	assert.Equal(t, http.StatusConflict, statusFromError(err))
}
