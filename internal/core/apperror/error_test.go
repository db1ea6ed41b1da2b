package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", NewValidation("bad"), http.StatusBadRequest},
		{"not found", NewNotFound("region", 1), http.StatusNotFound},
		{"permission denied", NewPermissionDenied("CAN_MODIFY_TEAM"), http.StatusForbidden},
		{"integrity", NewIntegrity("region", "two rows"), http.StatusInternalServerError},
		{"conversion", NewConversion("deadline", "x", nil), http.StatusInternalServerError},
		{"duplicate", NewDuplicate("event", "season", "2024"), http.StatusConflict},
		{"wrapped", fmt.Errorf("load: %w", NewNotFound("team", 7)), http.StatusNotFound},
		{"plain", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetHTTPStatus(tt.err))
		})
	}
}

func TestPredicates(t *testing.T) {
	wrapped := fmt.Errorf("update: %w", NewConcurrentModification("team", 3))

	assert.True(t, IsConcurrentModification(wrapped))
	assert.False(t, IsNotFound(wrapped))
	assert.True(t, IsForbidden(NewPermissionDenied()))
	assert.True(t, IsValidation(NewValidation("x")))
	assert.False(t, IsValidation(errors.New("x")))
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("driver failure")
	err := NewInternal(cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "driver failure")
}
