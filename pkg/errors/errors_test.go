package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		want int
	}{
		{"validation", NewValidation("bad"), http.StatusBadRequest},
		{"not found", NotFoundf("Client with ID %d not found", 1), http.StatusNotFound},
		{"conflict", NewConflict("dup", nil), http.StatusBadRequest},
		{"capacity", NewCapacityExceeded("full"), http.StatusBadRequest},
		{"internal", NewInternal(stderrors.New("boom")), http.StatusInternalServerError},
		{"payload too large", NewPayloadTooLarge(1024, nil), http.StatusRequestEntityTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.StatusCode())
		})
	}
}

func TestWrap(t *testing.T) {
	validation := NewValidation("Due date cannot be earlier than prescription date")
	wrapped := fmt.Errorf("create prescription: %w", validation)

	assert.Same(t, validation, Wrap(wrapped))
	assert.True(t, Is(wrapped, ErrValidation))

	internal := Wrap(stderrors.New("connection refused"))
	assert.Equal(t, ErrInternal, internal.Code)
	assert.Equal(t, "Internal server error: connection refused", internal.Message)

	assert.Nil(t, Wrap(nil))
}
