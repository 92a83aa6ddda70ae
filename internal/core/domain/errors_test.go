package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestErrors_Existence tests that all error variables exist and are not nil
func TestErrors_Existence(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrNotFound", ErrNotFound},
		{"ErrInvalidInput", ErrInvalidInput},
		{"ErrNotInitialized", ErrNotInitialized},
		{"ErrMalformedSession", ErrMalformedSession},
		{"ErrAlreadyOpen", ErrAlreadyOpen},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

func TestErrMalformedSession_Wrapped(t *testing.T) {
	err := fmt.Errorf("%w: unexpected EOF", ErrMalformedSession)

	assert.True(t, errors.Is(err, ErrMalformedSession))
	assert.False(t, errors.Is(err, ErrInvalidInput))
}
