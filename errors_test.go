package gitstatus

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSentinelErrors_Is(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		target   error
		expected bool
	}{
		// Direct sentinel errors
		{"ErrNoRepository direct", ErrNoRepository, ErrNoRepository, true},
		{"ErrBareRepository direct", ErrBareRepository, ErrBareRepository, true},
		{"ErrDetachedHead direct", ErrDetachedHead, ErrDetachedHead, true},
		{"ErrInvalidPath direct", ErrInvalidPath, ErrInvalidPath, true},

		// Wrapped errors
		{"ErrNoRepository wrapped", WrapError(ErrNoRepository, "context"), ErrNoRepository, true},
		{"ErrDetachedHead wrapped", WrapErrorf(ErrDetachedHead, "context %s", "arg"), ErrDetachedHead, true},

		// Non-matching errors
		{"ErrNoRepository vs ErrInvalidPath", ErrNoRepository, ErrInvalidPath, false},
		{"ErrBareRepository vs ErrDetachedHead", ErrBareRepository, ErrDetachedHead, false},

		// Nil handling
		{"WrapError with nil", WrapError(nil, "context"), ErrNoRepository, false},
		{"WrapErrorf with nil", WrapErrorf(nil, "context"), ErrNoRepository, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := errors.Is(tt.err, tt.target)
			assert.Equal(t, tt.expected, result,
				"errors.Is(%v, %v) should be %v", tt.err, tt.target, tt.expected)
		})
	}
}

func TestWrapError(t *testing.T) {
	assert.Equal(t, "discovery failed: no git repository",
		WrapError(ErrNoRepository, "discovery failed").Error())
	assert.NoError(t, WrapError(nil, "context"))
}

func TestWrapErrorf(t *testing.T) {
	assert.Equal(t, `no repository at "src": no git repository`,
		WrapErrorf(ErrNoRepository, "no repository at %q", "src").Error())
	assert.NoError(t, WrapErrorf(nil, "context %d", 1))
}
