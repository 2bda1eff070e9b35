package gitstatus

import (
	"testing"

	fsb "github.com/input-output-hk/catalyst-forge-libs/fs/billy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptions_Validate(t *testing.T) {
	tests := []struct {
		name     string
		options  Options
		expected error
	}{
		{
			name:     "valid options",
			options:  Options{FS: fsb.NewInMemoryFS()},
			expected: nil,
		},
		{
			name:     "nil filesystem",
			options:  Options{},
			expected: ErrInvalidPath,
		},
		{
			name: "negative cache size",
			options: Options{
				FS:              fsb.NewInMemoryFS(),
				StorerCacheSize: -1,
			},
			expected: ErrInvalidPath,
		},
		{
			name: "zero values are valid",
			options: Options{
				FS:              fsb.NewInMemoryFS(),
				StorerCacheSize: 0,
			},
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.options.Validate()
			if tt.expected == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestOptions_ApplyDefaults(t *testing.T) {
	opts := Options{FS: fsb.NewInMemoryFS()}
	require.NoError(t, opts.Validate())
	opts.applyDefaults()

	assert.Equal(t, DefaultStorerCacheSize, opts.StorerCacheSize)
	assert.NotNil(t, opts.Logger)
}

func TestOptions_ApplyDefaultsKeepsExplicitValues(t *testing.T) {
	opts := Options{FS: fsb.NewInMemoryFS(), StorerCacheSize: 42}
	opts.applyDefaults()

	assert.Equal(t, 42, opts.StorerCacheSize)
}
