package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeRuntimeVersion(t *testing.T) {
	// The runtime encodes 1000*major + 10*minor.
	tests := []struct {
		raw  int
		want Version
	}{
		{raw: 10020, want: Version{Major: 10, Minor: 2}},
		{raw: 11000, want: Version{Major: 11, Minor: 0}},
		{raw: 11080, want: Version{Major: 11, Minor: 8}},
		{raw: 12000, want: Version{Major: 12, Minor: 0}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, DecodeRuntimeVersion(tt.raw))
	}
}

func TestParseVersion(t *testing.T) {
	v, err := ParseVersion("11.8")
	require.NoError(t, err)
	assert.Equal(t, Version{Major: 11, Minor: 8}, v)
	assert.Equal(t, "11.8", v.String())

	_, err = ParseVersion("not-a-version")
	assert.Error(t, err)
}
