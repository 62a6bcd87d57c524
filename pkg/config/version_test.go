package config_test

import (
	"testing"

	"github.com/Masterminds/semver/v3"
	"github.com/pkgsmith/pkgsmith/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionFloor(t *testing.T) {
	tests := []struct {
		version string
		want    string
	}{
		{"1.0.0", "1.0"},
		{"1.2.3", "1.2"},
		{"0.7.0", "0.7"},
		{"2.0.0-rc1", "2.0-"},
		{"1.0.0-dev", "1.0-"},
	}
	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			v, err := semver.NewVersion(tt.version)
			require.NoError(t, err)
			assert.Equal(t, tt.want, config.VersionFloor(v))
		})
	}
}

func TestVersionFloorIdempotentOnOutput(t *testing.T) {
	// Parsing a floor string back and flooring again yields the same string.
	for _, input := range []string{"1.0.0", "0.7.2", "3.1.4"} {
		v, err := semver.NewVersion(input)
		require.NoError(t, err)
		floor := config.VersionFloor(v)

		reparsed, err := semver.NewVersion(floor)
		require.NoError(t, err)
		assert.Equal(t, floor, config.VersionFloor(reparsed))
	}
}
