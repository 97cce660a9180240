package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineKmZeroDistance(t *testing.T) {
	assert.Zero(t, HaversineKm(40.7128, -74.0060, 40.7128, -74.0060))
}

func TestHaversineKmKnownDistances(t *testing.T) {
	cases := []struct {
		name                   string
		lat1, lon1, lat2, lon2 float64
		wantKm                 float64
		tolerance              float64
	}{
		{"new york to los angeles", 40.7128, -74.0060, 34.0522, -118.2437, 3936, 10},
		{"london to paris", 51.5074, -0.1278, 48.8566, 2.3522, 344, 5},
		{"one degree of latitude", 0, 0, 1, 0, 111.19, 0.5},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := HaversineKm(tc.lat1, tc.lon1, tc.lat2, tc.lon2)
			assert.InDelta(t, tc.wantKm, got, tc.tolerance)
		})
	}
}

func TestHaversineKmIsSymmetric(t *testing.T) {
	forward := HaversineKm(40.7128, -74.0060, 34.0522, -118.2437)
	back := HaversineKm(34.0522, -118.2437, 40.7128, -74.0060)
	assert.InDelta(t, forward, back, 1e-9)
}
