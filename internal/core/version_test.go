package core

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVersionLess(t *testing.T) {
	tests := []struct {
		name string
		a, b Version
		want bool
	}{
		{"equal", Version{7, 4}, Version{7, 4}, false},
		{"lesser major", Version{6, 9}, Version{7, 0}, true},
		{"greater major", Version{7, 0}, Version{6, 9}, false},
		{"lesser minor, same major", Version{7, 3}, Version{7, 4}, true},
		{"greater minor, same major", Version{7, 5}, Version{7, 4}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.a.Less(tt.b))
		})
	}
}

func TestVersionIsNewFormat(t *testing.T) {
	tests := []struct {
		name string
		v    Version
		want bool
	}{
		{"just below boundary", Version{7, 4}, false},
		{"exactly at boundary", Version{7, 5}, true},
		{"above boundary", Version{7, 7}, true},
		{"well below boundary", Version{6, 0}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.v.IsNewFormat())
		})
	}
}

func TestVersionPackedRoundTrip(t *testing.T) {
	tests := []Version{
		{7, 4},
		{7, 5},
		{7, 7},
		{6, 0},
		{0, 0},
	}

	for _, v := range tests {
		got := versionFromPacked(v.Packed())
		require.Equal(t, v, got)
	}
}

func TestVersionPackedValues(t *testing.T) {
	require.Equal(t, uint32(7400), Version{7, 4}.Packed())
	require.Equal(t, uint32(7500), Version{7, 5}.Packed())
	require.Equal(t, uint32(7700), Version{7, 7}.Packed())
}
