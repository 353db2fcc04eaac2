package accessibility

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestService(t *testing.T, elevatorCSV, escalatorCSV string) *Service {
	t.Helper()
	dir := t.TempDir()

	elevPath := filepath.Join(dir, "elevator.csv")
	escPath := filepath.Join(dir, "escalator.csv")
	require.NoError(t, os.WriteFile(elevPath, []byte(elevatorCSV), 0o644))
	require.NoError(t, os.WriteFile(escPath, []byte(escalatorCSV), 0o644))

	return New(elevPath, escPath, zap.NewNop())
}

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Gangnam Station", "gangnam"},
		{"Gangnam", "gangnam"},
		{"gangnam station", "gangnam"},
		{"City Hall Station Line 2", "cityhall"},
		{"Seolleung (upper)", "seolleung"},
		{"Seolleung (lower) Station", "seolleung"},
		{"", ""},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got := Normalize(tc.in)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, got, Normalize(got), "normalization must be idempotent")
		})
	}
}

func TestLookup(t *testing.T) {
	svc := newTestService(t,
		"line,station,exit\n2,Gangnam Station,3\n2,Gangnam Station,5\n",
		"line,station,exit\n2,Gangnam Station,1\n2,Seolleung Station,\n",
	)

	t.Run("known station with exits", func(t *testing.T) {
		got := svc.Lookup("Gangnam")
		assert.True(t, got.HasElevator)
		assert.True(t, got.HasEscalator)
		assert.Equal(t, "3,5", got.ElevatorExits)
		assert.Equal(t, "1", got.EscalatorExits)
		assert.Equal(t, "3 (elevator), 5 (elevator), 1 (escalator)", got.AccessibleExitInfo)
	})

	t.Run("escalator only", func(t *testing.T) {
		got := svc.Lookup("Seolleung Station")
		assert.False(t, got.HasElevator)
		assert.True(t, got.HasEscalator)
		assert.Empty(t, got.EscalatorExits)
	})

	t.Run("unknown station yields zero record", func(t *testing.T) {
		got := svc.Lookup("Nowhere Station")
		assert.Equal(t, "Nowhere Station", got.StationName)
		assert.False(t, got.HasElevator)
		assert.False(t, got.HasEscalator)
		assert.Empty(t, got.AccessibleExitInfo)
	})
}

func TestScoreRoute(t *testing.T) {
	svc := newTestService(t,
		"line,station,exit\n2,Gangnam Station,3\n2,Sadang Station,1\n",
		"line,station,exit\n2,Gangnam Station,1\n",
	)

	t.Run("empty station list scores walk only", func(t *testing.T) {
		got := svc.ScoreRoute(nil, 600)
		assert.Equal(t, 0, got.TotalStations)
		assert.InDelta(t, 20.0, got.TotalScore, 0.001) // 30 - 600/60
		assert.Equal(t, 10, got.WalkTimeMinutes)
		assert.InDelta(t, 0.0, got.AccessibilityRate, 0.001)
	})

	t.Run("partial coverage", func(t *testing.T) {
		stations := []string{"Gangnam Station", "Sadang Station", "Mullae Station"}
		got := svc.ScoreRoute(stations, 300)

		assert.Equal(t, 2, got.ElevatorCount)
		assert.Equal(t, 1, got.EscalatorCount)
		assert.Equal(t, 3, got.TotalStations)
		// 40*(2/3) + 30*(1/3) + (30 - 300/60)
		assert.InDelta(t, 26.666+10.0+25.0, got.TotalScore, 0.01)
		assert.InDelta(t, 66.666, got.AccessibilityRate, 0.01)
	})

	t.Run("very long walk never goes negative", func(t *testing.T) {
		got := svc.ScoreRoute(nil, 7200)
		assert.InDelta(t, 0.0, got.TotalScore, 0.001)
	})
}

func TestNewFallsBackToDefaults(t *testing.T) {
	svc := New("does/not/exist.csv", "also/missing.csv", zap.NewNop())

	assert.True(t, svc.HasElevator("Gangnam Station"))
	assert.True(t, svc.HasEscalator("Samseong Station"))
	assert.False(t, svc.HasElevator("Samseong Station"))
}
