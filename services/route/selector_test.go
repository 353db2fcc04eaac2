package route

import (
	"testing"

	"roadmate/models"
	"roadmate/services/accessibility"
	"roadmate/services/feedback"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectBestEmpty(t *testing.T) {
	_, ok := selectBest(nil, feedback.DefaultWeights())
	assert.False(t, ok)
}

func TestSelectBestPrefersLowerPenalty(t *testing.T) {
	fast := candidate{Index: 0, Itinerary: models.TmapItinerary{
		TotalTime: 1800, TotalWalkTime: 300, TransferCount: 1,
	}}
	slow := candidate{Index: 1, Itinerary: models.TmapItinerary{
		TotalTime: 5400, TotalWalkTime: 1500, TransferCount: 3,
	}}

	winner, ok := selectBest([]candidate{slow, fast}, feedback.DefaultWeights())
	require.True(t, ok)
	assert.Equal(t, 0, winner.Index)
}

func TestSelectBestTieKeepsProviderOrder(t *testing.T) {
	a := candidate{Index: 0, Itinerary: models.TmapItinerary{TotalTime: 3600}}
	b := candidate{Index: 1, Itinerary: models.TmapItinerary{TotalTime: 3600}}

	winner, ok := selectBest([]candidate{b, a}, feedback.DefaultWeights())
	require.True(t, ok)
	assert.Equal(t, 0, winner.Index)
}

func TestSelectBestAccessibilityWeightFlipsRanking(t *testing.T) {
	// Identical timing, but only one route passes elevator stations.
	accessible := candidate{
		Index:     0,
		Itinerary: models.TmapItinerary{TotalTime: 3600, TotalWalkTime: 600, TransferCount: 1},
		Score:     accessibility.RouteScore{ElevatorCount: 2, EscalatorCount: 2, TotalStations: 2},
	}
	bare := candidate{
		Index:     1,
		Itinerary: models.TmapItinerary{TotalTime: 3300, TotalWalkTime: 600, TransferCount: 1},
		Score:     accessibility.RouteScore{TotalStations: 2},
	}

	noAccessWeights := map[string]int{"walk": 2, "transfer": 0, "totalTime": 3, "elevator": 0, "escalator": 0}
	winner, ok := selectBest([]candidate{accessible, bare}, noAccessWeights)
	require.True(t, ok)
	assert.Equal(t, 1, winner.Index, "without accessibility weights the faster route wins")

	heavyAccessWeights := map[string]int{"walk": 2, "transfer": 0, "totalTime": 3, "elevator": 5, "escalator": 5}
	winner, ok = selectBest([]candidate{accessible, bare}, heavyAccessWeights)
	require.True(t, ok)
	assert.Equal(t, 0, winner.Index, "accessibility votes should flip the ranking")
}

func TestComputeScoreClampsAtCeilings(t *testing.T) {
	extreme := candidate{Itinerary: models.TmapItinerary{
		TotalTime: 100000, TotalWalkTime: 50000, TransferCount: 20,
	}}
	atCeiling := candidate{Itinerary: models.TmapItinerary{
		TotalTime: 7200, TotalWalkTime: 1800, TransferCount: 5,
	}}

	weights := feedback.DefaultWeights()
	assert.InDelta(t, computeScore(atCeiling, weights), computeScore(extreme, weights), 0.0001)
}
