// File: services/route/selector.go
package route

import (
	"sort"
)

// Normalization ceilings. Metrics are mapped onto 0..1 against a fixed
// ceiling so the user weights stay comparable across criteria.
const (
	maxWalkTimeSec  = 1800.0
	maxTransfers    = 5.0
	maxTotalTimeSec = 7200.0
)

// selectBest ranks candidates with the user's feedback weights and returns
// the winner. Lower score wins; ties keep the provider's original order.
func selectBest(candidates []candidate, weights map[string]int) (candidate, bool) {
	if len(candidates) == 0 {
		return candidate{}, false
	}

	scored := make([]struct {
		cand  candidate
		score float64
	}, len(candidates))
	for i, c := range candidates {
		scored[i].cand = c
		scored[i].score = computeScore(c, weights)
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].score != scored[j].score {
			return scored[i].score < scored[j].score
		}
		return scored[i].cand.Index < scored[j].cand.Index
	})

	return scored[0].cand, true
}

// computeScore is the weighted penalty of one candidate. Walk time, transfer
// count and total time add penalty proportional to their normalized value;
// elevator and escalator coverage subtract penalty, so accessible routes win
// when the user has voted those criteria up.
func computeScore(c candidate, weights map[string]int) float64 {
	it := c.Itinerary

	normWalk := clamp01(float64(it.TotalWalkTime) / maxWalkTimeSec)
	normTransfer := clamp01(float64(it.TransferCount) / maxTransfers)
	normTime := clamp01(float64(it.TotalTime) / maxTotalTimeSec)

	var elevatorRatio, escalatorRatio float64
	if c.Score.TotalStations > 0 {
		elevatorRatio = float64(c.Score.ElevatorCount) / float64(c.Score.TotalStations)
		escalatorRatio = float64(c.Score.EscalatorCount) / float64(c.Score.TotalStations)
	}

	score := float64(weights["walk"]) * normWalk
	score += float64(weights["transfer"]) * normTransfer
	score += float64(weights["totalTime"]) * normTime
	score -= float64(weights["elevator"]) * elevatorRatio
	score -= float64(weights["escalator"]) * escalatorRatio
	return score
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
