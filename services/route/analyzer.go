// File: services/route/analyzer.go
package route

import (
	"roadmate/models"

	"roadmate/services/accessibility"
)

// candidate is one provider itinerary annotated with the metrics the
// selector ranks on. Index preserves the provider's original ordering for
// deterministic tie-breaking.
type candidate struct {
	Index     int
	Itinerary models.TmapItinerary
	Score     accessibility.RouteScore
}

// analyzeCandidates turns raw itineraries into scored candidates. Malformed
// itineraries still produce a candidate with zero accessibility metrics so
// the provider's ordering survives.
func analyzeCandidates(itineraries []models.TmapItinerary, access *accessibility.Service) []candidate {
	candidates := make([]candidate, 0, len(itineraries))
	for i, itinerary := range itineraries {
		candidates = append(candidates, candidate{
			Index:     i,
			Itinerary: itinerary,
			Score:     access.ScoreRoute(extractStationNames(itinerary), itinerary.TotalWalkTime),
		})
	}
	return candidates
}

// extractStationNames collects the boarding and alighting station names of
// every transit leg, deduplicated in first-appearance order.
func extractStationNames(itinerary models.TmapItinerary) []string {
	seen := make(map[string]bool)
	var names []string

	add := func(p *models.TmapPoint) {
		if p == nil || p.Name == "" {
			return
		}
		if !seen[p.Name] {
			seen[p.Name] = true
			names = append(names, p.Name)
		}
	}

	for _, leg := range itinerary.Legs {
		if leg.Mode == "WALK" {
			continue
		}
		add(leg.Start)
		add(leg.End)
	}
	return names
}
