// File: services/dialogue/guidance.go
package dialogue

import (
	"context"
	"fmt"
	"strings"

	"roadmate/models"
)

// handleGuidanceQuery answers step-level questions about the remembered
// route: which bus, which line, where to board and what accessibility to
// expect at the stations along the way.
func (s *DefaultService) handleGuidanceQuery(ctx context.Context, chatCtx *models.ChatContext, analysis models.NlpAnalysis) models.DialogueReply {
	route := chatCtx.RouteResponse
	if route == nil {
		return models.DialogueReply{
			ResponseMessage: noRouteMessage,
			Status:          models.StatusIncomplete,
		}
	}

	switch analysis.Intent {
	case "bus_number_info":
		return busNumberInfo(route)
	case "subway_line_info":
		return subwayLineInfo(route)
	case "bus_station_info":
		return stationInfo(route, "BUS", analysis.Entity("position"))
	case "subway_station_info":
		return stationInfo(route, "SUBWAY", analysis.Entity("position"))
	case "accessibility_info":
		return accessibilityInfo(route)
	default:
		return completeReply(analysis.ResponseText)
	}
}

func busNumberInfo(route *models.RouteResponse) models.DialogueReply {
	numbers := dedup(route.Guides, func(g models.GuideInfo) string {
		if g.TransportType == "BUS" {
			return g.BusNumber
		}
		return ""
	})
	if len(numbers) == 0 {
		return completeReply("This route doesn't use any buses.")
	}
	return completeReply(fmt.Sprintf("Take bus %s.", strings.Join(numbers, ", then bus ")))
}

func subwayLineInfo(route *models.RouteResponse) models.DialogueReply {
	lines := dedup(route.Guides, func(g models.GuideInfo) string {
		if g.TransportType == "SUBWAY" {
			return g.RouteName
		}
		return ""
	})
	if len(lines) == 0 {
		return completeReply("This route doesn't use the subway.")
	}
	return completeReply(fmt.Sprintf("Take %s.", strings.Join(lines, ", then ")))
}

// stationInfo names every distinct boarding or alighting station for the
// given transport type, in travel order. Without a usable position entity
// there is nothing to answer yet, so ask which end the user means.
func stationInfo(route *models.RouteResponse, mode, position string) models.DialogueReply {
	pickName := func(g models.GuideInfo) models.Location {
		if position == "end" {
			return g.EndLocation
		}
		return g.StartLocation
	}

	switch position {
	case "start", "end":
	default:
		return models.DialogueReply{
			ResponseMessage: "Do you want the boarding stop or the alighting stop?",
			Status:          models.StatusIncomplete,
		}
	}

	stations := dedup(route.Guides, func(g models.GuideInfo) string {
		if g.TransportType == mode {
			return pickName(g).Name
		}
		return ""
	})
	if len(stations) == 0 {
		return completeReply(fmt.Sprintf("This route has no %s segment.", modeLabel(mode)))
	}

	if position == "end" {
		return completeReply(fmt.Sprintf("Get off at %s.", strings.Join(stations, ", then at ")))
	}
	return completeReply(fmt.Sprintf("Board at %s.", strings.Join(stations, ", then at ")))
}

// accessibilityInfo summarizes elevator and escalator availability at the
// stations on the route, each station reported once in travel order.
func accessibilityInfo(route *models.RouteResponse) models.DialogueReply {
	seen := make(map[string]bool)
	var lines []string

	for _, guide := range route.Guides {
		sa := guide.StationAccessibility
		if sa == nil || sa.StationName == "" || seen[sa.StationName] {
			continue
		}
		seen[sa.StationName] = true

		var facilities []string
		if sa.HasElevator {
			facilities = append(facilities, "elevator")
		}
		if sa.HasEscalator {
			facilities = append(facilities, "escalator")
		}
		if len(facilities) == 0 {
			lines = append(lines, fmt.Sprintf("%s has no elevator or escalator on record", sa.StationName))
		} else {
			lines = append(lines, fmt.Sprintf("%s has an %s", sa.StationName, strings.Join(facilities, " and an ")))
		}
	}

	if len(lines) == 0 {
		return completeReply("I don't have accessibility information for the stations on this route.")
	}

	summary := fmt.Sprintf("%s. Overall accessibility score: %.0f out of 100.",
		strings.Join(lines, ". "), route.AccessibilityInfo.TotalScore)
	return completeReply(summary)
}

// dedup collects the non-empty values produced by pick, each value once in
// first-appearance order.
func dedup(guides []models.GuideInfo, pick func(models.GuideInfo) string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, g := range guides {
		v := pick(g)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}
