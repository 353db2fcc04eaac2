// File: services/dialogue/routeinfo.go
package dialogue

import (
	"context"
	"fmt"
	"strings"

	"roadmate/models"
)

const noRouteMessage = "No route is set yet. Please set a route first."

// handleInfoQuery answers questions about the currently remembered route
// from the session context alone. Every answer here needs a route; without
// one the user is asked to set one first.
func (s *DefaultService) handleInfoQuery(ctx context.Context, chatCtx *models.ChatContext, analysis models.NlpAnalysis) models.DialogueReply {
	route := chatCtx.RouteResponse
	if route == nil {
		return models.DialogueReply{
			ResponseMessage: noRouteMessage,
			Status:          models.StatusIncomplete,
		}
	}

	switch analysis.Intent {
	case "total_route_time":
		return completeReply(fmt.Sprintf("The total travel time is about %d minutes.", route.TotalTime/60))

	case "total_route_distance":
		return completeReply(fmt.Sprintf("The total distance is about %.1fkm.", float64(route.TotalDistance)/1000))

	case "total_fare":
		if route.TotalFare == nil {
			return completeReply("I don't have fare information for this route.")
		}
		return completeReply(fmt.Sprintf("The total fare is %d won.", *route.TotalFare))

	case "estimated_arrival_time":
		return completeReply(fmt.Sprintf("You'll be arriving in about %d minutes.", route.TotalTime/60))

	case "section_time_by_mode":
		return s.sectionTimeByMode(route, analysis)

	default:
		return completeReply(analysis.ResponseText)
	}
}

// sectionTimeByMode sums the durations of the segments matching the
// requested transport type.
func (s *DefaultService) sectionTimeByMode(route *models.RouteResponse, analysis models.NlpAnalysis) models.DialogueReply {
	mode := analysis.Entity("transportType")
	if mode == "" {
		mode = analysis.Entity("mode")
	}
	if mode == "" {
		return models.DialogueReply{
			ResponseMessage: "Which part of the trip do you mean: walking, bus or subway?",
			Status:          models.StatusIncomplete,
		}
	}
	mode = strings.ToUpper(mode)

	totalSec := 0
	for _, guide := range route.Guides {
		if guide.TransportType == mode {
			totalSec += guide.Time
		}
	}

	label := modeLabel(mode)
	if totalSec == 0 {
		return completeReply(fmt.Sprintf("This route has no %s segment.", label))
	}
	return completeReply(fmt.Sprintf("The %s portion takes about %d minutes.", label, totalSec/60))
}

func modeLabel(mode string) string {
	switch mode {
	case "WALK":
		return "walking"
	case "BUS":
		return "bus"
	case "SUBWAY":
		return "subway"
	default:
		return strings.ToLower(mode)
	}
}

func completeReply(message string) models.DialogueReply {
	return models.DialogueReply{
		ResponseMessage: message,
		Status:          models.StatusComplete,
	}
}
