// File: services/route/builder.go
package route

import (
	"fmt"
	"regexp"
	"strings"

	"roadmate/models"

	"roadmate/services/accessibility"
)

var exitPattern = regexp.MustCompile(`(.+?)(\d+)exit`)

// formatStationNameWithExit inserts a space before a trailing exit number so
// names like "City Hall4exit" render as "City Hall 4 exit".
func formatStationNameWithExit(name string) string {
	if m := exitPattern.FindStringSubmatch(name); m != nil {
		return strings.TrimSpace(m[1]) + " " + m[2] + " exit"
	}
	return name
}

// extractBusNumber strips a provider prefix such as "trunk:301" down to the
// number the user actually sees on the bus.
func extractBusNumber(routeName string) string {
	if idx := strings.LastIndex(routeName, ":"); idx >= 0 {
		return routeName[idx+1:]
	}
	return routeName
}

func pointToLocation(p *models.TmapPoint) models.Location {
	if p == nil {
		return models.Location{}
	}
	return models.Location{Lat: p.Lat, Lon: p.Lon, Name: p.Name}
}

func legGuidance(leg models.TmapLeg) string {
	startName := formatStationNameWithExit(pointName(leg.Start))
	endName := formatStationNameWithExit(pointName(leg.End))
	minutes := leg.SectionTime / 60

	switch leg.Mode {
	case "WALK":
		return fmt.Sprintf("Walk from %s to %s, %dm (%d min)", startName, endName, leg.Distance, minutes)
	case "BUS":
		routeName := leg.Route
		if routeName == "" {
			routeName = "bus"
		}
		return fmt.Sprintf("Board %s at %s and alight at %s (%d min, %dm)", routeName, startName, endName, minutes, leg.Distance)
	case "SUBWAY":
		routeName := leg.Route
		if routeName == "" {
			routeName = "subway"
		}
		return fmt.Sprintf("Board %s at %s and alight at %s (%d min, %dm)", routeName, startName, endName, minutes, leg.Distance)
	default:
		return fmt.Sprintf("Travel from %s to %s by %s (%d min, %dm)", startName, endName, strings.ToLower(leg.Mode), minutes, leg.Distance)
	}
}

func pointName(p *models.TmapPoint) string {
	if p == nil {
		return ""
	}
	return p.Name
}

func legLineString(leg models.TmapLeg) string {
	if leg.Mode == "WALK" {
		var parts []string
		for _, step := range leg.Steps {
			if step.Linestring != "" {
				parts = append(parts, step.Linestring)
			}
		}
		return strings.TrimSpace(strings.Join(parts, " "))
	}
	if leg.PassShape != nil {
		return leg.PassShape.Linestring
	}
	return ""
}

// buildRouteResponse converts the winning itinerary into the client-facing
// route. It fails only when the itinerary carries no usable metrics at all.
func buildRouteResponse(c candidate, access *accessibility.Service) (*models.RouteResponse, error) {
	it := c.Itinerary

	if it.TotalDistance == 0 && it.TotalTime == 0 {
		return nil, fmt.Errorf("itinerary has no distance or duration")
	}

	guides := make([]models.GuideInfo, 0, len(it.Legs))
	for _, leg := range it.Legs {
		guide := models.GuideInfo{
			Guidance:      legGuidance(leg),
			Distance:      leg.Distance,
			Time:          leg.SectionTime,
			TransportType: leg.Mode,
			RouteName:     leg.Route,
			Color:         leg.RouteColor,
			StartLocation: pointToLocation(leg.Start),
			EndLocation:   pointToLocation(leg.End),
			LineString:    legLineString(leg),
		}

		if leg.Mode == "BUS" {
			guide.BusNumber = extractBusNumber(leg.Route)
			guide.BusRouteID = leg.RouteID
		}

		if leg.Mode != "WALK" && pointName(leg.Start) != "" {
			sa := access.Lookup(pointName(leg.Start))
			guide.StationAccessibility = &sa
		}

		guides = append(guides, guide)
	}

	fare := 0
	if it.Fare != nil && it.Fare.Regular != nil {
		fare = it.Fare.Regular.TotalFare
	}

	var start, end models.Location
	if len(it.Legs) > 0 {
		start = pointToLocation(it.Legs[0].Start)
		end = pointToLocation(it.Legs[len(it.Legs)-1].End)
	}

	return &models.RouteResponse{
		TotalDistance: it.TotalDistance,
		TotalTime:     it.TotalTime,
		TotalFare:     &fare,
		StartLocation: start,
		EndLocation:   end,
		Guides:        guides,
		AccessibilityInfo: models.AccessibilityInfo{
			TotalScore:            c.Score.TotalScore,
			ElevatorStationCount:  c.Score.ElevatorCount,
			EscalatorStationCount: c.Score.EscalatorCount,
			TotalStationCount:     c.Score.TotalStations,
			AccessibilityRate:     c.Score.AccessibilityRate,
			WalkTimeMinutes:       c.Score.WalkTimeMinutes,
		},
	}, nil
}

// fallbackResponse is the static route returned when the provider has no
// itineraries or the winner cannot be converted. The client always gets a
// renderable route.
func fallbackResponse() *models.RouteResponse {
	fare := 0
	start := models.Location{Lat: 37.2816, Lon: 127.0453, Name: "Departure"}
	end := models.Location{Lat: 37.2798, Lon: 127.0435, Name: "Destination"}

	return &models.RouteResponse{
		TotalDistance: 1000,
		TotalTime:     600,
		TotalFare:     &fare,
		StartLocation: start,
		EndLocation:   end,
		Guides: []models.GuideInfo{
			{
				Guidance:      "Follow the basic route to your destination",
				Distance:      1000,
				Time:          600,
				TransportType: "WALK",
				StartLocation: start,
				EndLocation:   end,
			},
		},
		AccessibilityInfo: models.AccessibilityInfo{WalkTimeMinutes: 10},
	}
}
