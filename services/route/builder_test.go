package route

import (
	"testing"

	"roadmate/models"
	"roadmate/services/accessibility"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestFormatStationNameWithExit(t *testing.T) {
	assert.Equal(t, "City Hall 4 exit", formatStationNameWithExit("City Hall4exit"))
	assert.Equal(t, "Gangnam 11 exit", formatStationNameWithExit("Gangnam11exit"))
	assert.Equal(t, "Gangnam Station", formatStationNameWithExit("Gangnam Station"))
	assert.Equal(t, "", formatStationNameWithExit(""))
}

func TestExtractBusNumber(t *testing.T) {
	assert.Equal(t, "301", extractBusNumber("trunk:301"))
	assert.Equal(t, "145", extractBusNumber("145"))
	assert.Equal(t, "M4403", extractBusNumber("express:red:M4403"))
}

func TestExtractStationNames(t *testing.T) {
	itinerary := models.TmapItinerary{Legs: []models.TmapLeg{
		{Mode: "WALK", Start: &models.TmapPoint{Name: "Home"}, End: &models.TmapPoint{Name: "Gangnam"}},
		{Mode: "SUBWAY", Start: &models.TmapPoint{Name: "Gangnam"}, End: &models.TmapPoint{Name: "Seolleung"}},
		{Mode: "SUBWAY", Start: &models.TmapPoint{Name: "Seolleung"}, End: &models.TmapPoint{Name: "Jamsil"}},
		{Mode: "WALK", Start: &models.TmapPoint{Name: "Jamsil"}, End: &models.TmapPoint{Name: "Office"}},
	}}

	got := extractStationNames(itinerary)
	assert.Equal(t, []string{"Gangnam", "Seolleung", "Jamsil"}, got)
}

func TestBuildRouteResponse(t *testing.T) {
	access := accessibility.New("missing.csv", "missing.csv", zap.NewNop())

	itinerary := models.TmapItinerary{
		TotalTime:     2400,
		TotalDistance: 9000,
		Fare:          &models.TmapFare{Regular: &models.TmapRegularFare{TotalFare: 1500}},
		Legs: []models.TmapLeg{
			{
				Mode: "WALK", Distance: 400, SectionTime: 300,
				Start: &models.TmapPoint{Name: "Home", Lat: 37.1, Lon: 127.1},
				End:   &models.TmapPoint{Name: "Gangnam Station", Lat: 37.2, Lon: 127.2},
				Steps: []models.TmapStep{{Linestring: "127.1,37.1 127.15,37.15"}, {Linestring: "127.2,37.2"}},
			},
			{
				Mode: "BUS", Distance: 8600, SectionTime: 2100,
				Route: "trunk:301", RouteID: "bus-301", RouteColor: "0068B7",
				Start:     &models.TmapPoint{Name: "Gangnam Station", Lat: 37.2, Lon: 127.2},
				End:       &models.TmapPoint{Name: "Jamsil Station", Lat: 37.3, Lon: 127.3},
				PassShape: &models.TmapPassShape{Linestring: "127.2,37.2 127.3,37.3"},
			},
		},
	}

	resp, err := buildRouteResponse(candidate{Itinerary: itinerary}, access)
	require.NoError(t, err)

	assert.Equal(t, 9000, resp.TotalDistance)
	assert.Equal(t, 2400, resp.TotalTime)
	require.NotNil(t, resp.TotalFare)
	assert.Equal(t, 1500, *resp.TotalFare)
	assert.Equal(t, "Home", resp.StartLocation.Name)
	assert.Equal(t, "Jamsil Station", resp.EndLocation.Name)

	require.Len(t, resp.Guides, 2)

	walk := resp.Guides[0]
	assert.Equal(t, "WALK", walk.TransportType)
	assert.Equal(t, "127.1,37.1 127.15,37.15 127.2,37.2", walk.LineString)
	assert.Nil(t, walk.StationAccessibility)

	bus := resp.Guides[1]
	assert.Equal(t, "301", bus.BusNumber)
	assert.Equal(t, "bus-301", bus.BusRouteID)
	assert.Equal(t, "127.2,37.2 127.3,37.3", bus.LineString)
	require.NotNil(t, bus.StationAccessibility)
	assert.Equal(t, "Gangnam Station", bus.StationAccessibility.StationName)
	assert.True(t, bus.StationAccessibility.HasElevator)
	assert.Contains(t, bus.Guidance, "trunk:301")
}

func TestBuildRouteResponseRejectsEmptyItinerary(t *testing.T) {
	access := accessibility.New("missing.csv", "missing.csv", zap.NewNop())

	_, err := buildRouteResponse(candidate{}, access)
	assert.Error(t, err)
}

func TestFallbackResponse(t *testing.T) {
	resp := fallbackResponse()

	assert.Equal(t, 1000, resp.TotalDistance)
	assert.Equal(t, 600, resp.TotalTime)
	require.NotNil(t, resp.TotalFare)
	assert.Equal(t, 0, *resp.TotalFare)
	require.Len(t, resp.Guides, 1)
	assert.Equal(t, "WALK", resp.Guides[0].TransportType)
	assert.Equal(t, 10, resp.AccessibilityInfo.WalkTimeMinutes)
}
