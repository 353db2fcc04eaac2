package models_test

import (
	"encoding/json"
	"testing"

	"roadmate/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The context store persists ChatContext as JSON, so serializing and
// deserializing a fully populated context must yield an equal value.
func TestChatContextRoundTrip(t *testing.T) {
	fare := 1500
	original := models.NewChatContext("s1")
	original.AddMessage("user", "take me to Gangnam")
	original.AddMessage("assistant", "Searching for a route from your current location to Gangnam Station.")
	original.ExtractedLocations = &models.LocationInfo{
		Origin:      "Seoul Station",
		Destination: "Gangnam Station",
	}
	original.RouteResponse = &models.RouteResponse{
		TotalDistance: 9300,
		TotalTime:     2400,
		TotalFare:     &fare,
		StartLocation: models.Location{Lat: 37.55, Lon: 126.97, Name: "Seoul Station"},
		EndLocation:   models.Location{Lat: 37.49, Lon: 127.02, Name: "Gangnam Station"},
		Guides: []models.GuideInfo{
			{
				Guidance:      "Board line 2 at Seoul Station and alight at Gangnam Station (35 min, 8900m)",
				Distance:      8900,
				Time:          2100,
				TransportType: "SUBWAY",
				RouteName:     "line 2",
				StartLocation: models.Location{Lat: 37.55, Lon: 126.97, Name: "Seoul Station"},
				EndLocation:   models.Location{Lat: 37.49, Lon: 127.02, Name: "Gangnam Station"},
				StationAccessibility: &models.StationAccessibility{
					StationName:        "Seoul Station",
					HasElevator:        true,
					ElevatorExits:      "2",
					AccessibleExitInfo: "2 (elevator)",
				},
			},
			{
				Guidance:      "Walk from Gangnam Station to the exit, 120m (2 min)",
				Distance:      120,
				Time:          180,
				TransportType: "WALK",
			},
		},
		AccessibilityInfo: models.AccessibilityInfo{
			TotalScore:            62.5,
			ElevatorStationCount:  1,
			EscalatorStationCount: 1,
			TotalStationCount:     2,
			AccessibilityRate:     50,
			WalkTimeMinutes:       5,
		},
	}

	data, err := json.Marshal(original)
	require.NoError(t, err)

	var restored models.ChatContext
	require.NoError(t, json.Unmarshal(data, &restored))

	assert.Equal(t, *original, restored)
}

// A freshly created context must also survive the round trip, with its
// empty history staying an empty slice rather than becoming nil.
func TestChatContextRoundTripEmpty(t *testing.T) {
	original := models.NewChatContext("s2")

	data, err := json.Marshal(original)
	require.NoError(t, err)

	var restored models.ChatContext
	require.NoError(t, json.Unmarshal(data, &restored))

	assert.Equal(t, *original, restored)
	assert.NotNil(t, restored.ConversationHistory)
}
