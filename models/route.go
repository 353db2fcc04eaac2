package models

// RouteRequest asks for a transit route between two coordinates.
type RouteRequest struct {
	SessionID    string   `json:"sessionId"`
	StartLat     *float64 `json:"startLat"`
	StartLon     *float64 `json:"startLon"`
	StartName    string   `json:"startName"`
	EndLat       *float64 `json:"endLat"`
	EndLon       *float64 `json:"endLon"`
	EndName      string   `json:"endName"`
	SearchOption string   `json:"searchOption"` // 0: optimal, 1: shortest, 2: highway first
}

// Location is a named coordinate.
type Location struct {
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
	Name string  `json:"name"`
}

// StationAccessibility describes elevator/escalator availability at one station.
type StationAccessibility struct {
	StationName        string `json:"stationName"`
	HasElevator        bool   `json:"hasElevator"`
	HasEscalator       bool   `json:"hasEscalator"`
	ElevatorExits      string `json:"elevatorExits"`
	EscalatorExits     string `json:"escalatorExits"`
	AccessibleExitInfo string `json:"accessibleExitInfo"`
}

// GuideInfo is one mode-homogeneous segment of the selected itinerary.
type GuideInfo struct {
	Guidance             string                `json:"guidance"`
	Distance             int                   `json:"distance"`
	Time                 int                   `json:"time"`
	TransportType        string                `json:"transportType"` // WALK, BUS, SUBWAY, TRAIN, EXPRESSBUS, ...
	RouteName            string                `json:"routeName,omitempty"`
	BusNumber            string                `json:"busNumber,omitempty"`
	BusRouteID           string                `json:"busRouteId,omitempty"`
	Color                string                `json:"color,omitempty"`
	StartLocation        Location              `json:"startLocation"`
	EndLocation          Location              `json:"endLocation"`
	LineString           string                `json:"lineString"`
	StationAccessibility *StationAccessibility `json:"stationAccessibility,omitempty"`
}

// AccessibilityInfo is the aggregate accessibility summary of an itinerary.
type AccessibilityInfo struct {
	TotalScore            float64 `json:"totalScore"`
	ElevatorStationCount  int     `json:"elevatorStationCount"`
	EscalatorStationCount int     `json:"escalatorStationCount"`
	TotalStationCount     int     `json:"totalStationCount"`
	AccessibilityRate     float64 `json:"accessibilityRate"`
	WalkTimeMinutes       int     `json:"walkTimeMinutes"`
}

// RouteResponse is the normalized itinerary handed to the client and
// remembered in the session context for follow-up questions.
type RouteResponse struct {
	TotalDistance     int               `json:"totalDistance"`
	TotalTime         int               `json:"totalTime"`
	TotalFare         *int              `json:"totalFare,omitempty"`
	TaxiFare          *int              `json:"taxiFare,omitempty"`
	StartLocation     Location          `json:"startLocation"`
	EndLocation       Location          `json:"endLocation"`
	Guides            []GuideInfo       `json:"guides"`
	AccessibilityInfo AccessibilityInfo `json:"accessibilityInfo"`
}
