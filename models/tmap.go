package models

// Typed schema for the Tmap transit-routes response. Only the fields the
// ranking and itinerary building read are declared; anything absent in the
// payload decodes to its zero value.

type TmapRouteResponse struct {
	MetaData *TmapMetaData `json:"metaData"`
}

type TmapMetaData struct {
	Plan *TmapPlan `json:"plan"`
}

type TmapPlan struct {
	Itineraries []TmapItinerary `json:"itineraries"`
}

type TmapItinerary struct {
	TotalTime     int       `json:"totalTime"`     // seconds
	TotalWalkTime int       `json:"totalWalkTime"` // seconds
	TotalDistance int       `json:"totalDistance"` // meters
	TransferCount int       `json:"transferCount"`
	Fare          *TmapFare `json:"fare"`
	Legs          []TmapLeg `json:"legs"`
}

type TmapFare struct {
	Regular *TmapRegularFare `json:"regular"`
}

type TmapRegularFare struct {
	TotalFare int `json:"totalFare"`
}

type TmapLeg struct {
	Mode        string         `json:"mode"`
	Distance    int            `json:"distance"`
	SectionTime int            `json:"sectionTime"`
	Route       string         `json:"route"`
	RouteID     string         `json:"routeId"`
	RouteColor  string         `json:"routeColor"`
	Start       *TmapPoint     `json:"start"`
	End         *TmapPoint     `json:"end"`
	Steps       []TmapStep     `json:"steps"`
	PassShape   *TmapPassShape `json:"passShape"`
}

type TmapPoint struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}

type TmapStep struct {
	Description string `json:"description"`
	StreetName  string `json:"streetName"`
	Distance    int    `json:"distance"`
	Linestring  string `json:"linestring"`
}

type TmapPassShape struct {
	Linestring string `json:"linestring"`
}
