package models

// POISearchRequest resolves a place name near the caller's position.
type POISearchRequest struct {
	Destination string   `json:"destination"`
	CurrentLat  *float64 `json:"currentLat"`
	CurrentLon  *float64 `json:"currentLon"`
}

// POIItem is one place candidate.
type POIItem struct {
	Name     string  `json:"name"`
	Address  string  `json:"address"`
	Lat      float64 `json:"lat"`
	Lon      float64 `json:"lon"`
	Distance float64 `json:"distance"` // meters from the caller's position
}

type POISearchResponse struct {
	Places     []POIItem `json:"places"`
	TotalCount int       `json:"totalCount"`
}

// Typed schema for the Tmap POI keyword-search response. Coordinates come
// back as strings and are parsed defensively.

type TmapPOIResponse struct {
	SearchPoiInfo *TmapSearchPoiInfo `json:"searchPoiInfo"`
}

type TmapSearchPoiInfo struct {
	TotalCount string    `json:"totalCount"`
	Pois       *TmapPois `json:"pois"`
}

type TmapPois struct {
	Poi []TmapPoi `json:"poi"`
}

type TmapPoi struct {
	Name           string `json:"name"`
	FrontLat       string `json:"frontLat"`
	FrontLon       string `json:"frontLon"`
	UpperAddrName  string `json:"upperAddrName"`
	MiddleAddrName string `json:"middleAddrName"`
	LowerAddrName  string `json:"lowerAddrName"`
}
