// File: services/poi/service.go
package poi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"roadmate/models"

	"go.uber.org/zap"
)

// POIError describes a place search failure with a stable machine code.
type POIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *POIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewMissingDestinationError() *POIError {
	return &POIError{Code: "MISSING_DESTINATION", Message: "Please provide a destination to search for."}
}

func NewProviderError(detail string) *POIError {
	return &POIError{Code: "POI_PROVIDER_ERROR", Message: fmt.Sprintf("Place search request failed: %s", detail)}
}

// Service resolves free-text place names into coordinates.
type Service interface {
	Search(ctx context.Context, req models.POISearchRequest) (*models.POISearchResponse, error)
}

// TmapService searches places through the Tmap keyword POI API.
type TmapService struct {
	apiKey     string
	poiURL     string
	httpClient *http.Client
	logger     *zap.Logger
}

func NewTmapService(apiKey, poiURL string, timeout time.Duration, logger *zap.Logger) *TmapService {
	return &TmapService{
		apiKey:     apiKey,
		poiURL:     poiURL,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

func (s *TmapService) Search(ctx context.Context, req models.POISearchRequest) (*models.POISearchResponse, error) {
	if strings.TrimSpace(req.Destination) == "" {
		return nil, NewMissingDestinationError()
	}

	query := url.Values{}
	query.Set("version", "1")
	query.Set("searchKeyword", req.Destination)
	query.Set("count", "10")
	if req.CurrentLat != nil && req.CurrentLon != nil {
		query.Set("centerLat", strconv.FormatFloat(*req.CurrentLat, 'f', -1, 64))
		query.Set("centerLon", strconv.FormatFloat(*req.CurrentLon, 'f', -1, 64))
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, s.poiURL+"?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build place search request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("appKey", s.apiKey)

	resp, err := s.httpClient.Do(httpReq)
	if err != nil {
		return nil, NewProviderError(err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		s.logger.Error("Place provider returned non-OK status",
			zap.Int("status", resp.StatusCode), zap.ByteString("body", snippet))
		return nil, NewProviderError(fmt.Sprintf("status %d", resp.StatusCode))
	}

	var parsed models.TmapPOIResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, NewProviderError("malformed response body")
	}

	return s.toResponse(&parsed, req.CurrentLat, req.CurrentLon), nil
}

// toResponse converts the provider payload, skipping entries whose
// coordinates do not parse.
func (s *TmapService) toResponse(raw *models.TmapPOIResponse, curLat, curLon *float64) *models.POISearchResponse {
	out := &models.POISearchResponse{Places: []models.POIItem{}}
	if raw == nil || raw.SearchPoiInfo == nil || raw.SearchPoiInfo.Pois == nil {
		return out
	}

	if n, err := strconv.Atoi(raw.SearchPoiInfo.TotalCount); err == nil {
		out.TotalCount = n
	}

	for _, p := range raw.SearchPoiInfo.Pois.Poi {
		lat, latErr := strconv.ParseFloat(p.FrontLat, 64)
		lon, lonErr := strconv.ParseFloat(p.FrontLon, 64)
		if latErr != nil || lonErr != nil {
			s.logger.Debug("Skipping place with unparseable coordinates", zap.String("name", p.Name))
			continue
		}

		item := models.POIItem{
			Name:    p.Name,
			Address: joinAddress(p.UpperAddrName, p.MiddleAddrName, p.LowerAddrName),
			Lat:     lat,
			Lon:     lon,
		}
		if curLat != nil && curLon != nil {
			item.Distance = haversineMeters(*curLat, *curLon, lat, lon)
		}
		out.Places = append(out.Places, item)
	}

	if out.TotalCount == 0 {
		out.TotalCount = len(out.Places)
	}
	return out
}

func joinAddress(parts ...string) string {
	var nonEmpty []string
	for _, p := range parts {
		if p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return strings.Join(nonEmpty, " ")
}

const earthRadiusMeters = 6371000.0

func haversineMeters(lat1, lon1, lat2, lon2 float64) float64 {
	toRad := func(deg float64) float64 { return deg * math.Pi / 180 }

	dLat := toRad(lat2 - lat1)
	dLon := toRad(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*math.Sin(dLon/2)*math.Sin(dLon/2)
	return earthRadiusMeters * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}
