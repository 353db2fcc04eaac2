// File: services/route/client.go
package route

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"roadmate/models"

	"go.uber.org/zap"
)

// TmapClient calls the Tmap transit-routes API.
type TmapClient struct {
	apiKey     string
	routeURL   string
	httpClient *http.Client
	logger     *zap.Logger
}

func NewTmapClient(apiKey, routeURL string, timeout time.Duration, logger *zap.Logger) *TmapClient {
	return &TmapClient{
		apiKey:     apiKey,
		routeURL:   routeURL,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// SearchTransitRoutes requests up to five transit itineraries between the
// given coordinates. Coordinates are sent as strings per the provider schema.
func (c *TmapClient) SearchTransitRoutes(ctx context.Context, req models.RouteRequest) (*models.TmapRouteResponse, error) {
	searchOption := req.SearchOption
	if searchOption == "" {
		searchOption = "0"
	}

	body := map[string]any{
		"startX":         formatCoord(*req.StartLon),
		"startY":         formatCoord(*req.StartLat),
		"endX":           formatCoord(*req.EndLon),
		"endY":           formatCoord(*req.EndLat),
		"count":          5,
		"lang":           0,
		"format":         "json",
		"searchOption":   searchOption,
		"subwayBusCount": 5,
		"subwayCount":    3,
		"busCount":       2,
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal route request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.routeURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build route request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("appKey", c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, NewProviderError(err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.logger.Error("Route provider returned non-OK status",
			zap.Int("status", resp.StatusCode), zap.ByteString("body", snippet))
		return nil, NewProviderError(fmt.Sprintf("status %d", resp.StatusCode))
	}

	var parsed models.TmapRouteResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, NewProviderError("malformed response body")
	}

	return &parsed, nil
}
