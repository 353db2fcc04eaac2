package route

import (
	"context"
	"testing"

	"roadmate/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func f64(v float64) *float64 { return &v }

func TestSearchRouteValidatesCoordinates(t *testing.T) {
	svc := NewDefaultService(nil, nil, nil, nil, zap.NewNop())

	t.Run("missing start", func(t *testing.T) {
		_, err := svc.SearchRoute(context.Background(), "u1", models.RouteRequest{
			EndLat: f64(37.5), EndLon: f64(127.0),
		})
		var routeErr *RouteError
		require.ErrorAs(t, err, &routeErr)
		assert.Equal(t, "INVALID_START", routeErr.Code)
	})

	t.Run("latitude out of range", func(t *testing.T) {
		_, err := svc.SearchRoute(context.Background(), "u1", models.RouteRequest{
			StartLat: f64(37.5), StartLon: f64(127.0),
			EndLat: f64(95.0), EndLon: f64(127.0),
		})
		var routeErr *RouteError
		require.ErrorAs(t, err, &routeErr)
		assert.Equal(t, "INVALID_END", routeErr.Code)
	})
}
