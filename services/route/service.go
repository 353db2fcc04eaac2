// File: services/route/service.go
package route

import (
	"context"

	"roadmate/models"
	"roadmate/services/accessibility"
	"roadmate/services/contextstore"
	"roadmate/services/feedback"

	"go.uber.org/zap"
)

// Service searches, ranks and normalizes transit routes.
type Service interface {
	SearchRoute(ctx context.Context, userID string, req models.RouteRequest) (*models.RouteResponse, error)
}

// DefaultService ranks provider itineraries with the user's feedback weights
// and remembers the winner in the session context for follow-up questions.
type DefaultService struct {
	Tmap          *TmapClient
	Accessibility *accessibility.Service
	Contexts      contextstore.Store
	Feedback      feedback.Service
	Logger        *zap.Logger
}

func NewDefaultService(tmap *TmapClient, access *accessibility.Service, contexts contextstore.Store, fb feedback.Service, logger *zap.Logger) *DefaultService {
	return &DefaultService{
		Tmap:          tmap,
		Accessibility: access,
		Contexts:      contexts,
		Feedback:      fb,
		Logger:        logger,
	}
}

func validCoord(lat, lon *float64) bool {
	if lat == nil || lon == nil {
		return false
	}
	return *lat >= -90 && *lat <= 90 && *lon >= -180 && *lon <= 180
}

func (s *DefaultService) SearchRoute(ctx context.Context, userID string, req models.RouteRequest) (*models.RouteResponse, error) {
	if !validCoord(req.StartLat, req.StartLon) {
		return nil, NewInvalidStartError()
	}
	if !validCoord(req.EndLat, req.EndLon) {
		return nil, NewInvalidEndError()
	}

	raw, err := s.Tmap.SearchTransitRoutes(ctx, req)
	if err != nil {
		return nil, err
	}

	itineraries := itinerariesOf(raw)
	if len(itineraries) == 0 {
		s.Logger.Warn("Route provider returned no itineraries, using fallback",
			zap.String("userId", userID))
		resp := fallbackResponse()
		s.rememberRoute(ctx, req.SessionID, resp)
		return resp, nil
	}

	weights := s.weightsFor(ctx, userID)
	candidates := analyzeCandidates(itineraries, s.Accessibility)
	winner, ok := selectBest(candidates, weights)
	if !ok {
		resp := fallbackResponse()
		s.rememberRoute(ctx, req.SessionID, resp)
		return resp, nil
	}

	resp, err := buildRouteResponse(winner, s.Accessibility)
	if err != nil {
		s.Logger.Warn("Selected itinerary unusable, using fallback",
			zap.String("userId", userID), zap.Error(err))
		resp = fallbackResponse()
	}

	s.Logger.Info("Route selected",
		zap.String("userId", userID),
		zap.Int("candidates", len(candidates)),
		zap.Int("winnerIndex", winner.Index),
		zap.Float64("accessibilityScore", winner.Score.TotalScore))

	s.rememberRoute(ctx, req.SessionID, resp)
	return resp, nil
}

// weightsFor reads the user's feedback counters, falling back to defaults
// when the store is unreachable. A counter of zero keeps the default weight
// for that criterion so a fresh user still gets a sensible ranking.
func (s *DefaultService) weightsFor(ctx context.Context, userID string) map[string]int {
	weights := feedback.DefaultWeights()
	if userID == "" || s.Feedback == nil {
		return weights
	}

	counts, err := s.Feedback.Counts(ctx, userID)
	if err != nil {
		s.Logger.Warn("Feedback weights unavailable, using defaults",
			zap.String("userId", userID), zap.Error(err))
		return weights
	}

	for category, count := range counts {
		if count > 0 {
			weights[category] = count
		}
	}
	return weights
}

// rememberRoute stores the selected route on the session context so the
// dialogue layer can answer follow-up questions. Best effort: a failed save
// never fails the search.
func (s *DefaultService) rememberRoute(ctx context.Context, sessionID string, resp *models.RouteResponse) {
	if sessionID == "" || s.Contexts == nil {
		return
	}

	chatCtx, err := s.Contexts.Get(ctx, sessionID)
	if err != nil {
		chatCtx = models.NewChatContext(sessionID)
	}
	chatCtx.RouteResponse = resp

	if err := s.Contexts.Set(ctx, chatCtx); err != nil {
		s.Logger.Warn("Failed to remember route on session context",
			zap.String("sessionId", sessionID), zap.Error(err))
	}
}

func itinerariesOf(raw *models.TmapRouteResponse) []models.TmapItinerary {
	if raw == nil || raw.MetaData == nil || raw.MetaData.Plan == nil {
		return nil
	}
	return raw.MetaData.Plan.Itineraries
}
