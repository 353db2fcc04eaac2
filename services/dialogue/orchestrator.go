// File: services/dialogue/orchestrator.go
package dialogue

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"roadmate/models"
	"roadmate/services/archive"
	"roadmate/services/contextstore"
	"roadmate/services/feedback"
	"roadmate/services/nlp"

	"go.uber.org/zap"
)

// intentClass groups the classifier's intents into response strategies.
type intentClass int

const (
	classRouteExtraction intentClass = iota
	classInfoQuery
	classRealTimeQuery
	classGuidanceQuery
	classCurrentLocation
	classFeedback
	classFallback
)

// handler produces the reply for one strategy. It may mutate chatCtx; the
// orchestrator persists whatever state the handler leaves behind.
type handler func(ctx context.Context, chatCtx *models.ChatContext, analysis models.NlpAnalysis) models.DialogueReply

// DefaultService is the turn orchestrator: it loads the session context,
// classifies the utterance, dispatches to a strategy handler and persists
// the updated context.
type DefaultService struct {
	Contexts contextstore.Store
	Analyzer nlp.Analyzer
	Feedback feedback.Service
	Archive  archive.Publisher
	Logger   *zap.Logger

	handlers map[intentClass]handler
}

func NewDefaultService(contexts contextstore.Store, analyzer nlp.Analyzer, fb feedback.Service, publisher archive.Publisher, logger *zap.Logger) *DefaultService {
	s := &DefaultService{
		Contexts: contexts,
		Analyzer: analyzer,
		Feedback: fb,
		Archive:  publisher,
		Logger:   logger,
	}
	s.handlers = map[intentClass]handler{
		classRouteExtraction: s.handleRouteExtraction,
		classInfoQuery:       s.handleInfoQuery,
		classRealTimeQuery:   s.handleRealTimeQuery,
		classGuidanceQuery:   s.handleGuidanceQuery,
		classCurrentLocation: s.handleCurrentLocation,
		classFeedback:        s.handleFeedback,
		classFallback:        s.handleFallback,
	}
	return s
}

// classify maps a raw intent onto its response strategy. Unknown intents and
// classifier failures land on the fallback strategy.
func classify(intent string) intentClass {
	switch intent {
	case "extract_route", "research_route":
		return classRouteExtraction
	case "total_route_time", "total_route_distance", "total_fare",
		"section_time_by_mode", "estimated_arrival_time":
		return classInfoQuery
	case "real_time_bus_arrival", "real_time_subway_arrival":
		return classRealTimeQuery
	case "bus_number_info", "subway_line_info", "bus_station_info",
		"subway_station_info", "accessibility_info":
		return classGuidanceQuery
	case "current_location":
		return classCurrentLocation
	case "feedback":
		return classFeedback
	default:
		return classFallback
	}
}

func (s *DefaultService) ProcessTurn(ctx context.Context, sessionID, userText string) models.DialogueReply {
	release, err := s.Contexts.Lock(ctx, sessionID)
	if err != nil {
		if errors.Is(err, contextstore.ErrLockHeld) {
			return models.DialogueReply{
				SessionID:       sessionID,
				ResponseMessage: "I'm still working on your previous message. One moment, please.",
				Status:          models.StatusError,
			}
		}
		// A broken lock backend must not block conversations.
		s.Logger.Warn("Session lock unavailable, proceeding without it",
			zap.String("sessionId", sessionID), zap.Error(err))
	} else {
		defer release()
	}

	chatCtx, loadErr := s.Contexts.Get(ctx, sessionID)
	switch {
	case loadErr == nil:
	case errors.Is(loadErr, contextstore.ErrNotFound):
		chatCtx = models.NewChatContext(sessionID)
	case errors.Is(loadErr, contextstore.ErrCorrupt):
		// The corrupt entry is already gone; start fresh but tell the user.
		chatCtx = models.NewChatContext(sessionID)
	default:
		s.Logger.Error("Failed to load chat context",
			zap.String("sessionId", sessionID), zap.Error(loadErr))
		return models.DialogueReply{
			SessionID:       sessionID,
			ResponseMessage: "Sorry, something went wrong. Please try again.",
			Status:          models.StatusError,
		}
	}

	analysis := s.Analyzer.Analyze(ctx, chatCtx.ConversationHistory, userText)

	var reply models.DialogueReply
	if errors.Is(loadErr, contextstore.ErrCorrupt) {
		reply = models.DialogueReply{
			SessionID:       sessionID,
			Intent:          analysis.Intent,
			ResponseMessage: "I lost track of our conversation, so I'm starting over. How can I help?",
			Status:          models.StatusError,
		}
	} else {
		reply = s.handlers[classify(analysis.Intent)](ctx, chatCtx, analysis)
		reply.SessionID = sessionID
		reply.Intent = analysis.Intent
	}

	chatCtx.AddMessage("user", userText)
	chatCtx.AddMessage("assistant", reply.ResponseMessage)

	if err := s.Contexts.Set(ctx, chatCtx); err != nil {
		s.Logger.Error("Failed to persist chat context",
			zap.String("sessionId", sessionID), zap.Error(err))
	}

	s.Archive.PublishTurn(archive.TurnRecord{
		SessionID:  sessionID,
		UserText:   userText,
		Intent:     analysis.Intent,
		Status:     string(reply.Status),
		ReplyText:  reply.ResponseMessage,
		RecordedAt: time.Now().UTC(),
	})

	return reply
}

// handleRouteExtraction merges newly extracted locations over the remembered
// ones and asks for whatever is still missing. A fresh search request drops
// the previously selected route first.
func (s *DefaultService) handleRouteExtraction(ctx context.Context, chatCtx *models.ChatContext, analysis models.NlpAnalysis) models.DialogueReply {
	if analysis.Intent == "research_route" {
		chatCtx.RouteResponse = nil
	}

	if chatCtx.ExtractedLocations == nil {
		chatCtx.ExtractedLocations = &models.LocationInfo{}
	}
	if origin := strings.TrimSpace(analysis.Entity("origin")); origin != "" {
		chatCtx.ExtractedLocations.Origin = origin
	}
	if destination := strings.TrimSpace(analysis.Entity("destination")); destination != "" {
		chatCtx.ExtractedLocations.Destination = destination
	}

	locations := chatCtx.ExtractedLocations
	switch {
	case locations.Destination == "":
		return models.DialogueReply{
			ResponseMessage: "Please tell me your destination.",
			Status:          models.StatusIncomplete,
		}
	case locations.Origin == "":
		return models.DialogueReply{
			ResponseMessage: fmt.Sprintf("Searching for a route from your current location to %s.", locations.Destination),
			Status:          models.StatusAPIRequired,
			Data:            locations,
		}
	default:
		return models.DialogueReply{
			ResponseMessage: fmt.Sprintf("Searching for a route from %s to %s.", locations.Origin, locations.Destination),
			Status:          models.StatusAPIRequired,
			Data:            locations,
		}
	}
}

// handleRealTimeQuery cannot answer locally; it hands the extracted entities
// back so the client can resolve the arrival feed. With no entities at all
// there is nothing to look up, so ask for specifics instead.
func (s *DefaultService) handleRealTimeQuery(ctx context.Context, chatCtx *models.ChatContext, analysis models.NlpAnalysis) models.DialogueReply {
	if len(analysis.Entities) == 0 {
		return models.DialogueReply{
			ResponseMessage: "Which bus or subway line would you like arrival times for?",
			Status:          models.StatusIncomplete,
		}
	}
	return models.DialogueReply{
		ResponseMessage: analysis.ResponseText,
		Status:          models.StatusAPIRequired,
		Data:            analysis.Entities,
	}
}

func (s *DefaultService) handleCurrentLocation(ctx context.Context, chatCtx *models.ChatContext, analysis models.NlpAnalysis) models.DialogueReply {
	return models.DialogueReply{
		ResponseMessage: "Let me check your current location.",
		Status:          models.StatusAPIRequired,
	}
}

// handleFeedback records a ranking-criterion vote for this session's user.
func (s *DefaultService) handleFeedback(ctx context.Context, chatCtx *models.ChatContext, analysis models.NlpAnalysis) models.DialogueReply {
	category := analysis.Entity("category")
	if category == "" {
		return models.DialogueReply{
			ResponseMessage: "What would you like to prioritize? You can choose walking, transfers, total time, elevators or escalators.",
			Status:          models.StatusIncomplete,
		}
	}

	if err := s.Feedback.Submit(ctx, chatCtx.SessionID, category); err != nil {
		var invalid *feedback.InvalidCategoryError
		if errors.As(err, &invalid) {
			return models.DialogueReply{
				ResponseMessage: fmt.Sprintf("I don't recognize %q as something I can prioritize.", category),
				Status:          models.StatusError,
			}
		}
		s.Logger.Error("Failed to record feedback",
			zap.String("sessionId", chatCtx.SessionID), zap.Error(err))
		return models.DialogueReply{
			ResponseMessage: "Sorry, I couldn't save your preference. Please try again.",
			Status:          models.StatusError,
		}
	}

	return models.DialogueReply{
		ResponseMessage: fmt.Sprintf("Got it. I'll weigh %s more heavily when ranking your routes.", categoryLabel(category)),
		Status:          models.StatusComplete,
	}
}

func categoryLabel(category string) string {
	switch category {
	case "walk":
		return "less walking"
	case "transfer":
		return "fewer transfers"
	case "totalTime":
		return "shorter total time"
	case "elevator":
		return "elevator availability"
	case "escalator":
		return "escalator availability"
	default:
		return category
	}
}

// handleFallback echoes the classifier's own response for off-topic or
// unintelligible requests. A classifier failure keeps its apology text.
func (s *DefaultService) handleFallback(ctx context.Context, chatCtx *models.ChatContext, analysis models.NlpAnalysis) models.DialogueReply {
	message := analysis.ResponseText
	if message == "" {
		message = "I can help you with routes, transit information and accessibility. What would you like to know?"
	}
	status := models.StatusComplete
	if analysis.Intent == "error" {
		status = models.StatusError
	}
	return models.DialogueReply{
		ResponseMessage: message,
		Status:          status,
	}
}
