// File: services/nlp/openai.go
package nlp

import (
	"context"
	"encoding/json"

	"roadmate/models"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

const systemPrompt = `You are a master assistant for a navigation service. Your primary job is to understand a user's request, classify it into a specific "intent", extract necessary "entities", and generate a preliminary "responseText". Your response MUST be a valid JSON object with three keys: "intent", "entities", and "responseText".

Possible intents are:
- "extract_route"
- "research_route"
- "real_time_bus_arrival"
- "real_time_subway_arrival"
- "total_route_time"
- "section_time_by_mode"
- "estimated_arrival_time"
- "total_fare"
- "total_route_distance"
- "bus_number_info"
- "subway_line_info"
- "bus_station_info"
- "subway_station_info"
- "accessibility_info"
- "current_location"
- "feedback"
- "other_inquiries"

For "section_time_by_mode" the "transportType" entity must be one of "WALK", "BUS", or "SUBWAY".
For "bus_station_info" and "subway_station_info" the "position" entity must be "start" or "end".
For "feedback" the "category" entity must be one of "walk", "transfer", "totalTime", "elevator", "escalator".

Example (new route):
User: "How do I get to Gangnam Station?"
Assistant: {"intent": "extract_route", "entities": {"origin": null, "destination": "Gangnam Station"}, "responseText": "Let me find a route from your current location to Gangnam Station."}

Example (real-time info):
User: "When does bus 500 arrive?"
Assistant: {"intent": "real_time_bus_arrival", "entities": {"bus_number": "500"}, "responseText": "Let me check the arrival information for bus 500."}

Example (guidance):
User: "Which bus should I take?"
Assistant: {"intent": "bus_number_info", "entities": {}, "responseText": "Here is the bus you need to take."}

Example (unrelated):
User: "I'm hungry"
Assistant: {"intent": "other_inquiries", "entities": {}, "responseText": "I can only help with routes and travel questions."}

Always respond in strict JSON format.`

const degradedResponseText = "Sorry, I failed to understand your request."

// OpenAIAnalyzer classifies utterances through the OpenAI chat-completion API.
type OpenAIAnalyzer struct {
	client *openai.Client
	model  string
	logger *zap.Logger
}

func NewOpenAIAnalyzer(apiKey, model string, logger *zap.Logger) *OpenAIAnalyzer {
	return &OpenAIAnalyzer{
		client: openai.NewClient(apiKey),
		model:  model,
		logger: logger,
	}
}

func (a *OpenAIAnalyzer) Analyze(ctx context.Context, history []models.Message, userText string) models.NlpAnalysis {
	messages := make([]openai.ChatCompletionMessage, 0, len(history)+2)
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: systemPrompt,
	})
	for _, m := range history {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    m.Role,
			Content: m.Text,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: userText,
	})

	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    a.model,
		Messages: messages,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		a.logger.Error("NLP classification call failed", zap.Error(err))
		return degradedAnalysis()
	}
	if len(resp.Choices) == 0 {
		a.logger.Error("NLP classification returned no choices")
		return degradedAnalysis()
	}

	var analysis models.NlpAnalysis
	if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), &analysis); err != nil {
		a.logger.Error("NLP classification returned malformed JSON",
			zap.String("content", resp.Choices[0].Message.Content), zap.Error(err))
		return degradedAnalysis()
	}

	return analysis
}

func degradedAnalysis() models.NlpAnalysis {
	return models.NlpAnalysis{
		Intent:       "error",
		ResponseText: degradedResponseText,
	}
}
