package models

// Message is one entry of a session's conversation history.
type Message struct {
	Role string `json:"role"` // "user" or "assistant"
	Text string `json:"text"`
}

// LocationInfo holds the origin/destination names extracted from the
// conversation. An empty Origin with a set Destination means "from the
// user's current location", which is distinct from no destination at all.
type LocationInfo struct {
	Origin      string `json:"origin,omitempty"`
	Destination string `json:"destination,omitempty"`
}

// ChatContext is the durable per-session conversational state.
type ChatContext struct {
	SessionID           string         `json:"sessionId"`
	ExtractedLocations  *LocationInfo  `json:"extractedLocations,omitempty"`
	ConversationHistory []Message      `json:"conversationHistory"`
	RouteResponse       *RouteResponse `json:"routeResponse,omitempty"`
}

// NewChatContext returns an empty context for a session seen for the first time.
func NewChatContext(sessionID string) *ChatContext {
	return &ChatContext{
		SessionID:           sessionID,
		ExtractedLocations:  &LocationInfo{},
		ConversationHistory: []Message{},
	}
}

// AddMessage appends one message to the conversation history.
func (c *ChatContext) AddMessage(role, text string) {
	c.ConversationHistory = append(c.ConversationHistory, Message{Role: role, Text: text})
}
