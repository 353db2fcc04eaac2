package models

// NlpAnalysis is the classifier's verdict for one user utterance.
// Entities keys are free-form and interpreted per intent.
type NlpAnalysis struct {
	Intent       string            `json:"intent"`
	Entities     map[string]string `json:"entities"`
	ResponseText string            `json:"responseText"`
}

// Entity returns the named entity or "" when absent.
func (a NlpAnalysis) Entity(key string) string {
	if a.Entities == nil {
		return ""
	}
	return a.Entities[key]
}

// DialogueStatus describes how far a turn got.
type DialogueStatus string

const (
	StatusComplete    DialogueStatus = "complete"
	StatusIncomplete  DialogueStatus = "incomplete"
	StatusAPIRequired DialogueStatus = "api_required" // caller must resolve an external call
	StatusError       DialogueStatus = "error"
)

// DialogueReply is the structured reply returned for every turn.
type DialogueReply struct {
	SessionID       string         `json:"sessionId"`
	Intent          string         `json:"intent"`
	ResponseMessage string         `json:"responseMessage"`
	Status          DialogueStatus `json:"status"`
	Data            any            `json:"data,omitempty"`
}

// TurnRequest is the payload coming into the dialogue endpoint.
type TurnRequest struct {
	SessionID string `json:"sessionId"`
	Text      string `json:"text" binding:"required"`
}
