// File: services/nlp/interface.go
package nlp

import (
	"context"

	"roadmate/models"
)

// Analyzer classifies one user utterance against the conversation history.
// Implementations never return an error: a failed classification yields a
// degraded result with intent "error" and an apology, so a broken external
// classifier cannot crash a turn.
type Analyzer interface {
	Analyze(ctx context.Context, history []models.Message, userText string) models.NlpAnalysis
}
