// File: services/dialogue/interface.go
package dialogue

import (
	"context"

	"roadmate/models"
)

// Service runs one turn of the conversational assistant.
type Service interface {
	ProcessTurn(ctx context.Context, sessionID, userText string) models.DialogueReply
}
