// File: services/archive/task.go
package archive

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

// TypeArchiveTurn is the task type for persisting one dialogue turn.
const TypeArchiveTurn = "archive:turn"

// TurnRecord is the archived form of one completed dialogue turn.
type TurnRecord struct {
	SessionID  string    `json:"sessionId" bson:"sessionId"`
	UserText   string    `json:"userText" bson:"userText"`
	Intent     string    `json:"intent" bson:"intent"`
	Status     string    `json:"status" bson:"status"`
	ReplyText  string    `json:"replyText" bson:"replyText"`
	RecordedAt time.Time `json:"recordedAt" bson:"recordedAt"`
}

// NewTurnTask packs a turn record into an asynq task.
func NewTurnTask(record TurnRecord) (*asynq.Task, error) {
	payload, err := json.Marshal(record)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeArchiveTurn, payload), nil
}
