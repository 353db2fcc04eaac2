// File: services/archive/archiver.go
package archive

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

const turnsCollection = "transcripts"

// Archiver consumes turn-archive tasks and writes them to Mongo.
type Archiver struct {
	collection *mongo.Collection
	logger     *zap.Logger
}

func NewArchiver(client *mongo.Client, dbName string, logger *zap.Logger) *Archiver {
	return &Archiver{
		collection: client.Database(dbName).Collection(turnsCollection),
		logger:     logger,
	}
}

// Register wires the archiver's handlers onto an asynq mux.
func (a *Archiver) Register(mux *asynq.ServeMux) {
	mux.HandleFunc(TypeArchiveTurn, a.HandleTurnTask)
}

func (a *Archiver) HandleTurnTask(ctx context.Context, task *asynq.Task) error {
	var record TurnRecord
	if err := json.Unmarshal(task.Payload(), &record); err != nil {
		// Malformed payloads can never succeed, so do not retry.
		a.logger.Error("Dropping malformed archive task", zap.Error(err))
		return nil
	}

	if _, err := a.collection.InsertOne(ctx, record); err != nil {
		return fmt.Errorf("failed to archive turn for session %s: %w", record.SessionID, err)
	}

	a.logger.Debug("Turn archived", zap.String("sessionId", record.SessionID))
	return nil
}
