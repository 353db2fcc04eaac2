// File: services/archive/publisher.go
package archive

import (
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// Publisher enqueues turn records for asynchronous archival. All methods are
// best effort: archival must never fail or slow a user-facing turn.
type Publisher interface {
	PublishTurn(record TurnRecord)
}

// AsynqPublisher pushes turn records onto the asynq queue.
type AsynqPublisher struct {
	client *asynq.Client
	logger *zap.Logger
}

func NewAsynqPublisher(redisAddr, redisPassword string, logger *zap.Logger) *AsynqPublisher {
	client := asynq.NewClient(asynq.RedisClientOpt{Addr: redisAddr, Password: redisPassword})
	return &AsynqPublisher{client: client, logger: logger}
}

func (p *AsynqPublisher) PublishTurn(record TurnRecord) {
	task, err := NewTurnTask(record)
	if err != nil {
		p.logger.Warn("Failed to build archive task", zap.Error(err))
		return
	}
	if _, err := p.client.Enqueue(task, asynq.MaxRetry(3)); err != nil {
		p.logger.Warn("Failed to enqueue archive task",
			zap.String("sessionId", record.SessionID), zap.Error(err))
	}
}

func (p *AsynqPublisher) Close() error {
	return p.client.Close()
}

// NopPublisher drops records. Used when the archive backend is not configured.
type NopPublisher struct{}

func (NopPublisher) PublishTurn(TurnRecord) {}
