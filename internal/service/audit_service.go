package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/hr-dashboard-service/internal/events"
)

// AuditService writes a structured audit line for every domain event.
type AuditService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewAuditService creates the service.
func NewAuditService(dispatcher events.Dispatcher, logger *zap.Logger) *AuditService {
	return &AuditService{dispatcher: dispatcher, logger: logger}
}

// RegisterHandlers subscribes to events.
func (a *AuditService) RegisterHandlers() {
	if a.dispatcher == nil {
		return
	}
	a.dispatcher.Subscribe(events.EventEmployeeCreated, a.handleEvent("EmployeeCreated"))
	a.dispatcher.Subscribe(events.EventEmployeeFileAttached, a.handleEvent("EmployeeFileAttached"))
	a.dispatcher.Subscribe(events.EventSeedCompleted, a.handleEvent("SeedCompleted"))
}

func (a *AuditService) handleEvent(name string) events.EventHandler {
	return func(ctx context.Context, event events.Event) error {
		a.logger.Info(name,
			zap.String("event_id", event.ID),
			zap.Time("timestamp", event.Timestamp),
			zap.Any("payload", event.Payload))
		return nil
	}
}
