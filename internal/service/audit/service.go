package audit

import (
	"context"
	"log/slog"
	"time"

	"github.com/vemre-aremu/hrpay-backend-go/internal/domain/audit"
)

type AuditServiceImpl struct {
	audit.AuditRepository
	logger *slog.Logger
}

func NewAuditService(auditRepo audit.AuditRepository, logger *slog.Logger) audit.AuditService {
	return &AuditServiceImpl{
		AuditRepository: auditRepo,
		logger:          logger,
	}
}

// Record implements audit.AuditService. The write is best effort; a failed
// audit insert must never fail the action being audited.
func (s *AuditServiceImpl) Record(ctx context.Context, userID *string, action, entityType string, entityID *string, detail string) {
	var detailPtr *string
	if detail != "" {
		detailPtr = &detail
	}

	err := s.AuditRepository.Create(ctx, audit.Log{
		UserID:     userID,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Detail:     detailPtr,
	})
	if err != nil {
		s.logger.Error("failed to write audit log",
			slog.String("action", action),
			slog.String("entity_type", entityType),
			slog.Any("error", err))
	}
}

// List implements audit.AuditService.
func (s *AuditServiceImpl) List(ctx context.Context, limit, offset int) ([]audit.LogResponse, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	logs, err := s.AuditRepository.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}

	responses := make([]audit.LogResponse, 0, len(logs))
	for _, l := range logs {
		responses = append(responses, audit.LogResponse{
			ID:         l.ID,
			Username:   l.Username,
			Action:     l.Action,
			EntityType: l.EntityType,
			EntityID:   l.EntityID,
			Detail:     l.Detail,
			CreatedAt:  l.CreatedAt.Format(time.RFC3339),
		})
	}

	return responses, nil
}
