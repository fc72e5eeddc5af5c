package audit

import (
	"context"
	"time"

	common_models "oakcraft/internal/common/models"
	"oakcraft/internal/features/system"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type AuditService interface {
	LogChange(ctx context.Context, action common_models.AuditAction, module, recordID string, changes map[string]common_models.Change) error
	ListLogs(ctx context.Context, module string, limit, offset int64) ([]common_models.AuditLog, int64, error)
}

type AuditServiceImpl struct {
	AuditRepo AuditRepository
	Hub       *system.Hub
	Logger    *zap.Logger
}

func NewAuditService(auditRepo AuditRepository, hub *system.Hub, logger *zap.Logger) AuditService {
	return &AuditServiceImpl{
		AuditRepo: auditRepo,
		Hub:       hub,
		Logger:    logger,
	}
}

// LogChange records an admin mutation. The actor is taken from the request
// context the auth middleware populated; missing actor is recorded as
// "system" (seeder, lifecycle hooks).
func (s *AuditServiceImpl) LogChange(ctx context.Context, action common_models.AuditAction, module, recordID string, changes map[string]common_models.Change) error {
	actorID, _ := ctx.Value(common_models.ActorIDKey).(string)
	if actorID == "" {
		actorID = "system"
	}

	entry := &common_models.AuditLog{
		ID:        primitive.NewObjectID(),
		Action:    action,
		Module:    module,
		RecordID:  recordID,
		ActorID:   actorID,
		Changes:   changes,
		Timestamp: time.Now(),
	}

	if err := s.AuditRepo.Create(ctx, entry); err != nil {
		s.Logger.Error("failed to write audit log",
			zap.String("module", module),
			zap.String("record_id", recordID),
			zap.Error(err))
		return err
	}

	s.Hub.Broadcast("audit", map[string]string{
		"action":    string(action),
		"module":    module,
		"record_id": recordID,
		"actor_id":  actorID,
	})
	return nil
}

func (s *AuditServiceImpl) ListLogs(ctx context.Context, module string, limit, offset int64) ([]common_models.AuditLog, int64, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	entries, err := s.AuditRepo.List(ctx, module, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.AuditRepo.CountByModule(ctx, module)
	if err != nil {
		return nil, 0, err
	}
	return entries, total, nil
}
