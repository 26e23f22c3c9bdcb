package service

import (
	"context"

	"hospital-admin-api/internal/domain/entity"
	"hospital-admin-api/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const auditSavePoint = "audit_log"

// AuditService records the audit trail. A failed write is logged and never reaches the caller.
type AuditService interface {
	LogCreate(ctx context.Context, tx *gorm.DB, userID *uint, action string, entityName string, entityID uint, newValue interface{})
	LogUpdate(ctx context.Context, tx *gorm.DB, userID *uint, action string, entityName string, entityID uint, oldValue, newValue interface{})
	LogDelete(ctx context.Context, tx *gorm.DB, userID *uint, action string, entityName string, entityID uint, oldValue interface{})
	LogEvent(ctx context.Context, tx *gorm.DB, userID *uint, action string)
}

type auditService struct {
	log       *logrus.Logger
	auditRepo repository.AuditLogRepository
}

func NewAuditService(log *logrus.Logger, auditRepo repository.AuditLogRepository) AuditService {
	return &auditService{
		log:       log,
		auditRepo: auditRepo,
	}
}

// LogCreate logs a create action
func (s *auditService) LogCreate(ctx context.Context, tx *gorm.DB, userID *uint, action string, entityName string, entityID uint, newValue interface{}) {
	s.write(ctx, tx, userID, action, entityName, entityID, nil, newValue)
}

// LogUpdate logs an update action with old and new values
func (s *auditService) LogUpdate(ctx context.Context, tx *gorm.DB, userID *uint, action string, entityName string, entityID uint, oldValue, newValue interface{}) {
	s.write(ctx, tx, userID, action, entityName, entityID, oldValue, newValue)
}

// LogDelete logs a delete action with old value
func (s *auditService) LogDelete(ctx context.Context, tx *gorm.DB, userID *uint, action string, entityName string, entityID uint, oldValue interface{}) {
	s.write(ctx, tx, userID, action, entityName, entityID, oldValue, nil)
}

// LogEvent records an action that touches no entity, such as a logout
func (s *auditService) LogEvent(ctx context.Context, tx *gorm.DB, userID *uint, action string) {
	auditLog := &entity.AuditLog{
		UserID: userID,
		Action: action,
	}

	s.create(ctx, tx, auditLog)
}

func (s *auditService) write(ctx context.Context, tx *gorm.DB, userID *uint, action, entityName string, entityID uint, oldValue, newValue interface{}) {
	id := entityID
	auditLog := &entity.AuditLog{
		UserID:     userID,
		Action:     action,
		EntityType: entityName,
		EntityID:   &id,
		Metadata: entity.JSON{
			"entity":    entityName,
			"entity_id": entityID,
			"old_value": oldValue,
			"new_value": newValue,
		},
	}

	s.create(ctx, tx, auditLog)
}

// create writes the row behind a savepoint so a failed insert leaves the caller's transaction usable
func (s *auditService) create(ctx context.Context, tx *gorm.DB, auditLog *entity.AuditLog) {
	db := tx.WithContext(ctx)
	if _, inTx := db.Statement.ConnPool.(gorm.TxCommitter); !inTx {
		if err := s.auditRepo.Create(db, auditLog); err != nil {
			s.log.Warnf("Failed to create audit log %s: %+v", auditLog.Action, err)
		}
		return
	}

	if err := db.SavePoint(auditSavePoint).Error; err != nil {
		s.log.Warnf("Failed to create audit savepoint: %+v", err)
		return
	}

	if err := s.auditRepo.Create(db, auditLog); err != nil {
		s.log.Warnf("Failed to create audit log %s: %+v", auditLog.Action, err)
		if rbErr := db.RollbackTo(auditSavePoint).Error; rbErr != nil {
			s.log.Warnf("Failed to roll back audit savepoint: %+v", rbErr)
		}
	}
}
