package repository

import (
	"hospital-admin-api/internal/domain/entity"

	"gorm.io/gorm"
)

// AuditLogFilter narrows an audit trail listing; zero values match everything
type AuditLogFilter struct {
	UserID     *uint
	Action     string
	EntityType string
	Limit      int
	Offset     int
}

type AuditLogRepository interface {
	Create(db *gorm.DB, log *entity.AuditLog) error
	FindAll(db *gorm.DB, filter AuditLogFilter) ([]entity.AuditLog, int64, error)
	FindByID(db *gorm.DB, id int64) (*entity.AuditLog, error)
}
