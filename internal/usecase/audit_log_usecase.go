package usecase

import (
	"context"
	"errors"

	"hospital-admin-api/internal/converter"
	"hospital-admin-api/internal/delivery/dto"
	"hospital-admin-api/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrAuditLogNotFound = errors.New("audit log not found")
)

const (
	defaultAuditPageSize = 20
	maxAuditPageSize     = 100
	// maxAuditPage keeps the offset well inside int range
	maxAuditPage         = 1_000_000
)

type AuditLogUsecase interface {
	GetAllAuditLogs(ctx context.Context, query *dto.AuditLogQuery) (*dto.AuditLogListResponse, error)
	GetAuditLog(ctx context.Context, id int64) (*dto.AuditLogResponse, error)
}

type auditLogUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	auditLogRepo repository.AuditLogRepository
}

func NewAuditLogUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	auditLogRepo repository.AuditLogRepository,
) AuditLogUsecase {
	return &auditLogUsecase{
		db:           db,
		log:          log,
		auditLogRepo: auditLogRepo,
	}
}

func (u *auditLogUsecase) GetAllAuditLogs(ctx context.Context, query *dto.AuditLogQuery) (*dto.AuditLogListResponse, error) {
	page, limit := query.Page, query.Limit
	if page < 1 {
		page = 1
	}
	if page > maxAuditPage {
		page = maxAuditPage
	}
	if limit < 1 {
		limit = defaultAuditPageSize
	}
	if limit > maxAuditPageSize {
		limit = maxAuditPageSize
	}

	logs, total, err := u.auditLogRepo.FindAll(u.db.WithContext(ctx), repository.AuditLogFilter{
		UserID:     query.UserID,
		Action:     query.Action,
		EntityType: query.EntityType,
		Limit:      limit,
		Offset:     (page - 1) * limit,
	})
	if err != nil {
		u.log.Warnf("Failed to find all audit logs: %+v", err)
		return nil, err
	}

	return &dto.AuditLogListResponse{
		Logs:  converter.AuditLogsToResponses(logs),
		Total: total,
		Page:  page,
		Limit: limit,
	}, nil
}

func (u *auditLogUsecase) GetAuditLog(ctx context.Context, id int64) (*dto.AuditLogResponse, error) {
	auditLog, err := u.auditLogRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find audit log %d: %+v", id, err)
		return nil, err
	}
	if auditLog == nil {
		return nil, ErrAuditLogNotFound
	}

	return converter.AuditLogToResponse(auditLog), nil
}
