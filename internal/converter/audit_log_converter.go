package converter

import (
	"hospital-admin-api/internal/delivery/dto"
	"hospital-admin-api/internal/domain/entity"
)

// AuditLogToResponse converts a AuditLog entity to AuditLogResponse DTO
func AuditLogToResponse(log *entity.AuditLog) *dto.AuditLogResponse {
	if log == nil {
		return nil
	}

	return &dto.AuditLogResponse{
		ID:         log.ID,
		UserID:     log.UserID,
		User:       UserToResponse(log.User),
		Action:     log.Action,
		EntityType: log.EntityType,
		EntityID:   log.EntityID,
		Metadata:   log.Metadata,
		CreatedAt:  log.CreatedAt,
	}
}

// AuditLogsToResponses converts a slice of AuditLog entities to slice of AuditLogResponse DTOs
func AuditLogsToResponses(logs []entity.AuditLog) []dto.AuditLogResponse {
	responses := make([]dto.AuditLogResponse, len(logs))
	for i := range logs {
		responses[i] = *AuditLogToResponse(&logs[i])
	}
	return responses
}
