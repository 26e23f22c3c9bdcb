package dto

import (
	"time"

	"hospital-admin-api/internal/domain/entity"
)

// Request DTOs

type AuditLogQuery struct {
	UserID     *uint
	Action     string
	EntityType string
	Page       int
	Limit      int
}

// Response DTOs

type AuditLogResponse struct {
	ID         int64         `json:"id"`
	UserID     *uint         `json:"userId"`
	User       *UserResponse `json:"user,omitempty"`
	Action     string        `json:"action"`
	EntityType string        `json:"entityType,omitempty"`
	EntityID   *uint         `json:"entityId,omitempty"`
	Metadata   entity.JSON   `json:"metadata,omitempty"`
	CreatedAt  time.Time     `json:"createdAt"`
}

type AuditLogListResponse struct {
	Logs  []AuditLogResponse `json:"logs"`
	Total int64              `json:"total"`
	Page  int                `json:"page"`
	Limit int                `json:"limit"`
}
