package handler

import (
	"net/http"
	"strconv"

	"hospital-admin-api/internal/delivery/dto"
	"hospital-admin-api/internal/usecase"
	"hospital-admin-api/pkg/response"

	"github.com/gorilla/mux"
)

type AuditLogHandler struct {
	auditLogUsecase usecase.AuditLogUsecase
}

func NewAuditLogHandler(auditLogUsecase usecase.AuditLogUsecase) *AuditLogHandler {
	return &AuditLogHandler{
		auditLogUsecase: auditLogUsecase,
	}
}

// GetAllAuditLogs lists audit entries filtered by userId, action and entityType
func (h *AuditLogHandler) GetAllAuditLogs(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query := &dto.AuditLogQuery{
		Action:     q.Get("action"),
		EntityType: q.Get("entityType"),
	}

	if v := q.Get("userId"); v != "" {
		userID, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			response.BadRequest(w, r, "Invalid userId")
			return
		}
		id := uint(userID)
		query.UserID = &id
	}

	if v := q.Get("page"); v != "" {
		page, err := strconv.Atoi(v)
		if err != nil {
			response.BadRequest(w, r, "Invalid page")
			return
		}
		query.Page = page
	}

	if v := q.Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil {
			response.BadRequest(w, r, "Invalid limit")
			return
		}
		query.Limit = limit
	}

	logs, err := h.auditLogUsecase.GetAllAuditLogs(r.Context(), query)
	if err != nil {
		response.InternalServerError(w, r)
		return
	}

	response.OK(w, logs)
}

func (h *AuditLogHandler) GetAuditLog(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	auditLogID, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		response.BadRequest(w, r, "Invalid audit log ID")
		return
	}

	auditLog, err := h.auditLogUsecase.GetAuditLog(r.Context(), auditLogID)
	if err != nil {
		switch err {
		case usecase.ErrAuditLogNotFound:
			response.NotFound(w, r, "Audit log not found")
		default:
			response.InternalServerError(w, r)
		}
		return
	}

	response.OK(w, auditLog)
}
