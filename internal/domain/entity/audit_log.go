package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// AuditLog represents a system audit trail entry
type AuditLog struct {
	ID         int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID     *uint     `gorm:"index" json:"userId,omitempty"`
	Action     string    `gorm:"type:varchar(100);not null;index" json:"action"`
	EntityType string    `gorm:"type:varchar(50);index" json:"entityType,omitempty"`
	EntityID   *uint     `json:"entityId,omitempty"`
	Metadata   JSON      `gorm:"type:jsonb" json:"metadata,omitempty"`
	CreatedAt  time.Time `gorm:"autoCreateTime;index" json:"createdAt"`

	// Relationships
	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL" json:"user,omitempty"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}

// JSON type for GORM JSONB support
type JSON map[string]interface{}

// Value returns json value, implement driver.Valuer interface
func (j JSON) Value() (driver.Value, error) {
	if len(j) == 0 {
		return nil, nil
	}
	return json.Marshal(j)
}

// Scan scan value into Jsonb, implements sql.Scanner interface
func (j *JSON) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New(fmt.Sprint("Failed to unmarshal JSONB value:", value))
	}

	result := map[string]interface{}{}
	err := json.Unmarshal(bytes, &result)
	*j = JSON(result)
	return err
}

// Common audit actions
const (
	AuditActionUserLogin    = "user.login"
	AuditActionUserLogout   = "user.logout"
	AuditActionUserRegister = "user.register"
	AuditActionUserUpdate   = "user.update"
	AuditActionUserDelete   = "user.delete"

	AuditActionPatientCreate = "patient.create"
	AuditActionPatientUpdate = "patient.update"
	AuditActionPatientDelete = "patient.delete"

	AuditActionDoctorCreate = "doctor.create"
	AuditActionDoctorUpdate = "doctor.update"
	AuditActionDoctorDelete = "doctor.delete"

	AuditActionAppointmentCreate   = "appointment.create"
	AuditActionAppointmentUpdate   = "appointment.update"
	AuditActionAppointmentConfirm  = "appointment.confirm"
	AuditActionAppointmentCancel   = "appointment.cancel"
	AuditActionAppointmentComplete = "appointment.complete"
	AuditActionAppointmentDelete   = "appointment.delete"
)

// Audited entity types
const (
	AuditEntityUser        = "user"
	AuditEntityPatient     = "patient"
	AuditEntityDoctor      = "doctor"
	AuditEntityAppointment = "appointment"
)
