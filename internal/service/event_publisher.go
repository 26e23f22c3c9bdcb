package service

import (
	"context"
	"time"

	"hospital-admin-api/internal/domain/entity"
)

// Appointment event types
const (
	EventAppointmentCreated   = "appointment.created"
	EventAppointmentUpdated   = "appointment.updated"
	EventAppointmentConfirmed = "appointment.confirmed"
	EventAppointmentCancelled = "appointment.cancelled"
	EventAppointmentCompleted = "appointment.completed"
	EventAppointmentDeleted   = "appointment.deleted"
)

// AppointmentEvent is the payload published after a committed appointment change
type AppointmentEvent struct {
	Type          string                   `json:"type"`
	AppointmentID uint                     `json:"appointmentId"`
	DoctorID      uint                     `json:"doctorId"`
	PatientID     uint                     `json:"patientId"`
	Date          string                   `json:"date"`
	Time          string                   `json:"time"`
	Status        entity.AppointmentStatus `json:"status"`
	OccurredAt    time.Time                `json:"occurredAt"`
}

// NewAppointmentEvent snapshots an appointment into an event of the given type
func NewAppointmentEvent(eventType string, a *entity.Appointment) AppointmentEvent {
	return AppointmentEvent{
		Type:          eventType,
		AppointmentID: a.ID,
		DoctorID:      a.DoctorID,
		PatientID:     a.PatientID,
		Date:          a.Date.Format("2006-01-02"),
		Time:          a.Time,
		Status:        a.Status,
		OccurredAt:    time.Now().UTC(),
	}
}

// StatusEventType maps a status to the event announcing it
func StatusEventType(status entity.AppointmentStatus) string {
	switch status {
	case entity.AppointmentStatusConfirmed:
		return EventAppointmentConfirmed
	case entity.AppointmentStatusCancelled:
		return EventAppointmentCancelled
	case entity.AppointmentStatusCompleted:
		return EventAppointmentCompleted
	default:
		return EventAppointmentUpdated
	}
}

// EventPublisher delivers appointment events to downstream consumers.
// Implementations must not block the request path for long.
type EventPublisher interface {
	Publish(ctx context.Context, event AppointmentEvent) error
	Close() error
}

type noopEventPublisher struct{}

// NewNoopEventPublisher returns a publisher that drops every event
func NewNoopEventPublisher() EventPublisher {
	return noopEventPublisher{}
}

func (noopEventPublisher) Publish(context.Context, AppointmentEvent) error { return nil }

func (noopEventPublisher) Close() error { return nil }
