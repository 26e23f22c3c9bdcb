package entity

import "time"

// AppointmentStatus represents the lifecycle state of an appointment
type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "SCHEDULED"
	AppointmentStatusConfirmed AppointmentStatus = "CONFIRMED"
	AppointmentStatusCancelled AppointmentStatus = "CANCELLED"
	AppointmentStatusCompleted AppointmentStatus = "COMPLETED"
)

// IsValid reports whether s is one of the known statuses
func (s AppointmentStatus) IsValid() bool {
	switch s {
	case AppointmentStatusScheduled, AppointmentStatusConfirmed, AppointmentStatusCancelled, AppointmentStatusCompleted:
		return true
	}
	return false
}

// AuditAction is the audit trail action recorded when an appointment enters s
func (s AppointmentStatus) AuditAction() string {
	switch s {
	case AppointmentStatusConfirmed:
		return AuditActionAppointmentConfirm
	case AppointmentStatusCancelled:
		return AuditActionAppointmentCancel
	case AppointmentStatusCompleted:
		return AuditActionAppointmentComplete
	default:
		return AuditActionAppointmentUpdate
	}
}

// Appointment links a patient and a doctor to a date/time slot.
// The (DoctorID, Date, Time) triple is unique.
type Appointment struct {
	ID        uint              `gorm:"primaryKey;autoIncrement" json:"id"`
	DoctorID  uint              `gorm:"not null;uniqueIndex:idx_appointments_slot,priority:1" json:"doctorId"`
	Date      time.Time         `gorm:"column:appointment_date;type:date;not null;uniqueIndex:idx_appointments_slot,priority:2;index" json:"date"`
	Time      string            `gorm:"column:appointment_time;type:varchar(5);not null;uniqueIndex:idx_appointments_slot,priority:3" json:"time"`
	Status    AppointmentStatus `gorm:"type:varchar(20);not null;default:'SCHEDULED';index" json:"status"`
	PatientID uint              `gorm:"not null;index" json:"patientId"`
	CreatedAt time.Time         `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time         `gorm:"autoUpdateTime" json:"updatedAt"`

	// Relationships
	Patient Patient `gorm:"foreignKey:PatientID;constraint:OnDelete:RESTRICT" json:"patient,omitempty"`
	Doctor  Doctor  `gorm:"foreignKey:DoctorID;constraint:OnDelete:RESTRICT" json:"doctor,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// SetStatus moves the appointment to status. Any known status may follow any other.
func (a *Appointment) SetStatus(status AppointmentStatus) bool {
	if !status.IsValid() {
		return false
	}
	a.Status = status
	return true
}

const (
	// DateLayout is the calendar date format used on the wire
	DateLayout = "2006-01-02"
	// ClockLayout is the normalized appointment time format
	ClockLayout = "15:04"
)

// NormalizeClock parses "H:MM" or "HH:MM" and returns the zero-padded "HH:MM" form
func NormalizeClock(raw string) (string, error) {
	t, err := time.Parse(ClockLayout, raw)
	if err != nil {
		return "", err
	}
	return t.Format(ClockLayout), nil
}

// ParseDate accepts "YYYY-MM-DD" or an RFC 3339 timestamp and returns that calendar day at UTC midnight
func ParseDate(raw string) (time.Time, error) {
	t, err := time.Parse(DateLayout, raw)
	if err != nil {
		t, err = time.Parse(time.RFC3339, raw)
		if err != nil {
			return time.Time{}, err
		}
	}
	return TruncateDay(t), nil
}

// Today is the current calendar day in loc, as a UTC-midnight date
func Today(loc *time.Location) time.Time {
	return TruncateDay(time.Now().In(loc))
}

// TruncateDay keeps the calendar day of t in its own location and returns it at UTC midnight
func TruncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
