package repository

import (
	"time"

	"hospital-admin-api/internal/domain/entity"

	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	FindAll(db *gorm.DB) ([]entity.Appointment, error)
	FindByID(db *gorm.DB, id uint) (*entity.Appointment, error)
	FindByDoctorID(db *gorm.DB, doctorID uint) ([]entity.Appointment, error)
	FindByPatientID(db *gorm.DB, patientID uint) ([]entity.Appointment, error)
	FindByDoctorFrom(db *gorm.DB, doctorID uint, from time.Time) ([]entity.Appointment, error)
	// FindSlotConflict returns the appointment occupying the slot, ignoring excludeID (0 ignores none)
	FindSlotConflict(db *gorm.DB, doctorID uint, date time.Time, clock string, excludeID uint) (*entity.Appointment, error)
	FindUpcoming(db *gorm.DB, from time.Time, limit int) ([]entity.Appointment, error)
	Update(db *gorm.DB, appointment *entity.Appointment) error
	Delete(db *gorm.DB, id uint) (int64, error)
	Count(db *gorm.DB) (int64, error)
	CountByDate(db *gorm.DB, date time.Time) (int64, error)
	CountByPatientID(db *gorm.DB, patientID uint) (int64, error)
	CountByDoctorID(db *gorm.DB, doctorID uint) (int64, error)
}
