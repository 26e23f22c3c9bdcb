package repository

import (
	"errors"
	"time"

	"hospital-admin-api/internal/domain/entity"
	domainRepo "hospital-admin-api/internal/domain/repository"

	"gorm.io/gorm"
)

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

// orderBySlot sorts appointments chronologically; usable as a Preload condition
func orderBySlot(db *gorm.DB) *gorm.DB {
	return db.Order("appointment_date ASC").Order("appointment_time ASC")
}

func withParties(db *gorm.DB) *gorm.DB {
	return db.Preload("Patient").Preload("Doctor")
}

func (r *appointmentRepository) Create(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Omit("Patient", "Doctor").Create(appointment).Error
}

func (r *appointmentRepository) FindAll(db *gorm.DB) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Scopes(withParties, orderBySlot).Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindByID(db *gorm.DB, id uint) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.Scopes(withParties).Where("id = ?", id).First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindByDoctorID(db *gorm.DB, doctorID uint) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Scopes(withParties, orderBySlot).
		Where("doctor_id = ?", doctorID).
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindByPatientID(db *gorm.DB, patientID uint) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Scopes(withParties, orderBySlot).
		Where("patient_id = ?", patientID).
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindByDoctorFrom(db *gorm.DB, doctorID uint, from time.Time) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Scopes(orderBySlot).
		Preload("Patient").
		Where("doctor_id = ? AND appointment_date >= ?", doctorID, from).
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindSlotConflict(db *gorm.DB, doctorID uint, date time.Time, clock string, excludeID uint) (*entity.Appointment, error) {
	query := db.Where("doctor_id = ? AND appointment_date = ? AND appointment_time = ?", doctorID, date, clock)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}

	var appointment entity.Appointment
	err := query.First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

// FindUpcoming returns the next appointments still expecting the patient, starting at from
func (r *appointmentRepository) FindUpcoming(db *gorm.DB, from time.Time, limit int) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Scopes(withParties, orderBySlot).
		Where("appointment_date >= ?", from).
		Where("status IN ?", []entity.AppointmentStatus{
			entity.AppointmentStatusScheduled,
			entity.AppointmentStatusConfirmed,
		}).
		Limit(limit).
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) Update(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Omit("Patient", "Doctor").Save(appointment).Error
}

func (r *appointmentRepository) Delete(db *gorm.DB, id uint) (int64, error) {
	result := db.Delete(&entity.Appointment{}, id)
	return result.RowsAffected, result.Error
}

func (r *appointmentRepository) Count(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&entity.Appointment{}).Count(&count).Error
	return count, err
}

func (r *appointmentRepository) CountByDate(db *gorm.DB, date time.Time) (int64, error) {
	var count int64
	err := db.Model(&entity.Appointment{}).Where("appointment_date = ?", date).Count(&count).Error
	return count, err
}

func (r *appointmentRepository) CountByPatientID(db *gorm.DB, patientID uint) (int64, error) {
	var count int64
	err := db.Model(&entity.Appointment{}).Where("patient_id = ?", patientID).Count(&count).Error
	return count, err
}

func (r *appointmentRepository) CountByDoctorID(db *gorm.DB, doctorID uint) (int64, error) {
	var count int64
	err := db.Model(&entity.Appointment{}).Where("doctor_id = ?", doctorID).Count(&count).Error
	return count, err
}
