package repository

import (
	"errors"

	"hospital-admin-api/internal/domain/entity"
	domainRepo "hospital-admin-api/internal/domain/repository"

	"gorm.io/gorm"
)

type patientRepository struct{}

func NewPatientRepository() domainRepo.PatientRepository {
	return &patientRepository{}
}

func (r *patientRepository) Create(db *gorm.DB, patient *entity.Patient) error {
	return db.Create(patient).Error
}

func (r *patientRepository) FindAll(db *gorm.DB) ([]entity.Patient, error) {
	var patients []entity.Patient
	err := db.Preload("Appointments", orderBySlot).
		Preload("Appointments.Doctor").
		Order("name ASC").
		Find(&patients).Error
	if err != nil {
		return nil, err
	}
	return patients, nil
}

func (r *patientRepository) FindByID(db *gorm.DB, id uint) (*entity.Patient, error) {
	var patient entity.Patient
	err := db.Where("id = ?", id).First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &patient, nil
}

func (r *patientRepository) FindByIDWithAppointments(db *gorm.DB, id uint) (*entity.Patient, error) {
	var patient entity.Patient
	err := db.Preload("Appointments", orderBySlot).
		Preload("Appointments.Doctor").
		Where("id = ?", id).
		First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &patient, nil
}

func (r *patientRepository) FindByEmail(db *gorm.DB, email string, excludeID uint) (*entity.Patient, error) {
	return r.findOne(db.Where("email = ?", email), excludeID)
}

func (r *patientRepository) FindByCPF(db *gorm.DB, cpf string, excludeID uint) (*entity.Patient, error) {
	return r.findOne(db.Where("cpf = ?", cpf), excludeID)
}

func (r *patientRepository) findOne(query *gorm.DB, excludeID uint) (*entity.Patient, error) {
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	var patient entity.Patient
	err := query.First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &patient, nil
}

func (r *patientRepository) Update(db *gorm.DB, patient *entity.Patient) error {
	return db.Omit("Appointments").Save(patient).Error
}

func (r *patientRepository) Delete(db *gorm.DB, id uint) (int64, error) {
	result := db.Delete(&entity.Patient{}, id)
	return result.RowsAffected, result.Error
}

func (r *patientRepository) Count(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&entity.Patient{}).Count(&count).Error
	return count, err
}
