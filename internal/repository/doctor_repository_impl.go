package repository

import (
	"errors"

	"hospital-admin-api/internal/domain/entity"
	domainRepo "hospital-admin-api/internal/domain/repository"

	"gorm.io/gorm"
)

type doctorRepository struct{}

func NewDoctorRepository() domainRepo.DoctorRepository {
	return &doctorRepository{}
}

func (r *doctorRepository) Create(db *gorm.DB, doctor *entity.Doctor) error {
	return db.Create(doctor).Error
}

func (r *doctorRepository) FindAll(db *gorm.DB) ([]entity.Doctor, error) {
	var doctors []entity.Doctor
	err := db.Preload("Appointments", orderBySlot).
		Preload("Appointments.Patient").
		Order("name ASC").
		Find(&doctors).Error
	if err != nil {
		return nil, err
	}
	return doctors, nil
}

func (r *doctorRepository) FindByID(db *gorm.DB, id uint) (*entity.Doctor, error) {
	var doctor entity.Doctor
	err := db.Where("id = ?", id).First(&doctor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &doctor, nil
}

func (r *doctorRepository) FindByIDWithAppointments(db *gorm.DB, id uint) (*entity.Doctor, error) {
	var doctor entity.Doctor
	err := db.Preload("Appointments", orderBySlot).
		Preload("Appointments.Patient").
		Where("id = ?", id).
		First(&doctor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &doctor, nil
}

func (r *doctorRepository) FindByCRM(db *gorm.DB, crm string, excludeID uint) (*entity.Doctor, error) {
	return r.findOne(db.Where("crm = ?", crm), excludeID)
}

func (r *doctorRepository) FindByCPF(db *gorm.DB, cpf string, excludeID uint) (*entity.Doctor, error) {
	return r.findOne(db.Where("cpf = ?", cpf), excludeID)
}

func (r *doctorRepository) findOne(query *gorm.DB, excludeID uint) (*entity.Doctor, error) {
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	var doctor entity.Doctor
	err := query.First(&doctor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &doctor, nil
}

func (r *doctorRepository) Update(db *gorm.DB, doctor *entity.Doctor) error {
	return db.Omit("Appointments").Save(doctor).Error
}

func (r *doctorRepository) Delete(db *gorm.DB, id uint) (int64, error) {
	result := db.Delete(&entity.Doctor{}, id)
	return result.RowsAffected, result.Error
}

func (r *doctorRepository) Count(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&entity.Doctor{}).Count(&count).Error
	return count, err
}
