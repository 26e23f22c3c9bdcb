package repository

import (
	"hospital-admin-api/internal/domain/entity"

	"gorm.io/gorm"
)

type PatientRepository interface {
	Create(db *gorm.DB, patient *entity.Patient) error
	FindAll(db *gorm.DB) ([]entity.Patient, error)
	FindByID(db *gorm.DB, id uint) (*entity.Patient, error)
	FindByIDWithAppointments(db *gorm.DB, id uint) (*entity.Patient, error)
	FindByEmail(db *gorm.DB, email string, excludeID uint) (*entity.Patient, error)
	FindByCPF(db *gorm.DB, cpf string, excludeID uint) (*entity.Patient, error)
	Update(db *gorm.DB, patient *entity.Patient) error
	Delete(db *gorm.DB, id uint) (int64, error)
	Count(db *gorm.DB) (int64, error)
}
