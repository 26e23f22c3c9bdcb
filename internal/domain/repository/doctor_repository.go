package repository

import (
	"hospital-admin-api/internal/domain/entity"

	"gorm.io/gorm"
)

type DoctorRepository interface {
	Create(db *gorm.DB, doctor *entity.Doctor) error
	FindAll(db *gorm.DB) ([]entity.Doctor, error)
	FindByID(db *gorm.DB, id uint) (*entity.Doctor, error)
	FindByIDWithAppointments(db *gorm.DB, id uint) (*entity.Doctor, error)
	FindByCRM(db *gorm.DB, crm string, excludeID uint) (*entity.Doctor, error)
	FindByCPF(db *gorm.DB, cpf string, excludeID uint) (*entity.Doctor, error)
	Update(db *gorm.DB, doctor *entity.Doctor) error
	Delete(db *gorm.DB, id uint) (int64, error)
	Count(db *gorm.DB) (int64, error)
}
