package repository

import (
	"hospital-admin-api/internal/domain/entity"

	"gorm.io/gorm"
)

type UserRepository interface {
	Create(db *gorm.DB, user *entity.User) error
	FindAll(db *gorm.DB) ([]entity.User, error)
	FindByEmail(db *gorm.DB, email string) (*entity.User, error)
	FindByID(db *gorm.DB, id uint) (*entity.User, error)
	Update(db *gorm.DB, user *entity.User) error
	Delete(db *gorm.DB, id uint) (int64, error)
}
