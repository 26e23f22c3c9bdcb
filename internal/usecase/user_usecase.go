package usecase

import (
	"context"

	"hospital-admin-api/internal/converter"
	"hospital-admin-api/internal/delivery/dto"
	"hospital-admin-api/internal/domain/entity"
	"hospital-admin-api/internal/domain/repository"
	"hospital-admin-api/internal/service"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserUsecase interface {
	GetAllUsers(ctx context.Context) ([]dto.UserResponse, error)
	GetUser(ctx context.Context, id uint) (*dto.UserResponse, error)
	UpdateUser(ctx context.Context, id uint, req *dto.UpdateUserRequest) (*dto.UserResponse, error)
	DeleteUser(ctx context.Context, id uint) error
}

type userUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	userRepo     repository.UserRepository
	tokenStore   *service.TokenStore
	auditService service.AuditService
}

func NewUserUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	tokenStore *service.TokenStore,
	auditService service.AuditService,
) UserUsecase {
	return &userUsecase{
		db:           db,
		log:          log,
		userRepo:     userRepo,
		tokenStore:   tokenStore,
		auditService: auditService,
	}
}

func (u *userUsecase) GetAllUsers(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := u.userRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find users: %+v", err)
		return nil, err
	}

	return converter.UsersToResponses(users), nil
}

func (u *userUsecase) GetUser(ctx context.Context, id uint) (*dto.UserResponse, error) {
	user, err := u.userRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find user %d: %+v", id, err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	return converter.UserToResponse(user), nil
}

func (u *userUsecase) UpdateUser(ctx context.Context, id uint, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	user, err := u.userRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find user %d: %+v", id, err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	oldValue := converter.UserToResponse(user)

	if req.Email != nil && *req.Email != user.Email {
		existing, err := u.userRepo.FindByEmail(tx, *req.Email)
		if err != nil {
			u.log.Warnf("Failed to find user by email: %+v", err)
			return nil, err
		}
		if existing != nil && existing.ID != user.ID {
			return nil, ErrEmailAlreadyExists
		}
		user.Email = *req.Email
	}
	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Password != nil {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			u.log.Warnf("Failed to hash password: %+v", err)
			return nil, err
		}
		user.Password = string(hashedPassword)
	}

	if err := u.userRepo.Update(tx, user); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to update user %d: %+v", id, err)
		return nil, err
	}

	response := converter.UserToResponse(user)
	u.auditService.LogUpdate(ctx, tx, actorFromContext(ctx), entity.AuditActionUserUpdate, entity.AuditEntityUser, id, oldValue, response)

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return response, nil
}

// DeleteUser removes the operator and revokes every token issued to them
func (u *userUsecase) DeleteUser(ctx context.Context, id uint) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	user, err := u.userRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find user %d: %+v", id, err)
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	// Rows pointing at this user keep their history; user_id is nulled by the foreign key
	u.auditService.LogDelete(ctx, tx, actorFromContext(ctx), entity.AuditActionUserDelete, entity.AuditEntityUser, id, converter.UserToResponse(user))

	if _, err := u.userRepo.Delete(tx, id); err != nil {
		u.log.Warnf("Failed to delete user %d: %+v", id, err)
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	if err := u.tokenStore.RevokeAll(ctx, id); err != nil {
		u.log.Warnf("Failed to revoke tokens of deleted user %d: %+v", id, err)
	}
	return nil
}
