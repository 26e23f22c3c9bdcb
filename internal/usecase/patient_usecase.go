package usecase

import (
	"context"
	"errors"

	"hospital-admin-api/internal/converter"
	"hospital-admin-api/internal/delivery/dto"
	"hospital-admin-api/internal/domain/entity"
	"hospital-admin-api/internal/domain/repository"
	"hospital-admin-api/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrPatientNotFound        = errors.New("patient not found")
	ErrPatientEmailExists     = errors.New("patient email already exists")
	ErrPatientCPFExists       = errors.New("patient CPF already exists")
	ErrPatientHasAppointments = errors.New("cannot delete: patient has scheduled appointments")
	ErrInvalidDateFormat      = errors.New("invalid date format, use YYYY-MM-DD")
)

type PatientUsecase interface {
	CreatePatient(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error)
	GetPatient(ctx context.Context, id uint) (*dto.PatientResponse, error)
	GetAllPatients(ctx context.Context) ([]dto.PatientResponse, error)
	UpdatePatient(ctx context.Context, id uint, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error)
	DeletePatient(ctx context.Context, id uint) error
}

type patientUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	patientRepo     repository.PatientRepository
	appointmentRepo repository.AppointmentRepository
	auditService    service.AuditService
	dashboardCache  *service.DashboardCache
}

func NewPatientUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	appointmentRepo repository.AppointmentRepository,
	auditService service.AuditService,
	dashboardCache *service.DashboardCache,
) PatientUsecase {
	return &patientUsecase{
		db:              db,
		log:             log,
		patientRepo:     patientRepo,
		appointmentRepo: appointmentRepo,
		auditService:    auditService,
		dashboardCache:  dashboardCache,
	}
}

func (u *patientUsecase) CreatePatient(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error) {
	birthDate, err := entity.ParseDate(req.BirthDate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.ensureUnique(tx, &req.Email, &req.CPF, 0); err != nil {
		return nil, err
	}

	patient := &entity.Patient{
		Name:      req.Name,
		CPF:       req.CPF,
		BirthDate: birthDate,
		Phone:     req.Phone,
		Email:     req.Email,
		Address:   req.Address,
	}

	if err := u.patientRepo.Create(tx, patient); err != nil {
		return nil, u.translateWriteError(err, "create")
	}

	response := converter.PatientToResponse(patient)
	u.auditService.LogCreate(ctx, tx, actorFromContext(ctx), entity.AuditActionPatientCreate, entity.AuditEntityPatient, patient.ID, response)

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.dashboardCache.Invalidate(ctx)
	return response, nil
}

func (u *patientUsecase) GetPatient(ctx context.Context, id uint) (*dto.PatientResponse, error) {
	patient, err := u.patientRepo.FindByIDWithAppointments(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find patient %d: %+v", id, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) GetAllPatients(ctx context.Context) ([]dto.PatientResponse, error) {
	patients, err := u.patientRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find patients: %+v", err)
		return nil, err
	}

	return converter.PatientsToResponses(patients), nil
}

func (u *patientUsecase) UpdatePatient(ctx context.Context, id uint, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient, err := u.patientRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find patient %d: %+v", id, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}
	oldValue := converter.PatientToResponse(patient)

	if err := u.ensureUnique(tx, req.Email, req.CPF, patient.ID); err != nil {
		return nil, err
	}

	if req.Name != nil {
		patient.Name = *req.Name
	}
	if req.CPF != nil {
		patient.CPF = *req.CPF
	}
	if req.BirthDate != nil {
		birthDate, err := entity.ParseDate(*req.BirthDate)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		patient.BirthDate = birthDate
	}
	if req.Phone != nil {
		patient.Phone = *req.Phone
	}
	if req.Email != nil {
		patient.Email = *req.Email
	}
	if req.Address != nil {
		patient.Address = *req.Address
	}

	if err := u.patientRepo.Update(tx, patient); err != nil {
		return nil, u.translateWriteError(err, "update")
	}

	updated, err := u.patientRepo.FindByIDWithAppointments(tx, id)
	if err != nil {
		u.log.Warnf("Failed to reload patient %d: %+v", id, err)
		return nil, err
	}
	response := converter.PatientToResponse(updated)

	u.auditService.LogUpdate(ctx, tx, actorFromContext(ctx), entity.AuditActionPatientUpdate, entity.AuditEntityPatient, id, oldValue, response)

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.dashboardCache.Invalidate(ctx)
	return response, nil
}

// DeletePatient refuses to remove a patient still referenced by any appointment
func (u *patientUsecase) DeletePatient(ctx context.Context, id uint) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient, err := u.patientRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find patient %d: %+v", id, err)
		return err
	}
	if patient == nil {
		return ErrPatientNotFound
	}

	count, err := u.appointmentRepo.CountByPatientID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to count appointments of patient %d: %+v", id, err)
		return err
	}
	if count > 0 {
		return ErrPatientHasAppointments
	}

	rows, err := u.patientRepo.Delete(tx, id)
	if err != nil {
		if isForeignKeyError(err, "patient") {
			return ErrPatientHasAppointments
		}
		u.log.Warnf("Failed to delete patient %d: %+v", id, err)
		return err
	}
	if rows == 0 {
		return ErrPatientNotFound
	}

	u.auditService.LogDelete(ctx, tx, actorFromContext(ctx), entity.AuditActionPatientDelete, entity.AuditEntityPatient, id, converter.PatientToResponse(patient))

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	u.dashboardCache.Invalidate(ctx)
	return nil
}

// ensureUnique checks the unique keys present in the request against every other patient
func (u *patientUsecase) ensureUnique(tx *gorm.DB, email, cpf *string, excludeID uint) error {
	if email != nil {
		existing, err := u.patientRepo.FindByEmail(tx, *email, excludeID)
		if err != nil {
			u.log.Warnf("Failed to check patient email: %+v", err)
			return err
		}
		if existing != nil {
			return ErrPatientEmailExists
		}
	}

	if cpf != nil {
		existing, err := u.patientRepo.FindByCPF(tx, *cpf, excludeID)
		if err != nil {
			u.log.Warnf("Failed to check patient CPF: %+v", err)
			return err
		}
		if existing != nil {
			return ErrPatientCPFExists
		}
	}

	return nil
}

// translateWriteError maps unique index violations that slipped past ensureUnique
func (u *patientUsecase) translateWriteError(err error, op string) error {
	switch {
	case isDuplicateKeyError(err, "email"):
		return ErrPatientEmailExists
	case isDuplicateKeyError(err, "cpf"):
		return ErrPatientCPFExists
	}
	u.log.Warnf("Failed to %s patient: %+v", op, err)
	return err
}
