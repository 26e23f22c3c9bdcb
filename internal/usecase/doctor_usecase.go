package usecase

import (
	"context"
	"errors"
	"time"

	"hospital-admin-api/internal/converter"
	"hospital-admin-api/internal/delivery/dto"
	"hospital-admin-api/internal/domain/entity"
	"hospital-admin-api/internal/domain/repository"
	"hospital-admin-api/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrDoctorNotFound        = errors.New("doctor not found")
	ErrDoctorCRMExists       = errors.New("doctor CRM already exists")
	ErrDoctorCPFExists       = errors.New("doctor CPF already exists")
	ErrDoctorHasAppointments = errors.New("cannot delete: doctor has scheduled appointments")
)

type DoctorUsecase interface {
	CreateDoctor(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error)
	GetDoctor(ctx context.Context, id uint) (*dto.DoctorResponse, error)
	GetAllDoctors(ctx context.Context) ([]dto.DoctorResponse, error)
	UpdateDoctor(ctx context.Context, id uint, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error)
	DeleteDoctor(ctx context.Context, id uint) error
	GetSchedule(ctx context.Context, id uint) (*dto.DoctorScheduleResponse, error)
}

type doctorUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	doctorRepo      repository.DoctorRepository
	appointmentRepo repository.AppointmentRepository
	auditService    service.AuditService
	dashboardCache  *service.DashboardCache
	loc             *time.Location
}

func NewDoctorUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
	appointmentRepo repository.AppointmentRepository,
	auditService service.AuditService,
	dashboardCache *service.DashboardCache,
	loc *time.Location,
) DoctorUsecase {
	return &doctorUsecase{
		db:              db,
		log:             log,
		doctorRepo:      doctorRepo,
		appointmentRepo: appointmentRepo,
		auditService:    auditService,
		dashboardCache:  dashboardCache,
		loc:             loc,
	}
}

func (u *doctorUsecase) CreateDoctor(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.ensureUnique(tx, &req.CRM, &req.CPF, 0); err != nil {
		return nil, err
	}

	doctor := &entity.Doctor{
		Name:      req.Name,
		CPF:       req.CPF,
		Specialty: req.Specialty,
		CRM:       req.CRM,
		Address:   req.Address,
	}

	if err := u.doctorRepo.Create(tx, doctor); err != nil {
		return nil, u.translateWriteError(err, "create")
	}

	response := converter.DoctorToResponse(doctor)
	u.auditService.LogCreate(ctx, tx, actorFromContext(ctx), entity.AuditActionDoctorCreate, entity.AuditEntityDoctor, doctor.ID, response)

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.dashboardCache.Invalidate(ctx)
	return response, nil
}

func (u *doctorUsecase) GetDoctor(ctx context.Context, id uint) (*dto.DoctorResponse, error) {
	doctor, err := u.doctorRepo.FindByIDWithAppointments(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find doctor %d: %+v", id, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) GetAllDoctors(ctx context.Context) ([]dto.DoctorResponse, error) {
	doctors, err := u.doctorRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find doctors: %+v", err)
		return nil, err
	}

	return converter.DoctorsToResponses(doctors), nil
}

func (u *doctorUsecase) UpdateDoctor(ctx context.Context, id uint, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	doctor, err := u.doctorRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find doctor %d: %+v", id, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}
	oldValue := converter.DoctorToResponse(doctor)

	if err := u.ensureUnique(tx, req.CRM, req.CPF, doctor.ID); err != nil {
		return nil, err
	}

	if req.Name != nil {
		doctor.Name = *req.Name
	}
	if req.CPF != nil {
		doctor.CPF = *req.CPF
	}
	if req.Specialty != nil {
		doctor.Specialty = *req.Specialty
	}
	if req.CRM != nil {
		doctor.CRM = *req.CRM
	}
	if req.Address != nil {
		doctor.Address = *req.Address
	}

	if err := u.doctorRepo.Update(tx, doctor); err != nil {
		return nil, u.translateWriteError(err, "update")
	}

	updated, err := u.doctorRepo.FindByIDWithAppointments(tx, id)
	if err != nil {
		u.log.Warnf("Failed to reload doctor %d: %+v", id, err)
		return nil, err
	}
	response := converter.DoctorToResponse(updated)

	u.auditService.LogUpdate(ctx, tx, actorFromContext(ctx), entity.AuditActionDoctorUpdate, entity.AuditEntityDoctor, id, oldValue, response)

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.dashboardCache.Invalidate(ctx)
	return response, nil
}

// DeleteDoctor refuses to remove a doctor still referenced by any appointment
func (u *doctorUsecase) DeleteDoctor(ctx context.Context, id uint) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	doctor, err := u.doctorRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find doctor %d: %+v", id, err)
		return err
	}
	if doctor == nil {
		return ErrDoctorNotFound
	}

	count, err := u.appointmentRepo.CountByDoctorID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to count appointments of doctor %d: %+v", id, err)
		return err
	}
	if count > 0 {
		return ErrDoctorHasAppointments
	}

	rows, err := u.doctorRepo.Delete(tx, id)
	if err != nil {
		if isForeignKeyError(err, "doctor") {
			return ErrDoctorHasAppointments
		}
		u.log.Warnf("Failed to delete doctor %d: %+v", id, err)
		return err
	}
	if rows == 0 {
		return ErrDoctorNotFound
	}

	u.auditService.LogDelete(ctx, tx, actorFromContext(ctx), entity.AuditActionDoctorDelete, entity.AuditEntityDoctor, id, converter.DoctorToResponse(doctor))

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	u.dashboardCache.Invalidate(ctx)
	return nil
}

// GetSchedule lists the doctor's appointments from today onwards
func (u *doctorUsecase) GetSchedule(ctx context.Context, id uint) (*dto.DoctorScheduleResponse, error) {
	db := u.db.WithContext(ctx)

	doctor, err := u.doctorRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find doctor %d: %+v", id, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	appointments, err := u.appointmentRepo.FindByDoctorFrom(db, id, entity.Today(u.loc))
	if err != nil {
		u.log.Warnf("Failed to find schedule of doctor %d: %+v", id, err)
		return nil, err
	}

	return &dto.DoctorScheduleResponse{
		Doctor:       *converter.DoctorToSummary(doctor),
		Appointments: converter.AppointmentsToResponses(appointments),
	}, nil
}

// ensureUnique checks the unique keys present in the request against every other doctor
func (u *doctorUsecase) ensureUnique(tx *gorm.DB, crm, cpf *string, excludeID uint) error {
	if crm != nil {
		existing, err := u.doctorRepo.FindByCRM(tx, *crm, excludeID)
		if err != nil {
			u.log.Warnf("Failed to check doctor CRM: %+v", err)
			return err
		}
		if existing != nil {
			return ErrDoctorCRMExists
		}
	}

	if cpf != nil {
		existing, err := u.doctorRepo.FindByCPF(tx, *cpf, excludeID)
		if err != nil {
			u.log.Warnf("Failed to check doctor CPF: %+v", err)
			return err
		}
		if existing != nil {
			return ErrDoctorCPFExists
		}
	}

	return nil
}

func (u *doctorUsecase) translateWriteError(err error, op string) error {
	switch {
	case isDuplicateKeyError(err, "crm"):
		return ErrDoctorCRMExists
	case isDuplicateKeyError(err, "cpf"):
		return ErrDoctorCPFExists
	}
	u.log.Warnf("Failed to %s doctor: %+v", op, err)
	return err
}
