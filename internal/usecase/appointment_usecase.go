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
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrAppointmentConflict = errors.New("doctor already has an appointment at this date and time")
	ErrInvalidTimeFormat   = errors.New("invalid time format, use HH:MM")
	ErrInvalidStatus       = errors.New("invalid appointment status")
)

type AppointmentUsecase interface {
	CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	GetAppointment(ctx context.Context, id uint) (*dto.AppointmentResponse, error)
	GetAllAppointments(ctx context.Context) ([]dto.AppointmentResponse, error)
	GetAppointmentsByDoctor(ctx context.Context, doctorID uint) ([]dto.AppointmentResponse, error)
	GetAppointmentsByPatient(ctx context.Context, patientID uint) ([]dto.AppointmentResponse, error)
	UpdateAppointment(ctx context.Context, id uint, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error)
	ConfirmAppointment(ctx context.Context, id uint) (*dto.AppointmentResponse, error)
	CancelAppointment(ctx context.Context, id uint) (*dto.AppointmentResponse, error)
	CompleteAppointment(ctx context.Context, id uint) (*dto.AppointmentResponse, error)
	DeleteAppointment(ctx context.Context, id uint) error
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	patientRepo     repository.PatientRepository
	doctorRepo      repository.DoctorRepository
	auditService    service.AuditService
	eventPublisher  service.EventPublisher
	dashboardCache  *service.DashboardCache
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	patientRepo repository.PatientRepository,
	doctorRepo repository.DoctorRepository,
	auditService service.AuditService,
	eventPublisher service.EventPublisher,
	dashboardCache *service.DashboardCache,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		patientRepo:     patientRepo,
		doctorRepo:      doctorRepo,
		auditService:    auditService,
		eventPublisher:  eventPublisher,
		dashboardCache:  dashboardCache,
	}
}

// CreateAppointment books a slot. The slot check and the insert share one transaction,
// and the unique slot index rejects whatever a concurrent request slips in between.
func (u *appointmentUsecase) CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	date, err := entity.ParseDate(req.Date)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}
	clock, err := entity.NormalizeClock(req.Time)
	if err != nil {
		return nil, ErrInvalidTimeFormat
	}

	appointment := &entity.Appointment{
		DoctorID:  req.DoctorID,
		PatientID: req.PatientID,
		Date:      date,
		Time:      clock,
		Status:    entity.AppointmentStatusScheduled,
	}
	if req.Status != "" && !appointment.SetStatus(entity.AppointmentStatus(req.Status)) {
		return nil, ErrInvalidStatus
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.ensurePatient(tx, req.PatientID); err != nil {
		return nil, err
	}
	if err := u.ensureDoctor(tx, req.DoctorID); err != nil {
		return nil, err
	}
	if err := u.checkSlot(tx, req.DoctorID, date, clock, 0); err != nil {
		return nil, err
	}

	if err := u.appointmentRepo.Create(tx, appointment); err != nil {
		return nil, u.translateWriteError(err, "create")
	}

	created, err := u.appointmentRepo.FindByID(tx, appointment.ID)
	if err != nil {
		u.log.Warnf("Failed to reload appointment %d: %+v", appointment.ID, err)
		return nil, err
	}
	response := converter.AppointmentToResponse(created)

	u.auditService.LogCreate(ctx, tx, actorFromContext(ctx), entity.AuditActionAppointmentCreate, entity.AuditEntityAppointment, created.ID, response)

	if err := tx.Commit().Error; err != nil {
		if isDuplicateKeyError(err, "slot") {
			return nil, ErrAppointmentConflict
		}
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.log.Infof("Appointment created: id=%d, doctor=%d, date=%s, time=%s", created.ID, created.DoctorID, response.Date, created.Time)
	u.afterWrite(ctx, service.EventAppointmentCreated, created)
	return response, nil
}

func (u *appointmentUsecase) GetAppointment(ctx context.Context, id uint) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %d: %+v", id, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) GetAllAppointments(ctx context.Context) ([]dto.AppointmentResponse, error) {
	appointments, err := u.appointmentRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find appointments: %+v", err)
		return nil, err
	}

	return converter.AppointmentsToResponses(appointments), nil
}

func (u *appointmentUsecase) GetAppointmentsByDoctor(ctx context.Context, doctorID uint) ([]dto.AppointmentResponse, error) {
	db := u.db.WithContext(ctx)
	if err := u.ensureDoctor(db, doctorID); err != nil {
		return nil, err
	}

	appointments, err := u.appointmentRepo.FindByDoctorID(db, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find appointments of doctor %d: %+v", doctorID, err)
		return nil, err
	}

	return converter.AppointmentsToResponses(appointments), nil
}

func (u *appointmentUsecase) GetAppointmentsByPatient(ctx context.Context, patientID uint) ([]dto.AppointmentResponse, error) {
	db := u.db.WithContext(ctx)
	if err := u.ensurePatient(db, patientID); err != nil {
		return nil, err
	}

	appointments, err := u.appointmentRepo.FindByPatientID(db, patientID)
	if err != nil {
		u.log.Warnf("Failed to find appointments of patient %d: %+v", patientID, err)
		return nil, err
	}

	return converter.AppointmentsToResponses(appointments), nil
}

// UpdateAppointment merges the request into the stored row. The slot check runs only
// when the request names a doctor, date or time, and always excludes the row itself.
func (u *appointmentUsecase) UpdateAppointment(ctx context.Context, id uint, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appointment, err := u.appointmentRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %d: %+v", id, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	oldValue := converter.AppointmentToResponse(appointment)
	oldStatus := appointment.Status

	if req.Date != nil {
		date, err := entity.ParseDate(*req.Date)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		appointment.Date = date
	}
	if req.Time != nil {
		clock, err := entity.NormalizeClock(*req.Time)
		if err != nil {
			return nil, ErrInvalidTimeFormat
		}
		appointment.Time = clock
	}
	if req.PatientID != nil && *req.PatientID != appointment.PatientID {
		if err := u.ensurePatient(tx, *req.PatientID); err != nil {
			return nil, err
		}
		appointment.PatientID = *req.PatientID
	}
	if req.DoctorID != nil && *req.DoctorID != appointment.DoctorID {
		if err := u.ensureDoctor(tx, *req.DoctorID); err != nil {
			return nil, err
		}
		appointment.DoctorID = *req.DoctorID
	}
	if req.Status != nil && !appointment.SetStatus(entity.AppointmentStatus(*req.Status)) {
		return nil, ErrInvalidStatus
	}

	if req.TouchesSlot() {
		if err := u.checkSlot(tx, appointment.DoctorID, appointment.Date, appointment.Time, appointment.ID); err != nil {
			return nil, err
		}
	}

	// Drop the loaded parties so the new foreign keys are what gets saved
	appointment.Patient = entity.Patient{}
	appointment.Doctor = entity.Doctor{}

	if err := u.appointmentRepo.Update(tx, appointment); err != nil {
		return nil, u.translateWriteError(err, "update")
	}

	updated, err := u.appointmentRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to reload appointment %d: %+v", id, err)
		return nil, err
	}
	response := converter.AppointmentToResponse(updated)

	action := entity.AuditActionAppointmentUpdate
	eventType := service.EventAppointmentUpdated
	if updated.Status != oldStatus || req.OnlyStatus() {
		action = updated.Status.AuditAction()
		eventType = service.StatusEventType(updated.Status)
	}
	u.auditService.LogUpdate(ctx, tx, actorFromContext(ctx), action, entity.AuditEntityAppointment, id, oldValue, response)

	if err := tx.Commit().Error; err != nil {
		if isDuplicateKeyError(err, "slot") {
			return nil, ErrAppointmentConflict
		}
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.afterWrite(ctx, eventType, updated)
	return response, nil
}

// ConfirmAppointment sets CONFIRMED whatever the current status
func (u *appointmentUsecase) ConfirmAppointment(ctx context.Context, id uint) (*dto.AppointmentResponse, error) {
	return u.setStatus(ctx, id, entity.AppointmentStatusConfirmed)
}

// CancelAppointment sets CANCELLED whatever the current status
func (u *appointmentUsecase) CancelAppointment(ctx context.Context, id uint) (*dto.AppointmentResponse, error) {
	return u.setStatus(ctx, id, entity.AppointmentStatusCancelled)
}

// CompleteAppointment sets COMPLETED whatever the current status
func (u *appointmentUsecase) CompleteAppointment(ctx context.Context, id uint) (*dto.AppointmentResponse, error) {
	return u.setStatus(ctx, id, entity.AppointmentStatusCompleted)
}

func (u *appointmentUsecase) setStatus(ctx context.Context, id uint, status entity.AppointmentStatus) (*dto.AppointmentResponse, error) {
	value := string(status)
	return u.UpdateAppointment(ctx, id, &dto.UpdateAppointmentRequest{Status: &value})
}

func (u *appointmentUsecase) DeleteAppointment(ctx context.Context, id uint) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appointment, err := u.appointmentRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %d: %+v", id, err)
		return err
	}
	if appointment == nil {
		return ErrAppointmentNotFound
	}

	rows, err := u.appointmentRepo.Delete(tx, id)
	if err != nil {
		u.log.Warnf("Failed to delete appointment %d: %+v", id, err)
		return err
	}
	if rows == 0 {
		return ErrAppointmentNotFound
	}

	u.auditService.LogDelete(ctx, tx, actorFromContext(ctx), entity.AuditActionAppointmentDelete, entity.AuditEntityAppointment, id, converter.AppointmentToResponse(appointment))

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	u.afterWrite(ctx, service.EventAppointmentDeleted, appointment)
	return nil
}

// checkSlot fails with ErrAppointmentConflict when another appointment holds the slot
func (u *appointmentUsecase) checkSlot(tx *gorm.DB, doctorID uint, date time.Time, clock string, excludeID uint) error {
	existing, err := u.appointmentRepo.FindSlotConflict(tx, doctorID, date, clock, excludeID)
	if err != nil {
		u.log.Warnf("Failed to check appointment slot: %+v", err)
		return err
	}
	if existing != nil {
		return ErrAppointmentConflict
	}
	return nil
}

func (u *appointmentUsecase) ensurePatient(db *gorm.DB, patientID uint) error {
	patient, err := u.patientRepo.FindByID(db, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient %d: %+v", patientID, err)
		return err
	}
	if patient == nil {
		return ErrPatientNotFound
	}
	return nil
}

func (u *appointmentUsecase) ensureDoctor(db *gorm.DB, doctorID uint) error {
	doctor, err := u.doctorRepo.FindByID(db, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %d: %+v", doctorID, err)
		return err
	}
	if doctor == nil {
		return ErrDoctorNotFound
	}
	return nil
}

func (u *appointmentUsecase) translateWriteError(err error, op string) error {
	switch {
	case isDuplicateKeyError(err, "slot"):
		return ErrAppointmentConflict
	case isForeignKeyError(err, "patient"):
		return ErrPatientNotFound
	case isForeignKeyError(err, "doctor"):
		return ErrDoctorNotFound
	}
	u.log.Warnf("Failed to %s appointment: %+v", op, err)
	return err
}

// afterWrite runs the post-commit side effects; none of them can fail the request
func (u *appointmentUsecase) afterWrite(ctx context.Context, eventType string, appointment *entity.Appointment) {
	u.dashboardCache.Invalidate(ctx)

	if err := u.eventPublisher.Publish(ctx, service.NewAppointmentEvent(eventType, appointment)); err != nil {
		u.log.Warnf("Failed to publish %s event for appointment %d: %+v", eventType, appointment.ID, err)
	}
}
