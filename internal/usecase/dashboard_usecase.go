package usecase

import (
	"context"
	"time"

	"hospital-admin-api/internal/converter"
	"hospital-admin-api/internal/delivery/dto"
	"hospital-admin-api/internal/domain/entity"
	"hospital-admin-api/internal/domain/repository"
	"hospital-admin-api/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// upcomingLimit is how many upcoming appointments the dashboard shows
const upcomingLimit = 5

type DashboardUsecase interface {
	GetSummary(ctx context.Context) (*dto.DashboardResponse, error)
}

type dashboardUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	patientRepo     repository.PatientRepository
	doctorRepo      repository.DoctorRepository
	appointmentRepo repository.AppointmentRepository
	cache           *service.DashboardCache
	loc             *time.Location
}

func NewDashboardUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	doctorRepo repository.DoctorRepository,
	appointmentRepo repository.AppointmentRepository,
	cache *service.DashboardCache,
	loc *time.Location,
) DashboardUsecase {
	return &dashboardUsecase{
		db:              db,
		log:             log,
		patientRepo:     patientRepo,
		doctorRepo:      doctorRepo,
		appointmentRepo: appointmentRepo,
		cache:           cache,
		loc:             loc,
	}
}

// GetSummary serves the cached summary when fresh, otherwise recomputes and caches it
func (u *dashboardUsecase) GetSummary(ctx context.Context) (*dto.DashboardResponse, error) {
	var cached dto.DashboardResponse
	hit, err := u.cache.Get(ctx, &cached)
	if err != nil {
		u.log.Warnf("Failed to read dashboard cache: %+v", err)
	}
	if hit {
		return &cached, nil
	}

	db := u.db.WithContext(ctx)
	today := entity.Today(u.loc)

	totalPatients, err := u.patientRepo.Count(db)
	if err != nil {
		u.log.Warnf("Failed to count patients: %+v", err)
		return nil, err
	}

	totalDoctors, err := u.doctorRepo.Count(db)
	if err != nil {
		u.log.Warnf("Failed to count doctors: %+v", err)
		return nil, err
	}

	totalAppointments, err := u.appointmentRepo.Count(db)
	if err != nil {
		u.log.Warnf("Failed to count appointments: %+v", err)
		return nil, err
	}

	appointmentsToday, err := u.appointmentRepo.CountByDate(db, today)
	if err != nil {
		u.log.Warnf("Failed to count today's appointments: %+v", err)
		return nil, err
	}

	upcoming, err := u.appointmentRepo.FindUpcoming(db, today, upcomingLimit)
	if err != nil {
		u.log.Warnf("Failed to find upcoming appointments: %+v", err)
		return nil, err
	}

	summary := &dto.DashboardResponse{
		TotalPatients:        totalPatients,
		TotalDoctors:         totalDoctors,
		TotalAppointments:    totalAppointments,
		AppointmentsToday:    appointmentsToday,
		UpcomingAppointments: converter.AppointmentsToResponses(upcoming),
	}

	if err := u.cache.Set(ctx, summary); err != nil {
		u.log.Warnf("Failed to write dashboard cache: %+v", err)
	}

	return summary, nil
}
