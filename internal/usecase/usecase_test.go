package usecase_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"hospital-admin-api/config"
	"hospital-admin-api/internal/delivery/dto"
	"hospital-admin-api/internal/repository"
	"hospital-admin-api/internal/service"
	"hospital-admin-api/internal/testutil"
	"hospital-admin-api/internal/usecase"
	"hospital-admin-api/pkg/jwt"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fixture struct {
	db        *gorm.DB
	redis     *miniredis.Miniredis
	publisher *testutil.RecordingPublisher
	jwt       *jwt.JWTService

	patients     usecase.PatientUsecase
	doctors      usecase.DoctorUsecase
	appointments usecase.AppointmentUsecase
	dashboard    usecase.DashboardUsecase
	auditLogs    usecase.AuditLogUsecase
	auth         usecase.AuthUsecase
	users        usecase.UserUsecase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	return newFixtureIn(t, time.UTC)
}

// newFixtureIn builds a fixture whose "today" follows loc
func newFixtureIn(t *testing.T, loc *time.Location) *fixture {
	t.Helper()

	db := testutil.NewDB(t)
	mr, redisClient := testutil.NewRedis(t)
	log := testutil.NewLogger()
	publisher := &testutil.RecordingPublisher{}

	jwtService := jwt.NewJWTService(config.JWTConfig{
		Secret:        "test-secret",
		AccessExpiry:  15 * time.Minute,
		RefreshExpiry: time.Hour,
	})

	userRepo := repository.NewUserRepository()
	patientRepo := repository.NewPatientRepository()
	doctorRepo := repository.NewDoctorRepository()
	appointmentRepo := repository.NewAppointmentRepository()
	auditLogRepo := repository.NewAuditLogRepository()

	auditService := service.NewAuditService(log, auditLogRepo)
	tokenStore := service.NewTokenStore(redisClient, log)
	cache := service.NewDashboardCache(redisClient, log, time.Minute)

	return &fixture{
		db:           db,
		redis:        mr,
		publisher:    publisher,
		jwt:          jwtService,
		patients:     usecase.NewPatientUsecase(db, log, patientRepo, appointmentRepo, auditService, cache),
		doctors:      usecase.NewDoctorUsecase(db, log, doctorRepo, appointmentRepo, auditService, cache, loc),
		appointments: usecase.NewAppointmentUsecase(db, log, appointmentRepo, patientRepo, doctorRepo, auditService, publisher, cache),
		dashboard:    usecase.NewDashboardUsecase(db, log, patientRepo, doctorRepo, appointmentRepo, cache, loc),
		auditLogs:    usecase.NewAuditLogUsecase(db, log, auditLogRepo),
		auth:         usecase.NewAuthUsecase(db, log, userRepo, jwtService, tokenStore, auditService),
		users:        usecase.NewUserUsecase(db, log, userRepo, tokenStore, auditService),
	}
}

var seq int

func (f *fixture) createPatient(t *testing.T) *dto.PatientResponse {
	t.Helper()
	seq++
	patient, err := f.patients.CreatePatient(context.Background(), &dto.CreatePatientRequest{
		Name:      fmt.Sprintf("Patient %d", seq),
		CPF:       fmt.Sprintf("P-%06d", seq),
		BirthDate: "1990-05-10",
		Phone:     "+55 11 99999-0000",
		Email:     fmt.Sprintf("patient%d@example.com", seq),
		Address:   "Rua das Flores, 1",
	})
	require.NoError(t, err)
	return patient
}

func (f *fixture) createDoctor(t *testing.T) *dto.DoctorResponse {
	t.Helper()
	seq++
	doctor, err := f.doctors.CreateDoctor(context.Background(), &dto.CreateDoctorRequest{
		Name:      fmt.Sprintf("Dr. %d", seq),
		CPF:       fmt.Sprintf("D-%06d", seq),
		Specialty: "Cardiology",
		CRM:       fmt.Sprintf("CRM-%06d", seq),
		Address:   "Av. Central, 100",
	})
	require.NoError(t, err)
	return doctor
}

func (f *fixture) book(doctorID, patientID uint, date, clock string) (*dto.AppointmentResponse, error) {
	return f.appointments.CreateAppointment(context.Background(), &dto.CreateAppointmentRequest{
		Date:      date,
		Time:      clock,
		PatientID: patientID,
		DoctorID:  doctorID,
	})
}

func strPtr(s string) *string { return &s }

func uintPtr(u uint) *uint { return &u }

func dayFromToday(offset int) string {
	return time.Now().UTC().AddDate(0, 0, offset).Format("2006-01-02")
}
