package seed

import (
	"context"
	"testing"
	"time"

	"hospital-admin-api/config"
	"hospital-admin-api/internal/domain/entity"
	"hospital-admin-api/internal/repository"
	"hospital-admin-api/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestSeederIsIdempotent(t *testing.T) {
	db := testutil.NewDB(t)
	userRepo := repository.NewUserRepository()
	seeder := NewSeeder(db, testutil.NewLogger(), userRepo, repository.NewDoctorRepository(), repository.NewPatientRepository())
	admin := config.SeedConfig{AdminEmail: "admin@hospital.com", AdminPassword: "admin123"}

	first, err := seeder.Run(context.Background(), admin)
	require.NoError(t, err)
	assert.Equal(t, &Result{Users: 1, Doctors: 3, Patients: 3}, first)

	second, err := seeder.Run(context.Background(), admin)
	require.NoError(t, err)
	assert.Equal(t, &Result{}, second)

	user, err := userRepo.FindByEmail(db, "admin@hospital.com")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("admin123")))
}

func TestSeederSkipsRecordsHoldingSampleCPF(t *testing.T) {
	db := testutil.NewDB(t)
	doctorRepo := repository.NewDoctorRepository()
	patientRepo := repository.NewPatientRepository()
	seeder := NewSeeder(db, testutil.NewLogger(), repository.NewUserRepository(), doctorRepo, patientRepo)

	require.NoError(t, doctorRepo.Create(db, &entity.Doctor{
		Name:      "Dr. Existing",
		CPF:       sampleDoctors[0].CPF,
		Specialty: "Neurology",
		CRM:       "CRM-PR-900009",
		Address:   "Rua XV, 9, Curitiba",
	}))
	require.NoError(t, patientRepo.Create(db, &entity.Patient{
		Name:      "Existing Patient",
		CPF:       samplePatients[0].CPF,
		BirthDate: time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC),
		Phone:     "+55 41 90000-0009",
		Email:     "someone.else@example.com",
		Address:   "Rua XV, 10, Curitiba",
	}))

	result, err := seeder.Run(context.Background(), config.SeedConfig{AdminEmail: "admin@hospital.com", AdminPassword: "admin123"})
	require.NoError(t, err)
	assert.Equal(t, &Result{Users: 1, Doctors: 2, Patients: 2}, result)
}
