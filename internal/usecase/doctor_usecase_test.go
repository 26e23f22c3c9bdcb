package usecase_test

import (
	"context"
	"testing"
	"time"

	"hospital-admin-api/internal/delivery/dto"
	"hospital-admin-api/internal/domain/entity"
	"hospital-admin-api/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateDoctor_UniqueKeys(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	existing := f.createDoctor(t)

	_, err := f.doctors.CreateDoctor(ctx, &dto.CreateDoctorRequest{
		Name: "Dr. Copy", CPF: "NEW-CPF", Specialty: "Neurology", CRM: existing.CRM, Address: "x",
	})
	assert.ErrorIs(t, err, usecase.ErrDoctorCRMExists)

	_, err = f.doctors.CreateDoctor(ctx, &dto.CreateDoctorRequest{
		Name: "Dr. Copy", CPF: existing.CPF, Specialty: "Neurology", CRM: "CRM-NEW", Address: "x",
	})
	assert.ErrorIs(t, err, usecase.ErrDoctorCPFExists)
}

func TestUpdateDoctor(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	d1 := f.createDoctor(t)
	d2 := f.createDoctor(t)

	updated, err := f.doctors.UpdateDoctor(ctx, d1.ID, &dto.UpdateDoctorRequest{
		CRM:       strPtr(d1.CRM),
		Specialty: strPtr("Oncology"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Oncology", updated.Specialty)
	assert.Equal(t, d1.CRM, updated.CRM)

	_, err = f.doctors.UpdateDoctor(ctx, d1.ID, &dto.UpdateDoctorRequest{CRM: strPtr(d2.CRM)})
	assert.ErrorIs(t, err, usecase.ErrDoctorCRMExists)

	_, err = f.doctors.UpdateDoctor(ctx, d1.ID, &dto.UpdateDoctorRequest{CPF: strPtr(d2.CPF)})
	assert.ErrorIs(t, err, usecase.ErrDoctorCPFExists)

	_, err = f.doctors.UpdateDoctor(ctx, 9999, &dto.UpdateDoctorRequest{Name: strPtr("Ghost")})
	assert.ErrorIs(t, err, usecase.ErrDoctorNotFound)
}

func TestScenarioB_DoctorDeleteGuard(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	patient := f.createPatient(t)
	doctor := f.createDoctor(t)

	a1, err := f.book(doctor.ID, patient.ID, "2024-01-15", "09:00")
	require.NoError(t, err)

	assert.ErrorIs(t, f.doctors.DeleteDoctor(ctx, doctor.ID), usecase.ErrDoctorHasAppointments)

	require.NoError(t, f.appointments.DeleteAppointment(ctx, a1.ID))
	require.NoError(t, f.doctors.DeleteDoctor(ctx, doctor.ID))

	_, err = f.doctors.GetDoctor(ctx, doctor.ID)
	assert.ErrorIs(t, err, usecase.ErrDoctorNotFound)
}

func TestGetSchedule_FromTodayOnwards(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	patient := f.createPatient(t)
	doctor := f.createDoctor(t)

	_, err := f.book(doctor.ID, patient.ID, dayFromToday(-1), "09:00")
	require.NoError(t, err)
	_, err = f.book(doctor.ID, patient.ID, dayFromToday(2), "08:00")
	require.NoError(t, err)
	_, err = f.book(doctor.ID, patient.ID, dayFromToday(0), "16:00")
	require.NoError(t, err)

	schedule, err := f.doctors.GetSchedule(ctx, doctor.ID)
	require.NoError(t, err)
	assert.Equal(t, doctor.ID, schedule.Doctor.ID)
	assert.Equal(t, doctor.CRM, schedule.Doctor.CRM)
	require.Len(t, schedule.Appointments, 2)
	assert.Equal(t, dayFromToday(0), schedule.Appointments[0].Date)
	assert.Equal(t, dayFromToday(2), schedule.Appointments[1].Date)
	require.NotNil(t, schedule.Appointments[0].Patient)
	assert.Equal(t, patient.ID, schedule.Appointments[0].Patient.ID)

	_, err = f.doctors.GetSchedule(ctx, 9999)
	assert.ErrorIs(t, err, usecase.ErrDoctorNotFound)
}

func TestGetSchedule_TodayFollowsConfiguredZone(t *testing.T) {
	zones := []*time.Location{
		time.FixedZone("UTC-12", -12*60*60),
		time.FixedZone("UTC+14", 14*60*60),
	}

	for _, loc := range zones {
		t.Run(loc.String(), func(t *testing.T) {
			f := newFixtureIn(t, loc)
			ctx := context.Background()
			patient := f.createPatient(t)
			doctor := f.createDoctor(t)

			today := entity.Today(loc)
			_, err := f.book(doctor.ID, patient.ID, today.AddDate(0, 0, -1).Format(entity.DateLayout), "09:00")
			require.NoError(t, err)
			tonight, err := f.book(doctor.ID, patient.ID, today.Format(entity.DateLayout), "21:30")
			require.NoError(t, err)

			schedule, err := f.doctors.GetSchedule(ctx, doctor.ID)
			require.NoError(t, err)
			require.Len(t, schedule.Appointments, 1)
			assert.Equal(t, tonight.ID, schedule.Appointments[0].ID)

			summary, err := f.dashboard.GetSummary(ctx)
			require.NoError(t, err)
			assert.Equal(t, int64(1), summary.AppointmentsToday)
			require.Len(t, summary.UpcomingAppointments, 1)
			assert.Equal(t, tonight.ID, summary.UpcomingAppointments[0].ID)
		})
	}
}
