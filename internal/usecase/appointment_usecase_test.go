package usecase_test

import (
	"context"
	"testing"

	"hospital-admin-api/internal/delivery/dto"
	"hospital-admin-api/internal/domain/entity"
	"hospital-admin-api/internal/service"
	"hospital-admin-api/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAppointment_RejectsTakenSlot(t *testing.T) {
	f := newFixture(t)
	patient := f.createPatient(t)
	doctor := f.createDoctor(t)

	first, err := f.book(doctor.ID, patient.ID, "2024-01-15", "09:00")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-15", first.Date)
	assert.Equal(t, "09:00", first.Time)
	assert.Equal(t, string(entity.AppointmentStatusScheduled), first.Status)
	require.NotNil(t, first.Patient)
	require.NotNil(t, first.Doctor)
	assert.Equal(t, doctor.CRM, first.Doctor.CRM)

	_, err = f.book(doctor.ID, patient.ID, "2024-01-15", "09:00")
	assert.ErrorIs(t, err, usecase.ErrAppointmentConflict)

	// Same clock written differently is the same slot
	_, err = f.book(doctor.ID, patient.ID, "2024-01-15", "9:00")
	assert.ErrorIs(t, err, usecase.ErrAppointmentConflict)

	// Another doctor may take the same date and time
	other := f.createDoctor(t)
	_, err = f.book(other.ID, patient.ID, "2024-01-15", "09:00")
	assert.NoError(t, err)
}

func TestCreateAppointment_UnknownParties(t *testing.T) {
	f := newFixture(t)
	patient := f.createPatient(t)
	doctor := f.createDoctor(t)

	_, err := f.book(doctor.ID, 9999, "2024-01-15", "09:00")
	assert.ErrorIs(t, err, usecase.ErrPatientNotFound)

	_, err = f.book(9999, patient.ID, "2024-01-15", "09:00")
	assert.ErrorIs(t, err, usecase.ErrDoctorNotFound)
}

func TestCreateAppointment_InvalidInput(t *testing.T) {
	f := newFixture(t)
	patient := f.createPatient(t)
	doctor := f.createDoctor(t)

	_, err := f.book(doctor.ID, patient.ID, "15/01/2024", "09:00")
	assert.ErrorIs(t, err, usecase.ErrInvalidDateFormat)

	_, err = f.book(doctor.ID, patient.ID, "2024-01-15", "25:00")
	assert.ErrorIs(t, err, usecase.ErrInvalidTimeFormat)

	_, err = f.appointments.CreateAppointment(context.Background(), &dto.CreateAppointmentRequest{
		Date: "2024-01-15", Time: "09:00", PatientID: patient.ID, DoctorID: doctor.ID, Status: "LOST",
	})
	assert.ErrorIs(t, err, usecase.ErrInvalidStatus)
}

func TestScenarioA_MoveFreesTheSlot(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	patient := f.createPatient(t)
	doctor := f.createDoctor(t)

	a1, err := f.book(doctor.ID, patient.ID, "2024-01-15", "09:00")
	require.NoError(t, err)

	_, err = f.book(doctor.ID, patient.ID, "2024-01-15", "09:00")
	require.ErrorIs(t, err, usecase.ErrAppointmentConflict)

	moved, err := f.appointments.UpdateAppointment(ctx, a1.ID, &dto.UpdateAppointmentRequest{Time: strPtr("10:00")})
	require.NoError(t, err)
	assert.Equal(t, "10:00", moved.Time)

	a2, err := f.book(doctor.ID, patient.ID, "2024-01-15", "09:00")
	require.NoError(t, err)
	assert.NotEqual(t, a1.ID, a2.ID)
}

func TestUpdateAppointment_SlotRules(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	patient := f.createPatient(t)
	doctor := f.createDoctor(t)

	a1, err := f.book(doctor.ID, patient.ID, "2024-02-01", "09:00")
	require.NoError(t, err)
	a2, err := f.book(doctor.ID, patient.ID, "2024-02-01", "10:00")
	require.NoError(t, err)

	t.Run("own current values", func(t *testing.T) {
		updated, err := f.appointments.UpdateAppointment(ctx, a1.ID, &dto.UpdateAppointmentRequest{
			Date:     strPtr("2024-02-01"),
			Time:     strPtr("09:00"),
			DoctorID: uintPtr(doctor.ID),
		})
		require.NoError(t, err)
		assert.Equal(t, "09:00", updated.Time)
	})

	t.Run("collides with another", func(t *testing.T) {
		_, err := f.appointments.UpdateAppointment(ctx, a2.ID, &dto.UpdateAppointmentRequest{Time: strPtr("09:00")})
		assert.ErrorIs(t, err, usecase.ErrAppointmentConflict)
	})

	t.Run("unknown doctor", func(t *testing.T) {
		_, err := f.appointments.UpdateAppointment(ctx, a2.ID, &dto.UpdateAppointmentRequest{DoctorID: uintPtr(9999)})
		assert.ErrorIs(t, err, usecase.ErrDoctorNotFound)
	})

	t.Run("unknown appointment", func(t *testing.T) {
		_, err := f.appointments.UpdateAppointment(ctx, 9999, &dto.UpdateAppointmentRequest{Time: strPtr("11:00")})
		assert.ErrorIs(t, err, usecase.ErrAppointmentNotFound)
	})

	t.Run("status only skips the slot check", func(t *testing.T) {
		updated, err := f.appointments.UpdateAppointment(ctx, a2.ID, &dto.UpdateAppointmentRequest{Status: strPtr("CONFIRMED")})
		require.NoError(t, err)
		assert.Equal(t, "CONFIRMED", updated.Status)
		assert.Equal(t, "10:00", updated.Time)
	})
}

func TestStatusTransitions(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	patient := f.createPatient(t)
	doctor := f.createDoctor(t)

	a, err := f.book(doctor.ID, patient.ID, "2024-03-10", "14:30")
	require.NoError(t, err)

	cancelled, err := f.appointments.CancelAppointment(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "CANCELLED", cancelled.Status)

	// Transitions are permissive: a cancelled appointment can still be confirmed
	confirmed, err := f.appointments.ConfirmAppointment(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "CONFIRMED", confirmed.Status)

	completed, err := f.appointments.CompleteAppointment(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "COMPLETED", completed.Status)

	again, err := f.appointments.CompleteAppointment(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "COMPLETED", again.Status)

	_, err = f.appointments.ConfirmAppointment(ctx, 9999)
	assert.ErrorIs(t, err, usecase.ErrAppointmentNotFound)
	_, err = f.appointments.CancelAppointment(ctx, 9999)
	assert.ErrorIs(t, err, usecase.ErrAppointmentNotFound)
	_, err = f.appointments.CompleteAppointment(ctx, 9999)
	assert.ErrorIs(t, err, usecase.ErrAppointmentNotFound)

	assert.Equal(t, []string{
		service.EventAppointmentCreated,
		service.EventAppointmentCancelled,
		service.EventAppointmentConfirmed,
		service.EventAppointmentCompleted,
		service.EventAppointmentCompleted,
	}, f.publisher.Types())

	logs, err := f.auditLogs.GetAllAuditLogs(ctx, &dto.AuditLogQuery{Action: entity.AuditActionAppointmentComplete})
	require.NoError(t, err)
	assert.Equal(t, int64(2), logs.Total)
}

func TestDeleteAppointment(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	patient := f.createPatient(t)
	doctor := f.createDoctor(t)

	a, err := f.book(doctor.ID, patient.ID, "2024-04-01", "08:00")
	require.NoError(t, err)

	require.NoError(t, f.appointments.DeleteAppointment(ctx, a.ID))

	_, err = f.appointments.GetAppointment(ctx, a.ID)
	assert.ErrorIs(t, err, usecase.ErrAppointmentNotFound)
	assert.ErrorIs(t, f.appointments.DeleteAppointment(ctx, a.ID), usecase.ErrAppointmentNotFound)

	events := f.publisher.Events()
	require.Len(t, events, 2)
	assert.Equal(t, service.EventAppointmentDeleted, events[1].Type)
	assert.Equal(t, a.ID, events[1].AppointmentID)
	assert.Equal(t, "2024-04-01", events[1].Date)
}

func TestListAppointments(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p1 := f.createPatient(t)
	p2 := f.createPatient(t)
	d1 := f.createDoctor(t)
	d2 := f.createDoctor(t)

	_, err := f.book(d1.ID, p1.ID, "2024-05-02", "10:00")
	require.NoError(t, err)
	_, err = f.book(d1.ID, p2.ID, "2024-05-01", "11:00")
	require.NoError(t, err)
	_, err = f.book(d2.ID, p1.ID, "2024-05-01", "09:00")
	require.NoError(t, err)

	all, err := f.appointments.GetAllAppointments(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "2024-05-01", all[0].Date)
	assert.Equal(t, "09:00", all[0].Time)

	byDoctor, err := f.appointments.GetAppointmentsByDoctor(ctx, d1.ID)
	require.NoError(t, err)
	require.Len(t, byDoctor, 2)
	assert.Equal(t, "2024-05-01", byDoctor[0].Date)

	byPatient, err := f.appointments.GetAppointmentsByPatient(ctx, p2.ID)
	require.NoError(t, err)
	require.Len(t, byPatient, 1)
	assert.Equal(t, d1.ID, byPatient[0].DoctorID)

	_, err = f.appointments.GetAppointmentsByDoctor(ctx, 9999)
	assert.ErrorIs(t, err, usecase.ErrDoctorNotFound)
	_, err = f.appointments.GetAppointmentsByPatient(ctx, 9999)
	assert.ErrorIs(t, err, usecase.ErrPatientNotFound)
}

func TestPublishFailureDoesNotFailRequest(t *testing.T) {
	f := newFixture(t)
	f.publisher.Err = assert.AnError
	patient := f.createPatient(t)
	doctor := f.createDoctor(t)

	_, err := f.book(doctor.ID, patient.ID, "2024-06-01", "09:00")
	assert.NoError(t, err)
	assert.Len(t, f.publisher.Events(), 1)
}
