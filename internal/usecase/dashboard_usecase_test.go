package usecase_test

import (
	"context"
	"testing"

	"hospital-admin-api/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardSummary(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	patient := f.createPatient(t)
	doctor := f.createDoctor(t)

	_, err := f.book(doctor.ID, patient.ID, dayFromToday(-3), "09:00")
	require.NoError(t, err)
	today, err := f.book(doctor.ID, patient.ID, dayFromToday(0), "10:00")
	require.NoError(t, err)
	cancelled, err := f.book(doctor.ID, patient.ID, dayFromToday(1), "11:00")
	require.NoError(t, err)
	_, err = f.appointments.CancelAppointment(ctx, cancelled.ID)
	require.NoError(t, err)
	for i := 2; i <= 7; i++ {
		_, err := f.book(doctor.ID, patient.ID, dayFromToday(i), "08:00")
		require.NoError(t, err)
	}

	summary, err := f.dashboard.GetSummary(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), summary.TotalPatients)
	assert.Equal(t, int64(1), summary.TotalDoctors)
	assert.Equal(t, int64(9), summary.TotalAppointments)
	assert.Equal(t, int64(1), summary.AppointmentsToday)

	require.Len(t, summary.UpcomingAppointments, 5)
	assert.Equal(t, today.ID, summary.UpcomingAppointments[0].ID)
	assert.Equal(t, dayFromToday(2), summary.UpcomingAppointments[1].Date)
	for _, a := range summary.UpcomingAppointments {
		assert.NotEqual(t, cancelled.ID, a.ID)
		assert.NotNil(t, a.Patient)
		assert.NotNil(t, a.Doctor)
	}
}

func TestDashboardSummary_CachedUntilWrite(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.createPatient(t)

	summary, err := f.dashboard.GetSummary(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), summary.TotalPatients)
	assert.True(t, f.redis.Exists(service.DashboardCacheKey))

	// A row written behind the usecases' back stays invisible while cached
	require.NoError(t, f.db.Exec(
		"INSERT INTO doctors (name, cpf, specialty, crm, address, created_at, updated_at) VALUES ('Dr. Raw', 'RAW', 'General', 'CRM-RAW', 'x', CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)",
	).Error)
	cached, err := f.dashboard.GetSummary(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), cached.TotalDoctors)

	f.createPatient(t)
	assert.False(t, f.redis.Exists(service.DashboardCacheKey))

	fresh, err := f.dashboard.GetSummary(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), fresh.TotalPatients)
	assert.Equal(t, int64(1), fresh.TotalDoctors)
}
