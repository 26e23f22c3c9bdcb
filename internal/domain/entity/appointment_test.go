package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeClock(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "09:00", want: "09:00"},
		{in: "9:00", want: "09:00"},
		{in: "23:59", want: "23:59"},
		{in: "00:00", want: "00:00"},
		{in: "14:3", wantErr: true},
		{in: "24:00", wantErr: true},
		{in: "9am", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := NormalizeClock(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDate(t *testing.T) {
	want := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)

	got, err := ParseDate("2024-01-15")
	require.NoError(t, err)
	assert.True(t, want.Equal(got))

	got, err = ParseDate("2024-01-15T13:45:00Z")
	require.NoError(t, err)
	assert.True(t, want.Equal(got))

	got, err = ParseDate("2024-01-15T22:00:00-03:00")
	require.NoError(t, err)
	assert.True(t, want.Equal(got), "calendar day follows the given offset")

	_, err = ParseDate("15/01/2024")
	assert.Error(t, err)
}

func TestSetStatus(t *testing.T) {
	a := &Appointment{Status: AppointmentStatusCompleted}

	for _, status := range []AppointmentStatus{
		AppointmentStatusConfirmed,
		AppointmentStatusScheduled,
		AppointmentStatusCancelled,
		AppointmentStatusCompleted,
		AppointmentStatusConfirmed,
	} {
		require.True(t, a.SetStatus(status))
		assert.Equal(t, status, a.Status)
	}

	assert.False(t, a.SetStatus("PENDING"))
	assert.Equal(t, AppointmentStatusConfirmed, a.Status, "unknown status leaves the row untouched")
}

func TestStatusAuditAction(t *testing.T) {
	assert.Equal(t, AuditActionAppointmentConfirm, AppointmentStatusConfirmed.AuditAction())
	assert.Equal(t, AuditActionAppointmentCancel, AppointmentStatusCancelled.AuditAction())
	assert.Equal(t, AuditActionAppointmentComplete, AppointmentStatusCompleted.AuditAction())
	assert.Equal(t, AuditActionAppointmentUpdate, AppointmentStatusScheduled.AuditAction())
}

func TestTruncateDay_KeepsLocalCalendarDay(t *testing.T) {
	saoPaulo := time.FixedZone("-03", -3*60*60)
	late := time.Date(2024, time.January, 15, 22, 30, 0, 0, saoPaulo)

	got := TruncateDay(late)
	assert.True(t, time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC).Equal(got))
	assert.Equal(t, "2024-01-16", TruncateDay(late.UTC()).Format(DateLayout))
}
