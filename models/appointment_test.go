package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppointmentConfirm(t *testing.T) {
	a := Appointment{AppointmentID: "a1", Status: AppointmentPending}
	now := time.Now()

	require.NoError(t, a.Confirm(now))
	assert.Equal(t, AppointmentConfirmed, a.Status)
	assert.Equal(t, now, a.DecidedAt)

	assert.ErrorIs(t, a.Confirm(now), ErrAlreadyDecided)
}

func TestAppointmentRejectNeedsReason(t *testing.T) {
	a := Appointment{Status: AppointmentPending}

	assert.ErrorIs(t, a.Reject("", time.Now()), ErrReasonRequired)
	assert.Equal(t, AppointmentPending, a.Status)

	require.NoError(t, a.Reject("Venue closed for renovation", time.Now()))
	assert.Equal(t, AppointmentRejected, a.Status)
	assert.Equal(t, "Venue closed for renovation", a.RejectionReason)
}

func TestAppointmentCancelOnlyPending(t *testing.T) {
	a := Appointment{Status: AppointmentPending}
	require.NoError(t, a.Cancel(time.Now()))
	assert.Equal(t, AppointmentCancelled, a.Status)

	confirmed := Appointment{Status: AppointmentConfirmed}
	assert.ErrorIs(t, confirmed.Cancel(time.Now()), ErrNotCancellable)
	assert.Equal(t, AppointmentConfirmed, confirmed.Status)
}
