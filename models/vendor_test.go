package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVendorEffectiveStatus(t *testing.T) {
	// records written before moderation existed carry no status field
	legacy := Vendor{VendorID: "v1"}
	assert.Equal(t, StatusPending, legacy.EffectiveStatus())

	approved := Vendor{Status: StatusApproved}
	assert.Equal(t, StatusApproved, approved.EffectiveStatus())
}

func TestVendorApprove(t *testing.T) {
	v := Vendor{VendorID: "v1", RejectionReason: "incomplete profile"}
	now := time.Now()

	require.NoError(t, v.Approve(now))
	assert.Equal(t, StatusApproved, v.Status)
	assert.True(t, v.IsActive)
	assert.Empty(t, v.RejectionReason)

	assert.ErrorIs(t, v.Approve(now), ErrAlreadyApproved)
}

func TestVendorReject(t *testing.T) {
	v := Vendor{VendorID: "v1", Status: StatusApproved, IsActive: true}

	assert.ErrorIs(t, v.Reject("", time.Now()), ErrReasonRequired)

	require.NoError(t, v.Reject("Pricing details missing", time.Now()))
	assert.Equal(t, StatusRejected, v.Status)
	assert.False(t, v.IsActive)
	assert.Equal(t, "Pricing details missing", v.RejectionReason)
}

func TestVendorRejectThenApprove(t *testing.T) {
	v := Vendor{VendorID: "v1"}
	require.NoError(t, v.Reject("Incomplete", time.Now()))

	// re-approval after a fix clears the stale reason
	require.NoError(t, v.Approve(time.Now()))
	assert.Equal(t, StatusApproved, v.Status)
	assert.Empty(t, v.RejectionReason)
}
