package mailer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuoteRequestedBody(t *testing.T) {
	body, err := QuoteRequestedBody(NotificationData{
		UserName:     "Anita",
		VendorName:   "Ravi",
		BusinessName: "Royal Kitchen Caterers",
		ListingName:  "Royal Kitchen",
		EventType:    "Wedding",
		EventDate:    "2026-11-20",
		Requirements: "300 guests, pure veg",
		DashboardURL: "https://shubharambh.example.com/vendor-dashboard",
	})
	require.NoError(t, err)

	assert.Contains(t, body, "Namaste Ravi")
	assert.Contains(t, body, "Anita")
	assert.Contains(t, body, "Royal Kitchen Caterers")
	assert.Contains(t, body, "300 guests, pure veg")
	assert.Contains(t, body, "2026-11-20")
	assert.Contains(t, body, "vendor-dashboard")
}

func TestQuoteRespondedBodyDecisionHeading(t *testing.T) {
	accepted, err := QuoteRespondedBody(NotificationData{
		UserName:     "Anita",
		BusinessName: "Royal Kitchen Caterers",
		Decision:     "accepted",
		Message:      "Happy to serve your wedding",
	})
	require.NoError(t, err)
	assert.Contains(t, accepted, "Accepted")
	assert.Contains(t, accepted, "Happy to serve your wedding")

	rejected, err := QuoteRespondedBody(NotificationData{
		UserName:     "Anita",
		BusinessName: "Royal Kitchen Caterers",
		Decision:     "rejected",
	})
	require.NoError(t, err)
	assert.Contains(t, rejected, "Declined")
	assert.NotContains(t, rejected, "blockquote")
}

func TestAppointmentBodies(t *testing.T) {
	req, err := AppointmentRequestedBody(NotificationData{
		UserName:    "Anita",
		VendorName:  "Ravi",
		ListingName: "Grand Celebration Lawns",
		ScheduledAt: "2026-10-05 11:00",
	})
	require.NoError(t, err)
	assert.Contains(t, req, "Grand Celebration Lawns")
	assert.Contains(t, req, "2026-10-05 11:00")

	decided, err := AppointmentDecidedBody(NotificationData{
		UserName:     "Anita",
		BusinessName: "Grand Celebration Lawns",
		Decision:     "confirmed",
		ScheduledAt:  "2026-10-05 11:00",
	})
	require.NoError(t, err)
	assert.Contains(t, decided, "Confirmed")
}

func TestVendorModeratedBody(t *testing.T) {
	approved, err := VendorModeratedBody(NotificationData{
		VendorName:   "Ravi",
		BusinessName: "Royal Kitchen Caterers",
		Decision:     "approved",
	})
	require.NoError(t, err)
	assert.Contains(t, approved, "Approved")
	assert.Contains(t, approved, "now live")

	rejected, err := VendorModeratedBody(NotificationData{
		VendorName:   "Ravi",
		BusinessName: "Royal Kitchen Caterers",
		Decision:     "rejected",
		Message:      "Pricing details missing",
	})
	require.NoError(t, err)
	assert.Contains(t, rejected, "Not Approved")
	assert.Contains(t, rejected, "Pricing details missing")
}
