package mq

import (
	"testing"

	"shubharambh/mailer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderBodyAllKinds(t *testing.T) {
	data := mailer.NotificationData{
		UserName:     "Anita",
		VendorName:   "Ravi",
		BusinessName: "Royal Kitchen Caterers",
		Decision:     "approved",
	}

	for _, kind := range []string{
		KindQuoteRequested,
		KindQuoteResponded,
		KindAppointmentRequested,
		KindAppointmentDecided,
		KindVendorModerated,
	} {
		body, err := RenderBody(Notification{Kind: kind, Data: data})
		require.NoError(t, err, "kind %s", kind)
		assert.Contains(t, body, "Team Shubharambh", "kind %s", kind)
	}
}

func TestRenderBodyUnknownKind(t *testing.T) {
	_, err := RenderBody(Notification{Kind: "password-reset"})
	assert.ErrorIs(t, err, ErrUnknownKind)
}
