package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pendingQuote() QuoteRequest {
	return QuoteRequest{
		QuoteID:   "q123",
		UserID:    "u1",
		VendorIDs: []string{"v1", "v2"},
		EventType: "Wedding",
		Status:    QuotePending,
	}
}

func TestQuoteRespondAccept(t *testing.T) {
	q := pendingQuote()
	now := time.Now()

	err := q.Respond("v1", ResponseAccepted, "Happy to cater your wedding", now)
	require.NoError(t, err)

	assert.Equal(t, QuoteResponded, q.Status)
	require.NotNil(t, q.VendorResponse)
	assert.Equal(t, ResponseAccepted, q.VendorResponse.Status)
	assert.Equal(t, "Happy to cater your wedding", q.VendorResponse.Message)
	assert.Equal(t, "v1", q.VendorResponse.RespondedBy)
}

func TestQuoteRespondAcceptDefaultsMessage(t *testing.T) {
	q := pendingQuote()

	err := q.Respond("v2", ResponseAccepted, "", time.Now())
	require.NoError(t, err)
	assert.Equal(t, DefaultAcceptMessage, q.VendorResponse.Message)
}

func TestQuoteRespondRejectNeedsMessage(t *testing.T) {
	q := pendingQuote()

	err := q.Respond("v1", ResponseRejected, "", time.Now())
	assert.ErrorIs(t, err, ErrReasonRequired)
	assert.Equal(t, QuotePending, q.Status)
	assert.Nil(t, q.VendorResponse)
}

func TestQuoteRespondTwice(t *testing.T) {
	q := pendingQuote()
	now := time.Now()

	require.NoError(t, q.Respond("v1", ResponseAccepted, "", now))

	// a later reject must not overwrite the first decision
	err := q.Respond("v2", ResponseRejected, "Fully booked that weekend", now)
	assert.ErrorIs(t, err, ErrAlreadyResponded)
	assert.Equal(t, ResponseAccepted, q.VendorResponse.Status)
	assert.Equal(t, "v1", q.VendorResponse.RespondedBy)
}

func TestQuoteRespondUnaddressedVendor(t *testing.T) {
	q := pendingQuote()

	err := q.Respond("v99", ResponseAccepted, "", time.Now())
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, QuotePending, q.Status)
}
