package models

import (
	"errors"
	"slices"
	"time"
)

type QuoteStatus string

const (
	QuotePending   QuoteStatus = "pending"
	QuoteResponded QuoteStatus = "responded"
)

type ResponseStatus string

const (
	ResponseAccepted ResponseStatus = "accepted"
	ResponseRejected ResponseStatus = "rejected"
)

// DefaultAcceptMessage is used when a vendor accepts without writing one.
const DefaultAcceptMessage = "Thank you for your enquiry! We would be glad to serve your event. Please contact us to discuss the details."

var ErrAlreadyResponded = errors.New("already responded")

type VendorResponse struct {
	Status      ResponseStatus `json:"status" bson:"status"`
	Message     string         `json:"message,omitempty" bson:"message,omitempty"`
	RespondedAt time.Time      `json:"respondedAt" bson:"respondedAt"`
	RespondedBy string         `json:"respondedBy" bson:"respondedBy"`
}

type QuoteRequest struct {
	QuoteID         string          `json:"quoteid" bson:"quoteid"`
	UserID          string          `json:"userId" bson:"userId"`
	VenueID         string          `json:"venueId,omitempty" bson:"venueId,omitempty"`
	VendorIDs       []string        `json:"vendorIds" bson:"vendorIds"`
	EventType       string          `json:"eventType" bson:"eventType"`
	Location        string          `json:"location,omitempty" bson:"location,omitempty"`
	EventDate       string          `json:"eventDate,omitempty" bson:"eventDate,omitempty"`
	Attendees       int             `json:"attendees,omitempty" bson:"attendees,omitempty"`
	BudgetMin       int             `json:"budgetMin,omitempty" bson:"budgetMin,omitempty"`
	BudgetMax       int             `json:"budgetMax,omitempty" bson:"budgetMax,omitempty"`
	Requirements    string          `json:"requirements" bson:"requirements"`
	Notes           string          `json:"notes,omitempty" bson:"notes,omitempty"`
	Category        string          `json:"category,omitempty" bson:"category,omitempty"`
	CategoryDetails map[string]any  `json:"categoryDetails,omitempty" bson:"categoryDetails,omitempty"`
	Status          QuoteStatus     `json:"status" bson:"status"`
	VendorResponse  *VendorResponse `json:"vendorResponse,omitempty" bson:"vendorResponse,omitempty"`
	CreatedAt       time.Time       `json:"createdAt" bson:"createdAt"`
}

// Respond records the vendor's decision. The responding vendor must be one
// of the vendors the request was addressed to, and a decision is written at
// most once: a second call fails instead of overwriting the first.
func (q *QuoteRequest) Respond(vendorID string, status ResponseStatus, message string, now time.Time) error {
	if !slices.Contains(q.VendorIDs, vendorID) {
		return ErrUnauthorized
	}
	if q.Status == QuoteResponded || q.VendorResponse != nil {
		return ErrAlreadyResponded
	}
	if status == ResponseRejected && message == "" {
		return ErrReasonRequired
	}
	if status == ResponseAccepted && message == "" {
		message = DefaultAcceptMessage
	}
	q.Status = QuoteResponded
	q.VendorResponse = &VendorResponse{
		Status:      status,
		Message:     message,
		RespondedAt: now,
		RespondedBy: vendorID,
	}
	return nil
}
