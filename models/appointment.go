package models

import (
	"errors"
	"time"
)

type AppointmentStatus string

const (
	AppointmentPending   AppointmentStatus = "pending"
	AppointmentConfirmed AppointmentStatus = "confirmed"
	AppointmentRejected  AppointmentStatus = "rejected"
	AppointmentCancelled AppointmentStatus = "cancelled"
)

const (
	AppointmentTypeMeeting = "appointment"
	AppointmentTypeVisit   = "visit"
)

var ErrNotCancellable = errors.New("only pending appointments can be cancelled")

type Appointment struct {
	AppointmentID   string            `json:"appointmentid" bson:"appointmentid"`
	UserID          string            `json:"userId" bson:"userId"`
	VenueID         string            `json:"venueId" bson:"venueId"`
	VendorID        string            `json:"vendorid" bson:"vendorid"`
	Type            string            `json:"type" bson:"type"` // appointment, visit
	ScheduledDate   string            `json:"scheduledDate" bson:"scheduledDate"`
	ScheduledTime   string            `json:"scheduledTime" bson:"scheduledTime"`
	EventType       string            `json:"eventType,omitempty" bson:"eventType,omitempty"`
	Attendees       int               `json:"attendees,omitempty" bson:"attendees,omitempty"`
	Phone           string            `json:"phone" bson:"phone"`
	Notes           string            `json:"notes,omitempty" bson:"notes,omitempty"`
	Status          AppointmentStatus `json:"status" bson:"status"`
	RejectionReason string            `json:"rejectionReason,omitempty" bson:"rejectionReason,omitempty"`
	DecidedAt       time.Time         `json:"decidedAt,omitempty" bson:"decidedAt,omitempty"`
	CreatedAt       time.Time         `json:"createdAt" bson:"createdAt"`
}

// Confirm is the vendor-side pending → confirmed transition.
func (a *Appointment) Confirm(now time.Time) error {
	if a.Status != AppointmentPending {
		return ErrAlreadyDecided
	}
	a.Status = AppointmentConfirmed
	a.DecidedAt = now
	return nil
}

// Reject is the vendor-side pending → rejected transition. Reason mandatory.
func (a *Appointment) Reject(reason string, now time.Time) error {
	if reason == "" {
		return ErrReasonRequired
	}
	if a.Status != AppointmentPending {
		return ErrAlreadyDecided
	}
	a.Status = AppointmentRejected
	a.RejectionReason = reason
	a.DecidedAt = now
	return nil
}

// Cancel is the user-side transition, valid only while pending.
func (a *Appointment) Cancel(now time.Time) error {
	if a.Status != AppointmentPending {
		return ErrNotCancellable
	}
	a.Status = AppointmentCancelled
	a.DecidedAt = now
	return nil
}
