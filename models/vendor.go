package models

import (
	"errors"
	"time"
)

type ModerationStatus string

const (
	StatusPending  ModerationStatus = "pending"
	StatusApproved ModerationStatus = "approved"
	StatusRejected ModerationStatus = "rejected"
)

var (
	ErrReasonRequired  = errors.New("a reason is required")
	ErrAlreadyDecided  = errors.New("already decided")
	ErrNotPending      = errors.New("not in pending state")
	ErrUnauthorized    = errors.New("not found or unauthorized")
	ErrAlreadyApproved = errors.New("vendor already approved")
)

type PriceRange struct {
	Min int `json:"min" bson:"min"`
	Max int `json:"max" bson:"max"`
}

type Vendor struct {
	VendorID        string           `json:"vendorid" bson:"vendorid"`
	UserID          string           `json:"userId,omitempty" bson:"userId,omitempty"`
	Name            string           `json:"name" bson:"name"`
	Email           string           `json:"email" bson:"email"`
	Phone           string           `json:"phone,omitempty" bson:"phone,omitempty"`
	BusinessName    string           `json:"businessName" bson:"businessName"`
	Description     string           `json:"description,omitempty" bson:"description,omitempty"`
	Categories      []string         `json:"categories" bson:"categories"`
	Locations       []string         `json:"locations" bson:"locations"`
	Images          []string         `json:"images,omitempty" bson:"images,omitempty"`
	PriceRange      PriceRange       `json:"priceRange" bson:"priceRange"`
	Status          ModerationStatus `json:"status" bson:"status,omitempty"`
	IsActive        bool             `json:"isActive" bson:"isActive"`
	RejectionReason string           `json:"rejectionReason,omitempty" bson:"rejectionReason,omitempty"`
	CreatedAt       time.Time        `json:"createdAt" bson:"createdAt"`
	UpdatedAt       time.Time        `json:"updatedAt" bson:"updatedAt"`
}

// EffectiveStatus treats records written before the status field existed
// as pending so they still show up in the moderation queue.
func (v *Vendor) EffectiveStatus() ModerationStatus {
	if v.Status == "" {
		return StatusPending
	}
	return v.Status
}

// Approve transitions pending → approved. Activation follows approval.
func (v *Vendor) Approve(now time.Time) error {
	if v.EffectiveStatus() == StatusApproved {
		return ErrAlreadyApproved
	}
	v.Status = StatusApproved
	v.IsActive = true
	v.RejectionReason = ""
	v.UpdatedAt = now
	return nil
}

// Reject transitions pending → rejected. The reason is mandatory.
func (v *Vendor) Reject(reason string, now time.Time) error {
	if reason == "" {
		return ErrReasonRequired
	}
	v.Status = StatusRejected
	v.IsActive = false
	v.RejectionReason = reason
	v.UpdatedAt = now
	return nil
}
