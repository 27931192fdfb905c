package models

import "time"

type Capacity struct {
	Min int `json:"min" bson:"min"`
	Max int `json:"max" bson:"max"`
}

// Venue is one bookable listing. The name is historical: it covers venue
// rentals and every service category alike.
type Venue struct {
	VenueID        string           `json:"venueid" bson:"venueid"`
	VendorID       string           `json:"vendorid" bson:"vendorid"`
	Name           string           `json:"name" bson:"name"`
	Type           string           `json:"type,omitempty" bson:"type,omitempty"`
	Category       string           `json:"category" bson:"category"`
	EventTypes     []string         `json:"eventTypes,omitempty" bson:"eventTypes,omitempty"`
	Location       string           `json:"location" bson:"location"`
	City           string           `json:"city" bson:"city"`
	Address        string           `json:"address,omitempty" bson:"address,omitempty"`
	Capacity       Capacity         `json:"capacity" bson:"capacity"`
	PriceRange     PriceRange       `json:"priceRange" bson:"priceRange"`
	PriceUnit      string           `json:"priceUnit" bson:"priceUnit"`
	Images         []string         `json:"images,omitempty" bson:"images,omitempty"`
	Amenities      []string         `json:"amenities,omitempty" bson:"amenities,omitempty"`
	Highlights     []string         `json:"highlights,omitempty" bson:"highlights,omitempty"`
	Description    string           `json:"description,omitempty" bson:"description,omitempty"`
	Rating         float64          `json:"rating,omitempty" bson:"rating,omitempty"`
	ReviewCount    int              `json:"reviewCount,omitempty" bson:"reviewCount,omitempty"`
	Status         ModerationStatus `json:"status" bson:"status,omitempty"`
	IsAvailable    bool             `json:"isAvailable" bson:"isAvailable"`
	ServiceDetails map[string]any   `json:"serviceDetails,omitempty" bson:"serviceDetails,omitempty"`
	CreatedAt      time.Time        `json:"createdAt" bson:"createdAt"`
	UpdatedAt      time.Time        `json:"updatedAt" bson:"updatedAt"`
}

func (v *Venue) EffectiveStatus() ModerationStatus {
	if v.Status == "" {
		return StatusPending
	}
	return v.Status
}

// VisibleTo reports whether the listing may be shown to the given caller.
// Only approved+available listings are public; owners see their own always.
func (v *Venue) VisibleTo(vendorID string) bool {
	if vendorID != "" && v.VendorID == vendorID {
		return true
	}
	return v.EffectiveStatus() == StatusApproved && v.IsAvailable
}
