package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVenueVisibleTo(t *testing.T) {
	pending := Venue{VenueID: "l1", VendorID: "v1", Status: StatusPending}
	assert.False(t, pending.VisibleTo(""), "pending listing is not public")
	assert.False(t, pending.VisibleTo("v2"), "pending listing hidden from other vendors")
	assert.True(t, pending.VisibleTo("v1"), "owner always sees own listing")

	approved := Venue{VenueID: "l2", VendorID: "v1", Status: StatusApproved, IsAvailable: true}
	assert.True(t, approved.VisibleTo(""))

	unavailable := Venue{VenueID: "l3", VendorID: "v1", Status: StatusApproved, IsAvailable: false}
	assert.False(t, unavailable.VisibleTo(""))
	assert.True(t, unavailable.VisibleTo("v1"))
}
