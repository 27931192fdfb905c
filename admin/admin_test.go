package admin

import (
	"testing"
	"time"

	"shubharambh/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.mongodb.org/mongo-driver/bson"
)

func TestStatusFilterAll(t *testing.T) {
	assert.Equal(t, bson.M{}, StatusFilter(""))
	assert.Equal(t, bson.M{}, StatusFilter("all"))
}

func TestStatusFilterPendingMatchesLegacyRecords(t *testing.T) {
	f := StatusFilter("pending")

	or, ok := f["$or"].([]bson.M)
	require.True(t, ok, "pending filter must be an $or over status variants")
	require.Len(t, or, 3)

	assert.Contains(t, or, bson.M{"status": models.StatusPending})
	assert.Contains(t, or, bson.M{"status": bson.M{"$exists": false}})
	assert.Contains(t, or, bson.M{"status": ""})
}

func TestStatusFilterExact(t *testing.T) {
	assert.Equal(t, bson.M{"status": "approved"}, StatusFilter("approved"))
	assert.Equal(t, bson.M{"status": "rejected"}, StatusFilter("rejected"))
}

func TestApprovalCascade(t *testing.T) {
	now := time.Now()
	filter, update := ApprovalCascade("v1", now)

	assert.Equal(t, "v1", filter["vendorid"], "cascade touches only the approved vendor's listings")

	or, ok := filter["$or"].([]bson.M)
	require.True(t, ok, "cascade filter must cover every awaiting-review status variant")
	assert.Contains(t, or, bson.M{"status": models.StatusPending})
	assert.Contains(t, or, bson.M{"status": bson.M{"$exists": false}})
	assert.Contains(t, or, bson.M{"status": ""})

	set, ok := update["$set"].(bson.M)
	require.True(t, ok)
	assert.Equal(t, models.StatusApproved, set["status"])
	assert.Equal(t, true, set["isAvailable"], "approval makes the listings publicly available")
	assert.Equal(t, now, set["updatedAt"])

	// approved or rejected listings are not part of the $or, so a
	// re-approval never resurrects a rejected listing
	assert.NotContains(t, or, bson.M{"status": models.StatusApproved})
	assert.NotContains(t, or, bson.M{"status": models.StatusRejected})
}

func TestVendorListings(t *testing.T) {
	assert.Equal(t, bson.M{"vendorid": "v1"}, VendorListings("v1"),
		"rejection hide and cascade delete are scoped to the vendor's own listings")
}
