package admin

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"shubharambh/db"
	"shubharambh/mailer"
	"shubharambh/models"
	"shubharambh/mq"
	"shubharambh/utils"
	"shubharambh/venues"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// StatusFilter builds the moderation-list filter for one status value.
// Vendors written before the status field existed count as pending, so the
// pending view matches absent and empty statuses too.
func StatusFilter(status string) bson.M {
	switch status {
	case "", "all":
		return bson.M{}
	case "pending":
		return bson.M{"$or": []bson.M{
			{"status": models.StatusPending},
			{"status": bson.M{"$exists": false}},
			{"status": ""},
		}}
	default:
		return bson.M{"status": status}
	}
}

// VendorListings scopes a venues operation to everything one vendor owns.
// Rejection hides and deletion removes via this filter.
func VendorListings(vendorID string) bson.M {
	return bson.M{"vendorid": vendorID}
}

// ApprovalCascade builds the UpdateMany that accompanies vendor approval:
// every listing of theirs still awaiting review, including records written
// before the status field existed, goes approved and available.
func ApprovalCascade(vendorID string, now time.Time) (filter, update bson.M) {
	filter = bson.M{"vendorid": vendorID, "$or": []bson.M{
		{"status": models.StatusPending},
		{"status": bson.M{"$exists": false}},
		{"status": ""},
	}}
	update = bson.M{"$set": bson.M{
		"status":      models.StatusApproved,
		"isAvailable": true,
		"updatedAt":   now,
	}}
	return filter, update
}

// ListVendors handles GET /api/admin/vendors?status=&category= for the
// moderation console.
func ListVendors(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	filter := StatusFilter(r.URL.Query().Get("status"))
	if category := r.URL.Query().Get("category"); category != "" {
		filter["categories"] = category
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := db.VendorsCollection.Find(ctx, filter, opts)
	if err != nil {
		http.Error(w, `{"error":"Failed to fetch vendors"}`, http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	vendors := []models.Vendor{}
	if err := cursor.All(ctx, &vendors); err != nil {
		http.Error(w, `{"error":"Error processing vendors"}`, http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"vendors": vendors})
}

// ApproveVendor handles POST /api/admin/vendors/:vendorid/approve.
//
// Approving a vendor cascades to every pending listing they own: the admin
// console moderates vendors, not individual listings, so this is the single
// atomic business rule.
func ApproveVendor(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	vendorID := ps.ByName("vendorid")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	vendor, err := loadVendor(ctx, vendorID)
	if err != nil {
		http.Error(w, `{"error":"Vendor not found"}`, http.StatusNotFound)
		return
	}

	now := time.Now()
	if err := vendor.Approve(now); err != nil {
		utils.RespondWithError(w, http.StatusConflict, err.Error())
		return
	}

	_, err = db.VendorsCollection.UpdateOne(ctx,
		bson.M{"vendorid": vendorID},
		bson.M{"$set": bson.M{
			"status":          vendor.Status,
			"isActive":        vendor.IsActive,
			"rejectionReason": "",
			"updatedAt":       now,
		}},
	)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to approve vendor")
		return
	}

	// Cascade: flip the vendor's pending listings live in one operation.
	cascadeFilter, cascadeUpdate := ApprovalCascade(vendorID, now)
	_, err = db.VenuesCollection.UpdateMany(ctx, cascadeFilter, cascadeUpdate)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Vendor approved but listings failed to update")
		return
	}

	for _, category := range vendor.Categories {
		venues.InvalidateCache(category)
	}

	mq.Emit(ctx, mq.Notification{
		Kind:    mq.KindVendorModerated,
		To:      vendor.Email,
		Subject: "Your Shubharambh vendor profile is approved",
		Data: mailer.NotificationData{
			VendorName:   vendor.Name,
			BusinessName: vendor.BusinessName,
			Decision:     "approved",
			DashboardURL: mailer.DashboardURL("/dashboard/vendor"),
		},
	})

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Vendor approved", "vendor": vendor})
}

// RejectVendor handles POST /api/admin/vendors/:vendorid/reject. A reason
// is mandatory.
func RejectVendor(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	vendorID := ps.ByName("vendorid")

	var payload struct {
		Reason string `json:"reason"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, `{"error":"Invalid JSON payload"}`, http.StatusBadRequest)
		return
	}
	payload.Reason = strings.TrimSpace(payload.Reason)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	vendor, err := loadVendor(ctx, vendorID)
	if err != nil {
		http.Error(w, `{"error":"Vendor not found"}`, http.StatusNotFound)
		return
	}

	now := time.Now()
	if err := vendor.Reject(payload.Reason, now); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "A rejection reason is required")
		return
	}

	_, err = db.VendorsCollection.UpdateOne(ctx,
		bson.M{"vendorid": vendorID},
		bson.M{"$set": bson.M{
			"status":          vendor.Status,
			"isActive":        false,
			"rejectionReason": vendor.RejectionReason,
			"updatedAt":       now,
		}},
	)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to reject vendor")
		return
	}

	// A rejected vendor's listings come off the marketplace too.
	_, err = db.VenuesCollection.UpdateMany(ctx,
		VendorListings(vendorID),
		bson.M{"$set": bson.M{"isAvailable": false, "updatedAt": now}},
	)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Vendor rejected but listings failed to update")
		return
	}

	for _, category := range vendor.Categories {
		venues.InvalidateCache(category)
	}

	mq.Emit(ctx, mq.Notification{
		Kind:    mq.KindVendorModerated,
		To:      vendor.Email,
		Subject: "Update on your Shubharambh vendor application",
		Data: mailer.NotificationData{
			VendorName:   vendor.Name,
			BusinessName: vendor.BusinessName,
			Decision:     "rejected",
			Message:      vendor.RejectionReason,
			DashboardURL: mailer.DashboardURL("/dashboard/vendor"),
		},
	})

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Vendor rejected", "vendor": vendor})
}

// DeleteVendor handles DELETE /api/admin/vendors/:vendorid. Destructive and
// irreversible: the vendor and every listing they own are removed. The
// confirmation step lives at the caller boundary.
func DeleteVendor(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	vendorID := ps.ByName("vendorid")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	vendor, err := loadVendor(ctx, vendorID)
	if err != nil {
		http.Error(w, `{"error":"Vendor not found"}`, http.StatusNotFound)
		return
	}

	venuesDeleted, err := db.VenuesCollection.DeleteMany(ctx, VendorListings(vendorID))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete vendor listings")
		return
	}

	if _, err := db.VendorsCollection.DeleteOne(ctx, bson.M{"vendorid": vendorID}); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete vendor")
		return
	}

	for _, category := range vendor.Categories {
		venues.InvalidateCache(category)
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"message":         "Vendor deleted",
		"listingsDeleted": venuesDeleted.DeletedCount,
	})
}

func loadVendor(ctx context.Context, vendorID string) (*models.Vendor, error) {
	var vendor models.Vendor
	if err := db.VendorsCollection.FindOne(ctx, bson.M{"vendorid": vendorID}).Decode(&vendor); err != nil {
		return nil, err
	}
	return &vendor, nil
}
