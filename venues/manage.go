package venues

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"shubharambh/db"
	"shubharambh/middleware"
	"shubharambh/models"
	"shubharambh/uploads"
	"shubharambh/utils"
	"shubharambh/vendors"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func init() {
	uploads.CallerVendorID = callerVendorID
}

// callerVendorID resolves the requesting vendor, if any. Used for the
// owner bypass on visibility checks; anonymous callers resolve to "".
func callerVendorID(ctx context.Context, r *http.Request) string {
	claims, err := middleware.ValidateJWT(r.Header.Get("Authorization"))
	if err != nil {
		return ""
	}
	vendor, err := vendors.Resolve(ctx, vendors.DB, vendors.SessionFromClaims(claims.UserID, claims.Email, claims.Username), "")
	if err != nil || vendor == nil {
		return ""
	}
	return vendor.VendorID
}

type editInput struct {
	Name        *string        `json:"name"`
	Description *string        `json:"description"`
	Location    *string        `json:"location"`
	City        *string        `json:"city"`
	Address     *string        `json:"address"`
	EventTypes  []string       `json:"eventTypes"`
	PriceMin    *int           `json:"priceMin"`
	PriceMax    *int           `json:"priceMax"`
	Images      []string       `json:"images"`
	Details     map[string]any `json:"serviceDetails"`
}

// EditListing handles PUT /api/vendors/listings/:venueid. Field edits only:
// moderation status and availability are never touched here, so an approved
// listing stays approved after an edit.
func EditListing(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("venueid")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	vendorID := callerVendorID(ctx, r)
	if vendorID == "" {
		http.Error(w, `{"error":"Listing not found or unauthorized"}`, http.StatusNotFound)
		return
	}

	var in editInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, `{"error":"Invalid JSON payload"}`, http.StatusBadRequest)
		return
	}

	var venue models.Venue
	err := db.VenuesCollection.FindOne(ctx, bson.M{"venueid": id, "vendorid": vendorID}).Decode(&venue)
	if err == mongo.ErrNoDocuments {
		// Same message whether the listing is missing or owned by someone
		// else; existence of other tenants' records must not leak.
		http.Error(w, `{"error":"Listing not found or unauthorized"}`, http.StatusNotFound)
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to load listing")
		return
	}

	set := bson.M{"updatedAt": time.Now()}
	if in.Name != nil && strings.TrimSpace(*in.Name) != "" {
		set["name"] = strings.TrimSpace(*in.Name)
	}
	if in.Description != nil {
		set["description"] = strings.TrimSpace(*in.Description)
	}
	if in.Location != nil && strings.TrimSpace(*in.Location) != "" {
		set["location"] = strings.TrimSpace(*in.Location)
	}
	if in.City != nil && strings.TrimSpace(*in.City) != "" {
		set["city"] = utils.NormalizeCity(*in.City)
	}
	if in.Address != nil {
		set["address"] = strings.TrimSpace(*in.Address)
	}
	if in.EventTypes != nil {
		set["eventTypes"] = in.EventTypes
	}
	if in.PriceMin != nil {
		set["priceRange.min"] = *in.PriceMin
	}
	if in.PriceMax != nil {
		set["priceRange.max"] = *in.PriceMax
	}
	if in.Details != nil {
		set["serviceDetails"] = in.Details
	}
	if in.Images != nil {
		if resolved := uploads.ResolveListingImages(in.Images); len(resolved) > 0 {
			set["images"] = resolved
		}
	}

	_, err = db.VenuesCollection.UpdateOne(ctx, bson.M{"venueid": id, "vendorid": vendorID}, bson.M{"$set": set})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update listing")
		return
	}

	InvalidateCache(venue.Category)
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Listing updated"})
}

// DeleteListing handles DELETE /api/vendors/listings/:venueid.
func DeleteListing(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("venueid")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	vendorID := callerVendorID(ctx, r)
	if vendorID == "" {
		http.Error(w, `{"error":"Listing not found or unauthorized"}`, http.StatusNotFound)
		return
	}

	var venue models.Venue
	err := db.VenuesCollection.FindOne(ctx, bson.M{"venueid": id, "vendorid": vendorID}).Decode(&venue)
	if err == mongo.ErrNoDocuments {
		http.Error(w, `{"error":"Listing not found or unauthorized"}`, http.StatusNotFound)
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to load listing")
		return
	}

	if _, err := db.VenuesCollection.DeleteOne(ctx, bson.M{"venueid": id, "vendorid": vendorID}); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete listing")
		return
	}

	InvalidateCache(venue.Category)
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Listing deleted"})
}
