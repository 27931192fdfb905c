package vendors

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"shubharambh/catalog"
	"shubharambh/db"
	"shubharambh/middleware"
	"shubharambh/models"
	"shubharambh/uploads"
	"shubharambh/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type SubmissionInput struct {
	Name           string         `json:"name"`
	Email          string         `json:"email"`
	Phone          string         `json:"phone"`
	BusinessName   string         `json:"businessName"`
	Description    string         `json:"description"`
	Category       string         `json:"category"`
	ListingName    string         `json:"listingName"`
	City           string         `json:"city"`
	Location       string         `json:"location"`
	Address        string         `json:"address"`
	EventTypes     []string       `json:"eventTypes"`
	PriceMin       int            `json:"priceMin"`
	PriceMax       int            `json:"priceMax"`
	Capacity       int            `json:"capacity"`
	ServiceDetails map[string]any `json:"serviceDetails"`
	Images         []string       `json:"images"` // hosted URLs or inline data URIs
}

// ValidateSubmission returns a field-specific message for the first missing
// required field, or "" when the input is acceptable.
func ValidateSubmission(in SubmissionInput) string {
	switch {
	case strings.TrimSpace(in.Name) == "":
		return "Contact name is required"
	case strings.TrimSpace(in.Email) == "":
		return "Email is required"
	case strings.TrimSpace(in.BusinessName) == "":
		return "Business name is required"
	case strings.TrimSpace(in.ListingName) == "":
		return "Listing name is required"
	case strings.TrimSpace(in.City) == "":
		return "City is required"
	case strings.TrimSpace(in.Location) == "":
		return "Location is required"
	case !catalog.IsValidSlug(in.Category):
		return "Unknown category"
	}
	return ""
}

// BuildVenue assembles the pending listing from the submission and the
// category table. Images must already be resolved to hosted URLs.
func BuildVenue(in SubmissionInput, vendorID string, images []string, now time.Time) models.Venue {
	spec, _ := catalog.Lookup(in.Category)
	if len(images) == 0 {
		images = spec.DefaultImages
	}
	minCap, maxCap := catalog.DeriveCapacity(in.Category, in.Capacity)

	return models.Venue{
		VenueID:        utils.GenerateID("l", 12),
		VendorID:       vendorID,
		Name:           strings.TrimSpace(in.ListingName),
		Type:           in.Category,
		Category:       in.Category,
		EventTypes:     in.EventTypes,
		Location:       strings.TrimSpace(in.Location),
		City:           utils.NormalizeCity(in.City),
		Address:        strings.TrimSpace(in.Address),
		Capacity:       models.Capacity{Min: minCap, Max: maxCap},
		PriceRange:     models.PriceRange{Min: in.PriceMin, Max: in.PriceMax},
		PriceUnit:      spec.PriceUnit,
		Images:         images,
		Amenities:      spec.Amenities,
		Highlights:     spec.Highlights,
		Description:    strings.TrimSpace(in.Description),
		Status:         models.StatusPending,
		IsAvailable:    false,
		ServiceDetails: in.ServiceDetails,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// SubmitListing handles POST /api/vendors/listings: a first-time vendor
// registration plus listing, or an additional listing for an existing
// vendor. Both records land in pending state awaiting admin review.
func SubmitListing(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	claims, err := middleware.ValidateJWT(r.Header.Get("Authorization"))
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var in SubmissionInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, `{"error":"Invalid JSON payload"}`, http.StatusBadRequest)
		return
	}

	if msg := ValidateSubmission(in); msg != "" {
		utils.RespondWithError(w, http.StatusBadRequest, msg)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	sess := SessionFromClaims(claims.UserID, claims.Email, claims.Username)
	vendor, err := Resolve(ctx, DB, sess, in.Email)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Something went wrong. Please try again.")
		return
	}

	now := time.Now()
	if vendor == nil {
		vendor = &models.Vendor{
			VendorID:     utils.GenerateID("v", 12),
			UserID:       claims.UserID,
			Name:         strings.TrimSpace(in.Name),
			Email:        utils.NormalizeEmail(in.Email),
			Phone:        strings.TrimSpace(in.Phone),
			BusinessName: strings.TrimSpace(in.BusinessName),
			Description:  strings.TrimSpace(in.Description),
			Categories:   []string{in.Category},
			Locations:    []string{utils.NormalizeCity(in.City)},
			PriceRange:   models.PriceRange{Min: in.PriceMin, Max: in.PriceMax},
			Status:       models.StatusPending,
			IsActive:     false,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if _, err := db.VendorsCollection.InsertOne(ctx, vendor); err != nil {
			if mongo.IsDuplicateKeyError(err) {
				utils.RespondWithError(w, http.StatusConflict, "A vendor with this email already exists")
				return
			}
			utils.RespondWithError(w, http.StatusInternalServerError, "Something went wrong. Please try again.")
			return
		}
	} else {
		// Additional listing: grow the vendor's category/location sets.
		_, err := db.VendorsCollection.UpdateOne(ctx,
			bson.M{"vendorid": vendor.VendorID},
			bson.M{
				"$addToSet": bson.M{
					"categories": in.Category,
					"locations":  utils.NormalizeCity(in.City),
				},
				"$set": bson.M{"updatedAt": now},
			},
		)
		if err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, "Something went wrong. Please try again.")
			return
		}
	}

	// Inline image upload failures are soft: the listing goes ahead with
	// whatever made it, falling back to the category defaults.
	images := uploads.ResolveListingImages(in.Images)
	venue := BuildVenue(in, vendor.VendorID, images, now)

	if _, err := db.VenuesCollection.InsertOne(ctx, venue); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Something went wrong. Please try again.")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{
		"venueid": venue.VenueID,
		"message": "Your " + catalog.Label(in.Category) + " listing has been submitted for review",
	})
}
