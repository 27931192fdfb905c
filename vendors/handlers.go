package vendors

import (
	"context"
	"net/http"
	"time"

	"shubharambh/db"
	"shubharambh/middleware"
	"shubharambh/models"
	"shubharambh/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetMyVendor handles GET /api/vendors/me. A 200 with vendor=null means the
// caller has no vendor profile yet and the UI shows first-time onboarding.
func GetMyVendor(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	claims, err := middleware.ValidateJWT(r.Header.Get("Authorization"))
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	vendor, err := Resolve(ctx, DB, SessionFromClaims(claims.UserID, claims.Email, claims.Username), "")
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to load vendor profile")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"vendor": vendor})
}

// GetMyListings handles GET /api/vendors/me/listings, returning the caller's
// listings in every moderation state.
func GetMyListings(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	claims, err := middleware.ValidateJWT(r.Header.Get("Authorization"))
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	vendor, err := Resolve(ctx, DB, SessionFromClaims(claims.UserID, claims.Email, claims.Username), "")
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to load vendor profile")
		return
	}
	if vendor == nil {
		utils.RespondWithJSON(w, http.StatusOK, utils.M{"listings": []models.Venue{}})
		return
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := db.VenuesCollection.Find(ctx, bson.M{"vendorid": vendor.VendorID}, opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch listings")
		return
	}
	defer cursor.Close(ctx)

	listings := []models.Venue{}
	if err := cursor.All(ctx, &listings); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error processing listings")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"listings": listings, "vendor": vendor})
}
