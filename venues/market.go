package venues

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"shubharambh/catalog"
	"shubharambh/db"
	"shubharambh/models"
	"shubharambh/rdx"
	"shubharambh/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// publicFilter is the visibility invariant for every marketplace query:
// only approved and available listings are served to end users.
func publicFilter() bson.M {
	return bson.M{"status": models.StatusApproved, "isAvailable": true}
}

func cacheKey(category, city string) string {
	return "venues:" + category + ":" + city
}

// InvalidateCache drops cached marketplace lists for a category. Called
// after moderation decisions and vendor edits.
func InvalidateCache(category string) {
	if err := rdx.RdxDel(cacheKey(category, "")); err != nil {
		log.Printf("Cache invalidation failed for %s: %v", category, err)
	}
}

// GetByCategory handles GET /api/categories/:category/venues with an
// optional ?city= filter.
func GetByCategory(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	category := ps.ByName("category")
	if !catalog.IsValidSlug(category) {
		http.Error(w, `{"error":"Unknown category"}`, http.StatusBadRequest)
		return
	}
	city := r.URL.Query().Get("city")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	// Try cache for the unfiltered category list
	if city == "" {
		if cached, _ := rdx.RdxGet(cacheKey(category, "")); cached != "" {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(cached))
			return
		}
	}

	filter := publicFilter()
	filter["category"] = category
	if city != "" {
		filter["city"] = utils.NormalizeCity(city)
	}

	venues, err := findVenues(ctx, filter)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch listings")
		return
	}

	payload, _ := json.Marshal(utils.M{"venues": venues})
	if city == "" {
		_ = rdx.SetWithExpiry(cacheKey(category, ""), string(payload), 5*time.Minute)
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(payload)
}

// GetAll handles GET /api/venues with optional ?city=, ?category=,
// ?minCapacity= filters.
func GetAll(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	filter := publicFilter()
	if category := r.URL.Query().Get("category"); category != "" {
		filter["category"] = category
	}
	if city := r.URL.Query().Get("city"); city != "" {
		filter["city"] = utils.NormalizeCity(city)
	}
	if mc := r.URL.Query().Get("minCapacity"); mc != "" {
		if n, err := strconv.Atoi(mc); err == nil && n > 0 {
			filter["capacity.max"] = bson.M{"$gte": n}
		}
	}

	venues, err := findVenues(ctx, filter)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch listings")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"venues": venues})
}

// GetVenue handles GET /api/venues/:venueid. Pending and rejected listings
// are only served to their owning vendor; everyone else gets a 404 so the
// listing's existence does not leak.
func GetVenue(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("venueid")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var venue models.Venue
	err := db.VenuesCollection.FindOne(ctx, bson.M{"venueid": id}).Decode(&venue)
	if err == mongo.ErrNoDocuments {
		http.Error(w, `{"error":"Listing not found"}`, http.StatusNotFound)
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch listing")
		return
	}

	if !venue.VisibleTo(callerVendorID(ctx, r)) {
		http.Error(w, `{"error":"Listing not found"}`, http.StatusNotFound)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"venue": venue})
}

// DistinctCities handles GET /api/categories/:category/cities. Only
// cities with at least one approved, available listing are returned; the
// result feeds the browse filter dropdown.
func DistinctCities(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	category := ps.ByName("category")
	if !catalog.IsValidSlug(category) {
		http.Error(w, `{"error":"Unknown category"}`, http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	filter := publicFilter()
	filter["category"] = category

	raw, err := db.VenuesCollection.Distinct(ctx, "city", filter)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch cities")
		return
	}

	cities := []string{}
	for _, v := range raw {
		if s, ok := v.(string); ok && s != "" {
			cities = append(cities, s)
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"cities": cities})
}

func findVenues(ctx context.Context, filter bson.M) ([]models.Venue, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := db.VenuesCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	venues := []models.Venue{}
	if err := cursor.All(ctx, &venues); err != nil {
		return nil, err
	}
	return venues, nil
}
