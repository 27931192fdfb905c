package quotes

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"shubharambh/db"
	"shubharambh/mailer"
	"shubharambh/middleware"
	"shubharambh/models"
	"shubharambh/mq"
	"shubharambh/utils"
	"shubharambh/vendors"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type createInput struct {
	VenueID         string         `json:"venueId"`
	VendorIDs       []string       `json:"vendorIds"`
	EventType       string         `json:"eventType"`
	Location        string         `json:"location"`
	EventDate       string         `json:"eventDate"`
	Attendees       int            `json:"attendees"`
	BudgetMin       int            `json:"budgetMin"`
	BudgetMax       int            `json:"budgetMax"`
	Requirements    string         `json:"requirements"`
	Notes           string         `json:"notes"`
	Category        string         `json:"category"`
	CategoryDetails map[string]any `json:"categoryDetails"`
}

// CreateQuote handles POST /api/quotes. The target vendor set is captured
// at creation time: either supplied directly or derived from the listing,
// never re-derived later.
func CreateQuote(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	claims, err := middleware.ValidateJWT(r.Header.Get("Authorization"))
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var in createInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, `{"error":"Invalid JSON payload"}`, http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(in.EventType) == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Event type is required")
		return
	}
	if strings.TrimSpace(in.Requirements) == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Requirements are required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	vendorIDs := in.VendorIDs
	if in.VenueID != "" {
		var venue models.Venue
		err := db.VenuesCollection.FindOne(ctx, bson.M{"venueid": in.VenueID}).Decode(&venue)
		if err == mongo.ErrNoDocuments {
			http.Error(w, `{"error":"Listing not found"}`, http.StatusNotFound)
			return
		}
		if err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to load listing")
			return
		}
		vendorIDs = utils.AddToSet(vendorIDs, venue.VendorID)
		if in.Category == "" {
			in.Category = venue.Category
		}
	}
	if len(vendorIDs) == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "At least one vendor is required")
		return
	}

	quote := models.QuoteRequest{
		QuoteID:         utils.GenerateID("q", 12),
		UserID:          claims.UserID,
		VenueID:         in.VenueID,
		VendorIDs:       vendorIDs,
		EventType:       strings.TrimSpace(in.EventType),
		Location:        strings.TrimSpace(in.Location),
		EventDate:       in.EventDate,
		Attendees:       in.Attendees,
		BudgetMin:       in.BudgetMin,
		BudgetMax:       in.BudgetMax,
		Requirements:    strings.TrimSpace(in.Requirements),
		Notes:           strings.TrimSpace(in.Notes),
		Category:        in.Category,
		CategoryDetails: in.CategoryDetails,
		Status:          models.QuotePending,
		CreatedAt:       time.Now(),
	}

	if _, err := db.QuoteRequestsCollection.InsertOne(ctx, quote); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to submit quote request")
		return
	}

	notifyVendors(ctx, quote, claims.Username)

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{
		"quoteid": quote.QuoteID,
		"message": "Quote request sent",
	})
}

// notifyVendors emails every addressed vendor. Best-effort: delivery rides
// the redis outbox and failures never surface to the requester.
func notifyVendors(ctx context.Context, quote models.QuoteRequest, userName string) {
	cursor, err := db.VendorsCollection.Find(ctx, bson.M{"vendorid": bson.M{"$in": quote.VendorIDs}})
	if err != nil {
		return
	}
	defer cursor.Close(ctx)

	var targets []models.Vendor
	if err := cursor.All(ctx, &targets); err != nil {
		return
	}

	for _, v := range targets {
		mq.Emit(ctx, mq.Notification{
			Kind:    mq.KindQuoteRequested,
			To:      v.Email,
			Subject: "New quote request on Shubharambh",
			Data: mailer.NotificationData{
				UserName:     userName,
				VendorName:   v.Name,
				BusinessName: v.BusinessName,
				EventType:    quote.EventType,
				EventDate:    quote.EventDate,
				Requirements: quote.Requirements,
				DashboardURL: mailer.DashboardURL("/dashboard/vendor/quotes"),
			},
		})
	}
}

// GetMyQuotes handles GET /api/user/quotes for the user dashboard.
func GetMyQuotes(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	quotes, err := findQuotes(ctx, bson.M{"userId": userID})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch quote requests")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"quotes": quotes})
}

// GetVendorQuotes handles GET /api/vendors/me/quotes for the vendor
// dashboard: every request addressed to the resolved vendor.
func GetVendorQuotes(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	claims, err := middleware.ValidateJWT(r.Header.Get("Authorization"))
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	vendor, err := vendors.Resolve(ctx, vendors.DB, vendors.SessionFromClaims(claims.UserID, claims.Email, claims.Username), "")
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to load vendor profile")
		return
	}
	if vendor == nil {
		utils.RespondWithJSON(w, http.StatusOK, utils.M{"quotes": []models.QuoteRequest{}})
		return
	}

	quotes, err := findQuotes(ctx, bson.M{"vendorIds": vendor.VendorID})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch quote requests")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"quotes": quotes})
}

// RespondToQuote handles POST /api/quotes/:quoteid/respond with
// {"action":"accept"|"reject","message":...}. The caller must resolve to a
// vendor the request was addressed to; a prior decision is never
// overwritten.
func RespondToQuote(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	quoteID := ps.ByName("quoteid")

	claims, err := middleware.ValidateJWT(r.Header.Get("Authorization"))
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var payload struct {
		Action  string `json:"action"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, `{"error":"Invalid JSON payload"}`, http.StatusBadRequest)
		return
	}

	var status models.ResponseStatus
	switch payload.Action {
	case "accept":
		status = models.ResponseAccepted
	case "reject":
		status = models.ResponseRejected
	default:
		utils.RespondWithError(w, http.StatusBadRequest, "Action must be accept or reject")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	vendor, err := vendors.Resolve(ctx, vendors.DB, vendors.SessionFromClaims(claims.UserID, claims.Email, claims.Username), "")
	if err != nil || vendor == nil {
		http.Error(w, `{"error":"Quote request not found or unauthorized"}`, http.StatusNotFound)
		return
	}

	var quote models.QuoteRequest
	if err := db.QuoteRequestsCollection.FindOne(ctx, bson.M{"quoteid": quoteID}).Decode(&quote); err != nil {
		http.Error(w, `{"error":"Quote request not found or unauthorized"}`, http.StatusNotFound)
		return
	}

	if err := quote.Respond(vendor.VendorID, status, strings.TrimSpace(payload.Message), time.Now()); err != nil {
		respondGuardError(w, err)
		return
	}

	// Guard the write on the stored state too, so two racing decisions
	// cannot both land.
	res, err := db.QuoteRequestsCollection.UpdateOne(ctx,
		bson.M{"quoteid": quoteID, "status": models.QuotePending, "vendorResponse": bson.M{"$exists": false}},
		bson.M{"$set": bson.M{
			"status":         quote.Status,
			"vendorResponse": quote.VendorResponse,
		}},
	)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to save response")
		return
	}
	if res.MatchedCount == 0 {
		utils.RespondWithError(w, http.StatusConflict, "This request has already been responded to")
		return
	}

	notifyRequester(ctx, quote, vendor)

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Response recorded", "quote": quote})
}

func respondGuardError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrUnauthorized):
		http.Error(w, `{"error":"Quote request not found or unauthorized"}`, http.StatusNotFound)
	case errors.Is(err, models.ErrAlreadyResponded):
		utils.RespondWithError(w, http.StatusConflict, "This request has already been responded to")
	case errors.Is(err, models.ErrReasonRequired):
		utils.RespondWithError(w, http.StatusBadRequest, "A reason is required to decline a request")
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to save response")
	}
}

func notifyRequester(ctx context.Context, quote models.QuoteRequest, vendor *models.Vendor) {
	var user models.User
	if err := db.UserCollection.FindOne(ctx, bson.M{"userid": quote.UserID}).Decode(&user); err != nil {
		return
	}

	mq.Emit(ctx, mq.Notification{
		Kind:    mq.KindQuoteResponded,
		To:      user.Email,
		Subject: "A vendor responded to your quote request",
		Data: mailer.NotificationData{
			UserName:     user.Name,
			BusinessName: vendor.BusinessName,
			Decision:     string(quote.VendorResponse.Status),
			Message:      quote.VendorResponse.Message,
			DashboardURL: mailer.DashboardURL("/dashboard/quotes"),
		},
	})
}

func findQuotes(ctx context.Context, filter bson.M) ([]models.QuoteRequest, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := db.QuoteRequestsCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	quotes := []models.QuoteRequest{}
	if err := cursor.All(ctx, &quotes); err != nil {
		return nil, err
	}
	return quotes, nil
}
