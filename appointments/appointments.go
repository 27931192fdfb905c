package appointments

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
	VenueID       string `json:"venueId"`
	Type          string `json:"type"` // appointment or visit
	ScheduledDate string `json:"scheduledDate"`
	ScheduledTime string `json:"scheduledTime"`
	EventType     string `json:"eventType"`
	Attendees     int    `json:"attendees"`
	Phone         string `json:"phone"`
	Notes         string `json:"notes"`
}

// ValidateCreate returns a field-specific message for the first problem in
// an appointment submission, or "".
func ValidateCreate(in createInput) string {
	switch {
	case strings.TrimSpace(in.VenueID) == "":
		return "Listing is required"
	case strings.TrimSpace(in.ScheduledDate) == "":
		return "Date is required"
	case strings.TrimSpace(in.ScheduledTime) == "":
		return "Time is required"
	case strings.TrimSpace(in.Phone) == "":
		return "Phone number is required"
	}
	return ""
}

// CreateAppointment handles POST /api/appointments. "visit" is an in-person
// site tour; anything else is a general meeting.
func CreateAppointment(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
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
	if msg := ValidateCreate(in); msg != "" {
		utils.RespondWithError(w, http.StatusBadRequest, msg)
		return
	}
	if in.Type != models.AppointmentTypeVisit {
		in.Type = models.AppointmentTypeMeeting
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var venue models.Venue
	err = db.VenuesCollection.FindOne(ctx, bson.M{"venueid": in.VenueID}).Decode(&venue)
	if err == mongo.ErrNoDocuments {
		http.Error(w, `{"error":"Listing not found"}`, http.StatusNotFound)
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to load listing")
		return
	}

	appt := models.Appointment{
		AppointmentID: utils.GenerateID("a", 12),
		UserID:        claims.UserID,
		VenueID:       venue.VenueID,
		VendorID:      venue.VendorID,
		Type:          in.Type,
		ScheduledDate: in.ScheduledDate,
		ScheduledTime: in.ScheduledTime,
		EventType:     strings.TrimSpace(in.EventType),
		Attendees:     in.Attendees,
		Phone:         strings.TrimSpace(in.Phone),
		Notes:         strings.TrimSpace(in.Notes),
		Status:        models.AppointmentPending,
		CreatedAt:     time.Now(),
	}

	if _, err := db.AppointmentsCollection.InsertOne(ctx, appt); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to book appointment")
		return
	}

	notifyVendor(ctx, appt, venue, claims.Username)

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{
		"appointmentid": appt.AppointmentID,
		"message":       "Appointment requested",
	})
}

func notifyVendor(ctx context.Context, appt models.Appointment, venue models.Venue, userName string) {
	var vendor models.Vendor
	if err := db.VendorsCollection.FindOne(ctx, bson.M{"vendorid": appt.VendorID}).Decode(&vendor); err != nil {
		return
	}

	mq.Emit(ctx, mq.Notification{
		Kind:    mq.KindAppointmentRequested,
		To:      vendor.Email,
		Subject: "New appointment request on Shubharambh",
		Data: mailer.NotificationData{
			UserName:     userName,
			VendorName:   vendor.Name,
			BusinessName: vendor.BusinessName,
			ListingName:  venue.Name,
			EventType:    appt.EventType,
			ScheduledAt:  appt.ScheduledDate + " " + appt.ScheduledTime,
			DashboardURL: mailer.DashboardURL("/dashboard/vendor/appointments"),
		},
	})
}

// GetMyAppointments handles GET /api/user/appointments.
func GetMyAppointments(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	appts, err := findAppointments(ctx, bson.M{"userId": userID})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch appointments")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"appointments": appts})
}

// GetVendorAppointments handles GET /api/vendors/me/appointments.
func GetVendorAppointments(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
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
		utils.RespondWithJSON(w, http.StatusOK, utils.M{"appointments": []models.Appointment{}})
		return
	}

	appts, err := findAppointments(ctx, bson.M{"vendorid": vendor.VendorID})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch appointments")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"appointments": appts})
}

// DecideAppointment handles POST /api/appointments/:appointmentid/decide
// with {"action":"confirm"|"reject","reason":...}. Only the owning vendor
// may decide, and a decision is terminal.
func DecideAppointment(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	apptID := ps.ByName("appointmentid")

	claims, err := middleware.ValidateJWT(r.Header.Get("Authorization"))
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var payload struct {
		Action string `json:"action"`
		Reason string `json:"reason"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, `{"error":"Invalid JSON payload"}`, http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	vendor, err := vendors.Resolve(ctx, vendors.DB, vendors.SessionFromClaims(claims.UserID, claims.Email, claims.Username), "")
	if err != nil || vendor == nil {
		http.Error(w, `{"error":"Appointment not found or unauthorized"}`, http.StatusNotFound)
		return
	}

	var appt models.Appointment
	if err := db.AppointmentsCollection.FindOne(ctx, bson.M{"appointmentid": apptID}).Decode(&appt); err != nil {
		http.Error(w, `{"error":"Appointment not found or unauthorized"}`, http.StatusNotFound)
		return
	}
	if appt.VendorID != vendor.VendorID {
		http.Error(w, `{"error":"Appointment not found or unauthorized"}`, http.StatusNotFound)
		return
	}

	now := time.Now()
	switch payload.Action {
	case "confirm":
		err = appt.Confirm(now)
	case "reject":
		err = appt.Reject(strings.TrimSpace(payload.Reason), now)
	default:
		utils.RespondWithError(w, http.StatusBadRequest, "Action must be confirm or reject")
		return
	}
	if err != nil {
		decideGuardError(w, err)
		return
	}

	res, err := db.AppointmentsCollection.UpdateOne(ctx,
		bson.M{"appointmentid": apptID, "status": models.AppointmentPending},
		bson.M{"$set": bson.M{
			"status":          appt.Status,
			"rejectionReason": appt.RejectionReason,
			"decidedAt":       appt.DecidedAt,
		}},
	)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to save decision")
		return
	}
	if res.MatchedCount == 0 {
		utils.RespondWithError(w, http.StatusConflict, "This appointment has already been decided")
		return
	}

	notifyUser(ctx, appt, vendor)

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Decision recorded", "appointment": appt})
}

func decideGuardError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrAlreadyDecided):
		utils.RespondWithError(w, http.StatusConflict, "This appointment has already been decided")
	case errors.Is(err, models.ErrReasonRequired):
		utils.RespondWithError(w, http.StatusBadRequest, "A reason is required to decline an appointment")
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to save decision")
	}
}

func notifyUser(ctx context.Context, appt models.Appointment, vendor *models.Vendor) {
	var user models.User
	if err := db.UserCollection.FindOne(ctx, bson.M{"userid": appt.UserID}).Decode(&user); err != nil {
		return
	}

	var venue models.Venue
	_ = db.VenuesCollection.FindOne(ctx, bson.M{"venueid": appt.VenueID}).Decode(&venue)

	mq.Emit(ctx, mq.Notification{
		Kind:    mq.KindAppointmentDecided,
		To:      user.Email,
		Subject: "Update on your Shubharambh appointment",
		Data: mailer.NotificationData{
			UserName:     user.Name,
			BusinessName: vendor.BusinessName,
			ListingName:  venue.Name,
			ScheduledAt:  appt.ScheduledDate + " " + appt.ScheduledTime,
			Decision:     string(appt.Status),
			Message:      appt.RejectionReason,
			DashboardURL: mailer.DashboardURL("/dashboard/appointments"),
		},
	})
}

// CancelAppointment handles POST /api/appointments/:appointmentid/cancel.
// Users may back out only while the appointment is still pending.
func CancelAppointment(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	apptID := ps.ByName("appointmentid")

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var appt models.Appointment
	err := db.AppointmentsCollection.FindOne(ctx, bson.M{"appointmentid": apptID, "userId": userID}).Decode(&appt)
	if err != nil {
		http.Error(w, `{"error":"Appointment not found or unauthorized"}`, http.StatusNotFound)
		return
	}

	if err := appt.Cancel(time.Now()); err != nil {
		utils.RespondWithError(w, http.StatusConflict, "Only pending appointments can be cancelled")
		return
	}

	res, err := db.AppointmentsCollection.UpdateOne(ctx,
		bson.M{"appointmentid": apptID, "userId": userID, "status": models.AppointmentPending},
		bson.M{"$set": bson.M{"status": appt.Status, "decidedAt": appt.DecidedAt}},
	)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to cancel appointment")
		return
	}
	if res.MatchedCount == 0 {
		utils.RespondWithError(w, http.StatusConflict, "Only pending appointments can be cancelled")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Appointment cancelled"})
}

func findAppointments(ctx context.Context, filter bson.M) ([]models.Appointment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := db.AppointmentsCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	appts := []models.Appointment{}
	if err := cursor.All(ctx, &appts); err != nil {
		return nil, err
	}
	return appts, nil
}
