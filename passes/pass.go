package passes

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"net/http"
	"os"
	"time"

	"shubharambh/db"
	"shubharambh/models"
	"shubharambh/utils"

	"github.com/julienschmidt/httprouter"
	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"
	"go.mongodb.org/mongo-driver/bson"
)

func hmacSecret() []byte {
	if s := os.Getenv("PASS_SIGNING_SECRET"); s != "" {
		return []byte(s)
	}
	return []byte("change_me_in_production")
}

// SignPayload produces the QR payload: appointmentID|venueID|timestamp|sig.
// Vendors scan it at the gate to check the pass was issued by us.
func SignPayload(appointmentID, venueID string, issuedAt time.Time) string {
	data := fmt.Sprintf("%s|%s|%d", appointmentID, venueID, issuedAt.Unix())
	h := hmac.New(sha256.New, hmacSecret())
	h.Write([]byte(data))
	sig := base64.StdEncoding.EncodeToString(h.Sum(nil))
	return data + "|" + sig
}

// VerifyPayload checks a scanned payload's signature.
func VerifyPayload(payload string) bool {
	idx := -1
	for i := len(payload) - 1; i >= 0; i-- {
		if payload[i] == '|' {
			idx = i
			break
		}
	}
	if idx <= 0 {
		return false
	}
	data, sig := payload[:idx], payload[idx+1:]
	h := hmac.New(sha256.New, hmacSecret())
	h.Write([]byte(data))
	expected := base64.StdEncoding.EncodeToString(h.Sum(nil))
	return hmac.Equal([]byte(sig), []byte(expected))
}

// PrintPass handles GET /api/appointments/:appointmentid/pass, returning a
// printable PDF for the caller's own confirmed appointment or visit.
func PrintPass(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
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
	if appt.Status != models.AppointmentConfirmed {
		utils.RespondWithError(w, http.StatusConflict, "Pass available only for confirmed appointments")
		return
	}

	var venue models.Venue
	_ = db.VenuesCollection.FindOne(ctx, bson.M{"venueid": appt.VenueID}).Decode(&venue)

	qrPNG, err := qrcode.Encode(SignPayload(appt.AppointmentID, appt.VenueID, time.Now()), qrcode.Medium, 256)
	if err != nil {
		http.Error(w, "Failed to generate QR code", http.StatusInternalServerError)
		return
	}

	kind := "Appointment Pass"
	if appt.Type == models.AppointmentTypeVisit {
		kind = "Site Visit Pass"
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "Shubharambh "+kind)
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 10, fmt.Sprintf("Listing: %s", venue.Name))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Location: %s, %s", venue.Location, venue.City))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("When: %s at %s", appt.ScheduledDate, appt.ScheduledTime))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Contact: %s", appt.Phone))
	pdf.Ln(12)

	imageOpts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("qr", imageOpts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("qr", 150, 40, 40, 40, false, imageOpts, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		http.Error(w, "Failed to generate PDF", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=pass-%s.pdf", appt.AppointmentID))
	w.Write(buf.Bytes())
}
