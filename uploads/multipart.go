package uploads

import (
	"context"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"shubharambh/db"
	"shubharambh/models"
	"shubharambh/utils"

	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

const maxUploadBytes = 10 << 20 // 10 MB

// AttachListingImage handles POST /api/vendors/listings/:venueid/images,
// a multipart upload appended to an existing listing. The ownership check
// runs against the denormalized vendorid on the listing; the caller's
// vendor id arrives via the CallerVendorID hook set by the venues package.
func AttachListingImage(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	venueID := ps.ByName("venueid")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	vendorID := CallerVendorID(ctx, r)
	if vendorID == "" {
		http.Error(w, `{"error":"Listing not found or unauthorized"}`, http.StatusNotFound)
		return
	}

	var venue models.Venue
	err := db.VenuesCollection.FindOne(ctx, bson.M{"venueid": venueID, "vendorid": vendorID}).Decode(&venue)
	if err != nil {
		http.Error(w, `{"error":"Listing not found or unauthorized"}`, http.StatusNotFound)
		return
	}
	if len(venue.Images) >= MaxListingImages && !hasOnlyDefaults(venue.Images) {
		utils.RespondWithError(w, http.StatusConflict, "Listing already has the maximum number of photos")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	file, header, err := r.FormFile("image")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "An image file is required")
		return
	}
	defer file.Close()

	if !utils.ValidateImageFileType(w, header) {
		return
	}

	ext := filepath.Ext(header.Filename)
	if ext == "" {
		ext = ".jpg"
	}
	if err := utils.EnsureDir(listingDir); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to store image")
		return
	}

	id := uuid.New().String()
	path := filepath.Join(listingDir, id+ext)
	dst, err := os.Create(path)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to store image")
		return
	}
	if _, err := io.Copy(dst, file); err != nil {
		dst.Close()
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to store image")
		return
	}
	dst.Close()

	if err := createThumb(path, filepath.Join(listingDir, id+"_thumb.jpg")); err != nil {
		log.Printf("Thumbnail generation failed for %s: %v", id+ext, err)
	}

	url := "/static/listingpic/" + id + ext

	// Default placeholder images are replaced by the first real upload.
	images := venue.Images
	if hasOnlyDefaults(images) {
		images = nil
	}
	images = append(images, url)

	_, err = db.VenuesCollection.UpdateOne(ctx,
		bson.M{"venueid": venueID, "vendorid": vendorID},
		bson.M{"$set": bson.M{"images": images, "updatedAt": time.Now()}},
	)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to attach image")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{"url": url, "images": images})
}

func hasOnlyDefaults(images []string) bool {
	if len(images) == 0 {
		return false
	}
	for _, img := range images {
		if len(img) < len("/static/defaults/") || img[:len("/static/defaults/")] != "/static/defaults/" {
			return false
		}
	}
	return true
}

// CallerVendorID resolves the request to the caller's vendor id, or "".
// The venues package installs the real resolver at init time; a function
// var keeps this package free of an import cycle with vendors.
var CallerVendorID = func(ctx context.Context, r *http.Request) string { return "" }
