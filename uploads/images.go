package uploads

import (
	"encoding/base64"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"shubharambh/utils"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

var listingDir = "./static/listingpic"

var extByMIME = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

// MaxListingImages caps how many photos a listing may carry.
const MaxListingImages = 3

var ErrBadDataURI = errors.New("malformed data URI")

// ParseDataURI splits a "data:image/png;base64,..." payload into its
// extension and raw bytes.
func ParseDataURI(uri string) (ext string, data []byte, err error) {
	if !strings.HasPrefix(uri, "data:") {
		return "", nil, ErrBadDataURI
	}
	meta, payload, found := strings.Cut(uri[5:], ",")
	if !found {
		return "", nil, ErrBadDataURI
	}
	mime, enc, _ := strings.Cut(meta, ";")
	if enc != "base64" {
		return "", nil, ErrBadDataURI
	}
	ext, ok := extByMIME[mime]
	if !ok {
		return "", nil, fmt.Errorf("unsupported image type %q", mime)
	}
	data, err = base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, ErrBadDataURI
	}
	return ext, data, nil
}

// ResolveListingImages turns submitted images into hosted URLs. Hosted URLs
// pass through untouched; inline data URIs are stored locally with a
// thumbnail. One failed upload never aborts the rest; failures are logged
// and the listing proceeds with whatever succeeded.
func ResolveListingImages(images []string) []string {
	var resolved []string
	for i, img := range images {
		if len(resolved) >= MaxListingImages {
			break
		}
		if img == "" {
			continue
		}
		if !strings.HasPrefix(img, "data:") {
			resolved = append(resolved, img)
			continue
		}
		url, err := saveInlineImage(img)
		if err != nil {
			log.Printf("Listing image %d upload failed: %v", i, err)
			continue
		}
		resolved = append(resolved, url)
	}
	return resolved
}

func saveInlineImage(dataURI string) (string, error) {
	ext, data, err := ParseDataURI(dataURI)
	if err != nil {
		return "", err
	}

	if err := utils.EnsureDir(listingDir); err != nil {
		return "", err
	}

	id := uuid.New().String()
	filename := id + ext
	path := filepath.Join(listingDir, filename)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", err
	}

	// Thumbnail failures are not worth failing the upload over.
	if err := createThumb(path, filepath.Join(listingDir, id+"_thumb.jpg")); err != nil {
		log.Printf("Thumbnail generation failed for %s: %v", filename, err)
	}

	return "/static/listingpic/" + filename, nil
}

func createThumb(srcPath, dstPath string) error {
	img, err := imaging.Open(srcPath)
	if err != nil {
		return err
	}
	thumb := imaging.Fit(img, 300, 200, imaging.Lanczos)
	return imaging.Save(thumb, dstPath)
}
