package uploads

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDataURI(t *testing.T) {
	payload := []byte{0xFF, 0xD8, 0xFF, 0xE0}
	uri := "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(payload)

	ext, data, err := ParseDataURI(uri)
	require.NoError(t, err)
	assert.Equal(t, ".jpg", ext)
	assert.Equal(t, payload, data)
}

func TestParseDataURIPNG(t *testing.T) {
	uri := "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte("fake"))
	ext, _, err := ParseDataURI(uri)
	require.NoError(t, err)
	assert.Equal(t, ".png", ext)
}

func TestParseDataURIMalformed(t *testing.T) {
	for _, uri := range []string{
		"https://cdn.example.com/pic.jpg",
		"data:image/jpeg;base64",
		"data:image/jpeg,notbase64flag",
		"data:image/jpeg;base64,!!!not-base64!!!",
	} {
		_, _, err := ParseDataURI(uri)
		assert.ErrorIs(t, err, ErrBadDataURI, "uri %q", uri)
	}
}

func TestParseDataURIUnsupportedType(t *testing.T) {
	uri := "data:application/pdf;base64," + base64.StdEncoding.EncodeToString([]byte("pdf"))
	_, _, err := ParseDataURI(uri)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrBadDataURI)
}

func TestResolveListingImagesPassesThroughURLs(t *testing.T) {
	urls := []string{
		"https://cdn.example.com/hall.jpg",
		"/static/defaults/venues-1.jpg",
	}
	assert.Equal(t, urls, ResolveListingImages(urls))
}

func TestResolveListingImagesCapsAtLimit(t *testing.T) {
	urls := []string{"a.jpg", "b.jpg", "c.jpg", "d.jpg", "e.jpg"}
	resolved := ResolveListingImages(urls)
	assert.Len(t, resolved, MaxListingImages)
}

func TestResolveListingImagesSkippedEntriesDontCount(t *testing.T) {
	// empty and failed entries must not eat into the cap
	resolved := ResolveListingImages([]string{
		"",
		"data:image/jpeg;base64,%%%broken%%%",
		"a.jpg", "b.jpg", "c.jpg",
	})
	assert.Equal(t, []string{"a.jpg", "b.jpg", "c.jpg"}, resolved)
}

func TestHasOnlyDefaults(t *testing.T) {
	assert.True(t, hasOnlyDefaults([]string{
		"/static/defaults/caterers-1.jpg",
		"/static/defaults/caterers-2.jpg",
	}))
	assert.False(t, hasOnlyDefaults([]string{
		"/static/defaults/caterers-1.jpg",
		"/static/listingpic/abc.jpg",
	}))
	assert.False(t, hasOnlyDefaults(nil))
}

func TestResolveListingImagesSkipsBadInline(t *testing.T) {
	resolved := ResolveListingImages([]string{
		"https://cdn.example.com/hall.jpg",
		"data:image/jpeg;base64,%%%broken%%%",
	})
	assert.Equal(t, []string{"https://cdn.example.com/hall.jpg"}, resolved)
}
