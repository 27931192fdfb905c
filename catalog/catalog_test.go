package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupCaterers(t *testing.T) {
	spec, ok := Lookup("caterers")
	require.True(t, ok)

	assert.Equal(t, "Caterers", spec.Label)
	assert.Equal(t, "per plate", spec.PriceUnit)
	assert.Equal(t, []string{"Multi-Cuisine", "Live Counters", "Buffet", "Service Staff"}, spec.Amenities)
	assert.Len(t, spec.DefaultImages, 4)
	for _, img := range spec.DefaultImages {
		assert.Contains(t, img, "/static/defaults/caterers-")
	}
}

func TestCategoryFieldsDifferPerCategory(t *testing.T) {
	photo, ok := Lookup("photographers")
	require.True(t, ok)
	cater, ok := Lookup("caterers")
	require.True(t, ok)

	photoKeys := fieldKeys(photo)
	caterKeys := fieldKeys(cater)

	assert.Contains(t, photoKeys, "photoStyles")
	assert.Contains(t, caterKeys, "cuisines")
	assert.Contains(t, caterKeys, "minPlates")
	assert.NotContains(t, photoKeys, "cuisines")
}

func fieldKeys(s Spec) []string {
	keys := make([]string, 0, len(s.Fields))
	for _, f := range s.Fields {
		keys = append(keys, f.Key)
	}
	return keys
}

func TestIsValidSlug(t *testing.T) {
	assert.True(t, IsValidSlug("venues"))
	assert.True(t, IsValidSlug("mehendi-artists"))
	assert.False(t, IsValidSlug("plumbers"))
	assert.False(t, IsValidSlug(""))
}

func TestAllIsOrderedAndComplete(t *testing.T) {
	all := All()
	require.Len(t, all, 9)
	assert.Equal(t, "venues", all[0].Slug)
	assert.Equal(t, "invitations", all[len(all)-1].Slug)

	for _, spec := range all {
		assert.NotEmpty(t, spec.Label, "label missing for %s", spec.Slug)
		assert.NotEmpty(t, spec.PriceUnit, "price unit missing for %s", spec.Slug)
		assert.Len(t, spec.DefaultImages, 4, "default images for %s", spec.Slug)
	}
}

func TestLabelUnknownSlug(t *testing.T) {
	assert.Equal(t, "Wedding Venues", Label("venues"))
	assert.Equal(t, "plumbers", Label("plumbers"))
}

func TestDeriveCapacity(t *testing.T) {
	min, max := DeriveCapacity("venues", 300)
	assert.Equal(t, 150, min)
	assert.Equal(t, 300, max)

	min, max = DeriveCapacity("venues", 0)
	assert.Equal(t, 1, min)
	assert.Equal(t, 1, max)

	min, max = DeriveCapacity("caterers", 500)
	assert.Equal(t, 1, min)
	assert.Equal(t, 1, max)
}
