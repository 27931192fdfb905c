package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "priya@example.com", NormalizeEmail("  Priya@Example.COM "))
	assert.Equal(t, "", NormalizeEmail("   "))
}

func TestNormalizeCity(t *testing.T) {
	assert.Equal(t, "Hyderabad", NormalizeCity(" hyderabad "))
	assert.Equal(t, "Hyderabad", NormalizeCity("HYDERABAD"))
	assert.Equal(t, "Navi Mumbai", NormalizeCity("navi  mumbai"))
	assert.Equal(t, "", NormalizeCity(""))
}

func TestAddToSet(t *testing.T) {
	s := []string{"caterers"}
	s = AddToSet(s, "venues")
	s = AddToSet(s, "caterers")
	assert.Equal(t, []string{"caterers", "venues"}, s)
}

func TestGenerateID(t *testing.T) {
	id := GenerateID("l", 12)
	assert.Len(t, id, 13)
	assert.Equal(t, byte('l'), id[0])
	assert.NotEqual(t, id, GenerateID("l", 12))
}

func TestSupportedImageTypes(t *testing.T) {
	assert.True(t, SupportedImageTypes["image/jpeg"])
	assert.True(t, SupportedImageTypes["image/png"])
	assert.False(t, SupportedImageTypes["application/pdf"])
}
