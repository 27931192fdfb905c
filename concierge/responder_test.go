package concierge

import (
	"testing"

	"shubharambh/models"

	"github.com/stretchr/testify/assert"
)

var testCities = []string{"Hyderabad", "Mumbai", "Jaipur", "Navi Mumbai"}

func TestParseQueryFull(t *testing.T) {
	q := ParseQuery("banquet halls in Hyderabad for 300 guests under ₹200000", testCities)

	assert.Equal(t, "venues", q.Category)
	assert.Equal(t, "Hyderabad", q.City)
	assert.Equal(t, 300, q.MinCapacity)
	assert.Equal(t, 200000, q.MaxBudget)
}

func TestParseQueryCategoryKeywords(t *testing.T) {
	cases := map[string]string{
		"need a caterer for sangeet":         "caterers",
		"candid photography packages":        "photographers",
		"mandap decoration ideas":            "decorators",
		"bridal lehenga shops":               "bridal-wear",
		"makeup artist near me":              "makeup-artists",
		"mehendi designs for the bride":      "mehendi-artists",
		"dj for the sangeet night":           "music-dance",
		"wedding invitation cards":           "invitations",
		"lawns and resorts for the wedding":  "venues",
		"hello, can you help me plan":        "",
	}
	for text, want := range cases {
		assert.Equal(t, want, ParseQuery(text, nil).Category, "text %q", text)
	}
}

func TestParseQueryCityCaseInsensitive(t *testing.T) {
	q := ParseQuery("caterers in MUMBAI please", testCities)
	assert.Equal(t, "Mumbai", q.City)

	q = ParseQuery("caterers somewhere nice", testCities)
	assert.Empty(t, q.City)
}

func TestParseQueryCapacityVariants(t *testing.T) {
	assert.Equal(t, 250, ParseQuery("hall for 250 people", nil).MinCapacity)
	assert.Equal(t, 120, ParseQuery("120 pax buffet", nil).MinCapacity)
	assert.Zero(t, ParseQuery("hall for everyone", nil).MinCapacity)
}

func TestParseQueryBudget(t *testing.T) {
	assert.Equal(t, 50000, ParseQuery("photographers under rs. 50000", nil).MaxBudget)
	assert.Equal(t, 80000, ParseQuery("decor budget of 80000", nil).MaxBudget)
	assert.Zero(t, ParseQuery("no budget mentioned", nil).MaxBudget)
}

func TestFormatCards(t *testing.T) {
	out := FormatCards([]models.Venue{
		{
			Name:       "Grand Celebration Lawns",
			City:       "Hyderabad",
			Category:   "venues",
			PriceRange: models.PriceRange{Min: 100000, Max: 300000},
			PriceUnit:  "per day",
			Capacity:   models.Capacity{Min: 200, Max: 500},
		},
		{
			Name:      "Royal Kitchen",
			City:      "Hyderabad",
			Category:  "caterers",
			PriceUnit: "per plate",
		},
	})

	assert.Contains(t, out, "**Grand Celebration Lawns** · Hyderabad")
	assert.Contains(t, out, "Up to 500 guests")
	assert.Contains(t, out, "₹100000–₹300000 per day")
	assert.Contains(t, out, "\n---\n")
	assert.Contains(t, out, "**Royal Kitchen** · Hyderabad")
	assert.Contains(t, out, "Caterers")
	assert.NotContains(t, out, "Up to 1 guests")
}

func TestFormatCardsEmpty(t *testing.T) {
	assert.Empty(t, FormatCards(nil))
}
