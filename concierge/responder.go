package concierge

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"shubharambh/catalog"
	"shubharambh/db"
	"shubharambh/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Query is what the responder understood from one chat message.
type Query struct {
	Category    string
	City        string
	MinCapacity int
	MaxBudget   int
}

// keyword → category slug. First hit wins, checked in this order.
var categoryKeywords = []struct {
	words []string
	slug  string
}{
	{[]string{"venue", "hall", "banquet", "lawn", "resort", "farmhouse"}, "venues"},
	{[]string{"cater", "food", "cuisine", "plate", "buffet"}, "caterers"},
	{[]string{"photo", "camera", "candid", "album"}, "photographers"},
	{[]string{"decor", "flower", "mandap", "stage"}, "decorators"},
	{[]string{"lehenga", "bridal wear", "outfit", "saree"}, "bridal-wear"},
	{[]string{"makeup", "hair styling"}, "makeup-artists"},
	{[]string{"mehendi", "henna"}, "mehendi-artists"},
	{[]string{"music", "dance", "dj", "band", "sangeet", "choreograph"}, "music-dance"},
	{[]string{"invite", "invitation", "card", "gift"}, "invitations"},
}

var capacityRe = regexp.MustCompile(`(\d+)\s*(?:guests|people|pax|persons)`)
var budgetRe = regexp.MustCompile(`(?:under|below|budget of|upto|up to)\s*(?:rs\.?|₹)?\s*(\d+)`)

// ParseQuery extracts category, city, capacity and budget hints from a chat
// message. knownCities comes from the live distinct-city list so the parser
// never hardcodes geography.
func ParseQuery(text string, knownCities []string) Query {
	lower := strings.ToLower(text)
	var q Query

	for _, ck := range categoryKeywords {
		for _, word := range ck.words {
			if strings.Contains(lower, word) {
				q.Category = ck.slug
				break
			}
		}
		if q.Category != "" {
			break
		}
	}

	for _, city := range knownCities {
		if city != "" && strings.Contains(lower, strings.ToLower(city)) {
			q.City = city
			break
		}
	}

	if m := capacityRe.FindStringSubmatch(lower); m != nil {
		q.MinCapacity, _ = strconv.Atoi(m[1])
	}
	if m := budgetRe.FindStringSubmatch(lower); m != nil {
		q.MaxBudget, _ = strconv.Atoi(m[1])
	}

	return q
}

// FormatCards renders listings in the concierge's pseudo-markdown: bold
// names, one horizontal-rule-delimited card per listing.
func FormatCards(venues []models.Venue) string {
	var b strings.Builder
	for i, v := range venues {
		if i > 0 {
			b.WriteString("\n---\n")
		}
		fmt.Fprintf(&b, "**%s** · %s\n", v.Name, v.City)
		fmt.Fprintf(&b, "%s\n", catalog.Label(v.Category))
		if v.PriceRange.Max > 0 {
			fmt.Fprintf(&b, "₹%d–₹%d %s\n", v.PriceRange.Min, v.PriceRange.Max, v.PriceUnit)
		}
		if v.Category == "venues" && v.Capacity.Max > 1 {
			fmt.Fprintf(&b, "Up to %d guests\n", v.Capacity.Max)
		}
	}
	return b.String()
}

const greeting = "Namaste! I can help you discover venues, caterers, photographers and more. Tell me what you're looking for. For example: **banquet halls in Hyderabad for 300 guests**."

// Reply answers one chat message from the live approved-listings data.
// Nothing is persisted; the concierge holds no server-side state.
func Reply(ctx context.Context, text string) string {
	knownCities := distinctCities(ctx)
	q := ParseQuery(text, knownCities)

	if q.Category == "" {
		return greeting
	}

	filter := bson.M{"status": models.StatusApproved, "isAvailable": true, "category": q.Category}
	if q.City != "" {
		filter["city"] = q.City
	}
	if q.MinCapacity > 0 {
		filter["capacity.max"] = bson.M{"$gte": q.MinCapacity}
	}
	if q.MaxBudget > 0 {
		filter["priceRange.min"] = bson.M{"$lte": q.MaxBudget}
	}

	opts := options.Find().SetSort(bson.D{{Key: "rating", Value: -1}}).SetLimit(5)
	cursor, err := db.VenuesCollection.Find(ctx, filter, opts)
	if err != nil {
		return "Sorry, I couldn't search listings right now. Please try again in a moment."
	}
	defer cursor.Close(ctx)

	var venues []models.Venue
	if err := cursor.All(ctx, &venues); err != nil || len(venues) == 0 {
		return fmt.Sprintf("I couldn't find any %s matching that. Try another city or loosen the filters?", strings.ToLower(catalog.Label(q.Category)))
	}

	header := fmt.Sprintf("Here are some %s I found", strings.ToLower(catalog.Label(q.Category)))
	if q.City != "" {
		header += " in " + q.City
	}
	return header + ":\n\n" + FormatCards(venues)
}

func distinctCities(ctx context.Context) []string {
	raw, err := db.VenuesCollection.Distinct(ctx, "city", bson.M{"status": models.StatusApproved, "isAvailable": true})
	if err != nil {
		return nil
	}
	cities := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			cities = append(cities, s)
		}
	}
	return cities
}
