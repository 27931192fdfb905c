package catalog

// Static category table for the marketplace. Both the vendor submission flow
// and the quote-request form consult this table, so advertised amenities and
// requestable fields cannot drift apart.

type FieldType string

const (
	FieldText   FieldType = "text"
	FieldNumber FieldType = "number"
	FieldSelect FieldType = "select"
)

type FormField struct {
	Key     string    `json:"key"`
	Label   string    `json:"label"`
	Type    FieldType `json:"type"`
	Options []string  `json:"options,omitempty"`
}

type Spec struct {
	Slug          string      `json:"slug"`
	Label         string      `json:"label"`
	PriceUnit     string      `json:"priceUnit"`
	Highlights    []string    `json:"highlights"`
	Amenities     []string    `json:"amenities"`
	Fields        []FormField `json:"fields"`
	DefaultImages []string    `json:"defaultImages"`
}

var specs = map[string]Spec{
	"venues": {
		Slug:       "venues",
		Label:      "Wedding Venues",
		PriceUnit:  "per day",
		Highlights: []string{"Spacious Lawns", "In-House Decor", "Valet Parking"},
		Amenities:  []string{"Air Conditioning", "Parking", "Catering Allowed", "DJ Allowed", "Rooms Available"},
		Fields: []FormField{
			{Key: "capacity", Label: "Guest Capacity", Type: FieldNumber},
			{Key: "venueType", Label: "Venue Type", Type: FieldSelect, Options: []string{"Banquet Hall", "Lawn", "Resort", "Hotel", "Farmhouse"}},
			{Key: "rooms", Label: "Rooms Available", Type: FieldNumber},
		},
		DefaultImages: []string{
			"/static/defaults/venues-1.jpg",
			"/static/defaults/venues-2.jpg",
			"/static/defaults/venues-3.jpg",
			"/static/defaults/venues-4.jpg",
		},
	},
	"caterers": {
		Slug:       "caterers",
		Label:      "Caterers",
		PriceUnit:  "per plate",
		Highlights: []string{"Royal Thali", "Chaat Counters", "Dessert Bar"},
		Amenities:  []string{"Multi-Cuisine", "Live Counters", "Buffet", "Service Staff"},
		Fields: []FormField{
			{Key: "cuisines", Label: "Cuisines Offered", Type: FieldText},
			{Key: "minPlates", Label: "Minimum Plates", Type: FieldNumber},
			{Key: "maxPlates", Label: "Maximum Plates", Type: FieldNumber},
		},
		DefaultImages: []string{
			"/static/defaults/caterers-1.jpg",
			"/static/defaults/caterers-2.jpg",
			"/static/defaults/caterers-3.jpg",
			"/static/defaults/caterers-4.jpg",
		},
	},
	"photographers": {
		Slug:       "photographers",
		Label:      "Photographers",
		PriceUnit:  "per day",
		Highlights: []string{"Candid Shoots", "Cinematic Films", "Same-Day Edits"},
		Amenities:  []string{"Pre-Wedding Shoot", "Drone Coverage", "Photo Album", "Online Gallery"},
		Fields: []FormField{
			{Key: "photoStyles", Label: "Photography Styles", Type: FieldText},
			{Key: "equipment", Label: "Equipment", Type: FieldText},
			{Key: "experience", Label: "Years of Experience", Type: FieldNumber},
		},
		DefaultImages: []string{
			"/static/defaults/photographers-1.jpg",
			"/static/defaults/photographers-2.jpg",
			"/static/defaults/photographers-3.jpg",
			"/static/defaults/photographers-4.jpg",
		},
	},
	"decorators": {
		Slug:       "decorators",
		Label:      "Decorators",
		PriceUnit:  "per event",
		Highlights: []string{"Floral Themes", "Stage Design", "Mandap Setup"},
		Amenities:  []string{"Theme Decor", "Lighting", "Flower Arrangements", "Entry Concepts"},
		Fields: []FormField{
			{Key: "decorStyles", Label: "Decor Styles", Type: FieldText},
			{Key: "setupTime", Label: "Setup Time (hours)", Type: FieldNumber},
		},
		DefaultImages: []string{
			"/static/defaults/decorators-1.jpg",
			"/static/defaults/decorators-2.jpg",
			"/static/defaults/decorators-3.jpg",
			"/static/defaults/decorators-4.jpg",
		},
	},
	"bridal-wear": {
		Slug:       "bridal-wear",
		Label:      "Bridal Wear",
		PriceUnit:  "per outfit",
		Highlights: []string{"Designer Lehengas", "Custom Fittings", "Heritage Weaves"},
		Amenities:  []string{"Trial Sessions", "Alterations", "Rental Option", "Styling Advice"},
		Fields: []FormField{
			{Key: "outfitTypes", Label: "Outfit Types", Type: FieldText},
			{Key: "priceCategory", Label: "Price Category", Type: FieldSelect, Options: []string{"Budget", "Premium", "Luxury"}},
		},
		DefaultImages: []string{
			"/static/defaults/bridal-wear-1.jpg",
			"/static/defaults/bridal-wear-2.jpg",
			"/static/defaults/bridal-wear-3.jpg",
			"/static/defaults/bridal-wear-4.jpg",
		},
	},
	"makeup-artists": {
		Slug:       "makeup-artists",
		Label:      "Makeup Artists",
		PriceUnit:  "per function",
		Highlights: []string{"HD Makeup", "Airbrush", "Trial Included"},
		Amenities:  []string{"Bridal Makeup", "Family Makeup", "Hair Styling", "Draping"},
		Fields: []FormField{
			{Key: "makeupStyles", Label: "Makeup Styles", Type: FieldText},
			{Key: "products", Label: "Products Used", Type: FieldText},
			{Key: "experience", Label: "Years of Experience", Type: FieldNumber},
		},
		DefaultImages: []string{
			"/static/defaults/makeup-artists-1.jpg",
			"/static/defaults/makeup-artists-2.jpg",
			"/static/defaults/makeup-artists-3.jpg",
			"/static/defaults/makeup-artists-4.jpg",
		},
	},
	"mehendi-artists": {
		Slug:       "mehendi-artists",
		Label:      "Mehendi Artists",
		PriceUnit:  "per function",
		Highlights: []string{"Bridal Mehendi", "Arabic Designs", "Organic Henna"},
		Amenities:  []string{"Bridal Packages", "Guest Mehendi", "On-Site Service"},
		Fields: []FormField{
			{Key: "designStyles", Label: "Design Styles", Type: FieldText},
			{Key: "artistCount", Label: "Number of Artists", Type: FieldNumber},
		},
		DefaultImages: []string{
			"/static/defaults/mehendi-artists-1.jpg",
			"/static/defaults/mehendi-artists-2.jpg",
			"/static/defaults/mehendi-artists-3.jpg",
			"/static/defaults/mehendi-artists-4.jpg",
		},
	},
	"music-dance": {
		Slug:       "music-dance",
		Label:      "Music & Dance",
		PriceUnit:  "per event",
		Highlights: []string{"Live Bands", "Sangeet Choreography", "DJ Nights"},
		Amenities:  []string{"Sound System", "Choreography", "Live Performance", "Emcee"},
		Fields: []FormField{
			{Key: "performanceTypes", Label: "Performance Types", Type: FieldText},
			{Key: "groupSize", Label: "Group Size", Type: FieldNumber},
		},
		DefaultImages: []string{
			"/static/defaults/music-dance-1.jpg",
			"/static/defaults/music-dance-2.jpg",
			"/static/defaults/music-dance-3.jpg",
			"/static/defaults/music-dance-4.jpg",
		},
	},
	"invitations": {
		Slug:       "invitations",
		Label:      "Invitations & Gifts",
		PriceUnit:  "per piece",
		Highlights: []string{"Digital Invites", "Boxed Invitations", "Return Gifts"},
		Amenities:  []string{"Custom Design", "Printing", "Delivery", "Video Invites"},
		Fields: []FormField{
			{Key: "inviteTypes", Label: "Invitation Types", Type: FieldText},
			{Key: "minOrder", Label: "Minimum Order", Type: FieldNumber},
		},
		DefaultImages: []string{
			"/static/defaults/invitations-1.jpg",
			"/static/defaults/invitations-2.jpg",
			"/static/defaults/invitations-3.jpg",
			"/static/defaults/invitations-4.jpg",
		},
	},
}

// ordering for UI listings; map iteration order is not stable
var order = []string{
	"venues", "caterers", "photographers", "decorators", "bridal-wear",
	"makeup-artists", "mehendi-artists", "music-dance", "invitations",
}

func Lookup(slug string) (Spec, bool) {
	s, ok := specs[slug]
	return s, ok
}

func IsValidSlug(slug string) bool {
	_, ok := specs[slug]
	return ok
}

func Label(slug string) string {
	if s, ok := specs[slug]; ok {
		return s.Label
	}
	return slug
}

func All() []Spec {
	out := make([]Spec, 0, len(order))
	for _, slug := range order {
		out = append(out, specs[slug])
	}
	return out
}

// DeriveCapacity computes a listing's capacity range. Only venues have a
// meaningful guest capacity; every service category is pinned to {1,1}.
func DeriveCapacity(slug string, guests int) (min, max int) {
	if slug == "venues" && guests > 0 {
		return guests / 2, guests
	}
	return 1, 1
}
