package memory

import "github.com/custodia-labs/whistler-mcp/internal/core/domain"

var (
	allSeasons    = []domain.Season{domain.SeasonWinter, domain.SeasonSpring, domain.SeasonSummer, domain.SeasonFall}
	winterSpring  = []domain.Season{domain.SeasonWinter, domain.SeasonSpring}
	winterSummer  = []domain.Season{domain.SeasonWinter, domain.SeasonSummer}
	exceptSpring  = []domain.Season{domain.SeasonWinter, domain.SeasonSummer, domain.SeasonFall}
)

var builtinProperties = []domain.Property{
	{
		ID:           "wv-pan-pacific-205",
		Name:         "Pan Pacific Mountainside Studio",
		Type:         domain.PropertyTypeCondo,
		Neighborhood: "whistler-village",
		Description: "Bright studio suite steps from the Whistler Village Gondola with a full kitchen, " +
			"gas fireplace and a slopeside heated pool. Ski right back to the door at the end of the day.",
		Bedrooms:      1,
		Bathrooms:     1,
		MaxGuests:     4,
		Amenities:     []string{"ski-storage", "hot-tub", "pool", "fireplace", "kitchen", "wifi", "gym"},
		SkiInSkiOut:   true,
		PricePerNight: 389,
		CleaningFee:   120,
		Images:        []string{"https://images.example.com/wv-pan-pacific-205/1.jpg"},
		Rating:        4.8,
		ReviewCount:   312,
		Host:          domain.Host{Name: "Mountainside Stays", Superhost: true},
		Coordinates:   domain.Coordinates{Lat: 50.1149, Lng: -122.9486},
		AvailableSeasons: allSeasons,
		MinimumStay:      2,
		BlockedDates:     []string{"2025-12-24", "2025-12-25", "2025-12-26", "2025-12-31", "2026-01-01"},
	},
	{
		ID:           "wv-hilton-studio-412",
		Name:         "Village Plaza Studio",
		Type:         domain.PropertyTypeCondo,
		Neighborhood: "whistler-village",
		Description: "Compact hotel-style studio in the village core with a kitchenette, mountain views " +
			"and access to the shared pool and hot tubs. A great base for couples on a budget.",
		Bedrooms:      1,
		Bathrooms:     1,
		MaxGuests:     2,
		Amenities:     []string{"pool", "hot-tub", "wifi", "kitchenette", "gym", "parking"},
		PricePerNight: 229,
		CleaningFee:   85,
		Images:        []string{"https://images.example.com/wv-hilton-studio-412/1.jpg"},
		Rating:        4.4,
		ReviewCount:   188,
		Host:          domain.Host{Name: "Priya Shah", Superhost: false},
		Coordinates:   domain.Coordinates{Lat: 50.1139, Lng: -122.9549},
		AvailableSeasons: allSeasons,
		MinimumStay:      2,
		BlockedDates:     []string{"2026-02-14", "2026-02-15"},
	},
	{
		ID:           "vn-marketplace-lodge-3",
		Name:         "Marketplace Lodge Two-Bedroom",
		Type:         domain.PropertyTypeCondo,
		Neighborhood: "village-north",
		Description: "Spacious two-bedroom above the Marketplace with a wood-burning fireplace, in-suite " +
			"laundry and a balcony over the Valley Trail. Well-behaved dogs are welcome.",
		Bedrooms:      2,
		Bathrooms:     2,
		MaxGuests:     6,
		Amenities:     []string{"fireplace", "kitchen", "wifi", "washer-dryer", "parking", "balcony"},
		PetFriendly:   true,
		PricePerNight: 285,
		CleaningFee:   110,
		Images:        []string{"https://images.example.com/vn-marketplace-lodge-3/1.jpg"},
		Rating:        4.5,
		ReviewCount:   142,
		Host:          domain.Host{Name: "Glen Morrison", Superhost: true},
		Coordinates:   domain.Coordinates{Lat: 50.1180, Lng: -122.9530},
		AvailableSeasons: allSeasons,
		MinimumStay:      3,
		BlockedDates:     []string{"2026-01-17", "2026-01-18"},
	},
	{
		ID:           "uv-fairmont-residence-8",
		Name:         "Chateau Residence at the Fairmont",
		Type:         domain.PropertyTypeCondo,
		Neighborhood: "upper-village",
		Description: "Luxury two-bedroom residence at the base of Blackcomb with ski valet, concierge, " +
			"heated outdoor pool and a private hot tub on the terrace.",
		Bedrooms:      2,
		Bathrooms:     2,
		MaxGuests:     6,
		Amenities:     []string{"ski-valet", "hot-tub", "pool", "fireplace", "concierge", "gym", "wifi"},
		SkiInSkiOut:   true,
		PetFriendly:   true,
		PricePerNight: 640,
		CleaningFee:   200,
		Images:        []string{"https://images.example.com/uv-fairmont-residence-8/1.jpg"},
		Rating:        4.9,
		ReviewCount:   96,
		Host:          domain.Host{Name: "Whistler Platinum", Superhost: true},
		Coordinates:   domain.Coordinates{Lat: 50.1163, Lng: -122.9436},
		AvailableSeasons: allSeasons,
		MinimumStay:      3,
		BlockedDates:     []string{"2026-02-12", "2026-02-13", "2026-02-14", "2026-02-15"},
	},
	{
		ID:           "uv-aspens-214",
		Name:         "Aspens on Blackcomb Three-Bedroom",
		Type:         domain.PropertyTypeCondo,
		Neighborhood: "upper-village",
		Description: "Family-sized ski-in/ski-out condo on the Blackcomb slopes with a gas fireplace, " +
			"full kitchen, outdoor pool and hot tubs, and a barbecue deck.",
		Bedrooms:      3,
		Bathrooms:     2,
		MaxGuests:     8,
		Amenities:     []string{"ski-storage", "hot-tub", "pool", "fireplace", "kitchen", "wifi", "bbq"},
		SkiInSkiOut:   true,
		PricePerNight: 520,
		CleaningFee:   180,
		Images:        []string{"https://images.example.com/uv-aspens-214/1.jpg"},
		Rating:        4.7,
		ReviewCount:   210,
		Host:          domain.Host{Name: "Blackcomb Peaks", Superhost: true},
		Coordinates:   domain.Coordinates{Lat: 50.1120, Lng: -122.9380},
		AvailableSeasons: winterSpring,
		MinimumStay:      4,
		BlockedDates:     []string{"2025-12-27", "2025-12-28", "2025-12-29", "2025-12-30"},
	},
	{
		ID:           "cs-legends-503",
		Name:         "Legends Creekside Suite",
		Type:         domain.PropertyTypeCondo,
		Neighborhood: "creekside",
		Description: "Two-bedroom suite right at the Creekside Gondola with an outdoor pool, hot tubs and " +
			"a fitness room. Walk to Creekside Market for groceries.",
		Bedrooms:      2,
		Bathrooms:     2,
		MaxGuests:     6,
		Amenities:     []string{"hot-tub", "pool", "fireplace", "kitchen", "gym", "wifi", "parking"},
		SkiInSkiOut:   true,
		PricePerNight: 439,
		CleaningFee:   140,
		Images:        []string{"https://images.example.com/cs-legends-503/1.jpg"},
		Rating:        4.6,
		ReviewCount:   175,
		Host:          domain.Host{Name: "Creekside Rentals", Superhost: false},
		Coordinates:   domain.Coordinates{Lat: 50.0943, Lng: -122.9875},
		AvailableSeasons: allSeasons,
		MinimumStay:      3,
		BlockedDates:     []string{"2026-03-14", "2026-03-15"},
	},
	{
		ID:           "cs-franz-trail-townhome",
		Name:         "Franz's Trail Townhome",
		Type:         domain.PropertyTypeTownhouse,
		Neighborhood: "creekside",
		Description: "Three-level townhome a short shuttle ride from the Creekside Gondola with a private " +
			"hot tub, attached garage and a fenced yard for dogs.",
		Bedrooms:      3,
		Bathrooms:     3,
		MaxGuests:     8,
		Amenities:     []string{"hot-tub", "fireplace", "kitchen", "washer-dryer", "garage", "bbq", "wifi"},
		PetFriendly:   true,
		PricePerNight: 375,
		CleaningFee:   160,
		Images:        []string{"https://images.example.com/cs-franz-trail-townhome/1.jpg"},
		Rating:        4.5,
		ReviewCount:   88,
		Host:          domain.Host{Name: "Dana Kowalski", Superhost: true},
		Coordinates:   domain.Coordinates{Lat: 50.0921, Lng: -122.9912},
		AvailableSeasons: allSeasons,
		MinimumStay:      3,
		BlockedDates:     []string{},
	},
	{
		ID:           "kw-summit-chalet",
		Name:         "Kadenwood Summit Chalet",
		Type:         domain.PropertyTypeChalet,
		Neighborhood: "kadenwood",
		Description: "Six-bedroom estate reached by the private Kadenwood gondola, with a chef's kitchen, " +
			"home theatre, steam room and panoramic views of the Coast Mountains.",
		Bedrooms:      6,
		Bathrooms:     6,
		MaxGuests:     14,
		Amenities: []string{
			"ski-valet", "hot-tub", "sauna", "steam-room", "home-theater", "chef-kitchen", "fireplace", "wifi",
		},
		SkiInSkiOut:   true,
		PricePerNight: 2950,
		CleaningFee:   650,
		Images:        []string{"https://images.example.com/kw-summit-chalet/1.jpg"},
		Rating:        4.95,
		ReviewCount:   41,
		Host:          domain.Host{Name: "Whistler Platinum", Superhost: true},
		Coordinates:   domain.Coordinates{Lat: 50.0899, Lng: -123.0010},
		AvailableSeasons: winterSummer,
		MinimumStay:      5,
		BlockedDates: []string{
			"2025-12-20", "2025-12-21", "2025-12-22", "2025-12-23", "2025-12-24",
			"2025-12-25", "2025-12-26", "2025-12-27",
		},
	},
	{
		ID:           "nd-lost-lake-cabin",
		Name:         "Lost Lake Log Cabin",
		Type:         domain.PropertyTypeCabin,
		Neighborhood: "nordic",
		Description: "Cozy log cabin with a wood stove on a quiet street in Nordic Estates, minutes from " +
			"the Lost Lake cross-country trails. Dogs welcome.",
		Bedrooms:      2,
		Bathrooms:     1,
		MaxGuests:     5,
		Amenities:     []string{"wood-stove", "fireplace", "bbq", "wifi", "kitchen", "parking"},
		PetFriendly:   true,
		PricePerNight: 245,
		CleaningFee:   95,
		Images:        []string{"https://images.example.com/nd-lost-lake-cabin/1.jpg"},
		Rating:        4.6,
		ReviewCount:   64,
		Host:          domain.Host{Name: "Erik Lund", Superhost: true},
		Coordinates:   domain.Coordinates{Lat: 50.1040, Lng: -122.9690},
		AvailableSeasons: allSeasons,
		MinimumStay:      2,
		BlockedDates:     []string{"2026-01-24", "2026-01-25"},
	},
	{
		ID:           "nd-alta-vista-chalet",
		Name:         "Alta Vista Lakeside Chalet",
		Type:         domain.PropertyTypeChalet,
		Neighborhood: "nordic",
		Description: "Four-bedroom chalet overlooking Alta Lake with a cedar sauna, hot tub and a double " +
			"garage for bikes and boards.",
		Bedrooms:      4,
		Bathrooms:     3,
		MaxGuests:     10,
		Amenities:     []string{"hot-tub", "sauna", "fireplace", "kitchen", "lake-view", "wifi", "bbq", "garage"},
		PetFriendly:   true,
		PricePerNight: 690,
		CleaningFee:   250,
		Images:        []string{"https://images.example.com/nd-alta-vista-chalet/1.jpg"},
		Rating:        4.7,
		ReviewCount:   57,
		Host:          domain.Host{Name: "Mei Tanaka", Superhost: false},
		Coordinates:   domain.Coordinates{Lat: 50.1012, Lng: -122.9745},
		AvailableSeasons: exceptSpring,
		MinimumStay:      4,
		BlockedDates:     []string{"2026-07-01", "2026-07-02", "2026-07-03"},
	},
	{
		ID:           "bh-blueberry-view-chalet",
		Name:         "Blueberry Hill View Chalet",
		Type:         domain.PropertyTypeChalet,
		Neighborhood: "blueberry-hill",
		Description: "Five-bedroom hillside chalet with floor-to-ceiling windows facing Whistler Mountain, " +
			"a chef's kitchen and an outdoor hot tub. Ten minutes' walk down to the village.",
		Bedrooms:      5,
		Bathrooms:     4,
		MaxGuests:     12,
		Amenities:     []string{"hot-tub", "fireplace", "mountain-view", "chef-kitchen", "wifi", "garage", "bbq"},
		PricePerNight: 1150,
		CleaningFee:   400,
		Images:        []string{"https://images.example.com/bh-blueberry-view-chalet/1.jpg"},
		Rating:        4.8,
		ReviewCount:   73,
		Host:          domain.Host{Name: "Sea to Sky Luxury Homes", Superhost: true},
		Coordinates:   domain.Coordinates{Lat: 50.1105, Lng: -122.9630},
		AvailableSeasons: allSeasons,
		MinimumStay:      4,
		BlockedDates:     []string{"2026-02-07", "2026-02-08", "2026-02-09"},
	},
	{
		ID:           "bh-sunridge-townhouse",
		Name:         "Sunridge Townhouse",
		Type:         domain.PropertyTypeTownhouse,
		Neighborhood: "blueberry-hill",
		Description: "Three-bedroom townhouse with a shared hot tub, in-suite laundry and a south-facing " +
			"deck. Pet-friendly with a trail to the village right outside.",
		Bedrooms:      3,
		Bathrooms:     2,
		MaxGuests:     7,
		Amenities:     []string{"hot-tub", "fireplace", "kitchen", "washer-dryer", "wifi", "parking"},
		PetFriendly:   true,
		PricePerNight: 455,
		CleaningFee:   175,
		Images:        []string{"https://images.example.com/bh-sunridge-townhouse/1.jpg"},
		Rating:        4.3,
		ReviewCount:   52,
		Host:          domain.Host{Name: "Aaron Feld", Superhost: false},
		Coordinates:   domain.Coordinates{Lat: 50.1098, Lng: -122.9602},
		AvailableSeasons: allSeasons,
		MinimumStay:      3,
		BlockedDates:     []string{"2026-03-21", "2026-03-22"},
	},
}
