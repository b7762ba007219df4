package memory

import "github.com/custodia-labs/whistler-mcp/internal/core/domain"

var builtinNeighborhoods = []domain.Neighborhood{
	{
		ID:   "whistler-village",
		Name: "Whistler Village",
		Description: "The heart of Whistler, a pedestrian-only village buzzing with restaurants, shops, " +
			"and après-ski nightlife. Direct access to both Whistler and Blackcomb gondolas. Perfect for " +
			"first-time visitors who want everything at their doorstep.",
		Highlights: []string{
			"Pedestrian village with 200+ shops and restaurants",
			"Direct gondola access to Whistler and Blackcomb mountains",
			"Vibrant après-ski scene",
			"Village Stroll connects everything on foot",
		},
		NearestLift:       "Whistler Village Gondola (0 min walk)",
		DistanceToVillage: "You're in it!",
		Elevation:         "675m",
	},
	{
		ID:   "upper-village",
		Name: "Upper Village",
		Description: "A quieter, upscale area at the base of Blackcomb Mountain. Home to luxury hotels " +
			"like the Fairmont and Four Seasons. Ski-in/ski-out access to Blackcomb with a more refined " +
			"atmosphere than the main village.",
		Highlights: []string{
			"Ski-in/ski-out access to Blackcomb Mountain",
			"Luxury accommodations and fine dining",
			"Quieter than Whistler Village",
			"Close to Blackcomb Excalibur Gondola",
		},
		NearestLift:       "Blackcomb Excalibur Gondola (2 min walk)",
		DistanceToVillage: "5-minute walk to Whistler Village",
		Elevation:         "700m",
	},
	{
		ID:   "creekside",
		Name: "Creekside",
		Description: "Whistler's original village, located 2 km south of the main village. A laid-back, " +
			"family-friendly neighborhood with its own gondola, grocery store, and local restaurants. " +
			"Great value compared to the main village.",
		Highlights: []string{
			"Own gondola access (Creekside Gondola)",
			"More affordable than Whistler Village",
			"Family-friendly atmosphere",
			"Local restaurants and Creekside Market",
		},
		NearestLift:       "Creekside Gondola (0-5 min walk)",
		DistanceToVillage: "2 km south (free shuttle available)",
		Elevation:         "650m",
	},
	{
		ID:   "village-north",
		Name: "Village North (Marketplace)",
		Description: "Just north of the main village, Village North offers a good balance of convenience " +
			"and value. Connected to the village by a short walk along the Valley Trail. Home to the " +
			"Marketplace shopping area.",
		Highlights: []string{
			"Short walk to Whistler Village",
			"Marketplace shops and dining",
			"Good value for proximity to lifts",
			"Access to Valley Trail for biking and walking",
		},
		NearestLift:       "Whistler Village Gondola (8 min walk)",
		DistanceToVillage: "5-8 minute walk",
		Elevation:         "660m",
	},
	{
		ID:   "kadenwood",
		Name: "Kadenwood",
		Description: "An exclusive mountainside community above Creekside accessed by a private gondola. " +
			"Ultra-luxury chalets with stunning views, privacy, and true ski-in/ski-out access. " +
			"Whistler's most prestigious address.",
		Highlights: []string{
			"Private gondola access",
			"Ultra-luxury chalets with panoramic views",
			"True ski-in/ski-out",
			"Maximum privacy and exclusivity",
		},
		NearestLift:       "Kadenwood Private Gondola (at doorstep)",
		DistanceToVillage: "10 min drive or gondola + shuttle",
		Elevation:         "900m",
	},
	{
		ID:   "nordic",
		Name: "Nordic Estates",
		Description: "A peaceful residential neighborhood between the village and Creekside. Popular with " +
			"families and long-term visitors who prefer a quieter setting. Good access to the Valley " +
			"Trail and Lost Lake trails.",
		Highlights: []string{
			"Quiet residential setting",
			"Close to Lost Lake trails and cross-country skiing",
			"Valley Trail access for biking",
			"Mid-range pricing",
		},
		NearestLift:       "Whistler Village Gondola (15 min walk or 5 min drive)",
		DistanceToVillage: "1.5 km (15-minute walk or free shuttle)",
		Elevation:         "655m",
	},
	{
		ID:   "blueberry-hill",
		Name: "Blueberry Hill",
		Description: "A hillside neighborhood just above Whistler Village offering excellent views and a " +
			"slightly elevated, peaceful setting. Walking distance to the village but feels removed " +
			"from the hustle.",
		Highlights: []string{
			"Elevated views of the valley and mountains",
			"Walking distance to Whistler Village",
			"Quieter than the village core",
			"Mix of condos and chalets",
		},
		NearestLift:       "Whistler Village Gondola (10 min walk)",
		DistanceToVillage: "10-minute walk downhill",
		Elevation:         "720m",
	},
}
