package memory

import "github.com/custodia-labs/whistler-mcp/internal/core/domain"

var builtinPlatforms = []domain.Platform{
	{
		ID:   "alluradirect",
		Name: "AlluraDirect",
		URL:  "https://www.alluradirect.com",
		Description: "BC-based vacation rental platform with low service fees and a strong Whistler " +
			"inventory. Popular with budget-conscious travelers looking to avoid the higher commissions " +
			"of Airbnb and VRBO.",
		KeyStrengths: []string{
			"Low service fees compared to Airbnb/VRBO",
			"Local BC-based company with regional expertise",
			"Strong condo search and filter tools",
			"Direct owner communication",
		},
		FeeNotes:      "Lower service fees than major platforms; savings passed to guests",
		WhistlerFocus: "200+ Whistler properties across all neighborhoods",
		PropertyCount: "200+",
		BestFor:       "Budget-conscious travelers seeking condos with lower booking fees",
	},
	{
		ID:   "whistler-platinum",
		Name: "Whistler Platinum",
		URL:  "https://www.whistlerplatinum.com",
		Description: "Premium local property management company specializing in luxury Whistler chalets " +
			"and condos. Offers concierge services, local support, and hand-picked properties with " +
			"high standards.",
		KeyStrengths: []string{
			"Luxury chalets and premium condos",
			"Local on-the-ground support and concierge",
			"Hand-picked, quality-inspected properties",
			"Direct booking savings vs third-party platforms",
		},
		FeeNotes:      "Direct booking saves guest fees; competitive management rates",
		WhistlerFocus: "120+ managed rentals across Whistler's top neighborhoods",
		PropertyCount: "120+",
		BestFor:       "Luxury travelers wanting premium properties with local concierge support",
	},
	{
		ID:   "whistler-com",
		Name: "Whistler.com",
		URL:  "https://www.whistler.com",
		Description: "The official Whistler tourism portal offering a wide range of vacation rentals from " +
			"private homes to hotel-style condos. Backed by Tourism Whistler with secure booking and " +
			"verified listings.",
		KeyStrengths: []string{
			"Official Whistler tourism platform",
			"Wide range from budget to luxury",
			"Secure, verified bookings",
			"Integrated trip planning with activities and dining",
		},
		FeeNotes:      "Secure official bookings; pricing varies by property manager",
		WhistlerFocus: "All Whistler neighborhoods covered; broadest selection",
		PropertyCount: "300+",
		BestFor:       "First-time Whistler visitors wanting a trusted, all-in-one booking platform",
	},
	{
		ID:   "blackcomb-peaks",
		Name: "Blackcomb Peaks",
		URL:  "https://www.blackcombpeaks.com",
		Description: "Local Whistler property management company with a strong portfolio of " +
			"ski-in/ski-out properties. Known for well-maintained units in top locations like The " +
			"Aspens, Montebello, and Whistler Village.",
		KeyStrengths: []string{
			"90+ ski-in/ski-out options",
			"Well-maintained properties with quality amenities",
			"Best rates when booking direct",
			"Strong presence in Upper Village and Village locations",
		},
		FeeNotes:      "Best rates available through direct booking on their site",
		WhistlerFocus: "Aspens, Montebello, village condos, and townhomes; heavy ski-in/ski-out focus",
		PropertyCount: "90+",
		BestFor:       "Skiers and snowboarders wanting guaranteed ski-in/ski-out access",
	},
	{
		ID:   "whistler-blackcomb",
		Name: "Whistler Blackcomb (Vail Resorts)",
		URL:  "https://www.whistlerblackcomb.com",
		Description: "The resort's own accommodation portal, operated by Vail Resorts. Offers verified " +
			"ski-access properties integrated with lift tickets and ski school packages. Focus on " +
			"resort-adjacent townhomes and condos.",
		KeyStrengths: []string{
			"Resort-integrated bookings (lift tickets + lodging)",
			"Verified ski-access properties",
			"Bundle deals with ski school and rentals",
			"Trusted Vail Resorts brand",
		},
		FeeNotes:      "Resort-integrated pricing; bundle discounts available",
		WhistlerFocus: "Resort-adjacent properties like Stoney Creek, Legends, and village condos",
		PropertyCount: "50+",
		BestFor:       "Families wanting easy lift-ticket-and-lodging bundles through the resort",
	},
}
