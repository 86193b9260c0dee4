package services

// ─── Preset Store ─────────────────────────────────────────────────────────────

// PresetDay carries a day's content without a day number; the synthesizer
// assigns numbers positionally.
type PresetDay struct {
	Summary    string
	Activities []Activity
	Dining     []Dining
}

// Preset is curated itinerary content for a recognized city.
type Preset struct {
	Summary         string
	Recommendations []string
	Days            []PresetDay
}

// PresetStore is a read-only mapping from normalized (lowercased, trimmed)
// city names to curated content. Built once at startup and injected; it does
// no I/O and is safe for concurrent readers.
type PresetStore struct {
	byCity map[string]Preset
}

func (p *PresetStore) Lookup(normalizedCity string) (Preset, bool) {
	preset, ok := p.byCity[normalizedCity]
	return preset, ok
}

// Cities returns the normalized keys the store recognizes.
func (p *PresetStore) Cities() []string {
	cities := make([]string, 0, len(p.byCity))
	for c := range p.byCity {
		cities = append(cities, c)
	}
	return cities
}

func NewPresetStore() *PresetStore {
	return &PresetStore{byCity: map[string]Preset{
		"mumbai":    mumbaiPreset(),
		"delhi":     delhiPreset(),
		"bangalore": bangalorePreset(),
	}}
}

func mumbaiPreset() Preset {
	return Preset{
		Summary: "A perfect 5-day Mumbai adventure combining culture, cuisine, and iconic landmarks.",
		Recommendations: []string{
			"Visit Gateway of India early morning to avoid crowds",
			"Book Elephanta Caves tickets in advance",
			"Try local street food at Juhu Beach",
			"Use local trains and taxis for efficient transportation",
		},
		Days: []PresetDay{
			{
				Summary: "Arrival and Mumbai landmarks",
				Activities: []Activity{
					{Time: Morning, Place: "Gateway of India", Description: "Marvel at this historic monument and enjoy panoramic harbor views", Cost: 0, DurationMinutes: 90, Category: "attraction"},
					{Time: Afternoon, Place: "Colaba Causeway", Description: "Shop the bustling street bazaar near the waterfront", Cost: 1000, DurationMinutes: 120, Category: "shopping"},
					{Time: Evening, Place: "Marine Drive", Description: "Stroll down the famous promenade and enjoy the evening atmosphere", Cost: 0, DurationMinutes: 60, Category: "attraction"},
				},
				Dining: []Dining{
					{Name: "Leopold Cafe", Cuisine: "Continental", Description: "Iconic Colaba institution serving travelers since 1871", PricePerPerson: 1500, PriceRange: "₹₹"},
				},
			},
			{
				Summary: "Art, culture and heritage immersion",
				Activities: []Activity{
					{Time: Morning, Place: "Chhatrapati Shivaji Maharaj Vastu Sangrahalaya", Description: "Explore Mumbai's premier museum with rich cultural heritage", Cost: 500, DurationMinutes: 180, Category: "museum"},
					{Time: Afternoon, Place: "Haji Ali Dargah", Description: "Visit this beautiful mosque located on an islet off the coast", Cost: 0, DurationMinutes: 60, Category: "attraction"},
					{Time: Evening, Place: "Worli Sea Face", Description: "Evening walk along the scenic promenade with city views", Cost: 0, DurationMinutes: 75, Category: "attraction"},
				},
				Dining: []Dining{
					{Name: "Bademiya", Cuisine: "Indian", Description: "Famous street food joint known for kebabs and rolls", PricePerPerson: 800, PriceRange: "₹₹"},
				},
			},
			{
				Summary: "Island caves and old Bombay",
				Activities: []Activity{
					{Time: Morning, Place: "Elephanta Caves", Description: "Ferry out to the UNESCO rock-cut cave temples", Cost: 600, DurationMinutes: 240, Category: "attraction"},
					{Time: Afternoon, Place: "Kala Ghoda Art Precinct", Description: "Galleries and heritage architecture in the arts district", Cost: 200, DurationMinutes: 120, Category: "museum"},
					{Time: Evening, Place: "Girgaum Chowpatty", Description: "Sunset on the city beach with bhel puri stalls", Cost: 150, DurationMinutes: 90, Category: "attraction"},
				},
				Dining: []Dining{
					{Name: "Britannia & Co.", Cuisine: "Parsi", Description: "Century-old cafe famous for berry pulao", PricePerPerson: 1000, PriceRange: "₹₹"},
				},
			},
			{
				Summary: "Markets, temples and local life",
				Activities: []Activity{
					{Time: Morning, Place: "Siddhivinayak Temple", Description: "Join morning prayers at one of Mumbai's most revered temples", Cost: 0, DurationMinutes: 90, Category: "attraction"},
					{Time: Afternoon, Place: "Crawford Market", Description: "Dive into the Victorian-era wholesale market", Cost: 500, DurationMinutes: 120, Category: "shopping"},
					{Time: Evening, Place: "Bandra Bandstand", Description: "Seaside promenade popular with locals at dusk", Cost: 0, DurationMinutes: 60, Category: "attraction"},
				},
				Dining: []Dining{
					{Name: "Highway Gomantak", Cuisine: "Coastal", Description: "No-frills Malvani seafood favorite", PricePerPerson: 700, PriceRange: "₹"},
				},
			},
			{
				Summary: "Beaches and farewell Mumbai",
				Activities: []Activity{
					{Time: Morning, Place: "Sanjay Gandhi National Park", Description: "Kanheri caves and forest trails inside the city limits", Cost: 400, DurationMinutes: 180, Category: "park"},
					{Time: Afternoon, Place: "Juhu Beach", Description: "Street food and people-watching on the famous beach", Cost: 300, DurationMinutes: 120, Category: "attraction"},
					{Time: Evening, Place: "Phoenix Palladium", Description: "Last-minute shopping before departure", Cost: 1500, DurationMinutes: 90, Category: "shopping"},
				},
				Dining: []Dining{
					{Name: "Trishna", Cuisine: "Seafood", Description: "Legendary butter garlic crab in Fort", PricePerPerson: 2000, PriceRange: "₹₹₹"},
				},
			},
		},
	}
}

func delhiPreset() Preset {
	return Preset{
		Summary: "A 3-day Delhi journey through Mughal monuments, bazaars and street food.",
		Recommendations: []string{
			"Use the Delhi Metro to skip traffic between monuments",
			"Carry water and sun cover for open monument complexes",
			"Old Delhi food walks are best done hungry and early",
			"Book Red Fort tickets online to avoid queues",
		},
		Days: []PresetDay{
			{
				Summary: "Old Delhi and Mughal grandeur",
				Activities: []Activity{
					{Time: Morning, Place: "Red Fort", Description: "Walk the ramparts of the Mughal empire's seat of power", Cost: 600, DurationMinutes: 150, Category: "attraction"},
					{Time: Afternoon, Place: "Jama Masjid", Description: "Climb the minaret of India's largest mosque", Cost: 300, DurationMinutes: 90, Category: "attraction"},
					{Time: Evening, Place: "Chandni Chowk", Description: "Rickshaw ride through the old city's famous bazaar", Cost: 200, DurationMinutes: 120, Category: "shopping"},
				},
				Dining: []Dining{
					{Name: "Karim's", Cuisine: "Mughlai", Description: "Legendary kebabs beside Jama Masjid since 1913", PricePerPerson: 900, PriceRange: "₹₹"},
				},
			},
			{
				Summary: "New Delhi's imperial axis",
				Activities: []Activity{
					{Time: Morning, Place: "Humayun's Tomb", Description: "The garden tomb that inspired the Taj Mahal", Cost: 600, DurationMinutes: 120, Category: "attraction"},
					{Time: Afternoon, Place: "India Gate & Kartavya Path", Description: "Walk the ceremonial boulevard to the war memorial", Cost: 0, DurationMinutes: 90, Category: "attraction"},
					{Time: Evening, Place: "Connaught Place", Description: "Colonial-era circle of shops, cafes and street musicians", Cost: 500, DurationMinutes: 120, Category: "shopping"},
				},
				Dining: []Dining{
					{Name: "Saravana Bhavan", Cuisine: "South Indian", Description: "Crisp dosas and filter coffee off Janpath", PricePerPerson: 600, PriceRange: "₹"},
				},
			},
			{
				Summary: "Minarets, crafts and gardens",
				Activities: []Activity{
					{Time: Morning, Place: "Qutub Minar", Description: "UNESCO-listed victory tower and ruin complex", Cost: 600, DurationMinutes: 120, Category: "attraction"},
					{Time: Afternoon, Place: "Dilli Haat", Description: "Open-air crafts market with regional food stalls", Cost: 400, DurationMinutes: 120, Category: "shopping"},
					{Time: Evening, Place: "Lodhi Garden", Description: "Sunset among 15th-century tombs and jogging paths", Cost: 0, DurationMinutes: 75, Category: "park"},
				},
				Dining: []Dining{
					{Name: "Bukhara", Cuisine: "North Indian", Description: "World-famous dal and tandoori at ITC Maurya", PricePerPerson: 3000, PriceRange: "₹₹₹"},
				},
			},
		},
	}
}

func bangalorePreset() Preset {
	return Preset{
		Summary: "A relaxed 3-day Bangalore plan mixing gardens, tech-city cafes and palace history.",
		Recommendations: []string{
			"Plan around peak traffic — mornings move faster than evenings",
			"Craft coffee is the city's specialty; skip the chains",
			"Lalbagh is best at opening time before the crowds",
			"Carry a light jacket for the evening chill",
		},
		Days: []PresetDay{
			{
				Summary: "Gardens and the old city",
				Activities: []Activity{
					{Time: Morning, Place: "Lalbagh Botanical Garden", Description: "Centuries-old garden around the glass house", Cost: 100, DurationMinutes: 120, Category: "park"},
					{Time: Afternoon, Place: "Bangalore Palace", Description: "Tudor-style palace of the Wodeyar dynasty", Cost: 500, DurationMinutes: 120, Category: "attraction"},
					{Time: Evening, Place: "VV Puram Food Street", Description: "A whole lane of classic Karnataka street snacks", Cost: 300, DurationMinutes: 90, Category: "attraction"},
				},
				Dining: []Dining{
					{Name: "MTR 1924", Cuisine: "South Indian", Description: "The original rava idli, served since 1924", PricePerPerson: 500, PriceRange: "₹"},
				},
			},
			{
				Summary: "Museums and market lanes",
				Activities: []Activity{
					{Time: Morning, Place: "National Gallery of Modern Art", Description: "Indian modernism in a colonial mansion", Cost: 200, DurationMinutes: 120, Category: "museum"},
					{Time: Afternoon, Place: "KR Market", Description: "The flower market at ground level is a riot of color", Cost: 200, DurationMinutes: 90, Category: "shopping"},
					{Time: Evening, Place: "Cubbon Park", Description: "Green lung of the city, ringed by heritage buildings", Cost: 0, DurationMinutes: 75, Category: "park"},
				},
				Dining: []Dining{
					{Name: "Vidyarthi Bhavan", Cuisine: "South Indian", Description: "Benne dosa institution in Basavanagudi", PricePerPerson: 400, PriceRange: "₹"},
				},
			},
			{
				Summary: "Cafes, craft and city views",
				Activities: []Activity{
					{Time: Morning, Place: "Church Street", Description: "Bookshops and specialty coffee crawls", Cost: 600, DurationMinutes: 120, Category: "shopping"},
					{Time: Afternoon, Place: "Visvesvaraya Industrial & Technological Museum", Description: "Hands-on science halls for the tech-city spirit", Cost: 300, DurationMinutes: 120, Category: "museum"},
					{Time: Evening, Place: "UB City Amphitheatre", Description: "Open-air evening performances and skyline views", Cost: 0, DurationMinutes: 90, Category: "attraction"},
				},
				Dining: []Dining{
					{Name: "Toit Brewpub", Cuisine: "Continental", Description: "Indiranagar's flagship craft brewery", PricePerPerson: 1500, PriceRange: "₹₹"},
				},
			},
		},
	}
}
