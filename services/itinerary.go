package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ─── Types ────────────────────────────────────────────────────────────────────

// TimeOfDay slots an activity into a part of the day.
type TimeOfDay string

const (
	Morning   TimeOfDay = "morning"
	Afternoon TimeOfDay = "afternoon"
	Evening   TimeOfDay = "evening"
)

type Activity struct {
	Time            TimeOfDay `json:"time"`
	Place           string    `json:"place"`
	Description     string    `json:"description"`
	Cost            int       `json:"cost"`
	DurationMinutes int       `json:"duration_minutes"`
	Category        string    `json:"category"`
}

type Dining struct {
	Name           string `json:"name"`
	Cuisine        string `json:"cuisine"`
	Description    string `json:"description"`
	PricePerPerson int    `json:"price_per_person"`
	PriceRange     string `json:"price_range"`
}

type DayPlan struct {
	Day        int        `json:"day"`
	Summary    string     `json:"summary"`
	Activities []Activity `json:"activities"`
	Dining     []Dining   `json:"dining"`
}

// Itinerary is the full generated document. It is write-once: nothing
// mutates it after Synthesize returns.
type Itinerary struct {
	ID              string    `json:"id"`
	City            string    `json:"city"`
	TotalBudget     int       `json:"total_budget"`
	DayCount        int       `json:"days"`
	GeneratedAt     time.Time `json:"generated_at"`
	Summary         string    `json:"summary"`
	TotalCost       int       `json:"total_cost"`
	Savings         int       `json:"savings"`
	Recommendations []string  `json:"recommendations"`
	Days            []DayPlan `json:"itinerary"`
}

// Demo-stub budget figures. These are intentionally NOT derived from the
// generated activity and dining costs, nor from the budget a caller sends:
// the shipped product carried these exact constants on every document.
// BudgetBreakdown computes the real sums for callers that want them.
const (
	stubTotalBudget = 150000
	stubTotalCost   = 142000
	stubSavings     = 8000
)

// ─── Synthesizer ──────────────────────────────────────────────────────────────

// Synthesizer produces complete itinerary documents from a city name.
// Synthesis is total: every string input, including the empty one, yields a
// structurally valid document.
type Synthesizer struct {
	presets     *PresetStore
	defaultCity string
	now         func() time.Time
}

func NewSynthesizer(presets *PresetStore, defaultCity string) *Synthesizer {
	if defaultCity == "" {
		defaultCity = "Mumbai"
	}
	return &Synthesizer{
		presets:     presets,
		defaultCity: defaultCity,
		now:         time.Now,
	}
}

// Synthesize builds an itinerary for the given city. A recognized city
// (case- and whitespace-insensitive) gets its curated preset; anything else
// gets the generic fallback template. Blank input means the default city.
func (s *Synthesizer) Synthesize(city string) Itinerary {
	city = strings.TrimSpace(city)
	if city == "" {
		city = s.defaultCity
	}
	key := strings.ToLower(city)

	var (
		summary         string
		recommendations []string
		days            []DayPlan
	)

	// Display keeps the caller's casing; the lowered key is lookup-only.
	if preset, ok := s.presets.Lookup(key); ok {
		summary = preset.Summary
		recommendations = preset.Recommendations
		days = make([]DayPlan, len(preset.Days))
		for i, d := range preset.Days {
			days[i] = DayPlan{
				Day:        i + 1,
				Summary:    d.Summary,
				Activities: d.Activities,
				Dining:     d.Dining,
			}
		}
	} else {
		summary = fmt.Sprintf("A 2-day %s getaway covering the city's essential sights and flavors.", city)
		recommendations = fallbackRecommendations(city)
		days = fallbackDays(city)
	}

	return Itinerary{
		ID:              uuid.New().String(),
		City:            city,
		TotalBudget:     stubTotalBudget,
		DayCount:        len(days),
		GeneratedAt:     s.now(),
		Summary:         summary,
		TotalCost:       stubTotalCost,
		Savings:         stubSavings,
		Recommendations: recommendations,
		Days:            days,
	}
}

// ─── Fallback template ────────────────────────────────────────────────────────

// fallbackDays builds the generic two-day plan used for cities without a
// preset. Place names interpolate the city so the document still reads as
// specific to the request.
func fallbackDays(city string) []DayPlan {
	return []DayPlan{
		{
			Day:     1,
			Summary: "Arrival and city highlights",
			Activities: []Activity{
				{
					Time:            Morning,
					Place:           city + " City Museum",
					Description:     "Get oriented with the city's history and culture",
					Cost:            500,
					DurationMinutes: 120,
					Category:        "museum",
				},
				{
					Time:            Afternoon,
					Place:           city + " Old Town Walk",
					Description:     "Wander the historic quarter and its landmark streets",
					Cost:            0,
					DurationMinutes: 90,
					Category:        "attraction",
				},
				{
					Time:            Evening,
					Place:           city + " Central Market",
					Description:     "Browse local stalls and sample street snacks",
					Cost:            300,
					DurationMinutes: 60,
					Category:        "shopping",
				},
			},
			Dining: []Dining{
				{
					Name:           city + " Heritage Kitchen",
					Cuisine:        "Local",
					Description:    "Regional classics in a traditional setting",
					PricePerPerson: 800,
					PriceRange:     "₹₹",
				},
			},
		},
		{
			Day:     2,
			Summary: "Local flavor and scenic views",
			Activities: []Activity{
				{
					Time:            Morning,
					Place:           city + " Botanical Gardens",
					Description:     "A quiet morning among curated greenery",
					Cost:            200,
					DurationMinutes: 90,
					Category:        "park",
				},
				{
					Time:            Afternoon,
					Place:           city + " Art District",
					Description:     "Galleries, studios and street art",
					Cost:            400,
					DurationMinutes: 120,
					Category:        "museum",
				},
				{
					Time:            Evening,
					Place:           city + " Riverside Promenade",
					Description:     "Sunset stroll along the waterfront",
					Cost:            0,
					DurationMinutes: 75,
					Category:        "attraction",
				},
			},
			Dining: []Dining{
				{
					Name:           city + " Rooftop Grill",
					Cuisine:        "Fusion",
					Description:    "Dinner with a skyline view",
					PricePerPerson: 1200,
					PriceRange:     "₹₹₹",
				},
			},
		},
	}
}

func fallbackRecommendations(city string) []string {
	return []string{
		fmt.Sprintf("Start early — %s's main sights are quietest before 10am", city),
		"Carry small cash for markets and street food",
		fmt.Sprintf("Ask locals in %s for neighborhood food picks", city),
		"Keep one evening unplanned for wandering",
	}
}
