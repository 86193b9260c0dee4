package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds everything the server reads from the environment.
// Loaded once in main and passed down — no package-level state.
type Config struct {
	Port         string
	GinMode      string
	FrontendURLs []string

	// Geocoding (Nominatim-compatible endpoint)
	NominatimURL   string
	MapsLanguage   string
	GeocodeTimeout time.Duration

	// Itinerary synthesis
	DefaultCity string

	// Map tiles
	TileZoom int
}

func Load() Config {
	cfg := Config{
		Port:           getEnv("PORT", "8080"),
		GinMode:        getEnv("GIN_MODE", ""),
		NominatimURL:   getEnv("NOMINATIM_URL", "https://nominatim.openstreetmap.org"),
		MapsLanguage:   getEnv("MAPS_LANGUAGE", "en"),
		GeocodeTimeout: getDurationEnv("GEOCODE_TIMEOUT", 10*time.Second),
		DefaultCity:    getEnv("DEFAULT_CITY", "Mumbai"),
		TileZoom:       getIntEnv("TILE_ZOOM", 12),
	}

	// Local dev origins are always allowed; FRONTEND_URL adds deployed ones
	cfg.FrontendURLs = []string{"http://localhost:5173", "http://localhost:3000"}
	if urls := os.Getenv("FRONTEND_URL"); urls != "" {
		for _, u := range strings.Split(urls, ",") {
			u = strings.TrimSpace(u)
			if u != "" {
				cfg.FrontendURLs = append(cfg.FrontendURLs, u)
			}
		}
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getIntEnv(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
