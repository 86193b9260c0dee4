package main

import (
	"log"
	"time"

	"atlasmind/config"
	"atlasmind/handlers"
	"atlasmind/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file (ignored in production where env vars are set directly)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found — using environment variables")
	}

	cfg := config.Load()

	if cfg.GinMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Wire services: the preset store is built once and injected, nothing
	// lives in package-level state.
	presets := services.NewPresetStore()
	synth := services.NewSynthesizer(presets, cfg.DefaultCity)
	geocoder := services.NewGeocoder(cfg.NominatimURL, cfg.MapsLanguage, cfg.GeocodeTimeout)
	tracker := services.NewQueryTracker(geocoder)

	itineraryHandler := handlers.NewItineraryHandler(synth)
	mapsHandler := handlers.NewMapsHandler(tracker, cfg.TileZoom)

	r := gin.Default()

	r.SetTrustedProxies([]string{"0.0.0.0/0"})

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.FrontendURLs,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/", handlers.RootHandler)

	api := r.Group("/api/v1")
	{
		api.GET("/health", handlers.HealthHandler)
		api.POST("/generate-itinerary", itineraryHandler.Generate)
		api.GET("/recommendations/:city", itineraryHandler.Recommendations)
		api.POST("/budget-breakdown", itineraryHandler.BudgetBreakdown)
		api.POST("/export-pdf", itineraryHandler.ExportPDF)
		api.GET("/geocode", mapsHandler.Geocode)
		api.GET("/map-embed", mapsHandler.MapEmbed)
	}

	log.Printf("🚀 AtlasMind API starting on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
