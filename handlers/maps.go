package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"atlasmind/services"

	"github.com/gin-gonic/gin"
)

// MapsHandler serves geocoding and map-embed models. All resolution goes
// through the tracker so a slow lookup can never answer for a newer one on
// the same display slot.
type MapsHandler struct {
	tracker     *services.QueryTracker
	defaultZoom int
}

func NewMapsHandler(tracker *services.QueryTracker, defaultZoom int) *MapsHandler {
	if defaultZoom <= 0 {
		defaultZoom = 12
	}
	return &MapsHandler{tracker: tracker, defaultZoom: defaultZoom}
}

// Geocode resolves ?q= to a coordinate. The optional ?slot= names the
// client-side display slot; requests for the same slot supersede each other.
func (h *MapsHandler) Geocode(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing query parameter q"})
		return
	}
	slot := c.DefaultQuery("slot", "default")

	loc, err := h.tracker.Resolve(c.Request.Context(), slot, query)
	if err != nil {
		h.writeResolveError(c, query, err)
		return
	}

	c.JSON(http.StatusOK, loc)
}

// MapEmbed resolves ?location= and returns the full map render model:
// center, marker, tile template and the mandatory attribution.
func (h *MapsHandler) MapEmbed(c *gin.Context) {
	location := c.Query("location")
	if location == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing query parameter location"})
		return
	}

	zoom := h.defaultZoom
	if z := c.Query("zoom"); z != "" {
		n, err := strconv.Atoi(z)
		if err != nil || n < 0 || n > 19 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid zoom: must be 0-19"})
			return
		}
		zoom = n
	}

	slot := "embed:" + c.DefaultQuery("slot", "default")
	loc, err := h.tracker.Resolve(c.Request.Context(), slot, location)
	if err != nil {
		h.writeResolveError(c, location, err)
		return
	}

	c.JSON(http.StatusOK, services.BuildMapView(loc, zoom))
}

func (h *MapsHandler) writeResolveError(c *gin.Context, query string, err error) {
	switch {
	case errors.Is(err, services.ErrLocationNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Location not found"})
	case errors.Is(err, services.ErrQuerySuperseded):
		c.JSON(http.StatusConflict, gin.H{"error": "Superseded by a newer query"})
	default:
		log.Printf("⚠️  Geocoding %q failed: %v", query, err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to load location"})
	}
}
