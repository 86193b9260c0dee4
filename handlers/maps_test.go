package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"atlasmind/services"

	"github.com/gin-gonic/gin"
)

// fakeNominatim scripts geocoding responses per query.
func fakeNominatim(t *testing.T, responses map[string]string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := responses[r.URL.Query().Get("q")]
		if !ok {
			http.Error(w, "unscripted query", http.StatusInternalServerError)
			return
		}
		w.Write([]byte(body))
	}))
}

func buildMapsRouter(geocoderURL string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	geocoder := services.NewGeocoder(geocoderURL, "en", 2*time.Second)
	h := NewMapsHandler(services.NewQueryTracker(geocoder), 12)

	r := gin.New()
	api := r.Group("/api/v1")
	{
		api.GET("/geocode", h.Geocode)
		api.GET("/map-embed", h.MapEmbed)
	}
	return r
}

func TestGeocodeHandler(t *testing.T) {
	srv := fakeNominatim(t, map[string]string{
		"Mumbai":    `[{"lat":"19.0760","lon":"72.8777","display_name":"Mumbai, India"}]`,
		"Atlantis2": `[]`,
	})
	defer srv.Close()
	r := buildMapsRouter(srv.URL)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/geocode?q=Mumbai", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	var loc services.GeoLocation
	if err := json.Unmarshal(w.Body.Bytes(), &loc); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if loc.Latitude != 19.0760 || loc.Longitude != 72.8777 || loc.DisplayName != "Mumbai, India" {
		t.Errorf("loc = %+v", loc)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/geocode?q=Atlantis2", nil))
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown place status = %d, want 404", w.Code)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/geocode", nil))
	if w.Code != http.StatusBadRequest {
		t.Errorf("missing q status = %d, want 400", w.Code)
	}
}

func TestGeocodeHandlerTransportFailure(t *testing.T) {
	srv := fakeNominatim(t, nil) // every query is unscripted → 500
	defer srv.Close()
	r := buildMapsRouter(srv.URL)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/geocode?q=Anywhere", nil))
	if w.Code != http.StatusBadGateway {
		t.Errorf("status = %d, want 502", w.Code)
	}
}

func TestMapEmbedHandler(t *testing.T) {
	srv := fakeNominatim(t, map[string]string{
		"Mumbai": `[{"lat":"19.0760","lon":"72.8777","display_name":"Mumbai, India"}]`,
	})
	defer srv.Close()
	r := buildMapsRouter(srv.URL)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/map-embed?location=Mumbai&zoom=12", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	var view services.MapView
	if err := json.Unmarshal(w.Body.Bytes(), &view); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if view.Zoom != 12 {
		t.Errorf("zoom = %d", view.Zoom)
	}
	if view.Attribution != services.OSMAttribution {
		t.Errorf("attribution = %q — maps must carry OSM attribution", view.Attribution)
	}
	if view.Marker.DisplayName != "Mumbai, India" {
		t.Errorf("marker = %+v", view.Marker)
	}
	if view.CenterTile.Z != 12 {
		t.Errorf("center tile = %+v", view.CenterTile)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/map-embed?location=Mumbai&zoom=99", nil))
	if w.Code != http.StatusBadRequest {
		t.Errorf("bad zoom status = %d, want 400", w.Code)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/map-embed", nil))
	if w.Code != http.StatusBadRequest {
		t.Errorf("missing location status = %d, want 400", w.Code)
	}
}
