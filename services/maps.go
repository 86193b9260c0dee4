package services

import (
	"fmt"
	"math"
)

// ─── Map Rendering Adapter ────────────────────────────────────────────────────

const (
	// TileURLTemplate is the standard OSM raster tile endpoint.
	TileURLTemplate = "https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png"

	// OSMAttribution must be displayed alongside any rendered map.
	OSMAttribution = "© OpenStreetMap contributors"
)

var tileSubdomains = []string{"a", "b", "c"}

// TileCoord addresses a single XYZ raster tile.
type TileCoord struct {
	Z int `json:"z"`
	X int `json:"x"`
	Y int `json:"y"`
}

// MapView is everything a client needs to render a tile map centered on a
// resolved location with a single marker.
type MapView struct {
	Center        GeoLocation `json:"center"`
	Zoom          int         `json:"zoom"`
	Marker        GeoLocation `json:"marker"`
	TileTemplate  string      `json:"tile_template"`
	CenterTile    TileCoord   `json:"center_tile"`
	CenterTileURL string      `json:"center_tile_url"`
	Attribution   string      `json:"attribution"`
}

// TileForLocation converts a coordinate to its XYZ tile at the given zoom
// (standard slippy-map projection). Latitude is clamped to the Web Mercator
// limit so poles don't index out of range.
func TileForLocation(loc GeoLocation, zoom int) TileCoord {
	if zoom < 0 {
		zoom = 0
	}
	lat := math.Max(-85.0511, math.Min(85.0511, loc.Latitude))
	lon := loc.Longitude

	n := math.Exp2(float64(zoom))
	x := int((lon + 180.0) / 360.0 * n)
	latRad := lat * math.Pi / 180.0
	y := int((1.0 - math.Log(math.Tan(latRad)+1.0/math.Cos(latRad))/math.Pi) / 2.0 * n)

	limit := int(n) - 1
	if x < 0 {
		x = 0
	} else if x > limit {
		x = limit
	}
	if y < 0 {
		y = 0
	} else if y > limit {
		y = limit
	}
	return TileCoord{Z: zoom, X: x, Y: y}
}

// URL renders the tile's fetch URL, spreading load across the standard
// subdomains the way Leaflet does.
func (t TileCoord) URL() string {
	s := tileSubdomains[(t.X+t.Y)%len(tileSubdomains)]
	return fmt.Sprintf("https://%s.tile.openstreetmap.org/%d/%d/%d.png", s, t.Z, t.X, t.Y)
}

// BuildMapView assembles the render model for a resolved location.
func BuildMapView(loc GeoLocation, zoom int) MapView {
	if zoom <= 0 {
		zoom = 12
	}
	tile := TileForLocation(loc, zoom)
	return MapView{
		Center:        loc,
		Zoom:          zoom,
		Marker:        loc,
		TileTemplate:  TileURLTemplate,
		CenterTile:    tile,
		CenterTileURL: tile.URL(),
		Attribution:   OSMAttribution,
	}
}
