package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// ─── Types ────────────────────────────────────────────────────────────────────

// GeoLocation is a resolved coordinate. It is produced only by the geocoder
// and never persisted.
type GeoLocation struct {
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	DisplayName string  `json:"display_name"`
}

// ErrLocationNotFound means the geocoding service matched nothing for the
// query. Any other error from Resolve is a transport or parse failure.
var ErrLocationNotFound = errors.New("location not found")

// ─── Geocoder ─────────────────────────────────────────────────────────────────

// Geocoder resolves free-text place names against a Nominatim-compatible
// search endpoint. Every call is a fresh request — no caching. Transport
// failures get one retry with a short backoff; not-found never retries.
type Geocoder struct {
	baseURL    string
	language   string
	httpClient *http.Client
	retryWait  time.Duration
}

func NewGeocoder(baseURL, language string, timeout time.Duration) *Geocoder {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Geocoder{
		baseURL:  strings.TrimRight(baseURL, "/"),
		language: language,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		retryWait: 500 * time.Millisecond,
	}
}

// nominatimResult is one element of the search response array. Coordinates
// arrive string-encoded.
type nominatimResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// Resolve returns the first match for the query. A blank query fails with
// ErrLocationNotFound without touching the network.
func (g *Geocoder) Resolve(ctx context.Context, query string) (GeoLocation, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return GeoLocation{}, ErrLocationNotFound
	}

	loc, err := g.resolveOnce(ctx, query)
	if err == nil || errors.Is(err, ErrLocationNotFound) {
		return loc, err
	}

	// One retry on transport failure — the endpoint is a shared public
	// service and transient errors are common.
	select {
	case <-time.After(g.retryWait):
	case <-ctx.Done():
		return GeoLocation{}, ctx.Err()
	}
	return g.resolveOnce(ctx, query)
}

func (g *Geocoder) resolveOnce(ctx context.Context, query string) (GeoLocation, error) {
	endpoint := fmt.Sprintf("%s/search?format=json&q=%s", g.baseURL, url.QueryEscape(query))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return GeoLocation{}, fmt.Errorf("geocode request build failed: %w", err)
	}
	req.Header.Set("Accept-Language", g.language)
	// Nominatim's usage policy requires an identifying User-Agent
	req.Header.Set("User-Agent", "atlasmind/1.0")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return GeoLocation{}, fmt.Errorf("geocode request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return GeoLocation{}, fmt.Errorf("geocode read failed: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return GeoLocation{}, fmt.Errorf("geocode error (%d): %s", resp.StatusCode, string(body))
	}

	var results []nominatimResult
	if err := json.Unmarshal(body, &results); err != nil {
		return GeoLocation{}, fmt.Errorf("failed to parse geocode response: %w", err)
	}
	if len(results) == 0 {
		return GeoLocation{}, ErrLocationNotFound
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return GeoLocation{}, fmt.Errorf("failed to parse latitude %q: %w", results[0].Lat, err)
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return GeoLocation{}, fmt.Errorf("failed to parse longitude %q: %w", results[0].Lon, err)
	}

	return GeoLocation{
		Latitude:    lat,
		Longitude:   lon,
		DisplayName: results[0].DisplayName,
	}, nil
}
