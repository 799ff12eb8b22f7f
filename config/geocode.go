package config

import (
	"context"
	"fmt"
	"io"
	"kidfit/domain"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/bytedance/sonic"
)

type nominatimGeocoder struct {
	client  *http.Client
	baseURL string
	city    string
	country string
}

// NewGeocoder builds the forward geocoder. Lookups are biased toward
// the configured city and country; a miss returns (nil, nil).
func NewGeocoder() domain.Geocoder {
	baseURL := os.Getenv("GEOCODE_BASE_URL")
	if baseURL == "" {
		baseURL = "https://nominatim.openstreetmap.org"
	}

	return &nominatimGeocoder{
		client:  &http.Client{Timeout: 10 * time.Second},
		baseURL: baseURL,
		city:    GetGeocodeCity(),
		country: GetGeocodeCountry(),
	}
}

type nominatimResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

func (g *nominatimGeocoder) Geocode(ctx context.Context, address string) (*domain.Coordinates, error) {
	query := fmt.Sprintf("%s, %s, %s", address, g.city, g.country)

	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "json")
	params.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"/search?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build geocode request: %w", err)
	}
	req.Header.Set("User-Agent", GetAppName())

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geocode request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocode service returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read geocode response: %w", err)
	}

	var results []nominatimResult
	if err := sonic.Unmarshal(body, &results); err != nil {
		return nil, fmt.Errorf("failed to decode geocode response: %w", err)
	}
	if len(results) == 0 {
		return nil, nil
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid latitude in geocode response: %v", err)
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid longitude in geocode response: %v", err)
	}

	return &domain.Coordinates{Latitude: lat, Longitude: lon}, nil
}
