package location

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// DefaultGeocoderURL is the public OpenStreetMap Nominatim instance
const DefaultGeocoderURL = "https://nominatim.openstreetmap.org"

// NoDataGeoposition is the place name reported when the geocoder has nothing
// under the point
const NoDataGeoposition = "No data (ISS is likely over the ocean)"

// ErrNoData reports a point with no resolvable place, e.g. open ocean
var ErrNoData = errors.New("no geocoding data for point")

// reverse zoom level; 10 resolves to city granularity
const reverseZoom = 10

// Geocoder resolves coordinates to place names through a Nominatim
// compatible reverse-geocoding API
type Geocoder struct {
	baseURL   string
	userAgent string
	client    *http.Client
}

// NewGeocoder creates a reverse geocoder against baseURL. Nominatim's usage
// policy requires an identifying user agent.
func NewGeocoder(baseURL, userAgent string, timeout time.Duration) *Geocoder {
	if baseURL == "" {
		baseURL = DefaultGeocoderURL
	}
	return &Geocoder{
		baseURL:   baseURL,
		userAgent: userAgent,
		client:    &http.Client{Timeout: timeout},
	}
}

// Reverse returns the display name of the place at lat, lng. It returns
// ErrNoData when the service has no place there.
func (g *Geocoder) Reverse(ctx context.Context, lat, lng float64) (string, error) {
	params := url.Values{}
	params.Set("format", "jsonv2")
	params.Set("lat", strconv.FormatFloat(lat, 'f', 6, 64))
	params.Set("lon", strconv.FormatFloat(lng, 'f', 6, 64))
	params.Set("zoom", strconv.Itoa(reverseZoom))
	params.Set("accept-language", "en")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"/reverse?"+params.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("building request: %w", err)
	}
	if g.userAgent != "" {
		req.Header.Set("User-Agent", g.userAgent)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("reverse geocoding: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("geocoder returned status %d", resp.StatusCode)
	}

	var result reverseResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("parsing response: %w", err)
	}

	if result.Error != "" || result.DisplayName == "" {
		return "", ErrNoData
	}
	return result.DisplayName, nil
}

// API response structure
type reverseResponse struct {
	DisplayName string `json:"display_name"`
	Error       string `json:"error"`
}
