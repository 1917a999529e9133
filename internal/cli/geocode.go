package cli

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// nominatimURL is the OpenStreetMap search endpoint.
var nominatimURL = "https://nominatim.openstreetmap.org/search"

const userAgent = "astrochart/1.0"

// Place is one geocoder result.
type Place struct {
	DisplayName string  `json:"display_name"`
	Lat         float64 `json:"lat,string"`
	Lon         float64 `json:"lon,string"`
}

var geocodeClient = &http.Client{Timeout: 10 * time.Second}

// Geocode resolves a place name to coordinates through Nominatim.
func Geocode(name string) (Place, error) {
	q := url.Values{"q": {name}, "format": {"json"}, "limit": {"1"}}
	req, err := http.NewRequest(http.MethodGet, nominatimURL+"?"+q.Encode(), nil)
	if err != nil {
		return Place{}, err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := geocodeClient.Do(req)
	if err != nil {
		return Place{}, fmt.Errorf("geocoding %q: %w", name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Place{}, fmt.Errorf("geocoding %q: status %s", name, resp.Status)
	}

	var places []Place
	if err := json.NewDecoder(resp.Body).Decode(&places); err != nil {
		return Place{}, fmt.Errorf("geocoding %q: %w", name, err)
	}
	if len(places) == 0 {
		return Place{}, fmt.Errorf("no match for location %q", name)
	}
	return places[0], nil
}
