// Package geocoding implements the Geocoder domain service against the
// MapQuest geocoding API.
package geocoding

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"shareplate/config"
	"shareplate/internal/domain/service"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

const (
	defaultBaseURL = "https://www.mapquestapi.com"
	defaultTimeout = 10 * time.Second
)

// mapQuestGeocoder resolves free-form addresses through MapQuest.
type mapQuestGeocoder struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// geocodeResponse mirrors the subset of the MapQuest response we consume.
type geocodeResponse struct {
	Results []struct {
		Locations []struct {
			LatLng struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"latLng"`
		} `json:"locations"`
	} `json:"results"`
}

// NewMapQuestGeocoder creates a Geocoder backed by the MapQuest API.
func NewMapQuestGeocoder(cfg *config.Config, logger *slog.Logger) (service.Geocoder, error) {
	if cfg.Geocoding == nil || cfg.Geocoding.APIKey == "" {
		return nil, errors.New("geocoding api key must be provided")
	}

	baseURL := cfg.Geocoding.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	timeout := cfg.Geocoding.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &mapQuestGeocoder{
		apiKey:  cfg.Geocoding.APIKey,
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}, nil
}

// Geocode resolves an address to a WGS84 point.
func (g *mapQuestGeocoder) Geocode(ctx context.Context, address string) (orb.Point, error) {
	if address == "" {
		return orb.Point{}, errors.New("address must not be empty")
	}

	query := url.Values{}
	query.Set("key", g.apiKey)
	query.Set("location", address)

	endpoint := g.baseURL + "/geocoding/v1/address?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return orb.Point{}, errors.WithStack(err)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return orb.Point{}, errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return orb.Point{}, errors.Errorf("geocoding service returned status: %d", resp.StatusCode)
	}

	var parsed geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return orb.Point{}, errors.Wrap(err, "decode geocoding response")
	}

	if len(parsed.Results) == 0 || len(parsed.Results[0].Locations) == 0 {
		return orb.Point{}, errors.Errorf("no geocoding result for address: %s", address)
	}

	latLng := parsed.Results[0].Locations[0].LatLng

	g.logger.Debug("[MapQuest] Address resolved",
		slog.String("address", address),
		slog.Float64("lat", latLng.Lat),
		slog.Float64("lng", latLng.Lng),
	)

	// orb points are lng/lat ordered.
	return orb.Point{latLng.Lng, latLng.Lat}, nil
}
