package geocoding

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"shareplate/config"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGeocoder(t *testing.T, handler http.HandlerFunc) *mapQuestGeocoder {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{
		Geocoding: &config.GeocodingConfig{
			APIKey:  "test-key",
			BaseURL: server.URL,
			Timeout: time.Second,
		},
	}

	geocoder, err := NewMapQuestGeocoder(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	return geocoder.(*mapQuestGeocoder)
}

func TestMapQuestGeocoder_Geocode(t *testing.T) {
	geocoder := newTestGeocoder(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/geocoding/v1/address", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		assert.Equal(t, "Rachelsmolen 1, Eindhoven", r.URL.Query().Get("location"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"results":[{"locations":[{"latLng":{"lat":51.452,"lng":5.481}}]}]}`))
	})

	point, err := geocoder.Geocode(context.Background(), "Rachelsmolen 1, Eindhoven")
	assert.NoError(t, err)
	assert.Equal(t, orb.Point{5.481, 51.452}, point)
	assert.InDelta(t, 51.452, point.Lat(), 0.0001)
	assert.InDelta(t, 5.481, point.Lon(), 0.0001)
}

func TestMapQuestGeocoder_NoResults(t *testing.T) {
	geocoder := newTestGeocoder(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"results":[]}`))
	})

	_, err := geocoder.Geocode(context.Background(), "nowhere at all")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no geocoding result")
}

func TestMapQuestGeocoder_UpstreamError(t *testing.T) {
	geocoder := newTestGeocoder(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})

	_, err := geocoder.Geocode(context.Background(), "Rachelsmolen 1")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "status: 403")
}

func TestMapQuestGeocoder_EmptyAddress(t *testing.T) {
	geocoder := newTestGeocoder(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected for empty address")
	})

	_, err := geocoder.Geocode(context.Background(), "")
	assert.Error(t, err)
}

func TestNewMapQuestGeocoder_MissingKey(t *testing.T) {
	_, err := NewMapQuestGeocoder(&config.Config{}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	assert.Error(t, err)
}
