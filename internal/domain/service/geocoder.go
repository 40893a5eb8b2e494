package service

import (
	"context"

	"github.com/paulmach/orb"
)

// Geocoder resolves a free-form postal address into geographic coordinates.
type Geocoder interface {
	// Geocode returns the best-match coordinates for the address as an
	// orb.Point (longitude, latitude).
	Geocode(ctx context.Context, address string) (orb.Point, error)
}
