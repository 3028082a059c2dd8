package geo

import (
	"context"
	"strings"

	"go.uber.org/zap"
)

// searchLimit caps free-text search results, matching the upstream query.
const searchLimit = 5

// Resolution is the outcome of a postcode check against the service area.
type Resolution struct {
	Valid      bool   `json:"valid"`
	Postcode   string `json:"postcode,omitempty"`
	Address    string `json:"address,omitempty"`
	OutOfRange bool   `json:"outOfRange,omitempty"`
}

// AddressMatch is one free-text search hit inside the service area.
type AddressMatch struct {
	Postcode string `json:"postcode"`
	Address  string `json:"address"`
}

// Validator resolves postcodes and free-text queries against the service
// area. Lookup failures are swallowed into empty results by contract; the
// distinction between "not found" and "service unavailable" is logged
// internally only.
type Validator interface {
	ResolvePostcode(ctx context.Context, code string) Resolution
	Autocomplete(ctx context.Context, partial string) []string
	SearchByAddress(ctx context.Context, query string) []AddressMatch
}

// DefaultGeoService implements Validator on top of the postcodes.io client.
type DefaultGeoService struct {
	Client      *Client
	Origin      Point
	RadiusMiles float64
	Logger      *zap.Logger
}

// NewGeoService builds a validator for the given origin and radius.
func NewGeoService(client *Client, origin Point, radiusMiles float64, logger *zap.Logger) *DefaultGeoService {
	return &DefaultGeoService{
		Client:      client,
		Origin:      origin,
		RadiusMiles: radiusMiles,
		Logger:      logger,
	}
}

// ResolvePostcode looks up a postcode and accepts it iff it lies within the
// service radius. Any transport or parse failure degrades to {valid:false}.
func (s *DefaultGeoService) ResolvePostcode(ctx context.Context, code string) Resolution {
	result, err := s.Client.Lookup(ctx, code)
	if err != nil {
		s.Logger.Warn("postcode lookup failed", zap.String("postcode", code), zap.Error(err))
		return Resolution{Valid: false}
	}

	distance := HaversineMiles(s.Origin, Point{Lat: result.Latitude, Lng: result.Longitude})
	if distance > s.RadiusMiles {
		return Resolution{Valid: false, OutOfRange: true}
	}

	return Resolution{
		Valid:    true,
		Postcode: result.Postcode,
		Address:  joinAddress(result.AdminWard, result.AdminDistrict),
	}
}

// Autocomplete suggests postcodes for a partial query. Queries shorter than
// two characters short-circuit to an empty result without a network call.
func (s *DefaultGeoService) Autocomplete(ctx context.Context, partial string) []string {
	if len(partial) < 2 {
		return []string{}
	}
	suggestions, err := s.Client.Autocomplete(ctx, partial)
	if err != nil {
		s.Logger.Warn("postcode autocomplete failed", zap.String("query", partial), zap.Error(err))
		return []string{}
	}
	if suggestions == nil {
		return []string{}
	}
	return suggestions
}

// SearchByAddress runs a free-text search and keeps only results inside the
// service area. Queries shorter than three characters short-circuit to an
// empty result without a network call.
func (s *DefaultGeoService) SearchByAddress(ctx context.Context, query string) []AddressMatch {
	if len(query) < 3 {
		return []AddressMatch{}
	}
	results, err := s.Client.Search(ctx, query, searchLimit)
	if err != nil {
		s.Logger.Warn("postcode search failed", zap.String("query", query), zap.Error(err))
		return []AddressMatch{}
	}

	matches := []AddressMatch{}
	for _, r := range results {
		if HaversineMiles(s.Origin, Point{Lat: r.Latitude, Lng: r.Longitude}) > s.RadiusMiles {
			continue
		}
		matches = append(matches, AddressMatch{
			Postcode: r.Postcode,
			Address:  joinAddress(r.AdminWard, r.AdminDistrict),
		})
	}
	return matches
}

// joinAddress joins the populated parts with ", ", dropping blanks.
func joinAddress(parts ...string) string {
	kept := parts[:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, ", ")
}
