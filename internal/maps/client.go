package maps

import (
	"context"
	"fmt"
	"os"

	gmaps "googlemaps.github.io/maps"
)

// EnvAPIKey is the environment variable holding the Maps Platform API key.
const EnvAPIKey = "MAPS_API_KEY"

// LoadAPIKey reads the Maps API key from the environment.
func LoadAPIKey() (string, error) {
	key := os.Getenv(EnvAPIKey)
	if key == "" {
		return "", fmt.Errorf("%s is not set", EnvAPIKey)
	}
	return key, nil
}

// Client wraps the Google Maps Platform web service client.
type Client struct {
	client *gmaps.Client
}

// NewClient creates a Maps client authenticated with the given API key.
func NewClient(apiKey string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("maps API key is required")
	}

	client, err := gmaps.NewClient(gmaps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Maps client: %w", err)
	}

	return &Client{client: client}, nil
}

// Geocode resolves an address to coordinates.
func (c *Client) Geocode(ctx context.Context, address string) ([]GeocodeResult, error) {
	results, err := c.client.Geocode(ctx, &gmaps.GeocodingRequest{Address: address})
	if err != nil {
		return nil, fmt.Errorf("geocoding failed for %q: %w", address, err)
	}
	return convertGeocodeResults(results), nil
}

// ReverseGeocode resolves coordinates to the addresses at that point.
func (c *Client) ReverseGeocode(ctx context.Context, lat, lng float64) ([]GeocodeResult, error) {
	results, err := c.client.ReverseGeocode(ctx, &gmaps.GeocodingRequest{
		LatLng: &gmaps.LatLng{Lat: lat, Lng: lng},
	})
	if err != nil {
		return nil, fmt.Errorf("reverse geocoding failed for %f,%f: %w", lat, lng, err)
	}
	return convertGeocodeResults(results), nil
}

// SearchPlaces runs a free-text place search, optionally biased around a
// location with the given radius in meters.
func (c *Client) SearchPlaces(ctx context.Context, query string, location *Location, radius uint) ([]PlaceSummary, error) {
	req := &gmaps.TextSearchRequest{Query: query}
	if location != nil {
		req.Location = &gmaps.LatLng{Lat: location.Lat, Lng: location.Lng}
		req.Radius = radius
	}

	resp, err := c.client.TextSearch(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("place search failed for %q: %w", query, err)
	}

	places := make([]PlaceSummary, len(resp.Results))
	for i, r := range resp.Results {
		places[i] = PlaceSummary{
			Name:             r.Name,
			FormattedAddress: r.FormattedAddress,
			PlaceID:          r.PlaceID,
			Location:         Location{Lat: r.Geometry.Location.Lat, Lng: r.Geometry.Location.Lng},
			Rating:           r.Rating,
			RatingCount:      r.UserRatingsTotal,
			Types:            r.Types,
		}
	}
	return places, nil
}

// PlaceDetails fetches the detailed record for a place ID.
func (c *Client) PlaceDetails(ctx context.Context, placeID string) (*PlaceDetails, error) {
	result, err := c.client.PlaceDetails(ctx, &gmaps.PlaceDetailsRequest{PlaceID: placeID})
	if err != nil {
		return nil, fmt.Errorf("place details failed for %q: %w", placeID, err)
	}

	details := &PlaceDetails{
		Name:             result.Name,
		FormattedAddress: result.FormattedAddress,
		PlaceID:          result.PlaceID,
		Location:         Location{Lat: result.Geometry.Location.Lat, Lng: result.Geometry.Location.Lng},
		PhoneNumber:      result.FormattedPhoneNumber,
		Website:          result.Website,
		Rating:           result.Rating,
		RatingCount:      result.UserRatingsTotal,
		Types:            result.Types,
	}
	if result.OpeningHours != nil {
		details.OpeningHours = result.OpeningHours.WeekdayText
	}
	return details, nil
}

// Directions computes routes between an origin and a destination.
func (c *Client) Directions(ctx context.Context, origin, destination, mode string) ([]Route, error) {
	travelMode, err := ParseTravelMode(mode)
	if err != nil {
		return nil, err
	}

	routes, _, err := c.client.Directions(ctx, &gmaps.DirectionsRequest{
		Origin:      origin,
		Destination: destination,
		Mode:        travelMode,
	})
	if err != nil {
		return nil, fmt.Errorf("directions failed from %q to %q: %w", origin, destination, err)
	}

	return convertRoutes(routes), nil
}

// DistanceMatrix computes travel distance and time between each origin and
// destination pairing.
func (c *Client) DistanceMatrix(ctx context.Context, origins, destinations []string, mode string) (*Matrix, error) {
	travelMode, err := ParseTravelMode(mode)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.DistanceMatrix(ctx, &gmaps.DistanceMatrixRequest{
		Origins:      origins,
		Destinations: destinations,
		Mode:         travelMode,
	})
	if err != nil {
		return nil, fmt.Errorf("distance matrix failed: %w", err)
	}

	matrix := &Matrix{
		OriginAddresses:      resp.OriginAddresses,
		DestinationAddresses: resp.DestinationAddresses,
		Rows:                 make([]MatrixRow, len(resp.Rows)),
	}
	for i, row := range resp.Rows {
		elements := make([]MatrixElement, len(row.Elements))
		for j, el := range row.Elements {
			elements[j] = MatrixElement{Status: el.Status}
			if el.Status == "OK" {
				elements[j].Distance = el.Distance.HumanReadable
				elements[j].DistanceMeters = el.Distance.Meters
				elements[j].Duration = el.Duration.String()
			}
		}
		matrix.Rows[i] = MatrixRow{Elements: elements}
	}
	return matrix, nil
}

// Elevation samples the elevation at each of the given locations.
func (c *Client) Elevation(ctx context.Context, locations []Location) ([]ElevationPoint, error) {
	latLngs := make([]gmaps.LatLng, len(locations))
	for i, loc := range locations {
		latLngs[i] = gmaps.LatLng{Lat: loc.Lat, Lng: loc.Lng}
	}

	results, err := c.client.Elevation(ctx, &gmaps.ElevationRequest{Locations: latLngs})
	if err != nil {
		return nil, fmt.Errorf("elevation lookup failed: %w", err)
	}

	points := make([]ElevationPoint, len(results))
	for i, r := range results {
		points[i] = ElevationPoint{
			Elevation:  r.Elevation,
			Resolution: r.Resolution,
		}
		if r.Location != nil {
			points[i].Location = Location{Lat: r.Location.Lat, Lng: r.Location.Lng}
		}
	}
	return points, nil
}

// ParseTravelMode maps a tool argument onto the API's travel modes. An empty
// mode defaults to driving.
func ParseTravelMode(mode string) (gmaps.Mode, error) {
	switch mode {
	case "", "driving":
		return gmaps.TravelModeDriving, nil
	case "walking":
		return gmaps.TravelModeWalking, nil
	case "bicycling":
		return gmaps.TravelModeBicycling, nil
	case "transit":
		return gmaps.TravelModeTransit, nil
	default:
		return "", fmt.Errorf("unsupported travel mode %q (supported: driving, walking, bicycling, transit)", mode)
	}
}

func convertGeocodeResults(results []gmaps.GeocodingResult) []GeocodeResult {
	converted := make([]GeocodeResult, len(results))
	for i, r := range results {
		converted[i] = GeocodeResult{
			FormattedAddress: r.FormattedAddress,
			Location:         Location{Lat: r.Geometry.Location.Lat, Lng: r.Geometry.Location.Lng},
			PlaceID:          r.PlaceID,
			Types:            r.Types,
		}
	}
	return converted
}

func convertRoutes(routes []gmaps.Route) []Route {
	converted := make([]Route, len(routes))
	for i, route := range routes {
		legs := make([]RouteLeg, len(route.Legs))
		for j, leg := range route.Legs {
			steps := make([]RouteStep, len(leg.Steps))
			for k, step := range leg.Steps {
				steps[k] = RouteStep{
					Instructions: step.HTMLInstructions,
					Distance:     step.Distance.HumanReadable,
					Duration:     step.Duration.String(),
					TravelMode:   step.TravelMode,
				}
			}
			legs[j] = RouteLeg{
				StartAddress:   leg.StartAddress,
				EndAddress:     leg.EndAddress,
				Distance:       leg.Distance.HumanReadable,
				DistanceMeters: leg.Distance.Meters,
				Duration:       leg.Duration.String(),
				Steps:          steps,
			}
		}
		converted[i] = Route{
			Summary: route.Summary,
			Legs:    legs,
		}
	}
	return converted
}
