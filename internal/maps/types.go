package maps

// Location is a WGS84 coordinate pair.
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// GeocodeResult is one match for a forward or reverse geocoding query.
type GeocodeResult struct {
	// FormattedAddress is the human-readable address of this result
	FormattedAddress string `json:"formattedAddress"`

	// Location is the geocoded coordinate
	Location Location `json:"location"`

	// PlaceID is the stable Google place identifier
	PlaceID string `json:"placeId"`

	// Types classify the result (street_address, locality, ...)
	Types []string `json:"types,omitempty"`
}

// PlaceSummary is one entry of a place search result page.
type PlaceSummary struct {
	Name             string   `json:"name"`
	FormattedAddress string   `json:"formattedAddress,omitempty"`
	PlaceID          string   `json:"placeId"`
	Location         Location `json:"location"`
	Rating           float32  `json:"rating,omitempty"`
	RatingCount      int      `json:"ratingCount,omitempty"`
	Types            []string `json:"types,omitempty"`
}

// PlaceDetails holds the detailed record for a single place.
type PlaceDetails struct {
	Name             string   `json:"name"`
	FormattedAddress string   `json:"formattedAddress,omitempty"`
	PlaceID          string   `json:"placeId"`
	Location         Location `json:"location"`
	PhoneNumber      string   `json:"phoneNumber,omitempty"`
	Website          string   `json:"website,omitempty"`
	Rating           float32  `json:"rating,omitempty"`
	RatingCount      int      `json:"ratingCount,omitempty"`
	OpeningHours     []string `json:"openingHours,omitempty"`
	Types            []string `json:"types,omitempty"`
}

// RouteStep is a single navigation instruction within a route leg.
type RouteStep struct {
	// Instructions is the HTML-formatted instruction text from the API
	Instructions string `json:"instructions"`
	Distance     string `json:"distance"`
	Duration     string `json:"duration"`
	TravelMode   string `json:"travelMode,omitempty"`
}

// RouteLeg is one leg of a route between two waypoints.
type RouteLeg struct {
	StartAddress   string      `json:"startAddress"`
	EndAddress     string      `json:"endAddress"`
	Distance       string      `json:"distance"`
	DistanceMeters int         `json:"distanceMeters"`
	Duration       string      `json:"duration"`
	Steps          []RouteStep `json:"steps"`
}

// Route is one alternative returned by a directions query.
type Route struct {
	Summary string     `json:"summary"`
	Legs    []RouteLeg `json:"legs"`
}

// MatrixElement is one origin/destination pairing of a distance matrix.
type MatrixElement struct {
	Status         string `json:"status"`
	Distance       string `json:"distance,omitempty"`
	DistanceMeters int    `json:"distanceMeters,omitempty"`
	Duration       string `json:"duration,omitempty"`
}

// MatrixRow holds the elements for a single origin.
type MatrixRow struct {
	Elements []MatrixElement `json:"elements"`
}

// Matrix is the full result of a distance matrix query.
type Matrix struct {
	OriginAddresses      []string    `json:"originAddresses"`
	DestinationAddresses []string    `json:"destinationAddresses"`
	Rows                 []MatrixRow `json:"rows"`
}

// ElevationPoint is the elevation at a single sampled location.
type ElevationPoint struct {
	Location   Location `json:"location"`
	Elevation  float64  `json:"elevation"`
	Resolution float64  `json:"resolution,omitempty"`
}
