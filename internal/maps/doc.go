// Package maps provides a client for the Google Maps Platform web services.
//
// It wraps the official googlemaps.github.io/maps client with the operations
// the maps tools expose: geocoding, reverse geocoding, place search and
// details, directions, distance matrices, and elevation. Responses are
// converted into small local types that serialize cleanly into tool results.
//
// The client is a pure passthrough: it validates nothing beyond what the tool
// layer already checked and forwards the provider's errors unchanged.
package maps
