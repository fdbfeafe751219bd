// Package maps_tools provides MCP (Model Context Protocol) tools for the
// Google Maps Platform.
//
// This package exposes Maps functionality to MCP clients (like AI assistants)
// as thin passthroughs: tools validate their arguments, call the Maps API,
// and relay the result as JSON. No responses are cached or post-processed.
//
// Available tools:
//   - maps_geocode: Convert an address into coordinates
//   - maps_reverse_geocode: Convert coordinates into an address
//   - maps_search_places: Text search for places
//   - maps_place_details: Detailed information for a place ID
//   - maps_directions: Directions between two points
//   - maps_distance_matrix: Distances and durations for origin/destination pairs
//   - maps_elevation: Elevation data for sampled locations
//
// All tools are read-only against the Maps API and require the MAPS_API_KEY
// environment variable (or the --maps-api-key flag) to be set.
//
// Example tool usage:
//
//	maps_geocode({
//	  address: "Brandenburger Tor, Berlin"
//	})
//
//	maps_directions({
//	  origin: "Berlin Hauptbahnhof",
//	  destination: "Alexanderplatz, Berlin",
//	  mode: "transit"
//	})
package maps_tools
