package maps_tools

import (
	"context"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/mfeld/fieldbook/internal/maps"
	"github.com/mfeld/fieldbook/internal/server"
)

// resultText extracts the text content from a tool result.
func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()

	if result == nil {
		t.Fatal("expected a result, got nil")
	}
	if len(result.Content) == 0 {
		t.Fatal("result has no content")
	}

	text, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("expected text content, got %T", result.Content[0])
	}
	return text.Text
}

func newRequest(name string, args map[string]interface{}) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      name,
			Arguments: args,
		},
	}
}

func TestHandleGeocodeValidation(t *testing.T) {
	ctx := context.Background()
	sc := server.NewServerContext(ctx)
	defer sc.Shutdown()

	tests := []struct {
		name    string
		args    map[string]interface{}
		wantMsg string
	}{
		{
			name:    "missing address",
			args:    map[string]interface{}{},
			wantMsg: "address is required",
		},
		{
			name: "empty address",
			args: map[string]interface{}{
				"address": "",
			},
			wantMsg: "address is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := handleGeocode(ctx, newRequest("maps_geocode", tt.args), sc)

			if err != nil {
				t.Errorf("handleGeocode() unexpected error = %v", err)
			}
			if result == nil {
				t.Fatal("handleGeocode() returned nil result")
			}
			if !result.IsError {
				t.Error("expected an error result")
			}
			if got := resultText(t, result); got != tt.wantMsg {
				t.Errorf("message = %q, want %q", got, tt.wantMsg)
			}
		})
	}
}

func TestHandleReverseGeocodeValidation(t *testing.T) {
	ctx := context.Background()
	sc := server.NewServerContext(ctx)
	defer sc.Shutdown()

	result, err := handleReverseGeocode(ctx, newRequest("maps_reverse_geocode", map[string]interface{}{
		"latitude": 52.5163,
	}), sc)

	if err != nil {
		t.Errorf("handleReverseGeocode() unexpected error = %v", err)
	}
	if result == nil {
		t.Fatal("handleReverseGeocode() returned nil result")
	}
	if !result.IsError {
		t.Error("expected an error result")
	}
	if got := resultText(t, result); got != "longitude is required" {
		t.Errorf("message = %q, want %q", got, "longitude is required")
	}
}

func TestHandleElevationValidation(t *testing.T) {
	ctx := context.Background()
	sc := server.NewServerContext(ctx)
	defer sc.Shutdown()

	tests := []struct {
		name    string
		args    map[string]interface{}
		wantMsg string
	}{
		{
			name:    "missing locations",
			args:    map[string]interface{}{},
			wantMsg: "locations is required and must be a non-empty array",
		},
		{
			name: "empty locations",
			args: map[string]interface{}{
				"locations": []interface{}{},
			},
			wantMsg: "locations is required and must be a non-empty array",
		},
		{
			name: "location missing lng",
			args: map[string]interface{}{
				"locations": []interface{}{
					map[string]interface{}{"lat": 52.5163},
				},
			},
			wantMsg: "locations[0] must contain numeric lat and lng",
		},
		{
			name: "location not an object",
			args: map[string]interface{}{
				"locations": []interface{}{"52.5163,13.3777"},
			},
			wantMsg: "locations[0] must be an object with lat and lng",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := handleElevation(ctx, newRequest("maps_elevation", tt.args), sc)

			if err != nil {
				t.Errorf("handleElevation() unexpected error = %v", err)
			}
			if result == nil {
				t.Fatal("handleElevation() returned nil result")
			}
			if !result.IsError {
				t.Error("expected an error result")
			}
			if got := resultText(t, result); got != tt.wantMsg {
				t.Errorf("message = %q, want %q", got, tt.wantMsg)
			}
		})
	}
}

func TestHandleDirectionsValidation(t *testing.T) {
	ctx := context.Background()
	sc := server.NewServerContext(ctx)
	defer sc.Shutdown()

	tests := []struct {
		name    string
		args    map[string]interface{}
		wantMsg string
	}{
		{
			name: "missing origin",
			args: map[string]interface{}{
				"destination": "Alexanderplatz, Berlin",
			},
			wantMsg: "origin is required",
		},
		{
			name: "missing destination",
			args: map[string]interface{}{
				"origin": "Berlin Hauptbahnhof",
			},
			wantMsg: "destination is required",
		},
		{
			name: "invalid mode",
			args: map[string]interface{}{
				"origin":      "Berlin Hauptbahnhof",
				"destination": "Alexanderplatz, Berlin",
				"mode":        "teleport",
			},
			wantMsg: "unsupported travel mode",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := handleDirections(ctx, newRequest("maps_directions", tt.args), sc)

			if err != nil {
				t.Errorf("handleDirections() unexpected error = %v", err)
			}
			if result == nil {
				t.Fatal("handleDirections() returned nil result")
			}
			if !result.IsError {
				t.Error("expected an error result")
			}
			if got := resultText(t, result); !strings.Contains(got, tt.wantMsg) {
				t.Errorf("message = %q, want it to contain %q", got, tt.wantMsg)
			}
		})
	}
}

func TestHandleDistanceMatrixValidation(t *testing.T) {
	ctx := context.Background()
	sc := server.NewServerContext(ctx)
	defer sc.Shutdown()

	tests := []struct {
		name    string
		args    map[string]interface{}
		wantMsg string
	}{
		{
			name: "missing origins",
			args: map[string]interface{}{
				"destinations": "Alexanderplatz, Berlin",
			},
			wantMsg: "origins is required",
		},
		{
			name: "empty destinations array",
			args: map[string]interface{}{
				"origins":      "Berlin Hauptbahnhof",
				"destinations": []interface{}{},
			},
			wantMsg: "destinations cannot be empty",
		},
		{
			name: "non-string destination",
			args: map[string]interface{}{
				"origins":      "Berlin Hauptbahnhof",
				"destinations": []interface{}{42.0},
			},
			wantMsg: "destinations[0] must be a string",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := handleDistanceMatrix(ctx, newRequest("maps_distance_matrix", tt.args), sc)

			if err != nil {
				t.Errorf("handleDistanceMatrix() unexpected error = %v", err)
			}
			if result == nil {
				t.Fatal("handleDistanceMatrix() returned nil result")
			}
			if !result.IsError {
				t.Error("expected an error result")
			}
			if got := resultText(t, result); !strings.Contains(got, tt.wantMsg) {
				t.Errorf("message = %q, want it to contain %q", got, tt.wantMsg)
			}
		})
	}
}

// Without an API key the handlers surface the client error after validation.
func TestHandleGeocodeMissingAPIKey(t *testing.T) {
	ctx := context.Background()
	sc := server.NewServerContext(ctx)
	defer sc.Shutdown()

	result, err := handleGeocode(ctx, newRequest("maps_geocode", map[string]interface{}{
		"address": "Brandenburger Tor, Berlin",
	}), sc)

	if err != nil {
		t.Errorf("handleGeocode() unexpected error = %v", err)
	}
	if result == nil {
		t.Fatal("handleGeocode() returned nil result")
	}
	if !result.IsError {
		t.Error("expected an error result")
	}
	if got := resultText(t, result); !strings.Contains(got, "maps client unavailable") {
		t.Errorf("message = %q, want it to mention the unavailable client", got)
	}
}

func TestGetLocationArg(t *testing.T) {
	tests := []struct {
		name    string
		args    map[string]interface{}
		want    *maps.Location
		wantErr bool
	}{
		{
			name: "valid location",
			args: map[string]interface{}{
				"location": map[string]interface{}{"lat": 52.5163, "lng": 13.3777},
			},
			want: &maps.Location{Lat: 52.5163, Lng: 13.3777},
		},
		{
			name: "absent",
			args: map[string]interface{}{},
			want: nil,
		},
		{
			name: "not an object",
			args: map[string]interface{}{
				"location": "52.5163,13.3777",
			},
			wantErr: true,
		},
		{
			name: "missing lng",
			args: map[string]interface{}{
				"location": map[string]interface{}{"lat": 52.5163},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := getLocationArg(tt.args, "location")

			if tt.wantErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("getLocationArg() error = %v", err)
			}

			if tt.want == nil {
				if got != nil {
					t.Errorf("expected nil location, got %+v", got)
				}
				return
			}
			if got == nil {
				t.Fatal("expected a location, got nil")
			}
			if got.Lat != tt.want.Lat || got.Lng != tt.want.Lng {
				t.Errorf("location = %+v, want %+v", got, tt.want)
			}
		})
	}
}
