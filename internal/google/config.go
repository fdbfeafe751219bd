package google

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"golang.org/x/oauth2"
	googleoauth "golang.org/x/oauth2/google"
	drive "google.golang.org/api/drive/v3"
)

// Environment variables holding the OAuth credentials.
const (
	EnvClientID     = "GOOGLE_CLIENT_ID"
	EnvClientSecret = "GOOGLE_CLIENT_SECRET"
	EnvRefreshToken = "GOOGLE_REFRESH_TOKEN"
)

// Scopes requested for Drive access. DriveFileScope is enough to read and
// write files the app created or was granted; DriveScope covers notebooks
// shared with the user.
var Scopes = []string{
	drive.DriveScope,
}

// Config holds the OAuth client credentials and refresh token used to
// authenticate against Google APIs.
type Config struct {
	ClientID     string
	ClientSecret string
	RefreshToken string
}

// LoadConfig reads the OAuth credentials from the environment.
func LoadConfig() (Config, error) {
	cfg := Config{
		ClientID:     os.Getenv(EnvClientID),
		ClientSecret: os.Getenv(EnvClientSecret),
		RefreshToken: os.Getenv(EnvRefreshToken),
	}
	return cfg, cfg.Validate()
}

// Validate checks that all required credentials are present.
func (c Config) Validate() error {
	switch {
	case c.ClientID == "":
		return fmt.Errorf("%s is not set", EnvClientID)
	case c.ClientSecret == "":
		return fmt.Errorf("%s is not set", EnvClientSecret)
	case c.RefreshToken == "":
		return fmt.Errorf("%s is not set", EnvRefreshToken)
	}
	return nil
}

// oauthConfig returns the oauth2 client configuration for the credentials.
func (c Config) oauthConfig() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     c.ClientID,
		ClientSecret: c.ClientSecret,
		Endpoint:     googleoauth.Endpoint,
		Scopes:       Scopes,
	}
}

// TokenSource returns an oauth2 token source that mints access tokens from
// the refresh token, caching them until expiry.
func (c Config) TokenSource(ctx context.Context) oauth2.TokenSource {
	token := &oauth2.Token{
		TokenType:    "Bearer",
		RefreshToken: c.RefreshToken,
	}
	return oauth2.ReuseTokenSource(nil, c.oauthConfig().TokenSource(ctx, token))
}

// HTTPClient returns an HTTP client that authenticates requests with the
// refresh-token flow. The client is pinned to HTTP/1.1 to avoid HTTP/2
// protocol errors against the Google API frontends.
func (c Config) HTTPClient(ctx context.Context) *http.Client {
	client := oauth2.NewClient(ctx, c.TokenSource(ctx))

	if transport, ok := client.Transport.(*oauth2.Transport); ok {
		transport.Base = &http.Transport{
			ForceAttemptHTTP2: false,
		}
	}

	return client
}
