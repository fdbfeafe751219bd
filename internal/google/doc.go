// Package google provides OAuth2 authentication for the Google APIs used by
// fieldbook.
//
// Credentials come from the environment as an OAuth client ID/secret plus a
// long-lived refresh token. They are loaded once at startup into an explicit
// Config that is passed into the server context, so no package-level client
// state exists and the rest of the code can be tested without network access.
package google
