// Package google provides OAuth2 authentication and token management for the
// Google APIs used by the calendar generator.
//
// Credentials are read from a client-secrets descriptor (credentials.json,
// never modified) and the issued token is cached on disk with permissions
// restricted to the owning user.
package google
