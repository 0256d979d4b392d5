// Package creds derives per-profile credential status without touching
// the network. Each auth type has its own terminal decision rule,
// recomputed fresh on every call from the profile, its env overrides,
// and the filesystem.
package creds

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"go.dot.industries/ccx/internal/config"
	"go.dot.industries/ccx/internal/launch"
)

// credentialsFile is written into a profile's config dir by the tool's
// own OAuth login flow; this package only ever reads it.
const credentialsFile = ".credentials.json"

// oauthPayloadKeys are the recognized top-level field names for the
// OAuth credential object, tried in order. Two historical formats of
// the same file are in circulation.
var oauthPayloadKeys = []string{"claudeAiOauth", "oauth"}

// Status describes whether a profile is currently usable.
type Status struct {
	Authenticated bool
	// Method names how credentials were found: "oauth", "api-key",
	// "env-var", "bedrock", "vertex", or "foundry". Empty when none
	// were found.
	Method string
	// Expired is true for an OAuth profile whose token expiry has
	// passed. Other auth types have no expiry concept.
	Expired bool
	// ExpiresAt is surfaced whenever the credentials file carries an
	// expiry, regardless of authenticated state.
	ExpiresAt *time.Time
}

// SecretReader looks up the stored API key for a profile name.
type SecretReader interface {
	Get(name string) (string, bool)
}

// Resolver derives credential status for profiles.
type Resolver struct {
	secrets SecretReader
	now     func() time.Time
}

// NewResolver creates a Resolver backed by the given secret store.
func NewResolver(secrets SecretReader) *Resolver {
	return &Resolver{secrets: secrets, now: time.Now}
}

// Resolve returns the credential status for a profile. It never fails:
// a missing or malformed credentials file simply reads as
// unauthenticated.
func (r *Resolver) Resolve(name string, p config.Profile) Status {
	switch p.AuthType {
	case config.AuthOAuth:
		return r.resolveOAuth(p)
	case config.AuthAPIKey:
		return r.resolveAPIKey(name, p)
	case config.AuthBedrock:
		return resolveOverrides(p, "bedrock",
			launch.EnvAWSProfile, launch.EnvAWSAccessKeyID, launch.EnvAWSBedrockToken)
	case config.AuthVertex:
		return resolveOverrides(p, "vertex",
			launch.EnvVertexProjectID, launch.EnvVertexRegion, launch.EnvGoogleCredentials)
	case config.AuthFoundry:
		return resolveOverrides(p, "foundry", launch.EnvFoundryAPIKey)
	}
	return Status{}
}

// resolveOAuth reads the credentials file the tool's login flow writes
// into the profile's config dir.
func (r *Resolver) resolveOAuth(p config.Profile) Status {
	creds, ok := readOAuthCredentials(p.ConfigDir)
	if !ok {
		return Status{}
	}

	expiresAt := time.UnixMilli(creds.ExpiresAt)
	if !expiresAt.After(r.now()) {
		return Status{Method: "oauth", Expired: true, ExpiresAt: &expiresAt}
	}

	return Status{Authenticated: true, Method: "oauth", ExpiresAt: &expiresAt}
}

// resolveAPIKey prefers an explicit env override over a stored secret.
func (r *Resolver) resolveAPIKey(name string, p config.Profile) Status {
	if _, ok := p.EnvOverrides[launch.EnvAPIKey]; ok {
		return Status{Authenticated: true, Method: "env-var"}
	}
	if _, ok := r.secrets.Get(name); ok {
		return Status{Authenticated: true, Method: "api-key"}
	}
	return Status{}
}

// resolveOverrides reports authenticated when any of the given variables
// is present in the profile's env overrides.
func resolveOverrides(p config.Profile, method string, keys ...string) Status {
	for _, key := range keys {
		if _, ok := p.EnvOverrides[key]; ok {
			return Status{Authenticated: true, Method: method}
		}
	}
	return Status{}
}

// oauthPayload is the credential object nested under one of the
// recognized top-level keys.
type oauthPayload struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresAt    int64  `json:"expiresAt"`
}

// readOAuthCredentials parses the credentials file in configDir.
// Returns false for a missing file, unparseable JSON, or a payload
// lacking any of the three required fields with the right types.
func readOAuthCredentials(configDir string) (*oauthPayload, bool) {
	data, err := os.ReadFile(filepath.Join(configDir, credentialsFile))
	if err != nil {
		return nil, false
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, false
	}

	for _, key := range oauthPayloadKeys {
		raw, ok := doc[key]
		if !ok {
			continue
		}

		var payload oauthPayload
		if err := json.Unmarshal(raw, &payload); err != nil {
			continue
		}
		if payload.AccessToken == "" || payload.RefreshToken == "" || payload.ExpiresAt == 0 {
			continue
		}

		return &payload, true
	}

	return nil, false
}
