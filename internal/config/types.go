package config

import "sort"

// Version is the registry schema tag. Files carrying any other value are
// rejected as corrupt rather than silently migrated.
const Version = "1.0"

// AuthType identifies how a profile authenticates against the Claude API.
// The set is closed; a profile's auth type is fixed at creation.
type AuthType string

const (
	AuthOAuth   AuthType = "oauth"
	AuthAPIKey  AuthType = "api-key"
	AuthBedrock AuthType = "bedrock"
	AuthVertex  AuthType = "vertex"
	AuthFoundry AuthType = "foundry"
)

// Valid reports whether a is a recognized auth type.
func (a AuthType) Valid() bool {
	switch a {
	case AuthOAuth, AuthAPIKey, AuthBedrock, AuthVertex, AuthFoundry:
		return true
	}
	return false
}

// AuthTypes returns all recognized auth type names, for help text and
// error messages.
func AuthTypes() []string {
	return []string{
		string(AuthOAuth),
		string(AuthAPIKey),
		string(AuthBedrock),
		string(AuthVertex),
		string(AuthFoundry),
	}
}

// Profile is one managed account. ConfigDir is the isolated state
// directory handed to the launched tool via its config-dir variable.
type Profile struct {
	AuthType      AuthType          `json:"authType"`
	ConfigDir     string            `json:"configDir"`
	Description   string            `json:"description,omitempty"`
	CreatedAt     string            `json:"createdAt"`
	APIKeyStorage string            `json:"apiKeyStorage,omitempty"`
	EnvOverrides  map[string]string `json:"envOverrides,omitempty"`
}

// Registry is the full persisted state: every profile plus the active
// selection. Profile names double as Secret Store lookup keys.
type Registry struct {
	Version       string             `json:"version"`
	ActiveProfile string             `json:"activeProfile"`
	Profiles      map[string]Profile `json:"profiles"`
}

// DefaultRegistry returns the registry used when no file exists yet.
func DefaultRegistry() *Registry {
	return &Registry{
		Version:       Version,
		ActiveProfile: "default",
		Profiles:      map[string]Profile{},
	}
}

// Names returns all profile names in lexicographic order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.Profiles))
	for name := range r.Profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NextActive returns the lexicographically first profile name, excluding
// the given one. Used to reassign the active profile deterministically
// after a deletion. Returns "" when no other profile remains.
func (r *Registry) NextActive(exclude string) string {
	for _, name := range r.Names() {
		if name != exclude {
			return name
		}
	}
	return ""
}
