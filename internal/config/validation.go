package config

import (
	"fmt"
	"regexp"
)

var namePattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// ValidateName checks that a profile name is non-empty and contains only
// letters, digits, hyphens, and underscores. Names become directory and
// keyring entry components, so anything else is rejected up front.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("profile name must not be empty")
	}
	if !namePattern.MatchString(name) {
		return fmt.Errorf("invalid profile name %q: only letters, digits, '-' and '_' are allowed", name)
	}
	return nil
}

// validate checks the registry schema: the version tag must match and
// every profile needs a recognized auth type, a config directory, and a
// creation timestamp.
//
// ActiveProfile is deliberately not checked against the profile set: a
// hand-edited registry pointing at a missing profile loads fine and only
// fails when that profile is actually looked up.
func validate(r *Registry) error {
	if r.Version != Version {
		return fmt.Errorf("unsupported registry version %q (want %q)", r.Version, Version)
	}

	if r.Profiles == nil {
		return fmt.Errorf("profiles section is missing")
	}

	for name, p := range r.Profiles {
		if !p.AuthType.Valid() {
			return fmt.Errorf("profile %q: unrecognized auth type %q", name, p.AuthType)
		}
		if p.ConfigDir == "" {
			return fmt.Errorf("profile %q: configDir is required", name)
		}
		if p.CreatedAt == "" {
			return fmt.Errorf("profile %q: createdAt is required", name)
		}
	}

	return nil
}
