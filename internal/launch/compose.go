package launch

import "go.dot.industries/ccx/internal/config"

// SecretReader looks up the stored API key for a profile name.
type SecretReader interface {
	Get(name string) (string, bool)
}

// Compose builds the environment for launching the tool under the given
// profile. The result is meant to be merged over the parent environment
// by the caller.
//
// Later steps override earlier ones: the config-dir variable is set
// first, every auth-mode selector is cleared, the minimal variables for
// the profile's auth type are set, and finally the profile's own env
// overrides are applied so user values always win.
func Compose(name string, p config.Profile, secrets SecretReader) Vars {
	vars := make(Vars, len(selectorVars)+len(p.EnvOverrides)+2)

	vars.Set(EnvConfigDir, p.ConfigDir)

	for _, key := range selectorVars {
		vars.Unset(key)
	}

	switch p.AuthType {
	case config.AuthAPIKey:
		// A missing secret is not an error here: the variable stays
		// unset and the tool prompts on its own.
		if key, ok := secrets.Get(name); ok {
			vars.Set(EnvAPIKey, key)
		}
	case config.AuthBedrock:
		vars.Set(EnvUseBedrock, "1")
	case config.AuthVertex:
		vars.Set(EnvUseVertex, "1")
	case config.AuthFoundry:
		vars.Set(EnvUseFoundry, "1")
	case config.AuthOAuth:
		// OAuth state lives in the config dir; nothing to select.
	}

	for key, value := range p.EnvOverrides {
		vars.Set(key, value)
	}

	return vars
}
