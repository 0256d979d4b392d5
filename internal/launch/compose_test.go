package launch

import (
	"testing"

	"go.dot.industries/ccx/internal/config"
)

type fakeSecrets map[string]string

func (f fakeSecrets) Get(name string) (string, bool) {
	value, ok := f[name]
	return value, ok
}

// wantSet asserts the variable is present with the given value.
func wantSet(t *testing.T, vars Vars, key, want string) {
	t.Helper()
	value, ok := vars[key]
	if !ok || value == nil {
		t.Fatalf("%s not set, want %q", key, want)
	}
	if *value != want {
		t.Errorf("%s = %q, want %q", key, *value, want)
	}
}

// wantUnset asserts the variable is marked for removal.
func wantUnset(t *testing.T, vars Vars, key string) {
	t.Helper()
	value, ok := vars[key]
	if !ok {
		t.Fatalf("%s missing entirely, want an explicit unset marker", key)
	}
	if value != nil {
		t.Errorf("%s = %q, want unset marker", key, *value)
	}
}

func TestCompose_APIKeyProfile(t *testing.T) {
	p := config.Profile{AuthType: config.AuthAPIKey, ConfigDir: "/ccx/profiles/work"}

	vars := Compose("work", p, fakeSecrets{"work": "sk-ant-XYZ"})

	wantSet(t, vars, EnvConfigDir, "/ccx/profiles/work")
	wantSet(t, vars, EnvAPIKey, "sk-ant-XYZ")

	// Every other selector must be cleared, not just left alone.
	wantUnset(t, vars, EnvAuthToken)
	wantUnset(t, vars, EnvUseBedrock)
	wantUnset(t, vars, EnvUseVertex)
	wantUnset(t, vars, EnvUseFoundry)
	wantUnset(t, vars, EnvFoundryAPIKey)
}

func TestCompose_APIKeyProfileWithoutSecret(t *testing.T) {
	p := config.Profile{AuthType: config.AuthAPIKey, ConfigDir: "/d"}

	vars := Compose("work", p, fakeSecrets{})

	// No stored secret is not an error; the variable stays cleared.
	wantUnset(t, vars, EnvAPIKey)
}

func TestCompose_OAuthClearsAllSelectors(t *testing.T) {
	p := config.Profile{AuthType: config.AuthOAuth, ConfigDir: "/d"}

	vars := Compose("work", p, fakeSecrets{"work": "sk-should-not-leak"})

	wantSet(t, vars, EnvConfigDir, "/d")
	for _, key := range selectorVars {
		wantUnset(t, vars, key)
	}
}

func TestCompose_FlagAuthTypes(t *testing.T) {
	tests := []struct {
		authType config.AuthType
		flag     string
	}{
		{config.AuthBedrock, EnvUseBedrock},
		{config.AuthVertex, EnvUseVertex},
		{config.AuthFoundry, EnvUseFoundry},
	}

	for _, tt := range tests {
		t.Run(string(tt.authType), func(t *testing.T) {
			p := config.Profile{AuthType: tt.authType, ConfigDir: "/d"}

			vars := Compose("work", p, fakeSecrets{})

			wantSet(t, vars, tt.flag, "1")
			wantUnset(t, vars, EnvAPIKey)
		})
	}
}

func TestCompose_OverridesWinLast(t *testing.T) {
	p := config.Profile{
		AuthType:  config.AuthAPIKey,
		ConfigDir: "/d",
		EnvOverrides: map[string]string{
			EnvAPIKey:         "sk-override",
			"ANTHROPIC_MODEL": "claude-sonnet-4-5",
		},
	}

	vars := Compose("work", p, fakeSecrets{"work": "sk-derived"})

	wantSet(t, vars, EnvAPIKey, "sk-override")
	wantSet(t, vars, "ANTHROPIC_MODEL", "claude-sonnet-4-5")
}

func TestCompose_OverrideRestoresClearedSelector(t *testing.T) {
	p := config.Profile{
		AuthType:     config.AuthOAuth,
		ConfigDir:    "/d",
		EnvOverrides: map[string]string{EnvAuthToken: "custom-token"},
	}

	vars := Compose("work", p, fakeSecrets{})

	wantSet(t, vars, EnvAuthToken, "custom-token")
}
