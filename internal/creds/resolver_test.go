package creds

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.dot.industries/ccx/internal/config"
	"go.dot.industries/ccx/internal/launch"
)

type fakeSecrets map[string]string

func (f fakeSecrets) Get(name string) (string, bool) {
	value, ok := f[name]
	return value, ok
}

func newTestResolver(secrets fakeSecrets, now time.Time) *Resolver {
	r := NewResolver(secrets)
	r.now = func() time.Time { return now }
	return r
}

func writeCredentials(t *testing.T, dir, doc string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, credentialsFile), []byte(doc), 0600); err != nil {
		t.Fatal(err)
	}
}

func oauthProfile(dir string) config.Profile {
	return config.Profile{AuthType: config.AuthOAuth, ConfigDir: dir, CreatedAt: "2026-08-01T10:00:00Z"}
}

func TestResolve_OAuthValid(t *testing.T) {
	dir := t.TempDir()
	now := time.Now()
	expiry := now.Add(1_000_000 * time.Millisecond)

	writeCredentials(t, dir, fmt.Sprintf(
		`{"claudeAiOauth":{"accessToken":"at","refreshToken":"rt","expiresAt":%d}}`,
		expiry.UnixMilli(),
	))

	st := newTestResolver(nil, now).Resolve("work", oauthProfile(dir))

	if !st.Authenticated {
		t.Error("Authenticated = false, want true")
	}
	if st.Expired {
		t.Error("Expired = true, want false")
	}
	if st.Method != "oauth" {
		t.Errorf("Method = %q, want %q", st.Method, "oauth")
	}
	if st.ExpiresAt == nil || st.ExpiresAt.UnixMilli() != expiry.UnixMilli() {
		t.Errorf("ExpiresAt = %v, want %v", st.ExpiresAt, expiry)
	}
}

func TestResolve_OAuthExpired(t *testing.T) {
	dir := t.TempDir()
	now := time.Now()
	expiry := now.Add(-1000 * time.Millisecond)

	writeCredentials(t, dir, fmt.Sprintf(
		`{"claudeAiOauth":{"accessToken":"at","refreshToken":"rt","expiresAt":%d}}`,
		expiry.UnixMilli(),
	))

	st := newTestResolver(nil, now).Resolve("work", oauthProfile(dir))

	if st.Authenticated {
		t.Error("Authenticated = true, want false for expired token")
	}
	if !st.Expired {
		t.Error("Expired = false, want true")
	}
	if st.ExpiresAt == nil {
		t.Error("ExpiresAt = nil, want the expiry surfaced even when expired")
	}
}

func TestResolve_OAuthAlternatePayloadKey(t *testing.T) {
	dir := t.TempDir()
	now := time.Now()

	writeCredentials(t, dir, fmt.Sprintf(
		`{"oauth":{"accessToken":"at","refreshToken":"rt","expiresAt":%d}}`,
		now.Add(time.Hour).UnixMilli(),
	))

	st := newTestResolver(nil, now).Resolve("work", oauthProfile(dir))

	if !st.Authenticated {
		t.Error("Authenticated = false, want the historical payload key accepted")
	}
}

func TestResolve_OAuthUnusableFiles(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"malformed json", `{"claudeAiOauth":`},
		{"unknown top-level key", `{"somethingElse":{"accessToken":"at","refreshToken":"rt","expiresAt":123}}`},
		{"missing refresh token", `{"claudeAiOauth":{"accessToken":"at","expiresAt":123}}`},
		{"expiry wrong type", `{"claudeAiOauth":{"accessToken":"at","refreshToken":"rt","expiresAt":"soon"}}`},
		{"payload not an object", `{"claudeAiOauth":"nope"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeCredentials(t, dir, tt.doc)

			st := newTestResolver(nil, time.Now()).Resolve("work", oauthProfile(dir))

			if st.Authenticated {
				t.Error("Authenticated = true, want unusable file treated as not authenticated")
			}
			if st.ExpiresAt != nil {
				t.Error("ExpiresAt set for an unusable credentials file")
			}
		})
	}
}

func TestResolve_OAuthMissingFile(t *testing.T) {
	st := newTestResolver(nil, time.Now()).Resolve("work", oauthProfile(t.TempDir()))

	if st.Authenticated || st.Expired || st.ExpiresAt != nil {
		t.Errorf("Resolve() = %+v, want zero status for missing credentials file", st)
	}
}

func TestResolve_APIKeyEnvOverrideWins(t *testing.T) {
	p := config.Profile{
		AuthType:     config.AuthAPIKey,
		ConfigDir:    "/d",
		EnvOverrides: map[string]string{launch.EnvAPIKey: "sk-from-env"},
	}

	// A stored secret exists too; the env override takes precedence.
	st := newTestResolver(fakeSecrets{"work": "sk-stored"}, time.Now()).Resolve("work", p)

	if !st.Authenticated {
		t.Error("Authenticated = false, want true")
	}
	if st.Method != "env-var" {
		t.Errorf("Method = %q, want %q", st.Method, "env-var")
	}
}

func TestResolve_APIKeyStoredSecret(t *testing.T) {
	p := config.Profile{AuthType: config.AuthAPIKey, ConfigDir: "/d"}

	st := newTestResolver(fakeSecrets{"work": "sk-stored"}, time.Now()).Resolve("work", p)

	if !st.Authenticated {
		t.Error("Authenticated = false, want true")
	}
	if st.Method != "api-key" {
		t.Errorf("Method = %q, want %q", st.Method, "api-key")
	}
}

func TestResolve_APIKeyNothingStored(t *testing.T) {
	p := config.Profile{AuthType: config.AuthAPIKey, ConfigDir: "/d"}

	st := newTestResolver(fakeSecrets{}, time.Now()).Resolve("work", p)

	if st.Authenticated {
		t.Error("Authenticated = true, want false with no key anywhere")
	}
}

func TestResolve_OverrideBasedAuthTypes(t *testing.T) {
	tests := []struct {
		name      string
		authType  config.AuthType
		overrides map[string]string
		wantAuth  bool
		wantMeth  string
	}{
		{"bedrock via profile", config.AuthBedrock, map[string]string{launch.EnvAWSProfile: "corp"}, true, "bedrock"},
		{"bedrock via access key", config.AuthBedrock, map[string]string{launch.EnvAWSAccessKeyID: "AKIA..."}, true, "bedrock"},
		{"bedrock without overrides", config.AuthBedrock, nil, false, ""},
		{"vertex via project", config.AuthVertex, map[string]string{launch.EnvVertexProjectID: "proj"}, true, "vertex"},
		{"vertex without overrides", config.AuthVertex, map[string]string{"UNRELATED": "x"}, false, ""},
		{"foundry via key", config.AuthFoundry, map[string]string{launch.EnvFoundryAPIKey: "fk"}, true, "foundry"},
		{"foundry without key", config.AuthFoundry, nil, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := config.Profile{AuthType: tt.authType, ConfigDir: "/d", EnvOverrides: tt.overrides}

			st := newTestResolver(fakeSecrets{}, time.Now()).Resolve("work", p)

			if st.Authenticated != tt.wantAuth {
				t.Errorf("Authenticated = %v, want %v", st.Authenticated, tt.wantAuth)
			}
			if st.Method != tt.wantMeth {
				t.Errorf("Method = %q, want %q", st.Method, tt.wantMeth)
			}
		})
	}
}
