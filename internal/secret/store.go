// Package secret persists one API key per profile, preferring the OS
// keyring and falling back to a permission-restricted file when the
// keyring is unavailable. Storage is best-effort: failures are logged
// as warnings, never returned as errors, and the caller inspects the
// reported Method to decide how to react.
package secret

import (
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog/log"
	"github.com/zalando/go-keyring"
)

// service is the keyring service name under which all ccx secrets are
// stored; the profile name is the account.
const service = "ccx"

const (
	dirPerms  = 0700
	filePerms = 0600
)

// Method identifies where a secret ended up.
type Method string

const (
	MethodKeyring Method = "keyring"
	MethodFile    Method = "file"
	MethodNone    Method = "none"
)

// provider abstracts the OS keyring for testing.
type provider interface {
	Set(service, user, password string) error
	Get(service, user string) (string, error)
	Delete(service, user string) error
}

// osKeyring delegates to the real go-keyring package.
type osKeyring struct{}

func (osKeyring) Set(service, user, password string) error {
	return keyring.Set(service, user, password)
}
func (osKeyring) Get(service, user string) (string, error) { return keyring.Get(service, user) }
func (osKeyring) Delete(service, user string) error        { return keyring.Delete(service, user) }

// Store is a dual-backend secret store. Keyring availability is probed
// lazily, once per Store; a failed probe is not retried within the same
// process.
type Store struct {
	fallbackDir string
	keyring     provider

	probeOnce sync.Once
	available bool
}

// NewStore creates a Store whose fallback files live in fallbackDir.
func NewStore(fallbackDir string) *Store {
	return &Store{fallbackDir: fallbackDir, keyring: osKeyring{}}
}

// newStoreWithProvider creates a Store with a custom keyring provider,
// for tests.
func newStoreWithProvider(fallbackDir string, p provider) *Store {
	return &Store{fallbackDir: fallbackDir, keyring: p}
}

// Available reports whether the OS keyring is usable. The probe runs at
// most once: a Set followed by a Delete of a scratch entry.
func (s *Store) Available() bool {
	s.probeOnce.Do(func() {
		const probeKey = "__ccx_probe__"
		if err := s.keyring.Set(service, probeKey, "probe"); err != nil {
			log.Debug().Err(err).Msg("os keyring unavailable")
			return
		}
		_ = s.keyring.Delete(service, probeKey)
		s.available = true
	})
	return s.available
}

// Set stores a secret for a profile, trying the keyring first and the
// fallback file second. Returns the Method that succeeded; MethodNone
// means both backends failed. Never returns an error: secret storage is
// best-effort relative to the command that requested it.
func (s *Store) Set(name, value string) Method {
	if s.Available() {
		err := s.keyring.Set(service, name, value)
		if err == nil {
			return MethodKeyring
		}
		log.Warn().Err(err).Str("profile", name).Msg("keyring write failed, falling back to file storage")
	} else {
		log.Warn().Str("profile", name).Msg("os keyring unavailable, falling back to file storage")
	}

	if err := s.writeFallback(name, value); err != nil {
		log.Warn().Err(err).Str("profile", name).Msg("fallback secret file write failed")
		return MethodNone
	}
	return MethodFile
}

// Get retrieves the secret for a profile. The keyring is consulted
// first; on any miss or failure the fallback file is read. "Not found"
// and "keyring unreachable" are indistinguishable at this layer, so
// both simply fall through; absence is reported as false, never as an
// error.
func (s *Store) Get(name string) (string, bool) {
	if s.Available() {
		value, err := s.keyring.Get(service, name)
		if err == nil {
			return value, true
		}
		if !errors.Is(err, keyring.ErrNotFound) {
			log.Debug().Err(err).Str("profile", name).Msg("keyring read failed, trying fallback file")
		}
	}

	data, err := os.ReadFile(s.fallbackPath(name))
	if err != nil {
		return "", false
	}
	return string(data), true
}

// Delete removes the secret for a profile from both backends
// unconditionally; a prior fallback may have left a copy in each.
// Not-found is ignored in both places.
func (s *Store) Delete(name string) {
	if s.Available() {
		if err := s.keyring.Delete(service, name); err != nil && !errors.Is(err, keyring.ErrNotFound) {
			log.Warn().Err(err).Str("profile", name).Msg("keyring delete failed")
		}
	}

	if err := os.Remove(s.fallbackPath(name)); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Str("profile", name).Msg("fallback secret file delete failed")
	}
}

func (s *Store) fallbackPath(name string) string {
	return filepath.Join(s.fallbackDir, name)
}

// writeFallback writes the secret as raw bytes with owner-only
// permissions, creating the parent directory on demand.
func (s *Store) writeFallback(name, value string) error {
	if err := os.MkdirAll(s.fallbackDir, dirPerms); err != nil {
		return err
	}
	return os.WriteFile(s.fallbackPath(name), []byte(value), filePerms)
}
