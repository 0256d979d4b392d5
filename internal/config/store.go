package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const (
	registryFile = "profiles.json"
	dirPerms     = 0700
	filePerms    = 0600
)

// EnvHome overrides the base directory where the registry and all
// per-profile state live. Defaults to ~/.ccx.
const EnvHome = "CCX_HOME"

// EnvProfile overrides the active profile for a single shell. Shell
// integration sets it; `ccx current` reads it back.
const EnvProfile = "CCX_PROFILE"

// CorruptError reports a registry file that exists but cannot be parsed
// or fails schema validation. The file is never repaired or reset.
type CorruptError struct {
	Path string
	Err  error
}

func (e *CorruptError) Error() string {
	return fmt.Sprintf("registry %s is corrupt: %v", e.Path, e.Err)
}

func (e *CorruptError) Unwrap() error { return e.Err }

// Store reads and writes the profile registry under a base directory.
type Store struct {
	baseDir string
}

// NewStore creates a Store rooted at baseDir. If baseDir is empty, the
// CCX_HOME environment variable is consulted, then ~/.ccx.
func NewStore(baseDir string) *Store {
	if baseDir == "" {
		baseDir = DefaultBaseDir()
	}
	return &Store{baseDir: baseDir}
}

// DefaultBaseDir returns the base directory for all ccx state: CCX_HOME
// when set, otherwise ~/.ccx.
func DefaultBaseDir() string {
	if dir := os.Getenv(EnvHome); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join("~", ".ccx")
	}
	return filepath.Join(home, ".ccx")
}

// BaseDir returns the directory this store is rooted at.
func (s *Store) BaseDir() string { return s.baseDir }

// Path returns the registry file path.
func (s *Store) Path() string {
	return filepath.Join(s.baseDir, registryFile)
}

// ProfileDir returns the isolated state directory for a profile name.
// The derivation is deterministic, so two profiles can only collide on
// directory if they collide on name.
func (s *Store) ProfileDir(name string) string {
	return filepath.Join(s.baseDir, "profiles", name)
}

// SecretsDir returns the directory holding fallback secret files.
func (s *Store) SecretsDir() string {
	return filepath.Join(s.baseDir, "secrets")
}

// Load reads the registry. A missing file yields the default registry,
// not an error. A file that exists but cannot be parsed or validated
// yields a *CorruptError carrying the file path.
func (s *Store) Load() (*Registry, error) {
	data, err := os.ReadFile(s.Path())
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultRegistry(), nil
		}
		return nil, fmt.Errorf("reading registry %s: %w", s.Path(), err)
	}

	var reg Registry
	if err := json.Unmarshal(data, &reg); err != nil {
		return nil, &CorruptError{Path: s.Path(), Err: err}
	}

	if err := validate(&reg); err != nil {
		return nil, &CorruptError{Path: s.Path(), Err: err}
	}

	return &reg, nil
}

// Save writes the registry atomically: the document goes to a uniquely
// named temp file in the same directory, gets owner-only permissions,
// and is renamed over the target. A crash before the rename leaves the
// previous file intact; under concurrent saves the last rename wins.
func (s *Store) Save(reg *Registry) error {
	if err := os.MkdirAll(s.baseDir, dirPerms); err != nil {
		return fmt.Errorf("creating base directory %s: %w", s.baseDir, err)
	}

	data, err := json.MarshalIndent(reg, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding registry: %w", err)
	}
	data = append(data, '\n')

	tmp, err := os.CreateTemp(s.baseDir, ".profiles-*.json")
	if err != nil {
		return fmt.Errorf("creating temp registry file: %w", err)
	}
	tmpPath := tmp.Name()

	if err := writeAndClose(tmp, data); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("writing temp registry file: %w", err)
	}

	if err := os.Rename(tmpPath, s.Path()); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replacing registry %s: %w", s.Path(), err)
	}

	return nil
}

// writeAndClose writes data, restricts permissions, and closes the file,
// returning the first error encountered.
func writeAndClose(f *os.File, data []byte) error {
	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	if err := f.Chmod(filePerms); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
