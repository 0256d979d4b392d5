// Package settings loads the optional tool configuration file. Unlike
// the profile registry, which ccx owns and rewrites, this file is only
// ever written by the user.
package settings

import (
	"fmt"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

const settingsFile = "config.toml"

// DefaultCommand is the external tool launched by `ccx run` when the
// settings file does not name one.
const DefaultCommand = "claude"

// Settings holds user-tunable options from <base>/config.toml.
type Settings struct {
	// Command is the binary launched by `ccx run`.
	Command string `toml:"command"`
}

// Load parses the settings file under baseDir. A missing file is not an
// error and yields the defaults; a file that exists but fails to parse
// is an error, to avoid silently running with options the user thinks
// are in effect.
func Load(baseDir string) (*Settings, error) {
	s := &Settings{Command: DefaultCommand}

	path := filepath.Join(baseDir, settingsFile)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("reading settings %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("parsing settings %s: %w", path, err)
	}

	if s.Command == "" {
		s.Command = DefaultCommand
	}

	return s, nil
}
