package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"go.dot.industries/ccx/internal/config"
	"go.dot.industries/ccx/internal/secret"
)

var (
	flagBaseDir string
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   "ccx",
	Short: "Isolated account profiles for the Claude CLI",
	Long: `ccx keeps several Claude accounts side by side, each with its own
config directory and authentication method, and launches the claude CLI
with the right environment for whichever profile you pick. API keys are
kept in the OS keyring when one is available.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagBaseDir, "base-dir", "", "base directory for ccx state (default $CCX_HOME or ~/.ccx)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")

	cobra.OnInitialize(initLogger)
}

func initLogger() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	level := zerolog.InfoLevel
	if flagVerbose {
		level = zerolog.DebugLevel
	}

	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Logger().Level(level)
}

// newStore returns the registry store for the configured base directory.
func newStore() *config.Store {
	return config.NewStore(flagBaseDir)
}

// newSecretStore returns the secret store whose fallback files live
// under the same base directory as the registry.
func newSecretStore(store *config.Store) *secret.Store {
	return secret.NewStore(store.SecretsDir())
}

// lookupProfile resolves name against the registry, falling back to the
// active profile when name is empty. An unknown name is a user error;
// so is an active profile that points at nothing, which happens only
// with a hand-edited registry.
func lookupProfile(reg *config.Registry, name string) (string, config.Profile, error) {
	if name == "" {
		name = reg.ActiveProfile
	}

	p, ok := reg.Profiles[name]
	if !ok {
		return "", config.Profile{}, fmt.Errorf("profile %q does not exist", name)
	}

	return name, p, nil
}
