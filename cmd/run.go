package cmd

import (
	"context"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	ccxexec "go.dot.industries/ccx/internal/exec"
	"go.dot.industries/ccx/internal/launch"
	"go.dot.industries/ccx/internal/settings"
)

func init() {
	rootCmd.AddCommand(runCmd)
}

var runCmd = &cobra.Command{
	Use:   "run [profile] [args...]",
	Short: "Launch the Claude CLI under a profile",
	Long: `Launches the external tool with the environment for the given profile.
When the first argument is not a known profile name, the active profile
is used and every argument is passed through to the tool. A leading --
forces all arguments through, even one that collides with a profile
name.`,
	// All tokens belong to the profile resolution or the launched tool,
	// so cobra must not interpret any of them as flags.
	DisableFlagParsing: true,
	RunE:               runRun,
}

func runRun(cmd *cobra.Command, args []string) error {
	store := newStore()

	reg, err := store.Load()
	if err != nil {
		return err
	}

	opts, err := settings.Load(store.BaseDir())
	if err != nil {
		return err
	}

	name, passthrough := launch.SplitArgs(args, reg)

	_, profile, err := lookupProfile(reg, name)
	if err != nil {
		return err
	}

	// The tool writes into its config dir immediately; create it just
	// before the launch, not at profile creation.
	if err := os.MkdirAll(profile.ConfigDir, 0700); err != nil {
		log.Warn().Err(err).Str("dir", profile.ConfigDir).Msg("could not create profile config directory")
	}

	vars := launch.Compose(name, profile, newSecretStore(store))

	log.Debug().
		Str("profile", name).
		Str("command", opts.Command).
		Int("args", len(passthrough)).
		Msg("launching")

	command := append([]string{opts.Command}, passthrough...)

	if err := ccxexec.Run(context.Background(), command, vars); err != nil {
		os.Exit(ccxexec.ExitCode(err))
	}

	return nil
}
