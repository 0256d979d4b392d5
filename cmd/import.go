package cmd

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"go.dot.industries/ccx/internal/config"
	"go.dot.industries/ccx/internal/migrate"
)

var flagImportDescription string

func init() {
	importCmd.Flags().StringVarP(&flagImportDescription, "description", "d", "", "free-text description")

	rootCmd.AddCommand(importCmd)
}

var importCmd = &cobra.Command{
	Use:   "import <name> [dir]",
	Short: "Adopt an existing Claude installation as a profile",
	Long: `Registers an existing Claude config directory (~/.claude when dir is
omitted) as a profile, keeping its login state. The directory is
referenced in place; deleting the profile later will not remove it.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runImport,
}

func runImport(cmd *cobra.Command, args []string) error {
	name := args[0]

	if err := config.ValidateName(name); err != nil {
		return err
	}

	dir := ""
	if len(args) == 2 {
		dir = args[1]
	} else {
		detected, ok := migrate.DetectConfigDir()
		if !ok {
			return fmt.Errorf("no existing Claude config directory found at %s", detected)
		}
		dir = detected
	}

	profile, err := migrate.Adopt(dir, flagImportDescription, time.Now())
	if err != nil {
		return err
	}

	store := newStore()

	reg, err := store.Load()
	if err != nil {
		return err
	}

	if _, exists := reg.Profiles[name]; exists {
		return fmt.Errorf("profile %q already exists", name)
	}

	// Config directories must stay unique across the registry.
	for other, p := range reg.Profiles {
		if p.ConfigDir == profile.ConfigDir {
			return fmt.Errorf("profile %q already uses %s", other, profile.ConfigDir)
		}
	}

	reg.Profiles[name] = profile

	if len(reg.Profiles) == 1 {
		reg.ActiveProfile = name
	}

	if err := store.Save(reg); err != nil {
		return err
	}

	if migrate.HasCredentials(profile.ConfigDir) {
		log.Debug().Str("dir", profile.ConfigDir).Msg("existing login credentials found")
	} else {
		log.Warn().Str("dir", profile.ConfigDir).Msg("no login credentials in imported directory")
	}

	fmt.Printf("Imported %s as profile %q\n", profile.ConfigDir, name)
	return nil
}
