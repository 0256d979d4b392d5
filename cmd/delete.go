package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var flagKeepData bool

func init() {
	deleteCmd.Flags().BoolVar(&flagKeepData, "keep-data", false, "keep the profile's config directory on disk")

	rootCmd.AddCommand(deleteCmd)
}

var deleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a profile",
	Long: `Removes a profile from the registry along with its stored API key and,
unless --keep-data is given, its config directory. The last remaining
profile cannot be deleted. Deleting the active profile makes the
lexicographically first remaining profile active.`,
	Args: cobra.ExactArgs(1),
	RunE: runDelete,
}

func runDelete(cmd *cobra.Command, args []string) error {
	name := args[0]

	store := newStore()

	reg, err := store.Load()
	if err != nil {
		return err
	}

	profile, ok := reg.Profiles[name]
	if !ok {
		return fmt.Errorf("profile %q does not exist", name)
	}

	if len(reg.Profiles) == 1 {
		return fmt.Errorf("cannot delete %q: it is the last remaining profile", name)
	}

	delete(reg.Profiles, name)

	if reg.ActiveProfile == name {
		reg.ActiveProfile = reg.NextActive(name)
		fmt.Printf("Profile %q is now active\n", reg.ActiveProfile)
	}

	if err := store.Save(reg); err != nil {
		return err
	}

	// Cleanup below is best-effort: the registry entry is already gone,
	// and a leftover secret or directory must not fail the command.
	newSecretStore(store).Delete(name)

	// Only directories ccx derived itself are removed; an imported
	// profile may point at a directory the user owns, like ~/.claude.
	if !flagKeepData && profile.ConfigDir == store.ProfileDir(name) {
		if err := os.RemoveAll(profile.ConfigDir); err != nil {
			log.Warn().Err(err).Str("dir", profile.ConfigDir).Msg("could not remove profile config directory")
		}
	}

	fmt.Printf("Deleted profile %q\n", name)
	return nil
}
