package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(useCmd)
}

var useCmd = &cobra.Command{
	Use:   "use <name>",
	Short: "Switch the active profile",
	Args:  cobra.ExactArgs(1),
	RunE:  runUse,
}

func runUse(cmd *cobra.Command, args []string) error {
	name := args[0]

	store := newStore()

	reg, err := store.Load()
	if err != nil {
		return err
	}

	if _, ok := reg.Profiles[name]; !ok {
		return fmt.Errorf("profile %q does not exist", name)
	}

	if reg.ActiveProfile == name {
		fmt.Printf("Profile %q is already active\n", name)
		return nil
	}

	reg.ActiveProfile = name

	if err := store.Save(reg); err != nil {
		return err
	}

	fmt.Printf("Switched to profile %q\n", name)
	return nil
}
