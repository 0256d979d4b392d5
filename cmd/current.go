package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"go.dot.industries/ccx/internal/config"
)

func init() {
	rootCmd.AddCommand(currentCmd)
}

var currentCmd = &cobra.Command{
	Use:   "current",
	Short: "Print the selected profile name",
	Long: `Prints the profile selected for this shell: the CCX_PROFILE
environment variable when set, otherwise the registry's active profile.
Shell prompts and integration scripts call this.`,
	Args: cobra.NoArgs,
	RunE: runCurrent,
}

func runCurrent(cmd *cobra.Command, args []string) error {
	if name := os.Getenv(config.EnvProfile); name != "" {
		fmt.Println(name)
		return nil
	}

	reg, err := newStore().Load()
	if err != nil {
		return err
	}

	fmt.Println(reg.ActiveProfile)
	return nil
}
