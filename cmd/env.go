package cmd

import (
	"fmt"
	"sort"

	"al.essio.dev/pkg/shellescape"
	"github.com/spf13/cobra"

	"go.dot.industries/ccx/internal/launch"
)

func init() {
	rootCmd.AddCommand(envCmd)
}

var envCmd = &cobra.Command{
	Use:   "env [name]",
	Short: "Print the launch environment as shell statements",
	Long: `Prints export and unset statements for the given profile (the active
one when omitted), suitable for eval in a POSIX shell:

  eval "$(ccx env work)"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEnv,
}

func runEnv(cmd *cobra.Command, args []string) error {
	requested := ""
	if len(args) == 1 {
		requested = args[0]
	}

	store := newStore()

	reg, err := store.Load()
	if err != nil {
		return err
	}

	name, profile, err := lookupProfile(reg, requested)
	if err != nil {
		return err
	}

	vars := launch.Compose(name, profile, newSecretStore(store))

	keys := make([]string, 0, len(vars))
	for key := range vars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if vars[key] == nil {
			fmt.Printf("unset %s\n", key)
			continue
		}
		fmt.Printf("export %s=%s\n", key, shellescape.Quote(*vars[key]))
	}

	return nil
}
