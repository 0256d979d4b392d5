package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"go.dot.industries/ccx/internal/creds"
)

func init() {
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List profiles with their credential status",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	store := newStore()

	reg, err := store.Load()
	if err != nil {
		return err
	}

	if len(reg.Profiles) == 0 {
		fmt.Println("No profiles yet. Create one with: ccx create <name>")
		return nil
	}

	names := reg.Names()
	resolver := creds.NewResolver(newSecretStore(store))

	// Each status is a pure read of the profile, env overrides, and
	// filesystem, so resolving them concurrently is safe.
	statuses := make([]creds.Status, len(names))

	g := new(errgroup.Group)
	g.SetLimit(8)

	for i, name := range names {
		i, name := i, name
		g.Go(func() error {
			statuses[i] = resolver.Resolve(name, reg.Profiles[name])
			return nil
		})
	}

	// Resolvers never fail; Wait only joins the goroutines.
	_ = g.Wait()

	fmt.Printf("  %-20s %-10s %-16s %s\n", "NAME", "AUTH", "STATUS", "DESCRIPTION")
	for i, name := range names {
		marker := " "
		if name == reg.ActiveProfile {
			marker = "*"
		}

		p := reg.Profiles[name]
		fmt.Printf("%s %-20s %-10s %-16s %s\n", marker, name, p.AuthType, statusLabel(statuses[i]), p.Description)
	}

	return nil
}

// statusLabel renders a credential status as a short table cell.
func statusLabel(st creds.Status) string {
	switch {
	case st.Expired:
		return "expired"
	case st.Authenticated:
		return "ok (" + st.Method + ")"
	default:
		return "not logged in"
	}
}
