package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"go.dot.industries/ccx/internal/creds"
)

func init() {
	rootCmd.AddCommand(statusCmd)
}

var statusCmd = &cobra.Command{
	Use:   "status [name]",
	Short: "Show credential status for a profile",
	Long: `Reports whether a profile's credentials are currently usable, without
contacting any provider. Defaults to the active profile.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
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

	st := creds.NewResolver(newSecretStore(store)).Resolve(name, profile)

	fmt.Printf("Profile:    %s\n", name)
	fmt.Printf("Auth type:  %s\n", profile.AuthType)
	fmt.Printf("Config dir: %s\n", profile.ConfigDir)

	switch {
	case st.Expired:
		fmt.Println("Status:     expired")
	case st.Authenticated:
		fmt.Printf("Status:     authenticated (%s)\n", st.Method)
	default:
		fmt.Println("Status:     not authenticated")
	}

	if st.ExpiresAt != nil {
		fmt.Printf("Expires:    %s (%s)\n", st.ExpiresAt.Local().Format(time.RFC1123), relativeTo(*st.ExpiresAt))
	}

	return nil
}

// relativeTo renders an expiry instant relative to now, e.g. "in 3h2m"
// or "2h ago".
func relativeTo(t time.Time) string {
	d := time.Until(t).Round(time.Minute)
	if d >= 0 {
		return "in " + formatDuration(d)
	}
	return formatDuration(-d) + " ago"
}

// formatDuration renders a duration as compact hours and minutes.
func formatDuration(d time.Duration) string {
	h := int(d.Hours())
	m := int(d.Minutes()) % 60

	if h > 0 {
		return fmt.Sprintf("%dh%dm", h, m)
	}
	return fmt.Sprintf("%dm", m)
}
