package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"go.dot.industries/ccx/internal/config"
)

var (
	flagAuthType    string
	flagDescription string
	flagEnvVars     []string
)

func init() {
	createCmd.Flags().StringVarP(&flagAuthType, "auth-type", "a", string(config.AuthOAuth),
		fmt.Sprintf("authentication method (%s)", strings.Join(config.AuthTypes(), ", ")))
	createCmd.Flags().StringVarP(&flagDescription, "description", "d", "", "free-text description")
	createCmd.Flags().StringArrayVar(&flagEnvVars, "env", nil, "environment override KEY=VALUE (repeatable, always applied last)")

	rootCmd.AddCommand(createCmd)
}

var createCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a new profile",
	Long: `Creates a profile with its own isolated config directory. The first
profile created becomes the active one. The auth type is fixed at
creation and cannot be changed later.`,
	Args: cobra.ExactArgs(1),
	RunE: runCreate,
}

func runCreate(cmd *cobra.Command, args []string) error {
	name := args[0]

	if err := config.ValidateName(name); err != nil {
		return err
	}

	authType := config.AuthType(flagAuthType)
	if !authType.Valid() {
		return fmt.Errorf("unknown auth type %q (want one of: %s)", flagAuthType, strings.Join(config.AuthTypes(), ", "))
	}

	overrides, err := parseEnvOverrides(flagEnvVars)
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

	reg.Profiles[name] = config.Profile{
		AuthType:     authType,
		ConfigDir:    store.ProfileDir(name),
		Description:  flagDescription,
		CreatedAt:    time.Now().UTC().Format(time.RFC3339),
		EnvOverrides: overrides,
	}

	if len(reg.Profiles) == 1 {
		reg.ActiveProfile = name
	}

	if err := store.Save(reg); err != nil {
		return err
	}

	log.Debug().Str("profile", name).Str("authType", string(authType)).Msg("profile created")

	fmt.Printf("Created profile %q (%s)\n", name, authType)
	if reg.ActiveProfile == name {
		fmt.Printf("Profile %q is now active\n", name)
	}

	return nil
}

// parseEnvOverrides converts repeated KEY=VALUE flags into a map.
// Returns nil for empty input so the registry omits the field entirely.
func parseEnvOverrides(pairs []string) (map[string]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}

	overrides := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, found := strings.Cut(pair, "=")
		if !found || key == "" {
			return nil, fmt.Errorf("invalid env override %q: want KEY=VALUE", pair)
		}
		overrides[key] = value
	}

	return overrides, nil
}
