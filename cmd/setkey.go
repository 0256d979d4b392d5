package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"go.dot.industries/ccx/internal/secret"
)

var flagKey string

func init() {
	setKeyCmd.Flags().StringVar(&flagKey, "key", "", "API key value (prompted for when omitted)")

	rootCmd.AddCommand(setKeyCmd)
}

var setKeyCmd = &cobra.Command{
	Use:   "set-key <name>",
	Short: "Store an API key for a profile",
	Long: `Stores an API key in the OS keyring, falling back to a
permission-restricted file under the ccx base directory when no keyring
is available. The key is prompted for without echo unless --key is
given.`,
	Args: cobra.ExactArgs(1),
	RunE: runSetKey,
}

func runSetKey(cmd *cobra.Command, args []string) error {
	name := args[0]

	store := newStore()

	reg, err := store.Load()
	if err != nil {
		return err
	}

	if _, ok := reg.Profiles[name]; !ok {
		return fmt.Errorf("profile %q does not exist", name)
	}

	key := flagKey
	if key == "" {
		key, err = promptKey()
		if err != nil {
			return err
		}
	}
	if key == "" {
		return fmt.Errorf("API key must not be empty")
	}

	method := newSecretStore(store).Set(name, key)
	if method == secret.MethodNone {
		return fmt.Errorf("could not store the API key in the keyring or the fallback file")
	}

	// The storage marker is display-only; the Secret Store itself
	// checks both backends on every read.
	profile := reg.Profiles[name]
	profile.APIKeyStorage = "keyring"
	reg.Profiles[name] = profile

	if err := store.Save(reg); err != nil {
		return err
	}

	fmt.Printf("Stored API key for profile %q (%s)\n", name, method)
	return nil
}

// promptKey reads the key from stdin, without echo when stdin is a
// terminal.
func promptKey() (string, error) {
	if term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprint(os.Stderr, "API key: ")
		raw, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return "", fmt.Errorf("reading API key: %w", err)
		}
		return strings.TrimSpace(string(raw)), nil
	}

	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("reading API key: %w", err)
	}
	return strings.TrimSpace(line), nil
}
