package server

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/julianstephens/hurryup/internal/cli"
	"github.com/julianstephens/hurryup/internal/keyring"
)

// KeySetCmd stores the Anthropic API key in the OS keyring.
type KeySetCmd struct {
	Key string `arg:"" optional:"" help:"API key. Read from stdin when omitted."`
}

func (cmd *KeySetCmd) Run(ctx *cli.Context) error {
	key := cmd.Key
	if key == "" {
		fmt.Fprint(os.Stderr, "API key: ")
		var err error
		if key, err = cli.ReadInput("", "-"); err != nil {
			return err
		}
	}
	if err := keyring.SetAPIKey(strings.TrimSpace(key)); err != nil {
		return err
	}
	fmt.Println("✓ API key stored successfully in OS keyring")
	return nil
}

// KeyDeleteCmd removes the API key from the OS keyring.
type KeyDeleteCmd struct{}

func (cmd *KeyDeleteCmd) Run(ctx *cli.Context) error {
	if err := keyring.DeleteAPIKey(); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return errors.New("no API key found in keyring")
		}
		return fmt.Errorf("failed to delete API key from keyring: %w", err)
	}
	fmt.Println("✓ API key deleted from OS keyring")
	return nil
}

// KeyStatusCmd reports where the proxy would take its key from.
type KeyStatusCmd struct{}

func (cmd *KeyStatusCmd) Run(ctx *cli.Context) error {
	if !keyring.IsAvailable() {
		fmt.Println("❌ OS keyring is not available")
	} else {
		fmt.Println("✓ OS keyring is available")
	}

	if ctx.Config.Proxy.APIKey != "" {
		fmt.Printf("Using key from environment or config: %s\n", keyring.Mask(ctx.Config.Proxy.APIKey))
		return nil
	}
	key, err := keyring.GetAPIKey()
	switch {
	case errors.Is(err, keyring.ErrNotFound):
		fmt.Println("No API key configured. Use 'hurryup proxy key set' to store one.")
	case err != nil:
		return fmt.Errorf("failed to read keyring: %w", err)
	default:
		fmt.Printf("Using key from OS keyring: %s\n", keyring.Mask(key))
	}
	return nil
}
