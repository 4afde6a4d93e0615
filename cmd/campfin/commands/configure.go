package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/campfin-io/campfin/internal/constants"
)

// NewConfigureCommand creates the configure command
func NewConfigureCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "configure",
		Short: "Store the API key in the config file",
		Long: `Prompt for an API key and store it in ~/.campfin/config.yml so that
subsequent commands do not need --api-key or NYT_CAMPFIN_API_KEY.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Print("API key: ")

			keyBytes, err := term.ReadPassword(int(syscall.Stdin))

			fmt.Println()

			if err != nil {
				return fmt.Errorf("reading API key: %w", err)
			}

			apiKey := strings.TrimSpace(string(keyBytes))
			if apiKey == "" {
				return ErrAPIKeyEmpty
			}

			home, err := os.UserHomeDir()
			if err != nil {
				return fmt.Errorf("finding home directory: %w", err)
			}

			configDir := filepath.Join(home, ".campfin")

			err = os.MkdirAll(configDir, constants.ConfigDirPerm)
			if err != nil {
				return fmt.Errorf("creating config directory: %w", err)
			}

			configFile := filepath.Join(configDir, "config.yml")

			viper.Set("api-key", apiKey)

			err = viper.WriteConfigAs(configFile)
			if err != nil {
				return fmt.Errorf("writing config file: %w", err)
			}

			err = os.Chmod(configFile, constants.ConfigFilePerm)
			if err != nil {
				return fmt.Errorf("restricting config file permissions: %w", err)
			}

			fmt.Println("API key saved to", configFile)

			return nil
		},
	}
}
