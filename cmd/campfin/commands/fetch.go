package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/campfin-io/campfin/internal/constants"
)

// NewFetchCommand creates the fetch command
func NewFetchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "fetch URI",
		Short: "Fetch a raw API URI",
		Long: `Fetch an arbitrary API path or a fully-qualified URI taken from an
earlier response (for example a candidate's relative_uri) and print the raw
response envelope.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			envelope, err := client.Fetch(context.Background(), args[0], queryFromFlags())
			if err != nil {
				return fmt.Errorf("failed to fetch %s: %w", args[0], err)
			}

			if viper.GetString("output") == constants.FormatYAML {
				return encodeYAML(envelope)
			}

			return encodeJSON(envelope)
		},
	}
}
