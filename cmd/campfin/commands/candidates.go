package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/campfin-io/campfin/internal/constants"
	"github.com/campfin-io/campfin/pkg/campfin"
)

// NewCandidatesCommand creates the candidates command group
func NewCandidatesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "candidates",
		Aliases: []string{"candidate"},
		Short:   "Browse candidates",
		Long:    "List, look up, and search candidates, category leaders, and seats",
	}

	cmd.AddCommand(newCandidatesNewCommand())
	cmd.AddCommand(newCandidatesGetCommand())
	cmd.AddCommand(newCandidatesSearchCommand())
	cmd.AddCommand(newCandidatesLeadersCommand())
	cmd.AddCommand(newCandidatesSeatsCommand())

	return cmd
}

func newCandidatesNewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "new",
		Short: "List newly registered candidates",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			candidates, err := client.Candidates().Latest(context.Background(), queryFromFlags())
			if err != nil {
				return fmt.Errorf("failed to list new candidates: %w", err)
			}

			return outputCandidates(candidates)
		},
	}
}

func newCandidatesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get CANDIDATE_ID",
		Short: "Show a candidate",
		Long:  "Show details for a single candidate by FEC candidate ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			candidate, err := client.Candidates().Get(context.Background(), args[0], queryFromFlags())
			if err != nil {
				return fmt.Errorf("failed to get candidate %s: %w", args[0], err)
			}

			switch viper.GetString("output") {
			case constants.FormatJSON:
				return encodeJSON(candidate)
			case constants.FormatYAML:
				return encodeYAML(candidate)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")
				_ = table.Append("ID", candidate.ID)
				_ = table.Append("Name", candidate.Name)
				_ = table.Append("Party", candidate.Party)
				_ = table.Append("State", candidate.State)
				_ = table.Append("District", candidate.District)
				_ = table.Append("Committee", candidate.Committee)
				_ = table.Append("Status", candidate.Status)
				_ = table.Append("Total receipts", fmt.Sprintf("%.2f", candidate.TotalReceipts))
				_ = table.Append("Total disbursements", fmt.Sprintf("%.2f", candidate.TotalDisbursements))
				_ = table.Append("Cash on hand", fmt.Sprintf("%.2f", candidate.CashOnHand))

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}
			}

			return nil
		},
	}
}

func newCandidatesSearchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "search TERM",
		Short: "Search candidates by name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			candidates, err := client.Candidates().Search(context.Background(), args[0], queryFromFlags())
			if err != nil {
				return fmt.Errorf("failed to search candidates: %w", err)
			}

			return outputCandidates(candidates)
		},
	}
}

func newCandidatesLeadersCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "leaders CATEGORY",
		Short: "List leading candidates in a category",
		Long:  "List leading candidates in a financial category, for example contribution-total or end-cash",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			candidates, err := client.Candidates().Leaders(context.Background(), args[0], queryFromFlags())
			if err != nil {
				return fmt.Errorf("failed to list %s leaders: %w", args[0], err)
			}

			return outputCandidates(candidates)
		},
	}
}

func newCandidatesSeatsCommand() *cobra.Command {
	var (
		chamber  string
		district string
	)

	cmd := &cobra.Command{
		Use:   "seats STATE",
		Short: "List candidates for seats in a state",
		Long:  "List candidates for seats in a state, optionally narrowed to a chamber and district",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if district != "" && chamber == "" {
				return ErrDistrictNeedsChamber
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			candidates, err := client.Candidates().Seats(context.Background(), args[0], chamber, district, queryFromFlags())
			if err != nil {
				return fmt.Errorf("failed to list seats for %s: %w", args[0], err)
			}

			return outputCandidates(candidates)
		},
	}

	cmd.Flags().StringVar(&chamber, "chamber", "", "chamber (house or senate)")
	cmd.Flags().StringVar(&district, "district", "", "district number (house only)")

	return cmd
}

// outputCandidates renders candidates in the configured output format.
func outputCandidates(candidates []campfin.Candidate) error {
	switch viper.GetString("output") {
	case constants.FormatJSON:
		return encodeJSON(candidates)
	case constants.FormatYAML:
		return encodeYAML(candidates)
	default:
		if len(candidates) == 0 {
			fmt.Println("No candidates found")

			return nil
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.Header("ID", "Name", "Party", "State", "District", "Committee")

		for _, candidate := range candidates {
			_ = table.Append(
				candidate.ID,
				candidate.Name,
				candidate.Party,
				candidate.State,
				candidate.District,
				candidate.Committee,
			)
		}

		if err := table.Render(); err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}
	}

	return nil
}
