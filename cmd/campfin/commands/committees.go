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

// NewCommitteesCommand creates the committees command group
func NewCommitteesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "committees",
		Aliases: []string{"committee"},
		Short:   "Browse committees",
		Long:    "List, look up, and search committees and their filings and contributions",
	}

	cmd.AddCommand(newCommitteesNewCommand())
	cmd.AddCommand(newCommitteesGetCommand())
	cmd.AddCommand(newCommitteesSearchCommand())
	cmd.AddCommand(newCommitteesFilingsCommand())
	cmd.AddCommand(newCommitteesContributionsCommand())
	cmd.AddCommand(newCommitteesLeadershipCommand())

	return cmd
}

func newCommitteesNewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "new",
		Short: "List newly registered committees",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			committees, err := client.Committees().Latest(context.Background(), queryFromFlags())
			if err != nil {
				return fmt.Errorf("failed to list new committees: %w", err)
			}

			return outputCommittees(committees)
		},
	}
}

func newCommitteesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get COMMITTEE_ID",
		Short: "Show a committee",
		Long:  "Show details for a single committee by FEC committee ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			committee, err := client.Committees().Get(context.Background(), args[0], queryFromFlags())
			if err != nil {
				return fmt.Errorf("failed to get committee %s: %w", args[0], err)
			}

			switch viper.GetString("output") {
			case constants.FormatJSON:
				return encodeJSON(committee)
			case constants.FormatYAML:
				return encodeYAML(committee)
			default:
				leadership := "no"
				if committee.Leadership {
					leadership = "yes"
				}

				superPAC := "no"
				if committee.SuperPAC {
					superPAC = "yes"
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")
				_ = table.Append("ID", committee.ID)
				_ = table.Append("Name", committee.Name)
				_ = table.Append("Party", committee.Party)
				_ = table.Append("Treasurer", committee.Treasurer)
				_ = table.Append("State", committee.State)
				_ = table.Append("Candidate", committee.Candidate)
				_ = table.Append("Leadership", leadership)
				_ = table.Append("Super PAC", superPAC)

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}
			}

			return nil
		},
	}
}

func newCommitteesSearchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "search TERM",
		Short: "Search committees by name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			committees, err := client.Committees().Search(context.Background(), args[0], queryFromFlags())
			if err != nil {
				return fmt.Errorf("failed to search committees: %w", err)
			}

			return outputCommittees(committees)
		},
	}
}

func newCommitteesFilingsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "filings COMMITTEE_ID",
		Short: "List a committee's filings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			filings, err := client.Committees().Filings(context.Background(), args[0], queryFromFlags())
			if err != nil {
				return fmt.Errorf("failed to list filings for committee %s: %w", args[0], err)
			}

			return outputFilings(filings)
		},
	}
}

func newCommitteesContributionsCommand() *cobra.Command {
	var candidateID string

	cmd := &cobra.Command{
		Use:   "contributions COMMITTEE_ID",
		Short: "List a committee's contributions",
		Long:  "List a committee's contributions, optionally narrowed to one candidate",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			ctx := context.Background()
			query := queryFromFlags()

			var contributions []campfin.Contribution

			if candidateID != "" {
				contributions, err = client.Committees().ContributionsToCandidate(ctx, args[0], candidateID, query)
			} else {
				contributions, err = client.Committees().Contributions(ctx, args[0], query)
			}

			if err != nil {
				return fmt.Errorf("failed to list contributions for committee %s: %w", args[0], err)
			}

			return outputContributions(contributions)
		},
	}

	cmd.Flags().StringVar(&candidateID, "candidate", "", "narrow to contributions to this candidate ID")

	return cmd
}

func newCommitteesLeadershipCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "leadership",
		Short: "List leadership committees",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			committees, err := client.Committees().Leadership(context.Background(), queryFromFlags())
			if err != nil {
				return fmt.Errorf("failed to list leadership committees: %w", err)
			}

			return outputCommittees(committees)
		},
	}
}

// outputCommittees renders committees in the configured output format.
func outputCommittees(committees []campfin.Committee) error {
	switch viper.GetString("output") {
	case constants.FormatJSON:
		return encodeJSON(committees)
	case constants.FormatYAML:
		return encodeYAML(committees)
	default:
		if len(committees) == 0 {
			fmt.Println("No committees found")

			return nil
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.Header("ID", "Name", "Party", "Treasurer", "State")

		for _, committee := range committees {
			_ = table.Append(
				committee.ID,
				committee.Name,
				committee.Party,
				committee.Treasurer,
				committee.State,
			)
		}

		if err := table.Render(); err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}
	}

	return nil
}

// outputContributions renders contributions in the configured output format.
func outputContributions(contributions []campfin.Contribution) error {
	switch viper.GetString("output") {
	case constants.FormatJSON:
		return encodeJSON(contributions)
	case constants.FormatYAML:
		return encodeYAML(contributions)
	default:
		if len(contributions) == 0 {
			fmt.Println("No contributions found")

			return nil
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Candidate", "Office", "State", "Amount", "Date", "Support")

		for _, contribution := range contributions {
			support := "no"
			if contribution.Support {
				support = "yes"
			}

			_ = table.Append(
				contribution.CandidateName,
				contribution.Office,
				contribution.State,
				fmt.Sprintf("%.2f", contribution.Amount),
				contribution.Date,
				support,
			)
		}

		if err := table.Render(); err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}
	}

	return nil
}
