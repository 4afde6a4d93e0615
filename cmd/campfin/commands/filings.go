package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/campfin-io/campfin/internal/constants"
	"github.com/campfin-io/campfin/pkg/campfin"
)

// NewFilingsCommand creates the filings command group
func NewFilingsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "filings",
		Aliases: []string{"filing"},
		Short:   "Browse FEC electronic filings",
		Long:    "List today's filings, filings by date or form type, form types, and amendments",
	}

	cmd.AddCommand(newFilingsTodayCommand())
	cmd.AddCommand(newFilingsDateCommand())
	cmd.AddCommand(newFilingsTypesCommand())
	cmd.AddCommand(newFilingsByTypeCommand())
	cmd.AddCommand(newFilingsAmendmentsCommand())

	return cmd
}

func newFilingsTodayCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "today",
		Short: "List today's filings",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			filings, err := client.Filings().Today(context.Background(), queryFromFlags())
			if err != nil {
				return fmt.Errorf("failed to list today's filings: %w", err)
			}

			return outputFilings(filings)
		},
	}
}

func newFilingsDateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "date YEAR MONTH DAY",
		Short: "List filings for a date",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err1 := strconv.Atoi(args[0])
			month, err2 := strconv.Atoi(args[1])
			day, err3 := strconv.Atoi(args[2])

			if err1 != nil || err2 != nil || err3 != nil {
				return ErrInvalidDatePart
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			filings, err := client.Filings().ByDate(context.Background(), year, month, day, queryFromFlags())
			if err != nil {
				return fmt.Errorf("failed to list filings for %04d-%02d-%02d: %w", year, month, day, err)
			}

			return outputFilings(filings)
		},
	}
}

func newFilingsTypesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List filing form types",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			formTypes, err := client.Filings().FormTypes(context.Background(), queryFromFlags())
			if err != nil {
				return fmt.Errorf("failed to list form types: %w", err)
			}

			switch viper.GetString("output") {
			case constants.FormatJSON:
				return encodeJSON(formTypes)
			case constants.FormatYAML:
				return encodeYAML(formTypes)
			default:
				if len(formTypes) == 0 {
					fmt.Println("No form types found")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Name")

				for _, formType := range formTypes {
					_ = table.Append(formType.ID, formType.Name)
				}

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}
			}

			return nil
		},
	}
}

func newFilingsByTypeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "type FORM_TYPE",
		Short: "List filings of a form type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			filings, err := client.Filings().ByType(context.Background(), args[0], queryFromFlags())
			if err != nil {
				return fmt.Errorf("failed to list filings of type %s: %w", args[0], err)
			}

			return outputFilings(filings)
		},
	}
}

func newFilingsAmendmentsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "amendments",
		Short: "List recent filing amendments",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			filings, err := client.Filings().Amendments(context.Background(), queryFromFlags())
			if err != nil {
				return fmt.Errorf("failed to list amendments: %w", err)
			}

			return outputFilings(filings)
		},
	}
}

// outputFilings renders filings in the configured output format.
func outputFilings(filings []campfin.Filing) error {
	switch viper.GetString("output") {
	case constants.FormatJSON:
		return encodeJSON(filings)
	case constants.FormatYAML:
		return encodeYAML(filings)
	default:
		if len(filings) == 0 {
			fmt.Println("No filings found")

			return nil
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.Header("ID", "Committee", "Form", "Filed", "Receipts", "Disbursements", "Amended")

		for _, filing := range filings {
			amended := "no"
			if filing.Amended {
				amended = "yes"
			}

			_ = table.Append(
				strconv.Itoa(filing.ID),
				filing.CommitteeName,
				filing.FormType,
				filing.DateFiled,
				fmt.Sprintf("%.2f", filing.ReceiptsTotal),
				fmt.Sprintf("%.2f", filing.DisbursementsTotal),
				amended,
			)
		}

		if err := table.Render(); err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}
	}

	return nil
}
