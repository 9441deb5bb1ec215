package cmd

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kozaktomas/people-page/internal/export"
	"github.com/kozaktomas/people-page/internal/people"
	"github.com/kozaktomas/people-page/internal/peopleapi"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the people table to an xlsx file",
	Long: `Fetch the people list, link parents by name and write the rows matching
the filters to an Excel workbook.`,
	Example: `  people-page export --output people.xlsx --sort name`,
	RunE:    runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
	addCriteriaFlags(exportCmd)
	exportCmd.Flags().StringP("output", "o", "people.xlsx", "Path of the workbook to write")
}

func runExport(cmd *cobra.Command, args []string) error {
	criteria, err := criteriaFromFlags(cmd)
	if err != nil {
		return err
	}
	output := mustGetString(cmd, "output")

	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	client, err := peopleapi.NewClient(cfg.PeopleAPI, log)
	if err != nil {
		return fmt.Errorf("creating people client: %w", err)
	}

	all, err := fetchPeople(cmd.Context(), client)
	if err != nil {
		log.Error("failed to load people", zap.Error(err))
		return fmt.Errorf("something went wrong: %w", err)
	}
	visible := people.Filter(all, criteria)

	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("creating %s: %w", output, err)
	}
	if err := export.WriteXLSX(f, visible); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", output, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s people to %s\n", humanize.Comma(int64(len(visible))), output)
	return nil
}
