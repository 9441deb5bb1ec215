package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kozaktomas/people-page/internal/export"
	"github.com/kozaktomas/people-page/internal/people"
	"github.com/kozaktomas/people-page/internal/peopleapi"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the people table in the terminal",
	Long: `Fetch the people list, link parents by name and print the rows matching
the filters as an aligned table.`,
	Example: `  people-page list --sex f --century 17 --century 18 --sort born --desc
  people-page list --query haverbeke`,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
	addCriteriaFlags(listCmd)
}

// fetchPeople loads the list with a spinner on stderr and returns it with
// parents resolved.
func fetchPeople(ctx context.Context, client *peopleapi.Client) ([]people.Person, error) {
	spinner := progressbar.NewOptions(-1,
		progressbar.OptionSetDescription("Fetching people"),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionClearOnFinish(),
	)
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(100 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				_ = spinner.Add(1)
			}
		}
	}()

	list, err := client.GetPeople(ctx)
	close(done)
	_ = spinner.Finish()
	if err != nil {
		return nil, err
	}
	return people.WithParents(list), nil
}

func runList(cmd *cobra.Command, args []string) error {
	criteria, err := criteriaFromFlags(cmd)
	if err != nil {
		return err
	}

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
	if len(all) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "There are no people on the server")
		return nil
	}

	visible := people.Filter(all, criteria)
	if len(visible) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "There are no people matching the current search criteria")
		return nil
	}

	if err := export.WriteText(cmd.OutOrStdout(), visible); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "\n%s of %s people\n",
		humanize.Comma(int64(len(visible))), humanize.Comma(int64(len(all))))
	return nil
}
