package main

import (
	"fmt"
	"os"

	"pr-dashboard-service/internal/flow"
	"pr-dashboard-service/internal/prurl"
	"pr-dashboard-service/internal/service"
	"pr-dashboard-service/internal/summary"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
)

func createSummaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary <pr-url>",
		Short: "Fetch a pull request and copy its formatted summary to the clipboard",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pat := token
			if pat == "" {
				pat = os.Getenv("AZURE_DEVOPS_TOKEN")
			}
			if pat == "" {
				return fmt.Errorf("no access token: pass --token or set AZURE_DEVOPS_TOKEN")
			}

			info, err := prurl.Extract(args[0])
			if err != nil {
				return err
			}

			// The pasted URL walks the selection flow end to end; an
			// invalid progression is a bug, so transition errors are fatal.
			machine := flow.NewMachine()
			steps := []flow.Event{
				{Kind: flow.EventTokenSaved},
				{Kind: flow.EventOrganizationChosen, Value: info.Organization},
				{Kind: flow.EventProjectChosen, Value: info.Project},
				{Kind: flow.EventRepositoryChosen, Value: info.Repository},
			}
			for _, step := range steps {
				if err := machine.Apply(step); err != nil {
					return err
				}
			}

			ctx := cmd.Context()
			azureService := service.NewAzureService(nil)

			pr, err := azureService.PullRequest(ctx, pat, info.Organization,
				info.Project, info.Repository, info.PullRequestID)
			if err != nil {
				return fmt.Errorf("fetching pull request: %w", err)
			}

			items, err := azureService.PullRequestWorkItems(ctx, pat, info.Organization,
				info.Project, info.Repository, info.PullRequestID)
			if err != nil {
				return err
			}
			if err := machine.Apply(flow.Event{Kind: flow.EventPullRequestsLoaded}); err != nil {
				return err
			}

			if len(items) == 0 {
				fmt.Fprintln(os.Stderr, "No work items linked to this pull request.")
			}

			text := summary.CreatePRText(pr, items, info.Organization)

			if noCopy {
				fmt.Println(text)
				return nil
			}
			if err := clipboard.WriteAll(text); err != nil {
				return fmt.Errorf("copying summary to clipboard: %w", err)
			}
			fmt.Printf("Summary for PR #%d copied to clipboard.\n", pr.PullRequestID)
			return nil
		},
	}
}
