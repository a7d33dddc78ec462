package main

import (
	"fmt"

	"pr-dashboard-service/internal/prurl"

	"github.com/spf13/cobra"
)

func createParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <pr-url>",
		Short: "Extract organization, project, repository and id from a PR URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			info, err := prurl.Extract(args[0])
			if err != nil {
				return err
			}

			fmt.Printf("Organization:   %s\n", info.Organization)
			fmt.Printf("Project:        %s\n", info.Project)
			fmt.Printf("Repository:     %s\n", info.Repository)
			fmt.Printf("Pull Request:   %s\n", info.PullRequestID)
			return nil
		},
	}
}
