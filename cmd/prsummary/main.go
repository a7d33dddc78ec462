// Package main provides prsummary, a small CLI over the same core the
// dashboard uses: paste a pull request URL, get the formatted summary on the
// clipboard without opening the browser UI.
package main

import (
	"log"

	"github.com/spf13/cobra"
)

var (
	token  string
	noCopy bool
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "prsummary",
		Short: "Azure DevOps pull request summaries from the command line",
		Long: `Parse Azure DevOps pull request URLs and build the shareable summary ` +
			`(linked work items, branches, reviewers) that the dashboard copies to the clipboard.`,
	}

	rootCmd.PersistentFlags().StringVarP(&token, "token", "t", "",
		"Azure DevOps personal access token (defaults to AZURE_DEVOPS_TOKEN)")

	summaryCmd := createSummaryCmd()
	summaryCmd.Flags().BoolVar(&noCopy, "no-copy", false, "Print the summary instead of copying it to the clipboard")

	rootCmd.AddCommand(createParseCmd(), summaryCmd)

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
