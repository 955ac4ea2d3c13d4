package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andras/talent-sonar/internal/ingest"
)

var fetchURL string

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch a job posting from a URL",
	Long:  `Download a job posting page and print the extracted description text, ready to paste into a job record.`,
	RunE:  runFetch,
}

func init() {
	fetchCmd.Flags().StringVar(&fetchURL, "url", "", "Job posting URL (required)")
	_ = fetchCmd.MarkFlagRequired("url")
	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, _ []string) error {
	text, err := ingest.JobDescriptionFromURL(cmd.Context(), fetchURL)
	if err != nil {
		return err
	}
	fmt.Println(text)
	return nil
}
