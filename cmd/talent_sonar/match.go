package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/andras/talent-sonar/internal/matching"
	"github.com/andras/talent-sonar/internal/observability"
)

var (
	matchJobID      string
	matchMaxResults int
	matchMinScore   float64
	matchInternal   bool
	matchExternal   bool
	matchWeighted   bool
	matchJSON       bool
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Rank candidates for a job",
	Long:  `Run the matching pipeline for one job and print the ranked candidates.`,
	RunE:  runMatch,
}

func init() {
	matchCmd.Flags().StringVar(&matchJobID, "job", "", "Job ID to match against (required)")
	matchCmd.Flags().IntVar(&matchMaxResults, "max-results", 0, "Maximum matches to return (defaults to config)")
	matchCmd.Flags().Float64Var(&matchMinScore, "min-score", -1, "Score threshold (defaults to config)")
	matchCmd.Flags().BoolVar(&matchInternal, "internal", true, "Include internal candidates")
	matchCmd.Flags().BoolVar(&matchExternal, "external", true, "Include external candidates")
	matchCmd.Flags().BoolVar(&matchWeighted, "weighted", false, "Weight skill scores by requirement importance")
	matchCmd.Flags().BoolVar(&matchJSON, "json", false, "Print the result as JSON")
	_ = matchCmd.MarkFlagRequired("job")
	rootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, _ []string) error {
	a, err := buildApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	opts := matching.DefaultOptions()
	if a.cfg.MaxResults > 0 {
		opts.MaxResults = a.cfg.MaxResults
	}
	if a.cfg.MinScore > 0 {
		opts.MinScore = a.cfg.MinScore
	}
	if matchMaxResults > 0 {
		opts.MaxResults = matchMaxResults
	}
	if matchMinScore >= 0 {
		opts.MinScore = matchMinScore
	}
	opts.IncludeInternal = matchInternal
	opts.IncludeExternal = matchExternal
	opts.WeightedSkills = matchWeighted

	result, err := a.engine.Match(cmd.Context(), matchJobID, opts)
	if err != nil {
		return err
	}

	if matchJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	printer := observability.NewPrinter(os.Stdout)
	if a.cfg.Verbose {
		if job, err := a.repo.GetJob(cmd.Context(), matchJobID); err == nil {
			printer.PrintJob(job)
		}
	}
	printer.PrintMatches(result)
	fmt.Printf("\nEvaluated %d candidates in %s\n", result.TotalCandidatesEvaluated, result.ProcessingTime)
	return nil
}
