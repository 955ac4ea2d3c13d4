package main

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/andras/talent-sonar/internal/observability"
	"github.com/andras/talent-sonar/internal/outreach"
)

var (
	outreachMatchID      string
	outreachTone         string
	outreachCompensation bool
	outreachCustom       string
	outreachJSON         bool
)

var outreachCmd = &cobra.Command{
	Use:   "outreach",
	Short: "Draft an outreach message for a match",
	Long:  `Draft a personalized outreach email for an existing match, with alternative subject lines.`,
	RunE:  runOutreach,
}

func init() {
	outreachCmd.Flags().StringVar(&outreachMatchID, "match", "", "Match ID to draft for (required)")
	outreachCmd.Flags().StringVar(&outreachTone, "tone", "professional", "Message tone: professional, friendly, or enthusiastic")
	outreachCmd.Flags().BoolVar(&outreachCompensation, "compensation", false, "Mention competitive compensation")
	outreachCmd.Flags().StringVar(&outreachCustom, "message", "", "Custom text to weave into the email")
	outreachCmd.Flags().BoolVar(&outreachJSON, "json", false, "Print the result as JSON")
	_ = outreachCmd.MarkFlagRequired("match")
	rootCmd.AddCommand(outreachCmd)
}

func runOutreach(cmd *cobra.Command, _ []string) error {
	a, err := buildApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	resp, err := a.drafter.Draft(cmd.Context(), outreach.DraftRequest{
		MatchID:             outreachMatchID,
		Tone:                outreach.Tone(outreachTone),
		IncludeCompensation: outreachCompensation,
		CustomMessage:       outreachCustom,
	})
	if err != nil {
		return err
	}

	if outreachJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(resp)
	}

	observability.NewPrinter(os.Stdout).PrintOutreach(resp)
	return nil
}
