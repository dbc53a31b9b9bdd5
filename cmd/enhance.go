package main

import (
	"encoding/json"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/customs-cli/internal/analyzer"
	"github.com/sells-group/customs-cli/internal/model"
)

var enhanceCmd = &cobra.Command{
	Use:   "enhance <description>",
	Short: "Analyze a description and enrich it from the web if incomplete",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		an := analyzer.New()
		before := an.Analyze(args[0])

		out := struct {
			Before     *model.CompletenessReport `json:"before"`
			Enrichment *model.EnrichmentResult   `json:"enrichment,omitempty"`
			After      *model.CompletenessReport `json:"after,omitempty"`
		}{Before: before}

		if before.NeedsEnhancement {
			result := newOrchestrator(cfg).Enhance(cmd.Context(), args[0], before.Missing)
			out.Enrichment = result
			out.After = an.Analyze(result.EnhancedDescription)
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			return eris.Wrap(err, "enhance: encode result")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(enhanceCmd)
}
