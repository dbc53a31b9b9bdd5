package main

import (
	"encoding/json"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/customs-cli/internal/analyzer"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <description>",
	Short: "Score a product description's customs completeness",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		report := analyzer.New().Analyze(args[0])

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return eris.Wrap(err, "analyze: encode report")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}
