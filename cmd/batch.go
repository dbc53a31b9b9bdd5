package main

import (
	"encoding/json"
	"os"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/customs-cli/internal/analyzer"
	"github.com/sells-group/customs-cli/internal/batch"
)

var (
	batchCSV       string
	batchOutput    string
	batchLimit     int
	batchNoEnhance bool
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Analyze and enrich a CSV of product descriptions",
	Long: `Reads a CSV with "id" and "description" columns, scores each
description, enriches the incomplete ones from the web, and writes one
result row per record.

Examples:
  # Analyze only, no web calls
  customs-cli batch --csv products.csv --no-enhance --output results.csv

  # Full pipeline on the first 10 records
  customs-cli batch --csv products.csv --limit 10 --output results.csv`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		records, err := batch.ParseCSV(batchCSV)
		if err != nil {
			return err
		}
		zap.L().Info("parsed csv", zap.Int("records", len(records)))

		if batchLimit > 0 && batchLimit < len(records) {
			records = records[:batchLimit]
		}

		var enhancer batch.Enhancer
		if !batchNoEnhance {
			enhancer = newOrchestrator(cfg)
		}

		processor := batch.NewProcessor(
			analyzer.New(),
			enhancer,
			time.Duration(cfg.Batch.ItemDelayMs)*time.Millisecond,
		)
		results := processor.Process(cmd.Context(), records)

		if batchOutput != "" {
			if err := batch.WriteCSV(results, batchOutput); err != nil {
				return err
			}
			zap.L().Info("wrote results", zap.String("path", batchOutput))
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(batch.Summarize(results)); err != nil {
			return eris.Wrap(err, "batch: encode summary")
		}
		return nil
	},
}

func init() {
	batchCmd.Flags().StringVar(&batchCSV, "csv", "", "input CSV path (required)")
	batchCmd.Flags().StringVar(&batchOutput, "output", "", "output CSV path")
	batchCmd.Flags().IntVar(&batchLimit, "limit", 0, "process at most N records")
	batchCmd.Flags().BoolVar(&batchNoEnhance, "no-enhance", false, "score only, skip web enrichment")
	_ = batchCmd.MarkFlagRequired("csv")
	rootCmd.AddCommand(batchCmd)
}
