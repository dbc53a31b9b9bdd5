package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/customs-cli/internal/config"
	"github.com/sells-group/customs-cli/internal/enrich"
	"github.com/sells-group/customs-cli/pkg/pagefetch"
	"github.com/sells-group/customs-cli/pkg/websearch"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "customs-cli",
	Short: "Customs description completeness and enrichment pipeline",
	Long:  "Grades product descriptions against weighted customs-information categories and enriches incomplete ones via web search and scraping, so HS codes are easier to assign.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

// newOrchestrator wires the live search and fetch collaborators from config.
func newOrchestrator(cfg *config.Config) *enrich.Orchestrator {
	search := websearch.NewGoogleClient(
		websearch.WithBaseURL(cfg.Search.BaseURL),
		websearch.WithUserAgent(cfg.Search.UserAgent),
		websearch.WithHTTPClient(&http.Client{
			Timeout: time.Duration(cfg.Search.TimeoutSecs) * time.Second,
		}),
	)
	fetch := pagefetch.NewHTTPFetcher(
		pagefetch.WithUserAgent(cfg.Fetch.UserAgent),
		pagefetch.WithHTTPClient(&http.Client{
			Timeout: time.Duration(cfg.Fetch.TimeoutSecs) * time.Second,
		}),
	)
	return enrich.NewOrchestrator(search, fetch, enrich.Config{
		ResultsPerQuery: cfg.Enrich.ResultsPerQuery,
		QueryDelay:      time.Duration(cfg.Enrich.QueryDelayMs) * time.Millisecond,
	})
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
